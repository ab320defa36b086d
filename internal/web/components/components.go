// Package components holds the templ views served by the preview pages.
//
// The *_templ.go files are generated from the .templ sources with
// `go run ./cmd/previewctl gen views`.
package components

//go:generate go run ../../../cmd/previewctl gen views --path . --base ../../..

// RedirectTargetID is the id of the JSON script element that carries the
// canonical post URL.
const RedirectTargetID = "post-redirect-target"
