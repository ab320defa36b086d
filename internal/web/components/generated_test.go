package components

import (
	"testing"

	"blogpreview/framework/templgen"
)

func TestGeneratedViewsMatchTemplSources(t *testing.T) {
	t.Parallel()

	result, err := templgen.Run(templgen.Config{
		Paths:    []string{"."},
		BasePath: "../../..",
		Check:    true,
	})
	if err != nil {
		t.Fatalf("run templgen: %v", err)
	}
	if len(result.Stale) != 0 {
		t.Fatalf("generated views out of date, run go generate ./internal/web/components: %v", result.Stale)
	}
}
