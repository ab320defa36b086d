package main

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"blogpreview/internal/gql"
	"blogpreview/internal/meta"
	"blogpreview/internal/posts"
	"blogpreview/internal/web"
	"github.com/spf13/cobra"
)

type resolveOutput struct {
	Identifier string        `json:"identifier" yaml:"identifier"`
	Host       string        `json:"host" yaml:"host"`
	Title      string        `json:"title" yaml:"title"`
	Degraded   bool          `json:"degraded,omitempty" yaml:"degraded,omitempty"`
	Tags       []resolvedTag `json:"tags" yaml:"tags"`
}

type resolvedTag struct {
	Property string `json:"property" yaml:"property"`
	Content  string `json:"content" yaml:"content"`
}

func newResolveCmd(root *rootOptions) *cobra.Command {
	var host string
	var output string

	cmd := &cobra.Command{
		Use:   "resolve <path>",
		Short: "Resolve a post path and print its preview metadata",
		Long: `Resolve runs the same pipeline as the server for one path and prints
the metadata bundle without rendering HTML.

Examples:
  previewctl resolve /2023/my-post
  previewctl resolve 2023/my-post --host example.com --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			segments, ok := web.PostSegments(args[0])
			if !ok {
				return fmt.Errorf("path %q does not name a post", args[0])
			}

			cfg, log, err := root.load()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			service := posts.NewService(gql.NewClient(cfg, log), log)
			record, err := service.Resolve(cmd.Context(), segments)
			if errors.Is(err, posts.ErrNotFound) {
				return fmt.Errorf("no post at %s", posts.Identifier(segments))
			}
			if err != nil {
				return err
			}

			if host == "" {
				host = hostOf(posts.StrOr(record.Link, ""))
			}
			bundle, err := meta.Build(record, host, meta.Options{FallbackImageURL: cfg.FallbackImageURL})
			if err != nil {
				return err
			}

			out := resolveOutput{
				Identifier: posts.Identifier(segments),
				Host:       host,
				Degraded:   bundle.Degraded,
				Title:      bundle.Title,
			}
			for _, tag := range bundle.Tags() {
				out.Tags = append(out.Tags, resolvedTag{Property: tag.Property, Content: tag.Content})
			}
			return writeOutput(cmd.OutOrStdout(), output, out)
		},
	}
	cmd.Flags().StringVar(&host, "host", "", "request host used for og:site_name (default: host of the post link)")
	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "output format: yaml or json")
	return cmd
}

func hostOf(link string) string {
	parsed, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return ""
	}
	return parsed.Host
}
