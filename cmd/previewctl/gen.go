package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"blogpreview/framework/templgen"
	"github.com/spf13/cobra"
	"github.com/suessflorian/gqlfetch"
)

func newGenCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Code generation helpers",
	}
	cmd.AddCommand(newGenViewsCmd(), newGenSchemaCmd(root))
	return cmd
}

func newGenViewsCmd() *cobra.Command {
	var files []string
	var paths []string
	var basePath string
	var check bool

	cmd := &cobra.Command{
		Use:   "views",
		Short: "Compile .templ views into Go",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(files) == 0 && len(paths) == 0 {
				paths = []string{filepath.Join("internal", "web", "components")}
			}
			result, err := templgen.Run(templgen.Config{
				Files:    files,
				Paths:    paths,
				BasePath: basePath,
				Check:    check,
			})
			if err != nil {
				return err
			}
			for _, target := range result.Written {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", target)
			}
			if check && len(result.Stale) > 0 {
				return fmt.Errorf("%d generated view(s) out of date: %v", len(result.Stale), result.Stale)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&files, "file", nil, "templ file to compile (repeatable)")
	cmd.Flags().StringArrayVar(&paths, "path", nil, "directory to scan for .templ files (repeatable)")
	cmd.Flags().StringVar(&basePath, "base", ".", "base path for relative filenames embedded in generated output")
	cmd.Flags().BoolVar(&check, "check", false, "report stale generated files without writing")
	return cmd
}

func newGenSchemaCmd(root *rootOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Download the content API schema for genqlient",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			endpoint := strings.TrimSpace(root.endpoint)
			if endpoint == "" {
				endpoint = strings.TrimSpace(os.Getenv("PREVIEW_GRAPHQL_ENDPOINT"))
			}
			if endpoint == "" {
				return errors.New("--endpoint or PREVIEW_GRAPHQL_ENDPOINT is required")
			}

			schema, err := gqlfetch.BuildClientSchema(cmd.Context(), endpoint, false)
			if err != nil {
				return fmt.Errorf("fetch schema from %s: %w", endpoint, err)
			}
			if err := os.WriteFile(out, []byte(schema), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", filepath.Join("internal", "gql", "schema.graphql"), "schema output file")
	return cmd
}
