package main

import (
	"net/http"
	"time"

	"blogpreview/internal/preview"
	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	var output string
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "inspect <url>",
		Short: "Fetch a rendered page and print the preview tags a crawler sees",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := &http.Client{Timeout: timeout}
			doc, err := preview.Fetch(cmd.Context(), client, args[0])
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), output, doc)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "output format: yaml or json")
	cmd.Flags().DurationVar(&timeout, "timeout", 15*time.Second, "request timeout")
	return cmd
}
