package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"blogpreview/internal/config"
	"blogpreview/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type rootOptions struct {
	endpoint string
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "previewctl",
		Short:         "Operate the post preview service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.endpoint, "endpoint", "", "content API GraphQL endpoint (overrides PREVIEW_GRAPHQL_ENDPOINT)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (overrides PREVIEW_LOG_LEVEL)")

	cmd.AddCommand(
		newServeCmd(opts),
		newResolveCmd(opts),
		newInspectCmd(),
		newGenCmd(opts),
	)
	return cmd
}

// load reads the environment config and applies flag overrides.
func (o *rootOptions) load() (config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	if endpoint := strings.TrimSpace(o.endpoint); endpoint != "" {
		cfg.GraphQLEndpoint = endpoint
	}
	if level := strings.TrimSpace(o.logLevel); level != "" {
		cfg.LogLevel = level
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("create logger: %w", err)
	}
	return cfg, log, nil
}

func writeOutput(w io.Writer, format string, value any) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(value); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want yaml or json)", format)
	}
}
