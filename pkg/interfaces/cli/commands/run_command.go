package commands

import (
	"fmt"

	"github.com/devkrishnan/mrpnet/pkg/application/services/orchestrator"
	"github.com/devkrishnan/mrpnet/pkg/config"
	"github.com/devkrishnan/mrpnet/pkg/interfaces/cli/output"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	outputFmt  string
	outputDir  string
	retainFlag bool
)

// NewRunCommand builds the "run" subcommand: load the configured sources,
// execute one MRP pass, and print the resulting Summary.
func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one MRP planning pass",
		Long:  "Loads BOM, item master, demand, and supply sources and nets every part to a full set of planned orders.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if retainFlag {
				cfg.Engine.RetainAudit = true
			}

			logger, err := newLogger(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("building logger: %w", err)
			}
			defer logger.Sync()

			ctx := cmd.Context()

			reader, err := loadSourceReader(cfg)
			if err != nil {
				return err
			}

			writer, closeWriter, err := buildWriter(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeWriter()

			registry := prometheus.NewRegistry()
			sinkFactory, closeSink, err := buildSinkFactory(cfg, logger, registry)
			if err != nil {
				return err
			}
			defer closeSink()

			opts := []orchestrator.Option{orchestrator.WithLogger(logger)}
			if writer != nil {
				opts = append(opts, orchestrator.WithWriter(writer))
			}
			orch := orchestrator.New(reader, sinkFactory, opts...)

			summary, err := orch.Run(ctx, cfg.Engine)
			if err != nil {
				return fmt.Errorf("run failed: %w", err)
			}

			return output.Generate(summary, output.Config{
				Format:    outputFmt,
				OutputDir: outputDir,
				Verbose:   cfg.LogLevel == "debug",
			})
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file")
	cmd.Flags().StringVar(&outputFmt, "format", "text", "Output format: text, json, csv")
	cmd.Flags().StringVar(&outputDir, "output", "", "Output directory for results (optional)")
	cmd.Flags().BoolVar(&retainFlag, "retain-audit", false, "Persist the working set past the run instead of releasing it")

	return cmd
}

// newLogger builds zap's development logger for "debug" and zap's
// production logger (info level) for every other level; "warn" and "error"
// do not raise the production logger's threshold.
func newLogger(level string) (*zap.Logger, error) {
	if level == "debug" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
