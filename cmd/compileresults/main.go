// Package main provides the CLI entry point for compileresults, which
// turns benchmark log output on stdin into per-test CSV files.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/weiihann/compileresults/convert"
	"github.com/weiihann/compileresults/report"
)

// resultsDir is relative to the working directory.
const resultsDir = "results"

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	level, levelErr := cfg.level()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	if levelErr != nil {
		logger.Warn("falling back to info logging",
			slog.String("error", levelErr.Error()),
		)
	}

	root := newRootCmd(logger)
	if err := root.Execute(); err != nil {
		logger.Error("compileresults failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "compileresults",
		Short: "Convert benchmark log output into per-test CSV files",
		Long: `compileresults reads benchmark output from stdin. Each test delimited by
"TEST START: <name>" and "TEST COMPLETE" is written to results/<name>.csv
with one row per "TEST RESULTS: " line. All other lines are copied to stdout.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return compile(cmd.Context(), logger, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

func compile(
	ctx context.Context,
	logger *slog.Logger,
	in io.Reader,
	out, errOut io.Writer,
) error {
	router := convert.NewRouter(convert.Config{ResultsDir: resultsDir}, logger)

	summary, err := router.Run(ctx, in, out)
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}

	if len(summary.Tests) > 0 {
		if err := report.Generate(errOut, summary); err != nil {
			return fmt.Errorf("generate report: %w", err)
		}
	}

	return nil
}
