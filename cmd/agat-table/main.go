// Package main provides the agat-table command-line tool.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/inodb/agat-table/internal/output"
	"github.com/inodb/agat-table/internal/report"
	"github.com/inodb/agat-table/internal/summary"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitError   = 1
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const usageLine = "Usage: agat-table <input_file>"

// errUsage is returned when the positional arguments are wrong.
var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(viper.New(), stdout, stderr)
	// cobra falls back to os.Args when given nil
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(stdout, usageLine)
			return ExitError
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}
	return ExitSuccess
}

func newRootCmd(v *viper.Viper, stdout, stderr io.Writer) *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "agat-table <input_file>",
		Short: "Summarise an AGAT statistics report as a gene/transcript table",
		Long: `Read the plain-text statistics report written by AGAT and print a condensed
tab-separated table with one row per feature group: protein-coding genes,
Ig/TCR gene segments, pseudogenes, named non-coding RNA biotypes and other
non-coding features.`,
		Example: `  agat-table agat_stats.txt
  agat-table -o summary.tsv agat_stats.txt
  agat-table --log-level debug agat_stats.txt`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errUsage
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(v.GetString("log.level"), stderr)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck
			return runTable(args[0], v.GetString("output"), cmd.OutOrStdout(), logger)
		},
	}

	// Bad flags on the table run get the same treatment as a wrong argument count.
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		if c == c.Root() {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		return err
	})

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ~/.agat-table.yaml)")
	cmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error")
	cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")

	_ = v.BindPFlag("log.level", cmd.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("output", cmd.Flags().Lookup("output"))

	cmd.AddCommand(newConfigCmd(v))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "agat-table version %s (%s) built %s\n", version, commit, date)
		},
	}
}

// runTable loads the report at inputPath and writes the summary table to
// outputPath, or to stdout when outputPath is empty.
func runTable(inputPath, outputPath string, stdout io.Writer, logger *zap.Logger) (err error) {
	r, err := report.Load(inputPath)
	if err != nil {
		return err
	}
	logger.Debug("report loaded",
		zap.String("path", inputPath),
		zap.Int("lines", r.Lines()))

	b := summary.NewBuilder()
	b.SetLogger(logger)

	rows, err := b.Build(r)
	if err != nil {
		return fmt.Errorf("summarising %s: %w", inputPath, err)
	}

	out := stdout
	if outputPath != "" {
		f, cerr := os.Create(outputPath)
		if cerr != nil {
			return fmt.Errorf("creating output file: %w", cerr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing output file: %w", cerr)
			}
		}()
		out = f
	}

	if err = output.NewTabWriter(out).WriteAll(rows); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}

	logger.Info("table written", zap.Int("rows", len(rows)))
	return nil
}
