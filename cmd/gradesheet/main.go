// Package main provides the CLI entry point for gradesheet.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ukaji3/gradesheet-go/internal/config"
	"github.com/ukaji3/gradesheet-go/internal/logger"
	"github.com/ukaji3/gradesheet-go/pkg/gradesheet"
	"github.com/ukaji3/gradesheet-go/pkg/gradesheet/output"
)

// Exit codes, one per failure kind.
const (
	exitOK = iota
	exitUsage
	exitInputNotFound
	exitInputRead
	exitSchema
	exitReport
)

type flags struct {
	input     string
	output    string
	sheet     string
	cfgFile   string
	envFile   string
	json      bool
	logLevel  string
	logFormat string
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command with args and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return exitOK
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return exitCode(err)
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var f flags

	rootCmd := &cobra.Command{
		Use:   "gradesheet",
		Short: "Grade a marks workbook and write a color-coded report",
		Long: `gradesheet reads Name, Math, Science and English marks from an Excel file,
computes Total, Percentage and Grade per student, and writes a report workbook
with color-coded subject cells and a legend.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, stdout, stderr)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	fl := rootCmd.Flags()
	fl.StringVarP(&f.input, "input", "i", "", "Input marks workbook (default: marks.xlsx)")
	fl.StringVarP(&f.output, "output", "o", "", "Output report workbook (default: marks_report.xlsx)")
	fl.StringVar(&f.sheet, "sheet", "", "Input sheet name (default: first sheet)")
	fl.StringVar(&f.cfgFile, "config", "", "YAML config file")
	fl.StringVar(&f.envFile, "env-file", ".env", "dotenv file, ignored if missing")
	fl.BoolVar(&f.json, "json", false, "Also print the graded dataset as JSON to stdout")
	fl.StringVar(&f.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	fl.StringVar(&f.logFormat, "log-format", "", "Log format: json, pretty")

	return rootCmd
}

func run(cmd *cobra.Command, f flags, stdout, stderr io.Writer) error {
	cfg, err := config.Load(config.LoadOptions{ConfigFile: f.cfgFile, EnvFile: f.envFile})
	if err != nil {
		return usageError{err}
	}
	applyFlags(cmd, f, cfg)
	if err := cfg.Validate(); err != nil {
		return usageError{err}
	}

	log := logger.Setup(stderr, cfg.Log.Level, cfg.Log.Format).
		With().
		Str("run_id", uuid.NewString()).
		Logger()

	opts := gradesheet.DefaultOptions()
	opts.InputPath = cfg.InputPath
	opts.OutputPath = cfg.OutputPath
	opts.SheetName = cfg.SheetName
	opts.Logger = log

	ds, err := gradesheet.Run(opts)
	if err != nil {
		log.Error().Err(err).Msg("run failed")
		return err
	}

	if cfg.JSON {
		data, err := output.ToJSON(ds, true)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(stdout, string(data))
	}

	fmt.Fprintf(stdout, "Report generated: %s\n", cfg.OutputPath)
	return nil
}

// applyFlags overrides cfg with the flags set on the command line.
func applyFlags(cmd *cobra.Command, f flags, cfg *config.Config) {
	fl := cmd.Flags()
	if fl.Changed("input") {
		cfg.InputPath = f.input
	}
	if fl.Changed("output") {
		cfg.OutputPath = f.output
	}
	if fl.Changed("sheet") {
		cfg.SheetName = f.sheet
	}
	if fl.Changed("json") {
		cfg.JSON = f.json
	}
	if fl.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if fl.Changed("log-format") {
		cfg.Log.Format = f.logFormat
	}
}

type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func exitCode(err error) int {
	var re *gradesheet.ReportError
	switch {
	case errors.Is(err, gradesheet.ErrInputNotFound):
		return exitInputNotFound
	case errors.Is(err, gradesheet.ErrInputRead):
		return exitInputRead
	case errors.Is(err, gradesheet.ErrSchema):
		return exitSchema
	case errors.As(err, &re):
		return exitReport
	default:
		return exitUsage
	}
}
