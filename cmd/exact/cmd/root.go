// SPDX-License-Identifier: MIT

// Package cmd holds the cobra command tree of the exact CLI.
package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/exact/bignum"
	"github.com/katalvlaran/exact/fixed"
	"github.com/katalvlaran/exact/internal/config"
	"github.com/katalvlaran/exact/internal/rpn"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "exact",
		Short: "Exact rational arithmetic on the command line",
		Long: `exact computes with arbitrary-precision fractions.

Commands:
  eval     - evaluate a reverse-Polish expression
  repl     - interactive reverse-Polish session
  matrix   - matrix arithmetic on YAML/TOML documents
  fixed    - fixed-point square roots and powers
  version  - print version information`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $"+config.EnvVar+")")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging on stderr")

	root.AddCommand(
		a.newEvalCmd(),
		a.newREPLCmd(),
		a.newMatrixCmd(),
		a.newFixedCmd(),
		newVersionCmd(),
	)

	return root
}

// Execute runs the CLI with os.Args and reports a failure on stderr.
func Execute() error {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil {
		printError(root.ErrOrStderr(), err)
	}

	return err
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)
}

// setup loads the configuration and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := parseLevel(cfg.General.LogLevel)
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.logger.Debug("configuration loaded",
		"path", a.cfgFile,
		"precision", cfg.Fixed.Precision.String(),
		"decimal_digits", cfg.Output.DecimalDigits,
	)

	return nil
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// fixedOptions maps the [fixed] section onto fixed.Option values.
func (a *app) fixedOptions() []fixed.Option {
	var opts []fixed.Option
	if a.cfg.Fixed.MaxIterations > 0 {
		opts = append(opts, fixed.WithMaxIterations(a.cfg.Fixed.MaxIterations))
	}
	if a.cfg.Fixed.Strict {
		opts = append(opts, fixed.WithStrict())
	}

	return opts
}

func (a *app) evaluator() *rpn.Evaluator {
	return rpn.New(
		rpn.WithPrecision(a.cfg.Fixed.Precision),
		rpn.WithFixedOptions(a.fixedOptions()...),
	)
}

// render formats n following the [output] section.
func (a *app) render(n bignum.Number) string {
	if a.cfg.Output.Fractions {
		return n.Rational().FracString()
	}

	return n.String()
}

// printNumber writes n and, when digits >= 0, its decimal expansion.
func (a *app) printNumber(w io.Writer, n bignum.Number, digits int) {
	fmt.Fprintln(w, a.render(n))
	if digits >= 0 {
		fmt.Fprintln(w, n.DecimalString(digits))
	}
}

// decimalDigits resolves a --decimal flag: unset yields -1, a bare flag
// yields the configured digit count.
func (a *app) decimalDigits(cmd *cobra.Command) (int, error) {
	if !cmd.Flags().Changed(flagDecimal) {
		return -1, nil
	}
	d, err := cmd.Flags().GetInt(flagDecimal)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return a.cfg.Output.DecimalDigits, nil
	}

	return d, nil
}

const flagDecimal = "decimal"

func addDecimalFlag(cmd *cobra.Command) {
	cmd.Flags().Int(flagDecimal, -1, "also print N decimal digits (bare flag: output.decimal_digits)")
	cmd.Flags().Lookup(flagDecimal).NoOptDefVal = "-1"
}
