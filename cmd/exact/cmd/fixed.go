// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/exact/bignum"
	"github.com/katalvlaran/exact/fixed"
	"github.com/katalvlaran/exact/internal/rpn"
)

const flagPrecision = "precision"

func (a *app) newFixedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fixed",
		Short: "Fixed-point approximations",
		Long: `Approximate irrational results on a precision grid.

The precision defaults to fixed.precision from the configuration.

Examples:
  exact fixed sqrt 2 --precision 1/1000
  exact fixed pow 8 2/3`,
	}
	cmd.PersistentFlags().String(flagPrecision, "", "grid step, e.g. 1/10000 (default: fixed.precision)")
	cmd.PersistentFlags().Int(flagDecimal, -1, "also print N decimal digits (bare flag: output.decimal_digits)")
	cmd.PersistentFlags().Lookup(flagDecimal).NoOptDefVal = "-1"

	cmd.AddCommand(
		&cobra.Command{
			Use:   "sqrt VALUE",
			Short: "Square root of VALUE",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.runFixed(cmd, args, func(v []fixed.Number, prec fixed.Number) fixed.Number {
					return fixed.Sqrt(v[0], prec, a.fixedOptions()...)
				})
			},
		},
		&cobra.Command{
			Use:   "pow BASE EXP",
			Short: "BASE raised to a rational EXP",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.runFixed(cmd, args, func(v []fixed.Number, prec fixed.Number) fixed.Number {
					return fixed.PowRatio(v[0], v[1], prec, a.fixedOptions()...)
				})
			},
		},
	)

	return cmd
}

func (a *app) precision(cmd *cobra.Command) (bignum.Number, error) {
	text, err := cmd.Flags().GetString(flagPrecision)
	if err != nil || text == "" {
		return a.cfg.Fixed.Precision, err
	}
	p, err := bignum.ParseNumber(text)
	if err != nil {
		return p, fmt.Errorf("--%s: %w", flagPrecision, err)
	}
	if p.Sign() <= 0 {
		return p, fmt.Errorf("--%s: must be positive, got %s", flagPrecision, p)
	}

	return p, nil
}

func (a *app) runFixed(cmd *cobra.Command, args []string, f func([]fixed.Number, fixed.Number) fixed.Number) error {
	digits, err := a.decimalDigits(cmd)
	if err != nil {
		return err
	}
	prec, err := a.precision(cmd)
	if err != nil {
		return err
	}
	vals := make([]fixed.Number, len(args))
	for i, arg := range args {
		n, err := bignum.ParseNumber(arg)
		if err != nil {
			return err
		}
		vals[i] = rpn.ToFixed(n)
	}

	res := f(vals, rpn.ToFixed(prec))
	a.logger.Debug("fixed approximation", "cmd", cmd.Name(), "precision", prec.String(), "result", res.String())
	n, err := rpn.FromFixed(res)
	if err != nil {
		return err
	}
	a.printNumber(cmd.OutOrStdout(), n, digits)

	return nil
}
