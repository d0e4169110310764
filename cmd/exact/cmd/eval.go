// SPDX-License-Identifier: MIT

package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

func (a *app) newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval EXPR...",
		Short: "Evaluate a reverse-Polish expression",
		Long: `Evaluate a reverse-Polish expression and print the top of the stack.

Operators: + - * / neg inv dup swap drop clear sqrt pow

Example:
  exact eval "1/2 1/3 +"            # 5/6
  exact eval --decimal=4 "2 sqrt"   # grid fraction, then 1.4142
  exact eval -- "-1/2 3 *"          # -3/2

--decimal takes its value after '=' so a bare --decimal never swallows
the expression.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			digits, err := a.decimalDigits(cmd)
			if err != nil {
				return err
			}
			expr := strings.Join(args, " ")
			a.logger.Debug("evaluating", "expr", expr)

			e := a.evaluator()
			if err = e.Eval(expr); err != nil {
				return err
			}
			top, err := e.Top()
			if err != nil {
				return err
			}
			a.printNumber(cmd.OutOrStdout(), top, digits)

			return nil
		},
	}
	addDecimalFlag(cmd)

	return cmd
}
