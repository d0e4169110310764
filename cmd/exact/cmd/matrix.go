// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/exact/bignum"
	"github.com/katalvlaran/exact/internal/matfile"
	"github.com/katalvlaran/exact/matrix"
)

const (
	flagOut    = "out"
	flagHeader = "header"
)

// binaryOps and unaryOps map subcommand names onto matrix kernels.
var (
	binaryOps = map[string]func(a, b matrix.Matrix) (matrix.Matrix, error){
		"add":      matrix.Add,
		"sub":      matrix.Sub,
		"mul":      matrix.Mul,
		"hadamard": matrix.Hadamard,
	}
	unaryOps = map[string]func(m matrix.Matrix) (matrix.Matrix, error){
		"transpose":  matrix.Transpose,
		"inverse":    matrix.Inverse,
		"neg":        matrix.Neg,
		"symmetrize": matrix.Symmetrize,
	}
	scalarOps = map[string]func(m matrix.Matrix) (bignum.Number, error){
		"det":   matrix.Det,
		"trace": matrix.Trace,
	}
)

func (a *app) newMatrixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Matrix arithmetic on YAML or TOML documents",
		Long: `Load matrices from .yaml/.yml or .toml documents and print the result.

Document format:
  rows:
    - ["1", "1/2"]
    - ["0", "-3"]`,
	}
	cmd.PersistentFlags().Int(flagDecimal, -1, "render entries with N decimal digits (bare flag: output.decimal_digits)")
	cmd.PersistentFlags().Lookup(flagDecimal).NoOptDefVal = "-1"
	cmd.PersistentFlags().String(flagOut, "", "also save a matrix result to this .yaml/.toml file")
	cmd.PersistentFlags().Bool(flagHeader, false, `print a "(r, c)" line and draw rows as |a b |`)

	for name, op := range binaryOps {
		op := op
		cmd.AddCommand(a.matrixCmd(name+" A B", "Compute A "+name+" B", 2,
			func(ms []*matrix.Dense) (matrix.Matrix, error) { return op(ms[0], ms[1]) }))
	}
	for name, op := range unaryOps {
		op := op
		cmd.AddCommand(a.matrixCmd(name+" A", "Compute the "+name+" of A", 1,
			func(ms []*matrix.Dense) (matrix.Matrix, error) { return op(ms[0]) }))
	}
	for name, op := range scalarOps {
		cmd.AddCommand(a.scalarCmd(name, op))
	}
	cmd.AddCommand(a.luCmd())

	return cmd
}

// loadAll reads every path as a matrix document.
func (a *app) loadAll(paths []string) ([]*matrix.Dense, error) {
	ms := make([]*matrix.Dense, len(paths))
	for i, p := range paths {
		m, err := matfile.Load(p)
		if err != nil {
			return nil, err
		}
		a.logger.Debug("matrix loaded", "path", p, "dim", m.Dim().String())
		ms[i] = m
	}

	return ms, nil
}

// formatOptions resolves the --decimal and --header flags and the [output]
// section into matrix options.
func (a *app) formatOptions(cmd *cobra.Command) ([]matrix.Option, error) {
	digits, err := a.decimalDigits(cmd)
	if err != nil {
		return nil, err
	}
	header, err := cmd.Flags().GetBool(flagHeader)
	if err != nil {
		return nil, err
	}
	var opts []matrix.Option
	switch {
	case digits >= 0:
		opts = append(opts, matrix.WithDecimal(digits))
	case a.cfg.Output.Fractions:
		opts = append(opts, matrix.WithFractions())
	}
	if header {
		opts = append(opts, matrix.WithHeader())
	}

	return opts, nil
}

func (a *app) matrixCmd(use, short string, nargs int, run func([]*matrix.Dense) (matrix.Matrix, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(nargs),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.formatOptions(cmd)
			if err != nil {
				return err
			}
			ms, err := a.loadAll(args)
			if err != nil {
				return err
			}
			res, err := run(ms)
			if err != nil {
				return err
			}
			if err = a.emit(cmd, res, opts); err != nil {
				return err
			}
			if out, _ := cmd.Flags().GetString(flagOut); out != "" {
				a.logger.Debug("saving result", "path", out)
				return matfile.Save(out, res)
			}

			return nil
		},
	}
}

func (a *app) emit(cmd *cobra.Command, m matrix.Matrix, opts []matrix.Option) error {
	s, err := matrix.Format(m, opts...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), s)

	return err
}

func (a *app) scalarCmd(name string, op func(matrix.Matrix) (bignum.Number, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name + " A",
		Short: "Compute the " + name + " of a square matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			digits, err := a.decimalDigits(cmd)
			if err != nil {
				return err
			}
			ms, err := a.loadAll(args)
			if err != nil {
				return err
			}
			v, err := op(ms[0])
			if err != nil {
				return err
			}
			a.printNumber(cmd.OutOrStdout(), v, digits)

			return nil
		},
	}

	return cmd
}

func (a *app) luCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lu A",
		Short: "Doolittle LU factorization without pivoting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.formatOptions(cmd)
			if err != nil {
				return err
			}
			ms, err := a.loadAll(args)
			if err != nil {
				return err
			}
			l, u, err := matrix.LU(ms[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "L:")
			if err = a.emit(cmd, l, opts); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "U:")

			return a.emit(cmd, u, opts)
		},
	}
}
