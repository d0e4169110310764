// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for rendering exact matrices.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) applying setters last-writer-wins.
//
// Rendering modes:
//   - exact (default): "3", "-1/2"; integral values drop the "/1".
//   - fractions: always "<num>/<den>", e.g. "3/1".
//   - decimal(d): truncated decimal expansion with d fractional digits.
//
// Layouts:
//   - bracketed (default): "[a, b]\n" per row.
//   - header: a "(r, c)" line, then "|a b |\n" per row.
package matrix

import (
	"strings"

	"github.com/katalvlaran/exact/bignum"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDecimal selects exact rendering unless WithDecimal is applied.
	DefaultDecimal = false

	// DefaultDecimalDigits is the number of fractional digits used by
	// WithDecimal callers that do not care (e.g. the CLI fallback).
	DefaultDecimalDigits = 6

	// DefaultFractions keeps integral values rendered without "/1".
	DefaultFractions = false

	// DefaultHeader selects the bracketed layout without a dimension line.
	DefaultHeader = false
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "

	_fmtBarOpen  = "|"
	_fmtBarClose = "|\n"
	_fmtBarSep   = " "
)

// ---------- Internal panic messages ----------

const (
	panicDecimalDigitsInvalid = "matrix: WithDecimal: digits must be non-negative"
)

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	decimal   bool // DefaultDecimal
	digits    int  // DefaultDecimalDigits; used only when decimal is set
	fractions bool // DefaultFractions
	header    bool // DefaultHeader
}

// WithDecimal renders every element as a truncated decimal with the given
// number of fractional digits. Panics when digits < 0.
func WithDecimal(digits int) Option {
	if digits < 0 {
		panic(panicDecimalDigitsInvalid)
	}

	return func(o *Options) {
		o.decimal = true
		o.digits = digits
	}
}

// WithFractions renders every element as "<num>/<den>" and disables decimal mode.
func WithFractions() Option {
	return func(o *Options) {
		o.decimal = false
		o.fractions = true
	}
}

// WithExact restores the default exact rendering.
func WithExact() Option {
	return func(o *Options) {
		o.decimal = false
		o.fractions = false
	}
}

// WithHeader prefixes the output with the "(r, c)" dimension line and draws
// rows as "|a b |". It is independent of the number rendering mode.
func WithHeader() Option {
	return func(o *Options) { o.header = true }
}

// gatherOptions applies user setters on top of the defaults in order
// (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		decimal:   DefaultDecimal,
		digits:    DefaultDecimalDigits,
		fractions: DefaultFractions,
		header:    DefaultHeader,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// renderNumber formats one element under the resolved options.
func (o Options) renderNumber(v bignum.Number) string {
	switch {
	case o.decimal:
		return v.DecimalString(o.digits)
	case o.fractions:
		return v.Rational().FracString()
	default:
		return v.String()
	}
}

// Format renders m row by row as "[a, b]\n[c, d]\n" under the given options.
// Implementation:
//   - Stage 1: validate m is non-nil and resolve options.
//   - Stage 2: walk rows then columns, writing into a strings.Builder.
//
// Errors:
//   - ErrNilMatrix, or an At error from a custom Matrix implementation.
//
// Complexity:
//   - Time O(r*c * digits per element), Space O(output).
func Format(m Matrix, opts ...Option) (string, error) {
	if err := ValidateNotNil(m); err != nil {
		return "", matrixErrorf(opFormat, err)
	}
	if d, ok := m.(*Dense); ok {
		return format(d, gatherOptions(opts...)), nil
	}
	d, err := toDense(m)
	if err != nil {
		return "", matrixErrorf(opFormat, err)
	}

	return format(d, gatherOptions(opts...)), nil
}

// format is the shared renderer behind Format and (*Dense).String.
func format(m *Dense, o Options) string {
	if o.header {
		return formatHeader(m, o)
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.dim.Rows; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.dim.Cols
		for j = 0; j < m.dim.Cols; j++ {
			b.WriteString(o.renderNumber(m.data[base+j]))
			if j+1 < m.dim.Cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// formatHeader writes the dimension line, then every element followed by a
// single space between bars.
func formatHeader(m *Dense, o Options) string {
	var b strings.Builder
	b.WriteString(m.dim.String())
	b.WriteByte('\n')
	var i, j, base int
	for i = 0; i < m.dim.Rows; i++ {
		b.WriteString(_fmtBarOpen)
		base = i * m.dim.Cols
		for j = 0; j < m.dim.Cols; j++ {
			b.WriteString(o.renderNumber(m.data[base+j]))
			b.WriteString(_fmtBarSep)
		}
		b.WriteString(_fmtBarClose)
	}

	return b.String()
}
