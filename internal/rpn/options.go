// SPDX-License-Identifier: MIT

package rpn

import (
	"github.com/katalvlaran/exact/bignum"
	"github.com/katalvlaran/exact/fixed"
)

// DefaultPrecision is the grid step of sqrt and fractional pow.
var DefaultPrecision = bignum.MustFraction(1, 10000)

const panicPrecisionInvalid = "rpn: WithPrecision: precision must be positive"

// Option configures an Evaluator.
type Option func(*Options)

// Options holds the effective Evaluator configuration.
type Options struct {
	precision bignum.Number
	fixedOpts []fixed.Option
}

// WithPrecision sets the precision of sqrt and fractional pow.
// Panics when p is not positive.
func WithPrecision(p bignum.Number) Option {
	if p.Sign() <= 0 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = p }
}

// WithFixedOptions forwards options to fixed.Sqrt and fixed.PowRatio.
func WithFixedOptions(opts ...fixed.Option) Option {
	return func(o *Options) { o.fixedOpts = append(o.fixedOpts, opts...) }
}

func gatherOptions(user ...Option) Options {
	o := Options{precision: DefaultPrecision}
	for _, set := range user {
		set(&o)
	}

	return o
}
