// SPDX-License-Identifier: MIT

// Package fixed: functional configuration for the iterative approximations
// (Sqrt, PowRatio). This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
package fixed

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxIterations bounds the Newton refinement loop.
	DefaultMaxIterations = 64

	// DefaultStrict controls what happens when MaxIterations is exhausted
	// before two iterates agree within precision.
	// false ⇒ return the last iterate; true ⇒ return Undefined().
	DefaultStrict = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxIterationsInvalid = "fixed: WithMaxIterations: n must be positive"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	maxIterations int  // > 0; DefaultMaxIterations
	strict        bool // DefaultStrict
}

// WithMaxIterations caps the number of Newton iterations.
//
// Errors:
//   - Panics when n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *Options) { o.maxIterations = n }
}

// WithStrict makes an approximation return Undefined() when it runs out of
// iterations before reaching the requested precision.
func WithStrict() Option {
	return func(o *Options) { o.strict = true }
}

// gatherOptions applies user setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		maxIterations: DefaultMaxIterations,
		strict:        DefaultStrict,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
