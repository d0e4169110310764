// SPDX-License-Identifier: MIT

// Package rpn evaluates reverse-Polish expressions over exact numbers.
//
// Tokens are separated by whitespace. A token is either a number accepted by
// bignum.ParseNumber or one of the operators
//
//	+ - * /      binary arithmetic, exact
//	neg inv      unary negation and reciprocal, exact
//	dup swap drop clear
//	sqrt         square root through fixed.Sqrt
//	pow          b e pow: exact for integral |e| <= MaxExactExponent,
//	             fixed.PowRatio otherwise
//
// sqrt and fractional pow leave the exact domain: operands are converted to
// fixed.Number and the approximation is brought back as an exact fraction on
// the precision grid.
package rpn

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/exact/bignum"
	"github.com/katalvlaran/exact/fixed"
)

// Evaluator holds an operand stack that persists across Eval calls.
// It is not safe for concurrent use.
type Evaluator struct {
	stack []bignum.Number
	opts  Options
}

// New returns an Evaluator with an empty stack.
func New(opts ...Option) *Evaluator {
	return &Evaluator{opts: gatherOptions(opts...)}
}

// Eval runs every token of line against the stack. When a token fails the
// stack is restored to its state before the call.
//
// Errors:
//   - ErrUnknownToken, ErrStackUnderflow, ErrUndefined.
//   - bignum.ErrDivisionByZero from "/", "inv" and negative powers of zero.
//
// Every error names the failing token and its 1-based position.
func (e *Evaluator) Eval(line string) error {
	saved := append([]bignum.Number(nil), e.stack...)
	for pos, tok := range strings.Fields(line) {
		if err := e.step(tok); err != nil {
			e.stack = saved
			return fmt.Errorf("token %d %q: %w", pos+1, tok, err)
		}
	}

	return nil
}

// Top returns the top of the stack.
func (e *Evaluator) Top() (bignum.Number, error) {
	if len(e.stack) == 0 {
		return bignum.Number{}, ErrStackUnderflow
	}

	return e.stack[len(e.stack)-1], nil
}

// Stack returns a copy of the stack, bottom first.
func (e *Evaluator) Stack() []bignum.Number {
	return append([]bignum.Number(nil), e.stack...)
}

// Len returns the stack depth.
func (e *Evaluator) Len() int { return len(e.stack) }

// Push places v on top of the stack.
func (e *Evaluator) Push(v bignum.Number) { e.stack = append(e.stack, v) }

// Reset empties the stack.
func (e *Evaluator) Reset() { e.stack = e.stack[:0] }

// Eval evaluates expr on a fresh Evaluator and returns the top of the stack.
func Eval(expr string, opts ...Option) (bignum.Number, error) {
	e := New(opts...)
	if err := e.Eval(expr); err != nil {
		return bignum.Number{}, err
	}

	return e.Top()
}

func (e *Evaluator) step(tok string) error {
	switch tok {
	case "+":
		return e.binary(func(a, b bignum.Number) (bignum.Number, error) { return a.Add(b), nil })
	case "-":
		return e.binary(func(a, b bignum.Number) (bignum.Number, error) { return a.Sub(b), nil })
	case "*":
		return e.binary(func(a, b bignum.Number) (bignum.Number, error) { return a.Mul(b), nil })
	case "/":
		return e.binary(bignum.Number.Quo)
	case "pow":
		return e.binary(e.pow)
	case "neg":
		return e.unary(func(a bignum.Number) (bignum.Number, error) { return a.Neg(), nil })
	case "inv":
		return e.unary(bignum.Number.Inv)
	case "sqrt":
		return e.unary(e.sqrt)
	case "dup":
		top, err := e.Top()
		if err != nil {
			return err
		}
		e.Push(top)
		return nil
	case "swap":
		n := len(e.stack)
		if n < 2 {
			return ErrStackUnderflow
		}
		e.stack[n-1], e.stack[n-2] = e.stack[n-2], e.stack[n-1]
		return nil
	case "drop":
		_, err := e.pop()
		return err
	case "clear":
		e.Reset()
		return nil
	}

	v, err := bignum.ParseNumber(tok)
	if err != nil {
		return ErrUnknownToken
	}
	e.Push(v)

	return nil
}

func (e *Evaluator) pop() (bignum.Number, error) {
	top, err := e.Top()
	if err != nil {
		return top, err
	}
	e.stack = e.stack[:len(e.stack)-1]

	return top, nil
}

func (e *Evaluator) unary(f func(a bignum.Number) (bignum.Number, error)) error {
	a, err := e.pop()
	if err != nil {
		return err
	}
	r, err := f(a)
	if err != nil {
		return err
	}
	e.Push(r)

	return nil
}

func (e *Evaluator) binary(f func(a, b bignum.Number) (bignum.Number, error)) error {
	if len(e.stack) < 2 {
		return ErrStackUnderflow
	}
	b, _ := e.pop()
	a, _ := e.pop()
	r, err := f(a, b)
	if err != nil {
		return err
	}
	e.Push(r)

	return nil
}

func (e *Evaluator) sqrt(a bignum.Number) (bignum.Number, error) {
	return FromFixed(fixed.Sqrt(ToFixed(a), ToFixed(e.opts.precision), e.opts.fixedOpts...))
}

// MaxExactExponent bounds |e| for the exact integral pow. Larger exponents
// go through fixed.PowRatio unless the base is 0, 1 or -1, so a huge power
// ends in ErrUndefined instead of an unbounded digit expansion.
const MaxExactExponent = 1 << 16

func (e *Evaluator) pow(b, p bignum.Number) (bignum.Number, error) {
	if p.IsInteger() {
		k, ok := p.Numerator().Int64()
		bounded := k >= -MaxExactExponent && k <= MaxExactExponent
		trivial := b.IsZero() || b.Abs().Equal(bignum.One())
		if ok && (bounded || trivial) {
			return b.Pow(k)
		}
	}

	return FromFixed(fixed.PowRatio(ToFixed(b), ToFixed(p), ToFixed(e.opts.precision), e.opts.fixedOpts...))
}

// ToFixed converts n to the fixed-point family. Values whose numerator or
// denominator exceed int64 go through float64 and lose precision.
func ToFixed(n bignum.Number) fixed.Number {
	num, okNum := n.Numerator().Int64()
	den, okDen := n.Denominator().Uint64()
	if okNum && okDen && den <= math.MaxInt64 {
		return fixed.NewRatio(num, int64(den))
	}

	return fixed.FromFloat64(n.Float64())
}

// FromFixed converts a finite fixed.Number back to an exact number.
// Non-finite values yield ErrUndefined.
func FromFixed(f fixed.Number) (bignum.Number, error) {
	if !f.IsFinite() {
		return bignum.Number{}, ErrUndefined
	}

	return bignum.NewFraction(f.Numerator(), uint64(f.Denominator()))
}
