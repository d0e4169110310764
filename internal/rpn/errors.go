// SPDX-License-Identifier: MIT

package rpn

import "errors"

var (
	// ErrStackUnderflow is returned when an operator needs more operands
	// than the stack holds, or when a result is requested from an empty stack.
	ErrStackUnderflow = errors.New("rpn: stack underflow")

	// ErrUnknownToken is returned for a token that is neither a number nor an operator.
	ErrUnknownToken = errors.New("rpn: unknown token")

	// ErrUndefined is returned when an approximation has no finite value
	// (negative square root, overflow of the fixed-point range).
	ErrUndefined = errors.New("rpn: undefined result")
)
