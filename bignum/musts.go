package bignum

import "fmt"

// MustParseWhole is like [ParseWhole] but panics if the string cannot be parsed.
func MustParseWhole(s string) Whole {
	w, err := ParseWhole(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseWhole(%q) failed: %v", s, err))
	}
	return w
}

// MustParseInteger is like [ParseInteger] but panics if the string cannot be parsed.
func MustParseInteger(s string) Integer {
	x, err := ParseInteger(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseInteger(%q) failed: %v", s, err))
	}
	return x
}

// MustParseNumber is like [ParseNumber] but panics if the string cannot be parsed.
func MustParseNumber(s string) Number {
	n, err := ParseNumber(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseNumber(%q) failed: %v", s, err))
	}
	return n
}

// MustFraction is like [NewFraction] but panics if den is zero.
func MustFraction(num int64, den uint64) Number {
	n, err := NewFraction(num, den)
	if err != nil {
		panic(fmt.Sprintf("MustFraction(%v, %v) failed: %v", num, den, err))
	}
	return n
}

// MustRational is like [NewRational] but panics if den is zero.
func MustRational(num Integer, den Whole) Rational {
	r, err := NewRational(num, den)
	if err != nil {
		panic(fmt.Sprintf("MustRational(%v, %v) failed: %v", num, den, err))
	}
	return r
}

// MustQuo is like [Number.Quo] but panics on division by zero.
func (n Number) MustQuo(m Number) Number {
	q, err := n.Quo(m)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", m, err))
	}
	return q
}
