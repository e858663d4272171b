// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements division, remainder and modular exponentiation.

package bigint

import "fmt"

// QuoRem sets z to the quotient x/y and r to the remainder x%y and returns the
// pair (z, r) for y != 0. If y == 0, QuoRem returns an error wrapping
// ErrDivideByZero and leaves z and r unchanged.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// The remainder has the sign of x, or is 0. Both results have the radix of x.
// z and r must be distinct; either may alias x or y.
func (z *BigInt) QuoRem(x, y, r *BigInt) (*BigInt, *BigInt, error) {
	if len(y.abs) == 0 {
		return nil, nil, fmt.Errorf("QuoRem: %w", ErrDivideByZero)
	}
	z.quoRem(x, y, r)
	return z, r, nil
}

// quoRem is QuoRem for y != 0.
func (z *BigInt) quoRem(x, y, r *BigInt) {
	b, radix := x.base(), x.radix
	y = y.withRadix(b)
	// x / y == x / y
	// x / (-y) == -(x / y)
	// (-x) / y == -(x / y)
	// (-x) / (-y) == x / y
	qneg, rneg := x.neg != y.neg, x.neg
	z.abs, r.abs = z.abs.div(r.abs, x.abs, y.abs, b)
	z.radix, r.radix = radix, radix
	z.neg, r.neg = qneg, rneg
	z.norm()
	r.norm()
}

// Quo sets z to the quotient x/y for y != 0 and returns z. If y == 0, Quo
// returns an error wrapping ErrDivideByZero and z is unchanged. Quo implements
// truncated division (like Go); see QuoRem for more details.
func (z *BigInt) Quo(x, y *BigInt) (*BigInt, error) {
	if len(y.abs) == 0 {
		return nil, fmt.Errorf("Quo: %w", ErrDivideByZero)
	}
	z.quoRem(x, y, new(BigInt))
	return z, nil
}

// Rem sets z to the remainder x%y for y != 0 and returns z. If y == 0, Rem
// returns an error wrapping ErrDivideByZero and z is unchanged. Rem implements
// truncated modulus (like Go); see QuoRem for more details.
func (z *BigInt) Rem(x, y *BigInt) (*BigInt, error) {
	if len(y.abs) == 0 {
		return nil, fmt.Errorf("Rem: %w", ErrDivideByZero)
	}
	z.rem(x, y)
	return z, nil
}

// rem is Rem for y != 0.
func (z *BigInt) rem(x, y *BigInt) *BigInt {
	new(BigInt).quoRem(x, y, z)
	return z
}

// Divide returns the quotient and remainder of x/y as new values. It is
// shorthand for
//
//	new(BigInt).QuoRem(x, y, new(BigInt))
//
func Divide(x, y *BigInt) (q, r *BigInt, err error) {
	return new(BigInt).QuoRem(x, y, new(BigInt))
}

// Exp sets z = x**y mod m and returns z. The result has the radix of x.
//
// Exp returns an error wrapping ErrNegativeExponent if y < 0, or
// ErrDivideByZero if m == 0. In both cases z is unchanged.
//
// If y == 0, the result is 1. Intermediate results are reduced with Rem, so
// the result has the sign of x mod m.
func (z *BigInt) Exp(x, y, m *BigInt) (*BigInt, error) {
	switch {
	case y.neg:
		return nil, fmt.Errorf("Exp: %w", ErrNegativeExponent)
	case len(m.abs) == 0:
		return nil, fmt.Errorf("Exp: modulus: %w", ErrDivideByZero)
	}
	return z.Set(modExp(x, y, m)), nil
}

// ModExp returns base**exp mod m as a new value. See Exp.
func ModExp(base, exp, m *BigInt) (*BigInt, error) {
	return new(BigInt).Exp(base, exp, m)
}

// modExp computes x**y mod m by recursive squaring. y must be >= 0 and m != 0.
//
// The recursion depth is O(log y) and every level works with values already
// reduced mod m.
func modExp(x, y, m *BigInt) *BigInt {
	if len(y.abs) == 0 {
		return x.one()
	}
	xm := new(BigInt).rem(x, m)

	// y / 2, computed in y's own radix.
	h := &BigInt{radix: y.radix}
	h.abs, _ = h.abs.divW(y.abs, 2, y.base())

	a := modExp(xm, h, m)
	a.rem(a, m)

	sq := new(BigInt).Mul(a, a)
	sq.rem(sq, m)
	if !y.abs.isOdd() {
		return sq
	}
	t := new(BigInt).Mul(xm, sq)
	return t.rem(t, m)
}
