// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"bytes"
	"fmt"
	"math"
)

const debugBigInt = false

// A BigInt represents a signed arbitrary-precision integer.
// The zero value for a BigInt represents the value 0 with DefaultRadix.
//
// Internal representation: the magnitude is stored in abs as blocks of radix
// 10**k, least significant block first. A zero radix stands for DefaultRadix.
//
// x             neg      abs
// -----------------------------------
// 0             false    empty
// x < 0         true     |x|
// x > 0         false    x
type BigInt struct {
	neg   bool
	radix Word
	abs   dec
}

// NewInt allocates and returns a new BigInt set to x.
func NewInt(x int64) *BigInt {
	return new(BigInt).SetInt64(x)
}

func (x *BigInt) base() Word {
	if x.radix == 0 {
		return DefaultRadix
	}
	return x.radix
}

// width returns the number of decimal digits per block.
func (x *BigInt) width() uint {
	return radixDigits(x.base())
}

// norm clears the sign of z if it is zero.
func (z *BigInt) norm() *BigInt {
	if len(z.abs) == 0 {
		z.neg = false
	}
	return z
}

// Radix returns the block radix of x.
func (x *BigInt) Radix() Word {
	return x.base()
}

// SetRadix re-encodes z in blocks of the given radix and returns z. radix must
// be 10**k for some 1 <= k <= MaxRadixDigits, otherwise SetRadix returns an
// error wrapping ErrInvalidBase and z is unchanged.
//
// The value of z does not change. Since block boundaries differ between
// radices, re-encoding costs O(n) in the number of decimal digits of z.
func (z *BigInt) SetRadix(radix Word) (*BigInt, error) {
	k := radixDigits(radix)
	if k == 0 {
		return nil, fmt.Errorf("radix %d is not a power of 10 in [10, 10**%d]: %w", radix, MaxRadixDigits, ErrInvalidBase)
	}
	if radix != z.base() {
		z.abs = z.abs.reencode(z.abs, z.width(), k, radix)
	}
	z.radix = radix
	return z, nil
}

// withRadix returns x if its radix is b, or a copy of x re-encoded with radix b
// otherwise. b must be a valid radix.
func (x *BigInt) withRadix(b Word) *BigInt {
	if x.base() == b {
		return x
	}
	t := &BigInt{neg: x.neg, radix: b}
	t.abs = t.abs.reencode(x.abs, x.width(), radixDigits(b), b)
	return t
}

// Blocks returns a copy of the blocks of the magnitude of x, least significant
// first. The result always has at least one element: 0 is reported as [0].
func (x *BigInt) Blocks() []Word {
	if len(x.abs) == 0 {
		return []Word{0}
	}
	return append([]Word(nil), x.abs...)
}

// SetBlocks sets z to the value represented by blocks in the given radix, least
// significant block first, negated if neg is set, and returns z. Blocks may
// hold values >= radix: their excess is carried into the following blocks.
// If radix is not valid, SetBlocks returns an error wrapping ErrInvalidBase
// and z is unchanged.
func (z *BigInt) SetBlocks(neg bool, blocks []Word, radix Word) (*BigInt, error) {
	if !ValidRadix(radix) {
		return nil, fmt.Errorf("radix %d: %w", radix, ErrInvalidBase)
	}
	z.abs = z.abs.set(blocks).normCarry(radix)
	z.radix = radix
	z.neg = neg
	return z.norm(), nil
}

// SetInt64 sets z to x and returns z. The radix of z is unchanged.
func (z *BigInt) SetInt64(x int64) *BigInt {
	neg := false
	u := uint64(x)
	if x < 0 {
		neg = true
		u = -u
	}
	z.abs = z.abs.setUint64(u, z.base())
	z.neg = neg
	return z.norm()
}

// SetUint64 sets z to x and returns z. The radix of z is unchanged.
func (z *BigInt) SetUint64(x uint64) *BigInt {
	z.abs = z.abs.setUint64(x, z.base())
	z.neg = false
	return z
}

// Set sets z to x, including its radix, and returns z. The blocks of x are
// copied.
func (z *BigInt) Set(x *BigInt) *BigInt {
	if z != x {
		z.abs = z.abs.set(x.abs)
		z.neg = x.neg
		z.radix = x.radix
	}
	return z
}

// IsInt64 reports whether x can be represented as an int64.
func (x *BigInt) IsInt64() bool {
	v, ok := x.abs.uint64(x.base())
	if !ok {
		return false
	}
	if x.neg {
		return v <= 1<<63
	}
	return v <= math.MaxInt64
}

// Int64 returns the int64 representation of x.
// If x cannot be represented in an int64, the result is undefined.
func (x *BigInt) Int64() int64 {
	v, _ := x.abs.uint64(x.base())
	i := int64(v)
	if x.neg {
		i = -i
	}
	return i
}

// IsUint64 reports whether x can be represented as a uint64.
func (x *BigInt) IsUint64() bool {
	_, ok := x.abs.uint64(x.base())
	return ok && !x.neg
}

// Uint64 returns the uint64 representation of x.
// If x cannot be represented in a uint64, the result is undefined.
func (x *BigInt) Uint64() uint64 {
	v, _ := x.abs.uint64(x.base())
	return v
}

// Sign returns:
//
//	-1 if x <  0
//	 0 if x == 0
//	+1 if x >  0
//
func (x *BigInt) Sign() int {
	if len(x.abs) == 0 {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// IsZero reports whether x is 0.
func (x *BigInt) IsZero() bool {
	return len(x.abs) == 0
}

// Neg sets z to -x and returns z. The negation of 0 is 0.
func (z *BigInt) Neg(x *BigInt) *BigInt {
	z.Set(x)
	z.neg = len(z.abs) > 0 && !z.neg
	return z
}

// Abs sets z to |x| (the absolute value of x) and returns z.
func (z *BigInt) Abs(x *BigInt) *BigInt {
	z.Set(x)
	z.neg = false
	return z
}

// Add sets z to the sum x+y and returns z. The result has the radix of x; y is
// re-encoded first if its radix differs.
func (z *BigInt) Add(x, y *BigInt) *BigInt {
	b, radix := x.base(), x.radix
	y = y.withRadix(b)
	neg := x.neg
	if x.neg == y.neg {
		// x + y == x + y
		// (-x) + (-y) == -(x + y)
		z.abs = z.abs.add(x.abs, y.abs, b)
	} else {
		// x + (-y) == x - y == -(y - x)
		// (-x) + y == y - x == -(x - y)
		if x.abs.cmp(y.abs) >= 0 {
			z.abs = z.abs.sub(x.abs, y.abs, b)
		} else {
			neg = !neg
			z.abs = z.abs.sub(y.abs, x.abs, b)
		}
	}
	z.radix = radix
	z.neg = neg
	return z.norm()
}

// Sub sets z to the difference x-y and returns z. The result has the radix of
// x; y is re-encoded first if its radix differs.
func (z *BigInt) Sub(x, y *BigInt) *BigInt {
	b, radix := x.base(), x.radix
	if x == y {
		z.abs = z.abs[:0]
		z.radix = radix
		z.neg = false
		return z
	}
	y = y.withRadix(b)
	neg := x.neg
	if x.neg != y.neg {
		// x - (-y) == x + y
		// (-x) - y == -(x + y)
		z.abs = z.abs.add(x.abs, y.abs, b)
	} else {
		// x - y == x - y == -(y - x)
		// (-x) - (-y) == y - x == -(x - y)
		if x.abs.cmp(y.abs) >= 0 {
			z.abs = z.abs.sub(x.abs, y.abs, b)
		} else {
			neg = !neg
			z.abs = z.abs.sub(y.abs, x.abs, b)
		}
	}
	z.radix = radix
	z.neg = neg
	return z.norm()
}

// Mul sets z to the product x*y and returns z. The result has the radix of x;
// y is re-encoded first if its radix differs.
func (z *BigInt) Mul(x, y *BigInt) *BigInt {
	b, radix := x.base(), x.radix
	y = y.withRadix(b)
	// x * y == x * y
	// x * (-y) == -(x * y)
	// (-x) * y == -(x * y)
	// (-x) * (-y) == x * y
	neg := x.neg != y.neg
	z.abs = z.abs.mul(x.abs, y.abs, b)
	z.radix = radix
	z.neg = neg
	return z.norm()
}

// Inc sets z to x+1 and returns z.
func (z *BigInt) Inc(x *BigInt) *BigInt {
	return z.Add(x, x.one())
}

// Dec sets z to x-1 and returns z.
func (z *BigInt) Dec(x *BigInt) *BigInt {
	return z.Sub(x, x.one())
}

// one returns 1 with the radix of x.
func (x *BigInt) one() *BigInt {
	return &BigInt{radix: x.radix, abs: dec{1}}
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
//
// Negative values are less than non-negative ones. Values of the same sign
// are ordered by magnitude.
func (x *BigInt) Cmp(y *BigInt) (r int) {
	switch {
	case x == y:
		// nothing to do
	case x.neg == y.neg:
		r = x.CmpAbs(y)
		if x.neg {
			r = -r
		}
	case x.neg:
		r = -1
	default:
		r = 1
	}
	return
}

// CmpAbs compares the absolute values of x and y and returns:
//
//	-1 if |x| <  |y|
//	 0 if |x| == |y|
//	+1 if |x| >  |y|
//
func (x *BigInt) CmpAbs(y *BigInt) int {
	if x.base() == y.base() {
		return x.abs.cmp(y.abs)
	}
	// Blocks are not aligned: compare the decimal expansions, first by
	// length, then digit by digit. Neither has leading zeros.
	kx, ky := x.width(), y.width()
	dx, dy := x.abs.digits(kx), y.abs.digits(ky)
	switch {
	case dx < dy:
		return -1
	case dx > dy:
		return 1
	}
	return bytes.Compare(x.abs.appendDecimal(nil, kx), y.abs.appendDecimal(nil, ky))
}

// Equal reports whether x == y.
func (x *BigInt) Equal(y *BigInt) bool { return x.Cmp(y) == 0 }

// Less reports whether x < y.
func (x *BigInt) Less(y *BigInt) bool { return x.Cmp(y) < 0 }

// LessEqual reports whether x <= y.
func (x *BigInt) LessEqual(y *BigInt) bool { return x.Cmp(y) <= 0 }

// Greater reports whether x > y.
func (x *BigInt) Greater(y *BigInt) bool { return x.Cmp(y) > 0 }

// GreaterEqual reports whether x >= y.
func (x *BigInt) GreaterEqual(y *BigInt) bool { return x.Cmp(y) >= 0 }

func (x *BigInt) validate() {
	if !ValidRadix(x.base()) {
		panic(fmt.Sprintf("invalid radix %d", x.radix))
	}
	m := len(x.abs)
	if m == 0 {
		if x.neg {
			panic("negative zero")
		}
		return
	}
	if x.abs[m-1] == 0 {
		panic(fmt.Sprintf("most significant block of %v is zero", x.abs))
	}
	for i, w := range x.abs {
		if w >= x.base() {
			panic(fmt.Sprintf("block %d of %v is out of range for radix %d", i, x.abs, x.base()))
		}
	}
}
