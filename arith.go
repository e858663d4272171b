// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"math/bits"
)

// A Word is a single block of a BigInt magnitude. Its value is always in the
// range [0, radix) for the radix of the BigInt it belongs to.
type Word uint64

const (
	// MaxRadixDigits is the number of decimal digits held by a block of
	// MaxRadix.
	MaxRadixDigits = 19
	// MaxRadix is the largest supported block radix: the largest power of
	// 10 that fits in a Word.
	MaxRadix Word = 10000000000000000000
	// DefaultRadix is the block radix of values that never had one set
	// explicitly.
	DefaultRadix Word = 1000000000
)

var pow10tab = [...]uint64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
	10000000000, 100000000000, 1000000000000, 10000000000000, 100000000000000, 1000000000000000,
	10000000000000000, 100000000000000000, 1000000000000000000, 10000000000000000000,
}

func pow10(n uint) Word {
	return Word(pow10tab[n])
}

// radixDigits returns k such that b == 10**k with 1 <= k <= MaxRadixDigits,
// or 0 if b is not a valid block radix.
func radixDigits(b Word) uint {
	for k := uint(1); k <= MaxRadixDigits; k++ {
		if Word(pow10tab[k]) == b {
			return k
		}
	}
	return 0
}

// ValidRadix reports whether b can be used as a block radix, that is, whether b
// is 10**k for some 1 <= k <= MaxRadixDigits.
func ValidRadix(b Word) bool {
	return radixDigits(b) != 0
}

var pow2digitsTab = [...]uint{
	1, 1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4, 4, 4, 5, 5,
	5, 6, 6, 6, 7, 7, 7, 7, 8, 8, 8, 9, 9, 9, 10, 10,
	10, 10, 11, 11, 11, 12, 12, 12, 13, 13, 13, 13, 14, 14, 14, 15,
	15, 15, 16, 16, 16, 16, 17, 17, 17, 18, 18, 18, 19, 19, 19, 20, 20,
}

// decDigits returns n such that 10**(n-1) <= x < 10**n.
// In other words, n the number of digits required to represent x.
// Returns 0 for x == 0.
func decDigits(x Word) (n uint) {
	n = pow2digitsTab[bits.Len64(uint64(x))]
	if uint64(x) < pow10tab[n-1] {
		n--
	}
	return n
}

//-----------------------------------------------------------------------------
// Arithmetic primitives
//
// All primitives take the block radix b as their last argument. Operands are
// expected to be in [0, b) unless stated otherwise.

// addWWW returns s = (x + y + c) mod b and the carry (x + y + c) / b, which is
// either 0 or 1.
func addWWW(x, y, c, b Word) (s, cc Word) {
	r, c0 := bits.Add64(uint64(x), uint64(y), uint64(c))
	// x + y + c < 2*b, so if it overflowed 64 bits, subtracting b wraps
	// back into range.
	if c0 != 0 || r >= uint64(b) {
		return Word(r - uint64(b)), 1
	}
	return Word(r), 0
}

// subWWW returns d = (x - y - c) mod b and the borrow, either 0 or 1.
func subWWW(x, y, c, b Word) (d, cc Word) {
	r, c0 := bits.Sub64(uint64(x), uint64(y), uint64(c))
	if c0 != 0 {
		return Word(r + uint64(b)), 1
	}
	return Word(r), 0
}

// mulAddWWW returns q, r such that q*b + r = x*y + c.
func mulAddWWW(x, y, c, b Word) (q, r Word) {
	hi, lo := bits.Mul64(uint64(x), uint64(y))
	var cc uint64
	lo, cc = bits.Add64(lo, uint64(c), 0)
	hi += cc
	// x*y + c <= (b-1)**2 + b-1 < b * 2**64, thus hi < b.
	qq, rr := bits.Div64(hi, lo, uint64(b))
	return Word(qq), Word(rr)
}

// divWW returns q, r such that q*y + r = u1*b + u0. u1 must be < y.
func divWW(u1, u0, y, b Word) (q, r Word) {
	hi, lo := bits.Mul64(uint64(u1), uint64(b))
	var cc uint64
	lo, cc = bits.Add64(lo, uint64(u0), 0)
	hi += cc
	qq, rr := bits.Div64(hi, lo, uint64(y))
	return Word(qq), Word(rr)
}

// The resulting carry c is either 0 or 1.
func addVV(z, x, y []Word, b Word) (c Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		z[i], c = addWWW(x[i], y[i], c, b)
	}
	return
}

// The resulting borrow c is either 0 or 1.
func subVV(z, x, y []Word, b Word) (c Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		z[i], c = subWWW(x[i], y[i], c, b)
	}
	return
}

// addVW adds y to x. The resulting carry c is either 0 or 1.
func addVW(z, x []Word, y, b Word) (c Word) {
	c = y
	for i := 0; i < len(z) && i < len(x); i++ {
		if c == 0 {
			if !same(z[i:], x[i:]) {
				copy(z[i:], x[i:])
			}
			return 0
		}
		z[i], c = addWWW(x[i], 0, c, b)
	}
	return
}

// subVW subtracts y from x. The resulting borrow c is either 0 or 1.
func subVW(z, x []Word, y, b Word) (c Word) {
	c = y
	for i := 0; i < len(z) && i < len(x); i++ {
		if c == 0 {
			if !same(z[i:], x[i:]) {
				copy(z[i:], x[i:])
			}
			return 0
		}
		z[i], c = subWWW(x[i], 0, c, b)
	}
	return
}

// mulAddVWW sets z to x*y + r and returns the carry.
func mulAddVWW(z, x []Word, y, r, b Word) (c Word) {
	c = r
	for i := 0; i < len(z) && i < len(x); i++ {
		c, z[i] = mulAddWWW(x[i], y, c, b)
	}
	return
}

// addMulVVW sets z to z + x*y and returns the carry.
func addMulVVW(z, x []Word, y, b Word) (c Word) {
	for i := 0; i < len(z) && i < len(x); i++ {
		// x[i]*y + z[i] + c <= (b-1)**2 + 2*(b-1) < b * 2**64
		hi, lo := bits.Mul64(uint64(x[i]), uint64(y))
		var cc uint64
		lo, cc = bits.Add64(lo, uint64(z[i]), 0)
		hi += cc
		lo, cc = bits.Add64(lo, uint64(c), 0)
		hi += cc
		q, r := bits.Div64(hi, lo, uint64(b))
		c, z[i] = Word(q), Word(r)
	}
	return
}

// divWVW sets z to (xn*b**len(x) + x) / y and returns the remainder. xn must be
// < y.
func divWVW(z []Word, xn Word, x []Word, y, b Word) (r Word) {
	r = xn
	for i := len(z) - 1; i >= 0; i-- {
		z[i], r = divWW(r, x[i], y, b)
	}
	return
}
