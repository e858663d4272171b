// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import "math/bits"

// dec is an unsigned integer x of the form
//
//   x = x[n-1]*b^(n-1) + x[n-2]*b^(n-2) + ... + x[1]*b + x[0]
//
// with 0 <= x[i] < b and 0 <= i < n is stored in a slice of length n, with the
// blocks x[i] as the slice elements. The block radix b is not part of the
// slice: every method that needs it takes it as an argument.
//
// A number is normalized if the slice contains no leading 0 blocks.
// During arithmetic operations, denormalized values may occur but are
// always normalized before returning the final result. The normalized
// representation of 0 is the empty or nil slice (length = 0).
type dec []Word

func (z dec) clear() {
	for i := range z {
		z[i] = 0
	}
}

// norm truncates leading zero blocks.
func (z dec) norm() dec {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[0:i]
}

// normCarry propagates any block value >= b into the next blocks, extending z
// as needed, then truncates leading zero blocks.
func (z dec) normCarry(b Word) dec {
	var c Word
	for i := range z {
		s, cc := bits.Add64(uint64(z[i]), uint64(c), 0)
		// cc <= 1 < b
		q, r := bits.Div64(cc, s, uint64(b))
		c, z[i] = Word(q), Word(r)
	}
	for c != 0 {
		z = append(z, c%b)
		c /= b
	}
	return z.norm()
}

func (z dec) make(n int) dec {
	if n <= cap(z) {
		return z[:n] // reuse z
	}
	if n == 1 {
		// Most decs start small and stay that way; don't over-allocate.
		return make(dec, 1)
	}
	// Choosing a good value for e has significant performance impact
	// because it increases the chance that a value can be reused.
	const e = 4 // extra capacity
	return make(dec, n, n+e)
}

func (z dec) set(x dec) dec {
	z = z.make(len(x))
	copy(z, x)
	return z
}

// setWord sets z to x. x must be < b.
func (z dec) setWord(x Word) dec {
	if x == 0 {
		return z[:0]
	}
	z = z.make(1)
	z[0] = x
	return z
}

// setUint64 sets z to x by repeatedly extracting x mod b into successive
// blocks.
func (z dec) setUint64(x uint64, b Word) dec {
	if x == 0 {
		return z[:0]
	}
	n := 0
	for t := x; t > 0; t /= uint64(b) {
		n++
	}
	z = z.make(n)
	for i := range z {
		z[i] = Word(x % uint64(b))
		x /= uint64(b)
	}
	return z
}

// uint64 returns the value of x and true if it fits in a uint64.
func (x dec) uint64(b Word) (v uint64, ok bool) {
	for i := len(x) - 1; i >= 0; i-- {
		hi, lo := bits.Mul64(v, uint64(b))
		if hi != 0 {
			return 0, false
		}
		var c uint64
		lo, c = bits.Add64(lo, uint64(x[i]), 0)
		if c != 0 {
			return 0, false
		}
		v = lo
	}
	return v, true
}

// digits returns the number of decimal digits of x when each block holds k
// digits. Returns 0 for x == 0.
func (x dec) digits(k uint) uint {
	for msw := len(x) - 1; msw >= 0; msw-- {
		if x[msw] != 0 {
			return uint(msw)*k + decDigits(x[msw])
		}
	}
	return 0
}

func (x dec) isOdd() bool {
	// b is a power of 10, hence even: the parity of x is the parity of x[0].
	return len(x) > 0 && x[0]&1 != 0
}

func (x dec) cmp(y dec) (r int) {
	m := len(x)
	n := len(y)
	if m != n || m == 0 {
		switch {
		case m < n:
			r = -1
		case m > n:
			r = 1
		}
		return
	}

	i := m - 1
	for i > 0 && x[i] == y[i] {
		i--
	}

	switch {
	case x[i] < y[i]:
		r = -1
	case x[i] > y[i]:
		r = 1
	}
	return
}

func (z dec) add(x, y dec, b Word) dec {
	m := len(x)
	n := len(y)

	switch {
	case m < n:
		return z.add(y, x, b)
	case m == 0:
		// n == 0 because m >= n; result is 0
		return z[:0]
	case n == 0:
		// result is x
		return z.set(x)
	}
	// m > 0

	z = z.make(m + 1)
	c := addVV(z[0:n], x, y, b)
	if m > n {
		c = addVW(z[n:m], x[n:], c, b)
	}
	z[m] = c

	return z.norm()
}

// sub sets z to x - y. x must be >= y.
func (z dec) sub(x, y dec, b Word) dec {
	m := len(x)
	n := len(y)

	switch {
	case m < n:
		panic("underflow")
	case m == 0:
		// n == 0 because m >= n; result is 0
		return z[:0]
	case n == 0:
		// result is x
		return z.set(x)
	}
	// m > 0

	z = z.make(m)
	c := subVV(z[0:n], x, y, b)
	if m > n {
		c = subVW(z[n:], x[n:], c, b)
	}
	if c != 0 {
		panic("underflow")
	}

	return z.norm()
}

func (z dec) mulAddWW(x dec, y, r, b Word) dec {
	m := len(x)
	if m == 0 || y == 0 {
		return z.setWord(r) // result is r
	}
	// m > 0

	z = z.make(m + 1)
	z[m] = mulAddVWW(z[0:m], x, y, r, b)

	return z.norm()
}

// mul sets z to x*y using schoolbook multiplication: every block of y is
// multiplied with x and accumulated into z at the block's offset, the carry of
// each row being flushed into the next block of z.
func (z dec) mul(x, y dec, b Word) dec {
	m := len(x)
	n := len(y)

	switch {
	case m < n:
		return z.mul(y, x, b)
	case m == 0 || n == 0:
		return z[:0]
	case n == 1:
		return z.mulAddWW(x, y[0], 0, b)
	}
	// m >= n > 1

	// determine if z can be reused
	if alias(z, x) || alias(z, y) {
		z = nil // z is an alias for x or y - cannot reuse
	}

	z = z.make(m + n)
	z.clear()
	for i, d := range y {
		if d != 0 {
			z[m+i] = addMulVVW(z[i:i+m], x, d, b)
		}
	}

	return z.norm()
}

// divW sets z to x / y and returns the remainder r. y must not be 0.
func (z dec) divW(x dec, y, b Word) (q dec, r Word) {
	m := len(x)
	switch {
	case y == 0:
		panic("division by zero")
	case y == 1:
		q = z.set(x) // result is x
		return
	case m == 0:
		q = z[:0] // result is 0
		return
	}
	// m > 0
	z = z.make(m)
	r = divWVW(z, 0, x, y, b)
	q = z.norm()
	return
}

// div returns q = u/v and r = u%v, reusing z and z2 for storage. v must not be
// 0.
func (z dec) div(z2, u, v dec, b Word) (q, r dec) {
	if len(v) == 0 {
		panic("division by zero")
	}

	if u.cmp(v) < 0 {
		q = z[:0]
		r = z2.set(u)
		return
	}

	if len(v) == 1 {
		var r2 Word
		q, r2 = z.divW(u, v[0], b)
		r = z2.setWord(r2)
		return
	}

	q, r = z.divLarge(z2, u, v, b)
	return
}

// divLarge implements long division for len(v) >= 2 and u >= v.
//
// The divisor is aligned with the most significant blocks of the running
// remainder, one block position at a time from the top. At each position j,
// the quotient block is the number of times v*b**j fits into the remainder. It
// is found by doubling v (v, 2v, 4v, ...) while the multiple does not exceed the
// remainder's top blocks, then subtracting the multiples greedily from the
// largest down. A position where v does not fit yields a zero quotient block.
func (z dec) divLarge(z2, u, v dec, b Word) (q, r dec) {
	n := len(v)
	m := len(u) - n

	if alias(z, u) || alias(z, v) {
		z = nil
	}
	q = z.make(m + 1)
	q.clear()

	// rem is a private copy of u. Its length never changes: blocks above the
	// current value are kept at zero.
	rem := dec(nil).set(u)
	var mults []dec
	for j := m; j >= 0; j-- {
		// the remainder's blocks at and above position j, i.e. rem / b**j
		w := rem[j:].norm()
		if w.cmp(v) < 0 {
			continue // q[j] == 0
		}
		mults = append(mults[:0], v)
		for {
			t := mults[len(mults)-1]
			t = dec(nil).add(t, t, b)
			if t.cmp(w) > 0 {
				break
			}
			mults = append(mults, t)
		}
		var k Word
		for i := len(mults) - 1; i >= 0; i-- {
			if mults[i].cmp(w) <= 0 {
				// w shares its backing array with rem: the subtraction
				// updates rem in place.
				w = w.sub(w, mults[i], b)
				k |= 1 << uint(i)
			}
		}
		q[j] = k
	}

	q = q.norm()
	r = z2.set(rem.norm())
	return
}

// same reports whether x and y are the same slice.
func same(x, y []Word) bool {
	return len(x) == len(y) && len(x) > 0 && &x[0] == &y[0]
}

// alias reports whether x and y share the same base array.
func alias(x, y []Word) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}
