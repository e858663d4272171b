// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides radix contexts with sticky errors for BigInts.
//
// All factory functions of the form
//
//    func (c *Context) NewT(x T) *bigint.BigInt
//
// create a new bigint.BigInt set to the value of x, with c's block radix.
//
// Operators that set a receiver z to function of other BigInt arguments like:
//
//    func (c *Context) UnaryOp(z, x *bigint.BigInt) *bigint.BigInt
//    func (c *Context) BinaryOp(z, x, y *bigint.BigInt) *bigint.BigInt
//
// set z to the result of z.Op(args), re-encoded in c's radix if needed, and
// return z.
//
// A Context catches errors: if an operation fails (division by zero, negative
// exponent, invalid input string), the error is recorded and z is returned
// unchanged. Further operations with the context will be no-ops (they simply
// return the receiver z) until (*Context).Err is called to check for errors.
// This allows chaining operations and checking for errors only once at the
// end of a computation.
package context

import (
	"fmt"

	"github.com/db47h/bigint"
)

// A Context is a wrapper around BigInts that facilitates management of block
// radices and error handling.
type Context struct {
	radix bigint.Word
	err   error
}

// New creates a new context with the given block radix. If radix is 0, it will
// be set to bigint.DefaultRadix. If radix is not a valid block radix, the
// context's radix is set to bigint.DefaultRadix and the error is recorded.
func New(radix bigint.Word) *Context {
	return new(Context).SetRadix(radix)
}

// Radix returns the block radix of c.
func (c *Context) Radix() bigint.Word {
	if c.radix == 0 {
		return bigint.DefaultRadix
	}
	return c.radix
}

// SetRadix sets c's block radix to radix and returns c.
//
// If radix == 0, it is set to bigint.DefaultRadix. An invalid radix records
// an error wrapping bigint.ErrInvalidBase and leaves c's radix unchanged.
func (c *Context) SetRadix(radix bigint.Word) *Context {
	// special case
	if radix == 0 {
		radix = bigint.DefaultRadix
	}
	if !bigint.ValidRadix(radix) {
		c.setErr(fmt.Errorf("context radix %d: %w", radix, bigint.ErrInvalidBase))
		return c
	}
	c.radix = radix
	return c
}

// New returns a new bigint.BigInt with value 0 and c's radix.
func (c *Context) New() *bigint.BigInt {
	z, _ := new(bigint.BigInt).SetRadix(c.Radix())
	return z
}

// NewInt64 returns a new *bigint.BigInt set to x.
func (c *Context) NewInt64(x int64) *bigint.BigInt {
	return c.New().SetInt64(x)
}

// NewUint64 returns a new *bigint.BigInt set to x.
func (c *Context) NewUint64(x uint64) *bigint.BigInt {
	return c.New().SetUint64(x)
}

// NewString returns a new BigInt with the value of s and a boolean indicating
// success. s must be in the format accepted by bigint.Parse. If the operation
// failed, the returned value is nil. Unlike Parse, NewString does not record
// errors in c.
func (c *Context) NewString(s string) (d *bigint.BigInt, success bool) {
	return c.New().SetString(s)
}

// Parse returns a new BigInt with the value of s. If s is not valid, the error
// is recorded and Parse returns a zero BigInt. If c already holds an error,
// Parse returns a zero BigInt without parsing s.
func (c *Context) Parse(s string) *bigint.BigInt {
	if c.err != nil {
		return c.New()
	}
	z, err := bigint.ParseRadix(s, c.Radix())
	if err != nil {
		c.setErr(err)
		return c.New()
	}
	return z
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// setErr records err unless an error is already pending.
func (c *Context) setErr(err error) {
	if c.err == nil {
		c.err = err
	}
}

// Set sets z to the value of x in c's radix and returns z.
func (c *Context) Set(z, x *bigint.BigInt) *bigint.BigInt {
	if c.err != nil {
		return z
	}
	return c.apply(z.Set(x))
}

// apply re-encodes z in c's radix and returns z.
func (c *Context) apply(z *bigint.BigInt) *bigint.BigInt {
	if z.Radix() != c.Radix() {
		// c.Radix() is always valid.
		z.SetRadix(c.Radix())
	}
	return z
}

// Add sets z to the sum x+y and returns z.
func (c *Context) Add(z, x, y *bigint.BigInt) *bigint.BigInt {
	if c.err != nil {
		return z
	}
	return c.apply(z.Add(x, y))
}

// Sub sets z to the difference x-y and returns z.
func (c *Context) Sub(z, x, y *bigint.BigInt) *bigint.BigInt {
	if c.err != nil {
		return z
	}
	return c.apply(z.Sub(x, y))
}

// Mul sets z to the product x*y and returns z.
func (c *Context) Mul(z, x, y *bigint.BigInt) *bigint.BigInt {
	if c.err != nil {
		return z
	}
	return c.apply(z.Mul(x, y))
}

// Quo sets z to the truncated quotient x/y and returns z. Division by zero is
// recorded as an error.
func (c *Context) Quo(z, x, y *bigint.BigInt) *bigint.BigInt {
	if c.err != nil {
		return z
	}
	if _, err := z.Quo(x, y); err != nil {
		c.setErr(err)
		return z
	}
	return c.apply(z)
}

// Rem sets z to the truncated remainder x%y and returns z. Division by zero is
// recorded as an error.
func (c *Context) Rem(z, x, y *bigint.BigInt) *bigint.BigInt {
	if c.err != nil {
		return z
	}
	if _, err := z.Rem(x, y); err != nil {
		c.setErr(err)
		return z
	}
	return c.apply(z)
}

// QuoRem sets z to the quotient x/y and r to the remainder x%y and returns the
// pair (z, r). z and r must be distinct.
func (c *Context) QuoRem(z, x, y, r *bigint.BigInt) (*bigint.BigInt, *bigint.BigInt) {
	if c.err != nil {
		return z, r
	}
	if _, _, err := z.QuoRem(x, y, r); err != nil {
		c.setErr(err)
		return z, r
	}
	return c.apply(z), c.apply(r)
}

// Exp sets z = x**y mod m and returns z. Negative exponents and a zero modulus
// are recorded as errors.
func (c *Context) Exp(z, x, y, m *bigint.BigInt) *bigint.BigInt {
	if c.err != nil {
		return z
	}
	if _, err := z.Exp(x, y, m); err != nil {
		c.setErr(err)
		return z
	}
	return c.apply(z)
}

// Neg sets z to -x and returns z.
func (c *Context) Neg(z, x *bigint.BigInt) *bigint.BigInt {
	if c.err != nil {
		return z
	}
	return c.apply(z.Neg(x))
}

// Abs sets z to |x| (the absolute value of x) and returns z.
func (c *Context) Abs(z, x *bigint.BigInt) *bigint.BigInt {
	if c.err != nil {
		return z
	}
	return c.apply(z.Abs(x))
}

// Inc sets z to x+1 and returns z.
func (c *Context) Inc(z, x *bigint.BigInt) *bigint.BigInt {
	if c.err != nil {
		return z
	}
	return c.apply(z.Inc(x))
}

// Dec sets z to x-1 and returns z.
func (c *Context) Dec(z, x *bigint.BigInt) *bigint.BigInt {
	if c.err != nil {
		return z
	}
	return c.apply(z.Dec(x))
}

// Do calls f with z unless c holds an error. If f fails, its error is
// recorded. Otherwise z is re-encoded in c's radix. Do returns z.
//
// Do lets functions outside of this package, like those of the math
// package, take part in error tracking:
//
//    ctx.Do(z, func(z *bigint.BigInt) error { _, err := math.Sqrt(z, x); return err })
//
func (c *Context) Do(z *bigint.BigInt, f func(z *bigint.BigInt) error) *bigint.BigInt {
	if c.err != nil {
		return z
	}
	if err := f(z); err != nil {
		c.setErr(err)
		return z
	}
	return c.apply(z)
}
