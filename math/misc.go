// Package math implements integer functions on top of bigint.BigInt: powers,
// factorials, binomial coefficients, greatest common divisors and integer
// square roots.
//
// Functions follow the receiver convention of the bigint package: the result is
// stored in z, which is also returned. Results have the radix of the first
// BigInt operand, or z's radix when there is none.
package math

import (
	"errors"

	"github.com/db47h/bigint"
)

// ErrNegativeSqrt is returned by Sqrt for negative operands.
var ErrNegativeSqrt = errors.New("square root of negative operand")

// one returns 1 with the given radix.
func one(radix bigint.Word) *bigint.BigInt {
	return newInt(radix).SetInt64(1)
}

// newInt returns a zero BigInt with the given radix, which must be valid.
func newInt(radix bigint.Word) *bigint.BigInt {
	z, err := new(bigint.BigInt).SetRadix(radix)
	if err != nil {
		panic(err)
	}
	return z
}

// pow sets z to x**n by binary powering and returns z. z must not alias x.
func pow(z, x *bigint.BigInt, n uint64) *bigint.BigInt {
	if n == 0 {
		return z.Set(one(x.Radix()))
	}
	t := newInt(x.Radix())
	y := one(x.Radix())
	z.Set(x)

	for n > 1 {
		if n%2 != 0 {
			y.Mul(t.Set(y), z)
		}
		z.Mul(t.Set(z), t)
		if z.IsZero() {
			return z
		}
		n /= 2
	}
	return z.Mul(t.Set(z), y)
}
