package math

import (
	"fmt"

	"github.com/db47h/bigint"
)

// Sqrt sets z to ⌊√x⌋, the largest integer such that z² ≤ x, and returns z.
// The result has x's radix.
//
// Sqrt returns an error wrapping ErrNegativeSqrt if x < 0. z is unchanged in
// that case.
func Sqrt(z, x *bigint.BigInt) (*bigint.BigInt, error) {
	switch x.Sign() {
	case -1:
		return nil, fmt.Errorf("Sqrt(%s): %w", x, ErrNegativeSqrt)
	case 0:
		return z.Set(x), nil
	}

	// Newton's method on f(r) = r² - x, starting above the root: x has d
	// digits, so x < 10**d and √x < 10**⌈d/2⌉. Every iteration decreases r
	// until it reaches ⌊√x⌋, the first value for which the next iterate does
	// not decrease.
	d := uint64(len(x.String()))
	r := Pow(newInt(x.Radix()), newInt(x.Radix()).SetInt64(10), (d+1)/2)
	t := newInt(x.Radix())
	for {
		// t = (r + x/r) / 2
		t.Quo(x, r)
		t.Add(t, r)
		t.Quo(t, two(x.Radix()))
		if t.Cmp(r) >= 0 {
			return z.Set(r), nil
		}
		r, t = t, r
	}
}

func two(radix bigint.Word) *bigint.BigInt {
	return newInt(radix).SetInt64(2)
}
