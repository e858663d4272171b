package math

import "github.com/db47h/bigint"

// Pow sets z to x**n and returns z. 0**0 is 1.
func Pow(z, x *bigint.BigInt, n uint64) *bigint.BigInt {
	if z == x {
		x = new(bigint.BigInt).Set(x)
	}
	return pow(z, x, n)
}

// Factorial sets z to n! and returns z with z's radix.
func Factorial(z *bigint.BigInt, n uint64) *bigint.BigInt {
	if n < 2 {
		return z.SetInt64(1)
	}
	return z.Set(prodRange(newInt(z.Radix()), 2, n))
}

// Binomial sets z to the binomial coefficient C(n, k) and returns z with z's
// radix. The result is 0 for k < 0 or k > n, and n must not be negative.
func Binomial(z *bigint.BigInt, n, k int64) *bigint.BigInt {
	if k < 0 || k > n {
		return z.SetInt64(0)
	}
	// C(n, k) == C(n, n-k)
	if k > n-k {
		k = n - k
	}
	if k == 0 {
		return z.SetInt64(1)
	}
	radix := z.Radix()
	num := prodRange(newInt(radix), uint64(n-k+1), uint64(n))
	den := prodRange(newInt(radix), 1, uint64(k))
	// the division is exact
	if _, err := z.Quo(num, den); err != nil {
		panic(err)
	}
	return z
}

// prodRange sets z to the product a*(a+1)*...*b and returns z. a must be <= b.
// The range is split in halves so that operands stay balanced.
func prodRange(z *bigint.BigInt, a, b uint64) *bigint.BigInt {
	switch {
	case a == b:
		return z.SetUint64(a)
	case b-a == 1:
		t := newInt(z.Radix()).SetUint64(b)
		return z.SetUint64(a).Mul(z, t)
	}
	m := a + (b-a)/2
	l := prodRange(newInt(z.Radix()), a, m)
	r := prodRange(newInt(z.Radix()), m+1, b)
	return z.Mul(l, r)
}
