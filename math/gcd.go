package math

import "github.com/db47h/bigint"

// GCD sets z to the greatest common divisor of a and b and returns z. The
// result is never negative and GCD(0, 0) is 0.
func GCD(z, a, b *bigint.BigInt) *bigint.BigInt {
	x := new(bigint.BigInt).Abs(a)
	y := new(bigint.BigInt).Abs(b)
	t := newInt(a.Radix())
	for !y.IsZero() {
		// y != 0, Rem cannot fail
		t.Rem(x, y)
		x, y, t = y, t, x
	}
	// x may hold b's radix
	z.Set(x)
	if _, err := z.SetRadix(a.Radix()); err != nil {
		panic(err)
	}
	return z
}

// LCM sets z to the least common multiple of a and b and returns z. The result
// is never negative and is 0 if either operand is 0.
func LCM(z, a, b *bigint.BigInt) *bigint.BigInt {
	if a.IsZero() || b.IsZero() {
		return z.Set(newInt(a.Radix()))
	}
	g := GCD(newInt(a.Radix()), a, b)
	t := newInt(a.Radix()).Abs(a)
	// g divides a: the division is exact
	t.Quo(t, g)
	t.Mul(t, b)
	return z.Abs(t)
}
