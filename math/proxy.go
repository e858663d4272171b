package math

import "github.com/db47h/bigint"

// ModExp sets z = x**y mod m and returns z. It fails if y < 0 or m == 0, in
// which case z is unchanged.
//
// This function is a proxy for z.Exp(x, y, m)
func ModExp(z, x, y, m *bigint.BigInt) (*bigint.BigInt, error) {
	return z.Exp(x, y, m)
}

// Abs sets z to |x| and returns z.
//
// This function is a proxy for z.Abs(x)
func Abs(z, x *bigint.BigInt) *bigint.BigInt {
	return z.Abs(x)
}
