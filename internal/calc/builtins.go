package calc

import (
	"fmt"
	"sort"

	"github.com/db47h/bigint"
	"github.com/db47h/bigint/context"
	"github.com/db47h/bigint/math"
)

// A Builtin describes a predefined function.
type Builtin struct {
	Name        string
	Description string
}

type builtin struct {
	arity       int
	description string
	fn          func(ctx *context.Context, args []*bigint.BigInt) *bigint.BigInt
}

var builtins = map[string]builtin{
	"abs": {1, "abs(x): absolute value of x", func(ctx *context.Context, args []*bigint.BigInt) *bigint.BigInt {
		return ctx.Abs(ctx.New(), args[0])
	}},
	"modexp": {3, "modexp(b, e, m): b^e mod m", func(ctx *context.Context, args []*bigint.BigInt) *bigint.BigInt {
		return ctx.Exp(ctx.New(), args[0], args[1], args[2])
	}},
	"pow":   {2, "pow(x, n): x^n", pow},
	"fact":  {1, "fact(n): factorial of n", fact},
	"binom": {2, "binom(n, k): binomial coefficient C(n, k)", binom},
	"gcd": {2, "gcd(a, b): greatest common divisor", func(ctx *context.Context, args []*bigint.BigInt) *bigint.BigInt {
		return ctx.Do(ctx.New(), func(z *bigint.BigInt) error {
			math.GCD(z, args[0], args[1])
			return nil
		})
	}},
	"lcm": {2, "lcm(a, b): least common multiple", func(ctx *context.Context, args []*bigint.BigInt) *bigint.BigInt {
		return ctx.Do(ctx.New(), func(z *bigint.BigInt) error {
			math.LCM(z, args[0], args[1])
			return nil
		})
	}},
	"sqrt": {1, "sqrt(x): integer square root of x", func(ctx *context.Context, args []*bigint.BigInt) *bigint.BigInt {
		return ctx.Do(ctx.New(), func(z *bigint.BigInt) error {
			_, err := math.Sqrt(z, args[0])
			return err
		})
	}},
}

// Builtins returns the predefined functions sorted by name.
func Builtins() []Builtin {
	bs := make([]Builtin, 0, len(builtins))
	for name, b := range builtins {
		bs = append(bs, Builtin{Name: name, Description: b.description})
	}
	sort.Slice(bs, func(i, j int) bool { return bs[i].Name < bs[j].Name })
	return bs
}

// maxFactorial bounds the argument of fact to keep evaluation interactive.
const maxFactorial = 100000

func pow(ctx *context.Context, args []*bigint.BigInt) *bigint.BigInt {
	x, n := args[0], args[1]
	return ctx.Do(ctx.New(), func(z *bigint.BigInt) error {
		switch {
		case n.Sign() < 0:
			return fmt.Errorf("%s^%s: %w", x, n, bigint.ErrNegativeExponent)
		case !n.IsUint64():
			return fmt.Errorf("%s^%s: exponent too large: %w", x, n, ErrDomain)
		}
		math.Pow(z, x, n.Uint64())
		return nil
	})
}

func fact(ctx *context.Context, args []*bigint.BigInt) *bigint.BigInt {
	n := args[0]
	return ctx.Do(ctx.New(), func(z *bigint.BigInt) error {
		if n.Sign() < 0 || !n.IsUint64() || n.Uint64() > maxFactorial {
			return fmt.Errorf("fact(%s): n must be in [0, %d]: %w", n, maxFactorial, ErrDomain)
		}
		math.Factorial(z, n.Uint64())
		return nil
	})
}

func binom(ctx *context.Context, args []*bigint.BigInt) *bigint.BigInt {
	n, k := args[0], args[1]
	return ctx.Do(ctx.New(), func(z *bigint.BigInt) error {
		if n.Sign() < 0 || !n.IsInt64() || !k.IsInt64() {
			return fmt.Errorf("binom(%s, %s): %w", n, k, ErrDomain)
		}
		math.Binomial(z, n.Int64(), k.Int64())
		return nil
	})
}
