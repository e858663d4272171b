package math_test

import (
	"math/big"
	"testing"

	"github.com/db47h/bigint"
	"github.com/db47h/bigint/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, s string, radix bigint.Word) *bigint.BigInt {
	t.Helper()
	x, err := bigint.ParseRadix(s, radix)
	require.NoError(t, err)
	return x
}

var radices = []bigint.Word{10, 1000, bigint.DefaultRadix, bigint.MaxRadix}

func TestPow(t *testing.T) {
	td := []struct {
		x   string
		n   uint64
		res string
	}{
		{"0", 0, "1"},
		{"7", 0, "1"},
		{"0", 5, "0"},
		{"-2", 3, "-8"},
		{"-2", 4, "16"},
		{"10", 20, "100000000000000000000"},
		{"3", 200, "265613988875874769338781322035779626829233452653394495974574961739092490901302182994384699044001"},
	}
	for _, radix := range radices {
		for _, d := range td {
			x := parse(t, d.x, radix)
			z := math.Pow(new(bigint.BigInt), x, d.n)
			assert.Equal(t, d.res, z.String(), "radix %d: %s**%d", radix, d.x, d.n)
			assert.Equal(t, radix, z.Radix())
			// aliased
			assert.Equal(t, d.res, math.Pow(x, x, d.n).String())
		}
	}
}

func TestFactorial(t *testing.T) {
	td := []struct {
		n   uint64
		res string
	}{
		{0, "1"},
		{1, "1"},
		{2, "2"},
		{5, "120"},
		{20, "2432902008176640000"},
		{30, "265252859812191058636308480000000"},
	}
	for _, d := range td {
		z := math.Factorial(parse(t, "0", 100), d.n)
		assert.Equal(t, d.res, z.String(), "%d!", d.n)
		assert.Equal(t, bigint.Word(100), z.Radix())
	}

	// against math/big
	want := new(big.Int).MulRange(1, 500)
	assert.Equal(t, want.String(), math.Factorial(new(bigint.BigInt), 500).String())
}

func TestBinomial(t *testing.T) {
	td := []struct {
		n, k int64
		res  string
	}{
		{0, 0, "1"},
		{5, 0, "1"},
		{5, 5, "1"},
		{5, 2, "10"},
		{5, 6, "0"},
		{5, -1, "0"},
		{67, 33, "14226520737620288370"},
		{100, 50, "100891344545564193334812497256"},
	}
	for _, d := range td {
		z := math.Binomial(new(bigint.BigInt), d.n, d.k)
		assert.Equal(t, d.res, z.String(), "C(%d, %d)", d.n, d.k)
	}
	for n := int64(0); n < 60; n += 7 {
		for k := int64(0); k <= n; k += 3 {
			want := new(big.Int).Binomial(n, k)
			assert.Equal(t, want.String(), math.Binomial(new(bigint.BigInt), n, k).String())
		}
	}
}

func TestGCD(t *testing.T) {
	td := []struct {
		a, b, gcd, lcm string
	}{
		{"0", "0", "0", "0"},
		{"0", "-7", "7", "0"},
		{"12", "-18", "6", "36"},
		{"-12", "-18", "6", "36"},
		{"17", "5", "1", "85"},
		{"1000000000", "1000000000", "1000000000", "1000000000"},
		// 2**64 * 3**20 and 6**30
		{"64319819485449658779373142016", "221073919720733357899776", "3743906242624487424", ""},
	}
	for _, d := range td {
		a, b := parse(t, d.a, 1000), parse(t, d.b, bigint.MaxRadix)
		g := math.GCD(new(bigint.BigInt), a, b)
		assert.Equal(t, d.gcd, g.String(), "gcd(%s, %s)", d.a, d.b)
		assert.Equal(t, bigint.Word(1000), g.Radix())
		if d.lcm != "" {
			assert.Equal(t, d.lcm, math.LCM(new(bigint.BigInt), a, b).String(), "lcm(%s, %s)", d.a, d.b)
		}
	}
}

func TestSqrt(t *testing.T) {
	td := []struct {
		x, res string
	}{
		{"0", "0"},
		{"1", "1"},
		{"2", "1"},
		{"3", "1"},
		{"4", "2"},
		{"99", "9"},
		{"100", "10"},
		{"100000000000000000000000000000000000000000", "316227766016837933199"},
		{"2000000000000000000000000000000000000000000000000000000000000", "1414213562373095048801688724209"},
	}
	for _, radix := range radices {
		for _, d := range td {
			x := parse(t, d.x, radix)
			z, err := math.Sqrt(new(bigint.BigInt), x)
			require.NoError(t, err)
			assert.Equal(t, d.res, z.String(), "radix %d: sqrt(%s)", radix, d.x)
			assert.Equal(t, radix, z.Radix())
		}
	}

	for i := int64(0); i < 2000; i += 13 {
		x := bigint.NewInt(i * i)
		z, err := math.Sqrt(x, x)
		require.NoError(t, err)
		assert.Equal(t, i, z.Int64())
	}

	z := bigint.NewInt(5)
	_, err := math.Sqrt(z, bigint.NewInt(-4))
	assert.ErrorIs(t, err, math.ErrNegativeSqrt)
	assert.Equal(t, "5", z.String())
}

func TestModExp(t *testing.T) {
	z, err := math.ModExp(new(bigint.BigInt), bigint.NewInt(4), bigint.NewInt(13), bigint.NewInt(497))
	require.NoError(t, err)
	assert.Equal(t, "445", z.String())
	assert.Equal(t, "4", math.Abs(new(bigint.BigInt), bigint.NewInt(-4)).String())
}
