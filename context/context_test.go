package context

import (
	"testing"

	"github.com/db47h/bigint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext_Radix(t *testing.T) {
	c := New(0)
	assert.Equal(t, bigint.DefaultRadix, c.Radix())
	require.NoError(t, c.Err())

	c.SetRadix(100)
	assert.Equal(t, bigint.Word(100), c.Radix())
	assert.Equal(t, bigint.Word(100), c.NewInt64(7).Radix())

	c.SetRadix(12)
	assert.Equal(t, bigint.Word(100), c.Radix())
	assert.ErrorIs(t, c.Err(), bigint.ErrInvalidBase)
	assert.NoError(t, c.Err())

	c = New(3)
	assert.Equal(t, bigint.DefaultRadix, c.Radix())
	assert.ErrorIs(t, c.Err(), bigint.ErrInvalidBase)
}

func TestContext_ResultRadix(t *testing.T) {
	c := New(10)
	x := bigint.MustParse("123456789012345678901234567890")
	y, err := bigint.ParseRadix("-42", bigint.MaxRadix)
	require.NoError(t, err)

	for name, z := range map[string]*bigint.BigInt{
		"add": c.Add(c.New(), x, y),
		"sub": c.Sub(c.New(), x, y),
		"mul": c.Mul(c.New(), x, y),
		"quo": c.Quo(c.New(), x, y),
		"rem": c.Rem(c.New(), x, y),
		"exp": c.Exp(c.New(), y, c.NewInt64(3), x),
		"neg": c.Neg(c.New(), y),
		"abs": c.Abs(c.New(), y),
		"inc": c.Inc(c.New(), y),
		"dec": c.Dec(c.New(), y),
		"set": c.Set(c.New(), y),
	} {
		assert.Equal(t, bigint.Word(10), z.Radix(), name)
	}
	require.NoError(t, c.Err())

	assert.Equal(t, "123456789012345678901234567848", c.Add(c.New(), x, y).String())
	assert.Equal(t, "-2939447357436801878600823045", c.Quo(c.New(), x, y).String())
	assert.Equal(t, "0", c.Rem(c.New(), x, y).String())
	assert.Equal(t, "-74088", c.Exp(c.New(), y, c.NewInt64(3), x).String())
}

func TestContext_StickyError(t *testing.T) {
	c := New(0)
	x, zero := c.NewInt64(10), c.New()
	z := c.NewInt64(5)

	c.Quo(z, x, zero)
	assert.Equal(t, "5", z.String())

	// no-ops until Err is called
	c.Add(z, x, x)
	c.Exp(z, x, c.NewInt64(-1), x)
	assert.Equal(t, "5", z.String())
	assert.Equal(t, "0", c.Parse("42").String())

	err := c.Err()
	assert.ErrorIs(t, err, bigint.ErrDivideByZero)
	assert.NoError(t, c.Err())

	c.Exp(z, x, c.NewInt64(-1), x)
	assert.ErrorIs(t, c.Err(), bigint.ErrNegativeExponent)

	q, r := c.QuoRem(c.NewInt64(1), x, zero, c.NewInt64(2))
	assert.Equal(t, "1", q.String())
	assert.Equal(t, "2", r.String())
	assert.ErrorIs(t, c.Err(), bigint.ErrDivideByZero)

	q, r = c.QuoRem(c.New(), c.NewInt64(-7), c.NewInt64(2), c.New())
	require.NoError(t, c.Err())
	assert.Equal(t, "-3", q.String())
	assert.Equal(t, "-1", r.String())
}

func TestContext_Parse(t *testing.T) {
	c := New(1000)
	x := c.Parse("-123456")
	require.NoError(t, c.Err())
	assert.Equal(t, "-123456", x.String())
	assert.Equal(t, []bigint.Word{456, 123}, x.Blocks())

	x = c.Parse("")
	assert.True(t, x.IsZero())
	assert.ErrorIs(t, c.Err(), bigint.ErrInvalidFormat)

	y, ok := c.NewString("1-")
	assert.False(t, ok)
	assert.Nil(t, y)
	assert.NoError(t, c.Err())

	y, ok = c.NewString("1000001")
	assert.True(t, ok)
	assert.Equal(t, []bigint.Word{1, 0, 1}, y.Blocks())
}

func TestContext_Do(t *testing.T) {
	c := New(100)
	z := c.Do(c.New(), func(z *bigint.BigInt) error {
		z.Set(bigint.MustParse("1234567"))
		return nil
	})
	require.NoError(t, c.Err())
	assert.Equal(t, bigint.Word(100), z.Radix())
	assert.Equal(t, "1234567", z.String())

	c.Do(z, func(z *bigint.BigInt) error {
		_, err := z.Quo(z, new(bigint.BigInt))
		return err
	})
	assert.ErrorIs(t, c.Err(), bigint.ErrDivideByZero)
	assert.Equal(t, "1234567", z.String())
}
