// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBigInt_QuoRem(t *testing.T) {
	td := []struct {
		x, y, q, r string
	}{
		{"100", "7", "14", "2"},
		// truncated division: the remainder has the sign of x
		{"-7", "2", "-3", "-1"},
		{"7", "-2", "-3", "1"},
		{"-7", "-2", "3", "-1"},
		{"7", "2", "3", "1"},
		{"-6", "3", "-2", "0"},
		{"0", "-3", "0", "0"},
		{"5", "7", "0", "5"},
		{"-5", "7", "0", "-5"},
		{
			"-11790184577738583171520872861412518665678211592275841109096962",
			"515377520732011331036461129765621272702107522001",
			"-22876792454961",
			"-1",
		},
		{"1000000000000000000000000000000", "-999999999999", "-1000000000001000000", "1000000"},
	}
	for _, radix := range testRadices {
		for _, d := range td {
			x, y := parseRadix(t, d.x, radix), parseRadix(t, d.y, radix)
			q, r, err := new(BigInt).QuoRem(x, y, new(BigInt))
			require.NoError(t, err)
			q.validate()
			r.validate()
			assert.Equal(t, d.q, q.String(), "radix %d: %s / %s", radix, d.x, d.y)
			assert.Equal(t, d.r, r.String(), "radix %d: %s %% %s", radix, d.x, d.y)

			qq, err := new(BigInt).Quo(x, y)
			require.NoError(t, err)
			assert.Equal(t, d.q, qq.String())
			rr, err := new(BigInt).Rem(x, y)
			require.NoError(t, err)
			assert.Equal(t, d.r, rr.String())

			// aliased operands
			z := new(BigInt).Set(x)
			_, err = z.Quo(z, y)
			require.NoError(t, err)
			assert.Equal(t, d.q, z.String())
			z.Set(y)
			_, err = z.Rem(x, z)
			require.NoError(t, err)
			assert.Equal(t, d.r, z.String())
		}
	}
}

func TestBigInt_QuoRemMixedRadix(t *testing.T) {
	x := parseRadix(t, "123456789012345678901234567890", 10)
	y := parseRadix(t, "987654321098765432", MaxRadix)
	q, r, err := Divide(x, y)
	require.NoError(t, err)
	assert.Equal(t, "124999998860", q.String())
	assert.Equal(t, "925925953827160370", r.String())
	assert.Equal(t, Word(10), q.Radix())
	assert.Equal(t, Word(10), r.Radix())
}

func TestBigInt_DivideByZero(t *testing.T) {
	zero := new(BigInt)
	for _, s := range []string{"0", "1", "-1", "123456789012345678901234567890"} {
		x := MustParse(s)
		z := MustParse("42")

		_, _, err := Divide(x, zero)
		assert.ErrorIs(t, err, ErrDivideByZero)

		_, err = z.Quo(x, zero)
		assert.ErrorIs(t, err, ErrDivideByZero)
		_, err = z.Rem(x, zero)
		assert.ErrorIs(t, err, ErrDivideByZero)
		_, _, err = z.QuoRem(x, MustParse("-0"), new(BigInt))
		assert.ErrorIs(t, err, ErrDivideByZero)

		// z is unchanged
		assert.Equal(t, "42", z.String())
	}
}

func TestBigInt_Exp(t *testing.T) {
	td := []struct {
		x, y, m, want string
	}{
		{"4", "13", "497", "445"},
		{"2", "0", "7", "1"},
		{"0", "0", "7", "1"},
		{"0", "5", "7", "0"},
		{"3", "1", "1", "0"},
		{"-2", "3", "7", "-1"},
		{"2", "3", "-5", "3"},
		{"2", "100", "1000000007", "976371285"},
		{"123456789", "987654321", "1000000000000000000000000000057", "223683122136650424720870579066"},
		{"2", "1000", "10000000000000000000000000000000000000000", "6542167660429831652624386837205668069376"},
	}
	for _, radix := range testRadices {
		for _, d := range td {
			x, y, m := parseRadix(t, d.x, radix), parseRadix(t, d.y, radix), parseRadix(t, d.m, radix)
			z, err := ModExp(x, y, m)
			require.NoError(t, err)
			z.validate()
			assert.Equal(t, d.want, z.String(), "radix %d: %s**%s mod %s", radix, d.x, d.y, d.m)
			assert.Equal(t, radix, z.Radix())
		}
	}
}

func TestBigInt_ExpErrors(t *testing.T) {
	z := MustParse("42")
	_, err := z.Exp(MustParse("2"), MustParse("-1"), MustParse("7"))
	assert.ErrorIs(t, err, ErrNegativeExponent)
	_, err = z.Exp(MustParse("2"), MustParse("3"), new(BigInt))
	assert.ErrorIs(t, err, ErrDivideByZero)
	assert.Equal(t, "42", z.String())
}
