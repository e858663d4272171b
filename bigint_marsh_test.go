// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var encodingTests = []string{
	"0",
	"1",
	"-1",
	"999999999",
	"-1000000000",
	"123456789012345678901234567890",
	"-98765432109876543210987654321098765432109876543210",
}

func TestBigInt_GobEncoding(t *testing.T) {
	var medium bytes.Buffer
	enc := gob.NewEncoder(&medium)
	dec := gob.NewDecoder(&medium)
	for _, radix := range testRadices {
		for _, s := range encodingTests {
			medium.Reset() // empty buffer for each test case (in case of failures)
			x := parseRadix(t, s, radix)
			require.NoError(t, enc.Encode(x))
			var y BigInt
			require.NoError(t, dec.Decode(&y))
			y.validate()
			assert.Equal(t, s, y.String())
			assert.Equal(t, radix, y.Radix())
		}
	}
}

// Sending a nil BigInt pointer (inside a slice) on a round trip through gob
// should yield a zero.
func TestBigInt_GobEncodingNilIntInSlice(t *testing.T) {
	buf := new(bytes.Buffer)
	enc := gob.NewEncoder(buf)
	dec := gob.NewDecoder(buf)

	var in = make([]*BigInt, 1)
	require.NoError(t, enc.Encode(&in))
	var out []*BigInt
	require.NoError(t, dec.Decode(&out))
	require.Len(t, out, 1)
	assert.Equal(t, 0, out[0].Sign())
}

func TestBigInt_GobDecodeErrors(t *testing.T) {
	var z BigInt
	assert.Error(t, z.GobDecode([]byte{2, 0, 9}))
	assert.Error(t, z.GobDecode([]byte{1, 0, 9, 1}))
	assert.ErrorIs(t, z.GobDecode([]byte{1, 0, 20}), ErrInvalidBase)
	assert.ErrorIs(t, z.GobDecode([]byte{1, 0, 0}), ErrInvalidBase)
}

func TestBigInt_JSONEncoding(t *testing.T) {
	for _, s := range encodingTests {
		x := MustParse(s)
		b, err := json.Marshal(x)
		require.NoError(t, err)
		assert.Equal(t, s, string(b))

		var y BigInt
		require.NoError(t, json.Unmarshal(b, &y))
		assert.Equal(t, s, y.String())
	}

	var v struct {
		N *BigInt `json:"n"`
		M *BigInt `json:"m"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"n": -42, "m": null}`), &v))
	assert.Equal(t, "-42", v.N.String())
	assert.Nil(t, v.M)

	var y BigInt
	err := json.Unmarshal([]byte(`"42"`), &y)
	assert.ErrorIs(t, err, ErrInvalidFormat)
	err = json.Unmarshal([]byte(`4.2`), &y)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestBigInt_TextEncoding(t *testing.T) {
	for _, s := range encodingTests {
		x := MustParse(s)
		b, err := x.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, s, string(b))

		y := parseRadix(t, "0", 1000)
		require.NoError(t, y.UnmarshalText(b))
		assert.Equal(t, s, y.String())
		assert.Equal(t, Word(1000), y.Radix())
	}
	var y BigInt
	assert.ErrorIs(t, y.UnmarshalText([]byte("x")), ErrInvalidFormat)
}

func TestBigInt_CBOREncoding(t *testing.T) {
	for _, radix := range testRadices {
		for _, s := range encodingTests {
			x := parseRadix(t, s, radix)
			b, err := cbor.Marshal(x)
			require.NoError(t, err)

			var y BigInt
			require.NoError(t, cbor.Unmarshal(b, &y))
			y.validate()
			assert.Equal(t, s, y.String())
			assert.Equal(t, radix, y.Radix())
		}
	}
}

func TestBigInt_CBORWireFormat(t *testing.T) {
	x := parseRadix(t, "-1005", 1000)
	b, err := x.MarshalCBOR()
	require.NoError(t, err)
	// [true, 1000, [5, 1]]
	assert.Equal(t, []byte{0x83, 0xf5, 0x19, 0x03, 0xe8, 0x82, 0x05, 0x01}, b)

	// out of range blocks are carried on decode
	var y BigInt
	require.NoError(t, y.UnmarshalCBOR([]byte{0x83, 0xf4, 0x0a, 0x82, 0x0c, 0x00}))
	y.validate()
	assert.Equal(t, "12", y.String())
	assert.Equal(t, Word(10), y.Radix())

	err = y.UnmarshalCBOR([]byte{0x83, 0xf4, 0x0b, 0x80})
	assert.ErrorIs(t, err, ErrInvalidBase)
}
