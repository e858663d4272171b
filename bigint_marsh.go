// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of BigInts.

package bigint

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/fxamacker/cbor/v2"
)

// Gob codec version. Permits backward-compatible changes to the encoding.
const bigIntGobVersion byte = 1

// GobEncode implements the gob.GobEncoder interface.
// The sign, the radix and the blocks of x are marshaled.
//
// Layout: version, sign byte, digits per block, then the blocks as 8 byte big
// endian words, most significant first.
func (x *BigInt) GobEncode() ([]byte, error) {
	if x == nil {
		return nil, nil
	}
	const hdr = 3
	buf := make([]byte, hdr+len(x.abs)*8)
	buf[0] = bigIntGobVersion
	if x.neg {
		buf[1] = 1
	}
	buf[2] = byte(x.width())
	for i, w := range x.abs {
		binary.BigEndian.PutUint64(buf[hdr+(len(x.abs)-1-i)*8:], uint64(w))
	}
	return buf, nil
}

// GobDecode implements the gob.GobDecoder interface.
func (z *BigInt) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = BigInt{}
		return nil
	}
	if buf[0] != bigIntGobVersion {
		return fmt.Errorf("BigInt.GobDecode: encoding version %d not supported", buf[0])
	}
	const hdr = 3
	if len(buf) < hdr || (len(buf)-hdr)%8 != 0 {
		return fmt.Errorf("BigInt.GobDecode: invalid buffer length %d", len(buf))
	}
	k := uint(buf[2])
	if k == 0 || k > MaxRadixDigits {
		return fmt.Errorf("BigInt.GobDecode: %d digits per block: %w", k, ErrInvalidBase)
	}
	n := (len(buf) - hdr) / 8
	blocks := make([]Word, n)
	for i := range blocks {
		blocks[n-1-i] = Word(binary.BigEndian.Uint64(buf[hdr+i*8:]))
	}
	_, err := z.SetBlocks(buf[1]&1 != 0, blocks, pow10(k))
	return err
}

// MarshalText implements the encoding.TextMarshaler interface.
// Only the value is marshaled, not the radix.
func (x *BigInt) MarshalText() (text []byte, err error) {
	if x == nil {
		return []byte("<nil>"), nil
	}
	return x.Append(nil), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. The radix
// of z is unchanged.
func (z *BigInt) UnmarshalText(text []byte) error {
	if _, err := z.parse(string(text)); err != nil {
		return fmt.Errorf("bigint: cannot unmarshal %q into a *bigint.BigInt: %w", text, err)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface. x is encoded as a JSON
// number.
func (x *BigInt) MarshalJSON() ([]byte, error) {
	if x == nil {
		return []byte("null"), nil
	}
	return x.Append(nil), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (z *BigInt) UnmarshalJSON(text []byte) error {
	// Ignore null, like in the main JSON package.
	if string(text) == "null" {
		return nil
	}
	if _, err := z.parse(string(text)); err != nil {
		return fmt.Errorf("bigint: cannot unmarshal %s into a *bigint.BigInt: %w", text, err)
	}
	return nil
}

// cborBigInt is the CBOR wire form of a BigInt: [neg, radix, blocks].
type cborBigInt struct {
	_      struct{} `cbor:",toarray"`
	Neg    bool
	Radix  Word
	Blocks []Word
}

var cborEncMode = func() cbor.EncMode {
	encMode, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return encMode
}()

var cborDecMode = func() cbor.DecMode {
	decMode, err := cbor.DecOptions{
		MaxArrayElements: math.MaxInt32,
	}.DecMode()
	if err != nil {
		panic(err)
	}
	return decMode
}()

// MarshalCBOR implements the cbor.Marshaler interface. x is encoded as the
// array [neg, radix, blocks] with blocks least significant first.
func (x *BigInt) MarshalCBOR() ([]byte, error) {
	if x == nil {
		return cborEncMode.Marshal(nil)
	}
	return cborEncMode.Marshal(cborBigInt{
		Neg:    x.neg,
		Radix:  x.base(),
		Blocks: x.abs,
	})
}

// UnmarshalCBOR implements the cbor.Unmarshaler interface. The decoded value
// keeps the encoded radix. Blocks out of range are carried as in SetBlocks.
func (z *BigInt) UnmarshalCBOR(data []byte) error {
	var v cborBigInt
	if err := cborDecMode.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("bigint: cannot unmarshal CBOR into a *bigint.BigInt: %w", err)
	}
	_, err := z.SetBlocks(v.Neg, v.Blocks, v.Radix)
	return err
}
