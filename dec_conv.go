// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import "strconv"

// setDigits sets z to the value of the decimal digit string s, k digits per
// block of radix b = 10**k. s must only contain ASCII digits; leading zeros are
// allowed and dropped.
//
// Algorithm: split s into chunks of k digits starting from the least
// significant end; each chunk is one block.
func (z dec) setDigits(s string, k uint, b Word) dec {
	n := (len(s) + int(k) - 1) / int(k)
	z = z.make(n)
	i := 0
	for end := len(s); end > 0; end -= int(k) {
		start := end - int(k)
		if start < 0 {
			start = 0
		}
		var w Word
		for _, ch := range []byte(s[start:end]) {
			w = w*10 + Word(ch-'0')
		}
		z[i] = w
		i++
	}
	if debugBigInt && i != n {
		panic("setDigits: block count mismatch")
	}
	return z[:i].norm()
}

// appendDecimal appends the decimal representation of x to buf, k digits per
// block: the most significant block unpadded, followed by the remaining
// blocks zero-padded to k digits.
func (x dec) appendDecimal(buf []byte, k uint) []byte {
	// x == 0
	if len(x) == 0 {
		return append(buf, '0')
	}
	// len(x) > 0

	i := len(x) - 1
	buf = strconv.AppendUint(buf, uint64(x[i]), 10)
	for i--; i >= 0; i-- {
		w := x[i]
		for n := decDigits(w); n < k; n++ {
			buf = append(buf, '0')
		}
		if w != 0 {
			buf = strconv.AppendUint(buf, uint64(w), 10)
		}
	}
	return buf
}

// reencode returns the value of x, held in blocks of kx digits, re-encoded in
// blocks of radix b = 10**k. Block boundaries differ between radices so the
// value goes through its decimal digit string.
func (z dec) reencode(x dec, kx, k uint, b Word) dec {
	s := x.appendDecimal(nil, kx)
	return z.setDigits(string(s), k, b)
}
