// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements string conversion to and from BigInts.

package bigint

import (
	"errors"
	"fmt"
	"unicode"
)

// Parse returns a new BigInt with DefaultRadix set to the value of s.
//
// s must be an optional '-' followed by one or more ASCII decimal digits:
//
//	number = [ "-" ] digit { digit } .
//	digit  = "0" ... "9" .
//
// Leading zeros are accepted and "-0" denotes 0. If s is not valid, Parse
// returns a nil *BigInt and an error wrapping ErrInvalidFormat.
func Parse(s string) (*BigInt, error) {
	return new(BigInt).parse(s)
}

// ParseRadix is like Parse but the returned BigInt uses the given block radix.
// It returns an error wrapping ErrInvalidBase if radix is not valid.
func ParseRadix(s string, radix Word) (*BigInt, error) {
	z, err := new(BigInt).SetRadix(radix)
	if err != nil {
		return nil, err
	}
	return z.parse(s)
}

// MustParse is like Parse but panics if s cannot be parsed.
func MustParse(s string) *BigInt {
	z, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return z
}

// SetString sets z to the value of s, keeping z's radix, and returns z and a
// boolean indicating success. s must be in the format accepted by Parse. If the
// operation failed, z is unchanged but the returned value is nil.
func (z *BigInt) SetString(s string) (*BigInt, bool) {
	if _, err := z.parse(s); err != nil {
		return nil, false
	}
	return z, true
}

// parse sets z to the value of s in z's radix. On error, z is unchanged.
func (z *BigInt) parse(s string) (*BigInt, error) {
	neg, digits, err := splitNumber(s)
	if err != nil {
		return nil, err
	}
	z.abs = z.abs.setDigits(digits, z.width(), z.base())
	z.neg = neg
	return z.norm(), nil
}

// splitNumber validates s and splits it into its sign and its digits.
func splitNumber(s string) (neg bool, digits string, err error) {
	if len(s) == 0 {
		return false, "", fmt.Errorf("empty string: %w", ErrInvalidFormat)
	}
	digits = s
	if s[0] == '-' {
		neg = true
		digits = s[1:]
	}
	if len(digits) == 0 {
		return false, "", fmt.Errorf("no digits in %q: %w", s, ErrInvalidFormat)
	}
	for i := 0; i < len(digits); i++ {
		if ch := digits[i]; ch < '0' || ch > '9' {
			return false, "", fmt.Errorf("invalid character %q in %q: %w", ch, s, ErrInvalidFormat)
		}
	}
	return neg, digits, nil
}

// String returns the decimal representation of x: an optional '-' followed by
// the decimal digits of |x| without leading zeros.
func (x *BigInt) String() string {
	if x == nil {
		return "<nil>"
	}
	return string(x.Append(nil))
}

// Append appends the decimal representation of x, as generated by x.String,
// to buf and returns the extended buffer.
func (x *BigInt) Append(buf []byte) []byte {
	if x == nil {
		return append(buf, "<nil>"...)
	}
	if x.neg {
		buf = append(buf, '-')
	}
	return x.abs.appendDecimal(buf, x.width())
}

// write count copies of text to s
func writeMultiple(s fmt.State, text string, count int) {
	if len(text) > 0 {
		b := []byte(text)
		for ; count > 0; count-- {
			s.Write(b)
		}
	}
}

var _ fmt.Formatter = (*BigInt)(nil) // *BigInt must implement fmt.Formatter

// Format implements fmt.Formatter. It accepts the decimal formats 'd', 's' and
// 'v', along with '+' and ' ' for sign control, a minimum digits precision,
// output field width, space or zero padding, and left or right justification.
func (x *BigInt) Format(s fmt.State, ch rune) {
	// special cases
	switch {
	case ch != 'd' && ch != 's' && ch != 'v':
		// unknown format
		fmt.Fprintf(s, "%%!%c(bigint.BigInt=%s)", ch, x.String())
		return
	case x == nil:
		fmt.Fprint(s, "<nil>")
		return
	}

	// determine sign character
	sign := ""
	switch {
	case x.neg:
		sign = "-"
	case s.Flag('+'): // supersedes ' ' when both specified
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}

	digits := string(x.abs.appendDecimal(nil, x.width()))

	// number of characters for the three classes of number padding
	var left int   // space characters to left of digits for right justification ("%8d")
	var zeroes int // zero characters as left-most digits ("%.8d")
	var right int  // space characters to right of digits for left justification ("%-8d")

	// determine number padding from precision: the least number of digits to output
	precision, precisionSet := s.Precision()
	if precisionSet {
		switch {
		case len(digits) < precision:
			zeroes = precision - len(digits) // count of zero padding
		case digits == "0" && precision == 0:
			return // print nothing if zero value (x == 0) and zero precision ("." or ".0")
		}
	}

	// determine field pad from width: the least number of characters to output
	length := len(sign) + zeroes + len(digits)
	if width, widthSet := s.Width(); widthSet && length < width { // pad as specified
		switch d := width - length; {
		case s.Flag('-'):
			// pad on the right with spaces; supersedes '0' when both specified
			right = d
		case s.Flag('0') && !precisionSet:
			// pad with zeroes unless precision also specified
			zeroes = d
		default:
			// pad on the left with spaces
			left = d
		}
	}

	// print number as [left pad][sign][zero pad][digits][right pad]
	writeMultiple(s, " ", left)
	writeMultiple(s, sign, 1)
	writeMultiple(s, "0", zeroes)
	writeMultiple(s, digits, 1)
	writeMultiple(s, " ", right)
}

var _ fmt.Scanner = (*BigInt)(nil) // *BigInt must implement fmt.Scanner

// Scan is a support routine for fmt.Scanner; it sets z to the value of the
// next whitespace-delimited token, which must be in the format accepted by
// Parse. It accepts the verbs 'd', 's' and 'v'. The radix of z is unchanged.
func (z *BigInt) Scan(s fmt.ScanState, ch rune) error {
	switch ch {
	case 'd', 's', 'v':
	default:
		return errors.New("BigInt.Scan: invalid verb")
	}
	s.SkipSpace() // skip leading space characters
	tok, err := s.Token(false, func(r rune) bool { return !unicode.IsSpace(r) })
	if err != nil {
		return err
	}
	_, err = z.parse(string(tok))
	return err
}
