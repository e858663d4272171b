package bigint

import "errors"

// Errors reported by BigInt operations. They are returned wrapped with
// additional context; use errors.Is to test for them.
var (
	// ErrInvalidFormat is returned when a string is not an optional '-'
	// followed by one or more ASCII decimal digits.
	ErrInvalidFormat = errors.New("invalid integer format")
	// ErrInvalidBase is returned when a block radix is not 10**k with
	// 1 <= k <= MaxRadixDigits.
	ErrInvalidBase = errors.New("invalid radix")
	// ErrDivideByZero is returned by division, modulo and modular
	// exponentiation with a zero divisor or modulus.
	ErrDivideByZero = errors.New("division by zero")
	// ErrNegativeExponent is returned by Exp and ModExp for exponents < 0.
	ErrNegativeExponent = errors.New("negative exponent")
)
