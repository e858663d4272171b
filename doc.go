// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bigint implements arbitrary-precision signed integers.

Unlike big.Int, the magnitude of a BigInt is stored in a little-endian Word
slice of "blocks" in a power of ten radix: 10**9 by default, configurable per
value from 10 up to 10**19 with SetRadix. All arithmetic operations are
performed directly in that radix without conversion to/from binary, so that
decimal string conversion is exact and block-aligned.

The zero value for a BigInt corresponds to 0. Thus, new values can be declared
in the usual ways and denote 0 without further initialization:

    x := new(BigInt)  // x is a *BigInt of value 0

Alternatively, new BigInt values can be allocated and initialized with the
functions:

    func NewInt(x int64) *BigInt
    func Parse(s string) (*BigInt, error)

Setters, numeric operations and predicates are represented as methods of the
form:

    func (z *BigInt) SetV(v V) *BigInt                // z = v
    func (z *BigInt) Unary(x *BigInt) *BigInt         // z = unary x
    func (z *BigInt) Binary(x, y *BigInt) *BigInt     // z = x binary y
    func (x *BigInt) Pred() P                         // p = pred(x)

For unary and binary operations, the result is the receiver (usually named z in
that case); if it is one of the operands x or y it may be safely overwritten
(and its memory reused). Operations that can fail, such as Quo, Rem, QuoRem and
Exp, return an error in addition to the receiver and leave it unchanged on
failure.

Arithmetic expressions are typically written as a sequence of individual method
calls, with each call corresponding to an operation. The receiver denotes the
result and the method arguments are the operation's operands. For instance,
given three *BigInt values a, b and c, the invocation

    c.Add(a, b)

computes the sum a + b and stores the result in c, overwriting whatever value
was held in c before. Compound assignments are written with the receiver as
first operand:

    sum.Add(sum, x)   // sum += x
    n.Inc(n)          // n++

The result of a binary operation has the radix of its first operand; the second
operand is transparently re-encoded when its radix differs. Changing the radix
of a value never changes the value itself.

Division truncates toward zero and the remainder has the sign of the dividend,
like Go's / and % operators on native integers:

    q, r, err := bigint.Divide(bigint.NewInt(-7), bigint.NewInt(2)) // q = -3, r = -1

Errors are reported as values wrapping one of ErrInvalidFormat,
ErrInvalidBase, ErrDivideByZero or ErrNegativeExponent. Test for them with
errors.Is.

BigInts are not safe for concurrent mutation. Use external synchronization or
independent copies (see Set).

Finally, *BigInt satisfies the fmt package's Scanner interface for scanning, the
Formatter interface for formatted printing, and the gob, text, JSON and CBOR
marshaling interfaces.
*/
package bigint
