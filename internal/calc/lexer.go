// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"fmt"
	"strings"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokOp
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokNumber:
		return "number"
	case tokIdent:
		return "identifier"
	default:
		return "operator"
	}
}

type token struct {
	kind tokenKind
	text string
	pos  int // byte offset in the input
}

func (t token) String() string {
	if t.kind == tokEOF {
		return t.kind.String()
	}
	return fmt.Sprintf("%s %q", t.kind, t.text)
}

// is reports whether t is the operator op.
func (t token) is(op string) bool {
	return t.kind == tokOp && t.text == op
}

const operators = "+-*/%^(),="

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// tokenize splits src into tokens. The last token is always tokEOF.
// Numbers are unsigned digit sequences: the sign is a unary operator.
func tokenize(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			i++
		case c == '#':
			// comment until end of line
			i = len(src)
		case isDigit(c):
			start := i
			for i < len(src) && isDigit(src[i]) {
				i++
			}
			toks = append(toks, token{tokNumber, src[start:i], start})
		case isIdentStart(c):
			start := i
			for i < len(src) && (isIdentStart(src[i]) || isDigit(src[i])) {
				i++
			}
			toks = append(toks, token{tokIdent, src[start:i], start})
		case strings.IndexByte(operators, c) >= 0:
			toks = append(toks, token{tokOp, src[i : i+1], i})
			i++
		default:
			return nil, syntaxError(i, "unexpected character %q", c)
		}
	}
	return append(toks, token{kind: tokEOF, pos: len(src)}), nil
}

