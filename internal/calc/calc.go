// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package calc evaluates integer expressions over bigint.BigInt values.
//
// A statement is either an expression or an assignment:
//
//	statement  = [ identifier "=" ] expression .
//	expression = term { ( "+" | "-" ) term } .
//	term       = unary { ( "*" | "/" | "%" ) unary } .
//	unary      = ( "-" | "+" ) unary | power .
//	power      = primary [ "^" unary ] .
//	primary    = number | identifier | call | "(" expression ")" .
//	call       = identifier "(" [ expression { "," expression } ] ")" .
//
// Division truncates toward zero and "^" is right associative, so -2^2 is -4
// and 2^3^2 is 512. The variable "_" holds the result of the last successful
// statement. Text following a '#' is ignored.
package calc

import (
	"fmt"
	"sort"

	"github.com/db47h/bigint"
	"github.com/db47h/bigint/context"
)

// LastResult is the name of the variable holding the last result.
const LastResult = "_"

// An Env holds variables and evaluates statements. Arithmetic is performed with
// the Env's radix.
//
// An Env is not safe for concurrent use.
type Env struct {
	ctx  *context.Context
	vars map[string]*bigint.BigInt
}

// NewEnv returns a new Env using the given block radix. It returns an error
// wrapping bigint.ErrInvalidBase if radix is not valid.
func NewEnv(radix bigint.Word) (*Env, error) {
	ctx := context.New(radix)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &Env{ctx: ctx, vars: make(map[string]*bigint.BigInt)}, nil
}

// Radix returns the block radix used by e.
func (e *Env) Radix() bigint.Word {
	return e.ctx.Radix()
}

// SetRadix changes the block radix of e and re-encodes all variables. On error,
// e is unchanged.
func (e *Env) SetRadix(radix bigint.Word) error {
	if err := e.ctx.SetRadix(radix).Err(); err != nil {
		return err
	}
	for _, v := range e.vars {
		e.ctx.Set(v, v)
	}
	return e.ctx.Err()
}

// Var returns the value of the variable name.
func (e *Env) Var(name string) (*bigint.BigInt, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Vars returns the sorted names of all defined variables.
func (e *Env) Vars() []string {
	names := make([]string, 0, len(e.vars))
	for n := range e.vars {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Eval evaluates a single statement and returns its value. An assignment
// returns the assigned value. Eval returns nil and no error for blank lines and
// comments.
//
// On error, no variable is modified.
func (e *Env) Eval(line string) (*bigint.BigInt, error) {
	toks, err := tokenize(line)
	if err != nil {
		return nil, err
	}
	if toks[0].kind == tokEOF {
		return nil, nil
	}

	p := parser{env: e, toks: toks}
	name := ""
	if toks[0].kind == tokIdent && toks[1].is("=") {
		name = toks[0].text
		if _, ok := builtins[name]; ok {
			return nil, syntaxError(toks[0].pos, "cannot assign to function %s", name)
		}
		p.i = 2
	}
	v, err := p.expression()
	if t := p.peek(); err == nil && t.kind != tokEOF {
		err = syntaxError(t.pos, "unexpected %s", t)
	}
	// Arithmetic errors are caught by the context. Always clear them so
	// that they do not leak into the next statement.
	if ctxErr := e.ctx.Err(); err == nil {
		err = ctxErr
	}
	if err != nil {
		return nil, err
	}
	if name != "" {
		e.vars[name] = v
	}
	e.vars[LastResult] = v
	return v, nil
}

type parser struct {
	env  *Env
	toks []token
	i    int
}

func (p *parser) peek() token { return p.toks[p.i] }

func (p *parser) next() token {
	t := p.toks[p.i]
	if t.kind != tokEOF {
		p.i++
	}
	return t
}

func (p *parser) expect(op string) error {
	if t := p.next(); !t.is(op) {
		return syntaxError(t.pos, "expected %q, found %s", op, t)
	}
	return nil
}

func (p *parser) expression() (*bigint.BigInt, error) {
	ctx := p.env.ctx
	x, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		if !t.is("+") && !t.is("-") {
			return x, nil
		}
		p.next()
		y, err := p.term()
		if err != nil {
			return nil, err
		}
		if t.text == "+" {
			x = ctx.Add(ctx.New(), x, y)
		} else {
			x = ctx.Sub(ctx.New(), x, y)
		}
	}
}

func (p *parser) term() (*bigint.BigInt, error) {
	ctx := p.env.ctx
	x, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		if !t.is("*") && !t.is("/") && !t.is("%") {
			return x, nil
		}
		p.next()
		y, err := p.unary()
		if err != nil {
			return nil, err
		}
		switch t.text {
		case "*":
			x = ctx.Mul(ctx.New(), x, y)
		case "/":
			x = ctx.Quo(ctx.New(), x, y)
		default:
			x = ctx.Rem(ctx.New(), x, y)
		}
	}
}

func (p *parser) unary() (*bigint.BigInt, error) {
	t := p.peek()
	switch {
	case t.is("-"):
		p.next()
		x, err := p.unary()
		if err != nil {
			return nil, err
		}
		return p.env.ctx.Neg(p.env.ctx.New(), x), nil
	case t.is("+"):
		p.next()
		return p.unary()
	}
	return p.power()
}

func (p *parser) power() (*bigint.BigInt, error) {
	x, err := p.primary()
	if err != nil {
		return nil, err
	}
	if !p.peek().is("^") {
		return x, nil
	}
	p.next()
	y, err := p.unary()
	if err != nil {
		return nil, err
	}
	return pow(p.env.ctx, []*bigint.BigInt{x, y}), nil
}

func (p *parser) primary() (*bigint.BigInt, error) {
	ctx := p.env.ctx
	t := p.next()
	switch {
	case t.kind == tokNumber:
		return ctx.Parse(t.text), nil
	case t.kind == tokIdent && p.peek().is("("):
		return p.call(t)
	case t.kind == tokIdent:
		v, ok := p.env.vars[t.text]
		if !ok {
			return nil, fmt.Errorf("variable %s at position %d: %w", t.text, t.pos+1, ErrUndefined)
		}
		return v, nil
	case t.is("("):
		x, err := p.expression()
		if err != nil {
			return nil, err
		}
		if err = p.expect(")"); err != nil {
			return nil, err
		}
		return x, nil
	}
	return nil, syntaxError(t.pos, "unexpected %s", t)
}

func (p *parser) call(name token) (*bigint.BigInt, error) {
	f, ok := builtins[name.text]
	if !ok {
		return nil, fmt.Errorf("function %s at position %d: %w", name.text, name.pos+1, ErrUndefined)
	}
	p.next() // (
	var args []*bigint.BigInt
	if !p.peek().is(")") {
		for {
			x, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, x)
			if !p.peek().is(",") {
				break
			}
			p.next()
		}
	}
	if err := p.expect(")"); err != nil {
		return nil, err
	}
	if len(args) != f.arity {
		return nil, syntaxError(name.pos, "%s expects %d argument(s), got %d", name.text, f.arity, len(args))
	}
	return f.fn(p.env.ctx, args), nil
}
