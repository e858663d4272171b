// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bigcalc is an arbitrary precision integer calculator.
//
// Usage:
//
//	bigcalc [flags] [-e expr]...
//
// With -e, each expression is evaluated in order and its value printed. Without
// it, bigcalc starts an interactive session when standard input is a terminal
// and otherwise evaluates standard input line by line.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/db47h/bigint"
	"github.com/db47h/bigint/internal/calc"
)

// errFailed is returned by runBatch when at least one line failed.
var errFailed = errors.New("evaluation failed")

type exprList []string

func (l *exprList) String() string     { return strings.Join(*l, "; ") }
func (l *exprList) Set(s string) error { *l = append(*l, s); return nil }

func main() {
	var (
		radix   = flag.Uint64("radix", 0, "block `radix` (a power of 10, default from config or 1e9)")
		cfgPath = flag.String("config", "", "YAML configuration `file`")
		noColor = flag.Bool("no-color", false, "disable colored output")
		exprs   exprList
	)
	flag.Var(&exprs, "e", "evaluate `expr` and exit (may be repeated)")
	flag.Parse()

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		fatal(err)
	}
	if *radix != 0 {
		cfg.Radix = bigint.Word(*radix)
	}
	if *noColor || !isatty.IsTerminal(os.Stdout.Fd()) {
		cfg.Color = false
	}

	env, err := calc.NewEnv(cfg.Radix)
	if err != nil {
		fatal(err)
	}
	colors := newColorizer(cfg.Color)

	switch {
	case len(exprs) > 0:
		err = runBatch(env, strings.NewReader(strings.Join(exprs, "\n")), os.Stdout, os.Stderr, colors)
	case flag.NArg() > 0:
		err = runBatch(env, strings.NewReader(strings.Join(flag.Args(), " ")), os.Stdout, os.Stderr, colors)
	case isatty.IsTerminal(os.Stdin.Fd()):
		runREPL(env, os.Stdout, cfg, colors)
	default:
		err = runBatch(env, os.Stdin, os.Stdout, os.Stderr, colors)
	}
	if err != nil {
		os.Exit(1)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "bigcalc:", err)
	os.Exit(2)
}

// runBatch evaluates in line by line. Values are written to out and errors to
// errOut, prefixed with their line number. Evaluation continues after an error
// and runBatch returns errFailed if any line failed.
func runBatch(env *calc.Env, in io.Reader, out, errOut io.Writer, colors colorizer) error {
	var failed bool
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for n := 1; sc.Scan(); n++ {
		v, err := env.Eval(sc.Text())
		if err != nil {
			fmt.Fprintln(errOut, colors.error(fmt.Sprintf("line %d: %v", n, err)))
			failed = true
			continue
		}
		if v != nil {
			fmt.Fprintln(out, colors.result(v))
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	if failed {
		return errFailed
	}
	return nil
}
