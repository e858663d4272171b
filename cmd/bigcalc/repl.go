// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/db47h/bigint"
	"github.com/db47h/bigint/internal/calc"
)

const replHelpMessage = `
Enter expressions or assignments (x = expr) to evaluate them.
The variable _ holds the last result. Text after # is ignored.

Commands are prefixed with a dot. Valid commands are:

.exit       Exit the calculator
.help       Print this help message
.funcs      List the predefined functions
.vars       List the defined variables
.radix [N]  Print or set the block radix (a power of 10)

Press ^D to exit`

const replAssistanceMessage = `Type '.help' for assistance.`

// session evaluates lines and commands for the interactive mode.
type session struct {
	env    *calc.Env
	out    io.Writer
	colors colorizer
}

func (s *session) eval(line string) {
	v, err := s.env.Eval(line)
	if err != nil {
		fmt.Fprintln(s.out, s.colors.error(err.Error()))
		return
	}
	if v != nil {
		fmt.Fprintln(s.out, s.colors.result(v))
	}
}

// handleCommand runs a dot command and reports whether the session should
// end.
func (s *session) handleCommand(line string) (exit bool) {
	fields := strings.Fields(line)
	switch fields[0] {
	case ".exit":
		return true
	case ".help":
		fmt.Fprintln(s.out, replHelpMessage)
	case ".funcs":
		for _, b := range calc.Builtins() {
			fmt.Fprintf(s.out, "%-8s %s\n", b.Name, b.Description)
		}
	case ".vars":
		for _, name := range s.env.Vars() {
			v, _ := s.env.Var(name)
			fmt.Fprintf(s.out, "%s = %s\n", name, s.colors.result(v))
		}
	case ".radix":
		if len(fields) == 1 {
			fmt.Fprintln(s.out, s.env.Radix())
			break
		}
		r, err := strconv.ParseUint(fields[1], 10, 64)
		if err == nil {
			err = s.env.SetRadix(bigint.Word(r))
		}
		if err != nil {
			fmt.Fprintln(s.out, s.colors.error(fmt.Sprintf(".radix %s: %v", fields[1], err)))
		}
	default:
		fmt.Fprintln(s.out, s.colors.error(fmt.Sprintf("Unknown command. %s", replAssistanceMessage)))
	}
	return false
}

// accept handles a single line of input.
func (s *session) accept(line string) (exit bool) {
	if strings.HasPrefix(strings.TrimSpace(line), ".") {
		return s.handleCommand(strings.TrimSpace(line))
	}
	s.eval(line)
	return false
}

func (s *session) suggestions() []prompt.Suggest {
	var suggests []prompt.Suggest
	for _, b := range calc.Builtins() {
		suggests = append(suggests, prompt.Suggest{
			Text:        b.Name,
			Description: b.Description,
		})
	}
	for _, name := range s.env.Vars() {
		suggests = append(suggests, prompt.Suggest{
			Text:        name,
			Description: "variable",
		})
	}
	return suggests
}

func runREPL(env *calc.Env, out io.Writer, cfg config, colors colorizer) {
	fmt.Fprintf(out, "Welcome to bigcalc (radix %d)!\n%s\n\n", env.Radix(), replAssistanceMessage)

	s := &session{env: env, out: out, colors: colors}
	lineNumber := 1
	exit := false

	executor := func(line string) {
		defer func() {
			lineNumber++
		}()
		exit = s.accept(line)
	}

	suggest := func(d prompt.Document) []prompt.Suggest {
		word := d.GetWordBeforeCursor()
		if len(word) == 0 {
			return nil
		}
		return prompt.FilterHasPrefix(s.suggestions(), word, false)
	}

	changeLivePrefix := func() (string, bool) {
		return fmt.Sprintf("%d%s ", lineNumber, cfg.Prompt), true
	}

	options := []prompt.Option{
		prompt.OptionTitle("bigcalc"),
		prompt.OptionLivePrefix(changeLivePrefix),
		prompt.OptionSetExitCheckerOnInput(func(string, bool) bool {
			return exit
		}),
	}
	if !cfg.Color {
		options = append(options, prompt.OptionPrefixTextColor(prompt.DefaultColor))
	}
	prompt.New(executor, suggest, options...).Run()
}
