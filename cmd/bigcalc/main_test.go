package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/bigint"
	"github.com/db47h/bigint/internal/calc"
)

func newTestEnv(t *testing.T, radix bigint.Word) *calc.Env {
	t.Helper()
	env, err := calc.NewEnv(radix)
	require.NoError(t, err)
	return env
}

func TestRunBatch(t *testing.T) {
	in := `# factorials
x = fact(25)
x / fact(23)

y = 2^64
y % 1000
`
	var out, errOut bytes.Buffer
	err := runBatch(newTestEnv(t, 0), strings.NewReader(in), &out, &errOut, newColorizer(false))
	require.NoError(t, err)
	assert.Equal(t, "15511210043330985984000000\n600\n18446744073709551616\n616\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestRunBatch_Errors(t *testing.T) {
	in := "1 / 0\n2 +\n3\nundefined_var\n"
	var out, errOut bytes.Buffer
	err := runBatch(newTestEnv(t, 1000), strings.NewReader(in), &out, &errOut, newColorizer(false))
	assert.ErrorIs(t, err, errFailed)
	assert.Equal(t, "3\n", out.String())
	lines := strings.Split(strings.TrimSpace(errOut.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "line 1: Quo: division by zero", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "line 2: syntax error"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "line 4: variable undefined_var"), lines[2])
}

func TestSession(t *testing.T) {
	var out bytes.Buffer
	s := &session{env: newTestEnv(t, 0), out: &out, colors: newColorizer(false)}

	assert.False(t, s.accept("a = 12345678901234567890"))
	assert.False(t, s.accept(".radix 10"))
	assert.Equal(t, bigint.Word(10), s.env.Radix())
	assert.False(t, s.accept(".radix 12"))
	assert.Equal(t, bigint.Word(10), s.env.Radix())
	assert.False(t, s.accept(".vars"))
	assert.False(t, s.accept(".bogus"))
	assert.True(t, s.accept(" .exit "))

	got := out.String()
	assert.Contains(t, got, "12345678901234567890\n")
	assert.Contains(t, got, ".radix 12: ")
	assert.Contains(t, got, "a = 12345678901234567890\n")
	assert.Contains(t, got, "_ = 12345678901234567890\n")
	assert.Contains(t, got, "Unknown command. Type '.help' for assistance.")
}

func TestSession_Suggestions(t *testing.T) {
	s := &session{env: newTestEnv(t, 0), colors: newColorizer(false)}
	_, err := s.env.Eval("total = 1")
	require.NoError(t, err)
	var names []string
	for _, sg := range s.suggestions() {
		names = append(names, sg.Text)
	}
	assert.Contains(t, names, "modexp")
	assert.Contains(t, names, "total")
	assert.Contains(t, names, calc.LastResult)
}

func TestColorizer(t *testing.T) {
	x := bigint.NewInt(-42)
	assert.Equal(t, "-42", newColorizer(false).result(x))
	assert.Equal(t, "", newColorizer(false).result(nil))
	assert.Equal(t, "oops", newColorizer(false).error("oops"))
	assert.NotEqual(t, "-42", newColorizer(true).result(x))
}
