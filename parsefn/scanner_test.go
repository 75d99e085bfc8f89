package parsefn

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanNamedFunction(t *testing.T) {
	facts, tokens := Scan("function testing (a, b, callback) { callback(null, a + b) }")

	assert.Equal(t, Tokens{
		"function", " testing", " (a,", " b,", " callback)", " {",
		" callback(null,", " a", " +", " b)", " }",
	}, tokens)

	assert.True(t, facts.HasParen)
	assert.True(t, facts.HasCurly)
	assert.False(t, facts.HasArrow)

	assert.Equal(t, 17, facts.OpenParen)
	assert.Equal(t, 32, facts.CloseParen)
	assert.Equal(t, 34, facts.OpenCurly)
	assert.Equal(t, 58, facts.CloseCurly)
	assert.Equal(t, 8, facts.FirstSpace)

	assert.Equal(t, 2, facts.StartParenWord)
	assert.Equal(t, 5, facts.EndParenWord)
	assert.Equal(t, 5, facts.StartCurlyWord)
	assert.Equal(t, 10, facts.EndCurlyWord)
	assert.Equal(t, Unset, facts.StartArrowWord)
}

func TestScanArrowFunction(t *testing.T) {
	facts, tokens := Scan("(a, b) => a + b")

	assert.Equal(t, Tokens{"(a,", " b)", " =>", " a", " +", " b"}, tokens)
	assert.True(t, facts.HasParen)
	assert.True(t, facts.HasArrow)
	assert.False(t, facts.HasCurly)
	assert.Equal(t, 0, facts.OpenParen)
	assert.Equal(t, 0, facts.StartParenWord)
	assert.Equal(t, 2, facts.StartArrowWord)
	assert.Equal(t, Unset, facts.OpenCurly)
	assert.Equal(t, Unset, facts.StartCurlyWord)
}

func TestScanEmptyInput(t *testing.T) {
	facts, tokens := Scan("")
	assert.Equal(t, Tokens{""}, tokens)
	assert.Equal(t, newScanFacts(), facts)
}

func TestScanFirstOccurrenceWins(t *testing.T) {
	facts, _ := Scan("(a) => f(b) > { g(c) } }")

	assert.Equal(t, 0, facts.OpenParen)
	assert.Equal(t, 0, facts.StartParenWord)
	assert.Equal(t, 2, facts.CloseParen)
	assert.Equal(t, 1, facts.StartArrowWord)
	assert.Equal(t, 14, facts.OpenCurly)
	assert.Equal(t, 4, facts.StartCurlyWord)
	assert.Equal(t, 21, facts.CloseCurly)
	assert.Equal(t, 6, facts.EndCurlyWord)
}

func TestScanEndParenMatchesFirstOpen(t *testing.T) {
	facts, _ := Scan("function f (a = g(1), b) { h(2) }")
	// " b)" is word 5; the ")" in the body is ignored
	assert.Equal(t, 6, facts.EndParenWord)
	assert.Equal(t, 19, facts.CloseParen)
}

func TestScanTokensRebuildInput(t *testing.T) {
	inputs := []string{
		"",
		" ",
		"   leading",
		"trailing   ",
		"function testing (a, b, callback) { callback(null, a + b) }",
		"function named(x) {\n  return x\n}",
		"function grüße (ä, ö) { return ä }",
	}
	for _, in := range inputs {
		_, tokens := Scan(in)
		assert.Equal(t, in, strings.Join(tokens, ""), "input %q", in)
		assert.Equal(t, strings.Count(in, " ")+1, len(tokens), "input %q", in)
	}
}

func TestScanDestructuredParams(t *testing.T) {
	facts, tokens := Scan("function f({a, b}) { return a }")
	assert.Equal(t, Tokens{"function", " f({a,", " b})", " {", " return", " a", " }"}, tokens)
	assert.Equal(t, 1, facts.StartParenWord)
	assert.Equal(t, 3, facts.EndParenWord)
	assert.Equal(t, 1, facts.StartCurlyWord)
	assert.Equal(t, 3, facts.BodyCurlyWord)

	facts, _ = Scan("function f ({a, b}) {}")
	assert.Equal(t, 2, facts.StartParenWord)
	assert.Equal(t, 4, facts.EndParenWord)
	assert.Equal(t, 2, facts.StartCurlyWord)
	assert.Equal(t, 4, facts.BodyCurlyWord)
}

func TestScanBodyParensDoNotMoveEndParen(t *testing.T) {
	facts, _ := Scan("function g (a) { return h(a) }")
	assert.Equal(t, 3, facts.EndParenWord)
	assert.Equal(t, 3, facts.BodyCurlyWord)

	facts, _ = Scan("({a}) => a")
	assert.Equal(t, Unset, facts.BodyCurlyWord)
	assert.Equal(t, 0, facts.StartCurlyWord)
}
