package parsefn

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Anonymous is the name given to functions without an identifier.
const Anonymous = "anonymous"

var argSep = regexp.MustCompile(`,\s*`)

// SplitArgs breaks a parameter list into its entries, dropping empty ones.
func SplitArgs(params string) []string {
	args := []string{}
	for _, a := range argSep.Split(params, -1) {
		if a != "" {
			args = append(args, a)
		}
	}
	return args
}

// Build turns the result of Scan into a Function. It is defined for every
// combination of facts and never panics; malformed input degrades to an
// anonymous record with loosely sliced params and body.
func Build(facts ScanFacts, tokens Tokens) Function {
	var fn Function
	named := false

	if facts.HasParen {
		fn.Name, named = resolveName(facts, tokens)
	} else {
		// bare arrow parameter, e.g. `x => x`
		fn.Name = Anonymous
		fn.Params = tokens.at(0)
		fn.Args = SplitArgs(fn.Params)
	}

	switch {
	case facts.HasArrow:
		body := strings.TrimSpace(tokens.join(facts.StartArrowWord+1, Unset))
		if facts.BodyCurlyWord >= facts.StartArrowWord {
			body = stripEnds(body)
		}
		fn.Body = body

		if facts.HasParen {
			fn.Params = stripEnds(strings.TrimSpace(tokens.join(0, facts.StartArrowWord)))
			fn.Args = SplitArgs(fn.Params)
		}
	case facts.HasParen:
		fn.Body = curlyBody(facts, tokens)

		params := strings.TrimSpace(tokens.join(facts.StartParenWord, facts.EndParenWord))
		if named {
			params = strings.TrimPrefix(params, fn.Name)
		}
		fn.Params = stripEnds(params)
		fn.Args = SplitArgs(fn.Params)
	case facts.HasCurly:
		fn.Body = curlyBody(facts, tokens)
	}

	return fn
}

// resolveName reports the function's name and whether it came from the
// source rather than the Anonymous fallback.
func resolveName(facts ScanFacts, tokens Tokens) (string, bool) {
	// parenthesized arrow params with nothing in front
	if !facts.HasCurly && facts.OpenParen == 0 {
		return Anonymous, false
	}

	var name string
	switch {
	case facts.StartParenWord != 1 && facts.HasArrow:
		return Anonymous, false
	case facts.StartParenWord != 1:
		name = strings.TrimSpace(tokens.at(1))
	default:
		// token 1 starts right after the first word; cut it where "(" begins
		end := facts.OpenParen - len(tokens.at(0))
		name = sliceClamped(tokens.at(1), 1, end)
	}

	if name == "" {
		return Anonymous, false
	}
	return name, true
}

func curlyBody(facts ScanFacts, tokens Tokens) string {
	return stripEnds(strings.TrimSpace(tokens.join(facts.BodyCurlyWord, Unset)))
}

// at returns token k, or "" when k is out of range.
func (t Tokens) at(k int) string {
	if k < 0 || k >= len(t) {
		return ""
	}
	return t[k]
}

// join concatenates tokens[from:to]. An unset from reads from the start and
// an unset to reads through the end; both are clamped to the sequence.
func (t Tokens) join(from, to int) string {
	if from == Unset || from < 0 {
		from = 0
	}
	if to == Unset || to > len(t) {
		to = len(t)
	}
	if from >= to {
		return ""
	}
	return strings.Join(t[from:to], "")
}

// stripEnds drops exactly one leading and one trailing character. Strings
// holding fewer than two characters become empty.
func stripEnds(s string) string {
	_, first := utf8.DecodeRuneInString(s)
	_, last := utf8.DecodeLastRuneInString(s)
	if first+last > len(s) || len(s) < 2 {
		return ""
	}
	return s[first : len(s)-last]
}

func sliceClamped(s string, from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > len(s) {
		to = len(s)
	}
	if from >= to {
		return ""
	}
	return s[from:to]
}
