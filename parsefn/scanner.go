package parsefn

// Unset marks a position that was never recorded during a scan.
const Unset = -1

const (
	charSpace      = ' '
	charGreater    = '>'
	charOpenParen  = '('
	charCloseParen = ')'
	charOpenCurly  = '{'
	charCloseCurly = '}'
)

// ScanFacts holds the delimiter positions found by Scan. Raw offsets are
// byte offsets into the input; word indices point into Tokens.
type ScanFacts struct {
	HasParen bool
	HasCurly bool
	HasArrow bool

	OpenParen  int
	CloseParen int
	OpenCurly  int
	CloseCurly int
	FirstSpace int

	StartParenWord int
	EndParenWord   int // close-paren ending the parameter list, plus one
	StartCurlyWord int
	EndCurlyWord   int
	StartArrowWord int

	// BodyCurlyWord is the first "{" outside the parameter list, so a
	// destructured parameter is never taken for the body.
	BodyCurlyWord int
}

// Tokens is the input split on single spaces. Every entry after the first
// begins with the space that opened it, so joining them yields the input.
type Tokens []string

func newScanFacts() ScanFacts {
	return ScanFacts{
		OpenParen:      Unset,
		CloseParen:     Unset,
		OpenCurly:      Unset,
		CloseCurly:     Unset,
		FirstSpace:     Unset,
		StartParenWord: Unset,
		EndParenWord:   Unset,
		StartCurlyWord: Unset,
		EndCurlyWord:   Unset,
		StartArrowWord: Unset,
		BodyCurlyWord:  Unset,
	}
}

// mark records v in *p unless a position is already there.
func mark(p *int, v int) {
	if *p == Unset {
		*p = v
	}
}

// Scan walks src once and records where the function's delimiters are.
func Scan(src string) (ScanFacts, Tokens) {
	facts := newScanFacts()
	words := make([][]byte, 1, 8)
	j := 0

	// paren nesting inside the parameter list; headDone once it closes
	depth := 0
	headDone := false

	for i := 0; i < len(src); i++ {
		ch := src[i]
		switch ch {
		case charGreater:
			facts.HasArrow = true
			mark(&facts.StartArrowWord, j)
		case charOpenCurly:
			facts.HasCurly = true
			mark(&facts.OpenCurly, i)
			mark(&facts.StartCurlyWord, j)
			if depth == 0 {
				mark(&facts.BodyCurlyWord, j)
			}
		case charCloseCurly:
			mark(&facts.CloseCurly, i)
			mark(&facts.EndCurlyWord, j)
		case charOpenParen:
			facts.HasParen = true
			mark(&facts.OpenParen, i)
			mark(&facts.StartParenWord, j)
			if !headDone {
				depth++
			}
		case charCloseParen:
			mark(&facts.CloseParen, i)
			// overwritten until the ")" matching the first "(", so nested
			// parens in default values stay inside the list
			if depth > 0 {
				facts.EndParenWord = j + 1
				depth--
				headDone = depth == 0
			}
		}

		if ch == charSpace {
			mark(&facts.FirstSpace, i)
			words = append(words, []byte{charSpace})
			j++
			continue
		}
		words[j] = append(words[j], ch)
	}

	tokens := make(Tokens, len(words))
	for k, w := range words {
		tokens[k] = string(w)
	}
	return facts, tokens
}
