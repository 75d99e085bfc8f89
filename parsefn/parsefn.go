// Package parsefn describes function, function expression and arrow
// function source text without a full parser: a single scan locates the
// delimiters, and a fixed decision table slices out the name, parameters
// and body.
//
//	fn := parsefn.Parse("function testing (a, b, callback) { callback(null, a + b) }")
//	// fn.Name   == "testing"
//	// fn.Params == "a, b, callback"
//	// fn.Args   == []string{"a", "b", "callback"}
//	// fn.Body   == " callback(null, a + b) "
package parsefn

// Callable is anything that can render its own source text.
type Callable interface {
	Source() string
}

// Function is the parsed description of a function.
type Function struct {
	Name   string   `json:"name" yaml:"name"`
	Params string   `json:"params" yaml:"params"`
	Args   []string `json:"args" yaml:"args"`
	Body   string   `json:"body" yaml:"body"`

	orig  any
	value string
}

// Orig returns the value handed to Parse, unmodified.
func (f Function) Orig() any { return f.orig }

// Value returns the source text that was scanned.
func (f Function) Value() string { return f.value }

// Arguments is an alias for Args.
func (f Function) Arguments() []string { return f.Args }

// Parameters is an alias for Params.
func (f Function) Parameters() string { return f.Params }

// IsZero reports whether f is the empty record returned for unsupported
// input.
func (f Function) IsZero() bool {
	return f.Name == "" && f.Params == "" && f.Args == nil && f.Body == "" && f.orig == nil
}

// Parse describes v, which must be a string or a Callable. Any other value
// yields the zero Function.
func Parse(v any) Function {
	var src string
	switch t := v.(type) {
	case string:
		src = t
	case Callable:
		src = t.Source()
	default:
		return Function{}
	}

	facts, tokens := Scan(src)
	fn := Build(facts, tokens)
	fn.orig = v
	fn.value = src
	return fn
}

// ParseString is Parse for a known string.
func ParseString(src string) Function {
	return Parse(src)
}
