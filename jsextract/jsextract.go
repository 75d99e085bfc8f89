// Package jsextract finds function-like declarations in JavaScript source
// and hands them back as parsefn.Callable values.
//
// Go cannot recover the source of a func value, so JavaScript files are the
// callables here: a tree-sitter grammar locates each function declaration,
// function expression, arrow function and method, and the exact source span
// of each one becomes its Source. Methods are rebuilt from their name,
// parameters and body so modifiers never reach the scanner.
//
//	ex := jsextract.New()
//	funcs, err := ex.ExtractFile(ctx, "app.js")
//	if err != nil {
//	    return err
//	}
//	for _, f := range funcs {
//	    fn := parsefn.Parse(f)
//	    fmt.Println(f.Line, fn.Name, fn.Args)
//	}
package jsextract

import (
	"context"
	"errors"
	"fmt"
	"os"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"

	"github.com/fossabot/parse-function/internal/ctxlog"
	"github.com/fossabot/parse-function/parsefn"
)

// DefaultMaxFileSize bounds the files ExtractFile will read.
const DefaultMaxFileSize = 10 << 20

// ErrFileTooLarge is returned by ExtractFile for files above the size limit.
var ErrFileTooLarge = errors.New("jsextract: file too large")

// Kind classifies an extracted function.
type Kind int

const (
	KindDeclaration Kind = iota // function foo() {}
	KindExpression              // const f = function () {}
	KindArrow                   // (a) => a
	KindMethod                  // class C { foo() {} }
)

func (k Kind) String() string {
	switch k {
	case KindDeclaration:
		return "declaration"
	case KindExpression:
		return "expression"
	case KindArrow:
		return "arrow"
	case KindMethod:
		return "method"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// ParseKind maps the names printed by Kind.String back to kinds.
func ParseKind(s string) (Kind, error) {
	for _, k := range []Kind{KindDeclaration, KindExpression, KindArrow, KindMethod} {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("jsextract: unknown kind %q", s)
}

// node types per kind; both spellings of function expressions appear
// across grammar versions
var nodeKinds = map[string]Kind{
	"function_declaration":           KindDeclaration,
	"generator_function_declaration": KindDeclaration,
	"function":                       KindExpression,
	"function_expression":            KindExpression,
	"generator_function":             KindExpression,
	"arrow_function":                 KindArrow,
	"method_definition":              KindMethod,
}

// Func is one function found in a source file.
type Func struct {
	Kind Kind
	Text string // exact source span
	File string
	Line int // 1-based

	// Spans of the node's name, parameters and body fields; empty when
	// the grammar gives the node no such field.
	Name   string
	Params string
	Body   string
}

var _ parsefn.Callable = Func{}

// Source returns the text to scan. Methods carry no keyword of their own
// and may lead with modifiers (async, static, get, set, *), so they are
// rebuilt from their fields as a plain function declaration.
func (f Func) Source() string {
	if f.Kind == KindMethod && f.Name != "" {
		return "function " + f.Name + f.Params + " " + f.Body
	}
	return f.Text
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithMaxFileSize sets the largest file ExtractFile accepts.
func WithMaxFileSize(n int64) Option {
	return func(e *Extractor) { e.maxFileSize = n }
}

// WithKinds restricts extraction to the given kinds.
func WithKinds(kinds ...Kind) Option {
	return func(e *Extractor) {
		e.kinds = make(map[Kind]bool, len(kinds))
		for _, k := range kinds {
			e.kinds[k] = true
		}
	}
}

// Extractor locates functions in JavaScript source. It holds no parser
// state between calls and is safe for concurrent use.
type Extractor struct {
	maxFileSize int64
	kinds       map[Kind]bool // nil means every kind
}

// New returns an Extractor with the given options applied.
func New(opts ...Option) *Extractor {
	e := &Extractor{maxFileSize: DefaultMaxFileSize}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractFile reads path and extracts its functions.
func (e *Extractor) ExtractFile(ctx context.Context, path string) ([]Func, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if e.maxFileSize > 0 && info.Size() > e.maxFileSize {
		return nil, fmt.Errorf("%s (%d bytes): %w", path, info.Size(), ErrFileTooLarge)
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	funcs, err := e.Extract(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for i := range funcs {
		funcs[i].File = path
	}
	return funcs, nil
}

// Extract returns the functions in src in source order. Nested functions
// are reported after the function that contains them.
func (e *Extractor) Extract(ctx context.Context, src []byte) ([]Func, error) {
	logger := ctxlog.FromContext(ctx)

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(javascript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse failed: %w", err)
	}
	defer tree.Close()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("extract canceled: %w", err)
	}

	root := tree.RootNode()
	if root.HasError() {
		logger.Debug("Source contains syntax errors, extracting what parsed.")
	}

	var funcs []Func
	e.walk(root, src, &funcs)
	logger.Debug("Functions extracted.", "count", len(funcs), "bytes", len(src))
	return funcs, nil
}

func (e *Extractor) walk(node *sitter.Node, src []byte, out *[]Func) {
	if node == nil {
		return
	}
	if kind, ok := nodeKinds[node.Type()]; ok && node.IsNamed() && e.wants(kind) {
		params := fieldContent(node, "parameters", src)
		if params == "" {
			// single bare arrow parameter
			params = fieldContent(node, "parameter", src)
		}
		*out = append(*out, Func{
			Kind:   kind,
			Text:   node.Content(src),
			Line:   int(node.StartPoint().Row) + 1,
			Name:   fieldContent(node, "name", src),
			Params: params,
			Body:   fieldContent(node, "body", src),
		})
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		e.walk(node.NamedChild(i), src, out)
	}
}

func fieldContent(node *sitter.Node, field string, src []byte) string {
	child := node.ChildByFieldName(field)
	if child == nil {
		return ""
	}
	return child.Content(src)
}

func (e *Extractor) wants(k Kind) bool {
	return e.kinds == nil || e.kinds[k]
}
