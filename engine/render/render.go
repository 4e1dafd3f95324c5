package render

import (
	"strings"

	"github.com/npillmayer/mathed/core"
	"github.com/npillmayer/mathed/engine/lexer"
	"github.com/npillmayer/mathed/engine/tree"
)

// SymbolTable resolves keys of mapped vocabulary to HTML.
// *vocab.Vocabulary implements it.
type SymbolTable interface {
	Substitute(key string) (string, bool)
}

// Result is the outcome of rendering a sub-tree.
type Result struct {
	HTML string
	Size int // delimiter size
}

// Renderer renders expression trees to HTML. It holds no mutable state.
type Renderer struct {
	symbols  SymbolTable
	maxDepth int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithMaxDepth limits the nesting depth of expressions. Non-positive values
// select tree.DefaultMaxDepth.
func WithMaxDepth(depth int) Option {
	return func(r *Renderer) {
		if depth > 0 {
			r.maxDepth = depth
		}
	}
}

// New creates a renderer which looks up mapped symbols in symbols.
func New(symbols SymbolTable, opts ...Option) *Renderer {
	r := &Renderer{symbols: symbols, maxDepth: tree.DefaultMaxDepth}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render translates an expression tree into HTML and computes its
// delimiter size.
func (r *Renderer) Render(e tree.Expr) (Result, error) {
	if e == nil {
		return Result{}, nil
	}
	return r.render(e, 0)
}

func (r *Renderer) render(e tree.Expr, depth int) (Result, error) {
	if depth > r.maxDepth {
		return Result{}, core.WrapError(core.ErrTooDeeplyNested, core.ETOODEEP,
			"expression nested deeper than %d levels", r.maxDepth)
	}
	switch e := e.(type) {
	case *tree.Atom:
		html, err := r.atom(e.Token)
		return Result{HTML: html}, err
	case *tree.Seq:
		return r.seq(e, depth)
	case *tree.Delimited:
		inner, err := r.render(e.Body, depth+1)
		if err != nil {
			return Result{}, err
		}
		html := Wrap(e.Kind, inner.Size, inner.HTML)
		if e.Kind == tree.Brace {
			return Result{HTML: html, Size: max(1, inner.Size)}, nil
		}
		return Result{HTML: html, Size: inner.Size + 1}, nil
	case *tree.Script:
		operand, err := r.render(e.Operand, depth+1)
		if err != nil {
			return Result{}, err
		}
		tag := "sub"
		if e.Kind == tree.Superscript {
			tag = "sup"
		}
		return Result{
			HTML: "<" + tag + ">" + operand.HTML + "</" + tag + ">",
			Size: operand.Size,
		}, nil
	case *tree.Fraction:
		num, err := r.render(e.Num, depth+1)
		if err != nil {
			return Result{}, err
		}
		den, err := r.render(e.Den, depth+1)
		if err != nil {
			return Result{}, err
		}
		html := `<div class="ou"><div>` + num.HTML + `</div><hr><div>` + den.HTML + `</div></div>`
		return Result{HTML: html, Size: max(1, num.Size, den.Size)}, nil
	case *tree.OverUnder:
		under, err := r.render(e.Under, depth+1)
		if err != nil {
			return Result{}, err
		}
		over, err := r.render(e.Over, depth+1)
		if err != nil {
			return Result{}, err
		}
		var b strings.Builder
		b.WriteString(`<div class="ou"><div class="small">`)
		b.WriteString(over.HTML)
		b.WriteString(`</div><div class="m bigger">&`)
		b.WriteString(e.Op)
		b.WriteString(`;</div><div class="small">`)
		b.WriteString(under.HTML)
		b.WriteString(`</div></div>`)
		return Result{HTML: b.String(), Size: max(1, under.Size, over.Size)}, nil
	}
	return Result{}, core.Error(core.EINTERNAL, "cannot render expression of type %T", e)
}

func (r *Renderer) seq(s *tree.Seq, depth int) (Result, error) {
	if s == nil {
		return Result{}, nil
	}
	var b strings.Builder
	size := 0
	for _, item := range s.Items {
		res, err := r.render(item, depth)
		if err != nil {
			return Result{}, err
		}
		b.WriteString(res.HTML)
		size = max(size, res.Size)
	}
	return Result{HTML: b.String(), Size: size}, nil
}

func (r *Renderer) atom(tok lexer.Token) (string, error) {
	switch tok.Category {
	case lexer.Number, lexer.Special:
		return tok.Value, nil
	case lexer.Map:
		if r.symbols != nil {
			if html, ok := r.symbols.Substitute(tok.Value); ok {
				return html, nil
			}
		}
		tracer().Errorf("no substitution for mapped symbol %q", tok.Value)
		return "", core.WrapError(core.ErrUnknownSymbol, core.EUNKNOWNSYMBOL,
			"no substitution for symbol %q", tok.Value)
	case lexer.Direct:
		return "&" + tok.Value + ";", nil
	case lexer.Name:
		return "<em>" + tok.Value + "</em>", nil
	case lexer.Operator:
		return " " + tok.Value + " ", nil
	}
	if tok.Category.IsKeyword() {
		return "", core.WrapError(core.ErrIncompleteConstruct, core.EINCOMPLETE,
			"%q without operands", tok.Value)
	}
	return "", core.Error(core.EINTERNAL, "unexpected token %v", tok)
}
