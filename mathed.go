package mathed

import (
	"github.com/npillmayer/mathed/core/vocab"
	"github.com/npillmayer/mathed/engine/lexer"
	"github.com/npillmayer/mathed/engine/render"
	"github.com/npillmayer/mathed/engine/tree"
)

// Parser converts math markup to HTML, using a fixed vocabulary.
// A Parser is immutable and may be used from multiple goroutines.
type Parser struct {
	vocab      *vocab.Vocabulary
	lexer      *lexer.Lexer
	renderer   *render.Renderer
	precedence lexer.Precedence
	maxDepth   int
}

// Option configures a Parser.
type Option func(*options)

type options struct {
	use        []string
	exclude    []string
	excluding  bool
	precedence lexer.Precedence
	maxDepth   int
}

// Use selects plugins, merged in the given order. Without Use or Exclude,
// all registered plugins are merged.
func Use(names ...string) Option {
	return func(o *options) {
		o.use = append(o.use, names...)
	}
}

// Exclude merges all registered plugins except the named ones.
// It takes precedence over Use.
func Exclude(names ...string) Option {
	return func(o *options) {
		o.exclude = append(o.exclude, names...)
		o.excluding = true
	}
}

// WithPrecedence selects how the lexer resolves competing vocabulary.
func WithPrecedence(p lexer.Precedence) Option {
	return func(o *options) {
		o.precedence = p
	}
}

// WithMaxDepth limits the nesting depth of input expressions.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		if depth > 0 {
			o.maxDepth = depth
		}
	}
}

// New creates a parser from the plugins of a registry. It fails with an
// error wrapping core.ErrUnknownPlugin if a selected plugin is not
// registered.
func New(reg *vocab.Registry, opts ...Option) (*Parser, error) {
	o := options{maxDepth: tree.DefaultMaxDepth}
	for _, opt := range opts {
		opt(&o)
	}
	var v *vocab.Vocabulary
	var err error
	if o.excluding {
		v, err = reg.VocabularyExcluding(o.exclude...)
	} else {
		v, err = reg.Vocabulary(o.use...)
	}
	if err != nil {
		return nil, err
	}
	tracer().Debugf("parser uses plugins %v", v.Plugins())
	return &Parser{
		vocab:      v,
		lexer:      lexer.New(v, lexer.WithPrecedence(o.precedence)),
		renderer:   render.New(v, render.WithMaxDepth(o.maxDepth)),
		precedence: o.precedence,
		maxDepth:   o.maxDepth,
	}, nil
}

// Build creates a parser using the named plugins, or all registered
// plugins if no names are given.
func Build(reg *vocab.Registry, names ...string) (*Parser, error) {
	return New(reg, Use(names...))
}

// BuildExcluding creates a parser using all registered plugins except the
// named ones.
func BuildExcluding(reg *vocab.Registry, names ...string) (*Parser, error) {
	return New(reg, Exclude(names...))
}

// Vocabulary returns the parser's vocabulary.
func (p *Parser) Vocabulary() *vocab.Vocabulary {
	return p.vocab
}

// Precedence returns the strategy the lexer uses for competing vocabulary.
func (p *Parser) Precedence() lexer.Precedence {
	return p.precedence
}

// Lex splits text into tokens.
func (p *Parser) Lex(text string) []lexer.Token {
	return p.lexer.Lex(text)
}

// Parse groups tokens by delimiter scope.
func (p *Parser) Parse(tokens []lexer.Token) (*tree.Group, error) {
	return tree.Parse(tokens, tree.WithMaxDepth(p.maxDepth))
}

// Build resolves the keywords of a group tree into an expression tree.
func (p *Parser) Build(root *tree.Group) (*tree.Seq, error) {
	return tree.Build(root, tree.WithMaxDepth(p.maxDepth))
}

// Render translates an expression tree into HTML.
func (p *Parser) Render(e tree.Expr) (render.Result, error) {
	return p.renderer.Render(e)
}

// Convert translates math markup into an HTML fragment. It performs no
// error recovery: any error means the input is not (yet) valid.
func (p *Parser) Convert(text string) (string, error) {
	root, err := p.Parse(p.Lex(text))
	if err != nil {
		return "", err
	}
	seq, err := p.Build(root)
	if err != nil {
		return "", err
	}
	res, err := p.Render(seq)
	if err != nil {
		return "", err
	}
	return res.HTML, nil
}
