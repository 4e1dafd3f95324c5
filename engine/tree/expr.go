package tree

import (
	"fmt"
	"strings"

	"github.com/npillmayer/mathed/core"
	"github.com/npillmayer/mathed/engine/lexer"
)

// Expr is a node of an expression tree. It is one of *Atom, *Seq,
// *Delimited, *Script, *Fraction or *OverUnder.
type Expr interface {
	String() string
	isExpr()
}

// Atom is a token standing for itself.
type Atom struct {
	Token lexer.Token
}

// Seq is a sequence of expressions: the root, or the content of a group.
type Seq struct {
	Items []Expr
}

// DelimKind is the kind of a delimiter pair.
type DelimKind int8

const (
	Paren DelimKind = iota
	Bracket
	Brace
)

func (k DelimKind) String() string {
	return [...]string{"paren", "bracket", "brace"}[k]
}

// Delimited is a sequence enclosed in visible delimiters.
type Delimited struct {
	Kind DelimKind
	Body *Seq
}

// ScriptKind tells subscripts from superscripts.
type ScriptKind int8

const (
	Subscript ScriptKind = iota
	Superscript
)

// Script is a subscript or superscript.
type Script struct {
	Kind    ScriptKind
	Operand Expr
}

// Fraction is numerator over denominator.
type Fraction struct {
	Num, Den Expr
}

// OverUnder is a big operator (sum or prod) with an under-term and an
// over-term.
type OverUnder struct {
	Op          string
	Under, Over Expr
}

func (*Atom) isExpr()      {}
func (*Seq) isExpr()       {}
func (*Delimited) isExpr() {}
func (*Script) isExpr()    {}
func (*Fraction) isExpr()  {}
func (*OverUnder) isExpr() {}

func (a *Atom) String() string {
	return fmt.Sprintf("(%s %s)", a.Token.Category, a.Token.Value)
}

func (s *Seq) String() string {
	items := make([]string, len(s.Items))
	for i, e := range s.Items {
		items[i] = e.String()
	}
	return "(seq" + prefixed(items) + ")"
}

func (d *Delimited) String() string {
	return fmt.Sprintf("(%s %s)", d.Kind, d.Body)
}

func (s *Script) String() string {
	if s.Kind == Superscript {
		return fmt.Sprintf("(sup %s)", s.Operand)
	}
	return fmt.Sprintf("(sub %s)", s.Operand)
}

func (f *Fraction) String() string {
	return fmt.Sprintf("(frac %s %s)", f.Num, f.Den)
}

func (o *OverUnder) String() string {
	return fmt.Sprintf("(%s %s %s)", o.Op, o.Under, o.Over)
}

func prefixed(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return " " + strings.Join(items, " ")
}

// --- Building --------------------------------------------------------------

// Build resolves keywords of a group tree into an expression tree.
// root will usually be the result of Parse.
//
// A keyword with too few operands in its group results in an error wrapping
// core.ErrIncompleteConstruct, naming the keyword.
func Build(root *Group, opts ...Option) (*Seq, error) {
	b := builder{cfg: configure(opts)}
	return b.seq(root.Children, 0)
}

type builder struct {
	cfg config
}

func (b builder) tooDeep() error {
	return core.WrapError(core.ErrTooDeeplyNested, core.ETOODEEP,
		"expression nested deeper than %d levels", b.cfg.maxDepth)
}

func (b builder) seq(nodes []Node, depth int) (*Seq, error) {
	s := &Seq{Items: make([]Expr, 0, len(nodes))}
	for i := 0; i < len(nodes); {
		e, n, err := b.expr(nodes, i, depth)
		if err != nil {
			return nil, err
		}
		s.Items = append(s.Items, e)
		i += n
	}
	return s, nil
}

// expr resolves the expression starting at nodes[i]. It returns the
// expression and the number of nodes consumed.
func (b builder) expr(nodes []Node, i int, depth int) (Expr, int, error) {
	if depth > b.cfg.maxDepth {
		return nil, 0, b.tooDeep()
	}
	switch n := nodes[i].(type) {
	case *Group:
		e, err := b.group(n, depth+1)
		return e, 1, err
	case *Leaf:
		tok := n.Token
		switch tok.Category {
		case lexer.Frac:
			ops, consumed, err := b.operands(tok, nodes, i, 2, depth)
			if err != nil {
				return nil, 0, err
			}
			return &Fraction{Num: ops[0], Den: ops[1]}, consumed, nil
		case lexer.OverUnder:
			ops, consumed, err := b.operands(tok, nodes, i, 2, depth)
			if err != nil {
				return nil, 0, err
			}
			return &OverUnder{Op: tok.Value, Under: ops[0], Over: ops[1]}, consumed, nil
		case lexer.Sub, lexer.Sup:
			ops, consumed, err := b.operands(tok, nodes, i, 1, depth)
			if err != nil {
				return nil, 0, err
			}
			kind := Subscript
			if tok.Category == lexer.Sup {
				kind = Superscript
			}
			return &Script{Kind: kind, Operand: ops[0]}, consumed, nil
		case lexer.Set:
			ops, consumed, err := b.operands(tok, nodes, i, 1, depth)
			if err != nil {
				return nil, 0, err
			}
			body, ok := ops[0].(*Seq)
			if !ok {
				body = &Seq{Items: []Expr{ops[0]}}
			}
			return &Delimited{Kind: Brace, Body: body}, consumed, nil
		}
		return &Atom{Token: tok}, 1, nil
	}
	return nil, 0, core.Error(core.EINTERNAL, "unknown node type %T", nodes[i])
}

// operands resolves count operands following the keyword at nodes[i]. It
// returns them together with the number of nodes consumed, keyword included.
func (b builder) operands(keyword lexer.Token, nodes []Node, i, count, depth int) ([]Expr, int, error) {
	ops := make([]Expr, 0, count)
	pos := i + 1
	for len(ops) < count {
		if pos >= len(nodes) {
			tracer().Debugf("keyword %q lacks operands", keyword.Value)
			return nil, 0, core.WrapError(core.ErrIncompleteConstruct, core.EINCOMPLETE,
				"%q needs %d operand(s), found %d", keyword.Value, count, len(ops))
		}
		e, n, err := b.expr(nodes, pos, depth+1)
		if err != nil {
			return nil, 0, err
		}
		ops = append(ops, e)
		pos += n
	}
	return ops, pos - i, nil
}

func (b builder) group(g *Group, depth int) (Expr, error) {
	body, err := b.seq(g.Children, depth)
	if err != nil {
		return nil, err
	}
	switch g.Open.Category {
	case lexer.LeftParen:
		return &Delimited{Kind: Paren, Body: body}, nil
	case lexer.LeftBracket:
		return &Delimited{Kind: Bracket, Body: body}, nil
	}
	return body, nil
}
