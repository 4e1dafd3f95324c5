package tree

import (
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/mathed/core"
	"github.com/npillmayer/mathed/engine/lexer"
)

// DefaultMaxDepth is the default limit for nesting of groups and constructs.
const DefaultMaxDepth = 64

// Node is a node of a group tree, either a *Leaf or a *Group.
type Node interface {
	String() string
	isNode()
}

// Leaf is a single non-delimiter token.
type Leaf struct {
	Token lexer.Token
}

func (l *Leaf) isNode() {}

func (l *Leaf) String() string {
	return l.Token.Value
}

// Group is the content of a matched pair of delimiters. The root group has
// no opening token.
type Group struct {
	Open     lexer.Token // token which opened the group
	Children []Node
}

func (g *Group) isNode() {}

// IsRoot is true for the top-level group.
func (g *Group) IsRoot() bool {
	return g.Open.Value == ""
}

// Leaves counts the leaves of g and all its sub-groups.
func (g *Group) Leaves() int {
	n := 0
	for _, c := range g.Children {
		switch c := c.(type) {
		case *Leaf:
			n++
		case *Group:
			n += c.Leaves()
		}
	}
	return n
}

// String returns a bracketed representation of g, e.g. "frac ⟨{ a }⟩ ⟨{ b }⟩".
func (g *Group) String() string {
	var b strings.Builder
	if !g.IsRoot() {
		b.WriteString("⟨")
		b.WriteString(g.Open.Value)
	}
	for i, c := range g.Children {
		if i > 0 || !g.IsRoot() {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	if !g.IsRoot() {
		b.WriteString(" ⟩")
	}
	return b.String()
}

// Option configures tree building.
type Option func(*config)

type config struct {
	maxDepth int
}

// WithMaxDepth limits the nesting depth of groups and constructs.
// Non-positive values select DefaultMaxDepth.
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}

func configure(opts []Option) config {
	c := config{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Parse groups tokens by delimiter scope. It returns the root group.
//
// An opening delimiter starts a new group, which carries the opening token.
// A closing delimiter ends the innermost open group and appends it to its
// parent. Closing delimiters are not recorded. All other tokens are appended
// as leaves to the innermost open group.
//
// Parse fails with core.ErrUnbalancedDelimiter if a closing delimiter has no
// matching opener, and with core.ErrUnclosedDelimiter if groups remain open
// at the end of input. Groups nested deeper than the configured maximum
// result in core.ErrTooDeeplyNested.
func Parse(tokens []lexer.Token, opts ...Option) (*Group, error) {
	cfg := configure(opts)
	root := &Group{}
	stack := arraystack.New()
	stack.Push(root)
	var outermost *Group // outermost open group, for error messages
	for _, tok := range tokens {
		top := peek(stack)
		switch {
		case tok.Category.IsOpening():
			if stack.Size() > cfg.maxDepth {
				return nil, core.WrapError(core.ErrTooDeeplyNested, core.ETOODEEP,
					"groups nested deeper than %d levels", cfg.maxDepth)
			}
			g := &Group{Open: tok}
			if stack.Size() == 1 {
				outermost = g
			}
			stack.Push(g)
		case tok.Category.IsClosing():
			if top.IsRoot() {
				tracer().Debugf("closing %q without opener", tok.Value)
				return nil, core.WrapError(core.ErrUnbalancedDelimiter, core.EUNBALANCED,
					"closing %q without opening delimiter", tok.Value)
			}
			if top.Open.Category != tok.Category.Closes() {
				tracer().Debugf("closing %q for opening %q", tok.Value, top.Open.Value)
				return nil, core.WrapError(core.ErrUnbalancedDelimiter, core.EUNBALANCED,
					"closing %q does not match opening %q", tok.Value, top.Open.Value)
			}
			stack.Pop()
			parent := peek(stack)
			parent.Children = append(parent.Children, top)
		default:
			top.Children = append(top.Children, &Leaf{Token: tok})
		}
	}
	if stack.Size() > 1 {
		tracer().Debugf("%d groups left open", stack.Size()-1)
		return nil, core.WrapError(core.ErrUnclosedDelimiter, core.EUNCLOSED,
			"unclosed %q", outermost.Open.Value)
	}
	return root, nil
}

func peek(stack *arraystack.Stack) *Group {
	top, _ := stack.Peek()
	return top.(*Group)
}
