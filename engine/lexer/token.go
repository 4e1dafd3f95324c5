package lexer

import "fmt"

// Category is the grammar category of a token.
type Category int8

// Token categories. The order of declaration is the default order of
// precedence.
const (
	Map Category = iota
	Direct
	Special
	Number
	Frac
	OverUnder
	Set
	Name
	Operator
	Sub
	Sup
	LeftParen
	RightParen
	LeftBracket
	RightBracket
	LeftBrace
	RightBrace
)

var categoryNames = [...]string{
	Map:          "map",
	Direct:       "direct",
	Special:      "special",
	Number:       "number",
	Frac:         "frac",
	OverUnder:    "overunder",
	Set:          "set",
	Name:         "name",
	Operator:     "operator",
	Sub:          "sub",
	Sup:          "sup",
	LeftParen:    "left-paren",
	RightParen:   "right-paren",
	LeftBracket:  "left-bracket",
	RightBracket: "right-bracket",
	LeftBrace:    "left-brace",
	RightBrace:   "right-brace",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("category(%d)", c)
	}
	return categoryNames[c]
}

// IsOpening is true for opening delimiters.
func (c Category) IsOpening() bool {
	return c == LeftParen || c == LeftBracket || c == LeftBrace
}

// IsClosing is true for closing delimiters.
func (c Category) IsClosing() bool {
	return c == RightParen || c == RightBracket || c == RightBrace
}

// Closes returns the opening category matched by a closing one.
func (c Category) Closes() Category {
	switch c {
	case RightParen:
		return LeftParen
	case RightBracket:
		return LeftBracket
	case RightBrace:
		return LeftBrace
	}
	return c
}

// IsKeyword is true for tokens which take operands: frac, sum/prod, set,
// sub and sup.
func (c Category) IsKeyword() bool {
	switch c {
	case Frac, OverUnder, Set, Sub, Sup:
		return true
	}
	return false
}

// Token is a lexeme together with its category.
type Token struct {
	Category Category
	Value    string
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Category, t.Value)
}
