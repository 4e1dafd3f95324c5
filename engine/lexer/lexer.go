package lexer

import (
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/mathed/core/vocab"
	"github.com/npillmayer/uax/grapheme"
	"golang.org/x/text/unicode/norm"
)

// Precedence selects how competing vocabulary matches are resolved.
type Precedence int8

const (
	// CategoryOrder lets the first vocabulary category with a match win,
	// in order map, direct, special.
	CategoryOrder Precedence = iota
	// LongestVocabulary lets the longest match across all vocabulary
	// categories win. Ties are broken by category order.
	LongestVocabulary
)

func (p Precedence) String() string {
	if p == LongestVocabulary {
		return "longest"
	}
	return "category"
}

// Option configures a Lexer.
type Option func(*Lexer)

// WithPrecedence sets the strategy for resolving vocabulary matches.
func WithPrecedence(p Precedence) Option {
	return func(lx *Lexer) {
		lx.precedence = p
	}
}

// matcher recognizes a prefix of its input and returns its length in bytes,
// or 0 for no match.
type matcher struct {
	priority int
	category Category
	match    func(s string) int
}

// Lexer splits input into tokens. A Lexer is immutable and may be shared
// between goroutines.
type Lexer struct {
	vocab      *vocab.Vocabulary
	matchers   []matcher
	precedence Precedence
}

var setupGraphemes sync.Once

// New creates a lexer for a vocabulary. v may be nil, in which case only
// the fixed grammar categories are recognized.
func New(v *vocab.Vocabulary, opts ...Option) *Lexer {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	lx := &Lexer{vocab: v}
	for _, opt := range opts {
		opt(lx)
	}
	lx.matchers = lx.table()
	tracer().Debugf("lexer uses %d matchers, precedence %s", len(lx.matchers), lx.precedence)
	return lx
}

func (lx *Lexer) table() []matcher {
	t := []matcher{
		{10, Map, lx.vocabulary(vocab.Mapped)},
		{20, Direct, lx.vocabulary(vocab.Direct)},
		{30, Special, lx.vocabulary(vocab.Special)},
		{40, Number, matchNumber},
		{50, Frac, literal("frac")},
		{51, OverUnder, literal("sum", "prod")},
		{52, Set, matchSet},
		{60, Name, matchName},
		{70, Operator, oneOf("+-*/=:%!|")},
		{80, Sub, literal("_")},
		{81, Sup, literal("^")},
		{90, LeftParen, literal("(")},
		{91, RightParen, literal(")")},
		{92, LeftBracket, literal("[")},
		{93, RightBracket, literal("]")},
		{94, LeftBrace, literal("{")},
		{95, RightBrace, literal(`\}`, "}")},
	}
	sort.SliceStable(t, func(i, j int) bool {
		return t[i].priority < t[j].priority
	})
	return t
}

// Categories returns the token categories in order of precedence.
func (lx *Lexer) Categories() []Category {
	cats := make([]Category, len(lx.matchers))
	for i, m := range lx.matchers {
		cats[i] = m.category
	}
	return cats
}

// Lex splits text into tokens. Substrings not matching any category are
// dropped, as are bytes which are not valid UTF-8. Lex never splits a
// grapheme cluster: if a match would end inside a cluster, the complete
// cluster is dropped instead.
func (lx *Lexer) Lex(text string) []Token {
	if !utf8.ValidString(text) {
		tracer().Debugf("lexer drops invalid UTF-8 from %q", text)
		text = strings.ToValidUTF8(text, "")
	}
	if text == "" {
		return []Token{}
	}
	text = norm.NFC.String(text)
	bounds := clusterBoundaries(text)
	tokens := make([]Token, 0, len(text)/2+1)
	pos := 0
	for pos < len(text) {
		cat, n := lx.next(text[pos:])
		if n > 0 && bounds[pos+n] {
			tokens = append(tokens, Token{Category: cat, Value: text[pos : pos+n]})
			pos += n
			continue
		}
		skip := pos + 1
		for !bounds[skip] {
			skip++
		}
		if !isSpace(text[pos:skip]) {
			tracer().Debugf("lexer drops %q at %d", text[pos:skip], pos)
		}
		pos = skip
	}
	return tokens
}

func (lx *Lexer) next(s string) (Category, int) {
	if lx.precedence == LongestVocabulary {
		best, longest := Map, 0
		for _, m := range lx.matchers {
			if m.category > Special {
				continue
			}
			if n := m.match(s); n > longest {
				best, longest = m.category, n
			}
		}
		if longest > 0 {
			return best, longest
		}
	}
	for _, m := range lx.matchers {
		if n := m.match(s); n > 0 {
			return m.category, n
		}
	}
	return Map, 0
}

// --- Matchers --------------------------------------------------------------

func (lx *Lexer) vocabulary(k vocab.Kind) func(string) int {
	return func(s string) int {
		if lx.vocab == nil {
			return 0
		}
		return lx.vocab.Match(k, s)
	}
}

func literal(alternatives ...string) func(string) int {
	return func(s string) int {
		for _, a := range alternatives {
			if strings.HasPrefix(s, a) {
				return len(a)
			}
		}
		return 0
	}
}

func oneOf(chars string) func(string) int {
	return func(s string) int {
		if s != "" && strings.IndexByte(chars, s[0]) >= 0 {
			return 1
		}
		return 0
	}
}

// matchNumber matches [0-9]+(\.[0-9]+)?
func matchNumber(s string) int {
	n := digits(s)
	if n == 0 {
		return 0
	}
	if n < len(s) && s[n] == '.' {
		if f := digits(s[n+1:]); f > 0 {
			n += 1 + f
		}
	}
	return n
}

func digits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

// matchName matches a single ASCII letter.
func matchName(s string) int {
	if s != "" && (s[0] >= 'a' && s[0] <= 'z' || s[0] >= 'A' && s[0] <= 'Z') {
		return 1
	}
	return 0
}

// matchSet matches the backslash of `\{`, which opens a set.
func matchSet(s string) int {
	if strings.HasPrefix(s, `\{`) {
		return 1
	}
	return 0
}

// --- Grapheme clusters -----------------------------------------------------

// clusterBoundaries flags every byte offset of text at which a grapheme
// cluster starts, plus len(text).
func clusterBoundaries(text string) []bool {
	bounds := make([]bool, len(text)+1)
	bounds[len(text)] = true
	if isASCII(text) {
		for i := range bounds {
			bounds[i] = true
		}
		return bounds
	}
	gstr := grapheme.StringFromString(text)
	bounds[0] = true
	offset := 0
	for i := 0; i < gstr.Len(); i++ {
		offset += len(gstr.Nth(i))
		if offset <= len(text) {
			bounds[offset] = true
		}
	}
	// in case of a segmentation mismatch fall back to rune boundaries
	if offset != len(text) {
		tracer().Errorf("grapheme segmentation covers %d of %d bytes", offset, len(text))
		for i := range text {
			bounds[i] = true
		}
	}
	return bounds
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func isSpace(s string) bool {
	return strings.TrimSpace(s) == ""
}
