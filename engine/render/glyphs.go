package render

import (
	"strconv"
	"strings"

	"github.com/npillmayer/mathed/engine/tree"
)

// pieces of a stacked delimiter, as Unicode code points
type pieces struct {
	top, middle, bottom int
}

type family struct {
	plain       [2]string
	left, right pieces
}

var families = [...]family{
	tree.Paren: {
		plain: [2]string{"(", ")"},
		left:  pieces{9115, 9116, 9117}, // ⎛ ⎜ ⎝
		right: pieces{9118, 9119, 9120}, // ⎞ ⎟ ⎠
	},
	tree.Bracket: {
		plain: [2]string{"[", "]"},
		left:  pieces{9121, 9122, 9123}, // ⎡ ⎢ ⎣
		right: pieces{9124, 9125, 9126}, // ⎤ ⎥ ⎦
	},
	tree.Brace: {
		plain: [2]string{"{", "}"},
		left:  pieces{9127, 9128, 9129}, // ⎧ ⎨ ⎩, middle is the waist
		right: pieces{9131, 9132, 9133}, // ⎫ ⎬ ⎭
	},
}

const (
	braceExtension = 9130 // ⎪
	braceUpper     = 9136 // ⎰
	braceLower     = 9137 // ⎱
)

// Wrap encloses content in delimiters of the given kind, tall enough for
// size rows. Size 0 results in plain ASCII delimiters.
func Wrap(kind tree.DelimKind, size int, content string) string {
	f := families[kind]
	if size <= 0 {
		return f.plain[0] + content + f.plain[1]
	}
	var b strings.Builder
	if kind == tree.Brace {
		if size == 1 {
			column(&b, braceUpper, braceLower)
			b.WriteString(content)
			column(&b, braceLower, braceUpper)
			return b.String()
		}
		column(&b, braceRows(f.left, size)...)
		b.WriteString(" " + content + " ")
		column(&b, braceRows(f.right, size)...)
		return b.String()
	}
	column(&b, rows(f.left, size)...)
	b.WriteString(" " + content + " ")
	column(&b, rows(f.right, size)...)
	return b.String()
}

// rows: top, size-1 middle pieces, bottom
func rows(p pieces, size int) []int {
	r := make([]int, 0, size+1)
	r = append(r, p.top)
	for i := 0; i < size-1; i++ {
		r = append(r, p.middle)
	}
	return append(r, p.bottom)
}

// braceRows: top, extensions, waist, extensions, bottom
func braceRows(p pieces, size int) []int {
	ext := size/2 - 1
	r := make([]int, 0, 2*ext+3)
	r = append(r, p.top)
	for i := 0; i < ext; i++ {
		r = append(r, braceExtension)
	}
	r = append(r, p.middle)
	for i := 0; i < ext; i++ {
		r = append(r, braceExtension)
	}
	return append(r, p.bottom)
}

func column(b *strings.Builder, codepoints ...int) {
	b.WriteString(`<div class="ou">`)
	for _, cp := range codepoints {
		b.WriteString(`<div class="p">&#`)
		b.WriteString(strconv.Itoa(cp))
		b.WriteString(`;</div>`)
	}
	b.WriteString(`</div>`)
}
