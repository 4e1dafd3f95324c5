package html

import (
	"errors"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/mathed/core"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DefaultSelector selects the elements holding math markup.
const DefaultSelector = "span.math"

// SourceAttr is the attribute keeping the math markup of an element.
const SourceAttr = "data-src"

// Converter translates math markup to an HTML fragment.
// *mathed.Parser implements it.
type Converter interface {
	Convert(text string) (string, error)
}

// RenderMath renders the math markup of every element of doc matching
// the CSS selector (DefaultSelector if empty). The markup is taken from
// attribute data-src or, if absent, from the text content of the element.
// The rendered fragment replaces the children of the element.
//
// Elements which fail to convert keep their content. RenderMath returns
// the number of elements rendered and the errors of all failing elements,
// joined. Failing elements are traced with their source.
func RenderMath(doc *html.Node, conv Converter, selector string) (int, error) {
	if selector == "" {
		selector = DefaultSelector
	}
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return 0, core.WrapError(core.ErrInvalid, core.EINVALID,
			"invalid selector %q: %v", selector, err)
	}
	var errs []error
	count := 0
	for _, n := range sel.MatchAll(doc) {
		src, ok := attr(n, SourceAttr)
		if !ok {
			src = textContent(n)
		}
		fragment, err := conv.Convert(src)
		if err != nil {
			tracer().Infof("cannot render %q: %v", src, err)
			errs = append(errs, err)
			continue
		}
		nodes, err := html.ParseFragment(strings.NewReader(fragment), n)
		if err != nil {
			errs = append(errs, core.WrapError(err, core.EINTERNAL,
				"rendering of %q is not valid HTML", src))
			continue
		}
		for c := n.FirstChild; c != nil; c = n.FirstChild {
			n.RemoveChild(c)
		}
		for _, c := range nodes {
			n.AppendChild(c)
		}
		setAttr(n, SourceAttr, src)
		count++
	}
	tracer().Debugf("rendered %d math elements", count)
	return count, errors.Join(errs...)
}

// NewMathElement creates an element of type span.math for a formula.
func NewMathElement(src string) *html.Node {
	span := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Span,
		Data:     "span",
		Attr: []html.Attribute{
			{Key: "class", Val: "math"},
		},
	}
	span.AppendChild(&html.Node{Type: html.TextNode, Data: src})
	return span
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
