package html

import (
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/mathed/core"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const skeleton = `<!DOCTYPE html>
<html><head><meta charset="utf-8"><title></title></head><body></body></html>`

var (
	titleSelector = cascadia.MustCompile("title")
	bodySelector  = cascadia.MustCompile("body")
)

// WritePage writes a standalone HTML page, styled with DefaultStylesheet,
// showing already rendered math fragments, one per paragraph.
func WritePage(w io.Writer, title string, fragments []string) error {
	doc, err := html.Parse(strings.NewReader(skeleton))
	if err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot create page")
	}
	titleSelector.MatchFirst(doc).AppendChild(&html.Node{Type: html.TextNode, Data: title})
	if _, err := InjectStylesheet(doc); err != nil {
		return err
	}
	body := bodySelector.MatchFirst(doc)
	for _, fragment := range fragments {
		p := &html.Node{Type: html.ElementNode, DataAtom: atom.P, Data: "p"}
		span := NewMathElement("")
		span.RemoveChild(span.FirstChild)
		nodes, err := html.ParseFragment(strings.NewReader(fragment), span)
		if err != nil {
			return core.WrapError(err, core.EINVALID, "fragment is not valid HTML")
		}
		for _, n := range nodes {
			span.AppendChild(n)
		}
		p.AppendChild(span)
		body.AppendChild(p)
	}
	if err := html.Render(w, doc); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot write page: %v", err)
	}
	return nil
}
