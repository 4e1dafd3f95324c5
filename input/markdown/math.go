package markdown

import (
	"bytes"

	mathhtml "github.com/npillmayer/mathed/input/html"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// KindInline is the node kind of inline math.
var KindInline = ast.NewNodeKind("MathInline")

// Inline is an AST node for inline math.
type Inline struct {
	ast.BaseInline
	Source []byte
}

// Kind implements ast.Node.
func (n *Inline) Kind() ast.NodeKind {
	return KindInline
}

// Dump implements ast.Node.
func (n *Inline) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Source": string(n.Source)}, nil)
}

type inlineParser struct{}

func (p *inlineParser) Trigger() []byte {
	return []byte{'$'}
}

// Parse recognizes $…$ within a line. Lone or empty dollars are left to
// the text parser.
func (p *inlineParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, _ := block.PeekLine()
	if len(line) < 2 || line[0] != '$' {
		return nil
	}
	end := bytes.IndexByte(line[1:], '$')
	if end <= 0 {
		return nil
	}
	src := append([]byte(nil), line[1:end+1]...)
	block.Advance(end + 2)
	return &Inline{Source: src}
}

type mathRenderer struct {
	conv mathhtml.Converter
}

func (r *mathRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindInline, r.renderInline)
}

func (r *mathRenderer) renderInline(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	m := n.(*Inline)
	html, err := r.conv.Convert(string(m.Source))
	if err != nil {
		tracer().Infof("cannot render math %q: %v", m.Source, err)
		_, _ = w.WriteString(`<code class="math-error">`)
		_, _ = w.Write(util.EscapeHTML(m.Source))
		_, _ = w.WriteString(`</code>`)
		return ast.WalkSkipChildren, nil
	}
	_, _ = w.WriteString(`<span class="math" ` + mathhtml.SourceAttr + `="`)
	_, _ = w.Write(util.EscapeHTML(m.Source))
	_, _ = w.WriteString(`">`)
	_, _ = w.WriteString(html)
	_, _ = w.WriteString(`</span>`)
	return ast.WalkSkipChildren, nil
}

// Extension adds inline math to a goldmark.Markdown.
type Extension struct {
	conv mathhtml.Converter
}

// New creates an extension converting math with conv, usually a
// *mathed.Parser.
func New(conv mathhtml.Converter) *Extension {
	return &Extension{conv: conv}
}

// Extend implements goldmark.Extender.
func (e *Extension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(&inlineParser{}, 150),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&mathRenderer{conv: e.conv}, 500),
	))
}
