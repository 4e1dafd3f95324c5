package html

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/mathed"
	"github.com/npillmayer/mathed/core"
	"github.com/npillmayer/mathed/core/vocab"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const notebook = `<!DOCTYPE html>
<html><head><title>Notebook</title></head>
<body>
<p>Euler: <span class="math">e^(i pi)</span>,
fraction: <span class="math" data-src="frac{a}{b}">stale</span>,
typing: <span class="math">(a</span>.</p>
<p class="math">x_1</p>
</body></html>`

func newParser(t *testing.T) *mathed.Parser {
	p, err := mathed.Build(vocab.Builtin())
	require.NoError(t, err)
	return p
}

func render(t *testing.T, doc *html.Node) string {
	var b bytes.Buffer
	require.NoError(t, html.Render(&b, doc))
	return b.String()
}

func TestRenderMath(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathed.html")
	defer teardown()
	//
	doc, err := html.Parse(strings.NewReader(notebook))
	require.NoError(t, err)
	count, err := RenderMath(doc, newParser(t), "")
	assert.Equal(t, 2, count)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrUnclosedDelimiter))
	out := render(t, doc)
	assert.Contains(t, out, `<span class="math" data-src="e^(i pi)"><em>e</em><sup>`)
	assert.Contains(t, out, "π")
	assert.Contains(t, out, `<hr/>`)
	assert.NotContains(t, out, "stale")
	assert.Contains(t, out, `<span class="math">(a</span>`)
	assert.Contains(t, out, `<p class="math">x_1</p>`) // not selected
}

func TestRenderMathIsRepeatable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathed.html")
	defer teardown()
	//
	doc, err := html.Parse(strings.NewReader(notebook))
	require.NoError(t, err)
	RenderMath(doc, newParser(t), "span.math")
	first := render(t, doc)
	count, _ := RenderMath(doc, newParser(t), "span.math")
	assert.Equal(t, 2, count)
	assert.Equal(t, first, render(t, doc))
}

func TestRenderMathSelector(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathed.html")
	defer teardown()
	//
	doc, err := html.Parse(strings.NewReader(notebook))
	require.NoError(t, err)
	count, err := RenderMath(doc, newParser(t), "p.math")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Contains(t, render(t, doc), "<em>x</em><sub>1</sub>")
	_, err = RenderMath(doc, newParser(t), "p[")
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestMissingClasses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathed.html")
	defer teardown()
	//
	missing, err := MissingClasses(DefaultStylesheet)
	require.NoError(t, err)
	assert.Empty(t, missing)
	missing, err = MissingClasses(`
		.ou, div.p { display: inline-block; }
		@media print { .m.bigger { font-size: 120%; } }`)
	require.NoError(t, err)
	assert.Equal(t, []string{"small"}, missing)
	missing, err = MissingClasses("")
	require.NoError(t, err)
	assert.Equal(t, Classes, missing)
}

func TestSelectorClasses(t *testing.T) {
	assert.Equal(t, []string{"ou", "p"}, selectorClasses(".ou > div.p:first-child"))
	assert.Empty(t, selectorClasses("span"))
}

func TestInjectStylesheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathed.html")
	defer teardown()
	//
	doc, err := html.Parse(strings.NewReader(notebook))
	require.NoError(t, err)
	injected, err := InjectStylesheet(doc)
	require.NoError(t, err)
	assert.True(t, injected)
	injected, err = InjectStylesheet(doc)
	require.NoError(t, err)
	assert.False(t, injected)
	assert.Equal(t, 1, strings.Count(render(t, doc), "<style>"))
}

func TestWritePage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathed.html")
	defer teardown()
	//
	p := newParser(t)
	var fragments []string
	for _, in := range []string{"a+b", "(frac{a}{b})"} {
		f, err := p.Convert(in)
		require.NoError(t, err)
		fragments = append(fragments, f)
	}
	var b bytes.Buffer
	require.NoError(t, WritePage(&b, "Session", fragments))
	page := b.String()
	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
	assert.Contains(t, page, "<title>Session</title>")
	assert.Contains(t, page, ".ou {")
	assert.Equal(t, 2, strings.Count(page, `<span class="math">`))
	assert.Contains(t, page, "<em>a</em> + <em>b</em>")
}
