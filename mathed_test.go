package mathed

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/mathed/core"
	"github.com/npillmayer/mathed/core/vocab"
	"github.com/npillmayer/mathed/engine/lexer"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func builtin(t *testing.T, names ...string) *Parser {
	p, err := Build(vocab.Builtin(), names...)
	require.NoError(t, err)
	return p
}

func TestConvertSum(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathed")
	defer teardown()
	//
	p := builtin(t)
	html, err := p.Convert("a+b")
	require.NoError(t, err)
	assert.Equal(t, "<em>a</em> + <em>b</em>", html)
	root, err := p.Parse(p.Lex("a+b"))
	require.NoError(t, err)
	seq, err := p.Build(root)
	require.NoError(t, err)
	res, err := p.Render(seq)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Size)
}

func TestConvertFraction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathed")
	defer teardown()
	//
	html, err := builtin(t).Convert("frac{a}{b}")
	require.NoError(t, err)
	assert.Equal(t, `<div class="ou"><div><em>a</em></div><hr><div><em>b</em></div></div>`, html)
	assert.NotContains(t, html, "(")
	assert.NotContains(t, html, "&#91")
}

func TestConvertParenthesizedFraction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathed")
	defer teardown()
	//
	html, err := builtin(t).Convert("(frac{a}{b})")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(html, `<div class="ou"><div class="p">&#9115;</div>`), html)
	assert.True(t, strings.HasSuffix(html, `<div class="p">&#9120;</div></div>`), html)
	assert.NotContains(t, html, "(")
	assert.NotContains(t, html, ")")
}

func TestConvertGreekLetter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathed")
	defer teardown()
	//
	p := builtin(t, "greek")
	html, err := p.Convert("pi")
	require.NoError(t, err)
	assert.Equal(t, "&pi;", html)
	tokens := p.Lex("pi")
	require.Len(t, tokens, 1)
	assert.Equal(t, lexer.Direct, tokens[0].Category)
	// without greek letters, "pi" is a product of two names
	html, err = builtin(t, "functions").Convert("pi")
	require.NoError(t, err)
	assert.Equal(t, "<em>p</em><em>i</em>", html)
}

func TestConvertUnclosed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathed")
	defer teardown()
	//
	_, err := builtin(t).Convert("(a")
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrUnclosedDelimiter))
	assert.Equal(t, core.EUNCLOSED, core.Code(err))
	assert.Contains(t, err.Error(), `"("`)
}

func TestConvertIncomplete(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathed")
	defer teardown()
	//
	_, err := builtin(t).Convert("frac{a}")
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrIncompleteConstruct))
	assert.Contains(t, err.Error(), "frac")
}

func TestConvertEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathed")
	defer teardown()
	//
	html, err := builtin(t).Convert("")
	require.NoError(t, err)
	assert.Equal(t, "", html)
}

func TestConvertInvalidUTF8(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathed")
	defer teardown()
	//
	p := builtin(t)
	for _, input := range []string{"\x80a", "a\xff", "\xe2\x82a", "\xc3a\xc3"} {
		html, err := p.Convert(input)
		require.NoError(t, err, input)
		assert.Equal(t, "<em>a</em>", html, input)
	}
	html, err := p.Convert("(x\xc3)")
	require.NoError(t, err)
	assert.Equal(t, "(<em>x</em>)", html)
}

func TestPrecedenceOption(t *testing.T) {
	assert.Equal(t, lexer.CategoryOrder, builtin(t).Precedence())
	p, err := New(vocab.Builtin(), WithPrecedence(lexer.LongestVocabulary))
	require.NoError(t, err)
	assert.Equal(t, lexer.LongestVocabulary, p.Precedence())
}

func TestConvertUnbalanced(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathed")
	defer teardown()
	//
	for _, input := range []string{"a)", "(a]", "}"} {
		_, err := builtin(t).Convert(input)
		assert.True(t, errors.Is(err, core.ErrUnbalancedDelimiter), input)
	}
}

func TestBuildUnknownPlugin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathed")
	defer teardown()
	//
	_, err := Build(vocab.Builtin(), "greek", "klingon")
	assert.True(t, errors.Is(err, core.ErrUnknownPlugin))
	assert.Equal(t, core.EUNKNOWNPLUGIN, core.Code(err))
}

func TestBuildExcluding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathed")
	defer teardown()
	//
	p, err := BuildExcluding(vocab.Builtin(), "greek")
	require.NoError(t, err)
	assert.NotContains(t, p.Vocabulary().Plugins(), "greek")
	assert.Contains(t, p.Vocabulary().Plugins(), "set")
	html, err := p.Convert("alpha")
	require.NoError(t, err)
	assert.NotContains(t, html, "&alpha;")
}

func TestMaxDepthOption(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathed")
	defer teardown()
	//
	p, err := New(vocab.Builtin(), WithMaxDepth(2))
	require.NoError(t, err)
	_, err = p.Convert("((a))")
	assert.NoError(t, err)
	_, err = p.Convert("(((a)))")
	assert.True(t, errors.Is(err, core.ErrTooDeeplyNested))
	deep := strings.Repeat("(", 1000) + "a" + strings.Repeat(")", 1000)
	_, err = builtin(t).Convert(deep)
	assert.True(t, errors.Is(err, core.ErrTooDeeplyNested))
}

func TestConvertIsDeterministic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathed")
	defer teardown()
	//
	input := `sum{i=0}{n} x_i^2 <= [frac{alpha}{2} + \{a, b\}]`
	first, err := builtin(t).Convert(input)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		html, err := builtin(t).Convert(input)
		require.NoError(t, err)
		assert.Equal(t, first, html)
	}
}

func TestConvertConcurrently(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathed")
	defer teardown()
	//
	p := builtin(t)
	inputs := []string{"a+b", "(frac{a}{b})", "pi", "sin x^2", `\{x in bbR\}`}
	want := make([]string, len(inputs))
	for i, in := range inputs {
		html, err := p.Convert(in)
		require.NoError(t, err)
		want[i] = html
	}
	var wg sync.WaitGroup
	errs := make(chan string, 100)
	for g := 0; g < 20; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, in := range inputs {
				if html, err := p.Convert(in); err != nil || html != want[i] {
					errs <- in
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for in := range errs {
		t.Errorf("concurrent conversion of %q differs", in)
	}
}

func TestPreviewKeepsLastGoodRendering(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathed")
	defer teardown()
	//
	pv := builtin(t).NewPreview()
	assert.Equal(t, "", pv.HTML())
	require.NoError(t, pv.Update("frac{a}{b}"))
	good := pv.HTML()
	assert.NotEmpty(t, good)
	// user continues typing
	err := pv.Update("frac{a}{b}+(")
	assert.True(t, errors.Is(err, core.ErrUnclosedDelimiter))
	assert.Equal(t, good, pv.HTML())
	assert.Equal(t, "frac{a}{b}", pv.Source())
	assert.Error(t, pv.Err())
	require.NoError(t, pv.Update("frac{a}{b}+(c)"))
	assert.NoError(t, pv.Err())
	assert.NotEqual(t, good, pv.HTML())
	assert.Equal(t, "frac{a}{b}+(c)", pv.Source())
}
