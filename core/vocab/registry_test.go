package vocab

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/mathed/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathed.vocab")
	defer teardown()
	//
	reg := Builtin()
	assert.Equal(t, []string{"greek", "functions", "comparisons", "logic", "set",
		"blackboard", "misc"}, reg.Names())
	for _, name := range reg.Names() {
		p, ok := reg.Lookup(name)
		require.True(t, ok)
		assert.NoError(t, p.Validate(), name)
	}
}

func TestRegisterReplaceKeepsPosition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathed.vocab")
	defer teardown()
	//
	reg := NewRegistry()
	require.NoError(t, reg.Register("a", Plugin{Direct: []string{"alpha"}}))
	require.NoError(t, reg.Register("b", Plugin{Special: []string{"sin"}}))
	require.NoError(t, reg.Register("a", Plugin{Direct: []string{"beta"}}))
	assert.Equal(t, []string{"a", "b"}, reg.Names())
	p, _ := reg.Lookup("a")
	assert.Equal(t, []string{"beta"}, p.Direct)
}

func TestRegisterRejectsInvalid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathed.vocab")
	defer teardown()
	//
	reg := NewRegistry()
	err := reg.Register("bad", Plugin{Direct: []string{"two words"}})
	assert.Equal(t, core.EINVALID, core.Code(err))
	err = reg.Register("bad", Plugin{Special: []string{"a+b"}})
	assert.Equal(t, core.EINVALID, core.Code(err))
	err = reg.Register("bad", Plugin{Map: map[string]string{"": "x"}})
	assert.Equal(t, core.EINVALID, core.Code(err))
	err = reg.Register("  ", Plugin{})
	assert.Equal(t, core.EINVALID, core.Code(err))
	assert.Empty(t, reg.Names())
}

func TestVocabularyUnknownPlugin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathed.vocab")
	defer teardown()
	//
	_, err := Builtin().Vocabulary("greek", "klingon")
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrUnknownPlugin))
	assert.Contains(t, core.UserMessage(err), "klingon")
}

func TestVocabularySelection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathed.vocab")
	defer teardown()
	//
	reg := Builtin()
	v, err := reg.Vocabulary("functions", "greek")
	require.NoError(t, err)
	assert.Equal(t, []string{"functions", "greek"}, v.Plugins())
	assert.True(t, v.Has(Direct, "pi"))
	assert.True(t, v.Has(Special, "sin"))
	assert.Equal(t, 0, v.Len(Mapped))
	//
	all, err := reg.Vocabulary()
	require.NoError(t, err)
	assert.Equal(t, reg.Names(), all.Plugins())
	//
	ex, err := reg.VocabularyExcluding("greek", "nonexistent")
	require.NoError(t, err)
	assert.NotContains(t, ex.Plugins(), "greek")
	assert.False(t, ex.Has(Direct, "pi"))
	assert.True(t, ex.Has(Direct, "infin"))
}

func TestLaterPluginWinsMapCollision(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathed.vocab")
	defer teardown()
	//
	reg := NewRegistry()
	require.NoError(t, reg.Register("first", Plugin{Map: map[string]string{"->": "A"}}))
	require.NoError(t, reg.Register("second", Plugin{Map: map[string]string{"->": "B"}}))
	v, err := reg.Vocabulary("first", "second")
	require.NoError(t, err)
	html, _ := v.Substitute("->")
	assert.Equal(t, "B", html)
	v, err = reg.Vocabulary("second", "first")
	require.NoError(t, err)
	html, _ = v.Substitute("->")
	assert.Equal(t, "A", html)
}

func TestMatchLongestPrefix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathed.vocab")
	defer teardown()
	//
	v, err := Builtin().Vocabulary()
	require.NoError(t, err)
	assert.Equal(t, 4, v.Match(Special, "sinh(x)"))
	assert.Equal(t, 3, v.Match(Special, "sin(x)"))
	assert.Equal(t, 5, v.Match(Special, "cosec"))
	assert.Equal(t, 2, v.Match(Direct, "pix"))
	assert.Equal(t, 0, v.Match(Direct, "p"))
	assert.Equal(t, 2, v.Match(Mapped, "<=3"))
	assert.Equal(t, 1, v.Match(Mapped, "<3"))
	assert.Equal(t, 5, v.Match(Mapped, "notin"))
	assert.Equal(t, 0, v.Match(Mapped, ""))
	// invalid UTF-8 ends a match without running past the input
	assert.Equal(t, 0, v.Match(Direct, "a\xff"))
	assert.Equal(t, 0, v.Match(Mapped, "\xe2\x82"))
	assert.Equal(t, 0, v.Match(Special, "x\xc3("))
	assert.Equal(t, 2, v.Match(Direct, "pi\xff"))
}

func TestConflicts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathed.vocab")
	defer teardown()
	//
	reg := NewRegistry()
	require.NoError(t, reg.Register("x", Plugin{Direct: []string{"pi"}, Special: []string{"pi", "sin"}}))
	require.NoError(t, reg.Register("y", Plugin{Map: map[string]string{"sin": "SIN"}}))
	v, err := reg.Vocabulary()
	require.NoError(t, err)
	c := v.Conflicts()
	require.Len(t, c, 2)
	assert.Equal(t, Conflict{Key: "pi", Kinds: []Kind{Direct, Special}}, c[0])
	assert.Equal(t, Conflict{Key: "sin", Kinds: []Kind{Mapped, Special}}, c[1])
}

func TestRegisterYAML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathed.vocab")
	defer teardown()
	//
	doc := `
zeta:
  map:
    "->": " &rarr; "
alpha:
  direct: [hearts, spades]
  special: [mol]
`
	reg := NewRegistry()
	require.NoError(t, reg.RegisterYAML(strings.NewReader(doc)))
	assert.Equal(t, []string{"zeta", "alpha"}, reg.Names())
	p, ok := reg.Lookup("alpha")
	require.True(t, ok)
	assert.Equal(t, []string{"hearts", "spades"}, p.Direct)
	assert.Equal(t, []string{"mol"}, p.Special)
	//
	assert.NoError(t, reg.RegisterYAML(strings.NewReader("")))
	err := reg.RegisterYAML(strings.NewReader("- a\n- b\n"))
	assert.Equal(t, core.EINVALID, core.Code(err))
	err = reg.RegisterYAML(strings.NewReader("p:\n  direct: {a: b}\n"))
	assert.Equal(t, core.EINVALID, core.Code(err))
}
