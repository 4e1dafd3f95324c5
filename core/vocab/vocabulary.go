package vocab

import (
	"sort"
	"unicode/utf8"

	"github.com/derekparker/trie"
)

// Kind is the kind of a vocabulary entry.
type Kind int8

// Kinds of vocabulary, in order of lexical precedence.
const (
	Mapped  Kind = iota // literal key with HTML substitution
	Direct              // bare name rendered as an entity
	Special             // bare name rendered as text
)

func (k Kind) String() string {
	switch k {
	case Mapped:
		return "map"
	case Direct:
		return "direct"
	case Special:
		return "special"
	}
	return "?"
}

// Vocabulary is the merge of a selection of plugins. It is immutable once
// built by a Registry and therefore safe for concurrent use.
type Vocabulary struct {
	plugins []string
	keys    [3]map[string]bool
	tries   [3]*trie.Trie
	mapping map[string]string
	sealed  bool
}

func newVocabulary() *Vocabulary {
	v := &Vocabulary{mapping: make(map[string]string)}
	for k := range v.keys {
		v.keys[k] = make(map[string]bool)
	}
	return v
}

func (v *Vocabulary) load(name string, p Plugin) {
	tracer().Debugf("vocabulary loads plugin %s", name)
	v.plugins = append(v.plugins, name)
	for _, d := range p.Direct {
		v.keys[Direct][d] = true
	}
	for _, s := range p.Special {
		v.keys[Special][s] = true
	}
	for key, html := range p.Map {
		if old, ok := v.mapping[key]; ok && old != html {
			tracer().Debugf("plugin %s overrides mapping for %q", name, key)
		}
		v.keys[Mapped][key] = true
		v.mapping[key] = html
	}
}

func (v *Vocabulary) seal() {
	for k, keys := range v.keys {
		t := trie.New()
		for key := range keys {
			t.Add(key, nil)
		}
		v.tries[k] = t
	}
	v.sealed = true
}

// Plugins returns the names of the plugins merged into v, in merge order.
func (v *Vocabulary) Plugins() []string {
	return append([]string(nil), v.plugins...)
}

// Has returns true if key is an entry of kind k.
func (v *Vocabulary) Has(k Kind, key string) bool {
	if k < Mapped || k > Special {
		return false
	}
	return v.keys[k][key]
}

// Len returns the number of entries of kind k.
func (v *Vocabulary) Len(k Kind) int {
	if k < Mapped || k > Special {
		return 0
	}
	return len(v.keys[k])
}

// Match returns the length in bytes of the longest entry of kind k which is
// a prefix of s, or 0 if there is none.
func (v *Vocabulary) Match(k Kind, s string) int {
	if k < Mapped || k > Special || !v.sealed || len(v.keys[k]) == 0 {
		return 0
	}
	t := v.tries[k]
	longest := 0
	for i := 0; i < len(s); {
		_, width := utf8.DecodeRuneInString(s[i:])
		end := i + width
		prefix := s[:end]
		if _, found := t.Find(prefix); found {
			longest = end
		}
		if !t.HasKeysWithPrefix(prefix) {
			break
		}
		i = end
	}
	return longest
}

// Substitute returns the HTML substitution for a mapped key.
func (v *Vocabulary) Substitute(key string) (string, bool) {
	if v == nil {
		return "", false
	}
	html, ok := v.mapping[key]
	return html, ok
}

// Conflict describes a key present in more than one kind of vocabulary.
// Lexical precedence decides which kind wins.
type Conflict struct {
	Key   string
	Kinds []Kind
}

// Conflicts returns all keys which are entries of more than one kind,
// sorted by key.
func (v *Vocabulary) Conflicts() []Conflict {
	var conflicts []Conflict
	seen := make(map[string]bool)
	for k := Mapped; k <= Special; k++ {
		for key := range v.keys[k] {
			if seen[key] {
				continue
			}
			seen[key] = true
			var kinds []Kind
			for j := Mapped; j <= Special; j++ {
				if v.keys[j][key] {
					kinds = append(kinds, j)
				}
			}
			if len(kinds) > 1 {
				conflicts = append(conflicts, Conflict{Key: key, Kinds: kinds})
			}
		}
	}
	sort.Slice(conflicts, func(i, j int) bool {
		return conflicts[i].Key < conflicts[j].Key
	})
	return conflicts
}
