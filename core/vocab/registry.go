package vocab

import (
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/mathed/core"
	"github.com/npillmayer/schuko/tracing"
)

// Plugin is a named bundle of vocabulary. All fields are optional.
type Plugin struct {
	Direct  []string          `yaml:"direct,omitempty"`  // names rendered as &name;
	Special []string          `yaml:"special,omitempty"` // names rendered as literal text
	Map     map[string]string `yaml:"map,omitempty"`     // literal key → HTML substitution
}

var bareIdentifier = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

// Validate checks that direct and special entries are bare identifiers and
// that map keys are non-empty.
func (p Plugin) Validate() error {
	for _, d := range p.Direct {
		if !bareIdentifier.MatchString(d) {
			return core.WrapError(core.ErrInvalid, core.EINVALID,
				"direct entry %q is not a bare identifier", d)
		}
	}
	for _, s := range p.Special {
		if !bareIdentifier.MatchString(s) {
			return core.WrapError(core.ErrInvalid, core.EINVALID,
				"special entry %q is not a bare identifier", s)
		}
	}
	for k := range p.Map {
		if k == "" {
			return core.WrapError(core.ErrInvalid, core.EINVALID, "map contains an empty key")
		}
	}
	return nil
}

// Registry is a type for holding plugins available to parsers.
// Plugins are kept in registration order.
//
// A Registry is safe for concurrent use. Nevertheless clients will usually
// populate a registry during initialization and only derive vocabularies
// from it thereafter.
type Registry struct {
	sync.RWMutex
	plugins *linkedhashmap.Map // name → Plugin
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		plugins: linkedhashmap.New(),
	}
}

// Register adds a plugin under a name. If the name is already taken, the
// plugin replaces the existing one but keeps its position in the
// registration order.
func (reg *Registry) Register(name string, p Plugin) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return core.WrapError(core.ErrInvalid, core.EINVALID, "plugin name must not be empty")
	}
	if err := p.Validate(); err != nil {
		tracer().Errorf("plugin %s rejected: %v", name, err)
		return err
	}
	reg.Lock()
	defer reg.Unlock()
	if _, found := reg.plugins.Get(name); found {
		tracer().Infof("registry replaces plugin %s", name)
	} else {
		tracer().Debugf("registry stores plugin %s", name)
	}
	reg.plugins.Put(name, p)
	return nil
}

// Lookup returns the plugin registered under name.
func (reg *Registry) Lookup(name string) (Plugin, bool) {
	reg.RLock()
	defer reg.RUnlock()
	p, found := reg.plugins.Get(name)
	if !found {
		return Plugin{}, false
	}
	return p.(Plugin), true
}

// Names returns the names of all registered plugins in registration order.
func (reg *Registry) Names() []string {
	reg.RLock()
	defer reg.RUnlock()
	return reg.names()
}

func (reg *Registry) names() []string {
	keys := reg.plugins.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.(string)
	}
	return names
}

// Vocabulary merges the named plugins, in the given order, into a vocabulary.
// If no names are given, all registered plugins are merged in registration
// order. A name not known to the registry results in an error wrapping
// core.ErrUnknownPlugin.
func (reg *Registry) Vocabulary(names ...string) (*Vocabulary, error) {
	reg.RLock()
	defer reg.RUnlock()
	if len(names) == 0 {
		names = reg.names()
	}
	return reg.merge(names)
}

// VocabularyExcluding merges all registered plugins except the named ones.
// Excluding a name which is not registered is not an error.
func (reg *Registry) VocabularyExcluding(names ...string) (*Vocabulary, error) {
	reg.RLock()
	defer reg.RUnlock()
	excluded := make(map[string]bool, len(names))
	for _, n := range names {
		excluded[n] = true
	}
	var selected []string
	for _, n := range reg.names() {
		if !excluded[n] {
			selected = append(selected, n)
		}
	}
	return reg.merge(selected)
}

func (reg *Registry) merge(names []string) (*Vocabulary, error) {
	v := newVocabulary()
	for _, name := range names {
		p, found := reg.plugins.Get(name)
		if !found {
			tracer().Errorf("registry does not contain plugin %s", name)
			return nil, core.WrapError(core.ErrUnknownPlugin, core.EUNKNOWNPLUGIN,
				"plugin %q is not registered", name)
		}
		v.load(name, p.(Plugin))
	}
	v.seal()
	if conflicts := v.Conflicts(); len(conflicts) > 0 {
		tracer().Infof("vocabulary has %d keys in more than one category", len(conflicts))
	}
	return v, nil
}

// LogPluginList is a helper function to dump the list of known plugins
// to the trace-file (log-level Info).
func (reg *Registry) LogPluginList() {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	defer tracer().SetTraceLevel(level)
	reg.RLock()
	defer reg.RUnlock()
	tracer().Infof("--- registered plugins ---")
	it := reg.plugins.Iterator()
	for it.Next() {
		p := it.Value().(Plugin)
		keys := make([]string, 0, len(p.Map))
		for k := range p.Map {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		tracer().Infof("plugin [%s] direct=%v special=%v map=%v", it.Key(), p.Direct, p.Special, keys)
	}
	tracer().Infof("--------------------------")
}
