package mathed

import (
	"errors"
	"io"
	"strings"

	"github.com/npillmayer/mathed/core"
	"github.com/npillmayer/mathed/core/vocab"
	"github.com/npillmayer/mathed/engine/lexer"
	"gopkg.in/yaml.v3"
)

// Config is a parser configuration, usually read from a YAML file:
//
//	plugins: [greek, functions, chemistry]
//	precedence: longest
//	maxdepth: 32
//	vocabulary:
//	  chemistry:
//	    special: [mol]
//	    map:
//	      "->": " &rarr; "
//
// Plugins defined in section 'vocabulary' are registered on top of the
// builtin plugins.
type Config struct {
	Plugins    []string  `yaml:"plugins"`
	Exclude    []string  `yaml:"exclude"`
	Precedence string    `yaml:"precedence"`
	MaxDepth   int       `yaml:"maxdepth"`
	Vocabulary yaml.Node `yaml:"vocabulary"`
}

// LoadConfig reads a configuration. An empty input results in the default
// configuration.
func LoadConfig(r io.Reader) (*Config, error) {
	conf := &Config{}
	if err := yaml.NewDecoder(r).Decode(conf); err != nil && !errors.Is(err, io.EOF) {
		return nil, core.WrapError(err, core.EINVALID, "cannot read configuration: %v", err)
	}
	if _, err := conf.precedence(); err != nil {
		return nil, err
	}
	if conf.MaxDepth < 0 {
		return nil, core.WrapError(core.ErrInvalid, core.EINVALID,
			"maxdepth must not be negative, is %d", conf.MaxDepth)
	}
	if len(conf.Plugins) > 0 && len(conf.Exclude) > 0 {
		return nil, core.WrapError(core.ErrInvalid, core.EINVALID,
			"configuration may either select or exclude plugins, not both")
	}
	return conf, nil
}

func (conf *Config) precedence() (lexer.Precedence, error) {
	switch strings.ToLower(conf.Precedence) {
	case "", "category":
		return lexer.CategoryOrder, nil
	case "longest":
		return lexer.LongestVocabulary, nil
	}
	return lexer.CategoryOrder, core.WrapError(core.ErrInvalid, core.EINVALID,
		"unknown precedence %q, expected 'category' or 'longest'", conf.Precedence)
}

// Registry returns a registry with the builtin plugins plus the plugins
// defined in the configuration.
func (conf *Config) Registry() (*vocab.Registry, error) {
	reg := vocab.Builtin()
	if err := reg.RegisterNode(&conf.Vocabulary); err != nil {
		return nil, err
	}
	return reg, nil
}

// Options translates the configuration into parser options.
func (conf *Config) Options() []Option {
	var opts []Option
	if len(conf.Exclude) > 0 {
		opts = append(opts, Exclude(conf.Exclude...))
	} else if len(conf.Plugins) > 0 {
		opts = append(opts, Use(conf.Plugins...))
	}
	if p, err := conf.precedence(); err == nil {
		opts = append(opts, WithPrecedence(p))
	}
	if conf.MaxDepth > 0 {
		opts = append(opts, WithMaxDepth(conf.MaxDepth))
	}
	return opts
}

// NewFromConfig creates a parser from a configuration.
func NewFromConfig(conf *Config) (*Parser, error) {
	reg, err := conf.Registry()
	if err != nil {
		return nil, err
	}
	return New(reg, conf.Options()...)
}
