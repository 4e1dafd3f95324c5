package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/mathed"
	"github.com/npillmayer/mathed/core"
	"github.com/npillmayer/mathed/core/vocab"
	"github.com/npillmayer/mathed/engine/lexer"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object
type Intp struct {
	reg     *vocab.Registry
	parser  *mathed.Parser
	preview *mathed.Preview
	repl    *readline.Instance
	session []string // rendered formulas
}

func newIntp(confname string, plugins, exclude []string) (*Intp, error) {
	conf := &mathed.Config{}
	if confname != "" {
		f, err := os.Open(confname)
		if err != nil {
			return nil, core.ErrorWithCode(err, core.EMISSING)
		}
		defer f.Close()
		if conf, err = mathed.LoadConfig(f); err != nil {
			return nil, err
		}
	}
	// plugins are either selected or excluded, by flags and configuration alike
	if (len(plugins) > 0 || len(conf.Plugins) > 0) && (len(exclude) > 0 || len(conf.Exclude) > 0) {
		return nil, core.WrapError(core.ErrInvalid, core.EINVALID,
			"plugins may either be selected or excluded, not both")
	}
	reg, err := conf.Registry()
	if err != nil {
		return nil, err
	}
	opts := conf.Options()
	if len(plugins) > 0 {
		opts = append(opts, mathed.Use(plugins...))
	}
	if len(exclude) > 0 {
		opts = append(opts, mathed.Exclude(exclude...))
	}
	p, err := mathed.New(reg, opts...)
	if err != nil {
		return nil, err
	}
	tracer().Infof("using plugins %v", p.Vocabulary().Plugins())
	return &Intp{reg: reg, parser: p, preview: p.NewPreview()}, nil
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.execute(parseCommand(line))
		if err != nil {
			pterm.Error.Println(core.UserMessage(err))
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Op codes
const (
	CONVERT int = iota
	QUIT
	HELP
	TOKENS
	TREE
	PLUGINS
)

// Command is a parsed input line.
type Command struct {
	code int
	arg  string
}

func parseCommand(line string) Command {
	if !strings.HasPrefix(line, ":") {
		return Command{code: CONVERT, arg: line}
	}
	word, arg, _ := strings.Cut(line[1:], " ")
	arg = strings.TrimSpace(arg)
	tracer().Debugf("command %q, argument %q", word, arg)
	switch strings.ToLower(word) {
	case "q", "quit":
		return Command{code: QUIT}
	case "tokens", "tok":
		return Command{code: TOKENS, arg: arg}
	case "tree":
		return Command{code: TREE, arg: arg}
	case "plugins":
		return Command{code: PLUGINS}
	}
	return Command{code: HELP, arg: word}
}

func (intp *Intp) execute(cmd Command) (bool, error) {
	switch cmd.code {
	case QUIT:
		return true, nil
	case HELP:
		help(cmd.arg)
	case CONVERT:
		if err := intp.convert(cmd.arg); err != nil {
			if last := intp.preview.Source(); last != "" {
				pterm.Info.Printfln("keeping rendering of %q", last)
			}
			return false, err
		}
		pterm.Println(intp.preview.HTML())
	case TOKENS:
		tokens := intp.parser.Lex(cmd.arg)
		data := pterm.TableData{{"#", "Category", "Value"}}
		for i, tok := range tokens {
			data = append(data, []string{fmt.Sprint(i), tok.Category.String(), tok.Value})
		}
		return false, pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	case TREE:
		root, err := intp.parser.Parse(intp.parser.Lex(cmd.arg))
		if err != nil {
			return false, err
		}
		pterm.Printfln("groups: %s", root)
		expr, err := intp.parser.Build(root)
		if err != nil {
			return false, err
		}
		res, err := intp.parser.Render(expr)
		if err != nil {
			return false, err
		}
		pterm.Printfln("expression: %s", expr)
		pterm.Printfln("delimiter size: %d", res.Size)
	case PLUGINS:
		return false, intp.listPlugins()
	}
	return false, nil
}

// convert updates the preview and remembers successful renderings for the
// session page.
func (intp *Intp) convert(text string) error {
	if err := intp.preview.Update(text); err != nil {
		return err
	}
	intp.session = append(intp.session, intp.preview.HTML())
	return nil
}

func (intp *Intp) listPlugins() error {
	active := make(map[string]bool)
	for _, name := range intp.parser.Vocabulary().Plugins() {
		active[name] = true
	}
	data := pterm.TableData{{"Plugin", "Active", "Direct", "Special", "Map"}}
	for _, name := range intp.reg.Names() {
		p, _ := intp.reg.Lookup(name)
		data = append(data, []string{name, fmt.Sprint(active[name]),
			fmt.Sprint(len(p.Direct)), fmt.Sprint(len(p.Special)), fmt.Sprint(len(p.Map))})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}
	for _, c := range intp.parser.Vocabulary().Conflicts() {
		pterm.Println(conflictNote(c, intp.parser.Precedence()))
	}
	intp.reg.LogPluginList()
	return nil
}

// conflictNote describes which kind of vocabulary takes a conflicting key.
func conflictNote(c vocab.Conflict, p lexer.Precedence) string {
	if p == lexer.LongestVocabulary {
		return fmt.Sprintf("%q is in %v, the longest match decides", c.Key, c.Kinds)
	}
	return fmt.Sprintf("%q is in %v, %s wins", c.Key, c.Kinds, c.Kinds[0])
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	if topic != "" && topic != "help" {
		pterm.Error.Printfln("unknown command :%s", topic)
	}
	pterm.Info.Println("Commands")
	pterm.Println(`
	<formula>        convert a formula, e.g. frac{a+b}{2}
	:tokens <text>   show the tokens of a formula
	:tree <text>     show the group tree and the expression of a formula
	:plugins         list registered plugins
	:quit            leave (or <ctrl>D)
	`)
}
