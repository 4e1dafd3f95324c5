/*
Command mathcli is an interactive shell for math markup.

Every line typed is converted to HTML and the result is printed. Invalid
input, which is the normal case while a formula is still being typed,
leaves the last valid rendering in place. Lines starting with a colon are
commands, see ':help'.

	mathcli -plugins greek,functions -page session.html
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/mathed/core"
	"github.com/npillmayer/mathed/input/html"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'mathed.cli'
func tracer() tracing.Trace {
	return tracing.Select("mathed.cli")
}

var traceKeys = []string{
	"mathed", "mathed.cli", "mathed.vocab", "mathed.lexer", "mathed.tree", "mathed.render",
	"mathed.html", "mathed.markdown",
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range traceKeys {
		conf["trace."+key] = "Error"
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	plugins := flag.String("plugins", "", "Comma-separated list of plugins to use (default: all)")
	exclude := flag.String("exclude", "", "Comma-separated list of plugins to exclude")
	confname := flag.String("config", "", "YAML configuration file")
	pagename := flag.String("page", "", "Write the session's formulas to this HTML file on exit")
	flag.Parse()
	setTraceLevel(*tlevel)
	pterm.Info.Println("Welcome to the math markup CLI") // colored welcome message
	//
	intp, err := newIntp(*confname, list(*plugins), list(*exclude))
	if err != nil {
		core.UserError(err)
		os.Exit(2)
	}
	//
	// set up REPL
	repl, err := readline.New("math > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp.repl = repl
	pterm.Info.Println("Quit with <ctrl>D or :quit") // inform user how to stop the CLI
	intp.REPL()                                        // go into interactive mode
	if *pagename != "" {
		if err := intp.writePage(*pagename); err != nil {
			core.UserError(err)
			os.Exit(4)
		}
		pterm.Info.Printfln("Session written to %s", *pagename)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func setTraceLevel(level string) {
	l := tracing.LevelError
	switch strings.ToLower(level) {
	case "debug":
		l = tracing.LevelDebug
	case "info":
		l = tracing.LevelInfo
	}
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(l)
	}
	tracer().Infof("Trace level is %s", level)
}

func list(flagvalue string) []string {
	var names []string
	for _, n := range strings.Split(flagvalue, ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}

func (intp *Intp) writePage(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return core.WrapError(err, core.EINVALID, "cannot create page %s", filename)
	}
	if err := html.WritePage(f, "Math session", intp.session); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
