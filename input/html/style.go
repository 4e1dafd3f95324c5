package html

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/mathed/core"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Classes are the CSS classes referenced by rendered math.
var Classes = []string{"ou", "p", "small", "bigger", "m"}

// DefaultStylesheet styles all of Classes.
const DefaultStylesheet = `span.math { white-space: nowrap; }
.ou { display: inline-block; vertical-align: middle; text-align: center; }
.ou hr { margin: 1px 0; border: 0; border-top: 1px solid currentColor; }
.p { line-height: 1em; height: 1em; overflow: visible; }
.small { font-size: 70%; line-height: 1em; }
.bigger { font-size: 150%; line-height: 1em; }
.m { font-family: serif; }
`

// MissingClasses returns the classes of Classes which are not used in any
// selector of stylesheet.
func MissingClasses(stylesheet string) ([]string, error) {
	sheet, err := parser.Parse(stylesheet)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse stylesheet: %v", err)
	}
	styled := make(map[string]bool)
	collectClasses(sheet.Rules, styled)
	var missing []string
	for _, c := range Classes {
		if !styled[c] {
			missing = append(missing, c)
		}
	}
	return missing, nil
}

func collectClasses(rules []*css.Rule, styled map[string]bool) {
	for _, rule := range rules {
		if rule.Kind == css.QualifiedRule {
			for _, sel := range rule.Selectors {
				for _, c := range selectorClasses(sel) {
					styled[c] = true
				}
			}
		}
		collectClasses(rule.Rules, styled) // @media and the like
	}
}

// selectorClasses extracts the class names of a selector.
func selectorClasses(selector string) []string {
	var classes []string
	for i := 0; i < len(selector); i++ {
		if selector[i] != '.' {
			continue
		}
		j := i + 1
		for j < len(selector) && isClassChar(selector[j]) {
			j++
		}
		if j > i+1 {
			classes = append(classes, selector[i+1:j])
		}
		i = j - 1
	}
	return classes
}

func isClassChar(c byte) bool {
	return c == '-' || c == '_' || c >= 0x80 ||
		('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

var (
	headSelector  = cascadia.MustCompile("head")
	styleSelector = cascadia.MustCompile("style")
)

// InjectStylesheet adds DefaultStylesheet to the head of doc, unless the
// styles of doc already cover class "ou". It returns true if the
// stylesheet has been added.
func InjectStylesheet(doc *html.Node) (bool, error) {
	head := headSelector.MatchFirst(doc)
	if head == nil {
		return false, core.WrapError(core.ErrInvalid, core.EINVALID, "document has no head")
	}
	var styles strings.Builder
	for _, st := range styleSelector.MatchAll(doc) {
		styles.WriteString(textContent(st))
		styles.WriteByte('\n')
	}
	if styles.Len() > 0 {
		missing, err := MissingClasses(styles.String())
		if err != nil {
			return false, err
		}
		if !contains(missing, "ou") {
			tracer().Debugf("document styles math classes itself, missing %v", missing)
			return false, nil
		}
	}
	style := &html.Node{Type: html.ElementNode, DataAtom: atom.Style, Data: "style"}
	style.AppendChild(&html.Node{Type: html.TextNode, Data: DefaultStylesheet})
	head.AppendChild(style)
	return true, nil
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
