/*
Package tree builds a tree structure from a sequence of math tokens.

Tree building happens in two steps. Parse groups tokens by delimiter scope,
using a stack of open groups. Every matched pair of delimiters becomes a
Group, and all other tokens become leaves. Parse checks that delimiters are
balanced, but is unaware of keywords.

Build then resolves keywords positionally into an expression tree:

	frac N D      → Fraction{N, D}
	sum U O       → OverUnder{"sum", U, O}      (likewise prod)
	_ X, ^ X      → Script{Sub|Sup, X}
	\{ … \}       → Delimited{Brace, …}
	( … ), [ … ]  → Delimited{Paren|Bracket, …}
	{ … }         → Seq{…}

An operand is the node following a keyword, itself resolved. Missing
operands are reported as core.ErrIncompleteConstruct.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'mathed.tree'.
func tracer() tracing.Trace {
	return tracing.Select("mathed.tree")
}
