/*
Package vocab manages plugins, i.e. named bundles of vocabulary for math input.

A plugin contributes up to three kinds of vocabulary:

	direct:  bare names rendered as HTML entities, e.g. "alpha" → &alpha;
	special: names rendered as plain text, usually function names like "sin"
	map:     literal keys with an explicit HTML substitution, e.g. "<=" → " &le; "

Plugins are kept in a Registry, owned by the application. A Registry merges
a selection of its plugins into an immutable Vocabulary, which is what a
lexer and a renderer work with. Merging happens in selection order; if two
plugins map the same key, the plugin merged later wins.

	reg := vocab.Builtin()
	v, err := reg.Vocabulary("greek", "functions")

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package vocab

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'mathed.vocab'
func tracer() tracing.Trace {
	return tracing.Select("mathed.vocab")
}
