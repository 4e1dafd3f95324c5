/*
Package render translates math expression trees into HTML fragments.

Rendering is a bottom-up walk of the tree. Every call returns the HTML of a
sub-tree together with its delimiter size, i.e. the number of glyph rows an
enclosing bracket needs to visually span the sub-tree. Fractions and big
operators have size 1; every visible pair of delimiters adds one to the size
of its content. Delimiters of size 0 are plain ASCII characters; larger ones
are composed of stacked glyph pieces (⎛ ⎜ ⎝ and friends).

Sizes are never stored in the tree, so a Renderer and the trees it renders
may be shared between goroutines.

The resulting HTML references these CSS classes, which the host page has to
style:

	ou      container for stacked rows (fractions, big operators, delimiters)
	p       a single row of a stacked delimiter
	small   under- and over-terms of big operators
	m       the operator row of a big operator
	bigger  an enlarged operator glyph

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package render

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'mathed.render'.
func tracer() tracing.Trace {
	return tracing.Select("mathed.render")
}
