/*
Package mathed converts typed-as-you-go math markup into HTML fragments.

Input is a compact notation, meant to be typed directly by a user:

	frac{a+b}{2}        fraction
	sum{i=0}{n} i^2     sum (likewise prod) with under- and over-term
	x_1, e^(i pi)       subscript, superscript
	\{ a, b \}          set braces
	alpha, sin, <=, in  vocabulary contributed by plugins

Conversion is a pipeline of lexer, tree builder and renderer
(see packages engine/lexer, engine/tree and engine/render). The vocabulary
is assembled from plugins held in a registry (package core/vocab):

	reg := vocab.Builtin()
	p, err := mathed.Build(reg, "greek", "functions")
	html, err := p.Convert("sin(frac{pi}{2}) = 1")

The HTML produced has no document wrapper and no styling; it references a
couple of CSS classes which the host page has to define (see package
input/html for a default stylesheet).

A Parser is safe for concurrent use. Conversion errors are meant to be
treated as "input not yet valid": an editor keeps displaying the last
successful rendering until the input is complete again. Type Preview
implements this behaviour.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package mathed

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'mathed'.
func tracer() tracing.Trace {
	return tracing.Select("mathed")
}
