/*
Package html integrates math rendering into HTML host documents.

Hosts mark up formulas as elements, by default

	<span class="math">frac{a}{b}</span>

RenderMath replaces the content of these elements with the rendered HTML.
The source of a formula is kept in attribute data-src, so a document may be
rendered repeatedly. The rendered HTML references a couple of CSS classes,
which the host page has to style; DefaultStylesheet is a working default and
MissingClasses checks a host stylesheet for completeness.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package html

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'mathed.html'.
func tracer() tracing.Trace {
	return tracing.Select("mathed.html")
}
