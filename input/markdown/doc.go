/*
Package markdown is a goldmark extension for inline math.

Text enclosed in dollar signs, on a single line, is math markup:

	Euler's identity $e^(i pi) + 1 = 0$ is famous.

It is rendered as an element of type span.math, ready for styling by the
host page (see package input/html). Math which fails to convert is shown
as code of class "math-error".

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markdown

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'mathed.markdown'.
func tracer() tracing.Trace {
	return tracing.Select("mathed.markdown")
}
