/*
Package lexer splits math input into tokens.

Tokens are recognized by a table of matchers, each tagged with a priority.
At every input position the matchers are consulted in priority order and the
first one to match wins:

	map > direct > special > number > frac/sum/prod/set keywords >
	name > operator > sub/sup > delimiters

The first three categories are vocabulary categories, provided by plugins
(see package vocab). Because they take precedence over single-letter names,
"pi" becomes one direct token instead of two names. Within a vocabulary
category the longest entry wins. Option WithPrecedence selects an alternative
strategy, where the longest match across all vocabulary categories wins.

The lexer never fails. Input matching no category, e.g. white space or a
half-typed construct, is dropped silently. This keeps rendering well defined
while a user is still typing.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexer

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'mathed.lexer'.
func tracer() tracing.Trace {
	return tracing.Select("mathed.lexer")
}
