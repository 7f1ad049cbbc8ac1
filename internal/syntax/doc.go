/*
Package syntax implements lexical and syntactic analysis for GCSS, a
constraint-based, CSS-like styling language.

The Scanner turns a source buffer into tokens. Whitespace is kept as a token
of its own, because the grammar uses it: "div p" is a descendant selector
and "a :hover" starts a new compound selector, while "a:hover" attaches the
pseudo-class to a. A Stream wraps the Scanner with one token of lookahead,
and the Parser builds a tree of rulesets, selectors and declarations from it:

	sheet, err := syntax.Parse("theme.gcss", src)
	if err != nil {
		var serr *syntax.Error
		if errors.As(err, &serr) { ... serr.Kind, serr.Offset() ... }
	}
	syntax.Fprint(os.Stdout, sheet)

Parsing stops at the first error; there is no recovery and no partial tree.

# Tracing

Productions are traced with key 'gcss.syntax' at debug level.
*/
package syntax

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gcss.syntax'.
func tracer() tracing.Trace {
	return tracing.Select("gcss.syntax")
}
