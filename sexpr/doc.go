/*
Package sexpr provides s-expression values and a reader for them.

Argument specifications and clause patterns are written down as textual
s-expressions. The reader turns them into a small set of Go values:

    symbols        → sexpr.Symbol
    integers       → int
    floats         → float64
    strings        → string
    lists          → []any
    the empty list → nil

'x is read as the two-element list (quote x); the backquote shorthands
`x and ,x read as (backquote x) and (unquote x).
*/
package sexpr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'defun.sexpr'.
func tracer() tracing.Trace {
	return tracing.Select("defun.sexpr")
}
