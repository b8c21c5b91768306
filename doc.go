/*
Package defun defines callables whose behavior is selected by structurally
matching the call-time arguments against a list of patterns.

A definition names its argument slots the way a function argument list
would, and then lists clauses of (pattern, body) pairs. Patterns are
written in arglist style: bare names capture, quoted atoms and plain
structure match literally, and lists headed by a matcher combinator
(or, and, let, guard, pred, app, type, seq) are matcher syntax.
Clauses are tried top to bottom; the first pattern to match wins and its
body runs with the captured bindings. A call no clause matches yields
Nothing, which is a normal outcome, not an error.

	fib, _ := defun.New("fib", "(n)",
		defun.Case("(0)", defun.Value(0)),
		defun.Case("(1)", defun.Value(1)),
		defun.Case("(n)", func(env match.Bindings) any {
			n := env.Int("n")
			a, _ := fib.Call(n - 1).Unwrap()
			b, _ := fib.Call(n - 2).Unwrap()
			return a.(int) + b.(int)
		}),
	)
	fib.Call(8) // Just(21)

Argument packaging: with the sole slot '&rest _' clause patterns match the
raw call-time argument sequence; any other argument list bundles the normal
arguments plus the rest tail (as one nested list) into one sequence, and
every clause pattern must be shaped to match that bundle. An argument list
declaring no slots at all is rejected when the definition is built.
*/
package defun

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'defun'.
func tracer() tracing.Trace {
	return tracing.Select("defun")
}
