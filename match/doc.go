/*
Package match implements a structural pattern-matching engine over
s-expression values.

Patterns are compiled from the backquote notation into a tree of pattern
nodes, and then matched against subject values. Matching binds bare symbols
to the sub-values they line up with; a symbol occurring more than once in a
pattern must line up with equal values each time. Clause selection is
ordered: the first pattern to match wins.

The notation, in code context (the matcher's native entry context):

    _                    matches anything, binds nothing
    sym                  matches anything, binds sym
    atom                 matches an equal atom
    (backquote tpl)      structural template; inside tpl, lists are matched
                         element-wise with fixed arity and (unquote p)
                         switches back to code context
    (or p …)             first alternative that matches
    (and p …)            all must match the same subject
    (let p expr)         match p against the value of expr
    (guard expr)         match iff expr is truthy under current bindings
    (pred f)             match iff f(subject) is truthy
    (app f p)            match p against f(subject)
    (type name)          match by value kind (integer, float, number,
                         string, symbol, list, bool)
    (seq p …)            list prefix match, extra elements allowed

Expressions in guard/let/pred/app position are evaluated against the current
bindings with a table of named functions (see Builtins).
*/
package match

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'defun.match'.
func tracer() tracing.Trace {
	return tracing.Select("defun.match")
}
