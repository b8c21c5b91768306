package defun

import (
	"github.com/ahyatt/defun-pattern/match"
	"github.com/ahyatt/defun-pattern/sexpr"
)

// Normalize rewrites a pattern from arglist style into the matcher's
// backquote notation. Bare symbols and lists headed by a matcher
// combinator are escaped with an unquote marker, explicit (quote …)
// regions are kept verbatim and left untouched inside, everything else
// stays literal structure. The whole result is wrapped in a backquote.
// The quote marker must survive normalization: the matcher strips it in
// pattern positions but relies on it to tell literal data from evaluated
// sub-forms in guard/let/pred/app expressions.
//
// Normalize is pure and deterministic: the same pattern tree always yields
// the same matcher form.
func Normalize(pattern any) any {
	return sexpr.List(sexpr.SymBackquote, walk(pattern))
}

// walk transforms depth-first, leaves before containers.
func walk(p any) any {
	if _, ok := sexpr.Tagged(p, sexpr.SymQuote); ok {
		// explicitly literal: no escaping inside the quoted region
		return p
	}
	if p == nil {
		return nil // empty list is structure, not a symbol
	}
	if l, ok := p.([]any); ok {
		rebuilt := make([]any, len(l))
		for i, e := range l {
			rebuilt[i] = walk(e)
		}
		if needsEscape(l) {
			return escape(rebuilt)
		}
		return rebuilt
	}
	if _, ok := p.(sexpr.Symbol); ok {
		// an unquoted bare name is always a capture variable or matcher
		// keyword, never a literal symbol
		return escape(p)
	}
	return p
}

// needsEscape decides whether a whole node must be handed to the matcher
// as matcher syntax. Lists qualify only when headed by a combinator from
// the allow-list; bare symbols always qualify.
func needsEscape(node any) bool {
	switch x := node.(type) {
	case sexpr.Symbol:
		return true
	case []any:
		if len(x) == 0 {
			return false
		}
		if head, ok := x[0].(sexpr.Symbol); ok {
			return match.IsConstruct(head)
		}
	}
	return false
}

func escape(v any) any {
	return sexpr.List(sexpr.SymUnquote, v)
}
