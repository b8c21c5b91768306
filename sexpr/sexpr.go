package sexpr

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Symbol is an interned-by-value Lisp symbol. Two symbols are the same
// symbol iff their names are equal.
type Symbol string

// Well-known symbols of the pattern notation.
const (
	SymQuote     Symbol = "quote"
	SymBackquote Symbol = "backquote"
	SymUnquote   Symbol = "unquote"
	SymWildcard  Symbol = "_"
	SymRest      Symbol = "&rest"
)

// List builds a list value from its elements.
func List(elems ...any) []any {
	return elems
}

// IsList reports whether v is a (possibly empty) list. nil counts as the
// empty list.
func IsList(v any) bool {
	if v == nil {
		return true
	}
	_, ok := v.([]any)
	return ok
}

// Elements returns the elements of a list value, with nil standing for the
// empty list.
func Elements(v any) []any {
	if v == nil {
		return nil
	}
	if l, ok := v.([]any); ok {
		return l
	}
	return nil
}

// Tagged reports whether v is a two-element list whose head is the symbol
// tag, and returns the second element if so. This is the shape of (quote x)
// and (unquote x) wrappers.
func Tagged(v any, tag Symbol) (any, bool) {
	l, ok := v.([]any)
	if !ok || len(l) != 2 {
		return nil, false
	}
	if s, ok := l[0].(Symbol); ok && s == tag {
		return l[1], true
	}
	return nil, false
}

// Equal is structural equality over s-expression values. nil and the empty
// list are the same value.
func Equal(a, b any) bool {
	if IsList(a) && IsList(b) {
		ea, eb := Elements(a), Elements(b)
		if len(ea) != len(eb) {
			return false
		}
		for i := range ea {
			if !Equal(ea[i], eb[i]) {
				return false
			}
		}
		return true
	}
	switch x := a.(type) {
	case Symbol, string, int, float64, bool:
		return x == b
	}
	return reflect.DeepEqual(a, b)
}

// Print renders v in canonical textual form, suitable for re-reading.
func Print(v any) string {
	var sb strings.Builder
	printTo(&sb, v)
	return sb.String()
}

func printTo(sb *strings.Builder, v any) {
	switch x := v.(type) {
	case nil:
		sb.WriteString("nil")
	case Symbol:
		sb.WriteString(string(x))
	case string:
		sb.WriteString(strconv.Quote(x))
	case int:
		sb.WriteString(strconv.Itoa(x))
	case float64:
		sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	case bool:
		// false prints as nil, the Lisp convention for falsity. This is a
		// one-way rendering: Read("nil") yields nil, not false, and Equal
		// keeps false and nil distinct.
		if x {
			sb.WriteString("t")
		} else {
			sb.WriteString("nil")
		}
	case []any:
		if inner, ok := Tagged(x, SymQuote); ok {
			sb.WriteByte('\'')
			printTo(sb, inner)
			return
		}
		if inner, ok := Tagged(x, SymBackquote); ok {
			sb.WriteByte('`')
			printTo(sb, inner)
			return
		}
		if inner, ok := Tagged(x, SymUnquote); ok {
			sb.WriteByte(',')
			printTo(sb, inner)
			return
		}
		sb.WriteByte('(')
		for i, e := range x {
			if i > 0 {
				sb.WriteByte(' ')
			}
			printTo(sb, e)
		}
		sb.WriteByte(')')
	default:
		fmt.Fprintf(sb, "%v", x)
	}
}
