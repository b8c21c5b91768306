package match

import (
	"fmt"

	"github.com/ahyatt/defun-pattern/sexpr"
)

// constructs is the allow-list of matcher combinator names. Any list whose
// head is one of these is matcher syntax; any other list is structure.
var constructs = map[sexpr.Symbol]bool{
	"or":    true,
	"and":   true,
	"let":   true,
	"guard": true,
	"pred":  true,
	"app":   true,
	"type":  true,
	"seq":   true,
}

// IsConstruct reports whether name is a matcher combinator.
func IsConstruct(name sexpr.Symbol) bool {
	return constructs[name]
}

// Compile turns a pattern in the matcher's notation into a Pattern tree.
// The entry context is code context: bare symbols are capture variables and
// a (backquote …) wrapper introduces a structural template.
func Compile(form any) (Pattern, error) {
	p, err := compileCode(form)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("compiled pattern %s", sexpr.Print(form))
	return p, nil
}

func compileCode(form any) (Pattern, error) {
	switch x := form.(type) {
	case nil:
		return Literal{Value: nil}, nil
	case sexpr.Symbol:
		if x == sexpr.SymWildcard {
			return Wildcard{}, nil
		}
		return Variable{Name: x}, nil
	case []any:
		if inner, ok := sexpr.Tagged(x, sexpr.SymUnquote); ok {
			return compileCode(inner)
		}
		if inner, ok := sexpr.Tagged(x, sexpr.SymBackquote); ok {
			return compileTemplate(inner)
		}
		if inner, ok := sexpr.Tagged(x, sexpr.SymQuote); ok {
			return Literal{Value: inner}, nil
		}
		if len(x) == 0 {
			return Literal{Value: nil}, nil
		}
		if head, ok := headSymbol(x[0]); ok && IsConstruct(head) {
			return compileConstruct(head, x[1:])
		}
		// a list headed by anything else is structure to match against
		return compileTemplate(x)
	default:
		return Literal{Value: x}, nil
	}
}

// compileTemplate compiles the inside of a backquote: lists are fixed-arity
// sequences, atoms and symbols are literals, and an unquote marker escapes
// back into code context.
func compileTemplate(form any) (Pattern, error) {
	switch x := form.(type) {
	case nil:
		return Literal{Value: nil}, nil
	case []any:
		if inner, ok := sexpr.Tagged(x, sexpr.SymUnquote); ok {
			return compileCode(inner)
		}
		if inner, ok := sexpr.Tagged(x, sexpr.SymQuote); ok {
			// explicit literal region: match the inner value verbatim
			return Literal{Value: inner}, nil
		}
		elems := make([]Pattern, len(x))
		for i, e := range x {
			sub, err := compileTemplate(e)
			if err != nil {
				return nil, err
			}
			elems[i] = sub
		}
		return Sequence{Elems: elems}, nil
	default:
		return Literal{Value: x}, nil
	}
}

func compileConstruct(head sexpr.Symbol, args []any) (Pattern, error) {
	switch head {
	case "or":
		alts, err := compileAll(args)
		if err != nil {
			return nil, err
		}
		return Or{Alts: alts}, nil
	case "and":
		pats, err := compileAll(args)
		if err != nil {
			return nil, err
		}
		return And{Pats: pats}, nil
	case "let":
		if len(args) != 2 {
			return nil, fmt.Errorf("let pattern wants 2 arguments, got %d", len(args))
		}
		pat, err := compileCode(args[0])
		if err != nil {
			return nil, err
		}
		return Let{Pat: pat, Expr: exprOf(args[1])}, nil
	case "guard":
		if len(args) != 1 {
			return nil, fmt.Errorf("guard pattern wants 1 argument, got %d", len(args))
		}
		return Guard{Expr: exprOf(args[0])}, nil
	case "pred":
		if len(args) != 1 {
			return nil, fmt.Errorf("pred pattern wants 1 argument, got %d", len(args))
		}
		return Pred{Fn: fnExprOf(args[0])}, nil
	case "app":
		if len(args) != 2 {
			return nil, fmt.Errorf("app pattern wants 2 arguments, got %d", len(args))
		}
		pat, err := compileCode(args[1])
		if err != nil {
			return nil, err
		}
		return App{Fn: fnExprOf(args[0]), Pat: pat}, nil
	case "type":
		if len(args) != 1 {
			return nil, fmt.Errorf("type pattern wants 1 argument, got %d", len(args))
		}
		name, ok := headSymbol(args[0])
		if !ok {
			return nil, fmt.Errorf("type pattern wants a type name, got %s", sexpr.Print(args[0]))
		}
		return Type{Name: name}, nil
	case "seq":
		elems, err := compileAll(args)
		if err != nil {
			return nil, err
		}
		return Seq{Elems: elems}, nil
	}
	return nil, fmt.Errorf("unknown matcher construct %s", head)
}

func compileAll(args []any) ([]Pattern, error) {
	pats := make([]Pattern, len(args))
	for i, a := range args {
		p, err := compileCode(a)
		if err != nil {
			return nil, err
		}
		pats[i] = p
	}
	return pats, nil
}

// fnExprOf prepares a function-position argument of pred/app. A plain
// symbol, escaped or not, names a function; anything else is an expression
// to which the subject is appended as final argument.
func fnExprOf(v any) any {
	if s, ok := v.(sexpr.Symbol); ok {
		return s
	}
	if inner, ok := sexpr.Tagged(v, sexpr.SymUnquote); ok {
		return fnExprOf(inner)
	}
	return exprOf(v)
}

// headSymbol returns the symbol in a list-head position, looking through an
// unquote marker if the normalizer put one there.
func headSymbol(v any) (sexpr.Symbol, bool) {
	if s, ok := v.(sexpr.Symbol); ok {
		return s, true
	}
	if inner, ok := sexpr.Tagged(v, sexpr.SymUnquote); ok {
		return headSymbol(inner)
	}
	return "", false
}

// exprOf prepares a guard/let/pred/app argument for the evaluator. The
// unquote markers placed by the normalizer mark sub-forms to be evaluated;
// everything unmarked is literal data. The markers are folded away: an
// escaped symbol stays a bare symbol (variable or function reference), an
// unescaped symbol becomes (quote sym), lists are call forms whose head is
// the function name and whose arguments are prepared recursively.
func exprOf(v any) any {
	if inner, ok := sexpr.Tagged(v, sexpr.SymUnquote); ok {
		if s, ok := inner.(sexpr.Symbol); ok {
			return s // escaped symbol: evaluate as variable/function reference
		}
		return exprOf(inner)
	}
	if _, ok := sexpr.Tagged(v, sexpr.SymQuote); ok {
		return v
	}
	switch x := v.(type) {
	case sexpr.Symbol:
		return sexpr.List(sexpr.SymQuote, x)
	case []any:
		if len(x) == 0 {
			return nil
		}
		out := make([]any, len(x))
		if head, ok := headSymbol(x[0]); ok {
			out[0] = head
		} else {
			out[0] = exprOf(x[0])
		}
		for i, e := range x[1:] {
			out[i+1] = exprOf(e)
		}
		return out
	default:
		return v
	}
}
