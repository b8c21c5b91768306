package match

import (
	"errors"
	"fmt"

	"github.com/ahyatt/defun-pattern/sexpr"
)

// Func is a named helper function callable from guard, pred, app and let
// expressions.
type Func func(args ...any) (any, error)

// FuncMap maps function names to their implementations.
type FuncMap map[sexpr.Symbol]Func

// ErrUnboundVariable is returned when an expression references a variable
// with no binding.
var ErrUnboundVariable = errors.New("unbound variable in expression")

// ErrUnknownFunction is returned when an expression calls a name with no
// entry in the function table.
var ErrUnknownFunction = errors.New("unknown function in expression")

// Merged overlays extra on top of base without modifying either.
func Merged(base, extra FuncMap) FuncMap {
	m := make(FuncMap, len(base)+len(extra))
	for k, v := range base {
		m[k] = v
	}
	for k, v := range extra {
		m[k] = v
	}
	return m
}

// eval evaluates an expression under the current bindings. Symbols resolve
// to bindings, (quote x) to x, atoms to themselves, and a list (f a …)
// applies the named function f to the evaluated arguments.
func eval(expr any, env Bindings, fns FuncMap) (any, error) {
	switch x := expr.(type) {
	case nil:
		return nil, nil
	case sexpr.Symbol:
		if v, ok := env[x]; ok {
			return v, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrUnboundVariable, x)
	case []any:
		if inner, ok := sexpr.Tagged(x, sexpr.SymQuote); ok {
			return inner, nil
		}
		if len(x) == 0 {
			return nil, nil
		}
		name, ok := x[0].(sexpr.Symbol)
		if !ok {
			return nil, fmt.Errorf("cannot call non-symbol %s", sexpr.Print(x[0]))
		}
		fn, ok := fns[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownFunction, name)
		}
		args := make([]any, 0, len(x)-1)
		for _, a := range x[1:] {
			v, err := eval(a, env, fns)
			if err != nil {
				return nil, err
			}
			args = append(args, v)
		}
		return fn(args...)
	default:
		return expr, nil
	}
}

// apply evaluates a function-position expression with the subject appended
// as final argument: a symbol f becomes f(subject), a list (f a) becomes
// f(a, subject).
func apply(fnExpr, subject any, env Bindings, fns FuncMap) (any, error) {
	switch x := fnExpr.(type) {
	case sexpr.Symbol:
		fn, ok := fns[x]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownFunction, x)
		}
		return fn(subject)
	case []any:
		if len(x) == 0 {
			return nil, errors.New("empty function position")
		}
		name, ok := x[0].(sexpr.Symbol)
		if !ok {
			return nil, fmt.Errorf("cannot call non-symbol %s", sexpr.Print(x[0]))
		}
		fn, ok := fns[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownFunction, name)
		}
		args := make([]any, 0, len(x))
		for _, a := range x[1:] {
			v, err := eval(a, env, fns)
			if err != nil {
				return nil, err
			}
			args = append(args, v)
		}
		args = append(args, subject)
		return fn(args...)
	default:
		return nil, fmt.Errorf("cannot apply %s", sexpr.Print(fnExpr))
	}
}

// --- Builtins ----------------------------------------------------------------

// Builtins returns the default function table: list accessors, numeric
// comparison and arithmetic, and a handful of predicates.
func Builtins() FuncMap {
	return FuncMap{
		"car": unary(func(v any) (any, error) {
			elems := sexpr.Elements(v)
			if len(elems) == 0 {
				return nil, nil
			}
			return elems[0], nil
		}),
		"cdr": unary(func(v any) (any, error) {
			elems := sexpr.Elements(v)
			if len(elems) <= 1 {
				return nil, nil
			}
			return elems[1:], nil
		}),
		"length": unary(func(v any) (any, error) {
			if !sexpr.IsList(v) {
				return nil, fmt.Errorf("length of non-list %s", sexpr.Print(v))
			}
			return len(sexpr.Elements(v)), nil
		}),
		"list": func(args ...any) (any, error) {
			return args, nil
		},
		"null": unary(func(v any) (any, error) {
			return v == nil || (sexpr.IsList(v) && len(sexpr.Elements(v)) == 0), nil
		}),
		"not": unary(func(v any) (any, error) {
			return !truthy(v), nil
		}),
		"member": func(args ...any) (any, error) {
			if len(args) != 2 {
				return nil, errors.New("member wants 2 arguments")
			}
			for _, e := range sexpr.Elements(args[1]) {
				if sexpr.Equal(args[0], e) {
					return true, nil
				}
			}
			return nil, nil
		},
		"equal": func(args ...any) (any, error) {
			if len(args) != 2 {
				return nil, errors.New("equal wants 2 arguments")
			}
			return sexpr.Equal(args[0], args[1]), nil
		},
		"=":  comparison(func(a, b float64) bool { return a == b }),
		"/=": comparison(func(a, b float64) bool { return a != b }),
		"<":  comparison(func(a, b float64) bool { return a < b }),
		">":  comparison(func(a, b float64) bool { return a > b }),
		"<=": comparison(func(a, b float64) bool { return a <= b }),
		">=": comparison(func(a, b float64) bool { return a >= b }),
		"+":  arith(0, func(a, b int) int { return a + b }),
		"-":  arith(0, func(a, b int) int { return a - b }),
		"*":  arith(1, func(a, b int) int { return a * b }),
		"mod": func(args ...any) (any, error) {
			if len(args) != 2 {
				return nil, errors.New("mod wants 2 arguments")
			}
			a, aok := args[0].(int)
			b, bok := args[1].(int)
			if !aok || !bok || b == 0 {
				return nil, errors.New("mod wants two non-zero integers")
			}
			return a % b, nil
		},
		"1+": unary(func(v any) (any, error) {
			n, ok := v.(int)
			if !ok {
				return nil, fmt.Errorf("1+ of non-integer %s", sexpr.Print(v))
			}
			return n + 1, nil
		}),
		"1-": unary(func(v any) (any, error) {
			n, ok := v.(int)
			if !ok {
				return nil, fmt.Errorf("1- of non-integer %s", sexpr.Print(v))
			}
			return n - 1, nil
		}),
		"evenp": intPred(func(n int) bool { return n%2 == 0 }),
		"oddp":  intPred(func(n int) bool { return n%2 != 0 }),
		"zerop": intPred(func(n int) bool { return n == 0 }),
		"integerp": unary(func(v any) (any, error) {
			_, ok := v.(int)
			return ok, nil
		}),
		"numberp": unary(func(v any) (any, error) {
			switch v.(type) {
			case int, float64:
				return true, nil
			}
			return false, nil
		}),
		"stringp": unary(func(v any) (any, error) {
			_, ok := v.(string)
			return ok, nil
		}),
		"symbolp": unary(func(v any) (any, error) {
			_, ok := v.(sexpr.Symbol)
			return ok, nil
		}),
		"listp": unary(func(v any) (any, error) {
			return sexpr.IsList(v), nil
		}),
	}
}

func unary(f func(any) (any, error)) Func {
	return func(args ...any) (any, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("expected 1 argument, got %d", len(args))
		}
		return f(args[0])
	}
}

func intPred(f func(int) bool) Func {
	return unary(func(v any) (any, error) {
		n, ok := v.(int)
		if !ok {
			return nil, fmt.Errorf("expected integer, got %s", sexpr.Print(v))
		}
		return f(n), nil
	})
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func comparison(cmp func(a, b float64) bool) Func {
	return func(args ...any) (any, error) {
		if len(args) < 2 {
			return nil, errors.New("comparison wants at least 2 arguments")
		}
		prev, ok := asNumber(args[0])
		if !ok {
			return nil, fmt.Errorf("cannot compare non-number %s", sexpr.Print(args[0]))
		}
		for _, a := range args[1:] {
			n, ok := asNumber(a)
			if !ok {
				return nil, fmt.Errorf("cannot compare non-number %s", sexpr.Print(a))
			}
			if !cmp(prev, n) {
				return false, nil
			}
			prev = n
		}
		return true, nil
	}
}

func arith(identity int, op func(a, b int) int) Func {
	return func(args ...any) (any, error) {
		if len(args) == 0 {
			return identity, nil
		}
		acc, ok := args[0].(int)
		if !ok {
			return nil, fmt.Errorf("arithmetic on non-integer %s", sexpr.Print(args[0]))
		}
		if len(args) == 1 {
			return op(identity, acc), nil
		}
		for _, a := range args[1:] {
			n, ok := a.(int)
			if !ok {
				return nil, fmt.Errorf("arithmetic on non-integer %s", sexpr.Print(a))
			}
			acc = op(acc, n)
		}
		return acc, nil
	}
}
