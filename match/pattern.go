package match

import (
	"github.com/ahyatt/defun-pattern/sexpr"
)

// Pattern is one node of a compiled pattern tree. Patterns are built by
// Compile and consumed by Match and Select.
type Pattern interface {
	match(subject any, env Bindings, fns FuncMap) bool
}

// --- Pattern variants ------------------------------------------------------

// Literal matches a value structurally equal to Value.
type Literal struct {
	Value any
}

func (p Literal) match(subject any, env Bindings, fns FuncMap) bool {
	return sexpr.Equal(p.Value, subject)
}

// Wildcard matches anything and binds nothing.
type Wildcard struct{}

func (p Wildcard) match(subject any, env Bindings, fns FuncMap) bool {
	return true
}

// Variable matches anything and binds the subject to Name. A second
// occurrence of the same name matches only an equal value.
type Variable struct {
	Name sexpr.Symbol
}

func (p Variable) match(subject any, env Bindings, fns FuncMap) bool {
	return env.bind(p.Name, subject)
}

// Sequence matches a list of exactly len(Elems) elements, element-wise.
type Sequence struct {
	Elems []Pattern
}

func (p Sequence) match(subject any, env Bindings, fns FuncMap) bool {
	if !sexpr.IsList(subject) {
		return false
	}
	elems := sexpr.Elements(subject)
	if len(elems) != len(p.Elems) {
		return false
	}
	for i, sub := range p.Elems {
		if !sub.match(elems[i], env, fns) {
			return false
		}
	}
	return true
}

// Seq matches a list with at least len(Elems) elements; the prefix is
// matched element-wise and extra elements are ignored.
type Seq struct {
	Elems []Pattern
}

func (p Seq) match(subject any, env Bindings, fns FuncMap) bool {
	if !sexpr.IsList(subject) {
		return false
	}
	elems := sexpr.Elements(subject)
	if len(elems) < len(p.Elems) {
		return false
	}
	for i, sub := range p.Elems {
		if !sub.match(elems[i], env, fns) {
			return false
		}
	}
	return true
}

// Or matches if any alternative matches; alternatives are tried in order
// and bindings of failed alternatives are discarded.
type Or struct {
	Alts []Pattern
}

func (p Or) match(subject any, env Bindings, fns FuncMap) bool {
	for _, alt := range p.Alts {
		trial := env.clone()
		if alt.match(subject, trial, fns) {
			env.merge(trial)
			return true
		}
	}
	return false
}

// And matches if every conjunct matches the same subject, accumulating
// bindings left to right.
type And struct {
	Pats []Pattern
}

func (p And) match(subject any, env Bindings, fns FuncMap) bool {
	for _, sub := range p.Pats {
		if !sub.match(subject, env, fns) {
			return false
		}
	}
	return true
}

// Let matches Pat against the value of Expr, evaluated under the current
// bindings. The subject itself is not consulted.
type Let struct {
	Pat  Pattern
	Expr any
}

func (p Let) match(subject any, env Bindings, fns FuncMap) bool {
	v, err := eval(p.Expr, env, fns)
	if err != nil {
		tracer().Errorf("let expression failed: %v", err)
		return false
	}
	return p.Pat.match(v, env, fns)
}

// Guard matches iff Expr evaluates to a truthy value under the current
// bindings. The subject itself is not consulted.
type Guard struct {
	Expr any
}

func (p Guard) match(subject any, env Bindings, fns FuncMap) bool {
	v, err := eval(p.Expr, env, fns)
	if err != nil {
		tracer().Errorf("guard expression failed: %v", err)
		return false
	}
	return truthy(v)
}

// Pred matches iff applying Fn to the subject yields a truthy value.
type Pred struct {
	Fn any
}

func (p Pred) match(subject any, env Bindings, fns FuncMap) bool {
	v, err := apply(p.Fn, subject, env, fns)
	if err != nil {
		tracer().Errorf("predicate failed: %v", err)
		return false
	}
	return truthy(v)
}

// App applies Fn to the subject and matches Pat against the result.
type App struct {
	Fn  any
	Pat Pattern
}

func (p App) match(subject any, env Bindings, fns FuncMap) bool {
	v, err := apply(p.Fn, subject, env, fns)
	if err != nil {
		tracer().Errorf("app transform failed: %v", err)
		return false
	}
	return p.Pat.match(v, env, fns)
}

// Type matches by value kind. Known kinds: integer, float, number, string,
// symbol, list, bool.
type Type struct {
	Name sexpr.Symbol
}

func (p Type) match(subject any, env Bindings, fns FuncMap) bool {
	switch p.Name {
	case "integer":
		_, ok := subject.(int)
		return ok
	case "float":
		_, ok := subject.(float64)
		return ok
	case "number":
		switch subject.(type) {
		case int, float64:
			return true
		}
		return false
	case "string":
		_, ok := subject.(string)
		return ok
	case "symbol":
		_, ok := subject.(sexpr.Symbol)
		return ok
	case "list":
		return sexpr.IsList(subject)
	case "bool", "boolean":
		_, ok := subject.(bool)
		return ok
	}
	tracer().Errorf("unknown type name %q in type pattern", p.Name)
	return false
}

func truthy(v any) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}
