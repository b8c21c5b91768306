package match

import (
	"github.com/ahyatt/defun-pattern/sexpr"
)

// Bindings maps capture variables to the sub-values they matched.
type Bindings map[sexpr.Symbol]any

// Lookup returns the value bound to name, if any.
func (b Bindings) Lookup(name string) (any, bool) {
	v, ok := b[sexpr.Symbol(name)]
	return v, ok
}

// Get returns the value bound to name, or nil if unbound.
func (b Bindings) Get(name string) any {
	return b[sexpr.Symbol(name)]
}

// Int returns the value bound to name as an int. It is a convenience for
// clause bodies; a non-int or unbound value yields 0.
func (b Bindings) Int(name string) int {
	if n, ok := b[sexpr.Symbol(name)].(int); ok {
		return n
	}
	return 0
}

// bind records name ↦ v. Rebinding an already-bound name succeeds only if
// the new value equals the old one.
func (b Bindings) bind(name sexpr.Symbol, v any) bool {
	if old, ok := b[name]; ok {
		return sexpr.Equal(old, v)
	}
	b[name] = v
	return true
}

func (b Bindings) clone() Bindings {
	c := make(Bindings, len(b))
	for k, v := range b {
		c[k] = v
	}
	return c
}

// merge copies all entries of other into b, overwriting on collision.
func (b Bindings) merge(other Bindings) {
	for k, v := range other {
		b[k] = v
	}
}
