package match

import (
	"github.com/ahyatt/defun-pattern/maybe"
)

// Match matches a compiled pattern against a subject value. A successful
// match carries the accumulated bindings; a failed match is Nothing.
func Match(p Pattern, subject any, fns FuncMap) maybe.Maybe[Bindings] {
	env := make(Bindings)
	if p.match(subject, env, fns) {
		return maybe.Just(env)
	}
	return maybe.Nothing[Bindings]()
}

// Case pairs a pattern with the body to run when it matches.
type Case[T any] struct {
	Pattern Pattern
	Body    func(Bindings) T
}

// Select tries the cases in order against the subject and runs the body of
// the first case whose pattern matches. No case matching is Nothing, a
// normal outcome.
func Select[T any](cases []Case[T], subject any, fns FuncMap) maybe.Maybe[T] {
	for i, c := range cases {
		env := make(Bindings)
		if c.Pattern.match(subject, env, fns) {
			tracer().Debugf("clause %d matched", i)
			return maybe.Just(c.Body(env))
		}
	}
	tracer().Debugf("no clause matched")
	return maybe.Nothing[T]()
}
