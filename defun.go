package defun

import (
	"errors"
	"fmt"

	"github.com/ahyatt/defun-pattern/match"
	"github.com/ahyatt/defun-pattern/maybe"
	"github.com/ahyatt/defun-pattern/sexpr"
)

// ErrEmptyArgSpec is returned by New when the argument specification
// declares no slots at all. There is nothing to match against, so the
// definition is rejected before a callable is produced.
var ErrEmptyArgSpec = errors.New("argument specification declares no slots")

// ErrRestMalformed is returned by New when '&rest' is not followed by
// exactly one trailing name.
var ErrRestMalformed = errors.New("'&rest' must be followed by exactly one name, at the end")

// ErrStrayDoc is returned by New when a documentation entry appears
// anywhere but first in the clause list.
var ErrStrayDoc = errors.New("documentation string must be the first clause entry")

// BodyFunc is one expression of a clause body, run with the bindings the
// winning pattern captured.
type BodyFunc func(match.Bindings) any

// Value is a BodyFunc returning a constant.
func Value(v any) BodyFunc {
	return func(match.Bindings) any {
		return v
	}
}

// Clause is one entry of a definition: either a documentation string or a
// (pattern, body) pair.
type Clause struct {
	doc     string
	isDoc   bool
	pattern string
	body    []BodyFunc
}

// Case pairs a pattern, written in arglist style as textual s-expression,
// with body functions. A multi-function body runs in sequence and the
// clause's value is the last function's value.
func Case(pattern string, body ...BodyFunc) Clause {
	return Clause{pattern: pattern, body: body}
}

// Doc wraps a documentation string as a clause-list entry. It is only
// valid as the first entry.
func Doc(text string) Clause {
	return Clause{doc: text, isDoc: true}
}

// Defun is a generated callable dispatching on argument patterns.
type Defun struct {
	name    string
	doc     string
	spread  bool // match the raw argument sequence, no bundling
	normals int
	rest    bool
	cases   []match.Case[any]
	fns     match.FuncMap
}

// New assembles a callable from an argument specification and a clause
// list. The argument specification is an arglist-style s-expression such
// as "(a b)" or "(x &rest xs)"; the sole slot "(&rest _)" accepts any
// arity and matches clause patterns directly against the argument
// sequence. New fails if the specification declares no slots, if '&rest'
// is misplaced, or if a clause pattern does not read or compile.
func New(name string, argspec string, entries ...Clause) (*Defun, error) {
	normals, restName, hasRest, err := parseArgSpec(argspec)
	if err != nil {
		return nil, err
	}
	slots := len(normals)
	if hasRest {
		slots++
	}
	if slots == 0 {
		return nil, ErrEmptyArgSpec
	}
	d := &Defun{
		name:    name,
		spread:  hasRest && len(normals) == 0 && restName == sexpr.SymWildcard,
		normals: len(normals),
		rest:    hasRest,
		fns:     match.Builtins(),
	}
	for i, entry := range entries {
		if entry.isDoc {
			if i != 0 {
				return nil, ErrStrayDoc
			}
			d.doc = entry.doc
			continue
		}
		pat, err := sexpr.Read(entry.pattern)
		if err != nil {
			return nil, fmt.Errorf("clause %d: %w", i, err)
		}
		compiled, err := match.Compile(Normalize(pat))
		if err != nil {
			return nil, fmt.Errorf("clause %d: %w", i, err)
		}
		d.cases = append(d.cases, match.Case[any]{
			Pattern: compiled,
			Body:    progn(entry.body),
		})
	}
	tracer().Debugf("defined %s with %d clauses", name, len(d.cases))
	return d, nil
}

// WithFuncs returns a copy of d whose guard/pred/app/let expressions can
// additionally call the given named functions. The builtin table stays
// available underneath.
func (d *Defun) WithFuncs(fns match.FuncMap) *Defun {
	nd := *d
	nd.fns = match.Merged(d.fns, fns)
	return &nd
}

// Name returns the definition's name.
func (d *Defun) Name() string {
	return d.name
}

// Doc returns the definition's documentation string, if any.
func (d *Defun) Doc() string {
	return d.doc
}

// Call matches the arguments against the clause patterns in order and
// runs the body of the first clause that matches. Nothing means no clause
// matched; this includes calls whose arity cannot fit the declared
// argument slots.
func (d *Defun) Call(args ...any) maybe.Maybe[any] {
	var subject any
	if d.spread {
		subject = []any(args)
	} else {
		if d.rest {
			if len(args) < d.normals {
				return maybe.Nothing[any]()
			}
		} else if len(args) != d.normals {
			return maybe.Nothing[any]()
		}
		bundle := make([]any, d.normals, d.normals+1)
		copy(bundle, args[:d.normals])
		if d.rest {
			var tail any
			if len(args) > d.normals {
				tail = append([]any{}, args[d.normals:]...)
			}
			bundle = append(bundle, tail)
		}
		subject = bundle
	}
	return match.Select(d.cases, subject, d.fns)
}

// progn combines a multi-function body into one sequential body whose
// value is the last function's value. An empty body yields nil.
func progn(body []BodyFunc) func(match.Bindings) any {
	if len(body) == 1 {
		return body[0]
	}
	return func(env match.Bindings) any {
		var out any
		for _, f := range body {
			out = f(env)
		}
		return out
	}
}

// parseArgSpec reads an arglist-style argument specification: zero or
// more normal slot names, optionally followed by '&rest' and one tail
// name.
func parseArgSpec(text string) (normals []sexpr.Symbol, restName sexpr.Symbol, hasRest bool, err error) {
	v, err := sexpr.Read(text)
	if err != nil {
		return nil, "", false, fmt.Errorf("argument specification: %w", err)
	}
	if !sexpr.IsList(v) {
		return nil, "", false, fmt.Errorf("argument specification must be a list, got %s", sexpr.Print(v))
	}
	elems := sexpr.Elements(v)
	for i := 0; i < len(elems); i++ {
		name, ok := elems[i].(sexpr.Symbol)
		if !ok {
			return nil, "", false, fmt.Errorf("argument slot must be a name, got %s", sexpr.Print(elems[i]))
		}
		if name == sexpr.SymRest {
			if i != len(elems)-2 {
				return nil, "", false, ErrRestMalformed
			}
			tail, ok := elems[i+1].(sexpr.Symbol)
			if !ok {
				return nil, "", false, ErrRestMalformed
			}
			return normals, tail, true, nil
		}
		normals = append(normals, name)
	}
	return normals, "", false, nil
}
