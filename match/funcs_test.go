package match

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ahyatt/defun-pattern/sexpr"
)

func evalText(t *testing.T, text string, env Bindings) (any, error) {
	t.Helper()
	v, err := sexpr.Read(text)
	if err != nil {
		t.Fatalf("cannot read expression %q: %v", text, err)
	}
	return eval(exprOf(v), env, Builtins())
}

func TestEvalBuiltins(t *testing.T) {
	env := Bindings{"n": 5, "lst": sexpr.List(1, 2, 3)}
	cases := []struct {
		text string
		want any
	}{
		{"(+ ,n 1)", 6},
		{"(- ,n 2)", 3},
		{"(* ,n ,n)", 25},
		{"(mod ,n 2)", 1},
		{"(1+ ,n)", 6},
		{"(1- ,n)", 4},
		{"(> ,n 2)", true},
		{"(< ,n 2)", false},
		{"(<= 2 ,n 7)", true},
		{"(= ,n 5)", true},
		{"(car ,lst)", 1},
		{"(length ,lst)", 3},
		{"(null ,lst)", false},
		{"(not (null ,lst))", true},
		{"(member 2 ,lst)", true},
		{"(member 9 ,lst)", nil},
		{"(equal ,lst (list 1 2 3))", true},
		{"(evenp ,n)", false},
		{"(zerop 0)", true},
		{"(integerp ,n)", true},
		{"(stringp ,n)", false},
		{"(listp ,lst)", true},
		{"'sym", sexpr.Symbol("sym")},
	}
	for _, c := range cases {
		got, err := evalText(t, c.text, env)
		assert.NoError(t, err, "evaluating %s", c.text)
		assert.Equal(t, c.want, got, "evaluating %s", c.text)
	}
}

func TestEvalCdr(t *testing.T) {
	env := Bindings{"lst": sexpr.List(1, 2, 3)}
	got, err := evalText(t, "(cdr ,lst)", env)
	if err != nil {
		t.Fatalf("unexpected eval error: %v", err)
	}
	if !sexpr.Equal(got, sexpr.List(2, 3)) {
		t.Errorf("expected (2 3), got %s", sexpr.Print(got))
	}
}

func TestEvalUnboundVariable(t *testing.T) {
	_, err := evalText(t, "(+ ,nowhere 1)", Bindings{})
	if !errors.Is(err, ErrUnboundVariable) {
		t.Errorf("expected unbound-variable error, got %v", err)
	}
}

func TestEvalUnknownFunction(t *testing.T) {
	_, err := evalText(t, "(frobnicate 1)", Bindings{})
	if !errors.Is(err, ErrUnknownFunction) {
		t.Errorf("expected unknown-function error, got %v", err)
	}
}

func TestMergedOverlays(t *testing.T) {
	base := FuncMap{"f": func(...any) (any, error) { return 1, nil }}
	extra := FuncMap{"f": func(...any) (any, error) { return 2, nil }}
	m := Merged(base, extra)
	v, err := m["f"]()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 2 {
		t.Errorf("expected the overlay to win, got %v", v)
	}
	if v, _ := base["f"](); v != 1 {
		t.Error("expected Merged to leave the base table untouched")
	}
}
