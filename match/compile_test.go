package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ahyatt/defun-pattern/sexpr"
)

func compile(t *testing.T, text string) (Pattern, error) {
	t.Helper()
	v, err := sexpr.Read(text)
	if err != nil {
		t.Fatalf("cannot read %q: %v", text, err)
	}
	return Compile(v)
}

func TestCompileShapes(t *testing.T) {
	cases := []struct {
		text string
		want any
	}{
		{"x", Variable{}},
		{"_", Wildcard{}},
		{"5", Literal{}},
		{"'sym", Literal{}},
		{"`(1 2)", Sequence{}},
		{"(or 1 2)", Or{}},
		{"(and 1 2)", And{}},
		{"(pred evenp)", Pred{}},
		{"(guard (> ,n 1))", Guard{}},
		{"(let x 5)", Let{}},
		{"(app car x)", App{}},
		{"(type integer)", Type{}},
		{"(seq 1 2)", Seq{}},
	}
	for _, c := range cases {
		p, err := compile(t, c.text)
		if err != nil {
			t.Errorf("cannot compile %q: %v", c.text, err)
			continue
		}
		assert.IsType(t, c.want, p, "compiling %q", c.text)
	}
}

func TestCompileQuotedLiteral(t *testing.T) {
	p, err := compile(t, "'foo")
	if err != nil {
		t.Fatalf("cannot compile 'foo: %v", err)
	}
	lit, ok := p.(Literal)
	if !ok {
		t.Fatalf("expected a literal, got %T", p)
	}
	if lit.Value != sexpr.Symbol("foo") {
		t.Errorf("expected literal symbol foo, got %v", lit.Value)
	}
}

func TestCompileNonConstructListIsStructure(t *testing.T) {
	// a list headed by anything outside the allow-list is data to match
	p, err := compile(t, "(foo 1 2)")
	if err != nil {
		t.Fatalf("cannot compile (foo 1 2): %v", err)
	}
	seq, ok := p.(Sequence)
	if !ok {
		t.Fatalf("expected literal structure, got %T", p)
	}
	if len(seq.Elems) != 3 {
		t.Errorf("expected 3 elements, have %d", len(seq.Elems))
	}
}

func TestCompileArityErrors(t *testing.T) {
	for _, text := range []string{
		"(let x)",
		"(guard)",
		"(pred)",
		"(app car)",
		"(type)",
		"(type (1 2))",
	} {
		if _, err := compile(t, text); err == nil {
			t.Errorf("expected compile of %q to fail, didn't", text)
		}
	}
}

func TestCompileIsConstruct(t *testing.T) {
	for _, name := range []string{"or", "and", "let", "guard", "pred", "app", "type", "seq"} {
		if !IsConstruct(sexpr.Symbol(name)) {
			t.Errorf("expected %s to be a matcher construct", name)
		}
	}
	if IsConstruct("foo") {
		t.Error("did not expect foo to be a matcher construct")
	}
}
