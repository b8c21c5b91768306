package defun

import (
	"testing"

	"github.com/ahyatt/defun-pattern/match"
	"github.com/ahyatt/defun-pattern/sexpr"
)

func normalized(t *testing.T, text string) string {
	t.Helper()
	v, err := sexpr.Read(text)
	if err != nil {
		t.Fatalf("cannot read pattern %q: %v", text, err)
	}
	return sexpr.Print(Normalize(v))
}

func TestNormalizeBareSymbolsEscape(t *testing.T) {
	cases := []struct {
		pattern string
		want    string
	}{
		{"(0)", "`(0)"},
		{"(n)", "`(,n)"},
		{"(a b)", "`(,a ,b)"},
		{"(a (b c))", "`(,a (,b ,c))"},
		{"(a _)", "`(,a ,_)"},
		{"(a nil)", "`(,a nil)"},
	}
	for _, c := range cases {
		if got := normalized(t, c.pattern); got != c.want {
			t.Errorf("normalize %s: expected %s, got %s", c.pattern, c.want, got)
		}
	}
}

func TestNormalizeQuotedRegionsStayLiteral(t *testing.T) {
	cases := []struct {
		pattern string
		want    string
	}{
		{"('z)", "`('z)"},
		{"(a 'z a)", "`(,a 'z ,a)"},
		{"('(1 2))", "`('(1 2))"},
		// no escaping happens inside an explicitly literal region, even
		// for names from the construct allow-list; the quote marker itself
		// is kept so that literal data stays recognizable downstream
		{"('(or a b))", "`('(or a b))"},
	}
	for _, c := range cases {
		if got := normalized(t, c.pattern); got != c.want {
			t.Errorf("normalize %s: expected %s, got %s", c.pattern, c.want, got)
		}
	}
}

func TestNormalizeConstructsEscape(t *testing.T) {
	cases := []struct {
		pattern string
		want    string
	}{
		{"((or 1 2))", "`(,(,or 1 2))"},
		{"((pred evenp))", "`(,(,pred ,evenp))"},
		{"(x (and y (guard (> y 1))))", "`(,x ,(,and ,y ,(,guard (,> ,y 1))))"},
		// quoted constants inside a construct keep their marker, so the
		// guard evaluator sees them as data, not as a call form
		{"((and x (guard (member x '(a b)))))", "`(,(,and ,x ,(,guard (,member ,x '(a b)))))"},
	}
	for _, c := range cases {
		if got := normalized(t, c.pattern); got != c.want {
			t.Errorf("normalize %s: expected %s, got %s", c.pattern, c.want, got)
		}
	}
}

func TestNormalizeIsDeterministic(t *testing.T) {
	for _, text := range []string{
		"(a (b c))",
		"((or 1 2) 'z)",
		"(x (guard (member 'k x)))",
	} {
		first := normalized(t, text)
		for i := 0; i < 3; i++ {
			if again := normalized(t, text); again != first {
				t.Errorf("normalize %s not deterministic: %s vs %s", text, first, again)
			}
		}
	}
}

func TestNormalizedPatternsCompile(t *testing.T) {
	// the normalizer's output is exactly what the matcher's compiler eats
	for _, text := range []string{
		"(0)",
		"(a (b c))",
		"(a 'z a)",
		"((or 1 2) _)",
		"(x (and y (guard (> y 1))))",
		"((pred evenp) (app car h))",
	} {
		v, err := sexpr.Read(text)
		if err != nil {
			t.Fatalf("cannot read %q: %v", text, err)
		}
		if _, err := match.Compile(Normalize(v)); err != nil {
			t.Errorf("normalized %s does not compile: %v", text, err)
		}
	}
}
