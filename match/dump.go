package match

import (
	"fmt"

	tp "github.com/xlab/treeprint"

	"github.com/ahyatt/defun-pattern/sexpr"
)

// Dump renders a compiled pattern as an indented tree, for debugging and
// test output.
func Dump(p Pattern) string {
	t := tp.New()
	dump(t, p)
	return t.String()
}

func dump(t tp.Tree, p Pattern) {
	switch x := p.(type) {
	case Literal:
		t.AddNode(fmt.Sprintf("lit %s", sexpr.Print(x.Value)))
	case Wildcard:
		t.AddNode("_")
	case Variable:
		t.AddNode(fmt.Sprintf("var %s", x.Name))
	case Sequence:
		branch := t.AddBranch(fmt.Sprintf("seq/%d", len(x.Elems)))
		for _, e := range x.Elems {
			dump(branch, e)
		}
	case Seq:
		branch := t.AddBranch(fmt.Sprintf("seq…/%d", len(x.Elems)))
		for _, e := range x.Elems {
			dump(branch, e)
		}
	case Or:
		branch := t.AddBranch("or")
		for _, e := range x.Alts {
			dump(branch, e)
		}
	case And:
		branch := t.AddBranch("and")
		for _, e := range x.Pats {
			dump(branch, e)
		}
	case Let:
		branch := t.AddBranch(fmt.Sprintf("let %s", sexpr.Print(x.Expr)))
		dump(branch, x.Pat)
	case Guard:
		t.AddNode(fmt.Sprintf("guard %s", sexpr.Print(x.Expr)))
	case Pred:
		t.AddNode(fmt.Sprintf("pred %s", sexpr.Print(x.Fn)))
	case App:
		branch := t.AddBranch(fmt.Sprintf("app %s", sexpr.Print(x.Fn)))
		dump(branch, x.Pat)
	case Type:
		t.AddNode(fmt.Sprintf("type %s", x.Name))
	default:
		t.AddNode(fmt.Sprintf("%#v", p))
	}
}
