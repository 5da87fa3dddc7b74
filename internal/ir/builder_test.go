package ir

import (
	"strings"
	"testing"
)

func TestBuilderStraightLine(t *testing.T) {
	b := NewBuilder(MethodRef{Class: "Demo", Sig: "m()V"}, true, Void)
	x := b.Var("x", Int)
	y := b.Var("y", Int)
	z := b.Var("z", Int)

	s1 := b.Add(&AssignStmt{LHS: x, RHS: IntLit{Value: 1}})
	s2 := b.Add(&AssignStmt{LHS: y, RHS: IntLit{Value: 2}})
	s3 := b.Add(&AssignStmt{LHS: z, RHS: BinaryExpr{Op: Add, X: x, Y: y}})
	b.Add(&ReturnStmt{Value: z})

	f := b.Build()

	if got := f.CFG.SuccStmts(f.CFG.Entry); len(got) != 1 || got[0] != s1 {
		t.Fatalf("entry should flow to first statement, got %v", got)
	}
	if got := f.CFG.SuccStmts(s1); len(got) != 1 || got[0] != s2 {
		t.Fatalf("s1 should fall through to s2")
	}
	if got := f.CFG.SuccStmts(s2); len(got) != 1 || got[0] != s3 {
		t.Fatalf("s2 should fall through to s3")
	}
	if len(f.ReturnVars()) != 1 || f.ReturnVars()[0] != z {
		t.Fatalf("expected single return var z")
	}
}

func TestBuilderIfWiring(t *testing.T) {
	b := NewBuilder(MethodRef{Class: "Demo", Sig: "m()V"}, true, Void)
	p := b.Var("p", Boolean)
	s1 := b.Add(&AssignStmt{LHS: b.Var("a", Int), RHS: IntLit{Value: 1}})
	ifs := b.Add(&IfStmt{Cond: VarExpr{X: p}}).(*IfStmt)
	s2 := b.Add(&AssignStmt{LHS: b.Var("t", Int), RHS: IntLit{Value: 2}})
	s3 := b.Add(&AssignStmt{LHS: b.Var("f", Int), RHS: IntLit{Value: 3}})
	b.WireIf(ifs, s2, s3)
	b.Add(&ReturnStmt{})
	f := b.Build()

	_ = s1
	edges := f.CFG.Succs(ifs)
	if len(edges) != 2 {
		t.Fatalf("expected 2 labeled edges out of if, got %d", len(edges))
	}
}

func TestPrintFunc(t *testing.T) {
	b := NewBuilder(MethodRef{Class: "Demo", Sig: "m()V"}, true, Void)
	x := b.Var("x", Int)
	b.Add(&AssignStmt{LHS: x, RHS: IntLit{Value: 1}})
	b.Add(&ReturnStmt{Value: x})
	f := b.Build()

	out := PrintFunc(f)
	if !strings.Contains(out, "x = 1") {
		t.Fatalf("printed IR missing assignment: %s", out)
	}
}
