package deadcode

import (
	"testing"

	"statix/internal/ir"
)

// int z = 10 / 0; -- the assignment itself must NOT be dead code (side
// effect rule), even though evaluate() yields UNDEF.
func TestDivByZeroAssignmentNotDead(t *testing.T) {
	b := ir.NewBuilder(ir.MethodRef{Class: "Demo", Sig: "m()V"}, true, ir.Void)
	ten := b.Var("ten", ir.Int)
	zero := b.Var("zero", ir.Int)
	z := b.Var("z", ir.Int)
	s0 := b.Add(&ir.AssignStmt{LHS: ten, RHS: ir.IntLit{Value: 10}})
	s1 := b.Add(&ir.AssignStmt{LHS: zero, RHS: ir.IntLit{Value: 0}})
	s2 := b.Add(&ir.AssignStmt{LHS: z, RHS: ir.BinaryExpr{Op: ir.Div, X: ten, Y: zero}})
	f := b.Build()

	res := Detect(f, nil, nil)
	for _, dead := range []ir.Stmt{s0, s1, s2} {
		if res.DeadAssignments[dead] {
			t.Fatalf("statement %d unexpectedly marked dead-assignment", dead.Index())
		}
	}
}

// if (true) S1; else S2; (constant-folded) -- S2 in deadCode, S1 not.
func TestConstantFoldedBranchMarksDeadElse(t *testing.T) {
	b := ir.NewBuilder(ir.MethodRef{Class: "Demo", Sig: "m()V"}, true, ir.Void)
	cond := b.Var("cond", ir.Boolean)
	one := b.Var("one", ir.Int)

	s0 := b.Add(&ir.AssignStmt{LHS: cond, RHS: ir.IntLit{Value: 1}})
	ifs := b.Add(&ir.IfStmt{Cond: ir.VarExpr{X: cond}}).(*ir.IfStmt)
	s1 := b.Add(&ir.AssignStmt{LHS: one, RHS: ir.IntLit{Value: 1}}) // then-branch (S1)
	join := b.Add(&ir.ReturnStmt{Value: one})
	s2 := b.Add(&ir.AssignStmt{LHS: one, RHS: ir.IntLit{Value: 2}}) // else-branch (S2)

	b.WireIf(ifs, s1, s2)
	b.Wire(s1, join)
	b.Wire(s2, join)
	f := b.Build()

	res := Detect(f, nil, nil)
	deadSet := map[ir.Stmt]bool{}
	for _, d := range res.Dead {
		deadSet[d] = true
	}
	if deadSet[s1] {
		t.Fatalf("then-branch (S1) should not be dead")
	}
	if !deadSet[s2] {
		t.Fatalf("else-branch (S2) should be dead under the constant-folded condition")
	}
	_ = s0
}

func TestPureDeadAssignmentIsRemoved(t *testing.T) {
	b := ir.NewBuilder(ir.MethodRef{Class: "Demo", Sig: "m()V"}, true, ir.Void)
	x := b.Var("x", ir.Int)
	y := b.Var("y", ir.Int)
	s0 := b.Add(&ir.AssignStmt{LHS: x, RHS: ir.IntLit{Value: 1}}) // never read -> dead
	s1 := b.Add(&ir.AssignStmt{LHS: y, RHS: ir.IntLit{Value: 2}})
	b.Add(&ir.ReturnStmt{Value: y})
	f := b.Build()

	res := Detect(f, nil, nil)
	if !res.DeadAssignments[s0] {
		t.Fatalf("x = 1 should be a dead assignment (never read)")
	}
	if res.DeadAssignments[s1] {
		t.Fatalf("y = 2 should not be dead (returned)")
	}
}

func TestAllocationNeverDeadAssignment(t *testing.T) {
	b := ir.NewBuilder(ir.MethodRef{Class: "Demo", Sig: "m()V"}, true, ir.Void)
	x := b.Var("x", ir.RefType("Demo"))
	s0 := b.Add(&ir.AssignStmt{LHS: x, RHS: ir.NewExpr{Class: "Demo"}})
	b.Add(&ir.ReturnStmt{})
	f := b.Build()

	res := Detect(f, nil, nil)
	if res.DeadAssignments[s0] {
		t.Fatalf("allocation must never be treated as a dead assignment even when unused")
	}
}
