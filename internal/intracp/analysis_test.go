package intracp

import (
	"testing"

	"statix/internal/fact"
	"statix/internal/ir"
	"statix/internal/lattice"
)

func build(t *testing.T, fn func(b *ir.Builder)) *ir.Func {
	t.Helper()
	b := ir.NewBuilder(ir.MethodRef{Class: "Demo", Sig: "m()V"}, true, ir.Int)
	fn(b)
	return b.Build()
}

// int x = 1; int y = 2; int z = x + y; -- z should be CONST(3) at exit.
func TestConstantFolding(t *testing.T) {
	var z *ir.Var
	f := build(t, func(b *ir.Builder) {
		x := b.Var("x", ir.Int)
		y := b.Var("y", ir.Int)
		z = b.Var("z", ir.Int)
		b.Add(&ir.AssignStmt{LHS: x, RHS: ir.IntLit{Value: 1}})
		b.Add(&ir.AssignStmt{LHS: y, RHS: ir.IntLit{Value: 2}})
		b.Add(&ir.AssignStmt{LHS: z, RHS: ir.BinaryExpr{Op: ir.Add, X: x, Y: y}})
		b.Add(&ir.ReturnStmt{Value: z})
	})

	res := Analyze(f)
	exit := f.CFG.Exit
	got := res.In[exit].Get(z)
	if !got.IsConst() || got.Int() != 3 {
		t.Fatalf("expected z = CONST(3) at exit, got %v", got)
	}
}

// int z = x + one; one = 1; -- x is a parameter (seeded NAC), so z is NAC
// even though one is still UNDEF at the addition.
func TestNacPropagation(t *testing.T) {
	var z *ir.Var
	b := ir.NewBuilder(ir.MethodRef{Class: "Demo", Sig: "m(I)V"}, true, ir.Int)
	x := b.Param("x", ir.Int)
	z = b.Var("z", ir.Int)
	b.Add(&ir.AssignStmt{LHS: z, RHS: ir.BinaryExpr{Op: ir.Add, X: x, Y: b.Var("one", ir.Int)}})
	b.Add(&ir.AssignStmt{LHS: b.Var("one", ir.Int), RHS: ir.IntLit{Value: 1}})
	f := b.Build()

	res := Analyze(f)
	got := res.Out[f.Stmts[0]].Get(z)
	if !got.IsNac() {
		t.Fatalf("expected z = NAC (x is a NAC parameter), got %v", got)
	}
}

// int z = 10 / 0; -- z should be UNDEF.
func TestDivByZeroIsUndef(t *testing.T) {
	var z *ir.Var
	f := build(t, func(b *ir.Builder) {
		ten := b.Var("ten", ir.Int)
		zero := b.Var("zero", ir.Int)
		z = b.Var("z", ir.Int)
		b.Add(&ir.AssignStmt{LHS: ten, RHS: ir.IntLit{Value: 10}})
		b.Add(&ir.AssignStmt{LHS: zero, RHS: ir.IntLit{Value: 0}})
		b.Add(&ir.AssignStmt{LHS: z, RHS: ir.BinaryExpr{Op: ir.Div, X: ten, Y: zero}})
	})
	res := Analyze(f)
	got := res.Out[f.Stmts[2]].Get(z)
	if !got.IsUndef() {
		t.Fatalf("expected z = UNDEF after div by zero, got %v", got)
	}
}

func TestDivByZeroUndefRegardlessOfDividend(t *testing.T) {
	zero := ir.NewVar("zero", ir.Int)
	y := ir.NewVar("y", ir.Int)

	in := fact.NewCPFact[*ir.Var]()
	in.Update(zero, lattice.ConstVal(0))
	in.Update(y, lattice.NacVal())

	got := Evaluate(ir.BinaryExpr{Op: ir.Div, X: y, Y: zero}, in)
	if !got.IsUndef() {
		t.Fatalf("expected UNDEF regardless of dividend, got %v", got)
	}
}
