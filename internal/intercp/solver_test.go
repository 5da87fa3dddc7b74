package intercp

import (
	"testing"

	"statix/internal/classhier"
	"statix/internal/heap"
	"statix/internal/ir"
	"statix/internal/pta"
)

func TestFieldValueFlowsAcrossCallArgument(t *testing.T) {
	mainB := ir.NewBuilder(ir.MethodRef{Class: "Main", Sig: "main()V"}, true, ir.Void)
	b := mainB.Var("b", ir.RefType("Box"))
	c := mainB.Var("c", ir.Int)
	mainB.Add(&ir.AssignStmt{LHS: b, RHS: ir.NewExpr{Class: "Box"}})
	mainB.Add(&ir.AssignStmt{LHS: c, RHS: ir.IntLit{Value: 42}})
	mainB.Add(&ir.StoreFieldStmt{Base: b, Field: "val", RHS: c})
	mainB.Add(&ir.InvokeStmt{InvokeKind: ir.InvokeStatic, Callee: ir.MethodRef{Class: "Util", Sig: "useBox(V)V"}, Args: []*ir.Var{b}})
	mainB.Add(&ir.ReturnStmt{})
	main := mainB.Build()

	utilB := ir.NewBuilder(ir.MethodRef{Class: "Util", Sig: "useBox(V)V"}, true, ir.Void)
	p := utilB.Param("p", ir.RefType("Box"))
	r := utilB.Var("r", ir.Int)
	loadStmt := utilB.Add(&ir.LoadFieldStmt{LHS: r, Base: p, Field: "val"})
	utilB.Add(&ir.ReturnStmt{})
	util := utilB.Build()

	prog := ir.NewMapProvider(main, util)
	hier := classhier.NewInMemory()
	ptaSolver := pta.New(prog, hier, heap.AllocationSite{}, pta.Insensitive{}, nil)
	res := ptaSolver.Run(main.Ref)

	icRes := Run(prog, res, main.Ref)

	out := icRes.Out[loadStmt]
	v := out.Get(r)
	if !v.IsConst() || v.Int() != 42 {
		t.Fatalf("expected r = CONST(42) after cross-method field flow, got %v", v)
	}
}

func TestReturnValuePropagatesToCaller(t *testing.T) {
	mainB := ir.NewBuilder(ir.MethodRef{Class: "Main", Sig: "main()V"}, true, ir.Void)
	x := mainB.Var("x", ir.Int)
	y := mainB.Var("y", ir.Int)
	z := mainB.Var("z", ir.Int)
	mainB.Add(&ir.AssignStmt{LHS: x, RHS: ir.IntLit{Value: 5}})
	mainB.Add(&ir.InvokeStmt{InvokeKind: ir.InvokeStatic, Callee: ir.MethodRef{Class: "Main", Sig: "inc(I)I"}, Args: []*ir.Var{x}, Result: y})
	zAssign := mainB.Add(&ir.AssignStmt{LHS: z, RHS: ir.BinaryExpr{Op: ir.Add, X: y, Y: x}})
	mainB.Add(&ir.ReturnStmt{})
	main := mainB.Build()

	incB := ir.NewBuilder(ir.MethodRef{Class: "Main", Sig: "inc(I)I"}, true, ir.Int)
	pArg := incB.Param("p", ir.Int)
	rv := incB.Var("rv", ir.Int)
	incB.Add(&ir.AssignStmt{LHS: rv, RHS: ir.BinaryExpr{Op: ir.Add, X: pArg, Y: pArg}})
	incB.Add(&ir.ReturnStmt{Value: rv})
	inc := incB.Build()

	prog := ir.NewMapProvider(main, inc)
	hier := classhier.NewInMemory()
	ptaSolver := pta.New(prog, hier, heap.AllocationSite{}, pta.Insensitive{}, nil)
	res := ptaSolver.Run(main.Ref)

	icRes := Run(prog, res, main.Ref)

	in := icRes.In[zAssign]
	if yv := in.Get(y); !yv.IsConst() || yv.Int() != 10 {
		t.Fatalf("expected y = CONST(10) bound via return edge, got %v", yv)
	}
}
