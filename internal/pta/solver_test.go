package pta

import (
	"testing"

	"statix/internal/classhier"
	"statix/internal/heap"
	"statix/internal/ir"
	"statix/internal/ptypes"
	"statix/internal/taint"
)

func TestFieldFlowThroughAllocations(t *testing.T) {
	b := ir.NewBuilder(ir.MethodRef{Class: "Main", Sig: "main()V"}, true, ir.Void)
	a := b.Var("a", ir.RefType("Box"))
	p := b.Var("p", ir.RefType("Data"))
	q := b.Var("q", ir.RefType("Data"))

	b.Add(&ir.AssignStmt{LHS: a, RHS: ir.NewExpr{Class: "Box"}})
	b.Add(&ir.AssignStmt{LHS: p, RHS: ir.NewExpr{Class: "Data"}})
	b.Add(&ir.StoreFieldStmt{Base: a, Field: "data", RHS: p})
	b.Add(&ir.LoadFieldStmt{LHS: q, Base: a, Field: "data"})
	b.Add(&ir.ReturnStmt{})
	main := b.Build()

	prog := ir.NewMapProvider(main)
	hier := classhier.NewInMemory()
	solver := New(prog, hier, heap.AllocationSite{}, Insensitive{}, nil)
	res := solver.Run(main.Ref)

	qPts := res.PointsTo(ptypes.Empty, q)
	pPts := res.PointsTo(ptypes.Empty, p)
	if len(qPts) != 1 || len(pPts) != 1 {
		t.Fatalf("expected singleton points-to sets, got q=%v p=%v", qPts, pPts)
	}
	if qPts[0] != pPts[0] {
		t.Fatalf("q should alias p's allocation after store+load, got q=%v p=%v", qPts[0], pPts[0])
	}
}

func TestVirtualCallSeedsReceiver(t *testing.T) {
	hier := classhier.NewInMemory()
	hier.AddClass(&classhier.Class{Name: "Animal", IsAbstract: true, SubClasses: []ir.ClassRef{"Dog"}})
	hier.AddClass(&classhier.Class{Name: "Dog", Super: "Animal"})
	hier.AddMethod("Animal", &classhier.Method{Ref: ir.MethodRef{Class: "Animal", Sig: "speak()V"}, IsAbstract: true})
	hier.AddMethod("Dog", &classhier.Method{Ref: ir.MethodRef{Class: "Dog", Sig: "speak()V"}})

	mb := ir.NewBuilder(ir.MethodRef{Class: "Main", Sig: "main()V"}, true, ir.Void)
	a := mb.Var("a", ir.RefType("Animal"))
	mb.Add(&ir.AssignStmt{LHS: a, RHS: ir.NewExpr{Class: "Dog"}})
	mb.Add(&ir.InvokeStmt{InvokeKind: ir.InvokeVirtual, Callee: ir.MethodRef{Class: "Animal", Sig: "speak()V"}, Receiver: a})
	mb.Add(&ir.ReturnStmt{})
	main := mb.Build()

	db := ir.NewBuilder(ir.MethodRef{Class: "Dog", Sig: "speak()V"}, false, ir.Void)
	db.This(ir.RefType("Dog"))
	db.Add(&ir.ReturnStmt{})
	dog := db.Build()

	prog := ir.NewMapProvider(main, dog)
	solver := New(prog, hier, heap.AllocationSite{}, Insensitive{}, nil)
	res := solver.Run(main.Ref)

	dogRef := ir.MethodRef{Class: "Dog", Sig: "speak()V"}
	found := false
	for _, m := range res.CallGraph.Reachable() {
		if m.Method == dogRef {
			found = true
		}
	}
	if !found {
		t.Fatalf("Dog.speak() should be reachable")
	}

	thisPts := res.PointsTo(ptypes.Empty, dog.This)
	if len(thisPts) != 1 {
		t.Fatalf("expected this to be seeded with exactly the Dog allocation, got %v", thisPts)
	}
}

func TestTaintFlowSourceToSink(t *testing.T) {
	cfg := taint.NewConfig(
		[]taint.Source{{Method: ir.MethodRef{Class: "Source", Sig: "read()V"}, Type: "java.lang.String"}},
		[]taint.Sink{{Method: ir.MethodRef{Class: "Sink", Sig: "exec(V)V"}, Index: 0}},
		nil,
	)

	mb := ir.NewBuilder(ir.MethodRef{Class: "Main", Sig: "main()V"}, true, ir.Void)
	s := mb.Var("s", ir.RefType("java.lang.String"))
	mb.Add(&ir.InvokeStmt{InvokeKind: ir.InvokeStatic, Callee: ir.MethodRef{Class: "Source", Sig: "read()V"}, Result: s})
	mb.Add(&ir.InvokeStmt{InvokeKind: ir.InvokeStatic, Callee: ir.MethodRef{Class: "Sink", Sig: "exec(V)V"}, Args: []*ir.Var{s}})
	mb.Add(&ir.ReturnStmt{})
	main := mb.Build()

	sourceB := ir.NewBuilder(ir.MethodRef{Class: "Source", Sig: "read()V"}, true, ir.RefType("java.lang.String"))
	sourceB.Add(&ir.ReturnStmt{})
	source := sourceB.Build()

	sinkB := ir.NewBuilder(ir.MethodRef{Class: "Sink", Sig: "exec(V)V"}, true, ir.Void)
	sinkB.Param("x", ir.RefType("java.lang.String"))
	sinkB.Add(&ir.ReturnStmt{})
	sink := sinkB.Build()

	prog := ir.NewMapProvider(main, source, sink)
	hier := classhier.NewInMemory()
	solver := New(prog, hier, heap.AllocationSite{}, Insensitive{}, cfg)
	res := solver.Run(main.Ref)

	flows := res.TaintFlows()
	if len(flows) != 1 {
		t.Fatalf("expected exactly one taint flow, got %d: %v", len(flows), flows)
	}
	f := flows[0]
	if f.SinkMethod != main.Ref || f.Arg != 0 {
		t.Fatalf("unexpected flow: %+v", f)
	}
}
