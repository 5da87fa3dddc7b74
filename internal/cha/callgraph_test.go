package cha

import (
	"testing"

	"statix/internal/classhier"
	"statix/internal/ir"
)

// Animal (abstract speak) <- Dog, Cat. main calls a virtual Animal.speak()
// through a variable statically typed Animal; CHA must resolve both Dog
// and Cat's overrides, and skip Animal's own abstract declaration.
func buildHierarchy() *classhier.InMemory {
	h := classhier.NewInMemory()
	h.AddClass(&classhier.Class{Name: "Animal", IsAbstract: true, SubClasses: []ir.ClassRef{"Dog", "Cat"}})
	h.AddClass(&classhier.Class{Name: "Dog", Super: "Animal"})
	h.AddClass(&classhier.Class{Name: "Cat", Super: "Animal"})
	h.AddMethod("Animal", &classhier.Method{Ref: ir.MethodRef{Class: "Animal", Sig: "speak()V"}, IsAbstract: true})
	h.AddMethod("Dog", &classhier.Method{Ref: ir.MethodRef{Class: "Dog", Sig: "speak()V"}})
	h.AddMethod("Cat", &classhier.Method{Ref: ir.MethodRef{Class: "Cat", Sig: "speak()V"}})
	return h
}

func buildProgram() ir.Provider {
	b := ir.NewBuilder(ir.MethodRef{Class: "Main", Sig: "main()V"}, true, ir.Void)
	animal := b.Var("a", ir.RefType("Animal"))
	b.Add(&ir.InvokeStmt{
		InvokeKind: ir.InvokeVirtual,
		Callee:     ir.MethodRef{Class: "Animal", Sig: "speak()V"},
		Receiver:   animal,
	})
	b.Add(&ir.ReturnStmt{})
	main := b.Build()

	dogB := ir.NewBuilder(ir.MethodRef{Class: "Dog", Sig: "speak()V"}, false, ir.Void)
	dogB.This(ir.RefType("Dog"))
	dogB.Add(&ir.ReturnStmt{})
	dog := dogB.Build()

	catB := ir.NewBuilder(ir.MethodRef{Class: "Cat", Sig: "speak()V"}, false, ir.Void)
	catB.This(ir.RefType("Cat"))
	catB.Add(&ir.ReturnStmt{})
	cat := catB.Build()

	return ir.NewMapProvider(main, dog, cat)
}

func TestVirtualCallResolvesAllOverrides(t *testing.T) {
	h := buildHierarchy()
	prog := buildProgram()
	entry := ir.MethodRef{Class: "Main", Sig: "main()V"}

	cg := Build(prog, h, entry)

	dog := ir.MethodRef{Class: "Dog", Sig: "speak()V"}
	cat := ir.MethodRef{Class: "Cat", Sig: "speak()V"}
	if !cg.Reachable[dog] {
		t.Fatalf("Dog.speak() should be reachable via virtual dispatch")
	}
	if !cg.Reachable[cat] {
		t.Fatalf("Cat.speak() should be reachable via virtual dispatch")
	}
	if len(cg.Edges) != 2 {
		t.Fatalf("expected exactly 2 call edges (Dog, Cat), got %d", len(cg.Edges))
	}
}

func TestStaticCallResolvesDeclaredMethodOnly(t *testing.T) {
	h := classhier.NewInMemory()
	h.AddClass(&classhier.Class{Name: "Util"})
	h.AddMethod("Util", &classhier.Method{Ref: ir.MethodRef{Class: "Util", Sig: "helper()V"}})

	b := ir.NewBuilder(ir.MethodRef{Class: "Main", Sig: "main()V"}, true, ir.Void)
	b.Add(&ir.InvokeStmt{InvokeKind: ir.InvokeStatic, Callee: ir.MethodRef{Class: "Util", Sig: "helper()V"}})
	b.Add(&ir.ReturnStmt{})
	main := b.Build()

	hb := ir.NewBuilder(ir.MethodRef{Class: "Util", Sig: "helper()V"}, true, ir.Void)
	hb.Add(&ir.ReturnStmt{})
	helper := hb.Build()

	cg := Build(ir.NewMapProvider(main, helper), h, ir.MethodRef{Class: "Main", Sig: "main()V"})
	if !cg.Reachable[ir.MethodRef{Class: "Util", Sig: "helper()V"}] {
		t.Fatalf("statically-invoked helper should be reachable")
	}
}
