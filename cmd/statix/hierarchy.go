package main

import (
	"statix/internal/classhier"
	"statix/internal/ir"
)

// flatHierarchy builds a depth-one classhier.Hierarchy from the classes
// that declare at least one of the given methods: every class is its
// own root, with every declared method registered directly on it.
// Inheritance isn't representable in the textual IR surface, so virtual
// dispatch degenerates to "the declaring class only" — fine for the
// demo programs this CLI is meant to run, since none of them rely on
// CHA finding anything beyond the statically named callee.
func flatHierarchy(refs []ir.MethodRef) *classhier.InMemory {
	h := classhier.NewInMemory()
	byClass := make(map[ir.ClassRef][]ir.MethodRef)
	for _, ref := range refs {
		byClass[ref.Class] = append(byClass[ref.Class], ref)
	}
	for class, methods := range byClass {
		c := &classhier.Class{Name: class, Methods: make(map[ir.Subsignature]*classhier.Method)}
		for _, ref := range methods {
			c.Methods[ref.Sig] = &classhier.Method{Ref: ref}
		}
		h.AddClass(c)
	}
	return h
}
