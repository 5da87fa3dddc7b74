// Package classhier provides the class-hierarchy oracle CHA and the
// pointer analysis consult to resolve virtual dispatch. Extracting a
// hierarchy from bytecode or source is out of scope; this
// package defines the oracle interface plus an in-memory implementation
// for tests, the CLI demo and the irtext front-end — grounded on the
// teacher's TypeRegistry (internal/types/registry.go): a map-based
// registry built up via Add* calls and queried through small predicates.
package classhier

import "statix/internal/ir"

// Method describes one method declaration within a class.
type Method struct {
	Ref        ir.MethodRef
	IsAbstract bool
	IsStatic   bool
}

// Class is one class or interface node in the hierarchy.
type Class struct {
	Name          ir.ClassRef
	IsInterface   bool
	IsAbstract    bool
	Super         ir.ClassRef // "" iff none (java.lang.Object-like root)
	SubClasses    []ir.ClassRef
	SubInterfaces []ir.ClassRef
	Implementors  []ir.ClassRef
	Methods       map[ir.Subsignature]*Method
}

// Hierarchy is the oracle the CHA and PTA builders consult. Every method
// here is read-only and total: absent entries are reported via the bool
// return, never panics — a dispatch that finds no concrete method just
// returns false and lets the caller skip it.
type Hierarchy interface {
	Class(c ir.ClassRef) (*Class, bool)
	DirectSubclasses(c ir.ClassRef) []ir.ClassRef
	DirectSubinterfaces(c ir.ClassRef) []ir.ClassRef
	DirectImplementors(c ir.ClassRef) []ir.ClassRef
	SuperClass(c ir.ClassRef) (ir.ClassRef, bool)
	// DeclaredMethod returns the method declared directly on c matching
	// subsig, if any — it does not walk superclasses (dispatch does).
	DeclaredMethod(c ir.ClassRef, subsig ir.Subsignature) (*Method, bool)
}

// InMemory is a Hierarchy built by direct construction.
type InMemory struct {
	classes map[ir.ClassRef]*Class
}

// NewInMemory returns an empty hierarchy ready for AddClass calls.
func NewInMemory() *InMemory {
	return &InMemory{classes: make(map[ir.ClassRef]*Class)}
}

// AddClass registers a class/interface node under its Name, replacing
// any node added earlier under the same name. Relationships are taken
// as given in c's own fields (super class, direct subclasses,
// subinterfaces, implementors); AddClass does not derive or update the
// reverse links on other nodes, so each class lists every direct
// subclass/subinterface/implementor itself.
func (h *InMemory) AddClass(c *Class) {
	if c.Methods == nil {
		c.Methods = make(map[ir.Subsignature]*Method)
	}
	h.classes[c.Name] = c
}

// AddMethod attaches a method declaration to an already-added class.
func (h *InMemory) AddMethod(class ir.ClassRef, m *Method) {
	c, ok := h.classes[class]
	if !ok {
		return
	}
	c.Methods[m.Ref.Sig] = m
}

func (h *InMemory) Class(c ir.ClassRef) (*Class, bool) {
	cl, ok := h.classes[c]
	return cl, ok
}

func (h *InMemory) DirectSubclasses(c ir.ClassRef) []ir.ClassRef {
	if cl, ok := h.classes[c]; ok {
		return cl.SubClasses
	}
	return nil
}

func (h *InMemory) DirectSubinterfaces(c ir.ClassRef) []ir.ClassRef {
	if cl, ok := h.classes[c]; ok {
		return cl.SubInterfaces
	}
	return nil
}

func (h *InMemory) DirectImplementors(c ir.ClassRef) []ir.ClassRef {
	if cl, ok := h.classes[c]; ok {
		return cl.Implementors
	}
	return nil
}

func (h *InMemory) SuperClass(c ir.ClassRef) (ir.ClassRef, bool) {
	cl, ok := h.classes[c]
	if !ok || cl.Super == "" {
		return "", false
	}
	return cl.Super, true
}

func (h *InMemory) DeclaredMethod(c ir.ClassRef, subsig ir.Subsignature) (*Method, bool) {
	cl, ok := h.classes[c]
	if !ok {
		return nil, false
	}
	m, ok := cl.Methods[subsig]
	return m, ok
}
