package taint

import (
	"statix/internal/heap"
	"statix/internal/ir"
)

// Manager fabricates and deduplicates synthetic taint objects (spec
// §4.7: "Taint objects are deduplicated on (callSite, T)").
type Manager struct {
	objs map[taintKey]heap.Obj
}

type taintKey struct {
	Site  ir.MethodRef
	Index int
	Type  ir.ClassRef
}

// NewManager returns an empty taint-object table.
func NewManager() *Manager {
	return &Manager{objs: make(map[taintKey]heap.Obj)}
}

// MakeTaint returns the (deduplicated) taint object fabricated at the
// call site identified by (site, stmtIndex) for return type typ.
func (m *Manager) MakeTaint(site ir.MethodRef, stmtIndex int, typ ir.ClassRef) heap.Obj {
	k := taintKey{Site: site, Index: stmtIndex, Type: typ}
	if o, ok := m.objs[k]; ok {
		return o
	}
	o := heap.NewTaintObj(site, stmtIndex, typ)
	m.objs[k] = o
	return o
}

// IsTaint reports whether obj is a synthetic taint object rather than a
// real allocation.
func IsTaint(obj heap.Obj) bool { return obj.Taint }
