package ptypes

import "statix/internal/ir"

// CSManager interns Pointers so that every (context, variable),
// (object, field), (class, field) and (object) tuple maps to exactly
// one canonical *Pointer instance — required because a Pointer's PTS is
// mutable state every reference to "the same" pointer must observe
// growing in lockstep.
type CSManager struct {
	vars    map[Context]map[*ir.Var]*CSVar
	instFld map[CSObj]map[string]*InstanceField
	statFld map[ir.ClassRef]map[string]*StaticField
	arrays  map[CSObj]*ArrayIndex
}

// NewCSManager returns an empty manager.
func NewCSManager() *CSManager {
	return &CSManager{
		vars:    make(map[Context]map[*ir.Var]*CSVar),
		instFld: make(map[CSObj]map[string]*InstanceField),
		statFld: make(map[ir.ClassRef]map[string]*StaticField),
		arrays:  make(map[CSObj]*ArrayIndex),
	}
}

// VarPtr interns a (context, variable) pair.
func (m *CSManager) VarPtr(ctx Context, v *ir.Var) *CSVar {
	byVar, ok := m.vars[ctx]
	if !ok {
		byVar = make(map[*ir.Var]*CSVar)
		m.vars[ctx] = byVar
	}
	p, ok := byVar[v]
	if !ok {
		p = &CSVar{Ctx: ctx, Var: v, pts: NewPointsToSet()}
		byVar[v] = p
	}
	return p
}

// InstanceFieldPtr interns an (object, field) pair.
func (m *CSManager) InstanceFieldPtr(obj CSObj, field string) *InstanceField {
	byField, ok := m.instFld[obj]
	if !ok {
		byField = make(map[string]*InstanceField)
		m.instFld[obj] = byField
	}
	p, ok := byField[field]
	if !ok {
		p = &InstanceField{Base: obj, Field: field, pts: NewPointsToSet()}
		byField[field] = p
	}
	return p
}

// StaticFieldPtr interns a (class, field) pair.
func (m *CSManager) StaticFieldPtr(class ir.ClassRef, field string) *StaticField {
	byField, ok := m.statFld[class]
	if !ok {
		byField = make(map[string]*StaticField)
		m.statFld[class] = byField
	}
	p, ok := byField[field]
	if !ok {
		p = &StaticField{Class: class, Field: field, pts: NewPointsToSet()}
		byField[field] = p
	}
	return p
}

// ArrayPtr interns an object's array cell.
func (m *CSManager) ArrayPtr(obj CSObj) *ArrayIndex {
	p, ok := m.arrays[obj]
	if !ok {
		p = &ArrayIndex{Base: obj, pts: NewPointsToSet()}
		m.arrays[obj] = p
	}
	return p
}

// AllVarPointers returns every CSVar interned so far, across every
// context. Interprocedural constant propagation's alias map
// is defined per-variable rather than per-(context,variable), so it
// walks this to union a variable's points-to set across contexts.
func (m *CSManager) AllVarPointers() []*CSVar {
	var out []*CSVar
	for _, byVar := range m.vars {
		for _, p := range byVar {
			out = append(out, p)
		}
	}
	return out
}
