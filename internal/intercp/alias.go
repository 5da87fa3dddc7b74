package intercp

import (
	"statix/internal/ir"
	"statix/internal/pta"
	"statix/internal/ptypes"
)

// AliasMap is the reflexive alias relation built once from a finished
// pointer-analysis result: alias(v) = { u | pts(v) ∩ pts(u) ≠ ∅ },
// collapsed across contexts — the interprocedural transfers only ever
// ask "which other variables might this one alias", not "under which
// context".
type AliasMap struct {
	classes map[*ir.Var]map[*ir.Var]bool
}

// BuildAliasMap unions every CSVar's PTS by underlying *ir.Var, then
// groups variables that share at least one heap object.
func BuildAliasMap(res *pta.Result) *AliasMap {
	varObjs := make(map[*ir.Var]map[ptypes.CSObj]bool)
	for _, cv := range res.Manager.AllVarPointers() {
		objs, ok := varObjs[cv.Var]
		if !ok {
			objs = make(map[ptypes.CSObj]bool)
			varObjs[cv.Var] = objs
		}
		for _, o := range cv.PTS().Objects() {
			objs[o] = true
		}
	}

	objVars := make(map[ptypes.CSObj]map[*ir.Var]bool)
	for v, objs := range varObjs {
		for o := range objs {
			vars, ok := objVars[o]
			if !ok {
				vars = make(map[*ir.Var]bool)
				objVars[o] = vars
			}
			vars[v] = true
		}
	}

	classes := make(map[*ir.Var]map[*ir.Var]bool, len(varObjs))
	for v, objs := range varObjs {
		set := map[*ir.Var]bool{v: true}
		for o := range objs {
			for u := range objVars[o] {
				set[u] = true
			}
		}
		classes[v] = set
	}
	return &AliasMap{classes: classes}
}

// Of returns v's alias class, always including v itself even when v was
// never seen by PTA (an unreferenced pointer only aliases itself).
func (m *AliasMap) Of(v *ir.Var) []*ir.Var {
	set, ok := m.classes[v]
	if !ok {
		return []*ir.Var{v}
	}
	out := make([]*ir.Var, 0, len(set))
	for u := range set {
		out = append(out, u)
	}
	return out
}
