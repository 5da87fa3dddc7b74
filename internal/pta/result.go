package pta

import (
	"statix/internal/ir"
	"statix/internal/ptypes"
	"statix/internal/taint"
)

// Result is the PTA's global output: the CSManager, the context-sensitive
// call graph, and (via the manager) each pointer's PTS.
type Result struct {
	Manager   *ptypes.CSManager
	PFG       *ptypes.PFG
	CallGraph *CallGraph
	TaintMgr  *taint.Manager
	Config    *taint.Config
	Prog      ir.Provider
}

// PointsTo returns the points-to set of a variable under a given
// context, interning it if this is the first time it's been asked for
// (an unreferenced pointer simply has an empty PTS).
func (r *Result) PointsTo(ctx ptypes.Context, v *ir.Var) []ptypes.CSObj {
	return r.Manager.VarPtr(ctx, v).PTS().Objects()
}

// TaintFlows collects every confirmed source-to-sink flow after the
// fixed point, sorted and deduplicated.
func (r *Result) TaintFlows() []taint.Flow {
	var flows []taint.Flow
	for _, edge := range r.CallGraph.Edges() {
		indices := r.Config.SinksFor(edge.Callee.Method)
		if len(indices) == 0 {
			continue
		}
		call := edge.Site.Call
		for _, i := range indices {
			if i < 0 || i >= len(call.Args) {
				continue
			}
			argPtr := r.Manager.VarPtr(edge.Site.Ctx, call.Args[i])
			for _, obj := range argPtr.PTS().Objects() {
				if !taint.IsTaint(obj.Obj) {
					continue
				}
				flows = append(flows, taint.Flow{
					SourceMethod: obj.Obj.Site,
					SourceIndex:  obj.Obj.Index,
					SinkMethod:   edge.Site.Caller,
					SinkIndex:    call.Index(),
					Arg:          i,
				})
			}
		}
	}
	return taint.SortFlows(flows)
}
