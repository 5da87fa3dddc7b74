// Package cha builds a class-hierarchy-analysis call graph: a
// conservative, context-insensitive over-approximation reached by a
// worklist over call sites, used standalone as a cheap call-graph
// oracle; it is independent of the on-the-fly graph the pointer
// analysis builds in internal/pta.
package cha

import (
	"statix/internal/classhier"
	"statix/internal/ir"
)

// Edge is one resolved call-site -> target-method edge.
type Edge struct {
	Site   ir.MethodRef // the method containing the call site
	Call   *ir.InvokeStmt
	Target ir.MethodRef
}

// CallGraph is the worklist's result: every reachable method plus every
// resolved call edge.
type CallGraph struct {
	Reachable map[ir.MethodRef]bool
	Edges     []Edge
}

// Build runs a class-hierarchy-based worklist starting from entry.
func Build(prog ir.Provider, h classhier.Hierarchy, entry ir.MethodRef) *CallGraph {
	cg := &CallGraph{Reachable: map[ir.MethodRef]bool{entry: true}}
	worklist := []ir.MethodRef{entry}

	for len(worklist) > 0 {
		m := worklist[0]
		worklist = worklist[1:]

		f, ok := prog.Method(m)
		if !ok {
			continue
		}
		for _, s := range f.Stmts {
			call, ok := s.(*ir.InvokeStmt)
			if !ok {
				continue
			}
			for _, t := range resolve(h, call) {
				cg.Edges = append(cg.Edges, Edge{Site: m, Call: call, Target: t})
				if !cg.Reachable[t] {
					cg.Reachable[t] = true
					worklist = append(worklist, t)
				}
			}
		}
	}
	return cg
}

// resolve computes the set of concrete targets a call site may dispatch
// to, given its InvokeKind.
func resolve(h classhier.Hierarchy, call *ir.InvokeStmt) []ir.MethodRef {
	switch call.InvokeKind {
	case ir.InvokeStatic:
		return []ir.MethodRef{call.Callee}

	case ir.InvokeSpecial:
		if t, ok := classhier.Dispatch(h, call.Callee.Class, call.Callee.Sig); ok {
			return []ir.MethodRef{t}
		}
		return nil

	case ir.InvokeVirtual, ir.InvokeInterface:
		seen := make(map[ir.MethodRef]bool)
		var out []ir.MethodRef
		for _, cls := range classhier.TransitiveClosure(h, call.Callee.Class) {
			t, ok := classhier.Dispatch(h, cls, call.Callee.Sig)
			if !ok || seen[t] {
				continue
			}
			seen[t] = true
			out = append(out, t)
		}
		return out

	default:
		return nil
	}
}
