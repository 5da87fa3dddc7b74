package pta

import "statix/internal/ir"

// CallEdge is one resolved context-sensitive call-graph edge.
type CallEdge struct {
	Kind   ir.InvokeKind
	Site   CSCallSite
	Callee CSMethod
}

// CallGraph is the context-sensitive reachable-method set and edge set
// the PTA solver builds on the fly.
type CallGraph struct {
	reachable map[CSMethod]bool
	edges     map[CSCallSite]map[CSMethod]bool
	edgeList  []CallEdge
}

// NewCallGraph returns an empty call graph.
func NewCallGraph() *CallGraph {
	return &CallGraph{
		reachable: make(map[CSMethod]bool),
		edges:     make(map[CSCallSite]map[CSMethod]bool),
	}
}

// AddReachable marks m reachable, reporting whether it was newly added.
func (g *CallGraph) AddReachable(m CSMethod) bool {
	if g.reachable[m] {
		return false
	}
	g.reachable[m] = true
	return true
}

// AddEdge records a call edge, reporting whether it was newly added.
func (g *CallGraph) AddEdge(e CallEdge) bool {
	callees, ok := g.edges[e.Site]
	if !ok {
		callees = make(map[CSMethod]bool)
		g.edges[e.Site] = callees
	}
	if callees[e.Callee] {
		return false
	}
	callees[e.Callee] = true
	g.edgeList = append(g.edgeList, e)
	return true
}

// Reachable returns every context-sensitive method marked reachable.
func (g *CallGraph) Reachable() []CSMethod {
	out := make([]CSMethod, 0, len(g.reachable))
	for m := range g.reachable {
		out = append(out, m)
	}
	return out
}

// Edges returns every call edge added, in insertion order.
func (g *CallGraph) Edges() []CallEdge { return g.edgeList }
