package ptypes

// PFG is the Pointer Flow Graph: a monotonic directed multigraph over
// Pointers, with a second, independent edge kind for taint-only
// propagation. addEdge/addTFGEdge each report whether the
// edge was new; successor iteration is kept separate per edge kind.
type PFG struct {
	objEdges   map[Pointer]map[Pointer]bool
	taintEdges map[Pointer]map[Pointer]bool
}

// NewPFG returns an empty graph.
func NewPFG() *PFG {
	return &PFG{
		objEdges:   make(map[Pointer]map[Pointer]bool),
		taintEdges: make(map[Pointer]map[Pointer]bool),
	}
}

// AddEdge adds an ordinary (heap-carrying) edge.
func (g *PFG) AddEdge(src, tgt Pointer) bool { return addTo(g.objEdges, src, tgt) }

// AddTFGEdge adds a taint-transfer edge.
func (g *PFG) AddTFGEdge(src, tgt Pointer) bool { return addTo(g.taintEdges, src, tgt) }

func addTo(edges map[Pointer]map[Pointer]bool, src, tgt Pointer) bool {
	succs, ok := edges[src]
	if !ok {
		succs = make(map[Pointer]bool)
		edges[src] = succs
	}
	if succs[tgt] {
		return false
	}
	succs[tgt] = true
	return true
}

// Succs returns src's ordinary-edge successors.
func (g *PFG) Succs(src Pointer) []Pointer { return keysOf(g.objEdges[src]) }

// TaintSuccs returns src's taint-edge successors — iterated separately
// from Succs so plain points-to propagation never has to filter them out.
func (g *PFG) TaintSuccs(src Pointer) []Pointer { return keysOf(g.taintEdges[src]) }

func keysOf(m map[Pointer]bool) []Pointer {
	out := make([]Pointer, 0, len(m))
	for p := range m {
		out = append(out, p)
	}
	return out
}
