// Package dataflow implements the generic worklist solver the
// intraprocedural analyses (constant propagation, liveness) are built on
// top of — parameterized by direction, meet and transfer. Interprocedural
// constant propagation and the pointer analysis have enough non-standard
// re-enqueue behavior that they run their own specialized worklists
// instead of this one.
package dataflow

// Direction selects whether Analysis runs forward (CFG successors feed
// IN) or backward (CFG predecessors feed OUT, computed from successors'
// IN).
type Direction uint8

const (
	Forward Direction = iota
	Backward
)

// Graph abstracts over a CFG well enough for Solve to walk it without
// depending on package ir directly — both ir.CFG (via its AsGraph
// adapter in internal/ir/graph_adapter.go) and synthetic test graphs
// satisfy it.
type Graph[N comparable] interface {
	Nodes() []N
	Preds(n N) []N
	Succs(n N) []N
	Entry() N
	Exit() N
}

// Analysis is the per-problem plug-in: the lattice operations and the
// per-statement transfer function. F is the fact type (e.g.
// *fact.CPFact[*ir.Var] or *fact.SetFact[*ir.Var]).
type Analysis[N comparable, F any] interface {
	Direction() Direction

	// NewInitialFact returns the fact used at every non-boundary node
	// before the first transfer runs (all-UNDEF / empty-set).
	NewInitialFact() F

	// Boundary returns the fact fixed at the graph's Entry (forward) or
	// Exit (backward) node.
	Boundary() F

	// MeetInto merges src into dst in place and reports whether dst
	// changed. Facts are pointer-shaped (*fact.CPFact, *fact.SetFact), so
	// "in place" is the natural, allocation-light shape here.
	MeetInto(src, dst F) bool

	// Equal reports whether two facts are the same, used by the solver to
	// decide whether a Transfer result needs to be re-propagated.
	Equal(a, b F) bool

	// Transfer computes a node's output fact from its input fact (for
	// Forward) — for Backward, "input"/"output" are swapped by the
	// solver so Transfer always reads the fact flowing INTO the node in
	// its own direction and produces the fact flowing OUT. The solver
	// itself decides whether the result needs re-propagating, via Equal.
	Transfer(n N, in F) F
}

// Result holds the fixed point: In/Out per node, named from the
// analysis's own direction (In is "upstream" of Out along Direction).
type Result[N comparable, F any] struct {
	In  map[N]F
	Out map[N]F
}

// Solve runs the worklist to a fixed point and returns per-node In/Out.
func Solve[N comparable, F any](g Graph[N], a Analysis[N, F]) *Result[N, F] {
	res := &Result[N, F]{In: map[N]F{}, Out: map[N]F{}}
	nodes := g.Nodes()

	forward := a.Direction() == Forward
	var boundaryNode N
	if forward {
		boundaryNode = g.Entry()
	} else {
		boundaryNode = g.Exit()
	}

	for _, n := range nodes {
		res.In[n] = a.NewInitialFact()
		res.Out[n] = a.NewInitialFact()
	}
	if forward {
		res.In[boundaryNode] = a.Boundary()
	} else {
		res.Out[boundaryNode] = a.Boundary()
	}

	wl := newFIFO(nodes)
	for !wl.empty() {
		n := wl.pop()

		if forward {
			if n != boundaryNode {
				merged := a.NewInitialFact()
				for _, p := range g.Preds(n) {
					a.MeetInto(res.Out[p], merged)
				}
				res.In[n] = merged
			}
			out := a.Transfer(n, res.In[n])
			changed := !a.Equal(out, res.Out[n])
			res.Out[n] = out
			if changed {
				for _, s := range g.Succs(n) {
					wl.push(s)
				}
			}
		} else {
			if n != boundaryNode {
				merged := a.NewInitialFact()
				for _, s := range g.Succs(n) {
					a.MeetInto(res.In[s], merged)
				}
				res.Out[n] = merged
			}
			in := a.Transfer(n, res.Out[n])
			changed := !a.Equal(in, res.In[n])
			res.In[n] = in
			if changed {
				for _, p := range g.Preds(n) {
					wl.push(p)
				}
			}
		}
	}
	return res
}

// fifo is an explicit worklist queue that also suppresses duplicate
// pending entries — any fair order terminates, FIFO-with-
// membership-check is simplest to reason about.
type fifo[N comparable] struct {
	queue   []N
	pending map[N]bool
}

func newFIFO[N comparable](seed []N) *fifo[N] {
	q := &fifo[N]{pending: make(map[N]bool, len(seed))}
	for _, n := range seed {
		q.push(n)
	}
	return q
}

func (q *fifo[N]) push(n N) {
	if q.pending[n] {
		return
	}
	q.pending[n] = true
	q.queue = append(q.queue, n)
}

func (q *fifo[N]) pop() N {
	n := q.queue[0]
	q.queue = q.queue[1:]
	delete(q.pending, n)
	return n
}

func (q *fifo[N]) empty() bool { return len(q.queue) == 0 }
