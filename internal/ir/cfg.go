package ir

// EdgeKind labels a CFG edge. Only If/Switch statements produce anything
// other than Normal — their edges carry branch labels so the dataflow
// transfers can tell which arm they're on.
type EdgeKind uint8

const (
	EdgeNormal EdgeKind = iota
	EdgeIfTrue
	EdgeIfFalse
	EdgeSwitchCase
	EdgeSwitchDefault
)

// Edge is a directed CFG edge, labeled for If/Switch fan-out.
type Edge struct {
	Kind EdgeKind
	Case int32 // meaningful iff Kind == EdgeSwitchCase
	To   Stmt
}

// CFG is the intraprocedural control-flow graph: a directed graph of
// statements with distinguished Entry/Exit sentinels.
type CFG struct {
	Func  *Func
	Entry Stmt
	Exit  Stmt

	succs map[Stmt][]Edge
	preds map[Stmt][]Stmt
}

func newCFG(f *Func) *CFG {
	return &CFG{
		Func:  f,
		succs: make(map[Stmt][]Edge),
		preds: make(map[Stmt][]Stmt),
	}
}

// AddEdge records a CFG edge from -> to with the given label.
func (g *CFG) AddEdge(from Stmt, kind EdgeKind, caseVal int32, to Stmt) {
	g.succs[from] = append(g.succs[from], Edge{Kind: kind, Case: caseVal, To: to})
	g.preds[to] = append(g.preds[to], from)
}

// Succs returns the labeled outgoing edges of s.
func (g *CFG) Succs(s Stmt) []Edge { return g.succs[s] }

// SuccStmts returns just the successor statements of s, in edge order.
func (g *CFG) SuccStmts(s Stmt) []Stmt {
	edges := g.succs[s]
	out := make([]Stmt, len(edges))
	for i, e := range edges {
		out[i] = e.To
	}
	return out
}

// Preds returns the predecessor statements of s.
func (g *CFG) Preds(s Stmt) []Stmt { return g.preds[s] }

// Nodes returns every statement in the CFG, entry/exit included, ordered
// by statement index.
func (g *CFG) Nodes() []Stmt {
	out := make([]Stmt, 0, len(g.Func.Stmts)+2)
	out = append(out, g.Entry)
	out = append(out, g.Func.Stmts...)
	out = append(out, g.Exit)
	return out
}
