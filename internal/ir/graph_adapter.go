package ir

import "statix/internal/dataflow"

// graphView adapts *CFG to dataflow.Graph[Stmt]. Kept as a thin adapter
// rather than reshaping CFG's own method set, since CFG.Succs already has
// a more specific, label-carrying meaning (used directly by deadcode's
// branch folding) that dataflow.Graph doesn't need.
type graphView struct {
	cfg *CFG
}

// AsGraph exposes the CFG to the generic dataflow solver.
func (g *CFG) AsGraph() dataflow.Graph[Stmt] { return graphView{cfg: g} }

func (v graphView) Nodes() []Stmt      { return v.cfg.Nodes() }
func (v graphView) Preds(n Stmt) []Stmt { return v.cfg.Preds(n) }
func (v graphView) Succs(n Stmt) []Stmt { return v.cfg.SuccStmts(n) }
func (v graphView) Entry() Stmt         { return v.cfg.Entry }
func (v graphView) Exit() Stmt          { return v.cfg.Exit }
