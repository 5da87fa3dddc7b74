// Package deadcode implements dead-code detection: an unreachable-code
// pass (control flow folded against constant-propagation facts) and a
// dead-assignment pass (driven by live-variable results), unioned and
// then stripped of the CFG's entry/exit sentinels.
package deadcode

import (
	"statix/internal/dataflow"
	"statix/internal/fact"
	"statix/internal/ir"
)

// LiveSet is the SetFact specialization liveness produces.
type LiveSet = fact.SetFact[*ir.Var]

// LiveResult is the per-statement live-variable fixed point.
type LiveResult = dataflow.Result[ir.Stmt, *LiveSet]

// Liveness runs the backward may-analysis IN[s] = (OUT[s] \ def(s)) ∪
// use(s), OUT[s] = ⋃ IN[succ], with an empty boundary fact at the CFG
// exit. A proper backward SetFact dataflow on the shared worklist
// solver, in the same vein as a used/declared-variable bookkeeping pass
// but generalized to a fixed-point analysis.
func Liveness(f *ir.Func) *LiveResult {
	return dataflow.Solve[ir.Stmt, *LiveSet](f.CFG.AsGraph(), livenessAnalysis{})
}

type livenessAnalysis struct{}

func (livenessAnalysis) Direction() dataflow.Direction { return dataflow.Backward }

func (livenessAnalysis) NewInitialFact() *LiveSet { return fact.NewSetFact[*ir.Var]() }

func (livenessAnalysis) Boundary() *LiveSet { return fact.NewSetFact[*ir.Var]() }

func (livenessAnalysis) MeetInto(src, dst *LiveSet) bool { return dst.Union(src) }

func (livenessAnalysis) Equal(a, b *LiveSet) bool { return a.Equal(b) }

func (livenessAnalysis) Transfer(s ir.Stmt, out *LiveSet) *LiveSet {
	in := out.Copy()
	if d, ok := def(s); ok {
		in.Diff(singleton(d))
	}
	for _, u := range use(s) {
		in.Add(u)
	}
	return in
}

func singleton(v *ir.Var) *LiveSet {
	s := fact.NewSetFact[*ir.Var]()
	s.Add(v)
	return s
}

// def returns the variable a statement assigns, if any.
func def(s ir.Stmt) (*ir.Var, bool) {
	switch st := s.(type) {
	case *ir.AssignStmt:
		return st.LHS, true
	case *ir.InvokeStmt:
		if st.Result != nil {
			return st.Result, true
		}
	case *ir.LoadFieldStmt:
		return st.LHS, true
	case *ir.LoadArrayStmt:
		return st.LHS, true
	}
	return nil, false
}

// use returns the variables a statement reads.
func use(s ir.Stmt) []*ir.Var {
	switch st := s.(type) {
	case *ir.AssignStmt:
		return exprVars(st.RHS)
	case *ir.InvokeStmt:
		vars := make([]*ir.Var, 0, len(st.Args)+1)
		if st.Receiver != nil {
			vars = append(vars, st.Receiver)
		}
		vars = append(vars, st.Args...)
		return vars
	case *ir.LoadFieldStmt:
		if !st.Static && st.Base != nil {
			return []*ir.Var{st.Base}
		}
	case *ir.StoreFieldStmt:
		vars := []*ir.Var{}
		if !st.Static && st.Base != nil {
			vars = append(vars, st.Base)
		}
		if st.RHS != nil {
			vars = append(vars, st.RHS)
		}
		return vars
	case *ir.LoadArrayStmt:
		return []*ir.Var{st.Base, st.Index}
	case *ir.StoreArrayStmt:
		return []*ir.Var{st.Base, st.Index, st.RHS}
	case *ir.IfStmt:
		return exprVars(st.Cond)
	case *ir.SwitchStmt:
		return []*ir.Var{st.Selector}
	case *ir.ReturnStmt:
		if st.Value != nil {
			return []*ir.Var{st.Value}
		}
	}
	return nil
}

func exprVars(e ir.Expr) []*ir.Var {
	switch ex := e.(type) {
	case ir.VarExpr:
		return []*ir.Var{ex.X}
	case ir.BinaryExpr:
		return []*ir.Var{ex.X, ex.Y}
	case ir.CastExpr:
		return []*ir.Var{ex.From}
	default:
		return nil
	}
}
