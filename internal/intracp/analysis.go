package intracp

import (
	"statix/internal/dataflow"
	"statix/internal/fact"
	"statix/internal/ir"
	"statix/internal/lattice"
)

// Result is the per-statement fixed point: In/Out CPFacts, keyed by
// statement.
type Result = dataflow.Result[ir.Stmt, *Fact]

// Analyze runs intraprocedural constant propagation over f and returns
// the per-statement In/Out facts.
func Analyze(f *ir.Func) *Result {
	a := &analysis{f: f}
	return dataflow.Solve[ir.Stmt, *Fact](f.CFG.AsGraph(), a)
}

type analysis struct {
	f *ir.Func
}

func (a *analysis) Direction() dataflow.Direction { return dataflow.Forward }

func (a *analysis) NewInitialFact() *Fact { return fact.NewCPFact[*ir.Var]() }

// Boundary: every integer-holding formal parameter starts NAC; everything
// else starts UNDEF.
func (a *analysis) Boundary() *Fact {
	boundary := fact.NewCPFact[*ir.Var]()
	for _, p := range a.f.Params {
		if p.CanHoldInt() {
			boundary.Update(p, lattice.NacVal())
		}
	}
	return boundary
}

func (a *analysis) MeetInto(src, dst *Fact) bool {
	return fact.MeetInto(src, dst)
}

func (a *analysis) Equal(x, y *Fact) bool { return x.Equal(y) }

// Transfer applies the per-statement rule: always copy in -> out, then
// for an AssignStmt to a variable, overwrite the LHS with evaluate(rhs,
// in) (clamped to UNDEF if the LHS can't hold an int). Every other
// statement kind is identity.
func (a *analysis) Transfer(s ir.Stmt, in *Fact) *Fact {
	out := in.Copy()
	assign, ok := s.(*ir.AssignStmt)
	if !ok {
		return out
	}
	var v lattice.Value
	if assign.LHS.CanHoldInt() {
		v = Evaluate(assign.RHS, in)
	} else {
		v = lattice.UndefVal()
	}
	out.Update(assign.LHS, v)
	return out
}
