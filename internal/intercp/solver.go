// Package intercp implements interprocedural constant propagation (spec
// §4.8): intra-CP lifted over the ICFG with field/array awareness, fed by
// a finished pointer-analysis result. It runs its own worklist rather
// than internal/dataflow's — the call-edge/return-edge contributions and
// the explicit re-enqueue on field/array stores have no place in that
// solver's uniform "meet over CFG preds" model (see internal/dataflow's
// package doc).
package intercp

import (
	"statix/internal/dataflow"
	"statix/internal/fact"
	"statix/internal/intracp"
	"statix/internal/ir"
	"statix/internal/lattice"
	"statix/internal/pta"
)

// Fact is the CPFact specialization intercp works with — the same shape
// intracp uses, since nothing about the lattice changes, only how a
// fact's value for a field/array load gets computed.
type Fact = fact.CPFact[*ir.Var]

// Result is the fixed point keyed by statement across every reachable
// method; statement identity (each *ir.Var's owning Stmt pointer) is
// already globally unique, so no composite ICFG node type is needed.
type Result = dataflow.Result[ir.Stmt, *Fact]

// Run lifts constant propagation across the whole call graph PTA
// resolved from entry, field/array-aware via the alias map and static
// field index built from res.
func Run(prog ir.Provider, res *pta.Result, entry ir.MethodRef) *Result {
	s := newSolver(prog, res, entry)
	s.drain()
	return &Result{In: s.in, Out: s.out}
}

type solver struct {
	res       *pta.Result
	aliasMap  *AliasMap
	idx       *FieldIndex
	methods   map[ir.MethodRef]*ir.Func
	owner     map[ir.Stmt]*ir.Func
	calleesOf map[ir.Stmt][]ir.MethodRef
	callersOf map[ir.MethodRef][]ir.Stmt
	entryFunc *ir.Func

	in, out map[ir.Stmt]*Fact

	queue   []ir.Stmt
	pending map[ir.Stmt]bool
}

func newSolver(prog ir.Provider, res *pta.Result, entry ir.MethodRef) *solver {
	methodSet := map[ir.MethodRef]bool{entry: true}
	for _, m := range res.CallGraph.Reachable() {
		methodSet[m.Method] = true
	}

	calleesOf := make(map[ir.Stmt][]ir.MethodRef)
	calleeSeen := make(map[ir.Stmt]map[ir.MethodRef]bool)
	callersOf := make(map[ir.MethodRef][]ir.Stmt)
	callerSeen := make(map[ir.MethodRef]map[ir.Stmt]bool)
	for _, e := range res.CallGraph.Edges() {
		call := ir.Stmt(e.Site.Call)
		callee := e.Callee.Method
		if calleeSeen[call] == nil {
			calleeSeen[call] = make(map[ir.MethodRef]bool)
		}
		if !calleeSeen[call][callee] {
			calleeSeen[call][callee] = true
			calleesOf[call] = append(calleesOf[call], callee)
		}
		if callerSeen[callee] == nil {
			callerSeen[callee] = make(map[ir.Stmt]bool)
		}
		if !callerSeen[callee][call] {
			callerSeen[callee][call] = true
			callersOf[callee] = append(callersOf[callee], call)
		}
	}

	methods := make(map[ir.MethodRef]*ir.Func)
	var flist []*ir.Func
	for ref := range methodSet {
		f, ok := prog.Method(ref)
		if !ok {
			continue
		}
		methods[ref] = f
		flist = append(flist, f)
	}

	owner := make(map[ir.Stmt]*ir.Func)
	in := make(map[ir.Stmt]*Fact)
	out := make(map[ir.Stmt]*Fact)
	for _, f := range flist {
		for _, n := range f.CFG.Nodes() {
			owner[n] = f
			in[n] = fact.NewCPFact[*ir.Var]()
			out[n] = fact.NewCPFact[*ir.Var]()
		}
	}

	s := &solver{
		res:       res,
		aliasMap:  BuildAliasMap(res),
		idx:       BuildFieldIndex(flist),
		methods:   methods,
		owner:     owner,
		calleesOf: calleesOf,
		callersOf: callersOf,
		entryFunc: methods[entry],
		in:        in,
		out:       out,
		pending:   make(map[ir.Stmt]bool),
	}

	if s.entryFunc != nil {
		boundary := fact.NewCPFact[*ir.Var]()
		for _, p := range s.entryFunc.Params {
			if p.CanHoldInt() {
				boundary.Update(p, lattice.NacVal())
			}
		}
		s.in[s.entryFunc.CFG.Entry] = boundary
	}
	for _, f := range flist {
		for _, n := range f.CFG.Nodes() {
			s.push(n)
		}
	}
	return s
}

func (s *solver) push(n ir.Stmt) {
	if s.pending[n] {
		return
	}
	s.pending[n] = true
	s.queue = append(s.queue, n)
}

func (s *solver) pop() ir.Stmt {
	n := s.queue[0]
	s.queue = s.queue[1:]
	delete(s.pending, n)
	return n
}

func (s *solver) drain() {
	for len(s.queue) > 0 {
		s.process(s.pop())
	}
}

func (s *solver) process(n ir.Stmt) {
	f := s.owner[n]
	rootEntry := f == s.entryFunc && n == f.CFG.Entry

	var newIn *Fact
	switch {
	case rootEntry:
		newIn = s.in[n] // fixed boundary, never recomputed
	case n == f.CFG.Entry:
		merged := fact.NewCPFact[*ir.Var]()
		for _, callSite := range s.callersOf[f.Ref] {
			if call, ok := callSite.(*ir.InvokeStmt); ok {
				fact.MeetInto(s.callEdgeFact(call, f), merged)
			}
		}
		newIn = merged
	default:
		merged := fact.NewCPFact[*ir.Var]()
		for _, p := range f.CFG.Preds(n) {
			if call, ok := p.(*ir.InvokeStmt); ok {
				fact.MeetInto(s.callToReturnFact(call), merged)
				for _, calleeRef := range s.calleesOf[ir.Stmt(call)] {
					if callee, ok2 := s.methods[calleeRef]; ok2 {
						fact.MeetInto(s.returnEdgeFact(call, callee), merged)
					}
				}
				continue
			}
			fact.MeetInto(s.out[p], merged)
		}
		newIn = merged
	}

	inChanged := !newIn.Equal(s.in[n])
	s.in[n] = newIn

	newOut := s.transfer(n, newIn)
	outChanged := !newOut.Equal(s.out[n])
	s.out[n] = newOut

	if outChanged {
		for _, succ := range f.CFG.SuccStmts(n) {
			s.push(succ)
		}
		if n == f.CFG.Exit {
			for _, callSite := range s.callersOf[f.Ref] {
				if call, ok := callSite.(*ir.InvokeStmt); ok {
					s.push(s.normalSucc(s.owner[call], call))
				}
			}
		}
	}

	if call, ok := n.(*ir.InvokeStmt); ok && inChanged {
		for _, calleeRef := range s.calleesOf[ir.Stmt(call)] {
			if callee, ok2 := s.methods[calleeRef]; ok2 {
				s.push(callee.CFG.Entry)
			}
		}
	}

	switch st := n.(type) {
	case *ir.StoreFieldStmt:
		for _, load := range s.relatedInstanceLoads(st) {
			s.push(load)
		}
	case *ir.StoreArrayStmt:
		aliasSet := toSet(s.aliasMap.Of(st.Base))
		for _, load := range s.idx.ArrayLoads() {
			if aliasSet[load.Base] {
				s.push(load)
			}
		}
	}
}

func (s *solver) normalSucc(f *ir.Func, call *ir.InvokeStmt) ir.Stmt {
	succs := f.CFG.SuccStmts(call)
	if len(succs) == 0 {
		return f.CFG.Exit
	}
	return succs[0]
}

// transfer applies the intraprocedural constant-propagation rule to
// ordinary statements plus the field and array load rules; stores never
// change their own fact (the change is felt by the loads they
// re-enqueue).
func (s *solver) transfer(n ir.Stmt, in *Fact) *Fact {
	switch st := n.(type) {
	case *ir.AssignStmt:
		out := in.Copy()
		v := lattice.UndefVal()
		if st.LHS.CanHoldInt() {
			v = intracp.Evaluate(st.RHS, in)
		}
		out.Update(st.LHS, v)
		return out
	case *ir.LoadFieldStmt:
		out := in.Copy()
		v := lattice.UndefVal()
		if st.LHS.CanHoldInt() {
			v = s.fieldLoadValue(st)
		}
		out.Update(st.LHS, v)
		return out
	case *ir.LoadArrayStmt:
		out := in.Copy()
		v := lattice.UndefVal()
		if st.LHS.CanHoldInt() {
			v = s.arrayLoadValue(st, in)
		}
		out.Update(st.LHS, v)
		return out
	default:
		return in.Copy()
	}
}

func (s *solver) fieldLoadValue(load *ir.LoadFieldStmt) lattice.Value {
	v := lattice.UndefVal()
	if load.Static {
		for _, store := range s.idx.StaticStores(load.Class, load.Field) {
			v = lattice.Meet(v, s.in[store].Get(store.RHS))
		}
		return v
	}
	aliasSet := toSet(s.aliasMap.Of(load.Base))
	for _, store := range s.idx.InstanceStores(load.Field) {
		if aliasSet[store.Base] {
			v = lattice.Meet(v, s.in[store].Get(store.RHS))
		}
	}
	return v
}

func (s *solver) arrayLoadValue(load *ir.LoadArrayStmt, in *Fact) lattice.Value {
	v := lattice.UndefVal()
	aliasSet := toSet(s.aliasMap.Of(load.Base))
	idxVal := in.Get(load.Index)
	for _, store := range s.idx.ArrayStores() {
		if !aliasSet[store.Base] {
			continue
		}
		storeIdx := s.in[store].Get(store.Index)
		if !compatIndex(idxVal, storeIdx) {
			continue
		}
		v = lattice.Meet(v, s.in[store].Get(store.RHS))
	}
	return v
}

// compatIndex: false if either side is UNDEF; equal iff both CONST and
// equal; otherwise (one NAC) true — the array-cell merge is intentionally
// coarser than the field case, since indices aren't named.
func compatIndex(a, b lattice.Value) bool {
	if a.IsUndef() || b.IsUndef() {
		return false
	}
	if a.IsConst() && b.IsConst() {
		return a.Int() == b.Int()
	}
	return true
}

func (s *solver) relatedInstanceLoads(store *ir.StoreFieldStmt) []*ir.LoadFieldStmt {
	if store.Static {
		return s.idx.StaticLoads(store.Class, store.Field)
	}
	aliasSet := toSet(s.aliasMap.Of(store.Base))
	var out []*ir.LoadFieldStmt
	for _, load := range s.idx.InstanceLoads(store.Field) {
		if aliasSet[load.Base] {
			out = append(out, load)
		}
	}
	return out
}

// callEdgeFact is the CallEdge transfer: a fresh fact binding each
// integer-holding parameter of callee to the matching argument's value
// at the call site.
func (s *solver) callEdgeFact(call *ir.InvokeStmt, callee *ir.Func) *Fact {
	out := fact.NewCPFact[*ir.Var]()
	in := s.in[call]
	n := len(call.Args)
	if len(callee.Params) < n {
		n = len(callee.Params)
	}
	for i := 0; i < n; i++ {
		p := callee.Params[i]
		if p.CanHoldInt() {
			out.Update(p, in.Get(call.Args[i]))
		}
	}
	return out
}

// callToReturnFact is the CallToReturnEdge transfer: a clone of the call
// statement's own out-fact with its result variable cleared (its value
// arrives separately, via returnEdgeFact).
func (s *solver) callToReturnFact(call *ir.InvokeStmt) *Fact {
	out := s.out[call].Copy()
	if call.Result != nil {
		out.Update(call.Result, lattice.UndefVal())
	}
	return out
}

// returnEdgeFact is the ReturnEdge transfer: meet every return variable's
// value (read off the callee exit's in-fact) and bind the call site's
// result variable to it; an untracked or void result drops the edge.
func (s *solver) returnEdgeFact(call *ir.InvokeStmt, callee *ir.Func) *Fact {
	out := fact.NewCPFact[*ir.Var]()
	if call.Result == nil || !call.Result.CanHoldInt() {
		return out
	}
	exitIn := s.in[callee.CFG.Exit]
	v := lattice.UndefVal()
	for _, rv := range callee.ReturnVars() {
		v = lattice.Meet(v, exitIn.Get(rv))
	}
	out.Update(call.Result, v)
	return out
}

func toSet(vars []*ir.Var) map[*ir.Var]bool {
	m := make(map[*ir.Var]bool, len(vars))
	for _, v := range vars {
		m[v] = true
	}
	return m
}
