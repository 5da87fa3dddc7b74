package pta

import (
	"statix/internal/classhier"
	"statix/internal/heap"
	"statix/internal/ir"
	"statix/internal/ptypes"
	"statix/internal/taint"
)

// Solver runs the fixed-point pointer-analysis worklist, with the taint
// overlay wired directly into method/call processing — both share the
// same PFG and worklist, so the overlay rides the same fixed point
// instead of its own pass.
type Solver struct {
	prog  ir.Provider
	hier  classhier.Hierarchy
	heap  heap.Model
	sel   Selector
	taint *taint.Config

	mgr      *ptypes.CSManager
	pfg      *ptypes.PFG
	cg       *CallGraph
	taintMgr *taint.Manager

	worklist []workItem
}

type workItem struct {
	p    ptypes.Pointer
	objs []ptypes.CSObj
}

// New builds a solver ready to Run from entry.
func New(prog ir.Provider, hier classhier.Hierarchy, heapModel heap.Model, sel Selector, cfg *taint.Config) *Solver {
	if cfg == nil {
		cfg = taint.NewConfig(nil, nil, nil)
	}
	return &Solver{
		prog:     prog,
		hier:     hier,
		heap:     heapModel,
		sel:      sel,
		taint:    cfg,
		mgr:      ptypes.NewCSManager(),
		pfg:      ptypes.NewPFG(),
		cg:       NewCallGraph(),
		taintMgr: taint.NewManager(),
	}
}

// Run seeds (emptyContext, entry) and drains the worklist to a fixed
// point.
func (s *Solver) Run(entry ir.MethodRef) *Result {
	csEntry := CSMethod{Ctx: s.sel.EmptyContext(), Method: entry}
	if s.cg.AddReachable(csEntry) {
		s.processMethod(csEntry)
	}
	s.drain()
	return &Result{
		Manager:   s.mgr,
		PFG:       s.pfg,
		CallGraph: s.cg,
		TaintMgr:  s.taintMgr,
		Config:    s.taint,
		Prog:      s.prog,
	}
}

func (s *Solver) enqueue(p ptypes.Pointer, objs []ptypes.CSObj) {
	if len(objs) == 0 {
		return
	}
	s.worklist = append(s.worklist, workItem{p: p, objs: objs})
}

func (s *Solver) drain() {
	for len(s.worklist) > 0 {
		item := s.worklist[0]
		s.worklist = s.worklist[1:]

		delta := s.propagate(item.p, item.objs)
		if len(delta) == 0 {
			continue
		}

		taintObjs, heapObjs := partition(delta)
		if len(taintObjs) > 0 {
			for _, succ := range s.pfg.TaintSuccs(item.p) {
				s.enqueue(succ, taintObjs)
			}
		}

		if csvar, ok := item.p.(*ptypes.CSVar); ok {
			for _, obj := range heapObjs {
				s.processFieldsAndArrays(csvar, obj)
				s.processCall(csvar, obj)
			}
		}
	}
}

// propagate commits pts's new members into p and pushes them along p's
// object-edge successors.
func (s *Solver) propagate(p ptypes.Pointer, pts []ptypes.CSObj) []ptypes.CSObj {
	delta := p.PTS().Diff(pts)
	if len(delta) == 0 {
		return nil
	}
	p.PTS().AddAll(delta)
	for _, succ := range s.pfg.Succs(p) {
		s.enqueue(succ, delta)
	}
	return delta
}

func partition(delta []ptypes.CSObj) (taintObjs, heapObjs []ptypes.CSObj) {
	for _, o := range delta {
		if taint.IsTaint(o.Obj) {
			taintObjs = append(taintObjs, o)
		} else {
			heapObjs = append(heapObjs, o)
		}
	}
	return
}

// addPFGEdge adds an object edge, seeding tgt with src's current PTS if
// the edge is new and src already has contents.
func (s *Solver) addPFGEdge(src, tgt ptypes.Pointer) bool {
	isNew := s.pfg.AddEdge(src, tgt)
	if isNew && src.PTS().Len() > 0 {
		s.enqueue(tgt, src.PTS().Objects())
	}
	return isNew
}

// addTaintEdge adds a taint-transfer edge, seeding tgt with only the
// taint-tagged subset of src's PTS.
func (s *Solver) addTaintEdge(src, tgt ptypes.Pointer) bool {
	isNew := s.pfg.AddTFGEdge(src, tgt)
	if isNew {
		taintObjs, _ := partition(src.PTS().Objects())
		if len(taintObjs) > 0 {
			s.enqueue(tgt, taintObjs)
		}
	}
	return isNew
}

// processMethod wires the PFG edges and worklist seeds a newly
// reachable CS method contributes at method-entry.
func (s *Solver) processMethod(m CSMethod) {
	f, ok := s.prog.Method(m.Method)
	if !ok {
		return
	}
	for _, stmt := range f.Stmts {
		switch st := stmt.(type) {
		case *ir.AssignStmt:
			s.processAssign(m, st)
		case *ir.LoadFieldStmt:
			if st.Static {
				src := s.mgr.StaticFieldPtr(st.Class, st.Field)
				dst := s.mgr.VarPtr(m.Ctx, st.LHS)
				s.addPFGEdge(src, dst)
			}
		case *ir.StoreFieldStmt:
			if st.Static {
				src := s.mgr.VarPtr(m.Ctx, st.RHS)
				dst := s.mgr.StaticFieldPtr(st.Class, st.Field)
				s.addPFGEdge(src, dst)
			}
		case *ir.InvokeStmt:
			if st.InvokeKind == ir.InvokeStatic {
				s.handleStaticInvoke(m, st)
			}
		}
	}
}

func (s *Solver) processAssign(m CSMethod, st *ir.AssignStmt) {
	switch rhs := st.RHS.(type) {
	case ir.NewExpr:
		obj := s.heap.Alloc(m.Method, st.Index(), rhs.Class)
		hc := s.sel.SelectHeapContext(m, obj)
		csObj := ptypes.CSObj{HeapCtx: hc, Obj: obj}
		lhs := s.mgr.VarPtr(m.Ctx, st.LHS)
		s.enqueue(lhs, []ptypes.CSObj{csObj})
	case ir.VarExpr:
		src := s.mgr.VarPtr(m.Ctx, rhs.X)
		dst := s.mgr.VarPtr(m.Ctx, st.LHS)
		s.addPFGEdge(src, dst)
	case ir.CastExpr:
		src := s.mgr.VarPtr(m.Ctx, rhs.From)
		dst := s.mgr.VarPtr(m.Ctx, st.LHS)
		s.addPFGEdge(src, dst)
	}
}

// handleStaticInvoke resolves a static call's target, checks it against
// the taint-source configuration, and hands off to handleCall (spec
// §4.6 table row "static invoke").
func (s *Solver) handleStaticInvoke(m CSMethod, call *ir.InvokeStmt) {
	callee := call.Callee
	csCallSite := CSCallSite{Ctx: m.Ctx, Caller: m.Method, Call: call}
	s.checkTaintSource(m.Ctx, csCallSite, call, callee)

	calleeCtx := s.sel.SelectContext(csCallSite, callee)
	csCallee := CSMethod{Ctx: calleeCtx, Method: callee}
	s.transferTaint(m.Ctx, call, callee)
	s.handleCall(call, csCallSite, csCallee)
}

// processFieldsAndArrays lazily materializes instance-field and
// array-cell PFG edges once csvar's PTS gains obj.
func (s *Solver) processFieldsAndArrays(csvar *ptypes.CSVar, obj ptypes.CSObj) {
	f := csvar.Var.Method
	if f == nil {
		return
	}
	for _, stmt := range f.Stmts {
		switch st := stmt.(type) {
		case *ir.StoreFieldStmt:
			if !st.Static && st.Base == csvar.Var {
				src := s.mgr.VarPtr(csvar.Ctx, st.RHS)
				dst := s.mgr.InstanceFieldPtr(obj, st.Field)
				s.addPFGEdge(src, dst)
			}
		case *ir.LoadFieldStmt:
			if !st.Static && st.Base == csvar.Var {
				src := s.mgr.InstanceFieldPtr(obj, st.Field)
				dst := s.mgr.VarPtr(csvar.Ctx, st.LHS)
				s.addPFGEdge(src, dst)
			}
		case *ir.StoreArrayStmt:
			if st.Base == csvar.Var {
				src := s.mgr.VarPtr(csvar.Ctx, st.RHS)
				dst := s.mgr.ArrayPtr(obj)
				s.addPFGEdge(src, dst)
			}
		case *ir.LoadArrayStmt:
			if st.Base == csvar.Var {
				src := s.mgr.ArrayPtr(obj)
				dst := s.mgr.VarPtr(csvar.Ctx, st.LHS)
				s.addPFGEdge(src, dst)
			}
		}
	}
}

// processCall resolves every non-static invoke on csvar once its PTS
// gains obj, seeding the callee's this-pointer.
func (s *Solver) processCall(csvar *ptypes.CSVar, obj ptypes.CSObj) {
	f := csvar.Var.Method
	if f == nil {
		return
	}
	for _, stmt := range f.Stmts {
		call, ok := stmt.(*ir.InvokeStmt)
		if !ok || call.InvokeKind == ir.InvokeStatic || call.Receiver != csvar.Var {
			continue
		}
		target, ok := classhier.Dispatch(s.hier, obj.Obj.Declared, call.Callee.Sig)
		if !ok {
			continue
		}

		csCallSite := CSCallSite{Ctx: csvar.Ctx, Caller: f.Ref, Call: call}
		s.checkTaintSource(csvar.Ctx, csCallSite, call, target)

		calleeCtx := s.sel.SelectContextInstance(csCallSite, obj, target)
		csCallee := CSMethod{Ctx: calleeCtx, Method: target}

		if calleeFunc, ok := s.prog.Method(target); ok && calleeFunc.This != nil {
			thisPtr := s.mgr.VarPtr(calleeCtx, calleeFunc.This)
			s.enqueue(thisPtr, []ptypes.CSObj{obj})
		}

		s.transferTaint(csvar.Ctx, call, target)
		s.handleCall(call, csCallSite, csCallee)
	}
}

// handleCall adds the call edge and, if new, binds arguments/returns and
// marks the callee reachable.
func (s *Solver) handleCall(call *ir.InvokeStmt, csCallSite CSCallSite, csCallee CSMethod) {
	edge := CallEdge{Kind: call.InvokeKind, Site: csCallSite, Callee: csCallee}
	if !s.cg.AddEdge(edge) {
		return
	}
	if s.cg.AddReachable(csCallee) {
		s.processMethod(csCallee)
	}

	calleeFunc, ok := s.prog.Method(csCallee.Method)
	if !ok {
		return
	}
	for i, arg := range call.Args {
		if i >= len(calleeFunc.Params) {
			break
		}
		argPtr := s.mgr.VarPtr(csCallSite.Ctx, arg)
		paramPtr := s.mgr.VarPtr(csCallee.Ctx, calleeFunc.Params[i])
		s.addPFGEdge(argPtr, paramPtr)
	}
	if call.Result != nil {
		for _, rv := range calleeFunc.ReturnVars() {
			retPtr := s.mgr.VarPtr(csCallee.Ctx, rv)
			resultPtr := s.mgr.VarPtr(csCallSite.Ctx, call.Result)
			s.addPFGEdge(retPtr, resultPtr)
		}
	}
}

// checkTaintSource synthesizes a taint object at call if its target
// method is a configured source.
func (s *Solver) checkTaintSource(callerCtx ptypes.Context, csCallSite CSCallSite, call *ir.InvokeStmt, target ir.MethodRef) {
	src, ok := s.taint.IsSource(target)
	if !ok || call.Result == nil {
		return
	}
	obj := s.taintMgr.MakeTaint(csCallSite.Caller, call.Index(), src.Type)
	csObj := ptypes.CSObj{HeapCtx: ptypes.Empty, Obj: obj}
	lhs := s.mgr.VarPtr(callerCtx, call.Result)
	s.enqueue(lhs, []ptypes.CSObj{csObj})
}

// transferTaint wires any configured transfer rules for a call into
// taint-transfer PFG edges.
func (s *Solver) transferTaint(ctx ptypes.Context, call *ir.InvokeStmt, target ir.MethodRef) {
	for _, tr := range s.taint.TransfersFor(target) {
		from := s.resolveTaintEndpoint(ctx, call, tr.From)
		to := s.resolveTaintEndpoint(ctx, call, tr.To)
		if from == nil || to == nil {
			continue
		}
		s.addTaintEdge(from, to)
	}
}

func (s *Solver) resolveTaintEndpoint(ctx ptypes.Context, call *ir.InvokeStmt, idx int) ptypes.Pointer {
	switch {
	case idx == taint.Result:
		if call.Result == nil {
			return nil
		}
		return s.mgr.VarPtr(ctx, call.Result)
	case idx == taint.Base:
		if call.Receiver == nil {
			return nil
		}
		return s.mgr.VarPtr(ctx, call.Receiver)
	case idx >= 0 && idx < len(call.Args):
		return s.mgr.VarPtr(ctx, call.Args[idx])
	default:
		return nil
	}
}
