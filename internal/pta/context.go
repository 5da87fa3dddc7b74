// Package pta implements the context-sensitive pointer analysis: an
// on-the-fly worklist solver built on internal/ptypes's PFG primitives
// and internal/classhier's dispatch, plus a taint overlay wired through
// internal/taint's configuration.
package pta

import (
	"strconv"

	"statix/internal/heap"
	"statix/internal/ir"
	"statix/internal/ptypes"
)

// CSMethod is a context-sensitive method: a reachable unit of the
// call graph.
type CSMethod struct {
	Ctx    ptypes.Context
	Method ir.MethodRef
}

// CSCallSite is a context-sensitive call site.
type CSCallSite struct {
	Ctx    ptypes.Context
	Caller ir.MethodRef
	Call   *ir.InvokeStmt
}

func callSiteToken(cs CSCallSite) string {
	return cs.Caller.String() + "#" + strconv.Itoa(cs.Call.Index())
}

// Selector decides context sensitivity, delegated out of the solver. The
// solver treats contexts opaquely; termination relies on Selector
// producing a finite context set for a finite program.
type Selector interface {
	EmptyContext() ptypes.Context
	// SelectHeapContext picks the heap context for an object allocated
	// by a (already context-sensitive) method.
	SelectHeapContext(method CSMethod, obj heap.Obj) ptypes.Context
	// SelectContext picks the callee context for a static call.
	SelectContext(callSite CSCallSite, callee ir.MethodRef) ptypes.Context
	// SelectContextInstance picks the callee context for a call with a
	// receiver (special/virtual/interface).
	SelectContextInstance(callSite CSCallSite, recvObj ptypes.CSObj, callee ir.MethodRef) ptypes.Context
}

// Insensitive is emptyContext() always — no context sensitivity.
type Insensitive struct{}

func (Insensitive) EmptyContext() ptypes.Context { return ptypes.Empty }
func (Insensitive) SelectHeapContext(CSMethod, heap.Obj) ptypes.Context {
	return ptypes.Empty
}
func (Insensitive) SelectContext(CSCallSite, ir.MethodRef) ptypes.Context { return ptypes.Empty }
func (Insensitive) SelectContextInstance(CSCallSite, ptypes.CSObj, ir.MethodRef) ptypes.Context {
	return ptypes.Empty
}

// KCallSite is k-call-site sensitivity: context = the trailing k call
// sites on the path to this method, independent of the receiver.
type KCallSite struct{ K int }

func (s KCallSite) EmptyContext() ptypes.Context { return ptypes.Empty }
func (s KCallSite) SelectHeapContext(m CSMethod, _ heap.Obj) ptypes.Context {
	return m.Ctx
}
func (s KCallSite) SelectContext(cs CSCallSite, _ ir.MethodRef) ptypes.Context {
	return ptypes.Extend(cs.Ctx, callSiteToken(cs), s.K)
}
func (s KCallSite) SelectContextInstance(cs CSCallSite, _ ptypes.CSObj, _ ir.MethodRef) ptypes.Context {
	return ptypes.Extend(cs.Ctx, callSiteToken(cs), s.K)
}

// KObject is k-object sensitivity: context = the trailing k receiver
// objects leading to this method; a new object's heap context is the
// allocating method's own context.
type KObject struct{ K int }

func (s KObject) EmptyContext() ptypes.Context { return ptypes.Empty }
func (s KObject) SelectHeapContext(m CSMethod, _ heap.Obj) ptypes.Context {
	return m.Ctx
}
func (s KObject) SelectContext(cs CSCallSite, _ ir.MethodRef) ptypes.Context {
	return cs.Ctx
}
func (s KObject) SelectContextInstance(_ CSCallSite, recvObj ptypes.CSObj, _ ir.MethodRef) ptypes.Context {
	return ptypes.Extend(recvObj.HeapCtx, recvObj.Obj.String(), s.K)
}
