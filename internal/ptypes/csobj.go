package ptypes

import "statix/internal/heap"

// CSObj is a context-sensitive heap object: a heap.Obj paired with the
// heap context its allocation site was analyzed under. A plain
// comparable struct — Go's built-in struct equality already gives
// exactly one canonical identity per (context, object) pair, without a
// separate interning map (unlike Pointers below, whose PTS is mutable
// shared state and does need one).
type CSObj struct {
	HeapCtx Context
	Obj     heap.Obj
}

func (o CSObj) String() string { return o.HeapCtx.String() + "::" + o.Obj.String() }
