package classhier

import "statix/internal/ir"

// Dispatch resolves (cls, subsig) to the concrete method that runs when
// an object of dynamic type cls receives a call on subsig:
// the method declared in cls if present and non-abstract, otherwise the
// same lookup on cls's superclass, otherwise nothing.
func Dispatch(h Hierarchy, cls ir.ClassRef, subsig ir.Subsignature) (ir.MethodRef, bool) {
	for cur := cls; cur != ""; {
		if m, ok := h.DeclaredMethod(cur, subsig); ok && !m.IsAbstract {
			return m.Ref, true
		}
		super, ok := h.SuperClass(cur)
		if !ok {
			break
		}
		cur = super
	}
	return ir.MethodRef{}, false
}

// TransitiveClosure returns cls plus every class reachable by repeatedly
// following direct subclasses, direct subinterfaces and direct
// implementors — the set CHA's virtual/interface resolution ranges over.
func TransitiveClosure(h Hierarchy, start ir.ClassRef) []ir.ClassRef {
	seen := map[ir.ClassRef]bool{start: true}
	queue := []ir.ClassRef{start}
	out := []ir.ClassRef{start}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		next := append(append(append([]ir.ClassRef{}, h.DirectSubclasses(c)...), h.DirectSubinterfaces(c)...), h.DirectImplementors(c)...)
		for _, n := range next {
			if !seen[n] {
				seen[n] = true
				out = append(out, n)
				queue = append(queue, n)
			}
		}
	}
	return out
}
