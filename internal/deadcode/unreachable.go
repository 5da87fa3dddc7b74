package deadcode

import (
	"statix/internal/intracp"
	"statix/internal/ir"
)

// reachableSet walks g from its entry using an explicit stack,
// following edges chosen by follow.
func reachableSet(f *ir.Func, follow func(s ir.Stmt) []ir.Edge) map[ir.Stmt]bool {
	visited := make(map[ir.Stmt]bool)
	stack := []ir.Stmt{f.CFG.Entry}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[n] {
			continue
		}
		visited[n] = true
		for _, e := range follow(n) {
			if !visited[e.To] {
				stack = append(stack, e.To)
			}
		}
	}
	return visited
}

// plainReachable follows every CFG successor edge, ignoring labels.
func plainReachable(f *ir.Func) map[ir.Stmt]bool {
	return reachableSet(f, func(s ir.Stmt) []ir.Edge {
		return f.CFG.Succs(s)
	})
}

// ifFoldedReachable follows only the taken branch of an If whose condition
// the constant-propagation in-fact resolves to a constant.
func ifFoldedReachable(f *ir.Func, cp *intracp.Result) map[ir.Stmt]bool {
	return reachableSet(f, func(s ir.Stmt) []ir.Edge {
		all := f.CFG.Succs(s)
		ifs, ok := s.(*ir.IfStmt)
		if !ok {
			return all
		}
		v := intracp.Evaluate(ifs.Cond, cp.In[s])
		if !v.IsConst() {
			return all
		}
		wantTrue := v.Int() != 0
		var kept []ir.Edge
		for _, e := range all {
			if (wantTrue && e.Kind == ir.EdgeIfTrue) || (!wantTrue && e.Kind == ir.EdgeIfFalse) {
				kept = append(kept, e)
			}
		}
		return kept
	})
}

// switchFoldedReachable follows only the matching case edge (or default)
// of a Switch whose selector resolves to a constant.
func switchFoldedReachable(f *ir.Func, cp *intracp.Result) map[ir.Stmt]bool {
	return reachableSet(f, func(s ir.Stmt) []ir.Edge {
		all := f.CFG.Succs(s)
		sw, ok := s.(*ir.SwitchStmt)
		if !ok {
			return all
		}
		v := cp.In[s].Get(sw.Selector)
		if !v.IsConst() {
			return all
		}
		for _, e := range all {
			if e.Kind == ir.EdgeSwitchCase && e.Case == v.Int() {
				return []ir.Edge{e}
			}
		}
		var def []ir.Edge
		for _, e := range all {
			if e.Kind == ir.EdgeSwitchDefault {
				def = append(def, e)
			}
		}
		return def
	})
}

// Unreachable returns the set of statements that at least one of the
// three reachability passes fails to visit: a statement counts as
// reachable only when every pass reaches it.
func Unreachable(f *ir.Func, cp *intracp.Result) map[ir.Stmt]bool {
	plain := plainReachable(f)
	ifFolded := ifFoldedReachable(f, cp)
	swFolded := switchFoldedReachable(f, cp)

	dead := make(map[ir.Stmt]bool)
	for _, s := range f.CFG.Nodes() {
		if !(plain[s] && ifFolded[s] && swFolded[s]) {
			dead[s] = true
		}
	}
	return dead
}
