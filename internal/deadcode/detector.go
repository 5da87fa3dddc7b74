package deadcode

import (
	"sort"

	"statix/internal/intracp"
	"statix/internal/ir"
)

// Result bundles the two passes plus their union: two independent
// passes, unioned, then excluding the CFG's entry and exit sentinels.
type Result struct {
	Unreachable     map[ir.Stmt]bool
	DeadAssignments map[ir.Stmt]bool
	// Dead is the sorted union, statement-index order.
	Dead []ir.Stmt
}

// Detect runs both dead-code passes over f, reusing CP and liveness
// results the caller already has (or computes them if nil).
func Detect(f *ir.Func, cp *intracp.Result, live *LiveResult) *Result {
	if cp == nil {
		cp = intracp.Analyze(f)
	}
	if live == nil {
		live = Liveness(f)
	}

	unreachable := Unreachable(f, cp)
	deadAssign := DeadAssignments(f, live)

	union := make(map[ir.Stmt]bool, len(unreachable)+len(deadAssign))
	for s := range unreachable {
		union[s] = true
	}
	for s := range deadAssign {
		union[s] = true
	}
	delete(union, f.CFG.Entry)
	delete(union, f.CFG.Exit)

	dead := make([]ir.Stmt, 0, len(union))
	for s := range union {
		dead = append(dead, s)
	}
	sort.Slice(dead, func(i, j int) bool { return dead[i].Index() < dead[j].Index() })

	return &Result{Unreachable: unreachable, DeadAssignments: deadAssign, Dead: dead}
}
