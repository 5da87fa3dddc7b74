package deadcode

import "statix/internal/ir"

// hasNoSideEffect reports whether evaluating rhs can be skipped without
// observable effect: false for allocations, casts, and
// DIV/REM arithmetic; true otherwise. Field and array reads never reach
// here — they are their own statement kinds, not AssignStmt rvalues.
func hasNoSideEffect(rhs ir.Expr) bool {
	switch ex := rhs.(type) {
	case ir.NewExpr, ir.CastExpr:
		return false
	case ir.BinaryExpr:
		return ex.Op != ir.Div && ex.Op != ir.Rem
	default:
		return true
	}
}

// DeadAssignments returns every AssignStmt whose value is never observed:
// a side-effect-free rvalue assigned to a variable that is not live
// immediately after the statement.
func DeadAssignments(f *ir.Func, live *LiveResult) map[ir.Stmt]bool {
	dead := make(map[ir.Stmt]bool)
	for _, s := range f.Stmts {
		assign, ok := s.(*ir.AssignStmt)
		if !ok {
			continue
		}
		if !hasNoSideEffect(assign.RHS) {
			continue
		}
		if !live.Out[s].Contains(assign.LHS) {
			dead[s] = true
		}
	}
	return dead
}
