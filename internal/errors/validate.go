package errors

import "statix/internal/ir"

// Validate walks every statement of every Func a Provider hands back for
// refs and reports the shapes the analyses can't make sense of: a
// BinaryExpr carrying an operator variant outside ir's declared set, and
// a handful of structurally required fields left nil. It does not
// re-derive anything CHA/PTA/CP already check (unresolved callees,
// missing hierarchy entries); those are silently skipped at their own
// call sites instead, since a missing class is expected input, not a
// malformed program.
func Validate(prog ir.Provider, refs []ir.MethodRef) []*AnalysisError {
	var errs []*AnalysisError
	for _, ref := range refs {
		f, ok := prog.Method(ref)
		if !ok {
			continue
		}
		for _, s := range f.Stmts {
			errs = append(errs, validateStmt(ref, s)...)
		}
	}
	return errs
}

func validateStmt(m ir.MethodRef, s ir.Stmt) []*AnalysisError {
	var errs []*AnalysisError
	report := func(code Code, msg string) {
		errs = append(errs, &AnalysisError{Level: Error, Code: code, Message: msg, Method: m, Stmt: s.Index()})
	}

	switch st := s.(type) {
	case *ir.AssignStmt:
		if st.LHS == nil {
			report(ErrMalformedIR, "assignment with no left-hand side")
		}
		if bin, ok := st.RHS.(ir.BinaryExpr); ok {
			if !validBinOp(bin.Op) {
				report(ErrUnknownOperator, "binary expression uses an unrecognized operator variant")
			}
		}
	case *ir.InvokeStmt:
		if st.InvokeKind != ir.InvokeStatic && st.Receiver == nil {
			report(ErrMalformedIR, "non-static invoke with no receiver")
		}
	case *ir.LoadFieldStmt:
		if !st.Static && st.Base == nil {
			report(ErrMalformedIR, "instance field load with no base")
		}
	case *ir.StoreFieldStmt:
		if !st.Static && st.Base == nil {
			report(ErrMalformedIR, "instance field store with no base")
		}
	case *ir.LoadArrayStmt:
		if st.Base == nil || st.Index == nil {
			report(ErrMalformedIR, "array load with no base or index")
		}
	case *ir.StoreArrayStmt:
		if st.Base == nil || st.Index == nil {
			report(ErrMalformedIR, "array store with no base or index")
		}
	case *ir.IfStmt:
		if st.Cond == nil {
			report(ErrMalformedIR, "if statement with no condition")
		}
	}
	return errs
}

func validBinOp(op ir.BinOp) bool {
	return op <= ir.Ge
}
