package ir

import (
	"fmt"
	"strings"
)

// PrintFunc renders a Func's statements in source order, one per line,
// prefixed with the statement's index — the same ordinal used for
// deterministic dead-code output. Grounded on the
// teacher's ir.Print pretty-printer: a pure, dependency-free text dump
// used for debugging and golden-style tests.
func PrintFunc(f *Func) string {
	var b strings.Builder
	fmt.Fprintf(&b, "func %s(", f.Ref)
	names := make([]string, len(f.Params))
	for i, p := range f.Params {
		names[i] = p.Name + ":" + p.Type.String()
	}
	b.WriteString(strings.Join(names, ", "))
	fmt.Fprintf(&b, ") %s {\n", f.RetType)
	for _, s := range f.Stmts {
		fmt.Fprintf(&b, "  %2d: %s\n", s.Index(), StmtString(s))
	}
	b.WriteString("}\n")
	return b.String()
}

// StmtString renders a single statement without control-flow successors
// (those live on the CFG, not the statement).
func StmtString(s Stmt) string {
	switch st := s.(type) {
	case *AssignStmt:
		return fmt.Sprintf("%s = %s", st.LHS, ExprString(st.RHS))
	case *InvokeStmt:
		return invokeString(st)
	case *LoadFieldStmt:
		if st.Static {
			return fmt.Sprintf("%s = %s.%s", st.LHS, st.Class, st.Field)
		}
		return fmt.Sprintf("%s = %s.%s", st.LHS, st.Base, st.Field)
	case *StoreFieldStmt:
		if st.Static {
			return fmt.Sprintf("%s.%s = %s", st.Class, st.Field, st.RHS)
		}
		return fmt.Sprintf("%s.%s = %s", st.Base, st.Field, st.RHS)
	case *LoadArrayStmt:
		return fmt.Sprintf("%s = %s[%s]", st.LHS, st.Base, st.Index)
	case *StoreArrayStmt:
		return fmt.Sprintf("%s[%s] = %s", st.Base, st.Index, st.RHS)
	case *IfStmt:
		return fmt.Sprintf("if (%s)", ExprString(st.Cond))
	case *SwitchStmt:
		return fmt.Sprintf("switch (%s)", st.Selector)
	case *GotoStmt:
		return "goto"
	case *ReturnStmt:
		if st.Value == nil {
			return "return"
		}
		return fmt.Sprintf("return %s", st.Value)
	case *NopStmt:
		return "nop"
	default:
		return "?"
	}
}

func invokeString(s *InvokeStmt) string {
	args := make([]string, len(s.Args))
	for i, a := range s.Args {
		args[i] = a.String()
	}
	call := fmt.Sprintf("%s(%s)", s.Callee, strings.Join(args, ", "))
	if s.Receiver != nil {
		call = fmt.Sprintf("%s.%s", s.Receiver, call)
	}
	switch s.InvokeKind {
	case InvokeStatic:
		call = "invokestatic " + call
	case InvokeSpecial:
		call = "invokespecial " + call
	case InvokeVirtual:
		call = "invokevirtual " + call
	case InvokeInterface:
		call = "invokeinterface " + call
	}
	if s.Result != nil {
		return fmt.Sprintf("%s = %s", s.Result, call)
	}
	return call
}

// ExprString renders an rvalue expression.
func ExprString(e Expr) string {
	switch ex := e.(type) {
	case VarExpr:
		return ex.X.String()
	case IntLit:
		return fmt.Sprintf("%d", ex.Value)
	case BinaryExpr:
		return fmt.Sprintf("%s %s %s", ex.X, ex.Op, ex.Y)
	case NewExpr:
		return fmt.Sprintf("new %s()", ex.Class)
	case CastExpr:
		return fmt.Sprintf("(%s) %s", ex.To, ex.From)
	default:
		return "?"
	}
}
