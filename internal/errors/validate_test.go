package errors

import (
	"testing"

	"statix/internal/ir"
)

func TestValidateFlagsUnrecognizedOperator(t *testing.T) {
	b := ir.NewBuilder(ir.MethodRef{Class: "Demo", Sig: "m"}, true, ir.Void)
	x := b.Var("x", ir.Int)
	y := b.Var("y", ir.Int)
	z := b.Var("z", ir.Int)
	b.Add(&ir.AssignStmt{LHS: x, RHS: ir.IntLit{Value: 1}})
	b.Add(&ir.AssignStmt{LHS: y, RHS: ir.IntLit{Value: 2}})
	s := b.Add(&ir.AssignStmt{LHS: z, RHS: ir.BinaryExpr{Op: ir.BinOp(200), X: x, Y: y}})
	f := b.Build()

	prog := ir.NewMapProvider(f)
	errs := Validate(prog, []ir.MethodRef{f.Ref})
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(errs), errs)
	}
	if errs[0].Code != ErrUnknownOperator {
		t.Fatalf("expected %s, got %s", ErrUnknownOperator, errs[0].Code)
	}
	if errs[0].Stmt != s.Index() {
		t.Fatalf("expected stmt index %d, got %d", s.Index(), errs[0].Stmt)
	}
}

func TestValidateCleanProgramReportsNothing(t *testing.T) {
	b := ir.NewBuilder(ir.MethodRef{Class: "Demo", Sig: "m"}, true, ir.Void)
	x := b.Var("x", ir.Int)
	b.Add(&ir.AssignStmt{LHS: x, RHS: ir.IntLit{Value: 1}})
	f := b.Build()

	prog := ir.NewMapProvider(f)
	if errs := Validate(prog, []ir.MethodRef{f.Ref}); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestFormatIncludesCodeAndLocation(t *testing.T) {
	err := &AnalysisError{
		Level:   Error,
		Code:    ErrMalformedIR,
		Message: "assignment with no left-hand side",
		Method:  ir.MethodRef{Class: "Demo", Sig: "m"},
		Stmt:    3,
	}
	out := NewReporter().Format(err)
	if out == "" {
		t.Fatal("expected non-empty formatted output")
	}
}
