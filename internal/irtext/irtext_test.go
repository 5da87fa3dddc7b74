package irtext

import (
	"testing"

	"statix/internal/ir"
)

const sample = `
func static Main.main () void {
	x = int(5)
	y = int(7)
	z = add(x, y)
	static Main.helper(z)
	return
}

func static Main.helper (v: int) void {
	return
}
`

func TestParseAndBuild(t *testing.T) {
	prog, err := ParseString("sample", sample)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(prog.Funcs) != 2 {
		t.Fatalf("expected 2 funcs, got %d", len(prog.Funcs))
	}

	mp, err := Build(prog)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	main, ok := mp.Method(ir.MethodRef{Class: "Main", Sig: "main"})
	if !ok {
		t.Fatalf("Main.main not found in built provider")
	}
	if len(main.Stmts) != 5 {
		t.Fatalf("expected 5 statements in main, got %d", len(main.Stmts))
	}

	helper, ok := mp.Method(ir.MethodRef{Class: "Main", Sig: "helper"})
	if !ok {
		t.Fatalf("Main.helper not found in built provider")
	}
	if len(helper.Params) != 1 || helper.Params[0].Name != "v" {
		t.Fatalf("expected single param 'v', got %v", helper.Params)
	}
}

func TestParseRejectsUnknownOperator(t *testing.T) {
	const bad = `
func static Main.main () void {
	x = int(1)
	y = int(2)
	z = xor(x, y)
	return
}
`
	prog, err := ParseString("bad", bad)
	if err != nil {
		return
	}
	if _, err := Build(prog); err == nil {
		t.Fatalf("expected build to reject unknown operator xor")
	}
}
