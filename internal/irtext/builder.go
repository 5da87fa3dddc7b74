package irtext

import (
	"fmt"

	"statix/internal/ir"
)

var binOps = map[string]ir.BinOp{
	"add": ir.Add, "sub": ir.Sub, "mul": ir.Mul, "div": ir.Div, "rem": ir.Rem,
	"eq": ir.Eq, "ne": ir.Ne, "lt": ir.Lt, "le": ir.Le, "gt": ir.Gt, "ge": ir.Ge,
}

func typeOf(name string) ir.Type {
	switch name {
	case "int":
		return ir.Int
	case "byte":
		return ir.Byte
	case "short":
		return ir.Short
	case "char":
		return ir.Char
	case "boolean":
		return ir.Boolean
	case "long":
		return ir.Long
	case "void":
		return ir.Void
	default:
		return ir.RefType(ir.ClassRef(name))
	}
}

func invokeKind(s string) ir.InvokeKind {
	switch s {
	case "static":
		return ir.InvokeStatic
	case "special":
		return ir.InvokeSpecial
	case "virtual":
		return ir.InvokeVirtual
	default:
		return ir.InvokeInterface
	}
}

// Build converts a parsed Program into a Provider, one *ir.Func per
// FuncDecl — a small AST-to-IR lowering pass whose target is already the
// CORE's own IR rather than a further-lowered form.
func Build(prog *Program) (*ir.MapProvider, error) {
	mp := ir.NewMapProvider()
	for _, fd := range prog.Funcs {
		f, err := buildFunc(fd)
		if err != nil {
			return nil, err
		}
		mp.Add(f)
	}
	return mp, nil
}

func buildFunc(fd *FuncDecl) (*ir.Func, error) {
	ref := ir.MethodRef{Class: ir.ClassRef(fd.Class), Sig: ir.Subsignature(fd.Sig)}
	b := ir.NewBuilder(ref, fd.Static, typeOf(fd.Ret))
	if !fd.Static {
		b.This(ir.RefType(ir.ClassRef(fd.Class)))
	}
	for _, p := range fd.Params {
		b.Param(p.Name, typeOf(p.Type))
	}
	for _, sd := range fd.Body {
		var err error
		switch {
		case sd.Assign != nil:
			err = buildAssign(b, sd.Assign)
		case sd.Invoke != nil:
			buildInvoke(b, sd.Invoke)
		case sd.Return != nil:
			buildReturn(b, sd.Return)
		default:
			err = fmt.Errorf("%s: empty statement", ref)
		}
		if err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}

func buildAssign(b *ir.Builder, ad *AssignDecl) error {
	switch {
	case ad.RHS.IntLit != nil:
		lhs := b.Var(ad.LHS, ir.Int)
		b.Add(&ir.AssignStmt{LHS: lhs, RHS: ir.IntLit{Value: int32(*ad.RHS.IntLit)}})
	case ad.RHS.New != nil:
		lhs := b.Var(ad.LHS, ir.RefType(ir.ClassRef(*ad.RHS.New)))
		b.Add(&ir.AssignStmt{LHS: lhs, RHS: ir.NewExpr{Class: ir.ClassRef(*ad.RHS.New)}})
	case ad.RHS.BinOp != nil:
		op, ok := binOps[ad.RHS.BinOp.Op]
		if !ok {
			return fmt.Errorf("unknown operator %q", ad.RHS.BinOp.Op)
		}
		x := b.Var(ad.RHS.BinOp.X, ir.Int)
		y := b.Var(ad.RHS.BinOp.Y, ir.Int)
		lhs := b.Var(ad.LHS, ir.Int)
		b.Add(&ir.AssignStmt{LHS: lhs, RHS: ir.BinaryExpr{Op: op, X: x, Y: y}})
	case ad.RHS.Copy != nil:
		src := b.Var(*ad.RHS.Copy, ir.Int)
		lhs := b.Var(ad.LHS, src.Type)
		b.Add(&ir.AssignStmt{LHS: lhs, RHS: ir.VarExpr{X: src}})
	default:
		return fmt.Errorf("%s: assignment with no right-hand side", ad.LHS)
	}
	return nil
}

func buildInvoke(b *ir.Builder, id *InvokeDecl) {
	stmt := &ir.InvokeStmt{
		InvokeKind: invokeKind(id.Kind),
		Callee:     ir.MethodRef{Class: ir.ClassRef(id.Class), Sig: ir.Subsignature(id.Sig)},
	}
	if id.Recv != nil {
		stmt.Receiver = b.Var(*id.Recv, ir.RefType("Object"))
	}
	for _, a := range id.Args {
		stmt.Args = append(stmt.Args, b.Var(a, ir.Int))
	}
	if id.Result != nil {
		stmt.Result = b.Var(*id.Result, ir.Int)
	}
	b.Add(stmt)
}

func buildReturn(b *ir.Builder, rd *ReturnDecl) {
	ret := &ir.ReturnStmt{}
	if rd.Value != nil {
		ret.Value = b.Var(*rd.Value, ir.Int)
	}
	b.Add(ret)
}
