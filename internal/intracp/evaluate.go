// Package intracp implements intraprocedural constant propagation: a
// forward may-analysis over a method's CFG on the three-point lattice.
package intracp

import (
	"statix/internal/fact"
	"statix/internal/ir"
	"statix/internal/lattice"
)

// Fact is the CPFact specialization this package works with.
type Fact = fact.CPFact[*ir.Var]

// Evaluate is pure: the same (exp, fact) always yields the same Value
//. It never inspects anything except the
// expression and the fact passed in.
func Evaluate(e ir.Expr, in *Fact) lattice.Value {
	switch ex := e.(type) {
	case ir.VarExpr:
		if !ex.X.CanHoldInt() {
			return lattice.NacVal()
		}
		return in.Get(ex.X)
	case ir.IntLit:
		return lattice.ConstVal(ex.Value)
	case ir.BinaryExpr:
		return evalBinary(ex, in)
	case ir.NewExpr, ir.CastExpr:
		return lattice.NacVal()
	default:
		return lattice.NacVal()
	}
}

func evalBinary(ex ir.BinaryExpr, in *Fact) lattice.Value {
	x := varValue(ex.X, in)
	y := varValue(ex.Y, in)

	if ex.Op.IsComparison() {
		return evalComparison(ex.Op, x, y)
	}
	return evalArithmetic(ex.Op, x, y)
}

func varValue(v *ir.Var, in *Fact) lattice.Value {
	if !v.CanHoldInt() {
		return lattice.NacVal()
	}
	return in.Get(v)
}

// isDivRemByZero reports whether op is DIV/REM and y is the constant 0 —
// the one case where an otherwise-NAC operand still yields UNDEF (spec
// §4.2: "bypassing propagation of a guaranteed exception").
func isDivRemByZero(op ir.BinOp, y lattice.Value) bool {
	return (op == ir.Div || op == ir.Rem) && y.IsConst() && y.Int() == 0
}

func evalArithmetic(op ir.BinOp, x, y lattice.Value) lattice.Value {
	if x.IsConst() && y.IsConst() {
		if (op == ir.Div || op == ir.Rem) && y.Int() == 0 {
			return lattice.UndefVal()
		}
		return lattice.ConstVal(foldArithmetic(op, x.Int(), y.Int()))
	}
	if isDivRemByZero(op, y) {
		return lattice.UndefVal()
	}
	if x.IsNac() || y.IsNac() {
		return lattice.NacVal()
	}
	// One CONST, one UNDEF (or both UNDEF): lattice-consistent "awaiting
	// more information".
	return lattice.UndefVal()
}

func evalComparison(op ir.BinOp, x, y lattice.Value) lattice.Value {
	if x.IsConst() && y.IsConst() {
		if foldComparison(op, x.Int(), y.Int()) {
			return lattice.ConstVal(1)
		}
		return lattice.ConstVal(0)
	}
	if x.IsNac() || y.IsNac() {
		return lattice.NacVal()
	}
	// Spec §9 open question: the source returns NAC here (not UNDEF) when
	// one operand is UNDEF and neither is NAC. We preserve that policy —
	// comparisons are considered "resolved" (NAC) as soon as either side
	// lacks a concrete value, unlike arithmetic.
	return lattice.NacVal()
}

func foldArithmetic(op ir.BinOp, a, b int32) int32 {
	switch op {
	case ir.Add:
		return a + b
	case ir.Sub:
		return a - b
	case ir.Mul:
		return a * b
	case ir.Div:
		return a / b
	case ir.Rem:
		return a % b
	case ir.And:
		return a & b
	case ir.Or:
		return a | b
	case ir.Xor:
		return a ^ b
	case ir.Shl:
		return a << (uint32(b) & 0x1f)
	case ir.Shr:
		return a >> (uint32(b) & 0x1f)
	case ir.UShr:
		return int32(uint32(a) >> (uint32(b) & 0x1f))
	default:
		return 0
	}
}

func foldComparison(op ir.BinOp, a, b int32) bool {
	switch op {
	case ir.Eq:
		return a == b
	case ir.Ne:
		return a != b
	case ir.Lt:
		return a < b
	case ir.Le:
		return a <= b
	case ir.Gt:
		return a > b
	case ir.Ge:
		return a >= b
	default:
		return false
	}
}
