package ir

import "fmt"

// Var is an opaque variable handle. Identity is the pointer itself —
// two Vars are the same variable iff they are the same *Var — which is
// what lets Var be used directly as a map key throughout the CORE
// (CPFact, SetFact, CSManager all key on *Var).
type Var struct {
	Name string
	Type Type

	// Method is set by the IR builder to the owning Func; it lets
	// downstream passes (PTA's context selection, alias analysis) ask
	// "which method is this local in" without threading it separately.
	Method *Func
}

// CanHoldInt reports whether this variable's declared type is one of the
// integer-holding primitives.
func (v *Var) CanHoldInt() bool { return v.Type.CanHoldInt() }

func (v *Var) String() string {
	if v == nil {
		return "<nil>"
	}
	return v.Name
}

// NewVar allocates a fresh variable. Builders should intern by name
// within a Func so that repeated references to "x" resolve to the same
// *Var.
func NewVar(name string, t Type) *Var {
	return &Var{Name: name, Type: t}
}

func (v *Var) GoString() string { return fmt.Sprintf("Var(%s:%s)", v.Name, v.Type) }
