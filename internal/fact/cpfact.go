// Package fact implements the generic fact containers consumed by the
// dataflow solver: CPFact (variable -> lattice.Value) and SetFact[T].
package fact

import "statix/internal/lattice"

// Var is whatever the analyses use to key a CPFact. It is kept as an
// interface here so fact does not depend on the ir package; ir.Var
// satisfies it by being comparable and carrying a stable identity.
type Var interface {
	comparable
}

// CPFact maps variables to abstract values. An absent key is equivalent to
// lattice.UndefVal() — callers must not rely on key presence to mean
// anything beyond "has been touched at least once".
type CPFact[V Var] struct {
	m map[V]lattice.Value
}

// NewCPFact returns an empty fact (all variables implicitly UNDEF).
func NewCPFact[V Var]() *CPFact[V] {
	return &CPFact[V]{m: make(map[V]lattice.Value)}
}

// Get returns the value bound to v, or UNDEF if v is unmentioned.
func (f *CPFact[V]) Get(v V) lattice.Value {
	if val, ok := f.m[v]; ok {
		return val
	}
	return lattice.UndefVal()
}

// Update sets v's value and reports whether that changed the fact.
func (f *CPFact[V]) Update(v V, val lattice.Value) bool {
	old, ok := f.m[v]
	if ok && old.Equal(val) {
		return false
	}
	if !ok && val.IsUndef() {
		return false
	}
	f.m[v] = val
	return true
}

// KeySet returns the set of variables explicitly mentioned in this fact.
func (f *CPFact[V]) KeySet() []V {
	keys := make([]V, 0, len(f.m))
	for k := range f.m {
		keys = append(keys, k)
	}
	return keys
}

// Copy returns an independent deep copy.
func (f *CPFact[V]) Copy() *CPFact[V] {
	out := NewCPFact[V]()
	for k, v := range f.m {
		out.m[k] = v
	}
	return out
}

// CopyFrom overwrites f's contents with src's and reports whether that
// changed f (used by the solver to seed a fresh "in" fact from "out").
func (f *CPFact[V]) CopyFrom(src *CPFact[V]) bool {
	changed := false
	for k, v := range src.m {
		old, ok := f.m[k]
		if !ok || !old.Equal(v) {
			changed = true
		}
		f.m[k] = v
	}
	for k := range f.m {
		if _, ok := src.m[k]; !ok {
			delete(f.m, k)
			changed = true
		}
	}
	return changed
}

// MeetInto computes target[v] <- meet(source[v], target[v]) for every
// variable appearing in either fact, and reports whether target changed.
func MeetInto[V Var](source, target *CPFact[V]) bool {
	changed := false
	seen := make(map[V]struct{}, len(source.m)+len(target.m))
	for k := range source.m {
		seen[k] = struct{}{}
	}
	for k := range target.m {
		seen[k] = struct{}{}
	}
	for k := range seen {
		merged := lattice.Meet(source.Get(k), target.Get(k))
		if target.Update(k, merged) {
			changed = true
		}
	}
	return changed
}

// Equal reports whether f and o agree on every variable they mention
// (absent == UNDEF).
func (f *CPFact[V]) Equal(o *CPFact[V]) bool {
	seen := make(map[V]struct{}, len(f.m)+len(o.m))
	for k := range f.m {
		seen[k] = struct{}{}
	}
	for k := range o.m {
		seen[k] = struct{}{}
	}
	for k := range seen {
		if !f.Get(k).Equal(o.Get(k)) {
			return false
		}
	}
	return true
}
