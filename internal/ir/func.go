package ir

// Func is one method's IR: its signature, statement list and CFG. This is
// what Provider.Method returns — the CORE never constructs a Func from
// source itself; Builder below is a minimal programmatic constructor for
// tests, the CLI demo and the irtext front-end, not a language compiler.
type Func struct {
	Ref      MethodRef
	IsStatic bool
	This     *Var // nil iff IsStatic
	Params   []*Var
	RetType  Type
	Stmts    []Stmt
	CFG      *CFG

	vars map[string]*Var
}

// ReturnVars collects every ReturnStmt.Value referenced in this method,
// deduplicated. Used by interprocedural CP's ReturnEdge transfer (spec
// §4.8) to meet over all of a callee's return values.
func (f *Func) ReturnVars() []*Var {
	seen := make(map[*Var]bool)
	var out []*Var
	for _, s := range f.Stmts {
		if r, ok := s.(*ReturnStmt); ok && r.Value != nil && !seen[r.Value] {
			seen[r.Value] = true
			out = append(out, r.Value)
		}
	}
	return out
}

// Var looks up (or lazily reports absent for) a variable by name; callers
// constructing IR programmatically should use Builder.Var to get interned
// *Var handles instead of allocating duplicates.
func (f *Func) Var(name string) (*Var, bool) {
	v, ok := f.vars[name]
	return v, ok
}

// AllVars returns every variable known to this Func (params, this, and
// every local introduced via Builder.Var), in no particular order.
func (f *Func) AllVars() []*Var {
	out := make([]*Var, 0, len(f.vars))
	for _, v := range f.vars {
		out = append(out, v)
	}
	return out
}
