package ir

// Builder is a minimal programmatic constructor for a single Func's IR.
// It exists so tests, the CLI's demo mode and the irtext front-end can
// build small IR fixtures without a language frontend — translating a
// real source AST into three-address IR is out of scope here.
type Builder struct {
	f *Func
}

// NewBuilder starts building the method identified by ref.
func NewBuilder(ref MethodRef, isStatic bool, retType Type) *Builder {
	f := &Func{
		Ref:      ref,
		IsStatic: isStatic,
		RetType:  retType,
		vars:     make(map[string]*Var),
	}
	f.CFG = newCFG(f)
	f.CFG.Entry = &NopStmt{}
	f.CFG.Exit = &NopStmt{}
	return &Builder{f: f}
}

// This declares the receiver variable (only valid when !isStatic).
func (b *Builder) This(t Type) *Var {
	v := b.Var("this", t)
	b.f.This = v
	return v
}

// Param declares a formal parameter, in declaration order.
func (b *Builder) Param(name string, t Type) *Var {
	v := b.Var(name, t)
	b.f.Params = append(b.f.Params, v)
	return v
}

// Var interns (or declares) a local variable by name.
func (b *Builder) Var(name string, t Type) *Var {
	if v, ok := b.f.vars[name]; ok {
		return v
	}
	v := &Var{Name: name, Type: t, Method: b.f}
	b.f.vars[name] = v
	return v
}

// Add appends a statement, assigning it the next statement index.
func (b *Builder) Add(s Stmt) Stmt {
	s.setIndex(len(b.f.Stmts))
	b.f.Stmts = append(b.f.Stmts, s)
	return s
}

// Wire records an explicit unconditional CFG edge (used after a GotoStmt).
func (b *Builder) Wire(from, to Stmt) {
	b.f.CFG.AddEdge(from, EdgeNormal, 0, to)
}

// WireIf records the IF_TRUE/IF_FALSE successors of an IfStmt.
func (b *Builder) WireIf(s *IfStmt, whenTrue, whenFalse Stmt) {
	b.f.CFG.AddEdge(s, EdgeIfTrue, 0, whenTrue)
	b.f.CFG.AddEdge(s, EdgeIfFalse, 0, whenFalse)
}

// WireSwitch records a SwitchStmt's case edges plus its default edge.
func (b *Builder) WireSwitch(s *SwitchStmt, cases map[int32]Stmt, def Stmt) {
	for c, target := range cases {
		b.f.CFG.AddEdge(s, EdgeSwitchCase, c, target)
	}
	b.f.CFG.AddEdge(s, EdgeSwitchDefault, 0, def)
}

// Build finalizes the CFG: straight-line statements fall through to the
// next statement in sequence, ReturnStmt always reaches Exit, and
// Goto/If/Switch are expected to have been wired explicitly already.
func (b *Builder) Build() *Func {
	f := b.f
	g := f.CFG
	g.Entry.setIndex(-1)
	g.Exit.setIndex(len(f.Stmts))
	if len(f.Stmts) == 0 {
		g.AddEdge(g.Entry, EdgeNormal, 0, g.Exit)
		return f
	}
	g.AddEdge(g.Entry, EdgeNormal, 0, f.Stmts[0])
	for i, s := range f.Stmts {
		switch s.(type) {
		case *ReturnStmt:
			g.AddEdge(s, EdgeNormal, 0, g.Exit)
		case *GotoStmt, *IfStmt, *SwitchStmt:
			// wired explicitly via Wire/WireIf/WireSwitch
		default:
			next := Stmt(g.Exit)
			if i+1 < len(f.Stmts) {
				next = f.Stmts[i+1]
			}
			g.AddEdge(s, EdgeNormal, 0, next)
		}
	}
	return f
}
