package ir

// StmtKind tags the statement sum type. The CORE replaces the source
// framework's visitor pattern with this tagged sum plus a type switch per
// pass, which is the idiomatic Go shape for a
// closed set of node kinds.
type StmtKind uint8

const (
	KindAssign StmtKind = iota
	KindInvoke
	KindLoadField
	KindStoreField
	KindLoadArray
	KindStoreArray
	KindIf
	KindSwitch
	KindGoto
	KindReturn
	KindNop
)

// Stmt is any node of the CFG. Index is the statement's position in its
// owning Func — a stable ordinal used for deterministic output
// ordering.
type Stmt interface {
	Kind() StmtKind
	Index() int
	setIndex(i int)
}

type base struct {
	idx int
}

func (b *base) Index() int      { return b.idx }
func (b *base) setIndex(i int)  { b.idx = i }

// AssignStmt is "x = rhs" where x is a variable.
type AssignStmt struct {
	base
	LHS *Var
	RHS Expr
}

func (*AssignStmt) Kind() StmtKind { return KindAssign }

// InvokeKind distinguishes the four dispatch disciplines CHA resolves
// differently.
type InvokeKind uint8

const (
	InvokeStatic InvokeKind = iota
	InvokeSpecial
	InvokeVirtual
	InvokeInterface
)

// InvokeStmt is a call, static or via dynamic dispatch. Receiver is nil
// for InvokeStatic. Result is nil when the call's value is discarded.
type InvokeStmt struct {
	base
	InvokeKind InvokeKind
	Callee     MethodRef // declared target; CHA/PTA resolve the dynamic target(s)
	Receiver   *Var
	Args       []*Var
	Result     *Var
}

func (*InvokeStmt) Kind() StmtKind { return KindInvoke }

// LoadFieldStmt is "x = y.f" (instance) or "x = T.f" (static, Base == nil).
type LoadFieldStmt struct {
	base
	LHS    *Var
	Base   *Var // nil for a static field load
	Field  string
	Static bool
	Class  ClassRef // declaring class of the static field; meaningful iff Static
}

func (*LoadFieldStmt) Kind() StmtKind { return KindLoadField }

// StoreFieldStmt is "y.f = x" (instance) or "T.f = x" (static, Base == nil).
type StoreFieldStmt struct {
	base
	Base   *Var
	Field  string
	Static bool
	Class  ClassRef
	RHS    *Var
}

func (*StoreFieldStmt) Kind() StmtKind { return KindStoreField }

// LoadArrayStmt is "x = a[i]".
type LoadArrayStmt struct {
	base
	LHS   *Var
	Base  *Var
	Index *Var
}

func (*LoadArrayStmt) Kind() StmtKind { return KindLoadArray }

// StoreArrayStmt is "a[i] = x".
type StoreArrayStmt struct {
	base
	Base  *Var
	Index *Var
	RHS   *Var
}

func (*StoreArrayStmt) Kind() StmtKind { return KindStoreArray }

// IfStmt branches on Cond; the CFG's outgoing edges from an IfStmt carry
// the IF_TRUE / IF_FALSE labels.
type IfStmt struct {
	base
	Cond Expr
}

func (*IfStmt) Kind() StmtKind { return KindIf }

// SwitchStmt branches on Selector; outgoing CFG edges carry integer case
// labels plus one default edge.
type SwitchStmt struct {
	base
	Selector *Var
}

func (*SwitchStmt) Kind() StmtKind { return KindSwitch }

// GotoStmt is an unconditional jump (a single Normal CFG successor).
type GotoStmt struct {
	base
}

func (*GotoStmt) Kind() StmtKind { return KindGoto }

// ReturnStmt returns Value (nil for a void return). Its CFG successor is
// always the Func's Exit sentinel.
type ReturnStmt struct {
	base
	Value *Var
}

func (*ReturnStmt) Kind() StmtKind { return KindReturn }

// NopStmt is used for the CFG's Entry/Exit sentinels and for statement
// kinds the CORE doesn't need to interpret.
type NopStmt struct {
	base
}

func (*NopStmt) Kind() StmtKind { return KindNop }
