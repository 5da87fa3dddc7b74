package ptypes

import "statix/internal/ir"

// Pointer is a PFG node: one of CSVar, InstanceField, StaticField or
// ArrayIndex. Each carries its own growable PTS.
type Pointer interface {
	PTS() *PointsToSet
	String() string
}

// CSVar is a context-sensitive program variable.
type CSVar struct {
	Ctx Context
	Var *ir.Var
	pts *PointsToSet
}

func (p *CSVar) PTS() *PointsToSet { return p.pts }
func (p *CSVar) String() string    { return p.Ctx.String() + ":" + p.Var.String() }

// InstanceField is obj.field for some heap object obj.
type InstanceField struct {
	Base  CSObj
	Field string
	pts   *PointsToSet
}

func (p *InstanceField) PTS() *PointsToSet { return p.pts }
func (p *InstanceField) String() string    { return p.Base.String() + "." + p.Field }

// StaticField is class.field.
type StaticField struct {
	Class ir.ClassRef
	Field string
	pts   *PointsToSet
}

func (p *StaticField) PTS() *PointsToSet { return p.pts }
func (p *StaticField) String() string    { return string(p.Class) + "." + p.Field }

// ArrayIndex is a merged (no-index-distinction) array-element cell of a
// heap object — the usual array-insensitive abstraction.
type ArrayIndex struct {
	Base CSObj
	pts  *PointsToSet
}

func (p *ArrayIndex) PTS() *PointsToSet { return p.pts }
func (p *ArrayIndex) String() string    { return p.Base.String() + "[*]" }
