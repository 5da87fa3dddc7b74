// Package ir defines the oracle shapes the CORE consumes: statements,
// control-flow graphs, variables and their types. Building this IR from
// source text is explicitly out of scope (spec.md §1 Non-goals); this
// package only defines the seams the analyses are coded against plus a
// small in-memory constructor (Func/CFG builder) used by tests, the CLI's
// demo mode and the irtext front-end.
package ir

// Type is the declared type of a Var. The analyses only ever need to know
// whether a type can hold an integer runtime value (canHoldInt); richer
// type information (array element type, class name) is carried for
// completeness and for the heap model / class hierarchy oracles.
type Type struct {
	Kind  TypeKind
	Class ClassRef // meaningful when Kind == TypeRef
	Elem  *Type    // meaningful when Kind == TypeArray
}

// TypeKind enumerates the primitive and reference type shapes the CORE
// needs to distinguish.
type TypeKind uint8

const (
	TypeByte TypeKind = iota
	TypeShort
	TypeInt
	TypeChar
	TypeBoolean
	TypeLong   // not integer-holding per canHoldInt, kept for completeness
	TypeFloat  // not integer-holding
	TypeDouble // not integer-holding
	TypeRef    // class/interface reference type
	TypeArray
	TypeVoid
)

// CanHoldInt is true iff t is one of {byte, short, int, char, boolean}.
func (t Type) CanHoldInt() bool {
	switch t.Kind {
	case TypeByte, TypeShort, TypeInt, TypeChar, TypeBoolean:
		return true
	default:
		return false
	}
}

func (t Type) String() string {
	switch t.Kind {
	case TypeByte:
		return "byte"
	case TypeShort:
		return "short"
	case TypeInt:
		return "int"
	case TypeChar:
		return "char"
	case TypeBoolean:
		return "boolean"
	case TypeLong:
		return "long"
	case TypeFloat:
		return "float"
	case TypeDouble:
		return "double"
	case TypeRef:
		return string(t.Class)
	case TypeArray:
		if t.Elem != nil {
			return t.Elem.String() + "[]"
		}
		return "[]"
	default:
		return "void"
	}
}

var (
	Byte    = Type{Kind: TypeByte}
	Short   = Type{Kind: TypeShort}
	Int     = Type{Kind: TypeInt}
	Char    = Type{Kind: TypeChar}
	Boolean = Type{Kind: TypeBoolean}
	Long    = Type{Kind: TypeLong}
	Void    = Type{Kind: TypeVoid}
)

// RefType builds a class/interface reference type.
func RefType(c ClassRef) Type { return Type{Kind: TypeRef, Class: c} }

// ArrayType builds an array-of-elem type.
func ArrayType(elem Type) Type { return Type{Kind: TypeArray, Elem: &elem} }

// ClassRef names a class or interface by its fully qualified name. The
// class hierarchy oracle is keyed by ClassRef.
type ClassRef string

// Subsignature is a method's name + parameter types + return type,
// excluding the declaring class — used for virtual dispatch lookup.
type Subsignature string

// MethodRef identifies a method declared on a specific class. Call sites
// carry the statically declared MethodRef; CHA/dispatch resolve it to the
// concrete MethodRef(s) that actually run.
type MethodRef struct {
	Class ClassRef
	Sig   Subsignature
}

func (m MethodRef) String() string { return string(m.Class) + "." + string(m.Sig) }
