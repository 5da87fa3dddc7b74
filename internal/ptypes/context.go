// Package ptypes holds the Pointer Flow Graph's vocabulary — contexts,
// context-sensitive objects and pointers, points-to sets, the PFG
// itself, and the CSManager that interns pointer identity
// — built by internal/pta (the solver) and read by consumers of its
// result such as internal/intercp.
package ptypes

import "strings"

// Context is an opaque, interned context-sensitivity token: a truncated
// chain of call-site or receiver-object identities. Distinct
// Selectors build different chains; the solver and PFG only ever compare
// contexts for equality, never inspect their shape.
type Context struct {
	key string
}

// Empty is the emptyContext() every Selector can produce — the context
// the entry method is seeded with at worklist initialization.
var Empty = Context{}

const sep = "\x1f"

// Extend appends token to ctx's chain, keeping only the trailing k
// elements (k <= 0 collapses to Empty) — the truncation rule shared by
// every k-limited Selector (kCallSite(k), kObject(k)).
func Extend(ctx Context, token string, k int) Context {
	if k <= 0 {
		return Empty
	}
	var parts []string
	if ctx.key != "" {
		parts = strings.Split(ctx.key, sep)
	}
	parts = append(parts, token)
	if len(parts) > k {
		parts = parts[len(parts)-k:]
	}
	return Context{key: strings.Join(parts, sep)}
}

func (c Context) String() string {
	if c.key == "" {
		return "[]"
	}
	return "[" + strings.ReplaceAll(c.key, sep, ", ") + "]"
}
