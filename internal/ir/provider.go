package ir

// Provider is the IR oracle: method -> IR. Producing Funcs from
// source is out of scope; Provider only needs to answer lookups for
// methods CHA/PTA/CP have already decided to visit.
type Provider interface {
	Method(ref MethodRef) (*Func, bool)
}

// MapProvider is the in-memory Provider used by tests, the CLI demo and
// the irtext loader: a flat map keyed by MethodRef.
type MapProvider struct {
	funcs map[MethodRef]*Func
}

// NewMapProvider builds a Provider from a set of already-built Funcs.
func NewMapProvider(fs ...*Func) *MapProvider {
	p := &MapProvider{funcs: make(map[MethodRef]*Func, len(fs))}
	for _, f := range fs {
		p.funcs[f.Ref] = f
	}
	return p
}

// Add registers an additional Func (e.g. incrementally, from irtext).
func (p *MapProvider) Add(f *Func) { p.funcs[f.Ref] = f }

func (p *MapProvider) Method(ref MethodRef) (*Func, bool) {
	f, ok := p.funcs[ref]
	return f, ok
}

// All returns every MethodRef registered so far — used by the CLI to
// derive a flat class hierarchy and to validate the whole loaded
// program rather than just what's reachable from one entry point.
func (p *MapProvider) All() []MethodRef {
	out := make([]MethodRef, 0, len(p.funcs))
	for ref := range p.funcs {
		out = append(out, ref)
	}
	return out
}
