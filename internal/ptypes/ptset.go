package ptypes

// PointsToSet is a growable set of CSObjs:
// add-returns-changed (via Diff + AddAll), containment, iteration,
// difference.
type PointsToSet struct {
	objs map[CSObj]bool
}

// NewPointsToSet returns an empty set.
func NewPointsToSet() *PointsToSet {
	return &PointsToSet{objs: make(map[CSObj]bool)}
}

func (s *PointsToSet) Contains(o CSObj) bool { return s.objs[o] }

func (s *PointsToSet) Len() int { return len(s.objs) }

// Objects returns every member, in no particular order.
func (s *PointsToSet) Objects() []CSObj {
	out := make([]CSObj, 0, len(s.objs))
	for o := range s.objs {
		out = append(out, o)
	}
	return out
}

// Diff returns the elements of candidates not already in s — the Δ a
// propagate() step computes before committing.
func (s *PointsToSet) Diff(candidates []CSObj) []CSObj {
	var delta []CSObj
	for _, o := range candidates {
		if !s.objs[o] {
			delta = append(delta, o)
		}
	}
	return delta
}

// AddAll commits delta into s. Callers compute delta via Diff first so
// that the returned Δ reflects objects genuinely new to s.
func (s *PointsToSet) AddAll(delta []CSObj) {
	for _, o := range delta {
		s.objs[o] = true
	}
}
