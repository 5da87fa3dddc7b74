package taint

import (
	"sort"

	"statix/internal/ir"
)

// Flow is one confirmed source-to-sink taint flow, recorded at the sink
// call site with which argument position carried the tainted value.
type Flow struct {
	SourceMethod ir.MethodRef
	SourceIndex  int
	SinkMethod   ir.MethodRef
	SinkIndex    int
	Arg          int
}

// SortFlows orders flows deterministically and
// removes duplicates — the same flow can be rediscovered from multiple
// contexts reaching the same call site.
func SortFlows(flows []Flow) []Flow {
	seen := make(map[Flow]bool, len(flows))
	out := make([]Flow, 0, len(flows))
	for _, f := range flows {
		if seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.SourceMethod != b.SourceMethod {
			return a.SourceMethod.String() < b.SourceMethod.String()
		}
		if a.SourceIndex != b.SourceIndex {
			return a.SourceIndex < b.SourceIndex
		}
		if a.SinkMethod != b.SinkMethod {
			return a.SinkMethod.String() < b.SinkMethod.String()
		}
		if a.SinkIndex != b.SinkIndex {
			return a.SinkIndex < b.SinkIndex
		}
		return a.Arg < b.Arg
	})
	return out
}
