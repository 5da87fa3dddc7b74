package heap

import (
	"testing"

	"statix/internal/ir"
)

func TestAllocationSiteIsStable(t *testing.T) {
	m := AllocationSite{}
	site := ir.MethodRef{Class: "Demo", Sig: "m()V"}
	a := m.Alloc(site, 3, "Widget")
	b := m.Alloc(site, 3, "Widget")
	if a != b {
		t.Fatalf("same (method, index, class) must collapse to the same Obj")
	}
	c := m.Alloc(site, 4, "Widget")
	if a == c {
		t.Fatalf("different statement indices must produce distinct objects")
	}
}
