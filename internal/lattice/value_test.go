package lattice

import "testing"

func TestMeetCommutative(t *testing.T) {
	vals := []Value{UndefVal(), NacVal(), ConstVal(1), ConstVal(2)}
	for _, a := range vals {
		for _, b := range vals {
			if !Meet(a, b).Equal(Meet(b, a)) {
				t.Fatalf("meet(%v,%v) != meet(%v,%v)", a, b, b, a)
			}
		}
	}
}

func TestMeetIdentities(t *testing.T) {
	if !Meet(ConstVal(5), UndefVal()).Equal(ConstVal(5)) {
		t.Fatal("meet(CONST, UNDEF) should be CONST")
	}
	if !Meet(NacVal(), ConstVal(5)).Equal(NacVal()) {
		t.Fatal("meet(NAC, CONST) should be NAC")
	}
	if !Meet(ConstVal(3), ConstVal(3)).Equal(ConstVal(3)) {
		t.Fatal("meet(CONST(k), CONST(k)) should be CONST(k)")
	}
	if !Meet(ConstVal(3), ConstVal(4)).Equal(NacVal()) {
		t.Fatal("meet(CONST(k), CONST(j)), k != j, should be NAC")
	}
}

func TestMeetIdempotent(t *testing.T) {
	vals := []Value{UndefVal(), NacVal(), ConstVal(7)}
	for _, v := range vals {
		if !Meet(v, v).Equal(v) {
			t.Fatalf("meet(%v,%v) should equal %v", v, v, v)
		}
	}
}
