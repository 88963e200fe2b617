package strokedpath

import "testing"

func TestFillBevelJoinShape(t *testing.T) {
	cjd := newCommonJoinData(Pt(1, 1), Pt(0, 1), Pt(1, 0))
	verts, idx := fillBevelJoin(cjd)
	if len(verts) != 3 {
		t.Fatalf("len(verts) = %d, want 3", len(verts))
	}
	if len(idx) != 3 {
		t.Fatalf("len(idx) = %d, want 3", len(idx))
	}
	for _, v := range verts {
		if v.Kind() != KindEdge {
			t.Errorf("bevel vertex kind = %v, want edge (invariant: bevel vertices carry kind edge)", v.Kind())
		}
		if v.Position != cjd.P {
			t.Errorf("bevel vertex position = %v, want join point %v", v.Position, cjd.P)
		}
	}
	if verts[1].OnBoundary != 0 {
		t.Errorf("centerline vertex OnBoundary = %d, want 0", verts[1].OnBoundary)
	}
}
