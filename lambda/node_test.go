package lambda

import "testing"

func TestNodeKindDecoding(t *testing.T) {
	h := New()
	v, _ := h.Init(VarNode(2))
	l, _ := h.Init(LamNode(v))
	a, _ := h.Init(AppNode(v, l))
	s, _ := h.Init(SlotNode())

	cases := []struct {
		name string
		idx  Idx
		want Kind
	}{
		{"hole", 0, KindHole},
		{"var", v, KindVar},
		{"lam", l, KindLam},
		{"app", a, KindApp},
		{"slot", s, KindSlot},
	}
	for _, c := range cases {
		if got := h.Get(c.idx).Kind(); got != c.want {
			t.Fatalf("%s: Kind(): got=%v, want=%v", c.name, got, c.want)
		}
	}
}

func TestVarNodeRoundTrip(t *testing.T) {
	for _, u := range []uint16{0, 1, 2, 10, 1000} {
		n := VarNode(u)
		if got := n.Var(); got != u {
			t.Fatalf("VarNode(%d).Var(): got=%d, want=%d", u, got, u)
		}
	}
}

func TestLamAndAppAccessors(t *testing.T) {
	h := New()
	v0, _ := h.Init(VarNode(0))
	v1, _ := h.Init(VarNode(1))
	lam := LamNode(v0)
	if got := lam.Body(); got != v0 {
		t.Fatalf("LamNode.Body(): got=%d, want=%d", got, v0)
	}
	app := AppNode(v0, v1)
	if got := app.Fun(); got != v0 {
		t.Fatalf("AppNode.Fun(): got=%d, want=%d", got, v0)
	}
	if got := app.Arg(); got != v1 {
		t.Fatalf("AppNode.Arg(): got=%d, want=%d", got, v1)
	}
}

func TestHoleNodeIsZeroValue(t *testing.T) {
	if HoleNode != (Node{0, 0}) {
		t.Fatalf("HoleNode: got=%v, want=%v", HoleNode, Node{0, 0})
	}
}
