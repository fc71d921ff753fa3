package lambda

import "testing"

func TestNewEditorInitialState(t *testing.T) {
	ed := NewEditor()
	if got := ed.Heap.Get(ed.Context).Kind(); got != KindSlot {
		t.Fatalf("NewEditor Context Kind(): got=%v, want=%v", got, KindSlot)
	}
	if got := ed.Heap.Get(ed.Focus).Kind(); got != KindHole {
		t.Fatalf("NewEditor Focus Kind(): got=%v, want=%v", got, KindHole)
	}
	if ed.Leaf != LeafNone {
		t.Fatalf("NewEditor Leaf: got=%v, want=%v", ed.Leaf, LeafNone)
	}
}

func TestDetachMovesContentAndLeavesReplacement(t *testing.T) {
	h := New()
	x, _ := h.Init(VarNode(4))

	moved, ok := h.detach(x, HoleNode)
	if !ok {
		t.Fatalf("detach: ok=false, want=true")
	}
	if got := h.Get(moved).Var(); got != 4 {
		t.Fatalf("detach: moved handle holds Var()=%d, want=4", got)
	}
	if got := h.Get(x).Kind(); got != KindHole {
		t.Fatalf("detach: x after detach has Kind()=%v, want=%v", got, KindHole)
	}
}

func TestDetachSelfAliasIsConsistent(t *testing.T) {
	// Detaching x when x is itself the handle being replaced into must
	// still preserve x's pre-detach content in the moved copy.
	h := New()
	x, _ := h.Init(VarNode(7))
	moved, ok := h.detach(x, SlotNode())
	if !ok {
		t.Fatalf("detach: ok=false, want=true")
	}
	if h.Get(x).Kind() != KindSlot {
		t.Fatalf("detach: x Kind()=%v, want=%v", h.Get(x).Kind(), KindSlot)
	}
	if h.Get(moved).Var() != 7 {
		t.Fatalf("detach: moved Var()=%d, want=7", h.Get(moved).Var())
	}
}

func TestFindSlotParent(t *testing.T) {
	h := New()
	slot, _ := h.Init(SlotNode())
	other, _ := h.Init(VarNode(0))
	ctx, _ := h.Init(AppNode(other, slot))

	parent, ok := h.FindSlotParent(ctx)
	if !ok || parent != ctx {
		t.Fatalf("FindSlotParent: got=(%d,%v), want=(%d,true)", parent, ok, ctx)
	}
}

func TestFindSlotParentNotFound(t *testing.T) {
	h := New()
	v0, _ := h.Init(VarNode(0))

	if _, ok := h.FindSlotParent(v0); ok {
		t.Fatalf("FindSlotParent(Var): ok=true, want=false")
	}
}

func TestReplaceSlotSplicesValueIn(t *testing.T) {
	h := New()
	slot, _ := h.Init(SlotNode())
	other, _ := h.Init(VarNode(3))
	ctx, _ := h.Init(AppNode(other, slot))
	v, _ := h.Init(VarNode(9))

	h.ReplaceSlot(ctx, v)
	if got := h.Get(slot); got.Kind() != KindVar || got.Var() != 9 {
		t.Fatalf("ReplaceSlot: slot holds %v, want Var(9)", got)
	}
}

func TestLeftmostAndRightmost(t *testing.T) {
	h := New()
	l, _ := h.Init(VarNode(1))
	r, _ := h.Init(VarNode(2))
	app, _ := h.Init(AppNode(l, r))
	lam, _ := h.Init(LamNode(app))

	if got := h.Leftmost(lam); got != l {
		t.Fatalf("Leftmost: got=%d, want=%d", got, l)
	}
	if got := h.Rightmost(lam); got != r {
		t.Fatalf("Rightmost: got=%d, want=%d", got, r)
	}
}

func TestFindSlotLeftAndRightSibling(t *testing.T) {
	h := New()
	slot, _ := h.Init(SlotNode())
	sib, _ := h.Init(VarNode(5))
	ctx, _ := h.Init(AppNode(sib, slot))

	gotSlot, gotSib, ok := h.FindSlotLeftSibling(ctx)
	if !ok || gotSlot != slot || gotSib != sib {
		t.Fatalf("FindSlotLeftSibling: got=(%d,%d,%v), want=(%d,%d,true)", gotSlot, gotSib, ok, slot, sib)
	}

	h2 := New()
	slot2, _ := h2.Init(SlotNode())
	sib2, _ := h2.Init(VarNode(6))
	ctx2, _ := h2.Init(AppNode(slot2, sib2))

	gotSlot2, gotSib2, ok2 := h2.FindSlotRightSibling(ctx2)
	if !ok2 || gotSlot2 != slot2 || gotSib2 != sib2 {
		t.Fatalf("FindSlotRightSibling: got=(%d,%d,%v), want=(%d,%d,true)", gotSlot2, gotSib2, ok2, slot2, sib2)
	}
}

func TestFindSlotLeftSiblingNoneAtLeftEdge(t *testing.T) {
	h := New()
	slot, _ := h.Init(SlotNode())
	other, _ := h.Init(VarNode(1))
	ctx, _ := h.Init(AppNode(slot, other)) // slot has no left sibling here

	if _, _, ok := h.FindSlotLeftSibling(ctx); ok {
		t.Fatalf("FindSlotLeftSibling at the left edge: ok=true, want=false")
	}
}
