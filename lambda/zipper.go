package lambda

// LeafMode disambiguates whether the focus, when it is a simple leaf
// (Var or Hole), is being treated as atomic for navigation purposes or
// as a site for swapping with sibling leaves (spec §4.4).
type LeafMode int

const (
	LeafNone LeafMode = iota
	LeafLeaf
	LeafInputDot
)

// Editor is the zipper: a split of a whole term into a Context (a term
// containing exactly one Slot) and a Focus (a term containing no
// Slot), plus the navigation leaf-mode flag.
type Editor struct {
	Heap    *Heap
	Context Idx
	Focus   Idx
	Leaf    LeafMode
}

// NewEditor creates an editor in its initial state: context is the bare
// Slot (the focus is the whole term), focus is Hole.
func NewEditor() *Editor {
	h := New()
	ctx, ok := h.Init(SlotNode())
	if !ok {
		panic("lambda: heap too small to hold a single Slot node")
	}
	focus, ok := h.Init(HoleNode)
	if !ok {
		panic("lambda: heap too small to hold a single Hole node")
	}
	return &Editor{Heap: h, Context: ctx, Focus: focus, Leaf: LeafNone}
}

// shallowCopy allocates a fresh node holding a copy of x's current
// root encoding. x itself is untouched; its children are shared with
// the copy, which is safe because the editor never lets two live
// logical terms alias the same subtree (spec §9 "shared subterms").
func (h *Heap) shallowCopy(x Idx) (Idx, bool) {
	return h.Init(h.Get(x))
}

// detach moves x's current content out to a fresh handle and overwrites
// x in place with replacement. It is the core primitive behind the
// zipper's structural surgery: every navigation/surgery command either
// plugs a value into a Slot or detaches a subtree while leaving a Slot
// behind, and both reduce to this one shallow-copy-then-overwrite move.
func (h *Heap) detach(x Idx, replacement Node) (Idx, bool) {
	moved, ok := h.shallowCopy(x)
	if !ok {
		return 0, false
	}
	*h.GetMut(x) = replacement
	return moved, true
}

// findSlotHandle returns the handle of the unique Slot node within ctx.
func (h *Heap) findSlotHandle(ctx Idx) (Idx, bool) {
	n := h.Get(ctx)
	switch n.Kind() {
	case KindSlot:
		return ctx, true
	case KindLam:
		return h.findSlotHandle(n.Body())
	case KindApp:
		if s, ok := h.findSlotHandle(n.Fun()); ok {
			return s, true
		}
		return h.findSlotHandle(n.Arg())
	default:
		return 0, false
	}
}

// FindSlotParent returns the handle of the node directly containing the
// unique Slot as a child (spec §4.4).
func (h *Heap) FindSlotParent(ctx Idx) (Idx, bool) {
	n := h.Get(ctx)
	switch n.Kind() {
	case KindLam:
		if h.Get(n.Body()).Kind() == KindSlot {
			return ctx, true
		}
		return h.FindSlotParent(n.Body())
	case KindApp:
		if h.Get(n.Fun()).Kind() == KindSlot || h.Get(n.Arg()).Kind() == KindSlot {
			return ctx, true
		}
		if p, ok := h.FindSlotParent(n.Fun()); ok {
			return p, true
		}
		return h.FindSlotParent(n.Arg())
	default:
		return 0, false
	}
}

// ReplaceSlot locates the unique Slot in ctx and overwrites it with v,
// returning (_, false) on success. If ctx has no Slot it returns
// (v, true), propagating v back up unused (spec §4.4); behavior with
// more than one Slot is undefined, since the invariant forbids it.
func (h *Heap) ReplaceSlot(ctx, v Idx) (Idx, bool) {
	n := h.Get(ctx)
	switch n.Kind() {
	case KindVar, KindHole:
		return v, true
	case KindSlot:
		*h.GetMut(ctx) = h.Get(v)
		return 0, false
	case KindLam:
		return h.ReplaceSlot(n.Body(), v)
	case KindApp:
		rem, notFound := h.ReplaceSlot(n.Fun(), v)
		if notFound {
			return h.ReplaceSlot(n.Arg(), rem)
		}
		return 0, false
	default:
		return v, true
	}
}

// Leftmost returns the handle of t's leftmost leaf (a Var, Hole, or
// Slot).
func (h *Heap) Leftmost(t Idx) Idx {
	n := h.Get(t)
	switch n.Kind() {
	case KindLam:
		return h.Leftmost(n.Body())
	case KindApp:
		return h.Leftmost(n.Fun())
	default:
		return t
	}
}

// Rightmost returns the handle of t's rightmost leaf.
func (h *Heap) Rightmost(t Idx) Idx {
	n := h.Get(t)
	switch n.Kind() {
	case KindLam:
		return h.Rightmost(n.Body())
	case KindApp:
		return h.Rightmost(n.Arg())
	default:
		return t
	}
}

// FindSlotLeftSibling locates the Slot in ctx and its immediate left
// sibling leaf suitable for swapping, walking up through lambdas as
// needed (spec §4.4).
func (h *Heap) FindSlotLeftSibling(ctx Idx) (slot, sibling Idx, ok bool) {
	n := h.Get(ctx)
	switch n.Kind() {
	case KindLam:
		return h.FindSlotLeftSibling(n.Body())
	case KindApp:
		rLeft := h.Leftmost(n.Arg())
		if h.Get(rLeft).Kind() == KindSlot {
			return rLeft, h.Rightmost(n.Fun()), true
		}
		if s, sib, found := h.FindSlotLeftSibling(n.Fun()); found {
			return s, sib, true
		}
		return h.FindSlotLeftSibling(n.Arg())
	default:
		return 0, 0, false
	}
}

// FindSlotRightSibling is the mirror of FindSlotLeftSibling.
func (h *Heap) FindSlotRightSibling(ctx Idx) (slot, sibling Idx, ok bool) {
	n := h.Get(ctx)
	switch n.Kind() {
	case KindLam:
		return h.FindSlotRightSibling(n.Body())
	case KindApp:
		lRight := h.Rightmost(n.Fun())
		if h.Get(lRight).Kind() == KindSlot {
			return lRight, h.Leftmost(n.Arg()), true
		}
		if s, sib, found := h.FindSlotRightSibling(n.Fun()); found {
			return s, sib, true
		}
		return h.FindSlotRightSibling(n.Arg())
	default:
		return 0, 0, false
	}
}
