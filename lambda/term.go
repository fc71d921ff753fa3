package lambda

// Duplicate produces a deep copy of the term at `at`, allocated in the
// same heap, sharing no node with the source. It returns (0, false) on
// allocation failure, leaving no partial term reachable from a live
// handle (the caller simply discards the unfinished subtree along with
// its unreturned indices).
func (h *Heap) Duplicate(at Idx) (Idx, bool) {
	return h.DuplicateFrom(h, at)
}

// DuplicateFrom copies the term at `at` out of `src` into h, which may
// be the same heap or a different one.
func (h *Heap) DuplicateFrom(src *Heap, at Idx) (Idx, bool) {
	n := src.Get(at)
	switch n.Kind() {
	case KindHole:
		return h.Init(HoleNode)
	case KindVar:
		return h.Init(VarNode(n.Var()))
	case KindLam:
		e, ok := h.DuplicateFrom(src, n.Body())
		if !ok {
			return 0, false
		}
		return h.Init(LamNode(e))
	case KindApp:
		l, ok := h.DuplicateFrom(src, n.Fun())
		if !ok {
			return 0, false
		}
		r, ok := h.DuplicateFrom(src, n.Arg())
		if !ok {
			return 0, false
		}
		return h.Init(AppNode(l, r))
	default:
		panic("lambda: duplicate: term contains a Slot")
	}
}

// Shift adds amount to every free Var(u) reachable from at with
// u >= level, in place. It crosses a Lam by incrementing level. It
// never allocates.
func (h *Heap) Shift(at Idx, level, amount uint16) {
	n := h.Get(at)
	switch n.Kind() {
	case KindHole, KindSlot:
	case KindVar:
		if n.Var() >= level {
			*h.GetMut(at) = VarNode(n.Var() + amount)
		}
	case KindLam:
		h.Shift(n.Body(), level+1, amount)
	case KindApp:
		h.Shift(n.Fun(), level, amount)
		h.Shift(n.Arg(), level, amount)
	}
}

// Unshift is the in-place inverse of Shift by exactly one: every free
// Var(u) with u >= level has its index decremented. The caller must
// ensure no such Var is exactly level-1 at its binding depth, or the
// result would alias a different binder (spec §4.3.3).
func (h *Heap) Unshift(at Idx, level uint16) {
	n := h.Get(at)
	switch n.Kind() {
	case KindHole, KindSlot:
	case KindVar:
		if n.Var() >= level {
			*h.GetMut(at) = VarNode(n.Var() - 1)
		}
	case KindLam:
		h.Unshift(n.Body(), level+1)
	case KindApp:
		h.Unshift(n.Fun(), level)
		h.Unshift(n.Arg(), level)
	}
}

// StructurallyEqual reports whether the terms at a and b (in this
// heap) are pointwise equal under the canonical encoding, treating
// identical subterms as equal regardless of sharing (spec §3.3).
func (h *Heap) StructurallyEqual(a, b Idx) bool {
	na, nb := h.Get(a), h.Get(b)
	if na.Kind() != nb.Kind() {
		return false
	}
	switch na.Kind() {
	case KindHole, KindSlot:
		return true
	case KindVar:
		return na.Var() == nb.Var()
	case KindLam:
		return h.StructurallyEqual(na.Body(), nb.Body())
	case KindApp:
		return h.StructurallyEqual(na.Fun(), nb.Fun()) && h.StructurallyEqual(na.Arg(), nb.Arg())
	default:
		return false
	}
}

// IsRedux reports whether the node at `at` is App(Lam(_), _).
func (h *Heap) IsRedux(at Idx) bool {
	n := h.Get(at)
	if n.Kind() != KindApp {
		return false
	}
	return h.Get(n.Fun()).Kind() == KindLam
}

// Head descends the left spine of applications, returning the outermost
// head redex if one exists. It does not descend into a Lam body: a
// bare Lam, or anything other than App(Lam(_), _) / App(_, _), has no
// head redex (spec §4.3.5, matching original_source/src/lambda.rs's
// head(), which is weak-head — it never reduces under a binder).
func (h *Heap) Head(at Idx) (Idx, bool) {
	if h.IsRedux(at) {
		return at, true
	}
	n := h.Get(at)
	if n.Kind() == KindApp {
		return h.Head(n.Fun())
	}
	return 0, false
}

// FindRedux returns the first pre-order redex anywhere in the term,
// left-to-right, outermost-first.
func (h *Heap) FindRedux(at Idx) (Idx, bool) {
	if h.IsRedux(at) {
		return at, true
	}
	n := h.Get(at)
	switch n.Kind() {
	case KindLam:
		return h.FindRedux(n.Body())
	case KindApp:
		if r, ok := h.FindRedux(n.Fun()); ok {
			return r, true
		}
		return h.FindRedux(n.Arg())
	default:
		return 0, false
	}
}

// Hnf repeatedly betas the head redex until none remains, leaving the
// term at `at` in weak head-normal form: no redex remains on the left
// spine of applications, but redexes under an outer Lam are not
// reduced (Head does not enter Lam bodies). It does not terminate on a
// non-normalizing head; termination is the caller's responsibility
// (spec §4.3.5, §7). Beta always overwrites a redex's own handle with
// its reduced content, so `at` itself never needs to change.
func (h *Heap) Hnf(at Idx) {
	for {
		head, ok := h.Head(at)
		if !ok {
			return
		}
		h.Beta(head)
	}
}

// Nf repeatedly betas a pre-order redex until none remains, leaving the
// term at `at` in normal form if the process terminates. No fuel or
// step cap is imposed; callers terminate on external signals.
func (h *Heap) Nf(at Idx) {
	for {
		redux, ok := h.FindRedux(at)
		if !ok {
			return
		}
		h.Beta(redux)
	}
}
