package lambda

// Canonical combinator names, used both as cache keys (see Heap.combinators)
// and as the glyphs the pretty-printer recognizes them by.
const (
	nameID    = "I"
	nameConst = "K"
	nameFork  = "S"
	nameSucc  = "SUCC"
	namePlus  = "+"
	nameTimes = "*"
	namePower = "^"
)

// intern builds a combinator once per heap and returns the cached
// handle on subsequent calls, matching spec §9's "lazy-initialize...
// and intern them" — each Heap keeps its own copy since handles are
// heap-relative, but within one heap the constant is shared, never
// rebuilt or mutated.
func (h *Heap) intern(name string, build func() (Idx, bool)) (Idx, bool) {
	if idx, ok := h.combinators[name]; ok {
		return idx, true
	}
	idx, ok := build()
	if !ok {
		return 0, false
	}
	h.combinators[name] = idx
	return idx, true
}

// ID builds λ0.
func (h *Heap) ID() (Idx, bool) {
	return h.intern(nameID, func() (Idx, bool) {
		v0, ok := h.Init(VarNode(0))
		if !ok {
			return 0, false
		}
		return h.Init(LamNode(v0))
	})
}

// Const builds λλ1 (the K combinator).
func (h *Heap) Const() (Idx, bool) {
	return h.intern(nameConst, func() (Idx, bool) {
		v1, ok := h.Init(VarNode(1))
		if !ok {
			return 0, false
		}
		inner, ok := h.Init(LamNode(v1))
		if !ok {
			return 0, false
		}
		return h.Init(LamNode(inner))
	})
}

// Fork builds λλλ((2 0)(1 0)) (the S combinator).
func (h *Heap) Fork() (Idx, bool) {
	return h.intern(nameFork, func() (Idx, bool) {
		v2, ok := h.Init(VarNode(2))
		if !ok {
			return 0, false
		}
		v0a, ok := h.Init(VarNode(0))
		if !ok {
			return 0, false
		}
		left, ok := h.Init(AppNode(v2, v0a))
		if !ok {
			return 0, false
		}
		v1, ok := h.Init(VarNode(1))
		if !ok {
			return 0, false
		}
		v0b, ok := h.Init(VarNode(0))
		if !ok {
			return 0, false
		}
		right, ok := h.Init(AppNode(v1, v0b))
		if !ok {
			return 0, false
		}
		body, ok := h.Init(AppNode(left, right))
		if !ok {
			return 0, false
		}
		l3, ok := h.Init(LamNode(body))
		if !ok {
			return 0, false
		}
		l2, ok := h.Init(LamNode(l3))
		if !ok {
			return 0, false
		}
		return h.Init(LamNode(l2))
	})
}

// Succ builds λλλ(1 ((2 1) 0)).
func (h *Heap) Succ() (Idx, bool) {
	return h.intern(nameSucc, func() (Idx, bool) {
		return h.buildSucc()
	})
}

func (h *Heap) buildSucc() (Idx, bool) {
	v2, ok := h.Init(VarNode(2))
	if !ok {
		return 0, false
	}
	v1a, ok := h.Init(VarNode(1))
	if !ok {
		return 0, false
	}
	inner, ok := h.Init(AppNode(v2, v1a))
	if !ok {
		return 0, false
	}
	v0, ok := h.Init(VarNode(0))
	if !ok {
		return 0, false
	}
	innerApp, ok := h.Init(AppNode(inner, v0))
	if !ok {
		return 0, false
	}
	v1b, ok := h.Init(VarNode(1))
	if !ok {
		return 0, false
	}
	body, ok := h.Init(AppNode(v1b, innerApp))
	if !ok {
		return 0, false
	}
	l3, ok := h.Init(LamNode(body))
	if !ok {
		return 0, false
	}
	l2, ok := h.Init(LamNode(l3))
	if !ok {
		return 0, false
	}
	return h.Init(LamNode(l2))
}

// Plus builds λλλλ((3 1)((2 1) 0)).
func (h *Heap) Plus() (Idx, bool) {
	return h.intern(namePlus, func() (Idx, bool) {
		v3, ok := h.Init(VarNode(3))
		if !ok {
			return 0, false
		}
		v1a, ok := h.Init(VarNode(1))
		if !ok {
			return 0, false
		}
		left, ok := h.Init(AppNode(v3, v1a))
		if !ok {
			return 0, false
		}
		v2, ok := h.Init(VarNode(2))
		if !ok {
			return 0, false
		}
		v1b, ok := h.Init(VarNode(1))
		if !ok {
			return 0, false
		}
		rightInner, ok := h.Init(AppNode(v2, v1b))
		if !ok {
			return 0, false
		}
		v0, ok := h.Init(VarNode(0))
		if !ok {
			return 0, false
		}
		right, ok := h.Init(AppNode(rightInner, v0))
		if !ok {
			return 0, false
		}
		body, ok := h.Init(AppNode(left, right))
		if !ok {
			return 0, false
		}
		l4, ok := h.Init(LamNode(body))
		if !ok {
			return 0, false
		}
		l3, ok := h.Init(LamNode(l4))
		if !ok {
			return 0, false
		}
		l2, ok := h.Init(LamNode(l3))
		if !ok {
			return 0, false
		}
		return h.Init(LamNode(l2))
	})
}

// Times builds λλλλ((3 (2 1)) 0).
func (h *Heap) Times() (Idx, bool) {
	return h.intern(nameTimes, func() (Idx, bool) {
		v2, ok := h.Init(VarNode(2))
		if !ok {
			return 0, false
		}
		v1, ok := h.Init(VarNode(1))
		if !ok {
			return 0, false
		}
		inner, ok := h.Init(AppNode(v2, v1))
		if !ok {
			return 0, false
		}
		v3, ok := h.Init(VarNode(3))
		if !ok {
			return 0, false
		}
		left, ok := h.Init(AppNode(v3, inner))
		if !ok {
			return 0, false
		}
		v0, ok := h.Init(VarNode(0))
		if !ok {
			return 0, false
		}
		body, ok := h.Init(AppNode(left, v0))
		if !ok {
			return 0, false
		}
		l4, ok := h.Init(LamNode(body))
		if !ok {
			return 0, false
		}
		l3, ok := h.Init(LamNode(l4))
		if !ok {
			return 0, false
		}
		l2, ok := h.Init(LamNode(l3))
		if !ok {
			return 0, false
		}
		return h.Init(LamNode(l2))
	})
}

// Power builds λλλλ(((2 3) 1) 0).
func (h *Heap) Power() (Idx, bool) {
	return h.intern(namePower, func() (Idx, bool) {
		v2, ok := h.Init(VarNode(2))
		if !ok {
			return 0, false
		}
		v3, ok := h.Init(VarNode(3))
		if !ok {
			return 0, false
		}
		inner, ok := h.Init(AppNode(v2, v3))
		if !ok {
			return 0, false
		}
		v1, ok := h.Init(VarNode(1))
		if !ok {
			return 0, false
		}
		left, ok := h.Init(AppNode(inner, v1))
		if !ok {
			return 0, false
		}
		v0, ok := h.Init(VarNode(0))
		if !ok {
			return 0, false
		}
		body, ok := h.Init(AppNode(left, v0))
		if !ok {
			return 0, false
		}
		l4, ok := h.Init(LamNode(body))
		if !ok {
			return 0, false
		}
		l3, ok := h.Init(LamNode(l4))
		if !ok {
			return 0, false
		}
		l2, ok := h.Init(LamNode(l3))
		if !ok {
			return 0, false
		}
		return h.Init(LamNode(l2))
	})
}

// combinatorName reports the canonical name for at's term if it
// structurally equals one of the constants above, else ("", false).
// Used by the pretty-printer (spec §4.6); comparison builds each
// candidate once (via the same intern cache) and compares by handle
// equality first, falling back to a structural walk so a term built by
// separate heap operations still matches.
func (h *Heap) combinatorName(at Idx) (string, bool) {
	candidates := []struct {
		name string
		get  func() (Idx, bool)
	}{
		{nameID, h.ID},
		{nameConst, h.Const},
		{nameFork, h.Fork},
		{nameSucc, h.Succ},
		{namePlus, h.Plus},
		{nameTimes, h.Times},
		{namePower, h.Power},
	}
	for _, c := range candidates {
		ref, ok := c.get()
		if !ok {
			continue
		}
		if at == ref || h.StructurallyEqual(at, ref) {
			return c.name, true
		}
	}
	return "", false
}
