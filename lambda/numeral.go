package lambda

// FromNat builds the Church numeral λλ(1 (1 (... (1 0) ...))) with n
// applications of Var(1).
func (h *Heap) FromNat(n uint16) (Idx, bool) {
	body, ok := h.Init(VarNode(0))
	if !ok {
		return 0, false
	}
	for i := uint16(0); i < n; i++ {
		one, ok2 := h.Init(VarNode(1))
		if !ok2 {
			return 0, false
		}
		body, ok = h.Init(AppNode(one, body))
		if !ok {
			return 0, false
		}
	}
	inner, ok := h.Init(LamNode(body))
	if !ok {
		return 0, false
	}
	return h.Init(LamNode(inner))
}

// ToNat recognizes the exact Church numeral shape structurally and
// returns n. It does not normalize first (spec §4.3.6): a term that is
// merely beta-equivalent to a numeral but not in that exact shape
// yields (0, false).
func (h *Heap) ToNat(at Idx) (uint16, bool) {
	outer := h.Get(at)
	if outer.Kind() != KindLam {
		return 0, false
	}
	inner := h.Get(outer.Body())
	if inner.Kind() != KindLam {
		return 0, false
	}
	cur := inner.Body()
	var n uint16
	for {
		c := h.Get(cur)
		if c.Kind() == KindVar && c.Var() == 0 {
			return n, true
		}
		if c.Kind() != KindApp {
			return 0, false
		}
		fun := h.Get(c.Fun())
		if fun.Kind() != KindVar || fun.Var() != 1 {
			return 0, false
		}
		n++
		cur = c.Arg()
	}
}

// EtaReduce rewrites Lam(App(e, Var(0))) to e when e has no free
// occurrence of Var(0), dropping the redundant wrapper. It reports
// whether a reduction happened. This is the optional pass of spec
// §4.3.7, kept for API completeness (no command token invokes it — see
// SPEC_FULL.md §5); it is not wired into Hnf/Nf.
func (h *Heap) EtaReduce(at Idx) bool {
	lam := h.Get(at)
	if lam.Kind() != KindLam {
		return false
	}
	app := h.Get(lam.Body())
	if app.Kind() != KindApp {
		return false
	}
	arg := h.Get(app.Arg())
	if arg.Kind() != KindVar || arg.Var() != 0 {
		return false
	}
	if h.occursFree(app.Fun(), 0) {
		return false
	}
	h.Unshift(app.Fun(), 0)
	*h.GetMut(at) = h.Get(app.Fun())
	return true
}

// EtaExpand builds Lam(App(shift(e,0,1), Var(0))) from a copy of the
// term e at `at` and returns its handle, the inverse of EtaReduce. The
// term at `at` itself is left unchanged.
func (h *Heap) EtaExpand(at Idx) (Idx, bool) {
	body, ok := h.Duplicate(at)
	if !ok {
		return 0, false
	}
	h.Shift(body, 0, 1)
	zero, ok := h.Init(VarNode(0))
	if !ok {
		return 0, false
	}
	app, ok := h.Init(AppNode(body, zero))
	if !ok {
		return 0, false
	}
	return h.Init(LamNode(app))
}
