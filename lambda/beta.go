package lambda

import "github.com/golang/glog"

// Beta reduces the node at `at` if it is App(Lam(e), r), substituting
// (a capture-avoiding copy of) r for the lambda's bound variable and
// dropping the lambda. It overwrites the node at `at` in place with the
// reduced term's root encoding. The lambda body's own nodes are
// rewritten in place and reused as the reduced term; each substituted
// occurrence of r is a fresh duplicate, and the original App/Lam nodes
// become unreachable garbage (see the allocator notes in DESIGN.md —
// the base design never reclaims them).
//
// Beta returns true iff `at` was actually a redex; this is independent
// of whether every allocation during substitution succeeded. On heap
// exhaustion mid-substitution the reduction is applied as far as it
// could go and a diagnostic is logged — `spec.md` itself leaves exact
// behavior here as the "no fuel or step cap" trade-off of an allocator
// with no promotion, not a case this implementation invents.
func (h *Heap) Beta(at Idx) bool {
	n := h.Get(at)
	if n.Kind() != KindApp {
		return false
	}
	fun := h.Get(n.Fun())
	if fun.Kind() != KindLam {
		return false
	}
	e := fun.Body()
	r := n.Arg()

	// Substitute first, while the bound variable is still the only
	// Var(depth) in e. Each copy of r is shifted one level past its
	// depth, because the Unshift below collapses every free variable of
	// the result by one to account for the stripped binder's removal.
	hasFree := h.hasFreeVars(r)
	var shift uint16
	if hasFree {
		shift = 1
	}
	if ok := h.replace(e, 0, r, shift, hasFree); !ok {
		glog.Infof("lambda: beta: heap exhausted mid-substitution at idx=%d", at)
	}
	h.Unshift(e, 1)
	*h.GetMut(at) = h.Get(e)
	return true
}

// replace walks e, substituting a shifted copy of `to` for every free
// occurrence of Var(v). `shift` accumulates by one per Lam crossed,
// but only when `toHasFree` — a term with no free variables is
// shift-invariant, so crossing further binders never needs to touch
// it (spec §4.3.4a). Returns false if an allocation failed anywhere in
// the walk.
func (h *Heap) replace(at Idx, v uint16, to Idx, shift uint16, toHasFree bool) bool {
	n := h.Get(at)
	switch n.Kind() {
	case KindHole, KindSlot:
		return true
	case KindVar:
		if n.Var() != v {
			return true
		}
		cp, ok := h.Duplicate(to)
		if !ok {
			return false
		}
		if shift > 0 {
			h.Shift(cp, 0, shift)
		}
		*h.GetMut(at) = h.Get(cp)
		return true
	case KindLam:
		next := shift
		if toHasFree {
			next++
		}
		return h.replace(n.Body(), v+1, to, next, toHasFree)
	case KindApp:
		okFun := h.replace(n.Fun(), v, to, shift, toHasFree)
		okArg := h.replace(n.Arg(), v, to, shift, toHasFree)
		return okFun && okArg
	default:
		return true
	}
}

func (h *Heap) hasFreeVars(t Idx) bool {
	return h.hasFreeVarsAt(t, 0)
}

func (h *Heap) hasFreeVarsAt(t Idx, depth uint16) bool {
	n := h.Get(t)
	switch n.Kind() {
	case KindVar:
		return n.Var() >= depth
	case KindLam:
		return h.hasFreeVarsAt(n.Body(), depth+1)
	case KindApp:
		return h.hasFreeVarsAt(n.Fun(), depth) || h.hasFreeVarsAt(n.Arg(), depth)
	default:
		return false
	}
}

// occursFree reports whether a Var node bound to exactly target occurs
// free in t, t's own coordinate frame starting at depth 0. Unlike
// hasFreeVarsAt's ">= depth" threshold (which asks "does anything
// escape this many binders"), this asks about one specific binder:
// EtaReduce uses it to ask "is the wrapping Lam's own bound variable,
// Var(0) in its body's frame, used anywhere inside e."
func (h *Heap) occursFree(t Idx, target uint16) bool {
	n := h.Get(t)
	switch n.Kind() {
	case KindVar:
		return n.Var() == target
	case KindLam:
		return h.occursFree(n.Body(), target+1)
	case KindApp:
		return h.occursFree(n.Fun(), target) || h.occursFree(n.Arg(), target)
	default:
		return false
	}
}
