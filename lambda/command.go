package lambda

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/golang/glog"
)

// commandFunc executes one token against editor state, returning any
// diagnostics produced (nil on success).
type commandFunc func(ed *Editor, args []string) []string

// commandEntry pairs a token with its handler and a one-line
// description, mirroring the teacher's (mnemonic, mode, execute, size,
// cycles) instruction table in nes/cpu.go.
type commandEntry struct {
	token string
	desc  string
	fn    commandFunc
}

var commandTable = []commandEntry{
	{"bs", "clear focus to Hole", cmdBs},
	{"l", "wrap focus (or the context's slot) in a Lam", cmdL},
	{"b", "beta the focus if it is a redex", cmdB},
	{"redux", "detach the first redex inside focus into focus", cmdRedux},
	{"dn", "descend into focus", cmdDn},
	{"up", "re-parent: climb out of the slot", cmdUp},
	{"top", "reassemble focus into context and refocus on the whole term", cmdTop},
	{"lm", "swap focus with its own leftmost leaf", cmdLm},
	{"rm", "swap focus with its own rightmost leaf", cmdRm},
	{"lt", "move to the left sibling leaf, or climb left", cmdLt},
	{"rt", "move to the right sibling leaf, or climb right", cmdRt},
	{"$", "apply focus on the left: context.slot <- App(focus, Slot)", cmdApplyLeft},
	{"@", "apply focus on the right: context.slot <- App(Slot, focus)", cmdApplyRight},
	{"+", "focus becomes PLUS, or App(PLUS, focus)", cmdCombinator((*Heap).Plus)},
	{"*", "focus becomes TIMES, or App(TIMES, focus)", cmdCombinator((*Heap).Times)},
	{"^", "focus becomes POWER, or App(POWER, focus)", cmdCombinator((*Heap).Power)},
	{".", "begin variable input-dot mode", cmdDot},
}

var commandsByToken = func() map[string]commandFunc {
	m := make(map[string]commandFunc, len(commandTable))
	for _, c := range commandTable {
		m[c.token] = c.fn
	}
	return m
}()

func boop() []string           { return []string{"boop"} }
func boopBeta() []string       { return []string{"boop(beta)"} }
func boopRedux() []string      { return []string{"boop(redux)"} }
func unrecognized(tok string) []string { return []string{fmt.Sprintf("unrec'd cmd: %s", tok)} }

// ExecuteLine splits line on whitespace and executes each token in
// turn, returning every diagnostic produced (nil on full success). The
// caller renders once after ExecuteLine returns, so a line holding
// several tokens yields one rendering, not one per token.
func (ed *Editor) ExecuteLine(line string) []string {
	var diags []string
	for _, tok := range strings.Fields(line) {
		out := ed.execToken(tok)
		if glog.V(1) {
			glog.Infof("lambda: command %q -> %v", tok, out)
		}
		diags = append(diags, out...)
		ed.normalizeLeafMode()
	}
	return diags
}

func (ed *Editor) execToken(tok string) []string {
	if fn, ok := commandsByToken[tok]; ok {
		return fn(ed, nil)
	}
	if n, ok := parseVarLiteral(tok); ok {
		return cmdNumeral(ed, n, true)
	}
	if n, ok := parseDecimal(tok); ok {
		return cmdNumeral(ed, n, false)
	}
	return unrecognized(tok)
}

func parseDecimal(tok string) (uint16, bool) {
	v, err := strconv.ParseUint(tok, 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(v), true
}

func parseVarLiteral(tok string) (uint16, bool) {
	if len(tok) < 3 || tok[0] != '[' || tok[len(tok)-1] != ']' {
		return 0, false
	}
	return parseDecimal(tok[1 : len(tok)-1])
}

// normalizeLeafMode implements spec §4.5's closing rule: after every
// command, a focus that is no longer a single Var/Hole drops out of
// leaf-mode.
func (ed *Editor) normalizeLeafMode() {
	switch ed.Heap.Get(ed.Focus).Kind() {
	case KindVar, KindHole:
	default:
		ed.Leaf = LeafNone
	}
}

// absorbFocusWithSlotAt detaches the subtree at target (a handle
// reachable from the current focus) into a fresh handle, leaves a Slot
// in target's former position, and splices the old focus (now carrying
// that internal Slot) into the context's existing slot. It is the
// shared core of redux/lm/rm: each just picks a different target within
// focus.
func (ed *Editor) absorbFocusWithSlotAt(target Idx) (Idx, bool) {
	h := ed.Heap
	newFocus, ok := h.detach(target, SlotNode())
	if !ok {
		return 0, false
	}
	slotHandle, _ := h.findSlotHandle(ed.Context)
	*h.GetMut(slotHandle) = h.Get(ed.Focus)
	return newFocus, true
}

// climbOutOfSlot implements the shared re-parenting surgery behind
// `up`, and behind `lt`/`rt` when they climb instead of stepping
// sideways. When require is non-nil, the climb only proceeds if the
// slot's immediate parent satisfies it (used to gate lt/rt to the side
// they name); require == nil means "always climb", `up`'s behavior.
func (ed *Editor) climbOutOfSlot(require func(parent Node) bool) []string {
	h := ed.Heap
	parent, ok := h.FindSlotParent(ed.Context)
	if !ok {
		return boop()
	}
	pn := h.Get(parent)
	if require != nil && !require(pn) {
		return boop()
	}
	if h.Get(ed.Focus).Kind() == KindHole && pn.Kind() == KindApp {
		var other Idx
		if h.Get(pn.Fun()).Kind() == KindSlot {
			other = pn.Arg()
		} else {
			other = pn.Fun()
		}
		moved, ok2 := h.shallowCopy(other)
		if !ok2 {
			return boop()
		}
		*h.GetMut(parent) = SlotNode()
		ed.Focus = moved
		return nil
	}
	slotHandle, _ := h.findSlotHandle(ed.Context)
	newFocus, ok2 := h.detach(parent, SlotNode())
	if !ok2 {
		return boop()
	}
	*h.GetMut(slotHandle) = h.Get(ed.Focus)
	ed.Focus = newFocus
	return nil
}

// swapSibling implements the leaf-mode half of lt/rt: trade the current
// focus for a sibling leaf found by find, or exit leaf-mode if there is
// none (spec §9's "no further motion").
func (ed *Editor) swapSibling(find func(*Heap, Idx) (Idx, Idx, bool)) []string {
	h := ed.Heap
	slotHandle, sibHandle, ok := find(h, ed.Context)
	if !ok {
		ed.Leaf = LeafNone
		return nil
	}
	moved, ok2 := h.shallowCopy(sibHandle)
	if !ok2 {
		return boop()
	}
	*h.GetMut(sibHandle) = SlotNode()
	*h.GetMut(slotHandle) = h.Get(ed.Focus)
	ed.Focus = moved
	return nil
}

func cmdBs(ed *Editor, _ []string) []string {
	*ed.Heap.GetMut(ed.Focus) = HoleNode
	return nil
}

func cmdL(ed *Editor, _ []string) []string {
	h := ed.Heap
	if h.Get(ed.Focus).Kind() != KindHole {
		lam, ok := h.Init(LamNode(ed.Focus))
		if !ok {
			return boop()
		}
		ed.Focus = lam
		return nil
	}
	newSlot, ok := h.Init(SlotNode())
	if !ok {
		return boop()
	}
	lam, ok := h.Init(LamNode(newSlot))
	if !ok {
		return boop()
	}
	slotHandle, _ := h.findSlotHandle(ed.Context)
	*h.GetMut(slotHandle) = h.Get(lam)
	return nil
}

func cmdB(ed *Editor, _ []string) []string {
	if !ed.Heap.IsRedux(ed.Focus) {
		return boopBeta()
	}
	ed.Heap.Beta(ed.Focus)
	return nil
}

func cmdRedux(ed *Editor, _ []string) []string {
	h := ed.Heap
	target, ok := h.FindRedux(ed.Focus)
	if !ok {
		return boopRedux()
	}
	newFocus, ok := ed.absorbFocusWithSlotAt(target)
	if !ok {
		return boopRedux()
	}
	ed.Focus = newFocus
	return nil
}

func cmdDn(ed *Editor, _ []string) []string {
	h := ed.Heap
	n := h.Get(ed.Focus)
	switch n.Kind() {
	case KindLam:
		newSlot, ok := h.Init(SlotNode())
		if !ok {
			return boop()
		}
		lam, ok := h.Init(LamNode(newSlot))
		if !ok {
			return boop()
		}
		slotHandle, _ := h.findSlotHandle(ed.Context)
		*h.GetMut(slotHandle) = h.Get(lam)
		ed.Focus = n.Body()
		return nil
	case KindApp:
		newSlot, ok := h.Init(SlotNode())
		if !ok {
			return boop()
		}
		app, ok := h.Init(AppNode(newSlot, n.Arg()))
		if !ok {
			return boop()
		}
		slotHandle, _ := h.findSlotHandle(ed.Context)
		*h.GetMut(slotHandle) = h.Get(app)
		ed.Focus = n.Fun()
		return nil
	case KindVar, KindHole:
		if ed.Leaf == LeafNone {
			ed.Leaf = LeafLeaf
			return nil
		}
		return boop()
	default:
		return boop()
	}
}

func cmdUp(ed *Editor, _ []string) []string {
	if ed.Leaf != LeafNone {
		ed.Leaf = LeafNone
		return nil
	}
	return ed.climbOutOfSlot(nil)
}

func cmdTop(ed *Editor, _ []string) []string {
	h := ed.Heap
	newCtx, ok := h.Init(SlotNode())
	if !ok {
		return boop()
	}
	h.ReplaceSlot(ed.Context, ed.Focus)
	ed.Focus = ed.Context
	ed.Context = newCtx
	return nil
}

func cmdLm(ed *Editor, _ []string) []string {
	target := ed.Heap.Leftmost(ed.Focus)
	newFocus, ok := ed.absorbFocusWithSlotAt(target)
	if !ok {
		return boop()
	}
	ed.Focus = newFocus
	ed.Leaf = LeafLeaf
	return nil
}

func cmdRm(ed *Editor, _ []string) []string {
	target := ed.Heap.Rightmost(ed.Focus)
	newFocus, ok := ed.absorbFocusWithSlotAt(target)
	if !ok {
		return boop()
	}
	ed.Focus = newFocus
	ed.Leaf = LeafLeaf
	return nil
}

// cmdLt: in leaf-mode, step to the left sibling leaf. Otherwise climb,
// but only when the slot sits in an App's right (Arg) position — the
// left sibling is then the App's Fun side (see DESIGN.md's Open
// Question log for why lt/rt gate the climb this way).
func cmdLt(ed *Editor, _ []string) []string {
	if ed.Leaf != LeafNone {
		return ed.swapSibling((*Heap).FindSlotLeftSibling)
	}
	return ed.climbOutOfSlot(func(parent Node) bool {
		return parent.Kind() == KindApp && ed.Heap.Get(parent.Arg()).Kind() == KindSlot
	})
}

func cmdRt(ed *Editor, _ []string) []string {
	if ed.Leaf != LeafNone {
		return ed.swapSibling((*Heap).FindSlotRightSibling)
	}
	return ed.climbOutOfSlot(func(parent Node) bool {
		return parent.Kind() == KindApp && ed.Heap.Get(parent.Fun()).Kind() == KindSlot
	})
}

func cmdApplyLeft(ed *Editor, _ []string) []string {
	h := ed.Heap
	newSlot, ok := h.Init(SlotNode())
	if !ok {
		return boop()
	}
	app, ok := h.Init(AppNode(ed.Focus, newSlot))
	if !ok {
		return boop()
	}
	newHole, ok := h.Init(HoleNode)
	if !ok {
		return boop()
	}
	slotHandle, _ := h.findSlotHandle(ed.Context)
	*h.GetMut(slotHandle) = h.Get(app)
	ed.Focus = newHole
	return nil
}

func cmdApplyRight(ed *Editor, _ []string) []string {
	h := ed.Heap
	newSlot, ok := h.Init(SlotNode())
	if !ok {
		return boop()
	}
	app, ok := h.Init(AppNode(newSlot, ed.Focus))
	if !ok {
		return boop()
	}
	newHole, ok := h.Init(HoleNode)
	if !ok {
		return boop()
	}
	slotHandle, _ := h.findSlotHandle(ed.Context)
	*h.GetMut(slotHandle) = h.Get(app)
	ed.Focus = newHole
	return nil
}

// cmdCombinator builds the +/*/^ handlers: each wraps the named
// constant-builder (Plus, Times, or Power) the same way.
func cmdCombinator(get func(*Heap) (Idx, bool)) commandFunc {
	return func(ed *Editor, _ []string) []string {
		h := ed.Heap
		c, ok := get(h)
		if !ok {
			return boop()
		}
		// Work on a copy: later commands (bs, b) rewrite focus nodes in
		// place, and the interned constant must stay intact.
		c, ok = h.Duplicate(c)
		if !ok {
			return boop()
		}
		if h.Get(ed.Focus).Kind() == KindHole {
			ed.Focus = c
			return nil
		}
		app, ok := h.Init(AppNode(c, ed.Focus))
		if !ok {
			return boop()
		}
		ed.Focus = app
		return nil
	}
}

func cmdDot(ed *Editor, _ []string) []string {
	h := ed.Heap
	if h.Get(ed.Focus).Kind() == KindHole {
		ed.Leaf = LeafInputDot
		return nil
	}
	newSlot, ok := h.Init(SlotNode())
	if !ok {
		return boop()
	}
	app, ok := h.Init(AppNode(ed.Focus, newSlot))
	if !ok {
		return boop()
	}
	newHole, ok := h.Init(HoleNode)
	if !ok {
		return boop()
	}
	slotHandle, _ := h.findSlotHandle(ed.Context)
	*h.GetMut(slotHandle) = h.Get(app)
	ed.Focus = newHole
	ed.Leaf = LeafInputDot
	return nil
}

// cmdNumeral implements both the decimal-integer and `[n]` command
// forms (spec §4.5); isVarLiteral selects Var(n) over from_nat(n) in
// the two branches where the source number, not an input-dot
// completion, decides the shape.
func cmdNumeral(ed *Editor, n uint16, isVarLiteral bool) []string {
	h := ed.Heap
	if h.Get(ed.Focus).Kind() == KindHole && ed.Leaf == LeafInputDot {
		v, ok := h.Init(VarNode(n))
		if !ok {
			return boop()
		}
		ed.Focus = v
		ed.Leaf = LeafLeaf
		return nil
	}
	build := h.FromNat
	if isVarLiteral {
		build = func(u uint16) (Idx, bool) { return h.Init(VarNode(u)) }
	}
	if h.Get(ed.Focus).Kind() == KindHole {
		v, ok := build(n)
		if !ok {
			return boop()
		}
		ed.Focus = v
		return nil
	}
	lit, ok := build(n)
	if !ok {
		return boop()
	}
	app, ok := h.Init(AppNode(ed.Focus, lit))
	if !ok {
		return boop()
	}
	ed.Focus = app
	return nil
}
