package lambda

import (
	"strings"
	"testing"
)

func TestCommandBsClearsFocusToHole(t *testing.T) {
	ed := NewEditor()
	*ed.Heap.GetMut(ed.Focus) = VarNode(3)

	ed.ExecuteLine("bs")
	if got := ed.Heap.Get(ed.Focus).Kind(); got != KindHole {
		t.Fatalf("after bs: Focus Kind()=%v, want=%v", got, KindHole)
	}
}

func TestCommandLWrapsNonHoleFocusInLam(t *testing.T) {
	ed := NewEditor()
	*ed.Heap.GetMut(ed.Focus) = VarNode(2)
	original := ed.Focus

	ed.ExecuteLine("l")
	focus := ed.Heap.Get(ed.Focus)
	if focus.Kind() != KindLam {
		t.Fatalf("after l: Focus Kind()=%v, want=%v", focus.Kind(), KindLam)
	}
	if focus.Body() != original {
		t.Fatalf("after l: Lam body=%d, want the original focus handle %d", focus.Body(), original)
	}
}

func TestCommandLOnHoleWrapsTheContextSlotInstead(t *testing.T) {
	ed := NewEditor()
	ed.ExecuteLine("l")
	if got := ed.Heap.Get(ed.Context).Kind(); got != KindLam {
		t.Fatalf("after l on a Hole focus: Context Kind()=%v, want=%v", got, KindLam)
	}
	if got := ed.Heap.Get(ed.Focus).Kind(); got != KindHole {
		t.Fatalf("after l on a Hole focus: Focus Kind()=%v, want=%v (untouched)", got, KindHole)
	}
}

func TestCommandBReducesARedexFocus(t *testing.T) {
	ed := NewEditor()
	h := ed.Heap
	v0, _ := h.Init(VarNode(0))
	idFn, _ := h.Init(LamNode(v0))
	r, _ := h.Init(VarNode(4))
	ed.Focus, _ = h.Init(AppNode(idFn, r))

	diags := ed.ExecuteLine("b")
	if diags != nil {
		t.Fatalf("b on a redex: diagnostics=%v, want=nil", diags)
	}
	if got := h.Get(ed.Focus).Var(); got != 4 {
		t.Fatalf("after b on App(I,4): Focus Var()=%d, want=4", got)
	}
}

func TestCommandBOnNonRedexBoops(t *testing.T) {
	ed := NewEditor()
	diags := ed.ExecuteLine("b")
	if len(diags) != 1 || !strings.Contains(diags[0], "boop") {
		t.Fatalf("b on a Hole focus: diagnostics=%v, want a boop", diags)
	}
}

func TestCommandReduxAbsorbsFirstNestedRedex(t *testing.T) {
	ed := NewEditor()
	h := ed.Heap
	v0, _ := h.Init(VarNode(0))
	idFn, _ := h.Init(LamNode(v0))
	r, _ := h.Init(VarNode(9))
	innerRedex, _ := h.Init(AppNode(idFn, r))
	v3, _ := h.Init(VarNode(3))
	ed.Focus, _ = h.Init(AppNode(v3, innerRedex))

	ed.ExecuteLine("redux")
	if !h.IsRedux(ed.Focus) {
		t.Fatalf("after redux: Focus is not a redex, want the absorbed App(I,9)")
	}
	parent, ok := h.FindSlotParent(ed.Context)
	if !ok {
		t.Fatalf("after redux: FindSlotParent: ok=false, want=true")
	}
	if h.Get(h.Get(parent).Arg()).Kind() != KindSlot {
		t.Fatalf("after redux: the slot left behind is not in the Arg position")
	}
}

func TestCommandDnEntersLeafModeThenBoops(t *testing.T) {
	ed := NewEditor()
	*ed.Heap.GetMut(ed.Focus) = VarNode(0)

	if diags := ed.ExecuteLine("dn"); diags != nil {
		t.Fatalf("first dn at a Var: diagnostics=%v, want=nil", diags)
	}
	if ed.Leaf != LeafLeaf {
		t.Fatalf("first dn at a Var: Leaf=%v, want=%v", ed.Leaf, LeafLeaf)
	}
	diags := ed.ExecuteLine("dn")
	if len(diags) != 1 || !strings.Contains(diags[0], "boop") {
		t.Fatalf("second dn already in leaf-mode: diagnostics=%v, want a boop", diags)
	}
}

func TestCommandDnDescendsIntoLamThenApp(t *testing.T) {
	ed := NewEditor()
	h := ed.Heap
	v0, _ := h.Init(VarNode(0))
	v1, _ := h.Init(VarNode(1))
	app, _ := h.Init(AppNode(v0, v1))
	ed.Focus, _ = h.Init(LamNode(app))

	ed.ExecuteLine("dn")
	if ed.Focus != app {
		t.Fatalf("dn into Lam: Focus=%d, want=%d", ed.Focus, app)
	}
	ed.ExecuteLine("dn")
	if ed.Focus != v0 {
		t.Fatalf("dn into App: Focus=%d, want=%d (the Fun side)", ed.Focus, v0)
	}
}

func TestCommandUpFirstExitsLeafModeThenClimbs(t *testing.T) {
	ed := NewEditor()
	ed.ExecuteLine("l .")
	ed.ExecuteLine("1")
	if ed.Leaf != LeafLeaf {
		t.Fatalf("after l . 1: Leaf=%v, want=%v", ed.Leaf, LeafLeaf)
	}

	ed.ExecuteLine("up")
	if ed.Leaf != LeafNone {
		t.Fatalf("first up: Leaf=%v, want=%v", ed.Leaf, LeafNone)
	}
	if ed.Heap.Get(ed.Focus).Var() != 1 {
		t.Fatalf("first up only exits leaf-mode, Focus should be unchanged")
	}

	ed.ExecuteLine("up")
	focus := ed.Heap.Get(ed.Focus)
	if focus.Kind() != KindLam || ed.Heap.Get(focus.Body()).Var() != 1 {
		t.Fatalf("second up: Focus=%v, want Lam(Var(1))", focus)
	}

	diags := ed.ExecuteLine("up")
	if len(diags) != 1 || !strings.Contains(diags[0], "boop") {
		t.Fatalf("third up at the top: diagnostics=%v, want a boop", diags)
	}
}

func TestCommandTopReRootsAndResetsContext(t *testing.T) {
	ed := NewEditor()
	*ed.Heap.GetMut(ed.Focus) = VarNode(5)

	ed.ExecuteLine("top")
	if got := ed.Heap.Get(ed.Context).Kind(); got != KindSlot {
		t.Fatalf("after top: new Context Kind()=%v, want=%v", got, KindSlot)
	}
	if got := ed.Heap.Get(ed.Focus).Var(); got != 5 {
		t.Fatalf("after top: Focus Var()=%d, want=5", got)
	}
}

func TestCommandLmEntersLeafMode(t *testing.T) {
	ed := NewEditor()
	h := ed.Heap
	l, _ := h.Init(VarNode(1))
	r, _ := h.Init(VarNode(2))
	ed.Focus, _ = h.Init(AppNode(l, r))

	ed.ExecuteLine("lm")
	if ed.Leaf != LeafLeaf || h.Get(ed.Focus).Var() != 1 {
		t.Fatalf("after lm: Focus=%v Leaf=%v, want Var(1) in LeafLeaf", h.Get(ed.Focus), ed.Leaf)
	}
}

func TestCommandLtRtGateOnSlotSide(t *testing.T) {
	ed := NewEditor()
	h := ed.Heap
	v0, _ := h.Init(VarNode(0))
	idFn, _ := h.Init(LamNode(v0))
	r, _ := h.Init(VarNode(9))
	innerRedex, _ := h.Init(AppNode(idFn, r))
	v3, _ := h.Init(VarNode(3))
	ed.Focus, _ = h.Init(AppNode(v3, innerRedex))
	ed.ExecuteLine("redux") // leaves the slot in the Arg position

	if diags := ed.ExecuteLine("rt"); len(diags) != 1 || !strings.Contains(diags[0], "boop") {
		t.Fatalf("rt when the slot is in the Arg position: diagnostics=%v, want a boop", diags)
	}
	ed.ExecuteLine("lt")
	// lt climbs (re-parents) rather than stepping sideways outside
	// leaf-mode: the reconstructed focus is the whole former parent,
	// App(v3, App(I,9)), not just its Fun sibling.
	climbed := h.Get(ed.Focus)
	if climbed.Kind() != KindApp || h.Get(climbed.Fun()).Var() != 3 {
		t.Fatalf("lt climbing out of an Arg-side slot: Focus=%v, want App(Var(3), _)", climbed)
	}
	if !h.IsRedux(climbed.Arg()) {
		t.Fatalf("lt climbing out of an Arg-side slot: Arg side is not the absorbed redex")
	}
}

func TestCommandApplyLeft(t *testing.T) {
	ed := NewEditor()
	*ed.Heap.GetMut(ed.Focus) = VarNode(1)

	ed.ExecuteLine("$")
	if got := ed.Heap.Get(ed.Focus).Kind(); got != KindHole {
		t.Fatalf("after $: Focus Kind()=%v, want=%v", got, KindHole)
	}
	parent, ok := ed.Heap.FindSlotParent(ed.Context)
	if !ok || parent != ed.Context {
		t.Fatalf("after $: FindSlotParent=(%d,%v), want=(%d,true)", parent, ok, ed.Context)
	}
	if got := ed.Heap.Get(parent).Fun(); ed.Heap.Get(got).Var() != 1 {
		t.Fatalf("after $: the App's Fun side should be the old focus Var(1)")
	}
}

func TestCommandCombinatorFactoryWrapsOrReplaces(t *testing.T) {
	ed := NewEditor()
	ed.ExecuteLine("+")
	if name, ok := ed.Heap.combinatorName(ed.Focus); !ok || name != namePlus {
		t.Fatalf("+ on a Hole focus: combinatorName()=(%q,%v), want=(%q,true)", name, ok, namePlus)
	}

	ed2 := NewEditor()
	*ed2.Heap.GetMut(ed2.Focus) = VarNode(1)
	ed2.ExecuteLine("*")
	app := ed2.Heap.Get(ed2.Focus)
	if app.Kind() != KindApp {
		t.Fatalf("* on a non-Hole focus: Focus Kind()=%v, want=%v", app.Kind(), KindApp)
	}
	if name, ok := ed2.Heap.combinatorName(app.Fun()); !ok || name != nameTimes {
		t.Fatalf("* wrapping: Fun side combinatorName()=(%q,%v), want=(%q,true)", name, ok, nameTimes)
	}
}

func TestCommandDotInputThenVarLiteralRoundTrips(t *testing.T) {
	ed := NewEditor()
	ed.ExecuteLine("l")
	ed.ExecuteLine(".")
	if ed.Leaf != LeafInputDot {
		t.Fatalf("after .: Leaf=%v, want=%v", ed.Leaf, LeafInputDot)
	}
	ed.ExecuteLine("1")
	if ed.Leaf != LeafLeaf || ed.Heap.Get(ed.Focus).Var() != 1 {
		t.Fatalf("after . 1: Focus=%v Leaf=%v, want Var(1) in LeafLeaf", ed.Heap.Get(ed.Focus), ed.Leaf)
	}

	ed.ExecuteLine("up")
	ed.ExecuteLine("up")
	focus := ed.Heap.Get(ed.Focus)
	if focus.Kind() != KindLam || ed.Heap.Get(focus.Body()).Var() != 1 {
		t.Fatalf("l . 1 up up: Focus=%v, want Lam(Var(1))", focus)
	}
}

func TestCommandVarLiteralBracketForm(t *testing.T) {
	ed := NewEditor()
	ed.ExecuteLine("[12]")
	if got := ed.Heap.Get(ed.Focus); got.Kind() != KindVar || got.Var() != 12 {
		t.Fatalf("[12]: Focus=%v, want Var(12)", got)
	}
}

func TestUnrecognizedCommandDiagnostic(t *testing.T) {
	ed := NewEditor()
	diags := ed.ExecuteLine("frobnicate")
	if len(diags) != 1 || !strings.Contains(diags[0], "frobnicate") {
		t.Fatalf("unrecognized token: diagnostics=%v, want a message naming the token", diags)
	}
}

func TestScenarioPlusOneDollarOneTopNormalizesToTwo(t *testing.T) {
	ed := NewEditor()
	ed.ExecuteLine("+ 1 $ 1 top")
	ed.Heap.Nf(ed.Focus)
	n, ok := ed.Heap.ToNat(ed.Focus)
	if !ok || n != 2 {
		t.Fatalf("+ 1 $ 1 top, normalized: got=(%d,%v), want=(2,true)", n, ok)
	}
}

func TestScenarioPowerTwoFourTopNormalizesToSixteen(t *testing.T) {
	ed := NewEditor()
	ed.ExecuteLine("^ 2 4 top")
	ed.Heap.Nf(ed.Focus)
	n, ok := ed.Heap.ToNat(ed.Focus)
	if !ok || n != 16 {
		t.Fatalf("^ 2 4 top, normalized: got=(%d,%v), want=(16,true)", n, ok)
	}
}
