package lambda

import (
	"fmt"
	"strings"
)

const (
	lambdaGlyph = "λ"
	holeGlyph   = "▪"

	// cursorStart/cursorEnd are the two PUA sentinel code points an
	// outer display toggles inverse video between (spec §4.6, §6).
	cursorStart   = ""
	cursorEnd     = ""
	inputDotGlyph = "‸" // caret: awaiting a digit to complete a variable literal

	// underline is a combining low line appended to a variable glyph to
	// render the leaf-mode "underlined variable" look (spec §4.6) without
	// a second glyph table in the core printer; `display` keeps its own
	// VAR_LEAF bitmap table for the LCD collaborator (SPEC_FULL.md §9).
	underline = "̲"
)

// varNumerals holds the eleven dedicated variable glyphs for u <= 10,
// grounded on original_source/src/lambda.rs's VAR_NUMERALS constant.
var varNumerals = [11]string{
	"\U0001f10c", "➊", "➋", "➌", "➍",
	"➎", "➏", "➐", "➑", "➒", "➓",
}

func varGlyph(u uint16) string {
	if u <= 10 {
		return varNumerals[u]
	}
	return fmt.Sprintf("[%d]", u)
}

// Render renders the editor's (context, focus, leaf-mode) as a single
// display line (spec §4.6).
func (ed *Editor) Render() string {
	var sb strings.Builder
	ed.Heap.printNode(&sb, ed.Context, ed.Focus, ed.Leaf, false, false)
	return sb.String()
}

// printNode recurses over at, with alt/signPlus mirroring the source's
// Display flags: alt requests self-parenthesization (App always asks it
// of its right operand and of a Lam left operand; nothing else does),
// signPlus requests a leading space (only a Lam ever asks it of its
// body). Numeral/combinator recognition and the leaf-mode/input-dot
// glyphs all short-circuit both — recognized shapes are never
// parenthesized or space-prefixed by a caller's request.
func (h *Heap) printNode(sb *strings.Builder, at, focus Idx, leaf LeafMode, alt, signPlus bool) {
	if n, ok := h.ToNat(at); ok {
		fmt.Fprintf(sb, "%d", n)
		return
	}
	if name, ok := h.combinatorName(at); ok {
		sb.WriteString(name)
		return
	}
	n := h.Get(at)
	switch n.Kind() {
	case KindHole:
		sb.WriteString(holeGlyph)
	case KindVar:
		sb.WriteString(varGlyph(n.Var()))
	case KindLam:
		if alt {
			sb.WriteByte('(')
		}
		sb.WriteString(lambdaGlyph)
		h.printNode(sb, n.Body(), focus, leaf, false, true)
		if alt {
			sb.WriteByte(')')
		}
	case KindApp:
		if signPlus {
			sb.WriteByte(' ')
		}
		if alt {
			sb.WriteByte('(')
		}
		leftAlt := h.Get(n.Fun()).Kind() == KindLam
		h.printNode(sb, n.Fun(), focus, leaf, leftAlt, false)
		sb.WriteByte(' ')
		h.printNode(sb, n.Arg(), focus, leaf, true, false)
		if alt {
			sb.WriteByte(')')
		}
	case KindSlot:
		h.printSlot(sb, focus, leaf, alt, signPlus)
	}
}

// printSlot renders the focus in place of the unique Slot, applying
// whichever leaf-mode override spec §4.6 names, or otherwise wrapping
// the ordinary rendering (parens and leading space included) between
// the cursor sentinels.
func (h *Heap) printSlot(sb *strings.Builder, focus Idx, leaf LeafMode, alt, signPlus bool) {
	fn := h.Get(focus)
	if leaf == LeafLeaf && fn.Kind() == KindVar {
		sb.WriteString(varGlyph(fn.Var()))
		sb.WriteString(underline)
		return
	}
	if leaf == LeafInputDot && fn.Kind() == KindHole {
		sb.WriteString(inputDotGlyph)
		return
	}
	sb.WriteString(cursorStart)
	h.printNode(sb, focus, focus, LeafNone, alt, signPlus)
	sb.WriteString(cursorEnd)
}
