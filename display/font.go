// Package display draws the pretty-printer's output to a glfw window,
// the out-of-scope "LCD" collaborator given a concrete, compilable
// shape: a bitmap font rasterized into an image.RGBA and uploaded as a
// single textured quad, exactly as ui.Start uploads the PPU's
// framebuffer in the teacher repo.
package display

// glyph is one character's bitmap: each byte is one column, bit i of a
// column lights row i from the top. Columns run left to right, grouped
// with a one-pixel gap by the caller (lcd.rs's FONT_DATA/font_map
// shape: a variable-width column-bitmap font keyed by rune).
type glyph []byte

// GlyphHeight is the fixed pixel height every glyph's columns address.
const GlyphHeight = 8

var asciiFont = map[rune]glyph{
	' ':  {0, 0, 0},
	'(':  {0x3e, 0x41},
	')':  {0x41, 0x3e},
	'+':  {0x08, 0x08, 0x3e, 0x08, 0x08},
	'*':  {0x2a, 0x1c, 0x2a},
	'^':  {0x02, 0x01, 0x02},
	'-':  {0x08, 0x08, 0x08},
	'.':  {0x01},
	'[':  {0x7f, 0x41},
	']':  {0x41, 0x7f},
	'I':  {0x41, 0x7f, 0x41},
	'K':  {0x7f, 0x14, 0x22, 0x41},
	'S':  {0x26, 0x49, 0x49, 0x32},
	'U':  {0x3f, 0x40, 0x40, 0x3f},
	'C':  {0x3e, 0x41, 0x41, 0x22},
	'0':  {0x3e, 0x51, 0x49, 0x45, 0x3e},
	'1':  {0x42, 0x7f, 0x40},
	'2':  {0x62, 0x51, 0x49, 0x46},
	'3':  {0x22, 0x49, 0x49, 0x36},
	'4':  {0x18, 0x14, 0x12, 0x7f, 0x10},
	'5':  {0x27, 0x45, 0x45, 0x39},
	'6':  {0x3c, 0x4a, 0x49, 0x30},
	'7':  {0x01, 0x71, 0x09, 0x05, 0x03},
	'8':  {0x36, 0x49, 0x49, 0x36},
	'9':  {0x06, 0x49, 0x29, 0x1e},
	'λ':  {0x08, 0x14, 0x22, 0x41, 0x41},
	'▪':  {0x1c, 0x1c, 0x1c},
	'‸':  {0x08, 0x04, 0x08},
}

// VAR_NUMERALS is the glyph bitmap for a focus-agnostic variable index
// 0 through 10, one entry per index, matching the dingbat-circled-digit
// table picolambda/src/lcd.rs's CHAR_LIST dedicates to lambda's
// VAR_NUMERALS (🄌,➊..➓); the exact pixel art is reauthored here, the
// table's shape and indexing is grounded on that source.
var VAR_NUMERALS = buildCircledDigits(false)

// VAR_LEAF is the matching table for the underlined, leaf-mode variant
// (lcd.rs's second, inverted/underlined digit row — see DESIGN.md's
// display package notes for how it is built). Lookup and rasterize do
// not use it: rasterize draws the leaf-mode underline itself when it
// meets the combining underlineRune after a variable glyph.
var VAR_LEAF = buildCircledDigits(true)

func buildCircledDigits(underline bool) [11]glyph {
	var out [11]glyph
	for i := 0; i <= 10; i++ {
		var g glyph
		if i == 0 {
			g = glyph{0x3e, 0x41, 0x5d, 0x5d, 0x41, 0x3e}
		} else {
			d := digitGlyph(i)
			ring := glyph{0x3e, 0x41}
			g = append(append(append(glyph{}, ring...), d...), ring[len(ring)-1], ring[0])
		}
		if underline {
			// Row 7 (the bottommost pixel) lit across every column gives
			// the LeafLeaf variant its underline, in place of a separate
			// combining glyph.
			for col := range g {
				g[col] |= 0x80
			}
		}
		out[i] = g
	}
	return out
}

func digitGlyph(n int) glyph {
	s := []rune{'0' + rune(n%10)}
	if n == 10 {
		s = []rune{'1', '0'}
	}
	var g glyph
	for _, r := range s {
		g = append(g, asciiFont[r]...)
	}
	return g
}

// varNumeralRunes mirrors lambda package's unexported varNumerals table
// rune-for-rune (package lambda has no exported way to hand this list
// across, so the eleven dingbat code points are repeated here) so that
// Lookup can resolve a rendered variable glyph back to its bitmap.
var varNumeralRunes = [11]rune{
	'\U0001f10c', '➊', '➋', '➌', '➍',
	'➎', '➏', '➐', '➑', '➒', '➓',
}

// underlineRune is lambda package's combining low line (U+0332):
// printSlot appends it after a leaf-mode variable glyph instead of
// emitting a second, separately-positioned glyph.
const underlineRune = '̲'

// Lookup returns the glyph for r, falling back to a checkerboard
// filler when r isn't mapped (lcd.rs's font_map default arm).
func Lookup(r rune) glyph {
	if g, ok := asciiFont[r]; ok {
		return g
	}
	for i, vr := range varNumeralRunes {
		if vr == r {
			return VAR_NUMERALS[i]
		}
	}
	return glyph{0x55, 0x2a, 0x55, 0x2a, 0x55}
}
