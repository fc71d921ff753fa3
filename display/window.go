package display

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/golang/glog"

	"github.com/jyane/lambdaed/lambda"
)

// Shaders for a 2D texture, unchanged from the teacher's ui.Start: the
// glyph grid, like the PPU framebuffer, is just a textured quad.
const (
	vertexShader = `
  #version 330

  attribute vec3 position;
  attribute vec2 uv;
  varying vec2 vuv;
  void main(void){
    gl_Position = vec4(position, 1.0);
    vuv = uv;
  }
  ` + "\x00"

	fragmentShader = `
  #version 330

  varying vec2 vuv;
  uniform sampler2D texture;
  void main(void){
    gl_FragColor = texture2D(texture, vuv);
  }
  ` + "\x00"
)

func compileShader(code string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	ccode := gl.Str(code)
	gl.ShaderSource(shader, 1, &ccode, nil)
	gl.CompileShader(shader)
	var result int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &result)
	if result == gl.FALSE {
		var length int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
		log := strings.Repeat("\x00", int(length+1))
		gl.GetShaderInfoLog(shader, length, nil, gl.Str(log))
		return 0, fmt.Errorf("failed to compile a shader: %v\n %v", code, log)
	}
	return shader, nil
}

func newProgram() (uint32, error) {
	vs, err := compileShader(vertexShader, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragmentShader, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)
	var result int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &result)
	if result == gl.FALSE {
		var length int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)
		log := strings.Repeat("\x00", int(length+1))
		gl.GetProgramInfoLog(program, length, nil, gl.Str(log))
		return 0, fmt.Errorf("failed to link a program: %v", log)
	}
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)
	return program, nil
}

var vertexPosition = []float32{1, 1, -1, 1, -1, -1, 1, -1}
var vertexUV = []float32{1, 0, 0, 0, 0, 1, 1, 1}

func updateTexture(program uint32, img *image.RGBA) {
	var textureID uint32
	gl.GenTextures(1, &textureID)
	gl.BindTexture(gl.TEXTURE_2D, textureID)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(img.Rect.Size().X), int32(img.Rect.Size().Y),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	positionLocation := uint32(gl.GetAttribLocation(program, gl.Str("position\x00")))
	uvLocation := uint32(gl.GetAttribLocation(program, gl.Str("uv\x00")))
	textureLocation := gl.GetUniformLocation(program, gl.Str("texture\x00"))
	gl.EnableVertexAttribArray(positionLocation)
	gl.EnableVertexAttribArray(uvLocation)
	gl.Uniform1i(textureLocation, 0)
	gl.VertexAttribPointer(positionLocation, 2, gl.FLOAT, false, 0, gl.Ptr(vertexPosition))
	gl.VertexAttribPointer(uvLocation, 2, gl.FLOAT, false, 0, gl.Ptr(vertexUV))
	gl.BindTexture(gl.TEXTURE_2D, textureID)
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, 4)
}

// glyphWidth is the per-glyph horizontal pixel pitch (GlyphHeight
// square cells with a one-pixel gap between glyphs).
const glyphWidth = GlyphHeight + 1

// rasterize draws s (a pretty-printer render line, cursor sentinels
// included) into an image.RGBA: an inverted-video run between
// CURSOR_START and CURSOR_END, ordinary glyphs otherwise. One line
// only — the command interpreter's "one rendering per command"
// contract never produces a multi-line display.
func rasterize(s string) *image.RGBA {
	runes := []rune(s)
	width := 0
	for _, r := range runes {
		if r == cursorStart || r == cursorEnd || r == underlineRune {
			continue
		}
		width += glyphWidth
	}
	if width == 0 {
		width = glyphWidth
	}
	img := image.NewRGBA(image.Rect(0, 0, width, GlyphHeight))
	fg, bg := color.RGBA{0, 0, 0, 255}, color.RGBA{255, 255, 255, 255}

	x, lastGlyphX, inverted := 0, -1, false
	for _, r := range runes {
		switch r {
		case cursorStart:
			inverted = true
			continue
		case cursorEnd:
			inverted = false
			continue
		case underlineRune:
			// Combining mark: OR the bottommost row into the glyph cell
			// just drawn instead of advancing to a fresh column, matching
			// printSlot's "append after, don't emit a second glyph" use.
			if lastGlyphX >= 0 {
				for col := 0; col < GlyphHeight; col++ {
					img.Set(lastGlyphX+col, GlyphHeight-1, fg)
				}
			}
			continue
		}
		on, off := fg, bg
		if inverted {
			on, off = bg, fg
		}
		g := Lookup(r)
		for col := 0; col < GlyphHeight; col++ {
			var bits byte
			if col < len(g) {
				bits = g[col]
			}
			for row := 0; row < GlyphHeight; row++ {
				c := off
				if bits&(1<<uint(row)) != 0 {
					c = on
				}
				img.Set(x+col, row, c)
			}
		}
		lastGlyphX = x
		x += glyphWidth
	}
	return img
}

// cursorStart/cursorEnd are the same PUA sentinel runes lambda.Editor's
// Render emits; display doesn't import the unexported constants, so it
// recognizes them by code point directly.
const (
	cursorStart = ''
	cursorEnd   = ''
)

// Window owns a glfw window and feeds each keystroke's token to ed,
// redrawing after every command the way ui.Start redraws after every
// completed PPU frame.
type Window struct {
	ed  *lambda.Editor
	win *glfw.Window
}

// New opens a width x height glfw window bound to ed.
func New(ed *lambda.Editor, width, height int) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("display: glfw.Init: %w", err)
	}
	win, err := glfw.CreateWindow(width, height, "lambdaed", nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("display: CreateWindow: %w", err)
	}
	win.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("display: gl.Init: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	return &Window{ed: ed, win: win}, nil
}

// Close terminates glfw, mirroring ui.Start's deferred glfw.Terminate.
func (w *Window) Close() { glfw.Terminate() }

// Run polls the keyboard each frame, maps held keys to command tokens
// via keyToken, executes whichever single token just transitioned to
// pressed, and redraws. It returns when the window is closed.
func (w *Window) Run() error {
	program, err := newProgram()
	if err != nil {
		return err
	}
	gl.UseProgram(program)
	updateTexture(program, rasterize(w.ed.Render()))
	w.win.SwapBuffers()

	var lastToken string
	for !w.win.ShouldClose() {
		glfw.PollEvents()
		tok := keyToken(w.win)
		if tok != "" && tok != lastToken {
			diags := w.ed.ExecuteLine(tok)
			for _, d := range diags {
				glog.Infof("display: %s", d)
			}
			updateTexture(program, rasterize(w.ed.Render()))
			w.win.SwapBuffers()
		}
		lastToken = tok
	}
	return nil
}

// keyToken maps the single currently-held command key to its token,
// replacing the teacher's 8-button controller poll (ui/utils.go's
// getKeys) with the token-based command stream of the editor's command
// table. Only digit/token keys with an unambiguous glyph are bound: +
// and * sit on the keypad, ^ is Shift+6 (6 alone is the digit), and
// lm, rm and bracketed variable literals have no key.
func keyToken(win *glfw.Window) string {
	bindings := []struct {
		key glfw.Key
		tok string
	}{
		{glfw.KeyBackspace, "bs"},
		{glfw.KeyL, "l"},
		{glfw.KeyB, "b"},
		{glfw.KeyR, "redux"},
		{glfw.KeyDown, "dn"},
		{glfw.KeyUp, "up"},
		{glfw.KeyT, "top"},
		{glfw.KeyLeft, "lt"},
		{glfw.KeyRight, "rt"},
		{glfw.KeyEqual, "$"},
		{glfw.KeyA, "@"},
		{glfw.KeyKPAdd, "+"},
		{glfw.KeyKPMultiply, "*"},
		{glfw.Key6, "^"},
		{glfw.KeyPeriod, "."},
	}
	shift := win.GetKey(glfw.KeyLeftShift) == glfw.Press || win.GetKey(glfw.KeyRightShift) == glfw.Press
	for _, b := range bindings {
		if b.key == glfw.Key6 && !shift {
			continue
		}
		if win.GetKey(b.key) == glfw.Press {
			return b.tok
		}
	}
	for d := glfw.Key0; d <= glfw.Key9; d++ {
		if win.GetKey(d) == glfw.Press {
			return string(rune('0' + (d - glfw.Key0)))
		}
	}
	return ""
}
