package lua

import (
	"fmt"
	"math"

	lua "github.com/yuin/gopher-lua"

	"github.com/matteosandrin/online-pixel-font-creator/internal/charinfo"
	"github.com/matteosandrin/online-pixel-font-creator/internal/engine/glyph"
	"github.com/matteosandrin/online-pixel-font-creator/internal/engine/history"
	"github.com/matteosandrin/online-pixel-font-creator/internal/engine/selection"
)

// Editor is the editing surface exposed to scripts.
// *editor.Session satisfies it.
type Editor interface {
	Codepoint() glyph.Codepoint
	GlyphSize() (w, h int)
	Pixel(x, y int) bool
	SetPixel(x, y int, v bool) bool
	TogglePixel(x, y int) bool
	ClearGlyph()
	Jump(cp glyph.Codepoint) error
	Select(c selection.Cell) bool
	DeselectAll()
	Undo() history.OutcomeKind
	Commit() bool
}

// ModuleName is the global name of the glyph module.
const ModuleName = "glyph"

// glyphModule binds Lua functions to an Editor.
type glyphModule struct {
	ed Editor
}

func (m *glyphModule) funcs() map[string]lua.LGFunction {
	return map[string]lua.LGFunction{
		"width":        m.width,
		"height":       m.height,
		"codepoint":    m.codepoint,
		"get":          m.get,
		"set":          m.set,
		"toggle":       m.toggle,
		"clear":        m.clear,
		"jump":         m.jump,
		"select":       m.sel,
		"deselect_all": m.deselectAll,
		"undo":         m.undo,
	}
}

func (m *glyphModule) width(L *lua.LState) int {
	w, _ := m.ed.GlyphSize()
	L.Push(lua.LNumber(w))
	return 1
}

func (m *glyphModule) height(L *lua.LState) int {
	_, h := m.ed.GlyphSize()
	L.Push(lua.LNumber(h))
	return 1
}

func (m *glyphModule) codepoint(L *lua.LState) int {
	L.Push(lua.LNumber(m.ed.Codepoint()))
	return 1
}

func (m *glyphModule) get(L *lua.LState) int {
	x, y := L.CheckInt(1), L.CheckInt(2)
	L.Push(lua.LBool(m.ed.Pixel(x, y)))
	return 1
}

func (m *glyphModule) set(L *lua.LState) int {
	x, y := L.CheckInt(1), L.CheckInt(2)
	v := pixelValue(L, 3)
	L.Push(lua.LBool(m.ed.SetPixel(x, y, v)))
	return 1
}

func (m *glyphModule) toggle(L *lua.LState) int {
	x, y := L.CheckInt(1), L.CheckInt(2)
	L.Push(lua.LBool(m.ed.TogglePixel(x, y)))
	return 1
}

func (m *glyphModule) clear(L *lua.LState) int {
	m.ed.ClearGlyph()
	return 0
}

// jump records pending writes against the glyph they were made on before
// switching.
func (m *glyphModule) jump(L *lua.LState) int {
	var cp glyph.Codepoint
	switch v := L.Get(1).(type) {
	case lua.LNumber:
		f := float64(v)
		if f != math.Trunc(f) || f < 0 || f > math.MaxInt32 {
			L.ArgError(1, fmt.Sprintf("invalid codepoint %v", f))
			return 0
		}
		cp = glyph.Codepoint(f)
	case lua.LString:
		parsed, err := charinfo.ParseJump(string(v))
		if err != nil {
			L.ArgError(1, err.Error())
			return 0
		}
		cp = parsed
	default:
		L.TypeError(1, lua.LTNumber)
		return 0
	}

	m.ed.Commit()
	if err := m.ed.Jump(cp); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (m *glyphModule) sel(L *lua.LState) int {
	x, y := L.CheckInt(1), L.CheckInt(2)
	L.Push(lua.LBool(m.ed.Select(selection.Cell{X: x, Y: y})))
	return 1
}

func (m *glyphModule) deselectAll(L *lua.LState) int {
	m.ed.DeselectAll()
	return 0
}

func (m *glyphModule) undo(L *lua.LState) int {
	m.ed.Commit()
	L.Push(lua.LString(m.ed.Undo().String()))
	return 1
}

// pixelValue reads a boolean or 0/1 argument.
func pixelValue(L *lua.LState, n int) bool {
	switch v := L.Get(n).(type) {
	case lua.LBool:
		return bool(v)
	case lua.LNumber:
		return v != 0
	default:
		L.TypeError(n, lua.LTBool)
		return false
	}
}
