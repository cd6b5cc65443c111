package key

import (
	"fmt"
	"strings"
)

// Key identifies a keyboard key. Character keys use KeyRune with the
// character carried in Event.Rune.
type Key uint8

const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

var keyNames = map[Key]string{
	KeyNone:      "None",
	KeyRune:      "Rune",
	KeyEscape:    "Esc",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
}

// nameAliases maps lowercase names to keys.
var nameAliases = map[string]Key{
	"esc":       KeyEscape,
	"escape":    KeyEscape,
	"enter":     KeyEnter,
	"return":    KeyEnter,
	"cr":        KeyEnter,
	"tab":       KeyTab,
	"backspace": KeyBackspace,
	"bs":        KeyBackspace,
	"delete":    KeyDelete,
	"del":       KeyDelete,
	"home":      KeyHome,
	"end":       KeyEnd,
	"pageup":    KeyPageUp,
	"pgup":      KeyPageUp,
	"pagedown":  KeyPageDown,
	"pgdn":      KeyPageDown,
	"up":        KeyUp,
	"down":      KeyDown,
	"left":      KeyLeft,
	"right":     KeyRight,
}

func init() {
	for k := KeyF1; k <= KeyF12; k++ {
		name := fmt.Sprintf("F%d", k-KeyF1+1)
		keyNames[k] = name
		nameAliases[strings.ToLower(name)] = k
	}
}

// String returns the key name.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", k)
}

// FromName returns the key for a case-insensitive name, or KeyNone.
func FromName(name string) Key {
	return nameAliases[strings.ToLower(name)]
}

// Modifier is a set of modifier keys.
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has reports whether m contains mod.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// String returns "Ctrl+Alt" style text.
func (m Modifier) String() string {
	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(ModMeta) {
		parts = append(parts, "Meta")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	return strings.Join(parts, "+")
}

func modifierFromName(name string) Modifier {
	switch strings.ToLower(name) {
	case "ctrl", "control", "c":
		return ModCtrl
	case "alt", "option", "opt", "a":
		return ModAlt
	case "shift", "s":
		return ModShift
	case "meta", "cmd", "command", "super", "m", "d":
		return ModMeta
	}
	return ModNone
}
