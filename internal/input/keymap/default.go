package keymap

// defaultBindings lists the built-in key bindings.
var defaultBindings = []struct {
	keys   string
	action Action
}{
	{"1", ActionOpXor},
	{"2", ActionOpSetOne},
	{"3", ActionOpSetZero},
	{"4", ActionOpSelect},
	{"5", ActionOpDeselect},

	{"d", ActionModeDraw},
	{"t", ActionModeMove},
	{"g", ActionModeDrag},
	{"Space", ActionPanHold},

	{"D", ActionDeselectAll},

	{"u", ActionUndo},
	{"Ctrl+z", ActionUndo},

	{"[", ActionPrevGlyph},
	{"]", ActionNextGlyph},
	{"Left", ActionPrevGlyph},
	{"Right", ActionNextGlyph},
	{"/", ActionJump},

	{"+", ActionZoomIn},
	{"=", ActionZoomIn},
	{"-", ActionZoomOut},

	{"q", ActionQuit},
	{"Ctrl+c", ActionQuit},
}

// Default returns a keymap holding the built-in bindings.
func Default() *Keymap {
	k := New()
	for _, b := range defaultBindings {
		if err := k.bind(b.keys, b.action, "default"); err != nil {
			panic(err)
		}
	}
	return k
}

// Load returns the default keymap with overrides applied.
func Load(overrides map[string]string) (*Keymap, error) {
	k := Default()
	if len(overrides) == 0 {
		return k, nil
	}
	if err := k.Apply(overrides); err != nil {
		return nil, err
	}
	return k, nil
}
