package config

func defaultConfig() map[string]any {
	return map[string]any{
		"glyph": map[string]any{
			"width":  8,
			"height": 8,
		},
		"view": map[string]any{
			"zoom":         1.0,
			"minZoom":      -2.0,
			"maxZoom":      4.0,
			"previewScale": 1.0,
		},
		"editor": map[string]any{
			"startCodepoint": "U+0041",
			"operation":      "xor",
			"mode":           "draw",
			"historyLimit":   0,
		},
		"logging": map[string]any{
			"level": "info",
			"file":  "",
		},
		"theme": map[string]any{
			"background": "#1e1e2e",
			"pixelOn":    "#f5e0dc",
			"pixelOff":   "#313244",
			"selection":  "#f9e2af",
			"preview":    "#a6adc8",
			"status":     "#cdd6f4",
			"statusBg":   "#181825",
		},
		"keymap":  map[string]any{},
		"plugins": map[string]any{"scripts": []any{}},
		"unicode": map[string]any{"blocksFile": ""},
	}
}
