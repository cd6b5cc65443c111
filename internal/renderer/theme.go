package renderer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/matteosandrin/online-pixel-font-creator/internal/renderer/core"
	"github.com/matteosandrin/online-pixel-font-creator/internal/renderer/statusline"
)

// Theme holds the colours used to draw a session.
type Theme struct {
	Background core.Color
	PixelOn    core.Color
	PixelOff   core.Color
	Selection  core.Color
	Preview    core.Color
	Status     core.Color
	StatusBg   core.Color
}

// DefaultTheme returns the built-in dark theme.
func DefaultTheme() Theme {
	return Theme{
		Background: core.ColorFromRGB(0x1e, 0x1e, 0x2e),
		PixelOn:    core.ColorFromRGB(0xf5, 0xe0, 0xdc),
		PixelOff:   core.ColorFromRGB(0x31, 0x32, 0x44),
		Selection:  core.ColorFromRGB(0xf9, 0xe2, 0xaf),
		Preview:    core.ColorFromRGB(0xa6, 0xad, 0xc8),
		Status:     core.ColorFromRGB(0xcd, 0xd6, 0xf4),
		StatusBg:   core.ColorFromRGB(0x18, 0x18, 0x25),
	}
}

// ThemeFromHex overrides the default theme with "#rrggbb" colours keyed
// by field name (background, pixelOn, ...). Unknown names and malformed
// colours are reported together; the valid entries are still applied.
func ThemeFromHex(colors map[string]string) (Theme, error) {
	t := DefaultTheme()
	fields := map[string]*core.Color{
		"background": &t.Background,
		"pixelon":    &t.PixelOn,
		"pixeloff":   &t.PixelOff,
		"selection":  &t.Selection,
		"preview":    &t.Preview,
		"status":     &t.Status,
		"statusbg":   &t.StatusBg,
	}

	names := make([]string, 0, len(colors))
	for name := range colors {
		names = append(names, name)
	}
	sort.Strings(names)

	var problems []string
	for _, name := range names {
		dst, ok := fields[strings.ToLower(name)]
		if !ok {
			problems = append(problems, fmt.Sprintf("unknown colour %q", name))
			continue
		}
		c, err := core.ColorFromHex(colors[name])
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", name, err))
			continue
		}
		*dst = c
	}

	if len(problems) > 0 {
		return t, fmt.Errorf("theme: %s", strings.Join(problems, "; "))
	}
	return t, nil
}

// InfoStyle is the style of the info line.
func (t Theme) InfoStyle() core.Style {
	return core.DefaultStyle().WithForeground(t.Status).WithBackground(t.StatusBg).Bold()
}

// StatusStyles derives the status line colours.
func (t Theme) StatusStyles() statusline.Styles {
	bar := core.DefaultStyle().WithForeground(t.StatusBg).WithBackground(t.Status)
	plain := core.DefaultStyle().WithForeground(t.Status).WithBackground(t.StatusBg)
	return statusline.Styles{
		Bar:     bar,
		Mode:    bar.WithBackground(t.Selection).Bold(),
		Info:    plain,
		Warning: plain.WithForeground(t.Selection),
		Error:   plain.WithForeground(core.ColorFromRGB(0xf3, 0x8b, 0xa8)).Bold(),
	}
}
