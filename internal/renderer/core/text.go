package core

import "github.com/rivo/uniseg"

// CellsFromString lays s out as cells, one per grapheme cluster, followed
// by continuation cells for wide clusters. Output stops before exceeding
// maxWidth columns; a negative maxWidth means no limit.
func CellsFromString(s string, style Style, maxWidth int) []Cell {
	cells := make([]Cell, 0, len(s))
	used := 0

	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		runes := g.Runes()
		if w == 0 || len(runes) == 0 {
			continue
		}
		if maxWidth >= 0 && used+w > maxWidth {
			break
		}
		cells = append(cells, Cell{Rune: runes[0], Width: w, Style: style})
		for i := 1; i < w; i++ {
			cells = append(cells, ContinuationCell(style))
		}
		used += w
	}
	return cells
}

// Truncate shortens s to at most width columns, ending with an ellipsis
// when anything was cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= width {
		return s
	}

	out := make([]byte, 0, len(s))
	used := 0
	state := -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if used+w > width-1 {
			break
		}
		out = append(out, cluster...)
		used += w
	}
	return string(out) + "…"
}

// StringWidth returns the display width of s.
func StringWidth(s string) int {
	return uniseg.StringWidth(s)
}
