package main

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// ---------------------------------------------------------------------------
// Modal overlay compositing
// ---------------------------------------------------------------------------

// overlayCenter composites overlay on top of base, centered within a width x
// height cell grid. Both strings are treated as line-based grids; styled
// (ANSI) content is measured by visual width.
func overlayCenter(base, overlay string, width, height int) string {
	overlayLines := splitLines(overlay)
	overlayW := maxLineWidth(overlayLines)

	x := (width - overlayW) / 2
	if x < 0 {
		x = 0
	}
	y := (height - len(overlayLines)) / 2
	if y < 0 {
		y = 0
	}

	baseLines := splitLines(base)
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}

	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= len(baseLines) || row >= height {
			continue
		}
		baseLines[row] = spliceLine(padRight(baseLines[row], width), padRight(line, overlayW), x, width)
	}
	return strings.Join(baseLines, "\n")
}

// spliceLine replaces the cells [x, x+width(seg)) of target with seg,
// preserving whatever of target lies left and right of the splice.
func spliceLine(target, seg string, x, width int) string {
	left := ansi.Truncate(target, x, "")
	if lw := ansi.StringWidth(left); lw < x {
		left += strings.Repeat(" ", x-lw)
	}

	pos := x + ansi.StringWidth(seg)
	right := ""
	if width > 0 {
		right = ansi.TruncateLeft(target, pos, "")
		if gap := width - pos - ansi.StringWidth(right); gap > 0 {
			right = strings.Repeat(" ", gap) + right
		}
	}
	return left + seg + right
}

// ---------------------------------------------------------------------------
// String utilities
// ---------------------------------------------------------------------------

// splitLines splits a string on newlines, returning at least one element.
func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

// maxLineWidth returns the visual width of the widest line.
func maxLineWidth(lines []string) int {
	m := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > m {
			m = w
		}
	}
	return m
}

// padRight pads s with spaces so its visual width equals width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// truncate shortens s to width cells, appending an ellipsis if truncated.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}
