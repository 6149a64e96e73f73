// Package textutil measures and trims text by terminal cell width.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
// s must not contain ANSI escapes; use lipgloss.Width for styled text.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxWidth columns, ending in Ellipsis when
// anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, Ellipsis)
}

// Fit pads or truncates s to exactly width columns.
func Fit(s string, width int) string {
	s = Truncate(s, width)
	return s + strings.Repeat(" ", max(0, width-VisualWidth(s)))
}

// Gap returns the spaces needed between left and right (both possibly
// styled) so that together they span width. It is at least minGap.
func Gap(left, right string, width, minGap int) string {
	n := max(minGap, width-lipgloss.Width(left)-lipgloss.Width(right))
	return strings.Repeat(" ", n)
}
