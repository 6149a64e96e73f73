package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp draws the transient box shown after SPC, listing the
// keys that may follow the sequence typed so far. The box is at most width
// columns wide.
func RenderKeybindHelp(h *KeyHandler, mode LayoutMode, width int) string {
	if h == nil || !h.LeaderWaiting {
		return ""
	}
	seq := h.CurrentSeq()
	hints := h.Registry.LeaderHints(seq, mode)
	if len(hints) == 0 {
		return ""
	}

	m := help.New()
	m.Width = max(width-4-len("SPC p "), 10)
	m.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimary)).Bold(true)
	m.Styles.ShortDesc = Styles.Hint
	m.Styles.ShortSeparator = Styles.Hint

	prefix := "SPC"
	if seq != "" {
		prefix = seq
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorPrimary)).
		Padding(0, 1)
	return box.Render(Styles.Hint.Render(prefix) + " " + m.ShortHelpView(hintBindings(hints)))
}
