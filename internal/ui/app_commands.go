package ui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"aurora/internal/site"
)

func selectPageCmd(id site.PageID) tea.Cmd {
	return func() tea.Msg { return SelectPageMsg{Page: id} }
}

func toggleMenuCmd() tea.Msg { return ToggleMenuMsg{} }

func showContactCmd() tea.Msg { return ShowContactMsg{} }

// leaderPageKeys maps pages to the key that follows "SPC p".
var leaderPageKeys = map[site.PageID]string{
	site.Home:                   "h",
	site.HRConsulting:           "r",
	site.MentalHealthCompliance: "n",
	site.ClinicalPsychology:     "c",
	site.AboutMe:                "s",
}

// DefaultKeybinds registers the application's key bindings.
// Entry i of entries is reachable with the digit i+1.
func DefaultKeybinds(entries []site.NavEntry) *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Sair")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Sair")
	reg.BindWithDescForMode("m", toggleMenuCmd, "Menu", []LayoutMode{LayoutMobile})
	reg.BindWithDesc("c", showContactCmd, "Contato")

	for i, e := range entries {
		reg.BindWithDesc(strconv.Itoa(i+1), selectPageCmd(e.ID), e.Label)
		if k, ok := leaderPageKeys[e.ID]; ok {
			reg.BindWithDesc("SPC p "+k, selectPageCmd(e.ID), e.Label)
		}
	}

	reg.BindWithDescForMode("SPC m", toggleMenuCmd, "Menu", []LayoutMode{LayoutMobile})
	reg.BindWithDesc("SPC c", showContactCmd, "Contato")
	reg.BindWithDesc("SPC q", tea.Quit, "Sair")
	return reg
}
