package ui

import "aurora/internal/site"

// SelectPageMsg asks the shell to activate a page.
type SelectPageMsg struct {
	Page site.PageID
}

// ToggleMenuMsg flips the mobile menu panel.
type ToggleMenuMsg struct{}

// ShowContactMsg opens the contact overlay.
type ShowContactMsg struct{}

// DismissModalMsg closes the top overlay.
type DismissModalMsg struct{}
