package ui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// PageView is the scrollable main region holding the active page and the
// footer. It is the nav.Scroller of the shell.
type PageView struct {
	viewport viewport.Model
}

// Ensure PageView implements View.
var _ View = (*PageView)(nil)

// NewPageView creates an empty page region of the given size.
func NewPageView(width, height int) *PageView {
	return &PageView{viewport: viewport.New(width, height)}
}

// GotoTop implements nav.Scroller.
func (p *PageView) GotoTop() {
	p.viewport.GotoTop()
}

// SetSize resizes the region.
func (p *PageView) SetSize(width, height int) {
	p.viewport.Width = width
	p.viewport.Height = height
}

// SetContent replaces the rendered page; the scroll offset is kept when it
// still fits.
func (p *PageView) SetContent(s string) {
	p.viewport.SetContent(s)
}

// Offset returns the number of lines scrolled past.
func (p *PageView) Offset() int {
	return p.viewport.YOffset
}

// Init implements View.
func (p *PageView) Init() tea.Cmd {
	return nil
}

// Update implements View. Scrolling keys come from the viewport keymap,
// plus g/G for top and bottom.
func (p *PageView) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "g", "home":
			p.viewport.GotoTop()
			return p, nil
		case "G", "end":
			p.viewport.GotoBottom()
			return p, nil
		}
	}
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

// View implements View.
func (p *PageView) View() string {
	return p.viewport.View()
}
