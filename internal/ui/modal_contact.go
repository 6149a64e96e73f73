package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"aurora/internal/site"
)

// ContactModal lists the practice's contact channels.
// Esc or Enter closes it.
type ContactModal struct {
	Brand site.Brand
}

// Ensure ContactModal implements View.
var _ View = (*ContactModal)(nil)

func NewContactModal(b site.Brand) *ContactModal {
	return &ContactModal{Brand: b}
}

// Init implements View.
func (m *ContactModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ContactModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc", "enter":
			return m, func() tea.Msg { return DismissModalMsg{} }
		}
	}
	return m, nil
}

// View implements View.
func (m *ContactModal) View() string {
	var b strings.Builder
	b.WriteString(Styles.Eyebrow.Render(strings.ToUpper(m.Brand.Contact)) + "\n\n")
	b.WriteString(Styles.Title.Render(m.Brand.Name) + "\n")
	b.WriteString(Styles.Tagline.Render(m.Brand.FooterTagline) + "\n\n")
	for _, l := range m.Brand.Social {
		b.WriteString(l.Icon.Glyph() + "  " + l.Label + "\n")
	}
	b.WriteString("\n" + Styles.Button.Render(site.IconMessageCircle.Glyph()+" "+strings.ToUpper(m.Brand.WhatsApp)))
	b.WriteString("\n\n" + Styles.Hint.Render("Esc: fechar"))
	return Styles.Modal.Render(b.String())
}
