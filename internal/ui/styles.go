package ui

import "github.com/charmbracelet/lipgloss"

// Brand palette.
const (
	ColorPrimary   = "#A26769" // rose, accents and the active entry
	ColorDark      = "#2D2A32"
	ColorSecondary = "#F4EDE8" // cream
	ColorMuted     = "#8C8491"
	ColorText      = "#E9E4EC"
)

// Styles contains the shared style definitions.
var Styles = struct {
	Monogram  lipgloss.Style
	BrandName lipgloss.Style
	Tagline   lipgloss.Style

	NavItem   lipgloss.Style
	NavActive lipgloss.Style
	NavFocus  lipgloss.Style // added on top of NavItem/NavActive
	Button    lipgloss.Style
	Header    lipgloss.Style

	Panel       lipgloss.Style
	PanelItem   lipgloss.Style
	PanelActive lipgloss.Style

	Eyebrow   lipgloss.Style
	Title     lipgloss.Style
	Lead      lipgloss.Style
	Heading   lipgloss.Style
	Body      lipgloss.Style
	Card      lipgloss.Style
	CardTitle lipgloss.Style
	Quote     lipgloss.Style
	CTA       lipgloss.Style

	Footer      lipgloss.Style
	FooterTitle lipgloss.Style
	FooterMuted lipgloss.Style
	Fine        lipgloss.Style

	Hint  lipgloss.Style
	Modal lipgloss.Style
}{
	Monogram: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorSecondary)).
		Background(lipgloss.Color(ColorPrimary)).
		Padding(0, 1),
	BrandName: lipgloss.NewStyle().Bold(true),
	Tagline: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPrimary)),

	NavItem:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)),
	NavActive: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimary)).Bold(true),
	NavFocus:  lipgloss.NewStyle().Underline(true),
	Button: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorSecondary)).
		Background(lipgloss.Color(ColorDark)).
		Padding(0, 2),
	Header: lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(lipgloss.Color(ColorPrimary)),

	Panel: lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	PanelItem: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)),
	PanelActive: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPrimary)),

	Eyebrow: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorPrimary)),
	Title:   lipgloss.NewStyle().Bold(true),
	Lead:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)),
	Heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorPrimary)).MarginTop(1),
	Body:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorText)),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorPrimary)).
		Padding(0, 1),
	CardTitle: lipgloss.NewStyle().Bold(true),
	Quote: lipgloss.NewStyle().
		Italic(true).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(lipgloss.Color(ColorPrimary)).
		PaddingLeft(1),
	CTA: lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color(ColorPrimary)).
		Padding(1, 2).
		MarginTop(1),

	Footer: lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(lipgloss.Color(ColorPrimary)).
		PaddingTop(1).
		MarginTop(2),
	FooterTitle: lipgloss.NewStyle().Bold(true),
	FooterMuted: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)),
	Fine:        lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)).Faint(true),

	Hint: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)),
	Modal: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorPrimary)).
		Padding(1, 3),
}
