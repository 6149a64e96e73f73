package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"aurora/internal/site"
	"aurora/internal/ui/textutil"
)

func renderBrand(b site.Brand) string {
	name := Styles.BrandName.Render(b.Name) + "\n" + Styles.Tagline.Render(strings.ToUpper(b.Tagline))
	return lipgloss.JoinHorizontal(lipgloss.Center, Styles.Monogram.Render(b.Monogram), " ", name)
}

// renderDesktopNav draws the inline entry list followed by the contact button.
func renderDesktopNav(b site.Brand, entries []site.NavEntry, current, focus site.PageID) string {
	items := make([]string, 0, len(entries)+1)
	for _, e := range entries {
		st := Styles.NavItem
		if e.ID == current {
			st = Styles.NavActive
		}
		if e.ID == focus {
			st = st.Inherit(Styles.NavFocus)
		}
		items = append(items, st.Render(e.Label))
	}
	items = append(items, Styles.Button.Render(strings.ToUpper(b.Contact)+" "+site.IconMessageCircle.Glyph()))
	return strings.Join(items, "  ")
}

func renderMenuButton(open bool) string {
	glyph := site.IconMenu.Glyph()
	if open {
		glyph = site.IconClose.Glyph()
	}
	return Styles.NavActive.Render(glyph)
}

// renderHeader draws the brand on the left and, depending on layout, either
// the desktop navigation or the menu button on the right.
func renderHeader(b site.Brand, entries []site.NavEntry, current, focus site.PageID, menuOpen bool, layout LayoutMode, width int) string {
	left := renderBrand(b)
	var right string
	if layout == LayoutDesktop {
		right = renderDesktopNav(b, entries, current, focus)
	} else {
		right = renderMenuButton(menuOpen)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, left, textutil.Gap(left, right, width, 2), right)
	return Styles.Header.Render(row)
}

// renderMobilePanel draws the expanded navigation list and the WhatsApp button.
func renderMobilePanel(b site.Brand, entries []site.NavEntry, current, focus site.PageID, width int) string {
	var sb strings.Builder
	for _, e := range entries {
		marker := "  "
		if e.ID == focus {
			marker = "› "
		}
		st := Styles.PanelItem
		if e.ID == current {
			st = Styles.PanelActive
		}
		line := marker + e.Icon.Glyph() + "  " + textutil.Truncate(e.Label, width-8)
		sb.WriteString(st.Render(line) + "\n")
	}
	sb.WriteString("\n" + Styles.Button.Render(site.IconMessageCircle.Glyph()+" "+strings.ToUpper(b.WhatsApp)))
	return Styles.Panel.Width(width).Render(sb.String())
}
