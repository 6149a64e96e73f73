package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"aurora/internal/site"
	"aurora/internal/ui/textutil"
)

// renderFooter draws the footer from the fixed entry list and brand data.
// Desktop places the three blocks side by side; mobile stacks them.
func renderFooter(b site.Brand, entries []site.NavEntry, layout LayoutMode, width int) string {
	inner := width - 4
	aboutW, colW := inner, inner
	if layout == LayoutDesktop {
		aboutW = inner / 2
		colW = inner / 4
	}

	social := make([]string, 0, len(b.Social))
	for _, l := range b.Social {
		social = append(social, l.Icon.Glyph()+" "+l.Label)
	}
	about := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Center,
			Styles.Monogram.Render(b.Monogram), " ",
			Styles.FooterTitle.Render(b.Name)+"\n"+Styles.Tagline.Render(strings.ToUpper(b.FooterTagline)),
		),
		"",
		Styles.FooterMuted.Italic(true).Width(max(aboutW-2, 10)).Render(b.Mission),
		"",
		Styles.FooterMuted.Render(strings.Join(social, "   ")),
	)

	heading := func(s string) string {
		return Styles.FooterTitle.Render(site.IconArrowRight.Glyph() + " " + s)
	}
	navLines := []string{heading(b.NavHeading), ""}
	for i, e := range entries {
		navLines = append(navLines, Styles.FooterMuted.Render(textutil.Fit(e.Label, colW-4))+" "+Styles.Hint.Render(strconv.Itoa(i+1)))
	}
	specLines := []string{heading(b.SpecHeading), ""}
	for _, s := range b.Specialties {
		specLines = append(specLines, lipgloss.JoinHorizontal(lipgloss.Top,
			Styles.Eyebrow.Render("• "),
			Styles.FooterMuted.Width(max(colW-2, 10)).Render(s),
		))
	}
	navCol := lipgloss.NewStyle().Width(colW).Render(strings.Join(navLines, "\n"))
	specCol := lipgloss.NewStyle().Width(colW).Render(strings.Join(specLines, "\n"))

	var body string
	if layout == LayoutDesktop {
		body = lipgloss.JoinHorizontal(lipgloss.Top, lipgloss.NewStyle().Width(aboutW).Render(about), navCol, specCol)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, about, "", navCol, "", specCol)
	}

	copyright := Styles.Fine.Render(b.Copyright)
	legal := Styles.Fine.Render(strings.Join(b.Legal, "   "))
	var bottom string
	if layout == LayoutDesktop {
		bottom = copyright + textutil.Gap(copyright, legal, inner, 3) + legal
	} else {
		bottom = lipgloss.NewStyle().Width(inner).Render(b.Copyright)
		bottom = Styles.Fine.Render(bottom) + "\n" + legal
	}

	return Styles.Footer.Width(width).PaddingLeft(2).PaddingRight(2).Render(
		lipgloss.JoinVertical(lipgloss.Left, body, "", bottom),
	)
}
