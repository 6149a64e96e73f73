package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"aurora/internal/site"
)

const maxTextWidth = 96

// renderPage lays out a page document for the given terminal width.
func renderPage(p site.Page, width int) string {
	w := min(max(width-4, 20), maxTextWidth)
	text := lipgloss.NewStyle().Width(w)

	blocks := []string{
		Styles.Eyebrow.Render(strings.ToUpper(p.Eyebrow)),
		text.Inherit(Styles.Title).Render(p.Title),
		"",
		text.Inherit(Styles.Lead).Render(p.Lead),
	}
	for _, s := range p.Sections {
		blocks = append(blocks, renderSection(s, w))
	}
	if p.CallToAction != nil {
		blocks = append(blocks, renderCallToAction(*p.CallToAction, w))
	}
	return lipgloss.NewStyle().Padding(1, 2, 0, 2).Render(lipgloss.JoinVertical(lipgloss.Left, blocks...))
}

func renderSection(s site.Section, w int) string {
	var out []string
	if s.Heading != "" {
		out = append(out, Styles.Heading.Render(s.Heading))
	}
	text := lipgloss.NewStyle().Width(w).Inherit(Styles.Body)
	for _, para := range s.Paragraphs {
		out = append(out, "", text.Render(para))
	}
	if len(s.Highlights) > 0 {
		out = append(out, "", renderHighlights(s.Highlights, w))
	}
	if len(s.Bullets) > 0 {
		out = append(out, "")
		for _, b := range s.Bullets {
			out = append(out, renderBullet(b, w))
		}
	}
	if s.Quote != "" {
		out = append(out, "", Styles.Quote.Width(w-2).Render("“"+s.Quote+"”"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}

// renderHighlights places cards in rows of up to three, fewer on narrow screens.
func renderHighlights(hs []site.Highlight, w int) string {
	cols := min(max(w/30, 1), 3)
	cardW := w/cols - 2 // border
	var rows []string
	for i := 0; i < len(hs); i += cols {
		end := min(i+cols, len(hs))
		cards := make([]string, 0, cols)
		for _, h := range hs[i:end] {
			body := Styles.CardTitle.Render(h.Title) + "\n" + Styles.Lead.Render(h.Body)
			cards = append(cards, Styles.Card.Width(cardW).Render(body))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderBullet(text string, w int) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		Styles.Eyebrow.Render("• "),
		lipgloss.NewStyle().Width(w-2).Render(text),
	)
}

func renderCallToAction(c site.CallToAction, w int) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		Styles.Title.Render(c.Heading),
		"",
		c.Body,
		"",
		Styles.Button.Render(strings.ToUpper(c.Button))+"  "+Styles.Hint.Render("c para contato"),
	)
	return Styles.CTA.Width(w - 2).Render(body)
}
