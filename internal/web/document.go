// Package web renders the site as a static HTML5 document.
//
// The document mirrors the terminal composition: navigation shell, the
// active page and the footer, styled with Tailwind utility classes and
// lucide icon placeholders.
package web

import (
	"fmt"
	"io"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"aurora/internal/nav"
	"aurora/internal/site"
)

// Render writes the document for s to w.
func Render(w io.Writer, s *nav.State) error {
	if err := Document(s).Render(w); err != nil {
		return fmt.Errorf("render %s: %w", s.Page().Slug(), err)
	}
	return nil
}

// Document builds the full page for the state's active page and menu.
func Document(s *nav.State) g.Node {
	brand := site.DefaultBrand()
	entries := site.Entries()
	page := s.Current()
	title := brand.Name
	if e, ok := site.EntryFor(s.Page()); ok {
		title = e.Label + " | " + brand.Name
	}

	return c.HTML5(c.HTML5Props{
		Title:    title,
		Language: "pt-BR",
		Head: []g.Node{
			Script(Src("https://cdn.tailwindcss.com")),
			Script(Src("https://unpkg.com/lucide@latest")),
		},
		Body: []g.Node{
			Div(Class("min-h-screen flex flex-col font-sans bg-secondary"),
				navShell(brand, entries, s),
				Main(Class("flex-grow pt-20"),
					Div(Class("page-transition"), pageContent(page)),
				),
				footer(brand, entries),
			),
			Script(g.Raw("lucide.createIcons();")),
		},
	})
}

func icon(i site.Icon, class string) g.Node {
	return Span(g.Attr("data-lucide", string(i)), Class(class))
}

func monogram(brand site.Brand) g.Node {
	return Div(Class("relative"),
		Div(Class("w-10 h-10 bg-primary rounded-xl flex items-center justify-center text-white font-serif text-2xl shadow-lg"),
			g.Text(brand.Monogram),
		),
		Div(Class("absolute -bottom-1 -right-1 w-4 h-4 bg-dark rounded-full border-2 border-white")),
	)
}

func navShell(brand site.Brand, entries []site.NavEntry, s *nav.State) g.Node {
	current := s.Page()
	menuIcon := site.IconMenu
	if s.MenuOpen() {
		menuIcon = site.IconClose
	}

	return Nav(Class("fixed w-full z-50 bg-secondary/80 backdrop-blur-md border-b border-primary/5"),
		Div(Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			Div(Class("flex justify-between h-20 items-center"),
				Div(Class("flex items-center cursor-pointer group"), g.Attr("data-page", site.Home.Slug()),
					monogram(brand),
					Div(Class("ml-3"),
						Span(Class("text-xl font-serif font-bold text-dark tracking-tight block leading-none"), g.Text(brand.Name)),
						Span(Class("text-[10px] uppercase font-bold tracking-widest text-primary leading-none"), g.Text(brand.Tagline)),
					),
				),
				Div(Class("hidden md:flex items-center space-x-8"),
					g.Map(entries, func(e site.NavEntry) g.Node {
						return Button(Type("button"), g.Attr("data-page", e.ID.Slug()),
							c.Classes{
								"text-sm font-medium transition-all hover:text-primary": true,
								"text-primary": e.ID == current,
								"text-dark/60": e.ID != current,
							},
							g.Text(e.Label),
						)
					}),
					Button(Type("button"), Class("bg-dark text-white px-6 py-2.5 rounded-full text-xs font-bold uppercase tracking-widest flex items-center gap-2"),
						g.Text(brand.Contact), icon(site.IconMessageCircle, "w-4 h-4"),
					),
				),
				Div(Class("md:hidden"),
					Button(Type("button"), Class("text-dark p-2 rounded-lg"), g.Attr("aria-expanded", fmt.Sprint(s.MenuOpen())),
						icon(menuIcon, "w-7 h-7"),
					),
				),
			),
		),
		mobilePanel(brand, entries, s),
	)
}

func mobilePanel(brand site.Brand, entries []site.NavEntry, s *nav.State) g.Node {
	open := s.MenuOpen()
	current := s.Page()
	return Div(
		c.Classes{
			"md:hidden absolute w-full bg-white border-b border-secondary shadow-2xl transition-all duration-300 ease-in-out": true,
			"opacity-100 translate-y-0":                    open,
			"opacity-0 -translate-y-4 pointer-events-none": !open,
		},
		Div(Class("px-4 pt-4 pb-8 space-y-2"),
			g.Map(entries, func(e site.NavEntry) g.Node {
				return Button(Type("button"), g.Attr("data-page", e.ID.Slug()),
					c.Classes{
						"flex items-center w-full px-4 py-4 rounded-xl text-left transition-all": true,
						"bg-primary/10 text-primary font-bold":                                   e.ID == current,
						"text-dark/60 hover:bg-secondary/50":                                     e.ID != current,
					},
					icon(e.Icon, "w-5 h-5 mr-4"),
					g.Text(e.Label),
				)
			}),
			Div(Class("pt-4 px-4"),
				Button(Type("button"), Class("w-full bg-dark text-white py-4 rounded-xl font-bold uppercase tracking-widest text-xs flex items-center justify-center gap-3"),
					icon(site.IconMessageCircle, "w-5 h-5"), g.Text(brand.WhatsApp),
				),
			),
		),
	)
}
