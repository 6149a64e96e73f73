package web

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"aurora/internal/site"
)

func footer(brand site.Brand, entries []site.NavEntry) g.Node {
	return Footer(Class("bg-dark text-secondary py-20"),
		Div(Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			Div(Class("grid md:grid-cols-4 gap-16"),
				Div(Class("col-span-1 md:col-span-2"),
					Div(Class("flex items-center mb-8"),
						Div(Class("w-12 h-12 bg-primary rounded-2xl flex items-center justify-center text-white font-serif text-3xl"), g.Text(brand.Monogram)),
						Div(Class("ml-4"),
							H3(Class("text-2xl font-serif font-bold text-white"), g.Text(brand.Name)),
							P(Class("text-xs uppercase tracking-[0.2em] font-bold text-primary"), g.Text(brand.FooterTagline)),
						),
					),
					P(Class("text-secondary/60 max-w-sm leading-relaxed mb-10 text-sm italic"), g.Text(brand.Mission)),
					Div(Class("flex gap-4"),
						g.Map(brand.Social, func(l site.SocialLink) g.Node {
							return A(Href(l.URL), g.Attr("aria-label", l.Label),
								Class("w-12 h-12 rounded-full border border-white/10 flex items-center justify-center hover:bg-primary"),
								icon(l.Icon, "w-5 h-5"),
							)
						}),
					),
				),
				Div(
					columnHeading(brand.NavHeading),
					Ul(Class("space-y-4 text-sm text-secondary/60"),
						g.Map(entries, func(e site.NavEntry) g.Node {
							return Li(Button(Type("button"), g.Attr("data-page", e.ID.Slug()),
								Class("hover:text-primary transition-colors inline-block"),
								g.Text(e.Label),
							))
						}),
					),
				),
				Div(
					columnHeading(brand.SpecHeading),
					Ul(Class("space-y-4 text-sm text-secondary/60"),
						g.Map(brand.Specialties, func(s string) g.Node {
							return Li(Class("flex items-start gap-3"),
								Div(Class("w-1.5 h-1.5 rounded-full bg-primary mt-1.5")),
								Span(g.Text(s)),
							)
						}),
					),
				),
			),
			Div(Class("mt-20 pt-10 border-t border-white/5 flex flex-col md:flex-row justify-between items-center gap-6 text-[10px] uppercase tracking-widest font-bold text-secondary/30"),
				P(g.Text(brand.Copyright)),
				Div(Class("flex gap-8"),
					g.Map(brand.Legal, func(l string) g.Node {
						return A(Href("#"), Class("hover:text-primary transition-colors"), g.Text(l))
					}),
				),
			),
		),
	)
}

func columnHeading(text string) g.Node {
	return H4(Class("font-serif text-xl mb-8 flex items-center gap-2 text-white"),
		icon(site.IconArrowRight, "w-4 h-4 text-primary"),
		g.Text(text),
	)
}
