package web

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"aurora/internal/site"
)

func pageContent(p site.Page) g.Node {
	return Article(g.Attr("data-page", p.ID.Slug()), Class("max-w-5xl mx-auto px-4 sm:px-6 lg:px-8 py-16 space-y-16"),
		Header(Class("space-y-6"),
			P(Class("text-xs uppercase font-bold tracking-widest text-primary"), g.Text(p.Eyebrow)),
			H1(Class("text-4xl md:text-5xl font-serif font-bold text-dark leading-tight"), g.Text(p.Title)),
			P(Class("text-lg text-dark/70 leading-relaxed max-w-3xl"), g.Text(p.Lead)),
		),
		g.Map(p.Sections, section),
		g.If(p.CallToAction != nil, callToAction(p.CallToAction)),
	)
}

func section(s site.Section) g.Node {
	return Section(Class("space-y-6"),
		g.If(s.Heading != "", H2(Class("text-2xl font-serif font-bold text-dark"), g.Text(s.Heading))),
		g.Map(s.Paragraphs, func(text string) g.Node {
			return P(Class("text-dark/70 leading-relaxed"), g.Text(text))
		}),
		g.If(len(s.Highlights) > 0,
			Div(Class("grid md:grid-cols-2 lg:grid-cols-3 gap-6"),
				g.Map(s.Highlights, func(h site.Highlight) g.Node {
					return Div(Class("bg-white rounded-2xl p-6 shadow-sm border border-primary/5"),
						H3(Class("font-serif text-lg font-bold text-dark mb-2"), g.Text(h.Title)),
						P(Class("text-sm text-dark/60 leading-relaxed"), g.Text(h.Body)),
					)
				}),
			),
		),
		g.If(len(s.Bullets) > 0,
			Ul(Class("space-y-3"),
				g.Map(s.Bullets, func(b string) g.Node {
					return Li(Class("flex items-start gap-3 text-dark/70"),
						Div(Class("w-1.5 h-1.5 rounded-full bg-primary mt-2")),
						Span(g.Text(b)),
					)
				}),
			),
		),
		g.If(s.Quote != "",
			Figure(Class("border-l-4 border-primary pl-6"),
				P(Class("font-serif text-xl italic text-dark"), g.Text(s.Quote)),
			),
		),
	)
}

// callToAction tolerates nil because g.If evaluates its argument eagerly.
func callToAction(cta *site.CallToAction) g.Node {
	if cta == nil {
		return nil
	}
	return Div(Class("bg-dark text-secondary rounded-3xl p-10 space-y-4"),
		H2(Class("text-3xl font-serif font-bold text-white"), g.Text(cta.Heading)),
		P(Class("text-secondary/70"), g.Text(cta.Body)),
		Button(Type("button"), Class("bg-primary text-white px-8 py-3 rounded-full text-xs font-bold uppercase tracking-widest"),
			g.Text(cta.Button),
		),
	)
}
