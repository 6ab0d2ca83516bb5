package ui

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

// Assets holds the URLs of the third-party scripts and stylesheets every
// page loads.
type Assets struct {
	HTMXURL        string
	TailwindCSSURL string
}

// ---- Page Layout ----

func Page(assets Assets, title string, content []g.Node) g.Node {
	return components.HTML5(components.HTML5Props{
		Title:    title,
		Language: "en",
		Head: []g.Node{
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
			Link(
				Rel("stylesheet"),
				Href(assets.TailwindCSSURL),
			),
			Script(
				Type("text/javascript"),
				Src(assets.HTMXURL),
				Defer(),
			),
		},
		Body: []g.Node{
			Div(
				Class("container mx-auto px-4 py-8"),
				g.Group(content),
			),
		},
	})
}

func pageHeader(text string) g.Node {
	return H1(Class("text-4xl font-bold mb-8"), g.Text(text))
}

func contentContainer(content ...g.Node) g.Node {
	return Div(
		Class("max-w-2xl mx-auto"),
		g.Group(content),
	)
}
