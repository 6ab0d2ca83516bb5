package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Message Components ----

func NoResultsMessage(message string) g.Node {
	return Div(
		Class("flex justify-center items-center p-8"),
		Div(
			Class("text-center"),
			P(Class("text-gray-600 text-lg"), g.Text(message)),
		),
	)
}

func ErrorPage(assets Assets, code int, message string) g.Node {
	return Page(
		assets,
		fmt.Sprintf("Error %d", code),
		[]g.Node{
			pageHeader(fmt.Sprintf("Error %d", code)),
			P(g.Text(message)),
			actionButtons(buttonSecondary("Back to Car Finder", withHref("/"))),
		},
	)
}
