package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Button Components ----

type buttonOption func(*buttonConfig)

type buttonConfig struct {
	href string
}

// withHref renders the button as a link to href.
func withHref(href string) buttonOption {
	return func(c *buttonConfig) {
		c.href = href
	}
}

func buttonStyled(text, class string, options ...buttonOption) g.Node {
	config := &buttonConfig{}
	for _, option := range options {
		option(config)
	}

	if config.href != "" {
		return A(Href(config.href), Class(class), g.Text(text))
	}
	return Button(Type("button"), Class(class), g.Text(text))
}

// buttonSecondary creates a secondary button (blue text, underlined on hover)
func buttonSecondary(text string, options ...buttonOption) g.Node {
	return buttonStyled(text, "px-4 py-2 rounded inline-block text-blue-500 hover:underline", options...)
}

func actionButtons(buttons ...g.Node) g.Node {
	return Div(
		Class("mt-8 space-x-4"),
		g.Group(buttons),
	)
}
