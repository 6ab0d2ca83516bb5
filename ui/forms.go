package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Form Components ----

func FormGroup(labelText string, fieldID string, input g.Node) g.Node {
	return Div(
		Class("space-y-2"),
		Label(For(fieldID), Class("block font-bold"), g.Text(labelText)),
		input,
	)
}

// SelectInput renders a <select> whose first option is an empty-valued
// placeholder. With no values the select is rendered disabled.
func SelectInput(id, name, placeholder string, values []string, attrs ...g.Node) g.Node {
	options := []g.Node{
		Option(Value(""), g.Text(placeholder)),
	}
	for _, value := range values {
		options = append(options, Option(Value(value), g.Text(value)))
	}

	class := "w-full p-2 border rounded"
	if len(values) == 0 {
		class += " opacity-50 cursor-not-allowed"
	}
	selectAttrs := []g.Node{
		ID(id),
		Name(name),
		Class(class),
	}
	if len(values) == 0 {
		selectAttrs = append(selectAttrs, Disabled())
	}
	selectAttrs = append(selectAttrs, attrs...)

	return Select(append(selectAttrs, g.Group(options))...)
}
