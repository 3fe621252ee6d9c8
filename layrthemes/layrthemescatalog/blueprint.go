package layrthemescatalog

import "github.com/layr-arb/layr/layrthemes"

var Blueprint = layrthemes.Theme{
	ID:   3,
	Name: "Blueprint",
	Colors: layrthemes.ColorPalette{
		Component: "#E3E9FD",
		Database:  "#C9D6FB",
		Service:   "#EDF0FD",
		External:  "#F7F8FE",
		User:      "#D6E0FC",

		Background: "#FFFFFF",
		Line:       "#0D32B2",
		Text:       "#0A0F25",
		Border:     "#0D32B2",
		Highlight:  "#4A6FF3",
	},
}
