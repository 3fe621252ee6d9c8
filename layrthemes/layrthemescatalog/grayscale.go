package layrthemescatalog

import "github.com/layr-arb/layr/layrthemes"

var Grayscale = layrthemes.Theme{
	ID:   1,
	Name: "Grayscale",
	Colors: layrthemes.ColorPalette{
		Component: "#E6E6E6",
		Database:  "#CCCCCC",
		Service:   "#F2F2F2",
		External:  "#B3B3B3",
		User:      "#D9D9D9",

		Background: "#FFFFFF",
		Line:       "#333333",
		Text:       "#111111",
		Border:     "#333333",
		Highlight:  "#000000",
	},
}
