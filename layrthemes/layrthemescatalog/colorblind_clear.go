package layrthemescatalog

import "github.com/layr-arb/layr/layrthemes"

var ColorblindClear = layrthemes.Theme{
	ID:   2,
	Name: "Colorblind clear",
	Colors: layrthemes.ColorPalette{
		Component: "#88CCEE",
		Database:  "#44AA99",
		Service:   "#DDCC77",
		External:  "#DDDDDD",
		User:      "#CC6677",

		Background: "#FFFFFF",
		Line:       "#010E31",
		Text:       "#010E31",
		Border:     "#010E31",
		Highlight:  "#AA4499",
	},
}
