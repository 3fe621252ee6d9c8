package layrthemescatalog

import "github.com/layr-arb/layr/layrthemes"

var Night = layrthemes.Theme{
	ID:   200,
	Name: "Night",
	Colors: layrthemes.ColorPalette{
		Component: "#1F3A5F",
		Database:  "#1E4D3A",
		Service:   "#5C4A14",
		External:  "#3A3A3A",
		User:      "#5E2F24",

		Background: "#0B0F19",
		Line:       "#CDD6F4",
		Text:       "#F5F7FF",
		Border:     "#CDD6F4",
		Highlight:  "#FF7A45",
	},
}
