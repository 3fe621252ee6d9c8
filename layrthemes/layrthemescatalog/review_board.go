package layrthemescatalog

import "github.com/layr-arb/layr/layrthemes"

var ReviewBoard = layrthemes.Theme{
	ID:   0,
	Name: "Review Board",
	Colors: layrthemes.ColorPalette{
		Component: "#ADD8E6",
		Database:  "#90EE90",
		Service:   "#FFD700",
		External:  "#D3D3D3",
		User:      "#FFA07A",

		Background: "#FFFFFF",
		Line:       "#000000",
		Text:       "#000000",
		Border:     "#000000",
		Highlight:  "#FF4500",
	},
}
