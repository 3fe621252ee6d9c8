package layrthemescatalog

import (
	"fmt"
	"strings"

	"github.com/layr-arb/layr/layrthemes"
)

var Catalog = []layrthemes.Theme{
	ReviewBoard,
	Grayscale,
	ColorblindClear,
	Blueprint,
	Night,
}

func Find(id int64) layrthemes.Theme {
	for _, theme := range Catalog {
		if theme.ID == id {
			return theme
		}
	}

	return layrthemes.Theme{}
}

// FindByName matches case-insensitively.
func FindByName(name string) layrthemes.Theme {
	for _, theme := range Catalog {
		if strings.EqualFold(theme.Name, name) {
			return theme
		}
	}

	return layrthemes.Theme{}
}

func CLIString() string {
	var s strings.Builder
	for _, t := range Catalog {
		s.WriteString(fmt.Sprintf("- %s: %d\n", t.Name, t.ID))
	}
	return s.String()
}
