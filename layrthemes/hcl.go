package layrthemes

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"oss.terrastruct.com/xdefer"
)

// Parse decodes a theme file:
//
//	name = "Night"
//	colors {
//	  component  = "#1F3A5F"
//	  background = "#0B0F19"
//	}
//
// Roles the file leaves out are taken from base.
func Parse(filename string, src []byte, base Theme) (_ Theme, err error) {
	defer xdefer.Errorf(&err, "failed to parse theme %s", filename)

	var t Theme
	err = hclsimple.Decode(filename, src, nil, &t)
	if err != nil {
		return Theme{}, err
	}
	if t.Name == "" {
		return Theme{}, fmt.Errorf("theme name must not be empty")
	}
	t.Colors = t.Colors.WithDefaults(base.Colors)
	_, err = t.Compile()
	if err != nil {
		return Theme{}, err
	}
	return t, nil
}

func LoadFile(path string, base Theme) (Theme, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, err
	}
	return Parse(path, src, base)
}

// Encode writes t in the format Parse reads.
func Encode(t Theme) []byte {
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	if t.ID != 0 {
		body.SetAttributeValue("id", cty.NumberIntVal(t.ID))
	}
	body.SetAttributeValue("name", cty.StringVal(t.Name))
	body.AppendNewline()

	colors := body.AppendNewBlock("colors", nil).Body()
	for _, r := range Roles {
		if v := t.Colors.Get(r); v != "" {
			colors.SetAttributeValue(string(r), cty.StringVal(v))
		}
	}
	return f.Bytes()
}
