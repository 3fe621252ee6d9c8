package layrthemes_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/layr-arb/layr/layrgraph"
	"github.com/layr-arb/layr/layrthemes"
	"github.com/layr-arb/layr/layrthemes/layrthemescatalog"
)

func TestCompile(t *testing.T) {
	t.Parallel()

	c, err := layrthemescatalog.ReviewBoard.Compile()
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{0x90, 0xEE, 0x90, 0xFF}, c.Fill(layrgraph.KindDatabase))
	assert.Equal(t, color.RGBA{0xFF, 0xA0, 0x7A, 0xFF}, c.Fill(layrgraph.KindActor))
	assert.Equal(t, color.RGBA{0xAD, 0xD8, 0xE6, 0xFF}, c.Fill("bogus"))
	assert.Equal(t, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}, c.Color(layrthemes.RoleBackground))

	broken := layrthemescatalog.ReviewBoard
	broken.Colors.Line = "nope"
	_, err = broken.Compile()
	assert.Error(t, err)

	missing := layrthemes.Theme{Name: "empty"}
	_, err = missing.Compile()
	assert.EqualError(t, err, `theme "empty": missing component color`)
}

func TestParse(t *testing.T) {
	t.Parallel()

	src := []byte(`
name = "Harbor"
colors {
  component  = "#1F3A5F"
  background = "navy"
}
`)
	theme, err := layrthemes.Parse("harbor.hcl", src, layrthemescatalog.ReviewBoard)
	assert.NoError(t, err)
	assert.Equal(t, "Harbor", theme.Name)
	assert.Equal(t, "#1F3A5F", theme.Colors.Component)
	assert.Equal(t, "navy", theme.Colors.Background)
	assert.Equal(t, layrthemescatalog.ReviewBoard.Colors.Database, theme.Colors.Database)

	_, err = layrthemes.Parse("bad.hcl", []byte(`name = "Bad"
colors {
  line = "not a color"
}
`), layrthemescatalog.ReviewBoard)
	assert.Error(t, err)

	_, err = layrthemes.Parse("noname.hcl", []byte("name = \"\"\ncolors {}\n"), layrthemescatalog.ReviewBoard)
	assert.Error(t, err)
}

func TestEncode(t *testing.T) {
	t.Parallel()

	src := layrthemes.Encode(layrthemescatalog.Night)
	assert.Contains(t, string(src), `name = "Night"`)

	theme, err := layrthemes.Parse("night.hcl", src, layrthemescatalog.ReviewBoard)
	assert.NoError(t, err)
	assert.Equal(t, layrthemescatalog.Night, theme)
}
