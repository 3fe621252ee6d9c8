package layrfonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font"
)

func TestFaces(t *testing.T) {
	t.Parallel()

	for _, family := range FontFamilies {
		for _, style := range FontStyles {
			for _, size := range FontSizes {
				face, err := family.Font(size, style).Face()
				assert.NoError(t, err)
				assert.Greater(t, font.MeasureString(face, "Layr").Ceil(), 0)
				assert.Nil(t, face.Close())
			}
		}
	}

	_, err := FontFamily("Comic").Font(FONT_SIZE_M, FONT_STYLE_REGULAR).Face()
	assert.Error(t, err)
}

func TestFaceSizeGrows(t *testing.T) {
	t.Parallel()

	small, err := Go.Font(FONT_SIZE_S, FONT_STYLE_REGULAR).Face()
	assert.NoError(t, err)
	large, err := Go.Font(FONT_SIZE_XL, FONT_STYLE_REGULAR).Face()
	assert.NoError(t, err)
	assert.Less(t, font.MeasureString(small, "Database").Ceil(), font.MeasureString(large, "Database").Ceil())
}
