// layrfonts holds fonts for renderings
package layrfonts

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontFamily string
type FontStyle string

type Font struct {
	Family FontFamily
	Style  FontStyle
	Size   int
}

func (f FontFamily) Font(size int, style FontStyle) Font {
	return Font{
		Family: f,
		Style:  style,
		Size:   size,
	}
}

const (
	FONT_SIZE_S  = 12
	FONT_SIZE_M  = 14
	FONT_SIZE_L  = 16
	FONT_SIZE_XL = 20

	FONT_STYLE_REGULAR FontStyle = "regular"
	FONT_STYLE_BOLD    FontStyle = "bold"

	Go     FontFamily = "Go"
	GoMono FontFamily = "GoMono"
)

var FontSizes = []int{
	FONT_SIZE_S,
	FONT_SIZE_M,
	FONT_SIZE_L,
	FONT_SIZE_XL,
}

var FontStyles = []FontStyle{
	FONT_STYLE_REGULAR,
	FONT_STYLE_BOLD,
}

var FontFamilies = []FontFamily{
	Go,
	GoMono,
}

var (
	parseOnce sync.Once
	parsed    map[Font]*truetype.Font
	parseErr  error
)

func parseAll() {
	sources := map[Font][]byte{
		{Family: Go, Style: FONT_STYLE_REGULAR}:     goregular.TTF,
		{Family: Go, Style: FONT_STYLE_BOLD}:        gobold.TTF,
		{Family: GoMono, Style: FONT_STYLE_REGULAR}: gomono.TTF,
		{Family: GoMono, Style: FONT_STYLE_BOLD}:    gomonobold.TTF,
	}
	parsed = make(map[Font]*truetype.Font, len(sources))
	for k, ttf := range sources {
		f, err := truetype.Parse(ttf)
		if err != nil {
			parseErr = fmt.Errorf("failed to parse font %s %s: %w", k.Family, k.Style, err)
			return
		}
		parsed[k] = f
	}
}

// Face returns a new face for f. Faces cache glyphs and are not safe for
// concurrent use so every render builds its own. The parsed fonts are shared.
func (f Font) Face() (font.Face, error) {
	parseOnce.Do(parseAll)
	if parseErr != nil {
		return nil, parseErr
	}
	ttf, ok := parsed[Font{Family: f.Family, Style: f.Style}]
	if !ok {
		return nil, fmt.Errorf("unknown font %s %s", f.Family, f.Style)
	}
	return truetype.NewFace(ttf, &truetype.Options{
		Size:    float64(f.Size),
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}
