package layrgrid

import (
	"math"

	"github.com/layr-arb/layr/lib/geo"
	"github.com/layr-arb/layr/lib/go2"
)

// Stack lays n fixed-height items row-major inside bounds with at most
// maxCols columns. Items share the width of bounds minus gaps.
func Stack(bounds *geo.Box, n, maxCols int, itemHeight, gap float64) []*geo.Box {
	if n <= 0 {
		return nil
	}
	cols := go2.Clamp(maxCols, 1, n)
	itemWidth := math.Max(0, (bounds.Width-gap*float64(cols-1))/float64(cols))

	boxes := make([]*geo.Box, n)
	for i := range boxes {
		row, col := i/cols, i%cols
		boxes[i] = geo.NewBox(
			geo.NewPoint(
				bounds.TopLeft.X+float64(col)*(itemWidth+gap),
				bounds.TopLeft.Y+float64(row)*(itemHeight+gap),
			),
			itemWidth,
			itemHeight,
		)
	}
	return boxes
}

// StackHeight is the height Stack needs for n items.
func StackHeight(n, maxCols int, itemHeight, gap float64) float64 {
	if n <= 0 {
		return 0
	}
	rows := go2.CeilDiv(n, go2.Clamp(maxCols, 1, n))
	return float64(rows)*itemHeight + float64(rows-1)*gap
}
