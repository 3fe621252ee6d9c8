// Package textmeasure estimates label widths and flows labels into lines.
//
// Widths are estimates: every grapheme cluster counts as one average glyph.
// Layout only needs to know whether a label fits its box, and the estimate is
// independent of the font that finally draws it.
package textmeasure

import (
	"strings"

	"github.com/rivo/uniseg"
)

// AVG_CHAR_WIDTH is the per-glyph estimate used by labels in shapes.
const AVG_CHAR_WIDTH = 7

// LINE_HEIGHT is the vertical advance between wrapped label lines.
const LINE_HEIGHT = 15

// EstimateWidth returns the width of s when each grapheme is avg pixels wide.
func EstimateWidth(s string, avg float64) float64 {
	return float64(uniseg.GraphemeClusterCount(s)) * avg
}

// Wrap greedily flows the words of s into lines no wider than budget.
//
// A word that alone is wider than budget is placed on its own line unbroken.
// Explicit newlines in s always start a new line. Runs of whitespace collapse
// to one space.
func Wrap(s string, budget, avg float64) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		lines = append(lines, wrapParagraph(para, budget, avg)...)
	}
	return lines
}

func wrapParagraph(s string, budget, avg float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if EstimateWidth(candidate, avg) <= budget {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = w
	}
	return append(lines, line)
}

// Fits reports whether s fits within budget on one line.
func Fits(s string, budget, avg float64) bool {
	return EstimateWidth(s, avg) <= budget
}

// MaxWidth returns the estimated width of the widest line.
func MaxWidth(lines []string, avg float64) float64 {
	max := 0.
	for _, l := range lines {
		if w := EstimateWidth(l, avg); w > max {
			max = w
		}
	}
	return max
}
