// flag_helpers.go holds the usage wrapping pflag keeps private.
package xmain

import "strings"

// wrap wraps s to width w with every continuation line indented by i.
// A zero w only indents existing newlines.
func wrap(i, w int, s string) string {
	indent := "\n" + strings.Repeat(" ", i)
	if w == 0 {
		return strings.ReplaceAll(s, "\n", indent)
	}
	width := w - i
	var r string
	if width < 24 {
		i = 16
		width = w - i
		indent = "\n" + strings.Repeat(" ", i)
		r = indent
	}
	if width < 24 {
		return strings.ReplaceAll(s, "\n", r)
	}

	const slop = 5
	width -= slop
	var l string
	l, s = wrapN(width, slop, s)
	r += strings.ReplaceAll(l, "\n", indent)
	for s != "" {
		l, s = wrapN(width, slop, s)
		r += indent + strings.ReplaceAll(l, "\n", indent)
	}
	return r
}

// wrapN splits s at the last whitespace before i, allowing slop extra bytes
// before splitting at all.
func wrapN(i, slop int, s string) (string, string) {
	if i+slop > len(s) {
		return s, ""
	}
	w := strings.LastIndexAny(s[:i], " \t\n")
	if w <= 0 {
		return s, ""
	}
	if nl := strings.LastIndex(s[:i], "\n"); nl > 0 && nl < w {
		return s[:nl], s[nl+1:]
	}
	return s[:w], s[w+1:]
}
