package text

import (
	"regexp"
	"strings"

	"github.com/go-text/typesetting/segmenter"
)

// boundaryChars are the characters that travel to the other end of a run
// when they sit on a direction boundary.
const boundaryChars = "!@#$%^&*_({[<,.?|/-"

// isBoundaryChar reports whether the grapheme g is a single boundary character.
func isBoundaryChar(g string) bool {
	return len(g) == 1 && strings.IndexByte(boundaryChars, g[0]) >= 0
}

// runGroup is a maximal sequence of consecutive inlines sharing one
// direction tag.
type runGroup struct {
	dir   RunDirection
	items []*Inline
}

// groupByDirection partitions inlines into runs of equal direction tags.
func groupByDirection(inlines []*Inline) []runGroup {
	var groups []runGroup
	for _, in := range inlines {
		if n := len(groups); n > 0 && groups[n-1].dir == in.Direction {
			groups[n-1].items = append(groups[n-1].items, in)
			continue
		}
		groups = append(groups, runGroup{dir: in.Direction, items: []*Inline{in}})
	}
	return groups
}

// transferBoundary moves boundary punctuation across every (from, to)
// direction boundary: the trailing boundary character of the from-group's
// last inline is removed and prepended to the first inline of that same
// group. Widths are re-balanced by the measured width of the character.
//
// The order of inlines is left untouched. An inline loses at most one
// boundary character over its lifetime.
func (b *Bidi) transferBoundary(inlines []*Inline, from, to RunDirection) {
	groups := groupByDirection(inlines)
	for i := 0; i+1 < len(groups); i++ {
		g, next := groups[i], groups[i+1]
		if g.dir != from || next.dir != to {
			continue
		}
		last := g.items[len(g.items)-1]
		if last.boundaryMoved {
			continue
		}
		rest, ch := splitLastGrapheme(strings.TrimSpace(last.Text))
		if !isBoundaryChar(ch) {
			continue
		}
		w := b.measure.Measure(ch)

		last.Text = " " + rest
		last.Width -= w
		last.boundaryMoved = true

		first := g.items[0]
		first.Text = ch + strings.TrimSpace(first.Text)
		first.Width += w

		slogger().Debug("text: boundary character moved",
			"char", ch, "from", from.String(), "to", to.String(), "group", i)
	}
}

// splitLastGrapheme splits s before its last grapheme cluster.
func splitLastGrapheme(s string) (rest, last string) {
	if s == "" {
		return "", ""
	}
	var seg segmenter.Segmenter
	seg.InitWithString(s)
	iter := seg.GraphemeIterator()
	var g segmenter.Grapheme
	for iter.Next() {
		g = iter.Grapheme()
	}
	runes := []rune(s)
	return string(runes[:g.Offset]), string(g.Text)
}

// trailingSymbolRE matches whitespace before a trailing run of punctuation
// or symbols. Unicode separators such as U+00A0 count as whitespace.
var trailingSymbolRE = regexp.MustCompile(`[\s\p{Z}]+([/\\\-\p{P}\p{S}]+)[\s\p{Z}]*$`)

// fixTrailingSymbols collapses whitespace before trailing punctuation of a
// shaped right-to-left run into exactly one space after it.
func fixTrailingSymbols(s string) string {
	return trailingSymbolRE.ReplaceAllString(s, "${1} ")
}
