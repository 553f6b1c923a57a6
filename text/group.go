package text

import "strings"

// isOpenBracket reports whether the trimmed text of s starts with an
// opening bracket.
func isOpenBracket(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	switch s[0] {
	case '(', '[', '{', '<':
		return true
	}
	return false
}

// isCloseBracket reports whether the trimmed text of s ends with a closing
// bracket.
func isCloseBracket(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	switch s[len(s)-1] {
	case ')', ']', '}', '>':
		return true
	}
	return false
}

// groupInlines partitions a line into reorder units. Consecutive LTR
// inlines form a single unit; a unit that starts with an opening bracket
// is split further so every bracketed span stays contiguous. Every other
// inline is a unit of its own.
func groupInlines(inlines []*Inline) [][]*Inline {
	var groups [][]*Inline
	var run []*Inline

	flush := func() {
		if len(run) == 0 {
			return
		}
		if isOpenBracket(run[0].Text) {
			groups = append(groups, splitByBrackets(run)...)
		} else {
			groups = append(groups, run)
		}
		run = nil
	}

	for _, in := range inlines {
		if in.Direction == RunLTR {
			run = append(run, in)
			continue
		}
		flush()
		groups = append(groups, []*Inline{in})
	}
	flush()
	return groups
}

// splitByBrackets splits an LTR run so that each span from an opening
// bracket to its closing bracket becomes its own group.
func splitByBrackets(run []*Inline) [][]*Inline {
	var groups [][]*Inline
	var cur []*Inline
	for _, in := range run {
		switch {
		case isOpenBracket(in.Text):
			if len(cur) > 0 {
				groups = append(groups, cur)
			}
			cur = []*Inline{in}
			if isCloseBracket(in.Text) {
				groups = append(groups, cur)
				cur = nil
			}
		case isCloseBracket(in.Text):
			groups = append(groups, append(cur, in))
			cur = nil
		default:
			cur = append(cur, in)
		}
	}
	if len(cur) > 0 {
		groups = append(groups, cur)
	}
	return groups
}
