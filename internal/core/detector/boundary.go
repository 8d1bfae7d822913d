package detector

// accept rejects a candidate embedded in a longer Latin word or number.
// The rune after end and the rune before start are compared with the span's edge runes
// over canonical text; ideographs never form runs
func accept(text []rune, start, end int) bool {
	if start < 0 || end >= len(text) || start > end {
		return false
	}
	if end+1 < len(text) && sameRun(text[end], text[end+1]) {
		return false
	}
	if start > 0 && sameRun(text[start-1], text[start]) {
		return false
	}
	return true
}
