package detector

import "strconv"

// Match is an accepted keyword occurrence. Start and End are rune offsets, End inclusive
type Match struct {
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Keyword string `json:"keyword"` // canonical keyword
	Source  string `json:"source"`  // original text covered by [Start, End]
}

// Len is the number of runes covered
func (m Match) Len() int { return m.End - m.Start + 1 }

// String renders "<start>|<source>"
func (m Match) String() string { return strconv.Itoa(m.Start) + "|" + m.Source }

// input is one prepared scan: original runes and their canonical forms, index aligned
type input struct {
	src  []rune
	text []rune
}

func (in input) match(start, end int, keyword string) Match {
	return Match{
		Start:   start,
		End:     end,
		Keyword: keyword,
		Source:  string(in.src[start : end+1]),
	}
}
