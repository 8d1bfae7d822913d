package normalize

import (
	"strings"
	"sync"

	"golang.org/x/text/unicode/norm"
)

const ideographicSpace = 0x3000

// compatibility ranges whose NFKC form collapses to a single ASCII digit or letter
// once decoration ("(", ")", ".") is stripped
var compatRanges = [][2]rune{
	{0x2460, 0x24FF},   // enclosed alphanumerics
	{0x1D400, 0x1D7FF}, // mathematical alphanumeric symbols
	{0x1F100, 0x1F1FF}, // enclosed alphanumeric supplement
}

// digit glyphs without a compatibility decomposition
var digitRuns = []struct {
	first rune
	zero  bool // first maps to '0' instead of '1'
	count int
}{
	{first: 0x24F5, count: 9},             // double circled 1..9
	{first: 0x24FF, zero: true, count: 1}, // negative circled zero
	{first: 0x2776, count: 9},             // dingbat negative circled 1..9
	{first: 0x2780, count: 9},             // dingbat circled sans-serif 1..9
	{first: 0x278A, count: 9},             // dingbat negative circled sans-serif 1..9
	{first: 0x3220, count: 9},             // parenthesized ideograph one..nine
	{first: 0x3280, count: 9},             // circled ideograph one..nine
}

type runeMap map[rune]rune

func (m runeMap) Lookup(r rune) (rune, bool) {
	v, ok := m[r]
	return v, ok
}

var lookalikes = sync.OnceValue(func() Table {
	m := make(runeMap, 2048)
	for _, rg := range compatRanges {
		for r := rg[0]; r <= rg[1]; r++ {
			if c, ok := compatASCII(r); ok {
				m[r] = c
			}
		}
	}
	for _, run := range digitRuns {
		d := '1'
		if run.zero {
			d = '0'
		}
		for i := 0; i < run.count; i++ {
			m[run.first+rune(i)] = d + rune(i)
		}
	}
	return m
})

// Lookalikes returns the built-in digit and letter look-alike table
func Lookalikes() Table { return lookalikes() }

// compatASCII reports the ASCII alphanumeric r decomposes to under NFKC
func compatASCII(r rune) (rune, bool) {
	s := norm.NFKC.String(string(r))
	s = strings.Trim(s, "().")
	if len(s) != 1 {
		return 0, false
	}
	c := rune(s[0])
	switch {
	case c >= '0' && c <= '9':
		return c, true
	case c >= 'a' && c <= 'z':
		return c, true
	case c >= 'A' && c <= 'Z':
		return c + ('a' - 'A'), true
	}
	return 0, false
}
