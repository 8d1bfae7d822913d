package normalize

import (
	"strings"
	"unicode/utf8"
)

// Sanitize drops runes that must not reach storage or the matcher's keyword set: C0 controls
// other than tab, LF and CR, DEL, C1 controls and invalid UTF-8 bytes. Clean input is returned
// as is
func Sanitize(s string) string {
	if utf8.ValidString(s) && strings.IndexFunc(s, unwanted) < 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		if r == utf8.RuneError || unwanted(r) {
			return -1
		}
		return r
	}, s)
}

func unwanted(r rune) bool {
	switch {
	case r == '\t', r == '\n', r == '\r':
		return false
	case r < 0x20, r == 0x7F:
		return true
	}
	return r >= 0x80 && r <= 0x9F
}
