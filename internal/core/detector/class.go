package detector

import "wordguard/internal/core/normalize"

// Class is the lexical class of a canonical rune, used for jump and boundary decisions
type Class uint8

const (
	// Unclassified covers runes outside ASCII and the ideograph block; never bridged
	Unclassified Class = iota
	// Other is any ASCII rune that is neither a letter nor a digit
	Other
	// Digit is ASCII 0-9
	Digit
	// Letter is ASCII a-z or A-Z
	Letter
	// Ideograph is the CJK unified block U+4E00..U+9FA5
	Ideograph
)

// ClassOf derives the class of r from its code point range
func ClassOf(r rune) Class {
	switch {
	case r >= '0' && r <= '9':
		return Digit
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return Letter
	case r < 0x7F:
		return Other
	case r >= normalize.IdeographFirst && r <= normalize.IdeographLast:
		return Ideograph
	}
	return Unclassified
}

// String implements fmt.Stringer
func (c Class) String() string {
	switch c {
	case Other:
		return "other"
	case Digit:
		return "digit"
	case Letter:
		return "letter"
	case Ideograph:
		return "ideograph"
	}
	return "unclassified"
}

// bridgeable reports whether a filler of class filler may sit after a matched rune of class last
func bridgeable(last, filler Class) bool {
	switch filler {
	case Unclassified:
		return false
	case Digit, Letter, Ideograph:
		return filler != last
	}
	return true
}

// sameRun reports whether a and b belong to one Latin word or one number
func sameRun(a, b rune) bool {
	ca, cb := ClassOf(a), ClassOf(b)
	return ca == cb && (ca == Letter || ca == Digit)
}
