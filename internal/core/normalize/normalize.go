// Package normalize maps visually or semantically equivalent runes to one canonical rune.
// The mapping is strictly one rune to one rune so canonical indices equal source indices
// Fold order
// 1 ASCII upper case to lower case
// 2 East Asian fullwidth forms and ideographic space to their narrow form
// 3 Variant ideographs to the canonical simplified form
// 4 Digit and letter look-alikes (circled, parenthesized, math alphanumerics) to ASCII
// Unmapped runes pass through unchanged
package normalize

import (
	"golang.org/x/text/width"
)

// Table maps a code point to its canonical form
type Table interface {
	Lookup(r rune) (rune, bool)
}

// TableFunc adapts a plain function to Table
type TableFunc func(r rune) (rune, bool)

// Lookup implements Table
func (f TableFunc) Lookup(r rune) (rune, bool) { return f(r) }

// Normalizer folds runes using its look-alike and variant tables.
// It holds no mutable state and is safe for concurrent use
type Normalizer struct {
	lookalikes Table
	variants   Table
}

// Option customizes a Normalizer
type Option func(*Normalizer)

// WithLookalikes replaces the digit and letter look-alike table
func WithLookalikes(t Table) Option {
	return func(n *Normalizer) {
		if t != nil {
			n.lookalikes = t
		}
	}
}

// WithVariants replaces the ideograph variant table
func WithVariants(t Table) Option {
	return func(n *Normalizer) {
		if t != nil {
			n.variants = t
		}
	}
}

var std = New()

// New constructs a Normalizer backed by the built-in tables unless overridden
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		lookalikes: Lookalikes(),
		variants:   Variants(),
	}
	for _, o := range opts {
		o(n)
	}
	return n
}

// Default returns the shared Normalizer built from the built-in tables
func Default() *Normalizer { return std }

// Rune returns the canonical form of r and whether it differs from r
func (n *Normalizer) Rune(r rune) (rune, bool) {
	switch {
	case r < 'A':
		return r, false
	case r <= 'Z':
		return r + ('a' - 'A'), true
	case r < 0x80:
		return r, false
	case r >= IdeographFirst && r <= IdeographLast:
		if v, ok := n.variants.Lookup(r); ok && v != r {
			return v, true
		}
		return r, false
	case r == ideographicSpace:
		return ' ', true
	}

	if r > ideographicSpace {
		if p := width.LookupRune(r); p.Kind() == width.EastAsianFullwidth {
			if nr := p.Narrow(); nr != 0 && nr != r {
				if nr >= 'A' && nr <= 'Z' {
					nr += 'a' - 'A'
				}
				return nr, true
			}
		}
	}

	if v, ok := n.lookalikes.Lookup(r); ok && v != r {
		return v, true
	}
	return r, false
}

// Runes folds every rune of src into dst and returns dst.
// dst is grown as needed, so passing nil allocates a new slice
func (n *Normalizer) Runes(dst, src []rune) []rune {
	if cap(dst) < len(src) {
		dst = make([]rune, len(src))
	}
	dst = dst[:len(src)]
	for i, r := range src {
		dst[i], _ = n.Rune(r)
	}
	return dst
}

// String returns the canonical form of s
func (n *Normalizer) String(s string) string {
	if s == "" {
		return ""
	}
	return string(n.Runes(nil, []rune(s)))
}

// Rune folds r with the default tables
func Rune(r rune) (rune, bool) { return std.Rune(r) }

// String folds s with the default tables
func String(s string) string { return std.String(s) }
