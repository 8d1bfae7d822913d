package normalize

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"
)

// IdeographFirst and IdeographLast bound the CJK unified block the variant table covers
const (
	IdeographFirst = 0x4E00
	IdeographLast  = 0x9FA5
)

//go:embed variants.tsv
var variantsTSV []byte

// VariantTable is a dense table keyed by offset within the CJK unified block.
// A zero entry means the ideograph is already canonical
type VariantTable []rune

// Lookup implements Table
func (t VariantTable) Lookup(r rune) (rune, bool) {
	if r < IdeographFirst || r > IdeographLast {
		return r, false
	}
	v := t[r-IdeographFirst]
	if v == 0 {
		return r, false
	}
	return v, true
}

var variants = sync.OnceValue(func() Table {
	t, err := ParseVariants(variantsTSV)
	if err != nil {
		panic(err)
	}
	return t
})

// Variants returns the built-in variant to simplified table
func Variants() Table { return variants() }

// ParseVariants reads "variant<TAB>canonical" lines; blank lines and # comments are skipped
func ParseVariants(data []byte) (VariantTable, error) {
	t := make(VariantTable, IdeographLast-IdeographFirst+1)
	sc := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || s[0] == '#' {
			continue
		}
		from, to, ok := strings.Cut(s, "\t")
		if !ok {
			return nil, fmt.Errorf("normalize: variants line %d: missing tab", line)
		}
		f, fn := utf8.DecodeRuneInString(from)
		c, cn := utf8.DecodeRuneInString(strings.TrimSpace(to))
		if fn != len(from) || cn != len(strings.TrimSpace(to)) {
			return nil, fmt.Errorf("normalize: variants line %d: want one rune per column", line)
		}
		if f < IdeographFirst || f > IdeographLast {
			return nil, fmt.Errorf("normalize: variants line %d: %U outside ideograph block", line, f)
		}
		t[f-IdeographFirst] = c
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("normalize: read variants: %w", err)
	}
	return t, nil
}
