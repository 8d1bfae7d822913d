package normalize

import (
	"testing"
	"unicode/utf8"
)

func TestRune_Table(t *testing.T) {
	tests := []struct {
		name    string
		in      rune
		out     rune
		changed bool
	}{
		{name: "lower ascii untouched", in: 'a', out: 'a'},
		{name: "digit untouched", in: '7', out: '7'},
		{name: "punct untouched", in: '!', out: '!'},
		{name: "upper ascii folds", in: 'Q', out: 'q', changed: true},
		{name: "fullwidth lower", in: 'ｂ', out: 'b', changed: true},
		{name: "fullwidth upper folds to lower", in: 'Ｂ', out: 'b', changed: true},
		{name: "fullwidth digit", in: '５', out: '5', changed: true},
		{name: "fullwidth punct", in: '！', out: '!', changed: true},
		{name: "ideographic space", in: '　', out: ' ', changed: true},
		{name: "circled digit", in: '①', out: '1', changed: true},
		{name: "parenthesized digit", in: '⑶', out: '3', changed: true},
		{name: "full stop digit", in: '⒌', out: '5', changed: true},
		{name: "double circled digit", in: '⓹', out: '5', changed: true},
		{name: "dingbat negative circled", in: '❼', out: '7', changed: true},
		{name: "circled ideograph digit", in: '㊂', out: '3', changed: true},
		{name: "circled letter", in: 'ⓧ', out: 'x', changed: true},
		{name: "circled capital letter", in: 'Ⓧ', out: 'x', changed: true},
		{name: "math bold letter", in: '𝐛', out: 'b', changed: true},
		{name: "math bold digit", in: '𝟗', out: '9', changed: true},
		{name: "traditional ideograph", in: '國', out: '国', changed: true},
		{name: "simplified ideograph untouched", in: '国', out: '国'},
		{name: "unmapped ideograph untouched", in: '人', out: '人'},
		{name: "circled ten is not a digit", in: '⑩', out: '⑩'},
		{name: "cyrillic untouched", in: 'ж', out: 'ж'},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, changed := Rune(tc.in)
			if got != tc.out || changed != tc.changed {
				t.Fatalf("Rune(%q) = (%q,%v), want (%q,%v)", tc.in, got, changed, tc.out, tc.changed)
			}
			// folding is idempotent
			again, changed2 := Rune(got)
			if again != got || changed2 {
				t.Fatalf("Rune not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestString_PreservesRuneCount(t *testing.T) {
	in := "ＢＡＤ　說①ⓧ𝐛 ok"
	got := String(in)
	if utf8.RuneCountInString(got) != utf8.RuneCountInString(in) {
		t.Fatalf("rune count changed: %q (%d) -> %q (%d)",
			in, utf8.RuneCountInString(in), got, utf8.RuneCountInString(got))
	}
	if want := "bad 说1xb ok"; got != want {
		t.Fatalf("String(%q) = %q, want %q", in, got, want)
	}
	if String("") != "" {
		t.Fatalf("empty input must stay empty")
	}
}

func TestRunes_ReusesDst(t *testing.T) {
	src := []rune("ABC")
	dst := make([]rune, 0, 8)
	out := Default().Runes(dst, src)
	if string(out) != "abc" {
		t.Fatalf("Runes = %q, want abc", string(out))
	}
	if &out[:1][0] != &dst[:1][0] {
		t.Fatalf("Runes did not reuse dst backing array")
	}
}

func TestNew_CustomTables(t *testing.T) {
	n := New(
		WithLookalikes(TableFunc(func(r rune) (rune, bool) {
			if r == '§' {
				return 's', true
			}
			return r, false
		})),
		WithVariants(VariantTable(make([]rune, IdeographLast-IdeographFirst+1))),
	)
	if got, ok := n.Rune('§'); got != 's' || !ok {
		t.Fatalf("custom lookalike not applied: %q %v", got, ok)
	}
	if got, ok := n.Rune('國'); got != '國' || ok {
		t.Fatalf("empty variant table should pass through, got %q %v", got, ok)
	}
	// nil tables keep the defaults
	d := New(WithLookalikes(nil), WithVariants(nil))
	if got, _ := d.Rune('①'); got != '1' {
		t.Fatalf("nil override dropped default table: %q", got)
	}
}

func TestParseVariants(t *testing.T) {
	tbl, err := ParseVariants([]byte("# comment\n\n龍\t龙\n"))
	if err != nil {
		t.Fatalf("ParseVariants: %v", err)
	}
	if got, ok := tbl.Lookup('龍'); !ok || got != '龙' {
		t.Fatalf("Lookup(龍) = %q %v", got, ok)
	}
	if _, ok := tbl.Lookup('a'); ok {
		t.Fatalf("ascii must not be in the variant table")
	}

	bad := []string{
		"龍龙\n",     // no tab
		"龍龍\t龙\n",  // two runes in column one
		"a\tb\n",    // outside ideograph block
	}
	for _, in := range bad {
		if _, err := ParseVariants([]byte(in)); err == nil {
			t.Fatalf("ParseVariants(%q) expected error", in)
		}
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"tab\tand\nnewline\r", "tab\tand\nnewline\r"},
		{"nul\x00bell\x07del\x7f", "nulbelldel"},
		{"c1\u0085x", "c1x"},
		{"bad\xffutf8", "badutf8"},
		{"说话", "说话"},
	}
	for _, tc := range tests {
		if got := Sanitize(tc.in); got != tc.want {
			t.Fatalf("Sanitize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
