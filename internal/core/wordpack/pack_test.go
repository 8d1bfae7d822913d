package wordpack

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	perr "wordguard/internal/platform/errors"
)

func TestLoadEmbedded(t *testing.T) {
	p, err := Load()
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if p.Version != Version {
		t.Fatalf("version = %d", p.Version)
	}
	terms := p.Terms()
	if len(terms) == 0 {
		t.Fatalf("expected embedded keywords")
	}
	if !slices.Contains(terms, "傻瓜") || !slices.Contains(terms, "free money") {
		t.Fatalf("missing expected terms: %q", terms)
	}
	if _, ok := p.Group("spam"); !ok {
		t.Fatalf("missing spam group")
	}
	if p.Jump(3) != 1 || p.MaskRune('#') != '*' {
		t.Fatalf("scan defaults = %d %q", p.Jump(3), p.MaskRune('#'))
	}
}

func TestParse_Formats(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		data   string
		want   []string
	}{
		{
			name:   "json",
			format: FormatJSON,
			data:   `{"version":1,"keywords":["bad"," worse ","bad"],"groups":[{"name":"g","keywords":["ugly"]}]}`,
			want:   []string{"bad", "worse", "ugly"},
		},
		{
			name:   "toml",
			format: FormatTOML,
			data: `version = 1
jump_length = 2
keywords = ["bad"]

[[group]]
name = "cn"
keywords = ["傻瓜", "笨蛋"]
`,
			want: []string{"bad", "傻瓜", "笨蛋"},
		},
		{
			name:   "text",
			format: FormatText,
			data:   "# comment\nbad\n\n  worse  \r\nugly\x00\n",
			want:   []string{"bad", "worse", "ugly"},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			p, err := Parse([]byte(tc.data), tc.format)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if got := p.Terms(); !slices.Equal(got, tc.want) {
				t.Fatalf("Terms() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		data   string
	}{
		{name: "bad version", format: FormatJSON, data: `{"version":2,"keywords":["x"]}`},
		{name: "unknown json field", format: FormatJSON, data: `{"version":1,"words":["x"]}`},
		{name: "broken json", format: FormatJSON, data: `{"version":`},
		{name: "negative jump", format: FormatJSON, data: `{"version":1,"jump_length":-1}`},
		{name: "long mask", format: FormatJSON, data: `{"version":1,"mask":"**"}`},
		{name: "unnamed group", format: FormatJSON, data: `{"version":1,"groups":[{"keywords":["x"]}]}`},
		{name: "unknown toml key", format: FormatTOML, data: "version = 1\nwords = [\"x\"]\n"},
		{name: "broken toml", format: FormatTOML, data: "version = \n"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data), tc.format)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
				t.Fatalf("code = %v, want invalid argument (%v)", perr.CodeOf(err), err)
			}
		})
	}
}

func TestReadFileAndFormatOf(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.TOML")
	if err := os.WriteFile(path, []byte("version = 1\nkeywords = [\"bad\"]\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if FormatOf(path) != FormatTOML || FormatOf("x.json") != FormatJSON || FormatOf("x.lst") != FormatText {
		t.Fatalf("FormatOf mismatch")
	}
	p, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !slices.Equal(p.Terms(), []string{"bad"}) {
		t.Fatalf("terms = %q", p.Terms())
	}

	_, err = ReadFile(filepath.Join(dir, "missing.txt"))
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("missing file code = %v", perr.CodeOf(err))
	}
}

func TestMergeAndEncode(t *testing.T) {
	two := 2
	dst := &Pack{Version: Version, Keywords: []string{"a"}, Groups: []Group{{Name: "g", Keywords: []string{"b"}}}}
	dst.Merge(&Pack{
		Version:    Version,
		JumpLength: &two,
		Mask:       "#",
		Keywords:   []string{"c"},
		Groups:     []Group{{Name: "g", Keywords: []string{"d"}}, {Name: "h", Keywords: []string{"e"}}},
	})
	dst.Merge(nil)

	if got := dst.Terms(); !slices.Equal(got, []string{"a", "c", "b", "d", "e"}) {
		t.Fatalf("terms = %q", got)
	}
	if dst.Jump(1) != 2 || dst.MaskRune('*') != '#' {
		t.Fatalf("defaults not merged")
	}

	b, err := dst.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	back, err := Parse(b, FormatJSON)
	if err != nil {
		t.Fatalf("Parse(Encode()): %v", err)
	}
	if !slices.Equal(back.Terms(), dst.Terms()) {
		t.Fatalf("round trip terms = %q", back.Terms())
	}
}
