package cmd

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wordguard/internal/core/detector"
)

func mustMatcher(t *testing.T, keywords ...string) *detector.Matcher {
	t.Helper()
	m, err := detector.Compile(keywords, 1, nil)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	return m
}

func textInput(name, text string) input {
	return input{name: name, open: func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(text)), nil
	}}
}

func TestScanLines(t *testing.T) {
	m := mustMatcher(t, "bad", "worse")
	text := "fine\nthis is b.a.d\nbad and worse\n"

	tests := []struct {
		mode  string
		lines []int
		count int
	}{
		{mode: "contains", lines: []int{2, 3}, count: 0},
		{mode: "first", lines: []int{2, 3}, count: 2},
		{mode: "all", lines: []int{2, 3}, count: 3},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.mode, func(t *testing.T) {
			hits, err := scanLines(m, tc.mode, strings.NewReader(text))
			if err != nil {
				t.Fatalf("scanLines: %v", err)
			}
			if len(hits) != len(tc.lines) {
				t.Fatalf("hits = %+v", hits)
			}
			n := 0
			for i, h := range hits {
				if h.line != tc.lines[i] {
					t.Fatalf("line = %d, want %d", h.line, tc.lines[i])
				}
				n += len(h.matches)
			}
			if n != tc.count {
				t.Fatalf("matches = %d, want %d", n, tc.count)
			}
		})
	}
}

func TestScanInputsKeepsOrder(t *testing.T) {
	m := mustMatcher(t, "bad")
	inputs := []input{
		textInput("a", "bad\n"),
		textInput("b", "clean\n"),
		{name: "missing", open: func() (io.ReadCloser, error) { return nil, errors.New("no such file") }},
		textInput("c", "x\nso bad\n"),
	}

	results, err := scanInputs(m, "all", inputs, 2)
	if err != nil {
		t.Fatalf("scanInputs: %v", err)
	}
	var out bytes.Buffer
	found, err := printHits(&out, "all", results)
	if err != nil || !found {
		t.Fatalf("printHits found=%v err=%v", found, err)
	}
	want := "a:1: 0|bad bad\nmissing: error: no such file\nc:2: 3|bad bad\n"
	if out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}
}

func TestPrintHitsContainsMode(t *testing.T) {
	var out bytes.Buffer
	found, err := printHits(&out, "contains", []fileHits{{name: "(stdin)", hits: []lineHit{{line: 4}}}})
	if err != nil || !found || out.String() != "(stdin):4\n" {
		t.Fatalf("printHits = %q %v %v", out.String(), found, err)
	}

	out.Reset()
	found, _ = printHits(&out, "all", []fileHits{{name: "x"}})
	if found || out.Len() != 0 {
		t.Fatalf("clean input printed %q", out.String())
	}
}

func TestParseMask(t *testing.T) {
	tests := []struct {
		in   string
		want rune
		ok   bool
	}{
		{in: "", want: '*', ok: true},
		{in: "#", want: '#', ok: true},
		{in: "█", want: '█', ok: true},
		{in: "##", ok: false},
	}
	for _, tc := range tests {
		got, err := parseMask(tc.in, '*')
		if (err == nil) != tc.ok || (tc.ok && got != tc.want) {
			t.Fatalf("parseMask(%q) = %q, %v", tc.in, got, err)
		}
	}
}

func TestMaskInput(t *testing.T) {
	m := mustMatcher(t, "bad")
	var out bytes.Buffer
	if err := maskInput(&out, m, '#', textInput("t", "so bad\nb.a.d!\nfine")); err != nil {
		t.Fatalf("maskInput: %v", err)
	}
	if want := "so ###\n#####!\nfine\n"; out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}
}

func TestInputsOfFilesAndStdin(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	ins := inputsOf([]string{path, "-"}, strings.NewReader("from stdin"))
	if len(ins) != 2 || ins[0].name != path || ins[1].name != "(stdin)" {
		t.Fatalf("inputs = %+v", ins)
	}
	for i, want := range []string{"hello", "from stdin"} {
		rc, err := ins[i].open()
		if err != nil {
			t.Fatalf("open %d: %v", i, err)
		}
		b, _ := io.ReadAll(rc)
		_ = rc.Close()
		if string(b) != want {
			t.Fatalf("input %d = %q", i, b)
		}
	}

	if got := inputsOf(nil, strings.NewReader("")); len(got) != 1 || got[0].name != "(stdin)" {
		t.Fatalf("default input = %+v", got)
	}
}
