package detector

import (
	"strings"
	"testing"
)

// runFuzzy scans text with a fresh scratch and returns the finished scan and its match count
func runFuzzy(t *testing.T, m *Matcher, text string) (*fuzzyScan, int) {
	t.Helper()
	n := 0
	s := newFuzzyScan(m, m.prepare(text), newScratch(m.dfa.States()), func(Match) bool {
		n++
		return true
	})
	s.run()
	return s, n
}

func TestFuzzy_RepeatedFillersStayLinear(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
		jump     int
		unit     string
		letters  int // keyword runes per unit
	}{
		{name: "self loop", keywords: []string{"aa"}, jump: 1, unit: "a.", letters: 1},
		{name: "nested keywords", keywords: []string{"aa", "aaa", "aaaa"}, jump: 2, unit: "a..", letters: 1},
		{name: "digit fillers", keywords: []string{"abab"}, jump: 1, unit: "a1b2", letters: 2},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m, err := Compile(tc.keywords, tc.jump, nil)
			if err != nil {
				t.Fatalf("Compile: %v", err)
			}
			text := strings.Repeat(tc.unit, 65536/len(tc.unit))
			s, n := runFuzzy(t, m, text)

			// one path per state at most for each keyword rune consumed
			letters := tc.letters * (65536 / len(tc.unit))
			if limit := m.dfa.States() * letters; len(s.arena) > limit {
				t.Fatalf("arena = %d paths, want at most %d", len(s.arena), limit)
			}
			if n == 0 {
				t.Fatalf("expected matches in %q...", text[:16])
			}
		})
	}
}

func TestFuzzy_MergedPathsKeepEveryEnd(t *testing.T) {
	m, err := Compile([]string{"aa"}, 1, nil)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	s, n := runFuzzy(t, m, strings.Repeat("a.", 32768))
	// every a after the first closes one a.a
	if n != 32767 {
		t.Fatalf("matches = %d, want 32767", n)
	}
	if len(s.arena) > 65536 {
		t.Fatalf("arena = %d paths", len(s.arena))
	}

	got := m.FindAll("a.a.a")
	if len(got) != 2 || got[0].Start != 0 || got[0].End != 2 || got[1].Start != 2 || got[1].End != 4 {
		t.Fatalf("FindAll(a.a.a) = %+v", got)
	}
}

func TestScratch_GenerationWrap(t *testing.T) {
	sc := newScratch(2)
	sc.stamp[0], sc.stamp[1] = 7, ^uint32(0)
	sc.gen = ^uint32(0)
	if g := sc.advance(); g != 1 {
		t.Fatalf("gen after wrap = %d", g)
	}
	if sc.stamp[0] != 0 || sc.stamp[1] != 0 {
		t.Fatalf("stamps not cleared on wrap: %v", sc.stamp)
	}
}
