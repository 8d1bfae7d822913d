package detector

import (
	"sync"

	"wordguard/internal/core/automaton"
	"wordguard/internal/core/normalize"
	perr "wordguard/internal/platform/errors"
)

// DefaultJumpLength is the filler tolerance used when none is configured
const DefaultJumpLength = 1

// DefaultMask replaces matched runes in Replace when the caller passes 0
const DefaultMask = '*'

// Matcher is one compiled keyword set. Immutable after Compile and safe for concurrent scans
type Matcher struct {
	dfa  *automaton.Automaton
	norm *normalize.Normalizer
	jump int
	pool sync.Pool // *scratch for the fuzzy scanner
}

// Stats describes a compiled Matcher
type Stats struct {
	automaton.Stats
	JumpLength int `json:"jump_length"`
}

// Compile normalizes and deduplicates keywords, drops empty ones and builds the automaton.
// A nil normalizer uses normalize.Default
func Compile(keywords []string, jumpLength int, n *normalize.Normalizer) (*Matcher, error) {
	if jumpLength < 0 {
		return nil, perr.WithField(
			perr.InvalidArgf("jump length must be non-negative, got %d", jumpLength),
			"jump_length",
		)
	}
	if n == nil {
		n = normalize.Default()
	}

	canon := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if c := n.String(kw); c != "" {
			canon = append(canon, c)
		}
	}
	m := &Matcher{
		dfa:  automaton.New(canon),
		norm: n,
		jump: jumpLength,
	}
	states := m.dfa.States()
	m.pool.New = func() any { return newScratch(states) }
	return m, nil
}

func (m *Matcher) prepare(text string) input {
	src := []rune(text)
	return input{src: src, text: m.norm.Runes(nil, src)}
}

// scan runs the fuzzy scanner, or only the exact scanner when no filler is tolerated
func (m *Matcher) scan(in input, yield func(Match) bool) {
	if m.jump == 0 {
		m.exact(in, yield)
		return
	}
	m.fuzzy(in, yield)
}

// ContainsAny reports whether text holds at least one accepted match
func (m *Matcher) ContainsAny(text string) bool {
	if text == "" || m.dfa.Empty() {
		return false
	}
	in := m.prepare(text)
	found := false
	stop := func(Match) bool {
		found = true
		return false
	}
	m.exact(in, stop)
	if found || m.jump == 0 {
		return found
	}
	m.fuzzy(in, stop)
	return found
}

// FindFirst returns the first accepted match in scan order
func (m *Matcher) FindFirst(text string) (Match, bool) {
	if text == "" || m.dfa.Empty() {
		return Match{}, false
	}
	var (
		first Match
		found bool
	)
	m.scan(m.prepare(text), func(x Match) bool {
		first, found = x, true
		return false
	})
	return first, found
}

// FindAll returns every accepted match in discovery order
func (m *Matcher) FindAll(text string) []Match {
	if text == "" || m.dfa.Empty() {
		return nil
	}
	var out []Match
	m.scan(m.prepare(text), func(x Match) bool {
		out = append(out, x)
		return true
	})
	return out
}

// Replace masks every rune covered by an accepted match. The result has as many runes as text.
// A zero mask uses DefaultMask
func (m *Matcher) Replace(text string, mask rune) string {
	return Mask(text, m.FindAll(text), mask)
}

// Mask replaces every rune covered by ms with mask, for callers that already hold the
// matches of text. Spans outside text are clipped. A zero mask uses DefaultMask
func Mask(text string, ms []Match, mask rune) string {
	if len(ms) == 0 {
		return text
	}
	if mask == 0 {
		mask = DefaultMask
	}
	out := []rune(text)
	for _, x := range ms {
		for j := max(x.Start, 0); j <= x.End && j < len(out); j++ {
			out[j] = mask
		}
	}
	return string(out)
}

// Keywords returns the canonical keyword set
func (m *Matcher) Keywords() []string { return m.dfa.Keywords() }

// JumpLength returns the configured filler tolerance
func (m *Matcher) JumpLength() int { return m.jump }

// Stats reports automaton size counters
func (m *Matcher) Stats() Stats {
	return Stats{Stats: m.dfa.Stats(), JumpLength: m.jump}
}
