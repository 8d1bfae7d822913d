// Package detector finds banned keywords in text. It tolerates case, width, variant and
// look-alike evasions through package normalize, and bounded filler runes between keyword
// runes through a fuzzy path scanner. Accepted matches respect Latin word and number
// boundaries
package detector

import (
	"sync"
	"sync/atomic"

	"wordguard/internal/core/normalize"
)

// Options controls engine construction
type Options struct {
	// Normalizer folds keywords and text; nil means normalize.Default
	Normalizer *normalize.Normalizer
	// JumpLength is the filler tolerance used by the initial empty configuration
	JumpLength int
}

// Engine owns the published Matcher. Configure builds a replacement off to the side and
// swaps it in atomically; scans already running keep the Matcher they loaded
type Engine struct {
	norm *normalize.Normalizer
	mu   sync.Mutex // serializes Configure
	cur  atomic.Pointer[Matcher]
}

// New returns an engine with no keywords and the default jump length
func New() *Engine {
	return NewWithOptions(Options{JumpLength: DefaultJumpLength})
}

// NewWithOptions returns an engine with no keywords
func NewWithOptions(opts Options) *Engine {
	n := opts.Normalizer
	if n == nil {
		n = normalize.Default()
	}
	jump := opts.JumpLength
	if jump < 0 {
		jump = DefaultJumpLength
	}
	e := &Engine{norm: n}
	m, _ := Compile(nil, jump, n)
	e.cur.Store(m)
	return e
}

// Configure replaces the keyword set. On error the previous configuration stays published
func (e *Engine) Configure(keywords []string, jumpLength int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	m, err := Compile(keywords, jumpLength, e.norm)
	if err != nil {
		return err
	}
	e.cur.Store(m)
	return nil
}

// Matcher returns the currently published Matcher; use it to run several scans
// against one consistent keyword set
func (e *Engine) Matcher() *Matcher { return e.cur.Load() }

// ContainsAny reports whether text holds at least one accepted match
func (e *Engine) ContainsAny(text string) bool { return e.cur.Load().ContainsAny(text) }

// FindFirst returns the first accepted match in scan order
func (e *Engine) FindFirst(text string) (Match, bool) { return e.cur.Load().FindFirst(text) }

// FindAll returns every accepted match in discovery order
func (e *Engine) FindAll(text string) []Match { return e.cur.Load().FindAll(text) }

// Replace masks every accepted match with mask
func (e *Engine) Replace(text string, mask rune) string {
	return e.cur.Load().Replace(text, mask)
}

// Keywords returns the canonical keyword set
func (e *Engine) Keywords() []string { return e.cur.Load().Keywords() }

// JumpLength returns the configured filler tolerance
func (e *Engine) JumpLength() int { return e.cur.Load().JumpLength() }

// Stats reports the published automaton's size counters
func (e *Engine) Stats() Stats { return e.cur.Load().Stats() }
