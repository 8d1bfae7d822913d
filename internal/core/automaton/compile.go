package automaton

import (
	"encoding/binary"
	"slices"
)

// state is one compiled state. next indexes the shared table arena; tables only hold
// targets of depth two or more and a miss means the scan restarts from the root table
type state struct {
	next int32
	out  []int32
}

// Automaton is the compiled, immutable matcher. Safe for concurrent reads
type Automaton struct {
	first    table
	states   []state
	tables   []table
	keywords []string
	lengths  []int32
	maxLen   int32

	// nodeState maps trie node ids to state ids, -1 for the root.
	// nodeTable maps trie node ids to their continuation table id
	nodeState []int32
	nodeTable []int32
}

// Stats describes the size of a compiled automaton
type Stats struct {
	Keywords    int  `json:"keywords"`
	States      int  `json:"states"`
	Tables      int  `json:"tables"`
	Shared      int  `json:"shared"`
	Transitions int  `json:"transitions"`
	RootLo      rune `json:"root_lo"`
	RootHi      rune `json:"root_hi"`
}

// Compile turns t into a complete deterministic automaton. Every state's table already
// contains the failure-derived continuation, so scans never consult failure links.
// States whose continuations are identical point at one shared table
func Compile(t *Trie) *Automaton {
	n := len(t.nodes)
	a := &Automaton{
		states:    make([]state, 0, n-1),
		keywords:  t.keywords,
		lengths:   t.lengths,
		nodeState: make([]int32, n),
		nodeTable: make([]int32, n),
	}
	for _, l := range t.lengths {
		a.maxLen = max(a.maxLen, l)
	}

	// state ids follow breadth-first order
	a.nodeState[root] = noState
	for i, id := range t.order[1:] {
		a.nodeState[id] = int32(i)
	}

	delta := closeTransitions(t)
	interned := make(map[string]int32, n)
	a.nodeTable[root] = a.intern(interned, delta[root])
	for _, id := range t.order[1:] {
		tid := a.intern(interned, delta[id])
		a.nodeTable[id] = tid
		a.states = append(a.states, state{next: tid, out: t.nodes[id].out})
	}

	firsts := make(map[rune]int32, len(t.nodes[root].children))
	for c, to := range t.nodes[root].children {
		firsts[c] = a.nodeState[to]
	}
	a.first = newTable(firsts, true)
	return a
}

// intern returns the id of a table equal to m translated to state ids, adding it when new
func (a *Automaton) intern(seen map[string]int32, m map[rune]int32) int32 {
	keys := sortedKeys(m)
	buf := make([]byte, 0, len(keys)*6)
	for _, c := range keys {
		buf = binary.AppendVarint(buf, int64(c))
		buf = binary.AppendVarint(buf, int64(a.nodeState[m[c]]))
	}
	if id, ok := seen[string(buf)]; ok {
		return id
	}
	tm := make(map[rune]int32, len(m))
	for c, to := range m {
		tm[c] = a.nodeState[to]
	}
	id := int32(len(a.tables))
	a.tables = append(a.tables, newTable(tm, false))
	seen[string(buf)] = id
	return id
}

// closeTransitions computes, per node, the complete transition function restricted to
// targets of depth >= 2: own children overlaid on the failure node's closed table
func closeTransitions(t *Trie) []map[rune]int32 {
	delta := make([]map[rune]int32, len(t.nodes))
	delta[root] = map[rune]int32{}
	for _, id := range t.order[1:] {
		n := &t.nodes[id]
		inh := delta[n.fail]
		if len(n.children) == 0 {
			delta[id] = inh
			continue
		}
		m := make(map[rune]int32, len(inh)+len(n.children))
		for c, to := range inh {
			m[c] = to
		}
		for c, to := range n.children {
			m[c] = to
		}
		delta[id] = m
	}
	return delta
}

// First returns the state reached from the root on c
func (a *Automaton) First(c rune) (int32, bool) { return a.first.get(c) }

// Step returns the state reached from s on c. A miss means restart from First
func (a *Automaton) Step(s int32, c rune) (int32, bool) {
	return a.tables[a.states[s].next].get(c)
}

// Outputs returns the keyword ids completed at s, nil when s is not terminal
func (a *Automaton) Outputs(s int32) []int32 { return a.states[s].out }

// Terminal reports whether s completes at least one keyword
func (a *Automaton) Terminal(s int32) bool { return len(a.states[s].out) > 0 }

// Keyword returns the canonical keyword for id
func (a *Automaton) Keyword(id int32) string { return a.keywords[id] }

// KeywordLen returns the rune length of keyword id
func (a *Automaton) KeywordLen(id int32) int { return int(a.lengths[id]) }

// States is the number of compiled states; state ids run from 0 to States()-1
func (a *Automaton) States() int { return len(a.states) }

// MaxKeywordLen is the rune length of the longest keyword
func (a *Automaton) MaxKeywordLen() int { return int(a.maxLen) }

// Keywords returns a copy of the canonical keyword list indexed by id
func (a *Automaton) Keywords() []string { return slices.Clone(a.keywords) }

// Empty reports whether the automaton can match nothing
func (a *Automaton) Empty() bool { return len(a.keywords) == 0 }

// Stats reports size counters
func (a *Automaton) Stats() Stats {
	st := Stats{
		Keywords: len(a.keywords),
		States:   len(a.states),
		Tables:   len(a.tables),
		Shared:   len(a.states) + 1 - len(a.tables),
	}
	for i := range a.tables {
		st.Transitions += a.tables[i].size()
	}
	st.RootLo, st.RootHi, _ = a.first.bounds()
	return st
}

// New builds and compiles keywords in one call
func New(keywords []string) *Automaton { return Compile(Build(keywords)) }
