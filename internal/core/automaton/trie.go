// Package automaton builds an Aho-Corasick trie over canonical keywords and compiles it
// into a failure-link-free transition table whose identical continuations share storage.
// Keywords are expected to be canonical already; see package normalize
package automaton

import "slices"

// root is the id of the trie root node
const root int32 = 0

type trieNode struct {
	char     rune
	parent   int32
	fail     int32
	depth    int32
	children map[rune]int32
	out      []int32 // keyword ids completed here, own first then inherited through fail
}

// Trie is the build-time keyword trie with failure links resolved.
// Node 0 is the root
type Trie struct {
	nodes    []trieNode
	order    []int32 // breadth-first node order, root first
	keywords []string
	lengths  []int32
}

// Build inserts every keyword and resolves failure links breadth-first.
// Empty keywords are dropped and duplicates collapse to the first occurrence
func Build(keywords []string) *Trie {
	t := &Trie{
		nodes: make([]trieNode, 1, 1+len(keywords)*4),
	}
	t.nodes[root] = trieNode{parent: -1, fail: root}

	seen := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if _, dup := seen[kw]; dup {
			continue
		}
		seen[kw] = struct{}{}
		t.insert(kw)
	}
	t.link()
	return t
}

func (t *Trie) insert(kw string) {
	id := int32(len(t.keywords))
	cur := root
	var n int32
	for _, c := range kw {
		nxt, ok := t.nodes[cur].children[c]
		if !ok {
			nxt = int32(len(t.nodes))
			t.nodes = append(t.nodes, trieNode{
				char:   c,
				parent: cur,
				depth:  t.nodes[cur].depth + 1,
			})
			if t.nodes[cur].children == nil {
				t.nodes[cur].children = make(map[rune]int32, 2)
			}
			t.nodes[cur].children[c] = nxt
		}
		cur = nxt
		n++
	}
	t.keywords = append(t.keywords, kw)
	t.lengths = append(t.lengths, n)
	t.nodes[cur].out = append(t.nodes[cur].out, id)
}

// link assigns failure links in breadth-first order and closes outputs over them
func (t *Trie) link() {
	t.order = make([]int32, 0, len(t.nodes))
	t.order = append(t.order, root)

	// depth 1 nodes fail to the root
	for _, c := range sortedKeys(t.nodes[root].children) {
		child := t.nodes[root].children[c]
		t.nodes[child].fail = root
		t.order = append(t.order, child)
	}

	for qi := 1; qi < len(t.order); qi++ {
		p := t.order[qi]
		for _, c := range sortedKeys(t.nodes[p].children) {
			n := t.nodes[p].children[c]
			t.order = append(t.order, n)

			// climb the parent's failure chain until something moves on c
			f := t.nodes[p].fail
			for {
				if nxt, ok := t.nodes[f].children[c]; ok {
					t.nodes[n].fail = nxt
					break
				}
				if f == root {
					t.nodes[n].fail = root
					break
				}
				f = t.nodes[f].fail
			}

			if inh := t.nodes[t.nodes[n].fail].out; len(inh) > 0 {
				t.nodes[n].out = append(t.nodes[n].out, inh...)
			}
		}
	}
}

// Len reports the number of trie nodes excluding the root
func (t *Trie) Len() int { return len(t.nodes) - 1 }

// Keywords returns the deduplicated keywords in insertion order
func (t *Trie) Keywords() []string { return slices.Clone(t.keywords) }

// walk is the unrestricted Aho-Corasick traversal that follows failure links at scan time.
// It reports every (end, keyword) pair and serves as the reference for the compiled form
func (t *Trie) walk(text []rune, fn func(end int, kw int32)) {
	cur := root
	for i, c := range text {
		for {
			if nxt, ok := t.nodes[cur].children[c]; ok {
				cur = nxt
				break
			}
			if cur == root {
				break
			}
			cur = t.nodes[cur].fail
		}
		for _, kw := range t.nodes[cur].out {
			fn(i, kw)
		}
	}
}

func sortedKeys(m map[rune]int32) []rune {
	if len(m) == 0 {
		return nil
	}
	ks := make([]rune, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	slices.Sort(ks)
	return ks
}
