package detector

// path is one active partial match. prev indexes the predecessor in the scan arena, -1 at a
// path's first rune; index is where the path last consumed a rune
type path struct {
	state int32
	index int32
	prev  int32
	class Class
}

type span struct {
	start int
	kw    int32
}

// scratch holds the per-state claim marks of a scan. One scratch serves one scan at a time
// and is recycled through the Matcher's pool. gen keeps growing across scans so the marks
// never need resetting until it wraps
type scratch struct {
	stamp []uint32
	owner []int32
	gen   uint32
}

func newScratch(states int) *scratch {
	return &scratch{stamp: make([]uint32, states), owner: make([]int32, states)}
}

func (sc *scratch) advance() uint32 {
	sc.gen++
	if sc.gen == 0 {
		clear(sc.stamp)
		sc.gen = 1
	}
	return sc.gen
}

// fuzzyScan is the per-call state of the fuzzy scanner. Never shared between calls
type fuzzyScan struct {
	m      *Matcher
	in     input
	arena  []path
	born   []int32 // paths spawned at the current index, in arrival order
	sc     *scratch
	gen    uint32
	maxLen int
	seen   map[span]struct{}
	yield  func(Match) bool
}

// fuzzy tracks every path that may still complete a keyword with up to m.jump filler runes
// between consecutive keyword runes. The main path mirrors the exact scanner and is the only
// one allowed to restart from the root table.
//
// At each index at most one path is spawned per state: a later arrival only takes over the
// predecessor chain when that chain starts nearer. With retained paths limited to the last
// jump+1 indexes, the live set never exceeds (jump+1) times the state count
func (m *Matcher) fuzzy(in input, yield func(Match) bool) {
	sc := m.pool.Get().(*scratch)
	defer m.pool.Put(sc)
	newFuzzyScan(m, in, sc, yield).run()
}

func newFuzzyScan(m *Matcher, in input, sc *scratch, yield func(Match) bool) *fuzzyScan {
	return &fuzzyScan{
		m:      m,
		in:     in,
		arena:  make([]path, 0, 2*len(in.text)),
		sc:     sc,
		maxLen: m.dfa.MaxKeywordLen(),
		seen:   make(map[span]struct{}),
		yield:  yield,
	}
}

func (s *fuzzyScan) run() {
	a := s.m.dfa
	in, sc := s.in, s.sc

	main := int32(-1)
	var live, next []int32
	for i, c := range in.text {
		cls := ClassOf(c)
		next = next[:0]
		s.born = s.born[:0]
		s.gen = sc.advance()

		if main >= 0 {
			mp := s.arena[main]
			if s.canJump(mp, cls, i) {
				next = append(next, main)
			}
			if st, ok := a.Step(mp.state, c); ok {
				main, _ = s.spawn(st, i, main, cls)
			} else if st, ok := a.First(c); ok {
				main, _ = s.spawn(st, i, -1, cls)
			} else {
				main = -1
			}
		} else if st, ok := a.First(c); ok {
			main, _ = s.spawn(st, i, -1, cls)
		}

		for _, p := range live {
			pp := s.arena[p]
			if s.canJump(pp, cls, i) {
				next = append(next, p)
			}
			if st, ok := a.Step(pp.state, c); ok {
				if id, fresh := s.spawn(st, i, p, cls); fresh {
					next = append(next, id)
				}
			}
		}
		if !s.emit(i) {
			return
		}
		live, next = next, live
	}
}

// canJump reports whether p survives the rune at i unconsumed
func (s *fuzzyScan) canJump(p path, cls Class, i int) bool {
	return int(p.index) >= i-s.m.jump && bridgeable(p.class, cls)
}

// spawn records a path entering st at i. When another path already entered st at i the two
// merge and the existing id is returned with fresh false
func (s *fuzzyScan) spawn(st int32, i int, prev int32, cls Class) (int32, bool) {
	if s.sc.stamp[st] == s.gen {
		id := s.sc.owner[st]
		if s.nearer(prev, s.arena[id].prev) {
			s.arena[id].prev = prev
		}
		return id, false
	}
	id := int32(len(s.arena))
	s.arena = append(s.arena, path{state: st, index: int32(i), prev: prev, class: cls})
	s.sc.stamp[st], s.sc.owner[st] = s.gen, id
	s.born = append(s.born, id)
	return id, true
}

// nearer reports whether the chain behind a consumed its runes later than the one behind b.
// Chains are compared one predecessor at a time, as deep as the longest keyword reaches
func (s *fuzzyScan) nearer(a, b int32) bool {
	for k := 1; k < s.maxLen && a != b; k++ {
		if a < 0 {
			return true
		}
		if b < 0 {
			return false
		}
		ia, ib := s.arena[a].index, s.arena[b].index
		if ia != ib {
			return ia > ib
		}
		a, b = s.arena[a].prev, s.arena[b].prev
	}
	return false
}

// emit reports the keywords completed by the paths spawned at i. It returns false when the
// caller asked to stop
func (s *fuzzyScan) emit(i int) bool {
	a := s.m.dfa
	clear(s.seen)
	for _, id := range s.born {
		st := s.arena[id].state
		if !a.Terminal(st) {
			continue
		}
		for _, kw := range a.Outputs(st) {
			start, ok := s.startOf(id, a.KeywordLen(kw))
			if !ok {
				continue
			}
			key := span{start: start, kw: kw}
			if _, dup := s.seen[key]; dup {
				continue
			}
			s.seen[key] = struct{}{}
			if !accept(s.in.text, start, i) {
				continue
			}
			if !s.yield(s.in.match(start, i, a.Keyword(kw))) {
				return false
			}
		}
	}
	return true
}

// startOf walks n-1 predecessors back from id and returns that path's index
func (s *fuzzyScan) startOf(id int32, n int) (int, bool) {
	p := id
	for k := 1; k < n; k++ {
		p = s.arena[p].prev
		if p < 0 {
			return 0, false
		}
	}
	return int(s.arena[p].index), true
}
