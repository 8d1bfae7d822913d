package detector

// exact follows a single live state over in.text. On a miss it restarts from the root
// table instead of rescanning. yield returning false stops the scan
func (m *Matcher) exact(in input, yield func(Match) bool) {
	a := m.dfa
	cur, live := int32(-1), false
	for i, c := range in.text {
		var nxt int32
		ok := false
		if live {
			nxt, ok = a.Step(cur, c)
		}
		if !ok {
			nxt, ok = a.First(c)
		}
		cur, live = nxt, ok
		if !live || !a.Terminal(cur) {
			continue
		}
		for _, kw := range a.Outputs(cur) {
			start := i - a.KeywordLen(kw) + 1
			if !accept(in.text, start, i) {
				continue
			}
			if !yield(in.match(start, i, a.Keyword(kw))) {
				return
			}
		}
	}
}
