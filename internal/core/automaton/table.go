package automaton

import "slices"

// denseSlack bounds how sparse a dense table may get before switching to sorted pairs
const (
	denseSlack    = 4
	denseMinSpan  = 32
	noState       = int32(-1)
	maxDenseRoot  = 1 << 17
)

// table maps runes to state ids. Dense tables cover [lo, lo+len(dense)) and use -1 for holes;
// sparse tables keep sorted keys with parallel values
type table struct {
	lo    rune
	dense []int32
	keys  []rune
	vals  []int32
}

func newTable(m map[rune]int32, forceDense bool) table {
	if len(m) == 0 {
		return table{}
	}
	keys := sortedKeys(m)
	lo, hi := keys[0], keys[len(keys)-1]
	span := int(hi-lo) + 1

	if forceDense && span <= maxDenseRoot || span <= denseMinSpan || span <= denseSlack*len(keys) {
		d := make([]int32, span)
		for i := range d {
			d[i] = noState
		}
		for _, k := range keys {
			d[k-lo] = m[k]
		}
		return table{lo: lo, dense: d}
	}

	vals := make([]int32, len(keys))
	for i, k := range keys {
		vals[i] = m[k]
	}
	return table{keys: keys, vals: vals}
}

func (t *table) get(c rune) (int32, bool) {
	if t.dense != nil {
		i := c - t.lo
		if i < 0 || int(i) >= len(t.dense) {
			return noState, false
		}
		s := t.dense[i]
		return s, s != noState
	}
	if len(t.keys) == 0 || c < t.keys[0] || c > t.keys[len(t.keys)-1] {
		return noState, false
	}
	i, ok := slices.BinarySearch(t.keys, c)
	if !ok {
		return noState, false
	}
	return t.vals[i], true
}

// size reports the number of live transitions
func (t *table) size() int {
	if t.dense == nil {
		return len(t.keys)
	}
	n := 0
	for _, s := range t.dense {
		if s != noState {
			n++
		}
	}
	return n
}

// bounds reports the covered rune range, ok is false for an empty table
func (t *table) bounds() (lo, hi rune, ok bool) {
	switch {
	case t.dense != nil:
		return t.lo, t.lo + rune(len(t.dense)) - 1, true
	case len(t.keys) > 0:
		return t.keys[0], t.keys[len(t.keys)-1], true
	}
	return 0, 0, false
}
