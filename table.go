// SPDX-FileCopyrightText: © 2026 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package skipsearch

// denseSize is the number of symbols stored in the array part of the shift
// table. It covers all byte values.
const denseSize = 256

// shiftTable maps symbols to skip distances. Symbols in the range [0,256)
// are looked up in an array, all others in a map. Symbols not in the table
// get the default distance n, the pattern length.
type shiftTable[S Symbol] struct {
	n      int
	dense  [denseSize]int
	sparse map[S]int
}

// build computes the table for the pattern. For each position i in [0,n-1),
// or [0,n) if includeLast is set, the distance n-i-1 is stored for
// pattern[i]. Later occurrences overwrite earlier ones, so the table holds the
// distance of the rightmost occurrence.
//
// The table is always rebuilt completely.
func (t *shiftTable[S]) build(pattern []S, includeLast bool) {
	n := len(pattern)
	t.n = n
	for i := range t.dense {
		t.dense[i] = n
	}
	t.sparse = nil

	m := n - 1
	if includeLast {
		m = n
	}
	for i, c := range pattern[:m] {
		t.set(c, n-i-1)
	}
}

func (t *shiftTable[S]) set(c S, d int) {
	if u := uint64(c); u < denseSize {
		t.dense[u] = d
		return
	}
	if t.sparse == nil {
		t.sparse = make(map[S]int)
	}
	t.sparse[c] = d
}

// shift returns the distance for symbol c.
func (t *shiftTable[S]) shift(c S) int {
	if u := uint64(c); u < denseSize {
		return t.dense[u]
	}
	if d, ok := t.sparse[c]; ok {
		return d
	}
	return t.n
}

// contains reports whether the table has an explicit entry for c.
func (t *shiftTable[S]) contains(c S) bool {
	if u := uint64(c); u < denseSize {
		// A stored distance is always less than n.
		return t.dense[u] < t.n
	}
	_, ok := t.sparse[c]
	return ok
}
