// SPDX-FileCopyrightText: © 2026 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package skipsearch

import "iter"

// All rewinds the searcher and returns an iterator over the offsets of all
// matches in buf in increasing order. An empty buffer has no matches.
func All[S Symbol](s Searcher[S], buf []S) iter.Seq[int] {
	return func(yield func(int) bool) {
		if len(buf) == 0 {
			return
		}
		s.Rewind()
		for {
			p := s.Search(buf)
			if p == NotFound || !yield(p) {
				return
			}
		}
	}
}

// FindAll returns the offsets of all matches in buf. The searcher is rewound
// before the search.
func FindAll[S Symbol](s Searcher[S], buf []S) []int {
	var offsets []int
	for p := range All(s, buf) {
		offsets = append(offsets, p)
	}
	return offsets
}

// Index returns the offset of the first occurrence of pattern in buf using
// the given algorithm or -1 if the pattern is not present. Like bytes.Index
// it doesn't return NotFound. An error is returned for an empty pattern or an
// unsupported algorithm.
func Index[S Symbol](a Algorithm, buf, pattern []S) (int, error) {
	s, err := New(Config{Algorithm: a}, pattern)
	if err != nil {
		return -1, err
	}
	if len(buf) == 0 {
		return -1, nil
	}
	p := s.Search(buf)
	if p == NotFound {
		return -1, nil
	}
	return p, nil
}
