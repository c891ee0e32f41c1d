// SPDX-FileCopyrightText: © 2026 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package skipsearch

import (
	"golang.org/x/exp/slices"
)

// HorspoolSearcher implements the Boyer-Moore-Horspool algorithm. The
// window is compared directly with the pattern and the shift is always
// computed from the last symbol of the window, independent of the position of
// the mismatch.
//
// The zero value has no pattern; call Prepare before Search.
type HorspoolSearcher[S Symbol] struct {
	core[S]
}

// NewHorspool creates a Horspool searcher for the pattern.
func NewHorspool[S Symbol](pattern []S) (*HorspoolSearcher[S], error) {
	s := new(HorspoolSearcher[S])
	if err := s.Prepare(pattern); err != nil {
		return nil, err
	}
	return s, nil
}

// Prepare sets the pattern and resets the search cursor. The shift table is
// the same as for BoyerMooreSearcher.
func (s *HorspoolSearcher[S]) Prepare(pattern []S) error {
	return s.prepare(pattern, false)
}

// Algorithm returns Horspool.
func (s *HorspoolSearcher[S]) Algorithm() Algorithm { return Horspool }

func (s *HorspoolSearcher[S]) String() string { return Horspool.String() }

// Search returns the offset of the next match or NotFound.
func (s *HorspoolSearcher[S]) Search(buf []S) int {
	if !s.begin(buf) {
		return NotFound
	}
	start := s.count
	p := s.pattern
	n := len(p)

	i := s.next
	for i+n <= len(buf) {
		s.count++
		if slices.Equal(buf[i:i+n], p) {
			return s.found(Horspool, i, i+1, start)
		}
		// The shift is at least 1 because the last pattern symbol
		// is not in the table.
		i += s.table.shift(buf[i+n-1])
	}
	return s.exhaust(Horspool, start)
}
