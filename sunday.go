// SPDX-FileCopyrightText: © 2026 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package skipsearch

import (
	"golang.org/x/exp/slices"
)

// SundaySearcher implements Sunday's Quick Search algorithm. The shift is
// computed from the symbol following the window, which usually allows larger
// skips than Horspool for short patterns and large alphabets.
//
// The zero value has no pattern; call Prepare before Search.
type SundaySearcher[S Symbol] struct {
	core[S]
}

// NewSunday creates a Quick Search searcher for the pattern.
func NewSunday[S Symbol](pattern []S) (*SundaySearcher[S], error) {
	s := new(SundaySearcher[S])
	if err := s.Prepare(pattern); err != nil {
		return nil, err
	}
	return s, nil
}

// Prepare sets the pattern and resets the search cursor. All pattern
// symbols including the last are entered into the shift table.
func (s *SundaySearcher[S]) Prepare(pattern []S) error {
	return s.prepare(pattern, true)
}

// Algorithm returns Sunday.
func (s *SundaySearcher[S]) Algorithm() Algorithm { return Sunday }

func (s *SundaySearcher[S]) String() string { return Sunday.String() }

// Search returns the offset of the next match or NotFound.
func (s *SundaySearcher[S]) Search(buf []S) int {
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
			return s.found(Sunday, i, i+1, start)
		}
		// No symbol follows the window, so no further window fits.
		if i+n == len(buf) {
			break
		}
		i += s.table.shift(buf[i+n]) + 1
	}
	return s.exhaust(Sunday, start)
}
