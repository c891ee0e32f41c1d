// SPDX-FileCopyrightText: © 2026 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package skipsearch

// BoyerMooreSearcher implements the Boyer-Moore algorithm restricted to the
// bad-character rule. The good suffix rule is not implemented.
//
// The window is compared right to left. On a mismatch the window is moved
// so that the mismatching buffer symbol is aligned with its rightmost
// occurrence in the pattern, but at least by one position.
//
// The zero value has no pattern; call Prepare before Search.
type BoyerMooreSearcher[S Symbol] struct {
	core[S]
}

// NewBoyerMoore creates a bad-character Boyer-Moore searcher for the pattern.
func NewBoyerMoore[S Symbol](pattern []S) (*BoyerMooreSearcher[S], error) {
	s := new(BoyerMooreSearcher[S])
	if err := s.Prepare(pattern); err != nil {
		return nil, err
	}
	return s, nil
}

// Prepare sets the pattern and resets the search cursor. The last pattern
// symbol is not included in the shift table.
func (s *BoyerMooreSearcher[S]) Prepare(pattern []S) error {
	return s.prepare(pattern, false)
}

// Algorithm returns BoyerMoore.
func (s *BoyerMooreSearcher[S]) Algorithm() Algorithm { return BoyerMoore }

func (s *BoyerMooreSearcher[S]) String() string { return BoyerMoore.String() }

// Search returns the offset of the next match or NotFound.
func (s *BoyerMooreSearcher[S]) Search(buf []S) int {
	if !s.begin(buf) {
		return NotFound
	}
	start := s.count
	p := s.pattern
	n := len(p)

	// i is the offset of the last symbol of the window; next stores the
	// window end following the last match.
	for i := max(s.next, n-1); i < len(buf); i++ {
		s.count++
		j := 0
		for ; j < n; j++ {
			c := buf[i-j]
			if c == p[n-1-j] {
				continue
			}
			// The loop increment adds the missing 1.
			if k := s.table.shift(c); j < k {
				i += k - j - 1
			}
			break
		}
		if j < n {
			continue
		}
		return s.found(BoyerMoore, i-(n-1), i+1, start)
	}
	return s.exhaust(BoyerMoore, start)
}
