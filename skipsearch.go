// SPDX-FileCopyrightText: © 2026 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package skipsearch provides single-pattern substring searchers based on
// skip tables. Three algorithms are supported: a Boyer-Moore variant using
// only the bad-character rule, Boyer-Moore-Horspool and Sunday's Quick
// Search.
//
// A [Searcher] is prepared with a pattern and then called repeatedly with the
// same buffer. Every call of Search returns the next match offset, so all
// occurrences of the pattern, including overlapping ones, can be enumerated
// without rescanning consumed input:
//
//	s, err := skipsearch.NewHorspool([]byte("abc"))
//	...
//	for p := s.Search(buf); p != skipsearch.NotFound; p = s.Search(buf) {
//		...
//	}
//
// The searchers work on sequences of fixed-width symbols. Bytes, UTF-16 code
// units or runes are all supported. The package doesn't care about text
// encodings; the caller must ensure that pattern and buffer use the same one.
//
// A searcher is not safe for concurrent use. Independent searchers share no
// state and may be used in parallel.
package skipsearch

import (
	"errors"
	"math"

	"golang.org/x/exp/constraints"
)

// Symbol is the constraint for the element type of patterns and buffers.
type Symbol interface {
	constraints.Integer
}

// NotFound is returned by Search if no further match exists. It is the
// maximum value of int, so buffers must be shorter than NotFound symbols.
const NotFound = math.MaxInt

// ErrEmptyPattern is returned if a searcher is prepared with an empty or nil
// pattern.
var ErrEmptyPattern = errors.New("skipsearch: empty pattern")

// State describes the state of the search cursor.
type State int

// States of the search cursor.
const (
	// Fresh is the state after Prepare or Rewind.
	Fresh State = iota
	// Scanning is the state after Search returned a match.
	Scanning
	// Exhausted is the state after Search returned NotFound. Further
	// calls of Search return NotFound until Rewind or Prepare is called.
	Exhausted
)

func (s State) String() string {
	switch s {
	case Fresh:
		return "Fresh"
	case Scanning:
		return "Scanning"
	case Exhausted:
		return "Exhausted"
	default:
		return "State(?)"
	}
}

// Searcher finds all occurrences of a pattern in a buffer.
type Searcher[S Symbol] interface {
	// Prepare sets a new pattern and resets the search cursor. The
	// pattern is copied. ErrEmptyPattern is returned for an empty
	// pattern and the searcher is not modified in that case.
	Prepare(pattern []S) error

	// Rewind resets the search cursor to the start of the buffer. The
	// pattern is not changed.
	Rewind()

	// Search returns the offset of the next match in buf or NotFound.
	// After a match at offset p the next call continues at p+1, so
	// overlapping matches are found too. Search panics if buf is empty or
	// no pattern has been prepared.
	//
	// The cursor is an absolute offset into buf; consecutive calls should
	// use the same buffer.
	Search(buf []S) int

	// Count returns the number of window comparisons since the searcher
	// has been created. The value is provided for performance
	// measurements.
	Count() int64

	// State returns the state of the search cursor.
	State() State

	// Pattern returns a copy of the current pattern.
	Pattern() []S

	// Algorithm returns the search algorithm implemented.
	Algorithm() Algorithm

	String() string
}

// Observer receives a notification at the end of every Search call that
// actually scanned the buffer. The comparisons argument gives the number of
// window comparisons of that call only.
type Observer interface {
	Scan(a Algorithm, comparisons int64, match bool)
}
