// SPDX-FileCopyrightText: © 2026 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package skipsearch

import (
	"golang.org/x/exp/slices"
)

// core holds the state shared by all searchers: the pattern, its shift table
// and the search cursor. The concrete searchers embed it and provide the
// Search method.
type core[S Symbol] struct {
	pattern []S
	table   shiftTable[S]

	// next is the offset where the next scan starts. Its interpretation
	// depends on the algorithm.
	next  int
	state State
	// count is never reset.
	count int64

	observer Observer
}

// prepare copies the pattern and rebuilds the shift table. The core is not
// modified if the pattern is empty.
func (c *core[S]) prepare(pattern []S, includeLast bool) error {
	if len(pattern) == 0 {
		return ErrEmptyPattern
	}
	c.pattern = slices.Clone(pattern)
	c.table.build(c.pattern, includeLast)
	c.Rewind()
	return nil
}

// Rewind resets the search cursor. Pattern and shift table are not changed.
func (c *core[S]) Rewind() {
	c.next = 0
	c.state = Fresh
}

// Count returns the number of window comparisons since the searcher has
// been created.
func (c *core[S]) Count() int64 { return c.count }

// State returns the state of the search cursor.
func (c *core[S]) State() State { return c.state }

// Pattern returns a copy of the pattern.
func (c *core[S]) Pattern() []S { return slices.Clone(c.pattern) }

// SetObserver sets the observer notified after every scan. A nil value
// disables notifications.
func (c *core[S]) SetObserver(o Observer) { c.observer = o }

// begin checks the preconditions of Search. It returns false if the cursor
// is exhausted and no scan must be done.
func (c *core[S]) begin(buf []S) bool {
	if len(buf) == 0 {
		panic("skipsearch: empty buffer")
	}
	if len(c.pattern) == 0 {
		panic("skipsearch: no pattern prepared")
	}
	return c.state != Exhausted
}

// found records a match at offset pos and sets the cursor to next. The
// argument start is the comparison count at the start of the scan.
func (c *core[S]) found(a Algorithm, pos, next int, start int64) int {
	c.next = next
	c.state = Scanning
	if c.observer != nil {
		c.observer.Scan(a, c.count-start, true)
	}
	return pos
}

// exhaust marks the cursor as spent and returns NotFound.
func (c *core[S]) exhaust(a Algorithm, start int64) int {
	c.next = NotFound
	c.state = Exhausted
	if c.observer != nil {
		c.observer.Scan(a, c.count-start, false)
	}
	return NotFound
}
