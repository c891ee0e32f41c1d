// SPDX-FileCopyrightText: © 2026 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package skipsearch

import "testing"

func TestShiftTable(t *testing.T) {
	tests := []struct {
		pattern     string
		includeLast bool
		shifts      map[byte]int
	}{
		{"abcab", false, map[byte]int{'a': 1, 'b': 3, 'c': 2, 'x': 5}},
		{"abcab", true, map[byte]int{'a': 1, 'b': 0, 'c': 2, 'x': 5}},
		{"a", false, map[byte]int{'a': 1, 'b': 1}},
		{"a", true, map[byte]int{'a': 0, 'b': 1}},
		{"aaaa", false, map[byte]int{'a': 1, 0: 4, 255: 4}},
		{"abc", false, map[byte]int{'a': 2, 'b': 1, 'c': 3}},
		{"abc", true, map[byte]int{'a': 2, 'b': 1, 'c': 0}},
	}
	for _, tc := range tests {
		var tab shiftTable[byte]
		tab.build([]byte(tc.pattern), tc.includeLast)
		for c, want := range tc.shifts {
			if got := tab.shift(c); got != want {
				t.Fatalf("build(%q, %t): shift(%q) = %d; want %d",
					tc.pattern, tc.includeLast, c, got, want)
			}
			in := want < len(tc.pattern)
			if got := tab.contains(c); got != in {
				t.Fatalf("build(%q, %t): contains(%q) = %t; want %t",
					tc.pattern, tc.includeLast, c, got, in)
			}
		}
	}
}

func TestShiftTableSparse(t *testing.T) {
	var tab shiftTable[rune]
	pattern := []rune("aじbじc")
	tab.build(pattern, false)
	tests := []struct {
		c    rune
		want int
	}{
		{'a', 4},
		{'じ', 1},
		{'b', 2},
		{'c', 5},
		{'ぶ', 5},
		{-1, 5},
	}
	for _, tc := range tests {
		if got := tab.shift(tc.c); got != tc.want {
			t.Fatalf("shift(%q) = %d; want %d", tc.c, got, tc.want)
		}
	}
	if len(tab.sparse) != 1 {
		t.Fatalf("len(tab.sparse) = %d; want 1", len(tab.sparse))
	}
}

func TestShiftTableRebuild(t *testing.T) {
	var tab shiftTable[rune]
	tab.build([]rune("じぶんx"), false)
	if got := tab.shift('じ'); got != 3 {
		t.Fatalf("shift('じ') = %d; want 3", got)
	}
	tab.build([]rune("ab"), false)
	for _, c := range []rune("じぶんx") {
		if got := tab.shift(c); got != 2 {
			t.Fatalf("after rebuild shift(%q) = %d; want 2", c, got)
		}
		if tab.contains(c) {
			t.Fatalf("after rebuild contains(%q) = true", c)
		}
	}
	if got := tab.shift('a'); got != 1 {
		t.Fatalf("shift('a') = %d; want 1", got)
	}
}
