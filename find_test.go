// SPDX-FileCopyrightText: © 2026 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package skipsearch

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFindAll(t *testing.T) {
	buf := []byte("xabcxxabcabc")
	for _, s := range newSearchers(t, []byte("abc")) {
		// FindAll must rewind an exhausted searcher.
		collect(s, buf)
		got := FindAll(s, buf)
		if diff := cmp.Diff([]int{1, 6, 9}, got); diff != "" {
			t.Fatalf("%s: FindAll mismatch (-want +got):\n%s", s, diff)
		}
		if got := FindAll(s, nil); got != nil {
			t.Fatalf("%s: FindAll(s, nil) = %v; want nil", s, got)
		}
	}
}

func TestAllBreak(t *testing.T) {
	buf := []byte("aaaaaa")
	for _, s := range newSearchers(t, []byte("a")) {
		var got []int
		for p := range All(s, buf) {
			got = append(got, p)
			if len(got) == 2 {
				break
			}
		}
		if diff := cmp.Diff([]int{0, 1}, got); diff != "" {
			t.Fatalf("%s: All mismatch (-want +got):\n%s", s, diff)
		}
		// The cursor stays behind the last match.
		if p := s.Search(buf); p != 2 {
			t.Fatalf("%s: Search after break = %d; want 2", s, p)
		}
	}
}

func TestIndex(t *testing.T) {
	tests := []struct {
		buf, pattern string
		want         int
	}{
		{"hello world", "world", 6},
		{"hello world", "o", 4},
		{"hello world", "xyz", -1},
		{"", "xyz", -1},
		{"ab", "abc", -1},
	}
	for _, tc := range tests {
		for _, a := range Algorithms() {
			got, err := Index(a, []byte(tc.buf), []byte(tc.pattern))
			if err != nil {
				t.Fatalf("Index(%v, %q, %q) error %s",
					a, tc.buf, tc.pattern, err)
			}
			if got != tc.want {
				t.Fatalf("Index(%v, %q, %q) = %d; want %d",
					a, tc.buf, tc.pattern, got, tc.want)
			}
		}
	}
	if _, err := Index(Sunday, []byte("abc"), nil); !errors.Is(err,
		ErrEmptyPattern) {
		t.Fatalf("Index with empty pattern returned %v; want %v",
			err, ErrEmptyPattern)
	}
}

func TestIndexRandom(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	buf := make([]byte, 4096)
	for i := range buf {
		buf[i] = 'a' + byte(r.Intn(4))
	}
	for i := 0; i < 200; i++ {
		n := 1 + r.Intn(8)
		k := r.Intn(len(buf) - n)
		pattern := buf[k : k+n]
		want := bytes.Index(buf, pattern)
		for _, a := range Algorithms() {
			got, err := Index(a, buf, pattern)
			if err != nil {
				t.Fatalf("Index error %s", err)
			}
			if got != want {
				t.Fatalf("Index(%v, buf, %q) = %d; want %d",
					a, pattern, got, want)
			}
		}
	}
}
