// SPDX-FileCopyrightText: © 2026 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"unicode/utf16"

	"golang.org/x/sync/errgroup"

	"github.com/ulikunitz/skipsearch"
)

// job describes the search of one pattern with one algorithm.
type job struct {
	alg     skipsearch.Algorithm
	pattern string
}

// match is a single match found by a job. The count is the comparison
// count of the searcher after the match has been found.
type match struct {
	offset int
	before string
	text   string
	after  string
	count  int64
}

type result struct {
	job
	matches []match
	count   int64
}

// document holds the input in both supported symbol representations.
type document struct {
	bytes []byte
	units []uint16
}

func newDocument(data []byte, useUTF16 bool) *document {
	d := &document{bytes: data}
	if useUTF16 {
		d.units = utf16.Encode([]rune(string(data)))
	}
	return d
}

// enumerate collects all matches of the pattern in buf. The function
// describe converts a match into its textual representation.
func enumerate[S skipsearch.Symbol](cfg skipsearch.Config, pattern, buf []S,
	describe func(p int) match) (matches []match, count int64, err error) {

	s, err := skipsearch.New(cfg, pattern)
	if err != nil {
		return nil, 0, err
	}
	if len(buf) == 0 {
		return nil, 0, nil
	}
	for p := s.Search(buf); p != skipsearch.NotFound; p = s.Search(buf) {
		m := describe(p)
		m.count = s.Count()
		matches = append(matches, m)
	}
	return matches, s.Count(), nil
}

// window returns the symbols around the match at offset p with length n.
func window[S any](buf []S, p, n, width int) (before, text, after []S) {
	a := max(p-width, 0)
	b := min(p+n+width, len(buf))
	return buf[a:p], buf[p : p+n], buf[p+n : b]
}

func (d *document) search(j job, obs skipsearch.Observer, width int) (result,
	error) {

	cfg := skipsearch.Config{Algorithm: j.alg, Observer: obs}
	r := result{job: j}
	var err error
	if d.units != nil {
		pattern := utf16.Encode([]rune(j.pattern))
		r.matches, r.count, err = enumerate(cfg, pattern, d.units,
			func(p int) match {
				b, t, a := window(d.units, p, len(pattern), width)
				return match{
					offset: p,
					before: string(utf16.Decode(b)),
					text:   string(utf16.Decode(t)),
					after:  string(utf16.Decode(a)),
				}
			})
	} else {
		pattern := []byte(j.pattern)
		r.matches, r.count, err = enumerate(cfg, pattern, d.bytes,
			func(p int) match {
				b, t, a := window(d.bytes, p, len(pattern), width)
				return match{
					offset: p,
					before: string(b),
					text:   string(t),
					after:  string(a),
				}
			})
	}
	if err != nil {
		return r, fmt.Errorf("pattern %q: %w", j.pattern, err)
	}
	return r, nil
}

// searchAll runs all jobs in parallel. Every job uses its own searcher.
// The results are returned in the order of the jobs.
func searchAll(ctx context.Context, d *document, jobs []job,
	obs skipsearch.Observer, width int) ([]result, error) {

	results := make([]result, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, j := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := d.search(j, obs, width)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func printResults(w io.Writer, results []result) error {
	for _, r := range results {
		for _, m := range r.matches {
			_, err := fmt.Fprintf(w, "[%s] %d: %q_%s_%q (%d)\n",
				r.alg, m.offset, m.before, m.text, m.after, m.count)
			if err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "[%s] %q: %d matches, %d comparisons\n",
			r.alg, r.pattern, len(r.matches), r.count)
		if err != nil {
			return err
		}
	}
	return nil
}
