// SPDX-FileCopyrightText: © 2026 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package skipsearch

import (
	"fmt"
	"strings"
)

// Algorithm identifies one of the supported search algorithms.
type Algorithm int

// Supported algorithms.
const (
	// BoyerMoore uses only the bad-character rule.
	BoyerMoore Algorithm = 1 + iota
	// Horspool is the Boyer-Moore-Horspool algorithm.
	Horspool
	// Sunday is Sunday's Quick Search algorithm.
	Sunday
)

var algorithmNames = [...]string{
	BoyerMoore: "BoyerMoore",
	Horspool:   "Horspool",
	Sunday:     "Sunday",
}

// algorithmAliases maps lower-case names to algorithms.
var algorithmAliases = map[string]Algorithm{
	"boyermoore":  BoyerMoore,
	"boyer-moore": BoyerMoore,
	"bm":          BoyerMoore,
	"horspool":    Horspool,
	"bmh":         Horspool,
	"sunday":      Sunday,
	"quicksearch": Sunday,
	"qs":          Sunday,
}

// Algorithms returns all supported algorithms.
func Algorithms() []Algorithm {
	return []Algorithm{BoyerMoore, Horspool, Sunday}
}

func (a Algorithm) valid() bool {
	return BoyerMoore <= a && a <= Sunday
}

func (a Algorithm) String() string {
	if !a.valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// ParseAlgorithm converts a name into an algorithm. The canonical names
// BoyerMoore, Horspool and Sunday are accepted in any case, as are the
// abbreviations bm, bmh and qs.
func ParseAlgorithm(s string) (Algorithm, error) {
	a, ok := algorithmAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("skipsearch: unknown Algorithm %q", s)
	}
	return a, nil
}

// MarshalText returns the canonical name of the algorithm.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.valid() {
		return nil, fmt.Errorf("skipsearch: unknown Algorithm %d", int(a))
	}
	return []byte(algorithmNames[a]), nil
}

// UnmarshalText parses the algorithm name using ParseAlgorithm.
func (a *Algorithm) UnmarshalText(text []byte) error {
	x, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = x
	return nil
}

// Config provides a general method to create searchers.
type Config struct {
	// Algorithm selects the search algorithm. The default is Horspool.
	Algorithm Algorithm `json:",omitzero"`
	// Observer is notified after every scan. It is optional.
	Observer Observer `json:"-"`
}

// ApplyDefaults sets the algorithm to Horspool if it is zero.
func (cfg *Config) ApplyDefaults() {
	if cfg.Algorithm == 0 {
		cfg.Algorithm = Horspool
	}
}

// Verify checks the configuration for errors. Use ApplyDefaults before this
// function because it doesn't support zero values.
func (cfg *Config) Verify() error {
	if !cfg.Algorithm.valid() {
		return fmt.Errorf("skipsearch: invalid Algorithm=%d", int(cfg.Algorithm))
	}
	return nil
}

// New creates a searcher for the pattern using the algorithm given in cfg.
func New[S Symbol](cfg Config, pattern []S) (Searcher[S], error) {
	cfg.ApplyDefaults()
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	switch cfg.Algorithm {
	case BoyerMoore:
		s, err := NewBoyerMoore(pattern)
		if err != nil {
			return nil, err
		}
		s.SetObserver(cfg.Observer)
		return s, nil
	case Horspool:
		s, err := NewHorspool(pattern)
		if err != nil {
			return nil, err
		}
		s.SetObserver(cfg.Observer)
		return s, nil
	case Sunday:
		s, err := NewSunday(pattern)
		if err != nil {
			return nil, err
		}
		s.SetObserver(cfg.Observer)
		return s, nil
	default:
		panic("unreachable")
	}
}
