// SPDX-FileCopyrightText: © 2026 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ulikunitz/skipsearch"
)

// fileConfig is the content of the YAML file given with -config.
//
//	algorithm: all
//	context: 12
//	patterns:
//	  - foo
//	  - bar
type fileConfig struct {
	Algorithm string   `yaml:"algorithm"`
	Context   int      `yaml:"context"`
	UTF16     bool     `yaml:"utf16"`
	Patterns  []string `yaml:"patterns"`
}

func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if cfg.Context < 0 {
		return nil, fmt.Errorf("config file %s: context must be >= 0",
			path)
	}
	for i, p := range cfg.Patterns {
		if p == "" {
			return nil, fmt.Errorf(
				"config file %s: pattern %d is empty", path, i)
		}
	}
	return &cfg, nil
}

// parseAlgorithms returns the algorithms selected by name. The name "all"
// selects every algorithm.
func parseAlgorithms(name string) ([]skipsearch.Algorithm, error) {
	if strings.EqualFold(strings.TrimSpace(name), "all") {
		return skipsearch.Algorithms(), nil
	}
	a, err := skipsearch.ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}
	return []skipsearch.Algorithm{a}, nil
}
