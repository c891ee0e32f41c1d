// SPDX-FileCopyrightText: © 2026 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Command skipsearch prints all occurrences of one or more patterns in a
// file using the skip-table searchers of the skipsearch package.
//
// Usage:
//
//	skipsearch [flags] pattern [file]
//	skipsearch [flags] -config patterns.yaml [file]
//
// The input is read from standard input if no file is given. Every match is
// printed with its surrounding context and the comparison count of the
// searcher.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ulikunitz/skipsearch"
	"github.com/ulikunitz/skipsearch/internal/stats"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt,
		syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type options struct {
	algorithm   string
	configPath  string
	metricsFile string
	context     int
	utf16       bool
	verbose     bool
}

// run executes the command and returns the exit code.
func run(ctx context.Context, args []string, stdin io.Reader,
	stdout, stderr io.Writer) int {

	fs := flag.NewFlagSet("skipsearch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var opts options
	fs.StringVar(&opts.algorithm, "algorithm", "all",
		"search algorithm: bm, horspool, sunday or all")
	fs.StringVar(&opts.configPath, "config", "",
		"YAML file with patterns and settings")
	fs.StringVar(&opts.metricsFile, "metrics-file", "",
		"write Prometheus metrics in text format to this file")
	fs.IntVar(&opts.context, "context", 10,
		"number of symbols shown before and after a match")
	fs.BoolVar(&opts.utf16, "utf16", false,
		"search UTF-16 code units instead of bytes")
	fs.BoolVar(&opts.verbose, "v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr,
		&slog.HandlerOptions{Level: level}))

	if err := execute(ctx, logger, fs, opts, stdin, stdout); err != nil {
		logger.Error("search failed", "error", err)
		return 1
	}
	return 0
}

func execute(ctx context.Context, logger *slog.Logger, fs *flag.FlagSet,
	opts options, stdin io.Reader, stdout io.Writer) error {

	var patterns []string
	args := fs.Args()
	if opts.configPath != "" {
		cfg, err := loadConfig(opts.configPath)
		if err != nil {
			return err
		}
		patterns = cfg.Patterns
		// Explicitly set flags override the config file.
		set := make(map[string]bool)
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
		if cfg.Algorithm != "" && !set["algorithm"] {
			opts.algorithm = cfg.Algorithm
		}
		if cfg.Context > 0 && !set["context"] {
			opts.context = cfg.Context
		}
		if cfg.UTF16 && !set["utf16"] {
			opts.utf16 = true
		}
		logger.Debug("config loaded", "path", opts.configPath,
			"patterns", len(patterns))
	} else {
		if len(args) == 0 {
			return errors.New("no pattern given")
		}
		patterns = args[:1]
		args = args[1:]
	}
	if len(patterns) == 0 {
		return errors.New("no patterns in config file")
	}
	if len(args) > 1 {
		return fmt.Errorf("too many arguments: %q", args[1:])
	}
	if opts.context < 0 {
		return errors.New("context must be >= 0")
	}

	algs, err := parseAlgorithms(opts.algorithm)
	if err != nil {
		return err
	}

	var data []byte
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(stdin)
	}
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	doc := newDocument(data, opts.utf16)
	logger.Debug("input read", "bytes", len(data), "utf16", opts.utf16)

	var jobs []job
	for _, p := range patterns {
		if p == "" {
			return skipsearch.ErrEmptyPattern
		}
		for _, a := range algs {
			jobs = append(jobs, job{alg: a, pattern: p})
		}
	}

	collector := stats.New()
	results, err := searchAll(ctx, doc, jobs, collector, opts.context)
	if err != nil {
		return err
	}
	if err = printResults(stdout, results); err != nil {
		return err
	}
	for _, r := range results {
		logger.Debug("search done", "algorithm", r.alg,
			"pattern", r.pattern, "matches", len(r.matches),
			"comparisons", r.count)
	}

	if opts.metricsFile != "" {
		if err = collector.WriteTextfile(opts.metricsFile); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
		logger.Info("metrics written", "path", opts.metricsFile)
	}
	return nil
}
