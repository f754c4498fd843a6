package engine

import (
	"context"
	"regexp"
	"runtime"
	"time"

	"github.com/simplefind/simplefind/internal/types"
	"golang.org/x/sync/errgroup"
)

// Config controls a search run.
type Config struct {
	Pattern       string
	Files         []types.FileInput
	CaseSensitive bool
	Literal       bool
	// Threads bounds how many files are scanned at once (0 = GOMAXPROCS).
	Threads int
}

// Result contains matches and basic search statistics.
type Result struct {
	Matches      []types.MatchResult
	FilesScanned int
	LinesScanned int
	Duration     time.Duration
}

// Search compiles pattern once and returns every match in files, ordered by
// file, then line, then column. An invalid pattern yields a *PatternError and
// no results.
func Search(pattern string, files []types.FileInput, caseSensitive bool) ([]types.MatchResult, error) {
	re, err := Compile(pattern, Options{CaseSensitive: caseSensitive})
	if err != nil {
		return nil, err
	}
	var out []types.MatchResult
	for _, f := range files {
		ms, _ := scanFile(re, f)
		out = append(out, ms...)
	}
	return out, nil
}

// SearchWithStats runs a search over cfg.Files using a bounded worker pool.
// Results are identical to Search. ctx is only consulted between files.
func SearchWithStats(ctx context.Context, cfg Config) (Result, error) {
	var result Result
	started := time.Now()

	re, err := Compile(cfg.Pattern, Options{CaseSensitive: cfg.CaseSensitive, Literal: cfg.Literal})
	if err != nil {
		return result, err
	}

	type slot struct {
		matches []types.MatchResult
		lines   int
	}
	slots := make([]slot, len(cfg.Files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount(cfg.Threads, len(cfg.Files)))
	for i := range cfg.Files {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ms, n := scanFile(re, cfg.Files[i])
			slots[i] = slot{matches: ms, lines: n}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	total := 0
	for _, s := range slots {
		total += len(s.matches)
	}
	result.Matches = make([]types.MatchResult, 0, total)
	for _, s := range slots {
		result.Matches = append(result.Matches, s.matches...)
		result.LinesScanned += s.lines
	}
	result.FilesScanned = len(cfg.Files)
	result.Duration = time.Since(started)
	return result, nil
}

// scanFile returns the matches in f and the number of lines it scanned.
func scanFile(re *regexp.Regexp, f types.FileInput) ([]types.MatchResult, int) {
	var out []types.MatchResult
	lines := SplitLines(f.Content)
	for i, line := range lines {
		for _, loc := range re.FindAllStringIndex(line, -1) {
			out = append(out, types.MatchResult{
				Path:     f.Path,
				Line:     i + 1,
				Column:   loc[0] + 1,
				LineText: line,
			})
		}
	}
	return out, len(lines)
}

func workerCount(threads, files int) int {
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}
	if threads > files {
		threads = files
	}
	if threads < 1 {
		threads = 1
	}
	return threads
}
