package core

import (
	"context"

	"github.com/simplefind/simplefind/internal/engine"
	"github.com/simplefind/simplefind/internal/types"
)

// Re-export selected internal types as a stable public API surface.
type (
	FileInput    = types.FileInput
	MatchResult  = types.MatchResult
	Config       = engine.Config
	Result       = engine.Result
	PatternError = engine.PatternError
)

// ErrInvalidPattern matches every error returned for a rejected pattern.
var ErrInvalidPattern = engine.ErrInvalidPattern

// Search is the stable entrypoint for other programs.
func Search(pattern string, files []FileInput, caseSensitive bool) ([]MatchResult, error) {
	return engine.Search(pattern, files, caseSensitive)
}

// SearchWithStats scans files concurrently and reports timing and counts.
func SearchWithStats(ctx context.Context, cfg Config) (Result, error) {
	return engine.SearchWithStats(ctx, cfg)
}
