package simplefind

import (
	"fmt"
	"io"

	"github.com/simplefind/simplefind/internal/engine"
	"github.com/simplefind/simplefind/internal/files"
	"github.com/simplefind/simplefind/internal/report"
	"github.com/simplefind/simplefind/internal/types"
	"github.com/simplefind/simplefind/pkg/core"
	"github.com/spf13/cobra"
)

const defaultMaxBytes = 1 << 20

// settings is the effective configuration after applying precedence.
type settings struct {
	caseSensitive bool
	literal       bool
	threads       int
	maxBytes      int64
	noColor       bool
	format        string
	baseline      string
}

func addSearchFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().BoolVarP(&opts.ignoreCase, "ignore-case", "i", false, "match case-insensitively (Unicode simple folding)")
	cmd.Flags().BoolVarP(&opts.fixed, "fixed-strings", "F", false, "treat the pattern as a literal string")
	cmd.Flags().Int64Var(&opts.maxBytes, "max-bytes", defaultMaxBytes, "skip files larger than this (0 = no limit)")
}

func newSearchCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search PATTERN [FILE...]",
		Short: "Search files for a pattern",
		Long:  "Search the named files (or stdin when none or '-' is given) and report every match. Exits 1 when nothing matched.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, opts, args[0], args[1:])
		},
	}
	addSearchFlags(cmd, opts)
	cmd.Flags().StringVar(&opts.baseline, "baseline", "", "hide matches recorded in this baseline file")
	return cmd
}

func resolveSettings(cmd *cobra.Command, opts *options) (settings, error) {
	lcfg, gcfg, err := loadConfigs(opts)
	if err != nil {
		return settings{}, err
	}
	s := settings{
		caseSensitive: !pickBool(cmd, "ignore-case", opts.ignoreCase, negate(lcfg.CaseSensitive), negate(gcfg.CaseSensitive)),
		literal:       pickBool(cmd, "fixed-strings", opts.fixed, lcfg.Literal, gcfg.Literal),
		threads:       pickInt(cmd, "threads", opts.threads, lcfg.Threads, gcfg.Threads),
		maxBytes:      pickInt64(cmd, "max-bytes", opts.maxBytes, lcfg.MaxBytes, gcfg.MaxBytes),
		noColor:       pickBool(cmd, "no-color", opts.noColor, lcfg.NoColor, gcfg.NoColor),
		baseline:      pickString(cmd, "baseline", opts.baseline, lcfg.Baseline, gcfg.Baseline),
	}
	switch {
	case opts.sarif:
		s.format = "sarif"
	case opts.json:
		s.format = "json"
	case opts.text:
		s.format = "text"
	case lcfg.Format != nil:
		s.format = *lcfg.Format
	case gcfg.Format != nil:
		s.format = *gcfg.Format
	default:
		s.format = "table"
	}
	return s, nil
}

func negate(b *bool) *bool {
	if b == nil {
		return nil
	}
	return boolPtr(!*b)
}

// searchFiles loads paths and runs the engine, reporting skipped files and a
// banner on stderr unless quiet. A bad pattern is reported before any input
// is opened, so stdin is never read for a search that cannot run.
func searchFiles(cmd *cobra.Command, opts *options, s settings, pattern string, paths []string) (engine.Result, error) {
	if _, err := engine.Compile(pattern, engine.Options{CaseSensitive: s.caseSensitive, Literal: s.literal}); err != nil {
		return engine.Result{}, err
	}
	if len(paths) == 0 {
		paths = []string{files.StdinPath}
	}
	stderr := cmd.ErrOrStderr()

	inputs, skipped, err := files.Load(paths, files.Options{MaxBytes: s.maxBytes, Stdin: cmd.InOrStdin()})
	if err != nil {
		return engine.Result{}, err
	}
	if !opts.quiet {
		for _, sk := range skipped {
			_, _ = fmt.Fprintf(stderr, "skipping %s: %s\n", sk.Path, sk.Reason)
		}
	}
	if !opts.quiet && s.format == "table" {
		_, _ = fmt.Fprintf(stderr, "Searching %d files for %q...\n", len(inputs), pattern)
	}

	return engine.SearchWithStats(cmd.Context(), engine.Config{
		Pattern:       pattern,
		Files:         inputs,
		CaseSensitive: s.caseSensitive,
		Literal:       s.literal,
		Threads:       s.threads,
	})
}

func runSearch(cmd *cobra.Command, opts *options, pattern string, paths []string) error {
	s, err := resolveSettings(cmd, opts)
	if err != nil {
		return err
	}
	res, err := searchFiles(cmd, opts, s, pattern, paths)
	if err != nil {
		return err
	}

	matches := res.Matches
	if s.baseline != "" {
		base, err := report.LoadBaseline(s.baseline)
		if err != nil {
			return err
		}
		matches = report.FilterNewMatches(matches, base)
	}

	out := cmd.OutOrStdout()
	popts := report.PrintOptions{
		NoColor:      !colorEnabled(out, s.noColor),
		Duration:     res.Duration,
		FilesScanned: res.FilesScanned,
		LinesScanned: res.LinesScanned,
		Baselined:    len(res.Matches) - len(matches),
	}
	if err := render(out, s.format, pattern, matches, popts); err != nil {
		return fmt.Errorf("write %s output: %w", s.format, err)
	}
	if len(matches) == 0 {
		return errNoMatches
	}
	return nil
}

func render(w io.Writer, format, pattern string, matches []types.MatchResult, opts report.PrintOptions) error {
	switch format {
	case "sarif":
		return report.WriteSARIF(w, matches, pattern, version)
	case "json":
		return core.MarshalMatches(w, matches)
	case "text":
		report.PrintText(w, matches, opts)
		return nil
	default:
		return report.PrintTable(w, matches, opts)
	}
}
