package engine

import (
	"errors"
	"regexp"
	"regexp/syntax"
)

// Options controls how a pattern is compiled.
type Options struct {
	CaseSensitive bool
	// Literal matches the pattern as a fixed string instead of a regular expression.
	Literal bool
}

// Compile turns pattern into a matcher. Case-insensitive matching uses the
// (?i) flag, i.e. Unicode simple case folding.
func Compile(pattern string, opts Options) (*regexp.Regexp, error) {
	expr := pattern
	if opts.Literal {
		expr = regexp.QuoteMeta(pattern)
	}
	// Validate the caller's text first so diagnostics never mention the flag prefix.
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Msg: diagnostic(err)}
	}
	if opts.CaseSensitive {
		return re, nil
	}
	re, err = regexp.Compile("(?i)" + expr)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Msg: diagnostic(err)}
	}
	return re, nil
}

// diagnostic strips the "error parsing regexp: " prefix that regexp adds to
// syntax errors; the rest already quotes the offending fragment.
func diagnostic(err error) string {
	var se *syntax.Error
	if errors.As(err, &se) {
		return se.Code.String() + ": `" + se.Expr + "`"
	}
	return err.Error()
}
