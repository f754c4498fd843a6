package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidPattern is the kind of every PatternError.
var ErrInvalidPattern = errors.New("invalid regex pattern")

// PatternError reports a pattern that the regular expression engine rejected.
// It is the only error Search can return.
type PatternError struct {
	Pattern string
	Msg     string
}

func (e *PatternError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s '%s': %s", ErrInvalidPattern.Error(), e.Pattern, e.Msg)
}

func (e *PatternError) Unwrap() error { return ErrInvalidPattern }
