package classifier

import (
	"errors"
	"fmt"
)

// ErrNoFilename is returned when a path has no final filename component
// (e.g. "/" or the empty string).
var ErrNoFilename = errors.New("path has no filename component")

// InvalidPathError is returned when a path cannot be interpreted as
// UTF-8 text.
type InvalidPathError struct {
	Path string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid path: %q is not valid UTF-8", e.Path)
}

// InvalidRegexError is returned when a heuristic pattern string does not
// compile. It is never swallowed: content classification correctness
// depends on every referenced pattern being valid.
type InvalidRegexError struct {
	Pattern string
	Message string
}

func (e *InvalidRegexError) Error() string {
	return fmt.Sprintf("invalid regex pattern %q: %s", e.Pattern, e.Message)
}

// MissingNamedPatternError is returned when a heuristic rule references
// a named pattern that is not defined in the heuristics table.
type MissingNamedPatternError struct {
	Name string
}

func (e *MissingNamedPatternError) Error() string {
	return fmt.Sprintf("named pattern %q not found in heuristics", e.Name)
}
