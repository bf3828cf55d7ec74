package messageformat

import (
	"errors"
	"fmt"
)

var (
	// ErrTemplateTooLong is returned when a raw template exceeds the
	// configured maximum length.
	ErrTemplateTooLong = errors.New("messageformat: template exceeds maximum length")

	// ErrDepthExceeded is returned when message nesting exceeds the
	// configured maximum depth, at parse or validation time.
	ErrDepthExceeded = errors.New("messageformat: nesting exceeds maximum depth")

	// ErrMissingOtherCase is returned by validation when a branching
	// construct has no "other" case and the requirement is enabled.
	ErrMissingOtherCase = errors.New("messageformat: missing required other case")

	// ErrInvalidCaseName is returned by validation when a plural or
	// selectordinal case name is not a CLDR category or an "=N" match.
	ErrInvalidCaseName = errors.New("messageformat: invalid case name")

	// ErrEmptyArgumentName is returned by validation when a node carries an
	// empty variable name.
	ErrEmptyArgumentName = errors.New("messageformat: empty argument name")

	// ErrCircularReference is returned by validation when a hand-built tree
	// shares or cycles branching nodes and AllowCircular is not set.
	ErrCircularReference = errors.New("messageformat: circular or shared node reference")

	// ErrEmptyFormatterName is returned when registering a formatter under
	// an empty name.
	ErrEmptyFormatterName = errors.New("messageformat: formatter name cannot be empty")

	// ErrNilFormatter is returned when registering a nil formatter.
	ErrNilFormatter = errors.New("messageformat: formatter cannot be nil")

	// ErrInvalidMaxDepth is returned by New for a non-positive depth limit.
	ErrInvalidMaxDepth = errors.New("messageformat: max depth must be positive")

	// ErrInvalidMaxLength is returned by New for a non-positive length limit.
	ErrInvalidMaxLength = errors.New("messageformat: max length must be positive")

	// ErrInvalidCacheCapacity is returned by New for a non-positive cache
	// capacity.
	ErrInvalidCacheCapacity = errors.New("messageformat: cache capacity must be positive")
)

// ParseError reports malformed template grammar: what the parser expected,
// what it found, and the byte offset of the offending token. It may wrap a
// sentinel such as ErrDepthExceeded or ErrTemplateTooLong.
type ParseError struct {
	Err      error
	Expected string
	Found    string
	Pos      int
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s at position %d", e.Err.Error(), e.Pos)
	}
	return fmt.Sprintf("messageformat: parse error at position %d: expected %s, found %s", e.Pos, e.Expected, e.Found)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError reports a structurally valid but semantically incomplete
// tree. Name identifies the offending construct's variable; Err is the
// sentinel classifying the violation.
type ValidationError struct {
	Err    error
	Name   string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Reason)
	}
	return fmt.Sprintf("%s: argument %q: %s", e.Err.Error(), e.Name, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
