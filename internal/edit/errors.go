package edit

import (
	"errors"
	"fmt"
)

// Kind classifies a parse failure.
type Kind string

const (
	KindUnknown         Kind = "Unknown"         // Unrecognized flag or extra trailing token.
	KindQuality         Kind = "Quality"         // Missing or non-integer quality value.
	KindResize          Kind = "Resize"          // Missing, malformed or non-integer dimensions.
	KindFilepath        Kind = "Filepath"        // Path rejected by the configured path check.
	KindMerge           Kind = "Merge"           // Fewer than two merge inputs.
	KindShouldNotHappen Kind = "ShouldNotHappen" // Token stream without even a program name.
)

// Sentinels matched by errors.Is against any *ParseError of the same kind.
var (
	ErrUnknown         = errors.New("unrecognized argument")
	ErrQuality         = errors.New("invalid quality")
	ErrResize          = errors.New("invalid resize")
	ErrFilepath        = errors.New("invalid file path")
	ErrMerge           = errors.New("invalid merge")
	ErrShouldNotHappen = errors.New("empty token stream")
)

var sentinels = map[Kind]error{
	KindUnknown:         ErrUnknown,
	KindQuality:         ErrQuality,
	KindResize:          ErrResize,
	KindFilepath:        ErrFilepath,
	KindMerge:           ErrMerge,
	KindShouldNotHappen: ErrShouldNotHappen,
}

// ParseError is returned by Parse for every grammar violation.
type ParseError struct {
	Kind    Kind
	Message string
}

func newError(kind Kind, format string, args ...interface{}) *ParseError {
	return &ParseError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (e *ParseError) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return string(e.Kind) + ": " + e.Message
}

// Unwrap exposes the kind's sentinel so callers can use errors.Is.
func (e *ParseError) Unwrap() error { return sentinels[e.Kind] }

// GoString renders the error in debug form, e.g. Resize("...").
func (e *ParseError) GoString() string {
	if e.Kind == KindShouldNotHappen {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s(%q)", e.Kind, e.Message)
}
