// Package ansi implements the terminal color engine: color notation parsing, 24-bit gradient rendering, and named SGR styling.
package ansi

import (
	"errors"
	"fmt"
)

// ErrorKind enumerates the closed set of color parsing failures.
type ErrorKind int

const (
	// InvalidColorFormat reports a recognized notation whose payload cannot yield three channels.
	InvalidColorFormat ErrorKind = iota + 1
	// UnsupportedFormat reports an input that matches none of the known notation prefixes.
	UnsupportedFormat
)

// String returns the identifier of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case InvalidColorFormat:
		return "InvalidColorFormat"
	case UnsupportedFormat:
		return "UnsupportedFormat"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Sentinels for errors.Is comparisons against a *ColorError of the matching kind.
var (
	ErrInvalidColorFormat = errors.New("invalid color format")
	ErrUnsupportedFormat  = errors.New("unsupported color format")
)

// ColorError carries the failure kind together with the offending input.
type ColorError struct {
	Kind  ErrorKind
	Input string
}

func (e *ColorError) Error() string {
	switch e.Kind {
	case UnsupportedFormat:
		return fmt.Sprintf("unsupported color code format: %q", e.Input)
	default:
		return fmt.Sprintf("invalid color code: %q", e.Input)
	}
}

// Is matches the sentinel of the same kind.
func (e *ColorError) Is(target error) bool {
	switch target {
	case ErrInvalidColorFormat:
		return e.Kind == InvalidColorFormat
	case ErrUnsupportedFormat:
		return e.Kind == UnsupportedFormat
	}
	return false
}

func invalid(input string) error {
	return &ColorError{Kind: InvalidColorFormat, Input: input}
}

func unsupported(input string) error {
	return &ColorError{Kind: UnsupportedFormat, Input: input}
}
