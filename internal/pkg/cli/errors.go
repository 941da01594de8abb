package cli

import "fmt"

type ErrorKind string

const (
	ErrNoArguments     ErrorKind = "no_arguments"
	ErrUnknownArgument ErrorKind = "unknown_argument"
	ErrMissingValue    ErrorKind = "missing_value"
	ErrUnexpectedValue ErrorKind = "unexpected_value"
	ErrMalformedToken  ErrorKind = "malformed_token"
	ErrMissingRequired ErrorKind = "missing_required"
)

// ParseError is returned for every failed Parse. Name holds the flag
// name (or the offending token for ErrMalformedToken).
type ParseError struct {
	Kind ErrorKind
	Name string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrNoArguments:
		return "no arguments"
	case ErrUnknownArgument:
		return fmt.Sprintf("unknown argument %q", e.Name)
	case ErrMissingValue:
		return fmt.Sprintf("argument %q requires a value", e.Name)
	case ErrUnexpectedValue:
		return fmt.Sprintf("argument %q does not take a value", e.Name)
	case ErrMalformedToken:
		return fmt.Sprintf("unexpected token %q", e.Name)
	case ErrMissingRequired:
		return fmt.Sprintf("missing required argument: %s", e.Name)
	}
	return fmt.Sprintf("parse error (%s): %q", e.Kind, e.Name)
}
