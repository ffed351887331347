package m3u8

import (
	"errors"
	"fmt"
)

var (
	// ErrHeader is returned by Decode when the input does not start with #EXTM3U.
	ErrHeader = errors.New(`not a valid m3u8 document (does not contain header "#EXTM3U")`)

	// ErrMissingValue means a required token was absent or of the wrong kind.
	ErrMissingValue = errors.New("missing value")

	// ErrInvalidEnum means a value had an enumerated shape but is not a member
	// of the closed set for its field.
	ErrInvalidEnum = errors.New("invalid enumeration value")

	// ErrUnexpectedToken means a token appeared where its kind is not allowed.
	ErrUnexpectedToken = errors.New("unexpected token")

	ErrInvalidVariantStream = errors.New("invalid variant stream")
	ErrInvalidFrameStream   = errors.New("invalid frame stream")
)

// LexError reports input that no lexical rule matches.
type LexError struct {
	Line   int
	Col    int
	Text   string
	Reason string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("line %d col %d: %s %q", e.Line, e.Col, e.Reason, e.Text)
}

// FieldError attributes a parse failure to the field or tag being read.
type FieldError struct {
	Field string
	Line  int
	Err   error
}

func (e *FieldError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s (line %d): %v", e.Field, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func fieldErr(field string, t Token, err error) error {
	return &FieldError{Field: field, Line: t.Line, Err: err}
}

// missing builds the error for a lookahead that landed on the wrong token.
func missing(field string, t Token) error {
	if t.Kind == TokenEOF {
		return fieldErr(field, t, fmt.Errorf("%w: unexpected end of input", ErrMissingValue))
	}
	return fieldErr(field, t, fmt.Errorf("%w: got %s %q", ErrMissingValue, t.Kind, t.Text))
}

func unexpected(field string, t Token, kind error) error {
	return fieldErr(field, t, fmt.Errorf("%w: %s %q", kind, t.Kind, t.Text))
}
