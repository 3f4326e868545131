package post

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMalformedHeader = errors.New("post: header delimiters missing or unbalanced")
	ErrMissingField    = errors.New("post: required header field is missing")
	ErrMalformedDate   = errors.New("post: date is not a valid timestamp")
	ErrMalformedTags   = errors.New("post: tags is not a sequence of strings")
	ErrUnknownField    = errors.New("post: unknown header field")
	ErrInvalidField    = errors.New("post: header field has the wrong type")
)

// ParseError reports a single source document that failed to parse. Name
// carries the offending identifier (usually the file path) so corpus
// builders can surface it without re-deriving context.
type ParseError struct {
	Name  string
	Field string
	Kind  error
	Cause error
}

func (e *ParseError) Error() string {
	if e == nil {
		return "post: parse error"
	}

	var sb strings.Builder
	if e.Kind != nil {
		sb.WriteString(e.Kind.Error())
	} else {
		sb.WriteString("post: parse error")
	}
	if field := strings.TrimSpace(e.Field); field != "" {
		sb.WriteString(fmt.Sprintf(": field=%s", field))
	}
	if name := strings.TrimSpace(e.Name); name != "" {
		sb.WriteString(fmt.Sprintf(": source=%s", name))
	}
	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}
	return sb.String()
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Kind
}
