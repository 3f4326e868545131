package post

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-corpus/internal/identity"
)

// yamlHeader restricts header detection to YAML fenced by "---" lines. The
// corpus format does not admit TOML or JSON headers.
var yamlHeader = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// dateLayouts are tried in order when the header date arrives as a quoted
// string instead of a YAML timestamp scalar.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Parse decodes source into a Post. It is a pure function: no state is kept
// between calls and the input is never mutated.
func Parse(source []byte) (*Post, error) {
	return ParseNamed("", source)
}

// ParseNamed decodes source into a Post, recording name (usually the source
// file path) on any failure and using its stem as a slug fallback.
func ParseNamed(name string, source []byte) (*Post, error) {
	header := map[string]any{}
	rest, err := frontmatter.MustParse(bytes.NewReader(source), &header, yamlHeader)
	if err != nil {
		return nil, &ParseError{Name: name, Kind: ErrMalformedHeader, Cause: err}
	}

	for _, field := range []string{"title", "description", "date"} {
		if _, ok := header[field]; !ok {
			return nil, &ParseError{Name: name, Field: field, Kind: ErrMissingField}
		}
	}
	for _, field := range []string{"title", "description"} {
		if isBlank(header[field]) {
			return nil, &ParseError{Name: name, Field: field, Kind: ErrMissingField}
		}
		if _, ok := header[field].(string); !ok {
			return nil, &ParseError{Name: name, Field: field, Kind: ErrInvalidField,
				Cause: fmt.Errorf("expected a string, got %T", header[field])}
		}
	}

	date, err := decodeDate(header["date"])
	if err != nil {
		return nil, &ParseError{Name: name, Field: "date", Kind: ErrMalformedDate, Cause: err}
	}

	tags, err := decodeTags(header["tags"])
	if err != nil {
		return nil, &ParseError{Name: name, Field: "tags", Kind: ErrMalformedTags, Cause: err}
	}

	norm, _ := normalizeValue(header).(map[string]any)
	if err := validateHeader(name, norm); err != nil {
		return nil, err
	}

	// The schema guarantees scalar field types past this point.
	title := strings.TrimSpace(norm["title"].(string))
	description := strings.TrimSpace(norm["description"].(string))
	explicitSlug, _ := norm["slug"].(string)

	identifier, err := SlugFor(explicitSlug, name, title)
	if err != nil {
		return nil, &ParseError{Name: name, Field: "slug", Kind: ErrInvalidField, Cause: err}
	}

	return &Post{
		ID:          identity.PostUUID(identifier),
		Slug:        identifier,
		Title:       title,
		Description: description,
		Date:        date,
		Tags:        tags,
		Body:        bytes.TrimLeft(rest, "\r\n"),
	}, nil
}

func isBlank(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	default:
		return false
	}
}

func decodeDate(value any) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case string:
		trimmed := strings.TrimSpace(v)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, trimmed); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("%q is not a recognised timestamp", v)
	default:
		return time.Time{}, fmt.Errorf("expected a timestamp, got %T", value)
	}
}

func decodeTags(value any) ([]string, error) {
	if value == nil {
		return nil, nil
	}
	seq, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a sequence, got %T", value)
	}
	tags := make([]string, 0, len(seq))
	for i, item := range seq {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("element %d: expected a string, got %T", i, item)
		}
		tags = append(tags, s)
	}
	return tags, nil
}
