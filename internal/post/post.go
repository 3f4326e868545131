// Package post implements the corpus content record: a YAML header fenced by
// "---" lines followed by a free-form Markdown body. Parsing is a pure
// function from source bytes to a Post or a typed parse failure; no parser
// state is shared between calls.
package post

import (
	"fmt"
	"path"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	slug "github.com/goliatone/go-slug"
	"github.com/google/uuid"
)

// Post is one blog content record: decoded header metadata plus the raw body.
type Post struct {
	// ID is a deterministic UUID derived from the slug, stable across builds.
	ID uuid.UUID
	// Slug uniquely identifies the post within a corpus.
	Slug        string
	Title       string
	Description string
	Date        time.Time
	// Tags preserve authoring order. Duplicates are permitted.
	Tags []string
	// Body is the source text following the closing header fence.
	Body []byte
}

// Validate checks records constructed in code rather than parsed from source
// text. Parsed posts are already validated against the header schema.
func (p Post) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Slug, validation.Required, validation.By(validSlug)),
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Description, validation.Required),
		validation.Field(&p.Date, validation.Required),
	)
}

// Equal reports field-for-field equality. Dates compare with time.Equal so
// equivalent instants in different locations match.
func (p *Post) Equal(other *Post) bool {
	if p == nil || other == nil {
		return p == other
	}
	if p.ID != other.ID || p.Slug != other.Slug {
		return false
	}
	if p.Title != other.Title || p.Description != other.Description {
		return false
	}
	if !p.Date.Equal(other.Date) {
		return false
	}
	if len(p.Tags) != len(other.Tags) {
		return false
	}
	for i := range p.Tags {
		if p.Tags[i] != other.Tags[i] {
			return false
		}
	}
	return string(p.Body) == string(other.Body)
}

func validSlug(value any) error {
	s, _ := value.(string)
	if !slug.IsValid(s) {
		return validation.NewError("post.slug_invalid", "slug contains invalid characters")
	}
	return nil
}

// SlugFor derives the corpus identifier for a post. An explicit header slug
// wins, then the source filename stem, then the title.
func SlugFor(explicit, name, title string) (string, error) {
	candidates := []string{explicit, stem(name), title}
	for _, candidate := range candidates {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		normalized, err := slug.Normalize(candidate)
		if err != nil {
			return "", fmt.Errorf("post: normalize slug %q: %w", candidate, err)
		}
		return normalized, nil
	}
	return "", fmt.Errorf("post: no slug source available")
}

func stem(name string) string {
	base := path.Base(strings.TrimSpace(name))
	if base == "." || base == "/" {
		return ""
	}
	return strings.TrimSuffix(base, path.Ext(base))
}
