// Package feed encodes an ordered slice of posts into syndication XML. The
// encoders are pure: posts in, bytes out. Serving the result stays with the
// external site generator.
package feed

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/goliatone/go-corpus/internal/post"
)

// ChannelConfig carries the feed-level metadata shared by the RSS and Atom
// encoders. ItemURL maps a post to its public URL; when nil, URLs join the
// channel link with the post slug.
type ChannelConfig struct {
	Title       string
	Link        string
	Description string
	ItemURL     func(*post.Post) string
}

// Validate checks the channel metadata before encoding.
func (c ChannelConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Title, validation.Required),
		validation.Field(&c.Link, validation.Required, is.URL),
		validation.Field(&c.Description, validation.Required),
	)
}

func (c ChannelConfig) itemURL(p *post.Post) string {
	if c.ItemURL != nil {
		return c.ItemURL(p)
	}
	return joinURL(c.Link, p.Slug)
}

func joinURL(base string, parts ...string) string {
	out := strings.TrimRight(base, "/")
	for _, part := range parts {
		part = strings.Trim(part, "/")
		if part == "" {
			continue
		}
		out = fmt.Sprintf("%s/%s", out, part)
	}
	return out
}
