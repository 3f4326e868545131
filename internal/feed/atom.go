package feed

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"time"

	"github.com/goliatone/go-corpus/internal/post"
)

type atomFeed struct {
	XMLName  xml.Name    `xml:"feed"`
	XMLNS    string      `xml:"xmlns,attr"`
	Title    string      `xml:"title"`
	ID       string      `xml:"id"`
	Updated  string      `xml:"updated"`
	Link     atomLink    `xml:"link"`
	Subtitle string      `xml:"subtitle,omitempty"`
	Entries  []atomEntry `xml:"entry"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr,omitempty"`
}

type atomEntry struct {
	Title   string   `xml:"title"`
	ID      string   `xml:"id"`
	Updated string   `xml:"updated"`
	Link    atomLink `xml:"link"`
	Summary string   `xml:"summary,omitempty"`
}

// Atom encodes posts into an Atom 1.0 document. The feed updated timestamp
// is taken from the first post, so pass a date-descending listing.
func Atom(cfg ChannelConfig, posts []*post.Post) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("feed: atom channel: %w", err)
	}

	updated := time.Time{}
	entries := make([]atomEntry, 0, len(posts))
	for _, p := range posts {
		if p == nil {
			continue
		}
		if updated.IsZero() {
			updated = p.Date
		}
		postURL := cfg.itemURL(p)
		entries = append(entries, atomEntry{
			Title:   p.Title,
			ID:      postURL,
			Updated: p.Date.Format(time.RFC3339),
			Link:    atomLink{Href: postURL},
			Summary: p.Description,
		})
	}
	if updated.IsZero() {
		updated = time.Now().UTC()
	}

	doc := atomFeed{
		XMLNS:    "http://www.w3.org/2005/Atom",
		Title:    cfg.Title,
		ID:       cfg.Link,
		Updated:  updated.Format(time.RFC3339),
		Link:     atomLink{Href: cfg.Link, Rel: "alternate"},
		Subtitle: cfg.Description,
		Entries:  entries,
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	encoder := xml.NewEncoder(&buf)
	encoder.Indent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return nil, fmt.Errorf("feed: encode atom: %w", err)
	}
	return buf.Bytes(), nil
}
