package feed

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"time"

	"github.com/goliatone/go-corpus/internal/post"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

// RSS encodes posts into an RSS 2.0 document. Posts are emitted in the order
// supplied; pass a date-descending listing for a conventional feed.
func RSS(cfg ChannelConfig, posts []*post.Post) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("feed: rss channel: %w", err)
	}

	items := make([]rssItem, 0, len(posts))
	for _, p := range posts {
		if p == nil {
			continue
		}
		postURL := cfg.itemURL(p)
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        postURL,
			Description: p.Description,
			PubDate:     p.Date.Format(time.RFC1123Z),
			GUID:        postURL,
		})
	}

	doc := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       cfg.Title,
			Link:        cfg.Link,
			Description: cfg.Description,
			Items:       items,
		},
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	encoder := xml.NewEncoder(&buf)
	encoder.Indent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return nil, fmt.Errorf("feed: encode rss: %w", err)
	}
	return buf.Bytes(), nil
}
