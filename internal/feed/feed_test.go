package feed

import (
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-corpus/internal/post"
)

func channel() ChannelConfig {
	return ChannelConfig{
		Title:       "Example Blog",
		Link:        "https://blog.example.com",
		Description: "Notes on building things.",
	}
}

func samplePosts() []*post.Post {
	return []*post.Post{
		{
			Slug:        "second-post",
			Title:       "Second Post",
			Description: "The follow-up.",
			Date:        time.Date(2021, 8, 2, 9, 0, 0, 0, time.UTC),
		},
		{
			Slug:        "welcome",
			Title:       "Welcome to my Blog",
			Description: "This is the introductory post.",
			Date:        time.Date(2021, 7, 15, 10, 30, 0, 0, time.UTC),
		},
	}
}

func TestRSS(t *testing.T) {
	out, err := RSS(channel(), samplePosts())
	if err != nil {
		t.Fatalf("RSS: %v", err)
	}

	got := string(out)
	for _, want := range []string{
		`<rss version="2.0">`,
		"<title>Example Blog</title>",
		"<link>https://blog.example.com/second-post</link>",
		"<guid>https://blog.example.com/welcome</guid>",
		"Mon, 02 Aug 2021 09:00:00 +0000",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected RSS output to contain %q, got:\n%s", want, got)
		}
	}
}

func TestRSSCustomItemURL(t *testing.T) {
	cfg := channel()
	cfg.ItemURL = func(p *post.Post) string {
		return "https://blog.example.com/posts/" + p.Slug + ".html"
	}

	out, err := RSS(cfg, samplePosts())
	if err != nil {
		t.Fatalf("RSS: %v", err)
	}
	if !strings.Contains(string(out), "https://blog.example.com/posts/welcome.html") {
		t.Fatalf("expected custom item URLs, got:\n%s", out)
	}
}

func TestRSSRejectsInvalidChannel(t *testing.T) {
	cfg := channel()
	cfg.Link = ""
	if _, err := RSS(cfg, nil); err == nil {
		t.Fatalf("expected validation failure for missing link")
	}
}

func TestAtom(t *testing.T) {
	out, err := Atom(channel(), samplePosts())
	if err != nil {
		t.Fatalf("Atom: %v", err)
	}

	got := string(out)
	for _, want := range []string{
		`xmlns="http://www.w3.org/2005/Atom"`,
		"<title>Example Blog</title>",
		"<updated>2021-08-02T09:00:00Z</updated>",
		`<link href="https://blog.example.com/welcome"></link>`,
		"<summary>This is the introductory post.</summary>",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected Atom output to contain %q, got:\n%s", want, got)
		}
	}
}

func TestAtomEmptyCorpus(t *testing.T) {
	out, err := Atom(channel(), nil)
	if err != nil {
		t.Fatalf("Atom: %v", err)
	}
	if !strings.Contains(string(out), "<updated>") {
		t.Fatalf("expected an updated timestamp even for an empty feed, got:\n%s", out)
	}
}
