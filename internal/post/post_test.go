package post

import (
	"testing"
	"time"

	"github.com/goliatone/go-corpus/internal/identity"
)

func TestPostValidate(t *testing.T) {
	valid := Post{
		ID:          identity.PostUUID("hello"),
		Slug:        "hello",
		Title:       "Hello",
		Description: "First post",
		Date:        time.Date(2021, 7, 15, 10, 30, 0, 0, time.UTC),
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid post, got %v", err)
	}

	missingTitle := valid
	missingTitle.Title = ""
	if err := missingTitle.Validate(); err == nil {
		t.Fatalf("expected validation failure for empty title")
	}

	zeroDate := valid
	zeroDate.Date = time.Time{}
	if err := zeroDate.Validate(); err == nil {
		t.Fatalf("expected validation failure for zero date")
	}

	badSlug := valid
	badSlug.Slug = "Not A Slug!"
	if err := badSlug.Validate(); err == nil {
		t.Fatalf("expected validation failure for invalid slug")
	}
}

func TestSlugFor(t *testing.T) {
	cases := []struct {
		name     string
		explicit string
		path     string
		title    string
		want     string
	}{
		{name: "explicit wins", explicit: "custom", path: "posts/file.md", title: "Title", want: "custom"},
		{name: "filename stem", path: "posts/my-first-post.md", title: "Title", want: "my-first-post"},
		{name: "title fallback", title: "Hello World", want: "hello-world"},
		{name: "explicit normalized", explicit: "Hello World!", want: "hello-world"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SlugFor(tc.explicit, tc.path, tc.title)
			if err != nil {
				t.Fatalf("SlugFor: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}

	if _, err := SlugFor("", "", ""); err == nil {
		t.Fatalf("expected error when no slug source is available")
	}
}
