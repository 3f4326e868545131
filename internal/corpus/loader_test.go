package corpus

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-corpus/internal/post"
)

func validSource(title string) []byte {
	return []byte("---\ntitle: " + title + "\ndescription: about " + title + "\ndate: 2021-07-15T10:30:00Z\n---\nbody of " + title + "\n")
}

func TestLoaderLoadFile(t *testing.T) {
	fsys := fstest.MapFS{
		"posts/hello.md": &fstest.MapFile{Data: validSource("Hello")},
	}

	loader := NewLoader(fsys, LoaderConfig{})
	entry, err := loader.LoadFile(context.Background(), "posts/hello.md")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if entry.Path != "posts/hello.md" {
		t.Fatalf("expected entry path to be recorded, got %q", entry.Path)
	}
	if entry.Post.Slug != "hello" {
		t.Fatalf("expected slug from filename, got %q", entry.Post.Slug)
	}
	if len(entry.Checksum) == 0 {
		t.Fatalf("expected checksum to be computed")
	}
}

func TestLoaderLoadDirectory(t *testing.T) {
	fsys := fstest.MapFS{
		"b.md":       &fstest.MapFile{Data: validSource("Bravo")},
		"a.md":       &fstest.MapFile{Data: validSource("Alpha")},
		"notes.txt":  &fstest.MapFile{Data: []byte("not a post")},
		"sub/c.md":   &fstest.MapFile{Data: validSource("Charlie")},
		"sub/d.json": &fstest.MapFile{Data: []byte("{}")},
	}

	loader := NewLoader(fsys, LoaderConfig{Recursive: true})
	entries, skipped, err := loader.LoadDirectory(context.Background(), ".")
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}
	if len(skipped) != 0 {
		t.Fatalf("expected no skipped files, got %v", skipped)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i, want := range []string{"a.md", "b.md", "sub/c.md"} {
		if entries[i].Path != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, entries[i].Path)
		}
	}
}

func TestLoaderLoadDirectoryNonRecursive(t *testing.T) {
	fsys := fstest.MapFS{
		"a.md":     &fstest.MapFile{Data: validSource("Alpha")},
		"sub/c.md": &fstest.MapFile{Data: validSource("Charlie")},
	}

	loader := NewLoader(fsys, LoaderConfig{Recursive: false})
	entries, _, err := loader.LoadDirectory(context.Background(), ".")
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}
	if len(entries) != 1 || entries[0].Path != "a.md" {
		t.Fatalf("expected only the root entry, got %#v", entries)
	}
}

func TestLoaderCollectsParseFailures(t *testing.T) {
	fsys := fstest.MapFS{
		"good.md": &fstest.MapFile{Data: validSource("Good")},
		"bad.md":  &fstest.MapFile{Data: []byte("---\ndescription: no title\ndate: 2021-07-15T10:30:00Z\n---\nbody\n")},
	}

	loader := NewLoader(fsys, LoaderConfig{})
	entries, skipped, err := loader.LoadDirectory(context.Background(), ".")
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}
	if len(entries) != 1 || entries[0].Path != "good.md" {
		t.Fatalf("expected the valid entry only, got %#v", entries)
	}
	if len(skipped) != 1 {
		t.Fatalf("expected one skipped file, got %d", len(skipped))
	}
	if !errors.Is(skipped[0], post.ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", skipped[0])
	}
}

func TestLoaderCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader := NewLoader(fstest.MapFS{}, LoaderConfig{})
	if _, _, err := loader.LoadDirectory(ctx, "."); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
