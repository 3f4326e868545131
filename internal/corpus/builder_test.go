package corpus

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-corpus/internal/post"
)

func TestBuilderBuild(t *testing.T) {
	fsys := fstest.MapFS{
		"alpha.md": &fstest.MapFile{Data: validSource("Alpha")},
		"bravo.md": &fstest.MapFile{Data: validSource("Bravo")},
	}

	builder := NewBuilder(NewLoader(fsys, LoaderConfig{}), nil)
	c, report, err := builder.Build(context.Background(), ".")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if c.Len() != 2 {
		t.Fatalf("expected 2 posts, got %d", c.Len())
	}
	if !report.Clean() {
		t.Fatalf("expected a clean report, got %+v", report)
	}
	if report.Loaded() != 2 {
		t.Fatalf("expected 2 loaded, got %d", report.Loaded())
	}
	if report.Err() != nil {
		t.Fatalf("expected nil report error, got %v", report.Err())
	}
}

func TestBuilderSkipsInvalidPosts(t *testing.T) {
	fsys := fstest.MapFS{
		"alpha.md":  &fstest.MapFile{Data: validSource("Alpha")},
		"broken.md": &fstest.MapFile{Data: []byte("---\ntitle: t\ndescription: d\ndate: not-a-date\n---\nbody\n")},
	}

	builder := NewBuilder(NewLoader(fsys, LoaderConfig{}), nil)
	c, report, err := builder.Build(context.Background(), ".")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if c.Len() != 1 {
		t.Fatalf("expected the bad post to be skipped, got %d posts", c.Len())
	}
	if report.Clean() {
		t.Fatalf("expected a dirty report")
	}
	if len(report.Skipped) != 1 || !errors.Is(report.Skipped[0], post.ErrMalformedDate) {
		t.Fatalf("expected one ErrMalformedDate skip, got %#v", report.Skipped)
	}

	reportErr := report.Err()
	if reportErr == nil {
		t.Fatalf("expected an aggregate report error")
	}
	if !goerrors.IsCategory(reportErr, goerrors.CategoryValidation) {
		t.Fatalf("expected a validation-category error, got %v", reportErr)
	}
}

func TestBuilderReportsDuplicateSlugs(t *testing.T) {
	shared := []byte("---\ntitle: Shared\ndescription: d\ndate: 2021-07-15T10:30:00Z\nslug: shared\n---\nbody\n")
	fsys := fstest.MapFS{
		"a.md": &fstest.MapFile{Data: shared},
		"z.md": &fstest.MapFile{Data: shared},
	}

	builder := NewBuilder(NewLoader(fsys, LoaderConfig{}), nil)
	c, report, err := builder.Build(context.Background(), ".")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if c.Len() != 1 {
		t.Fatalf("expected a single post for the shared slug, got %d", c.Len())
	}
	winner, _ := c.SourcePath("shared")
	if winner != "a.md" {
		t.Fatalf("expected a.md to win the slug, got %q", winner)
	}
	if len(report.Duplicates) != 1 || report.Duplicates[0].Path != "z.md" {
		t.Fatalf("expected z.md reported as duplicate, got %#v", report.Duplicates)
	}
}

func TestBuilderRequiresLoader(t *testing.T) {
	builder := NewBuilder(nil, nil)
	if _, _, err := builder.Build(context.Background(), "."); !errors.Is(err, ErrLoaderRequired) {
		t.Fatalf("expected ErrLoaderRequired, got %v", err)
	}
}

func TestBuilderWrapsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	builder := NewBuilder(NewLoader(fstest.MapFS{}, LoaderConfig{}), nil)
	_, _, err := builder.Build(ctx, ".")
	if err == nil {
		t.Fatalf("expected an error from a cancelled build")
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled in the chain, got %v", err)
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected a command-category error, got %v", err)
	}
}
