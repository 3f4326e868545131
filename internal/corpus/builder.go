package corpus

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-corpus/internal/logging"
	"github.com/goliatone/go-corpus/pkg/interfaces"
)

// Builder assembles corpora from a loader, skipping and reporting invalid
// documents instead of aborting the whole build.
type Builder struct {
	loader *Loader
	logger interfaces.Logger
}

// NewBuilder constructs a Builder. The logger provider may be nil, in which
// case skip diagnostics are dropped.
func NewBuilder(loader *Loader, provider interfaces.LoggerProvider) *Builder {
	return &Builder{
		loader: loader,
		logger: logging.BuilderLogger(provider),
	}
}

// Build walks dir, parses every matching file, and assembles the corpus.
// Files that fail to parse are recorded in the Report and skipped; only I/O
// and cancellation errors abort the build.
func (b *Builder) Build(ctx context.Context, dir string) (*Corpus, *Report, error) {
	if b == nil || b.loader == nil {
		return nil, nil, ErrLoaderRequired
	}

	entries, skipped, err := b.loader.LoadDirectory(ctx, dir)
	if err != nil {
		return nil, nil, wrapWalkError(err)
	}

	c := New()
	report := newReport()

	for _, skipErr := range skipped {
		report.skip(skipErr)
		b.logger.Warn("skipping invalid post", "error", skipErr)
	}

	for _, entry := range entries {
		if !c.Insert(entry.Path, entry.Post) {
			winner, _ := c.SourcePath(entry.Post.Slug)
			report.duplicate(entry.Post.Slug, entry.Path, winner)
			b.logger.Warn("duplicate slug, keeping earlier source",
				"slug", entry.Post.Slug,
				"path", entry.Path,
				"winner", winner,
			)
			continue
		}
		report.loaded++
	}

	b.logger.Info("corpus build finished",
		"loaded", report.loaded,
		"skipped", len(report.Skipped),
		"duplicates", len(report.Duplicates),
	)

	return c, report, nil
}

// Duplicate records a slug collision between two source files.
type Duplicate struct {
	Slug   string
	Path   string
	Winner string
}

// Report summarises a corpus build: how many posts made it in, which files
// were skipped as invalid, and which slugs collided.
type Report struct {
	loaded     int
	Skipped    []error
	Duplicates []Duplicate
}

func newReport() *Report {
	return &Report{
		Skipped:    []error{},
		Duplicates: []Duplicate{},
	}
}

// Loaded reports how many posts were accepted into the corpus.
func (r *Report) Loaded() int {
	if r == nil {
		return 0
	}
	return r.loaded
}

// Clean reports whether the build completed without skips or collisions.
func (r *Report) Clean() bool {
	return r == nil || (len(r.Skipped) == 0 && len(r.Duplicates) == 0)
}

// Err aggregates every problem the build recorded into a single categorized
// error, or nil when the build was clean. The corpus remains usable either
// way; callers decide whether a dirty build is acceptable.
func (r *Report) Err() error {
	if r.Clean() {
		return nil
	}

	problems := make([]error, 0, len(r.Skipped)+len(r.Duplicates))
	problems = append(problems, r.Skipped...)
	for _, dup := range r.Duplicates {
		problems = append(problems, fmt.Errorf("corpus: duplicate slug %q in %s, kept %s", dup.Slug, dup.Path, dup.Winner))
	}
	return wrapReportError(errors.Join(problems...))
}

func (r *Report) skip(err error) {
	if err != nil {
		r.Skipped = append(r.Skipped, err)
	}
}

func (r *Report) duplicate(slug, path, winner string) {
	r.Duplicates = append(r.Duplicates, Duplicate{
		Slug:   slug,
		Path:   path,
		Winner: winner,
	})
}
