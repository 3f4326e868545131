package corpus

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/goliatone/go-corpus/internal/post"
)

// LoaderConfig configures how post files are discovered within a base directory.
type LoaderConfig struct {
	// BasePath is the root directory where post documents live.
	BasePath string
	// Pattern limits discovered files to those matching the supplied glob (defaults to "*.md").
	Pattern string
	// Recursive controls whether sub-directories are traversed.
	Recursive bool
}

// Loader turns filesystem paths into parsed post entries.
type Loader struct {
	fs        fs.FS
	basePath  string
	pattern   string
	recursive bool
}

// Entry couples a parsed post with the provenance the builder needs for
// deterministic tie-breaks and change detection.
type Entry struct {
	Path     string
	Post     *post.Post
	Checksum []byte
	ModTime  time.Time
}

// NewLoader constructs a Loader using the provided filesystem and configuration.
func NewLoader(filesystem fs.FS, cfg LoaderConfig) *Loader {
	pattern := cfg.Pattern
	if strings.TrimSpace(pattern) == "" {
		pattern = "*.md"
	}

	return &Loader{
		fs:        filesystem,
		basePath:  filepath.Clean(cfg.BasePath),
		pattern:   pattern,
		recursive: cfg.Recursive,
	}
}

// LoadFile reads and parses a single post document.
func (l *Loader) LoadFile(ctx context.Context, path string) (*Entry, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	rel, err := l.makeRelative(path)
	if err != nil {
		return nil, err
	}
	rel = filepath.ToSlash(rel)

	data, err := fs.ReadFile(l.fs, rel)
	if err != nil {
		return nil, fmt.Errorf("corpus loader read %s: %w", rel, err)
	}

	info, err := fs.Stat(l.fs, rel)
	if err != nil {
		return nil, fmt.Errorf("corpus loader stat %s: %w", rel, err)
	}

	record, err := post.ParseNamed(rel, data)
	if err != nil {
		return nil, err
	}

	sum := sha256.Sum256(data)
	return &Entry{
		Path:     rel,
		Post:     record,
		Checksum: sum[:],
		ModTime:  info.ModTime(),
	}, nil
}

// LoadDirectory discovers post files under dir and returns parsed entries in
// deterministic path order. Per-file parse failures are collected rather
// than aborting the walk; only I/O and cancellation errors are fatal.
func (l *Loader) LoadDirectory(ctx context.Context, dir string) ([]*Entry, []error, error) {
	select {
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	default:
	}

	root, err := l.makeRelative(dir)
	if err != nil {
		return nil, nil, err
	}
	root = filepath.Clean(root)

	var (
		entries []*Entry
		skipped []error
	)

	walkErr := fs.WalkDir(l.fs, root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if d.IsDir() {
			if !l.shouldRecurse(root, path) {
				return fs.SkipDir
			}
			return nil
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		rel := filepath.ToSlash(path)
		if !l.matchesPattern(rel) {
			return nil
		}

		entry, err := l.LoadFile(ctx, rel)
		if err != nil {
			var parseErr *post.ParseError
			if errors.As(err, &parseErr) {
				skipped = append(skipped, err)
				return nil
			}
			return err
		}
		entries = append(entries, entry)
		return nil
	})

	if walkErr != nil {
		return nil, nil, walkErr
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})

	return entries, skipped, nil
}

func (l *Loader) shouldRecurse(root, current string) bool {
	if l.recursive {
		return true
	}
	// If recursion is disabled, only walk the root directory.
	return filepath.Clean(root) == filepath.Clean(current)
}

func (l *Loader) matchesPattern(path string) bool {
	pattern := filepath.ToSlash(l.pattern)
	if strings.Contains(pattern, "**") {
		// Basic support for ** by stripping repeated separators.
		pattern = strings.ReplaceAll(pattern, "**/", "")
	}
	var target string
	if strings.Contains(pattern, "/") {
		target = path
	} else {
		target = filepath.Base(path)
	}
	match, err := filepath.Match(pattern, target)
	if err != nil {
		return false
	}
	return match
}

func (l *Loader) makeRelative(path string) (string, error) {
	clean := filepath.Clean(path)
	if !filepath.IsAbs(clean) {
		return clean, nil
	}
	if l.basePath == "" {
		return "", fmt.Errorf("corpus loader: absolute path %s provided without base path", path)
	}
	rel, err := filepath.Rel(l.basePath, clean)
	if err != nil {
		return "", fmt.Errorf("corpus loader: make relative %s: %w", path, err)
	}
	return rel, nil
}
