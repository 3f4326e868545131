// Package corpus turns a directory of markdown posts with YAML headers into
// a validated, identifier-keyed collection ready for an external site
// generator: parse, collect, order, and optionally render bodies or encode
// syndication feeds.
package corpus

import (
	"context"
	"io/fs"

	internal "github.com/goliatone/go-corpus/internal/corpus"
	"github.com/goliatone/go-corpus/internal/feed"
	"github.com/goliatone/go-corpus/internal/logging"
	"github.com/goliatone/go-corpus/internal/markdown"
	"github.com/goliatone/go-corpus/internal/post"
	"github.com/goliatone/go-corpus/pkg/interfaces"
)

type (
	Post          = post.Post
	ParseError    = post.ParseError
	Corpus        = internal.Corpus
	Loader        = internal.Loader
	LoaderConfig  = internal.LoaderConfig
	Entry         = internal.Entry
	Builder       = internal.Builder
	Report        = internal.Report
	Duplicate     = internal.Duplicate
	ChannelConfig = feed.ChannelConfig
	ParseOptions  = interfaces.ParseOptions
)

var (
	ErrMalformedHeader = post.ErrMalformedHeader
	ErrMissingField    = post.ErrMissingField
	ErrMalformedDate   = post.ErrMalformedDate
	ErrMalformedTags   = post.ErrMalformedTags
	ErrUnknownField    = post.ErrUnknownField
	ErrInvalidField    = post.ErrInvalidField
	ErrLoaderRequired  = internal.ErrLoaderRequired
)

// Parse decodes a single post source into a Post. Parsing is pure: no state
// survives between calls and the input is never mutated.
func Parse(source []byte) (*Post, error) {
	return post.Parse(source)
}

// ParseNamed decodes a single post source, recording name (usually the file
// path) on failures and using its stem as a slug fallback.
func ParseNamed(name string, source []byte) (*Post, error) {
	return post.ParseNamed(name, source)
}

// NewLoader constructs a post file loader over the supplied filesystem.
func NewLoader(filesystem fs.FS, cfg LoaderConfig) *Loader {
	return internal.NewLoader(filesystem, cfg)
}

// NewBuilder constructs a corpus builder. The provider may be nil to drop
// skip diagnostics.
func NewBuilder(loader *Loader, provider interfaces.LoggerProvider) *Builder {
	return internal.NewBuilder(loader, provider)
}

// Build is the batteries-included entry point: it walks the filesystem per
// cfg, parses every matching file, and assembles the corpus. Invalid posts
// are skipped and recorded in the Report.
func Build(ctx context.Context, filesystem fs.FS, cfg Config) (*Corpus, *Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	provider, err := NewLoggerProvider(cfg.Logging)
	if err != nil {
		return nil, nil, err
	}

	builder := NewBuilder(NewLoader(filesystem, cfg.Loader), provider)
	return builder.Build(ctx, ".")
}

// NewRenderer returns a goldmark-backed body renderer with the supplied
// defaults.
func NewRenderer(defaults ParseOptions) interfaces.MarkdownParser {
	return markdown.NewGoldmarkRenderer(defaults)
}

// RSS encodes posts into an RSS 2.0 feed document.
func RSS(cfg ChannelConfig, posts []*Post) ([]byte, error) {
	return feed.RSS(cfg, posts)
}

// Atom encodes posts into an Atom 1.0 feed document.
func Atom(cfg ChannelConfig, posts []*Post) ([]byte, error) {
	return feed.Atom(cfg, posts)
}

// NoOpLogger returns a logger that drops every entry.
func NoOpLogger() interfaces.Logger {
	return logging.NoOp()
}
