// Package markdown renders post bodies into HTML with the goldmark engine.
// Rendering stays out of the parse path so corpus construction remains a
// pure metadata transformation; consumers opt in per post.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/goliatone/go-corpus/pkg/interfaces"
)

// GoldmarkRenderer implements interfaces.MarkdownParser. The engine for the
// default options is built once at construction, so a single renderer can be
// shared across goroutines; per-call option overrides build a fresh engine.
type GoldmarkRenderer struct {
	defaults interfaces.ParseOptions
	engine   goldmark.Markdown
}

// NewGoldmarkRenderer constructs a renderer. Zero-value defaults enable the
// GFM extension set, allow raw HTML, and leave hard wraps off.
func NewGoldmarkRenderer(defaults interfaces.ParseOptions) *GoldmarkRenderer {
	return &GoldmarkRenderer{
		defaults: defaults,
		engine:   engineFor(defaults),
	}
}

// Parse renders body into HTML using the renderer's default options.
func (r *GoldmarkRenderer) Parse(body []byte) ([]byte, error) {
	return r.render(r.engine, body)
}

// ParseWithOptions renders body into HTML using opts instead of the defaults.
func (r *GoldmarkRenderer) ParseWithOptions(body []byte, opts interfaces.ParseOptions) ([]byte, error) {
	return r.render(engineFor(opts), body)
}

func (r *GoldmarkRenderer) render(engine goldmark.Markdown, body []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := engine.Convert(body, &buf); err != nil {
		return nil, fmt.Errorf("markdown render: %w", err)
	}
	return buf.Bytes(), nil
}

func engineFor(opts interfaces.ParseOptions) goldmark.Markdown {
	var rendererOpts []renderer.Option
	if opts.HardWraps {
		rendererOpts = append(rendererOpts, html.WithHardWraps())
	}
	// SafeMode and Sanitize both suppress raw HTML passthrough.
	if !opts.SafeMode && !opts.Sanitize {
		rendererOpts = append(rendererOpts, html.WithUnsafe())
	}

	engineOpts := []goldmark.Option{
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithExtensions(extensionsFor(opts.Extensions)...),
	}
	if len(rendererOpts) > 0 {
		engineOpts = append(engineOpts, goldmark.WithRendererOptions(rendererOpts...))
	}
	return goldmark.New(engineOpts...)
}

// extensionRegistry maps config names to goldmark extenders. Unknown names
// are ignored so host configuration stays forward compatible.
var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
}

func extensionsFor(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{extension.GFM, extension.Linkify, extension.TaskList}
	}

	seen := make(map[string]struct{}, len(names))
	exts := make([]goldmark.Extender, 0, len(names))
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, dup := seen[key]; key == "" || dup {
			continue
		}
		seen[key] = struct{}{}
		if ext, ok := extensionRegistry[key]; ok {
			exts = append(exts, ext)
		}
	}
	return exts
}
