package corpus

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-corpus/internal/logging/gologger"
	"github.com/goliatone/go-corpus/pkg/interfaces"
)

// Config gathers the runtime options for the batteries-included Build entry
// point. Zero values fall back to DefaultConfig semantics where sensible.
type Config struct {
	Loader   LoaderConfig
	Markdown ParseOptions
	Feed     ChannelConfig
	Logging  LoggingConfig
}

// LoggingConfig selects the go-logger output used for build diagnostics.
// Leave Enabled false to drop diagnostics entirely.
type LoggingConfig struct {
	Enabled   bool
	Level     string
	Format    string
	AddSource bool
}

// DefaultConfig returns the configuration used when hosts do not care about
// tuning: markdown files anywhere under the root, console diagnostics.
func DefaultConfig() Config {
	return Config{
		Loader: LoaderConfig{
			Pattern:   "*.md",
			Recursive: true,
		},
		Markdown: ParseOptions{
			Extensions: []string{"gfm", "linkify", "tasklist"},
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
			Format:  "console",
		},
	}
}

// Validate checks the configuration before a build starts. The feed channel
// is optional and only validated once any of its fields are set.
func (c Config) Validate() error {
	if err := validation.ValidateStruct(&c,
		validation.Field(&c.Logging),
	); err != nil {
		return err
	}
	if c.feedConfigured() {
		return c.Feed.Validate()
	}
	return nil
}

func (c Config) feedConfigured() bool {
	return c.Feed.Title != "" || c.Feed.Link != "" || c.Feed.Description != "" || c.Feed.ItemURL != nil
}

// Renderer returns a goldmark renderer configured with the Markdown options.
func (c Config) Renderer() interfaces.MarkdownParser {
	return NewRenderer(c.Markdown)
}

// Validate checks the logging selection against the formats and levels the
// go-logger adapter understands.
func (c LoggingConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Level, validation.In("", "trace", "debug", "info", "warn", "warning", "error", "fatal")),
		validation.Field(&c.Format, validation.In("", "json", "console", "pretty")),
	)
}

// NewLoggerProvider builds the go-logger provider described by cfg, or nil
// when logging is disabled. Callers pass the result to NewBuilder.
func NewLoggerProvider(cfg LoggingConfig) (interfaces.LoggerProvider, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	provider, err := gologger.NewProvider(gologger.Config{
		Level:     cfg.Level,
		Format:    cfg.Format,
		AddSource: cfg.AddSource,
	})
	if err != nil {
		return nil, err
	}
	return provider, nil
}
