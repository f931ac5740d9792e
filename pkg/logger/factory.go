package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/kaleidos/skame/pkg/config"
)

// Format represents logger output format.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Config is the environment driven logger configuration.
type Config struct {
	Level       string `env:"LOG_LEVEL" envDefault:"info"`
	Format      string `env:"LOG_FORMAT" envDefault:"json"`
	Environment string `env:"APP_ENV"`
}

// Option configures logger creation.
type Option func(*options)

type options struct {
	level      slog.Level
	format     Format
	output     io.Writer
	attrs      []slog.Attr
	extractors []ContextExtractor
}

func WithLevel(l slog.Level) Option {
	return func(o *options) { o.level = l }
}

// WithFormat sets output format. It panics on an unknown format so that a
// misconfigured service fails at startup.
func WithFormat(f Format) Option {
	return func(o *options) {
		switch f {
		case FormatJSON, FormatText:
			o.format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

// WithOutput sets the destination. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// WithAttr adds static attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(o *options) {
		o.attrs = append(o.attrs, attrs...)
	}
}

// WithEnvironment tags every record with the deployment environment
// (development, staging, production). Empty values are ignored.
func WithEnvironment(env string) Option {
	return func(o *options) {
		if env != "" {
			o.attrs = append(o.attrs, slog.String("env", env))
		}
	}
}

// WithContextExtractors registers functions that add attributes from the
// context passed to the *Context logging methods.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(o *options) {
		for _, ex := range extractors {
			if ex != nil {
				o.extractors = append(o.extractors, ex)
			}
		}
	}
}

// WithContextValue logs ctx.Value(key) under name when it is set.
func WithContextValue(name string, key any) Option {
	return func(o *options) {
		if name == "" || key == nil {
			return
		}
		o.extractors = append(o.extractors, func(ctx context.Context) (slog.Attr, bool) {
			if v := ctx.Value(key); v != nil {
				return slog.Any(name, v), true
			}
			return slog.Attr{}, false
		})
	}
}

// New creates a configured slog.Logger. Defaults are JSON on stdout at INFO.
func New(opts ...Option) *slog.Logger {
	o := &options{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(o)
	}

	handlerOpts := &slog.HandlerOptions{Level: o.level}

	var handler slog.Handler
	if o.format == FormatText {
		handler = slog.NewTextHandler(o.output, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(o.output, handlerOpts)
	}

	if len(o.attrs) > 0 {
		handler = handler.WithAttrs(o.attrs)
	}

	return slog.New(newContextHandler(handler, o.extractors))
}

// NewFromConfig loads Config from the environment and builds a logger from
// it. Extra options are applied after the configured ones.
func NewFromConfig(opts ...Option) (*slog.Logger, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	base, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return New(append(base, opts...)...), nil
}

// Options converts the configuration into logger options.
func (c Config) Options() ([]Option, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}

	format := Format(strings.ToLower(c.Format))
	if format != FormatJSON && format != FormatText {
		return nil, fmt.Errorf("invalid log format %q: must be %q or %q", c.Format, FormatJSON, FormatText)
	}

	return []Option{WithLevel(level), WithFormat(format), WithEnvironment(c.Environment)}, nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
