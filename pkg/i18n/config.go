package i18n

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kaleidos/skame/pkg/config"
)

// Config configures a Translator from the environment.
type Config struct {
	// Dir holds application catalogues. Empty means builtin messages only.
	Dir             string `env:"I18N_DIR"`
	DefaultLanguage string `env:"I18N_DEFAULT_LANGUAGE" envDefault:"en"`
	// Format restricts Dir to one format: yaml, json or auto.
	Format         string `env:"I18N_FORMAT" envDefault:"auto"`
	LogMissingKeys bool   `env:"I18N_LOG_MISSING_KEYS" envDefault:"false"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Adapter returns the builtin catalogue merged with the catalogues in Dir.
func (c Config) Adapter() (TranslationAdapter, error) {
	if c.Dir == "" {
		return Builtin(), nil
	}

	var parser Parser
	switch c.Format {
	case "", "auto":
	case "yaml", "yml":
		parser = NewYAMLParser()
	case "json":
		parser = NewJSONParser()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, c.Format)
	}
	return MultiAdapter{Builtin(), NewDirectoryAdapter(parser, c.Dir)}, nil
}

// NewFromConfig builds a Translator from the environment.
func NewFromConfig(ctx context.Context, log *slog.Logger) (*Translator, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	adapter, err := cfg.Adapter()
	if err != nil {
		return nil, err
	}
	return NewTranslator(ctx, adapter,
		WithDefaultLanguage(cfg.DefaultLanguage),
		WithLogger(log),
		WithMissingTranslationsLogging(cfg.LogMissingKeys),
	)
}
