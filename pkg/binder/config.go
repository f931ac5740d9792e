package binder

import "github.com/kaleidos/skame/pkg/config"

// Config holds binder limits read from the environment.
type Config struct {
	MaxBodySize      int64  `env:"BINDER_MAX_BODY_SIZE" envDefault:"1048576"`
	MaxMemory        int64  `env:"BINDER_MAX_MEMORY" envDefault:"10485760"`
	MaxMultipartSize int64  `env:"BINDER_MAX_MULTIPART_SIZE" envDefault:"33554432"`
	DefaultLanguage  string `env:"BINDER_DEFAULT_LANGUAGE" envDefault:"en"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Options converts the limits into binder options.
func (c Config) Options() []Option {
	return []Option{
		WithMaxBodySize(c.MaxBodySize),
		WithMaxMemory(c.MaxMemory),
		WithMaxMultipartSize(c.MaxMultipartSize),
	}
}

// HandlerOptions returns the options a Handler needs to honour c.
func (c Config) HandlerOptions() []HandlerOption {
	return []HandlerOption{
		WithBindOptions(c.Options()...),
		WithDefaultLanguage(c.DefaultLanguage),
	}
}
