// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct parsing. Each configuration type is
// parsed once and cached for the lifetime of the process.
//
//	type Config struct {
//	    MaxBodySize int64  `env:"BINDER_MAX_BODY_SIZE" envDefault:"1048576"`
//	    Language    string `env:"BINDER_DEFAULT_LANGUAGE" envDefault:"en"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// The default .env file in the working directory is read on the first Load
// when present. LoadEnv reads explicit files; later files override earlier
// ones. ResetCache and ForceReload exist for tests that change the
// environment between loads.
package config
