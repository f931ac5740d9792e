package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	cacheMu sync.Mutex
	cache   = make(map[reflect.Type]any)

	defaultEnvLoaded sync.Once
)

// Load parses environment variables into v using its env struct tags. The
// first successful result for a type is cached and copied into later calls.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	defaultEnvLoaded.Do(func() {
		// the default .env file is optional
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if cached, ok := cache[key]; ok {
		*v = cached.(T)
		return nil
	}
	return parse(key, v)
}

// MustLoad is Load that panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ForceReload parses v again and replaces the cached value.
func ForceReload[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	cacheMu.Lock()
	defer cacheMu.Unlock()

	return parse(reflect.TypeFor[T](), v)
}

// parse must be called with cacheMu held.
func parse[T any](key reflect.Type, v *T) error {
	var fresh T
	if err := env.Parse(&fresh); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	cache[key] = fresh
	*v = fresh
	return nil
}

// LoadEnv reads the given .env files into the process environment. Values
// from later files override earlier ones and existing variables.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	if err := godotenv.Overload(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv is LoadEnv that panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(err)
	}
}

// ResetCache drops every cached configuration.
func ResetCache() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	clear(cache)
}
