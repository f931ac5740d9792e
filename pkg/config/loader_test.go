package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaleidos/skame/pkg/config"
)

type customConfig struct {
	TestString    string   `env:"TEST_CUSTOM_STRING"`
	TestInt       int      `env:"TEST_CUSTOM_INT"`
	TestBool      bool     `env:"TEST_CUSTOM_BOOL"`
	TestArray     []string `env:"TEST_CUSTOM_ARRAY" envSeparator:","`
	TestWithQuote string   `env:"TEST_CUSTOM_WITH_QUOTES"`
}

type defaultsConfig struct {
	Dir      string `env:"TEST_I18N_DIR" envDefault:"locales"`
	MaxBytes int64  `env:"TEST_MAX_BYTES" envDefault:"1048576"`
}

type requiredConfig struct {
	Required string `env:"TEST_REQUIRED_VALUE,required"`
}

func unsetCustom(t *testing.T) {
	t.Helper()
	for _, key := range []string{"TEST_CUSTOM_STRING", "TEST_CUSTOM_INT", "TEST_CUSTOM_BOOL", "TEST_CUSTOM_ARRAY", "TEST_CUSTOM_WITH_QUOTES"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	config.ResetCache()
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		config.ResetCache()

		var cfg defaultsConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "locales", cfg.Dir)
		assert.Equal(t, int64(1048576), cfg.MaxBytes)
	})

	t.Run("caches per type", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("TEST_I18N_DIR", "first")

		var first defaultsConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("TEST_I18N_DIR", "second")
		var second defaultsConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "first", second.Dir)

		require.NoError(t, config.ForceReload(&second))
		assert.Equal(t, "second", second.Dir)
	})

	t.Run("reports missing required values", func(t *testing.T) {
		config.ResetCache()

		var cfg requiredConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)

		t.Setenv("TEST_REQUIRED_VALUE", "set")
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "set", cfg.Required)
	})

	t.Run("rejects nil pointer", func(t *testing.T) {
		assert.ErrorIs(t, config.Load[defaultsConfig](nil), config.ErrNilPointer)
		assert.ErrorIs(t, config.ForceReload[defaultsConfig](nil), config.ErrNilPointer)
	})

	t.Run("must load panics on failure", func(t *testing.T) {
		config.ResetCache()
		os.Unsetenv("TEST_REQUIRED_VALUE")

		var cfg requiredConfig
		assert.Panics(t, func() { config.MustLoad(&cfg) })
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("reads a file", func(t *testing.T) {
		unsetCustom(t)

		require.NoError(t, config.LoadEnv("testdata/.env.custom"))

		var cfg customConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "custom_value", cfg.TestString)
		assert.Equal(t, 1234, cfg.TestInt)
		assert.True(t, cfg.TestBool)
		assert.Equal(t, []string{"item1", "item2", "item3"}, cfg.TestArray)
		assert.Equal(t, "quoted value", cfg.TestWithQuote)
	})

	t.Run("later files override earlier ones", func(t *testing.T) {
		unsetCustom(t)

		require.NoError(t, config.LoadEnv("testdata/.env.custom", "testdata/.env.override"))

		var cfg customConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "override_value", cfg.TestString)
		assert.Equal(t, 9999, cfg.TestInt)
		assert.True(t, cfg.TestBool)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv("testdata/missing.env")
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
		assert.Panics(t, func() { config.MustLoadEnv("testdata/missing.env") })
	})

	t.Run("no paths is a no-op", func(t *testing.T) {
		assert.NoError(t, config.LoadEnv())
	})
}
