package binder_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaleidos/skame/pkg/binder"
	"github.com/kaleidos/skame/pkg/config"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config.ResetCache()
		t.Cleanup(config.ResetCache)

		cfg, err := binder.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, binder.DefaultMaxBodySize, cfg.MaxBodySize)
		assert.Equal(t, binder.DefaultMaxMemory, cfg.MaxMemory)
		assert.Equal(t, binder.DefaultMaxMultipartSize, cfg.MaxMultipartSize)
		assert.Equal(t, "en", cfg.DefaultLanguage)
	})

	t.Run("limits apply to handlers", func(t *testing.T) {
		config.ResetCache()
		t.Cleanup(config.ResetCache)
		t.Setenv("BINDER_MAX_BODY_SIZE", "16")

		cfg, err := binder.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, int64(16), cfg.MaxBodySize)

		h := binder.Handler(signupSchema(), echo, cfg.HandlerOptions()...)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, jsonRequest(http.MethodPost, "/", `{"email": "`+strings.Repeat("x", 32)+`"}`))
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	t.Run("invalid values", func(t *testing.T) {
		config.ResetCache()
		t.Cleanup(config.ResetCache)
		t.Setenv("BINDER_MAX_MEMORY", "lots")

		_, err := binder.LoadConfig()
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}
