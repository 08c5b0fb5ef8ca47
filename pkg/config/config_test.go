package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guardkit/pkg/config"
)

func TestLoad(t *testing.T) {
	t.Run("populates struct from environment", func(t *testing.T) {
		type fromEnv struct {
			Name  string `env:"GUARDKIT_TEST_NAME"`
			Limit int    `env:"GUARDKIT_TEST_LIMIT" envDefault:"10"`
		}

		t.Setenv("GUARDKIT_TEST_NAME", "guarded")

		var cfg fromEnv
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "guarded", cfg.Name)
		assert.Equal(t, 10, cfg.Limit)
	})

	t.Run("applies defaults when variables are unset", func(t *testing.T) {
		type withDefaults struct {
			Depth int `env:"GUARDKIT_TEST_DEPTH" envDefault:"4"`
		}

		var cfg withDefaults
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, 4, cfg.Depth)
	})

	t.Run("caches per struct type", func(t *testing.T) {
		type cached struct {
			Value string `env:"GUARDKIT_TEST_CACHED" envDefault:"first"`
		}

		var first cached
		require.NoError(t, config.Load(&first))
		require.Equal(t, "first", first.Value)

		// A changed environment must not affect the cached type.
		t.Setenv("GUARDKIT_TEST_CACHED", "second")

		var again cached
		require.NoError(t, config.Load(&again))
		assert.Equal(t, "first", again.Value)
	})

	t.Run("rejects nil target", func(t *testing.T) {
		err := config.Load[struct{}](nil)
		assert.ErrorIs(t, err, config.ErrNilTarget)
	})

	t.Run("reports unparsable values", func(t *testing.T) {
		type broken struct {
			Count int `env:"GUARDKIT_TEST_BROKEN"`
		}

		t.Setenv("GUARDKIT_TEST_BROKEN", "not-a-number")

		var cfg broken
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParse)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("returns silently on success", func(t *testing.T) {
		type ok struct {
			V string `env:"GUARDKIT_TEST_MUST" envDefault:"x"`
		}

		var cfg ok
		assert.NotPanics(t, func() {
			config.MustLoad(&cfg)
		})
		assert.Equal(t, "x", cfg.V)
	})

	t.Run("panics on failure", func(t *testing.T) {
		assert.Panics(t, func() {
			config.MustLoad[struct{}](nil)
		})
	})
}
