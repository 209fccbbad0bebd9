package gen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDatabase(t *testing.T) {
	t.Run("supported backends", func(t *testing.T) {
		for _, name := range []string{"postgres", "mysql"} {
			d, err := ParseDatabase(name)
			require.NoError(t, err)
			assert.Equal(t, name, d.String())
			assert.True(t, d.Valid())
		}
	})

	t.Run("unsupported backend is never defaulted", func(t *testing.T) {
		_, err := ParseDatabase("oracle")
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
		assert.True(t, errors.Is(err, ErrInvalidConfig))

		var cerr *ConfigError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, "Database", cerr.Option)
		assert.Equal(t, "oracle", cerr.Value)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := ParseDatabase("")
		require.Error(t, err)
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, Postgres, cfg.Database)
	assert.False(t, cfg.Whitelabel)
	assert.False(t, cfg.RBAC)
	assert.False(t, cfg.Multitenant)
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		err := Config{}.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidConfig))
	})

	t.Run("all flags on is valid", func(t *testing.T) {
		cfg := Config{Database: MySQL, Whitelabel: true, RBAC: true, Multitenant: true}
		assert.NoError(t, cfg.Validate())
	})
}
