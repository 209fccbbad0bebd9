package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnabledFeatures(t *testing.T) {
	t.Run("none by default", func(t *testing.T) {
		assert.Empty(t, DefaultConfig().EnabledFeatures())
	})

	t.Run("documentation order", func(t *testing.T) {
		cfg := Config{Database: Postgres, Whitelabel: true, RBAC: true, Multitenant: true}
		got := cfg.EnabledFeatures()
		assert.Equal(t, []Feature{FeatureRBAC, FeatureMultitenancy, FeatureWhitelabel}, got)
	})

	t.Run("single flag", func(t *testing.T) {
		cfg := Config{Database: Postgres, Multitenant: true}
		got := cfg.EnabledFeatures()
		assert.Equal(t, []Feature{FeatureMultitenancy}, got)
	})
}

func TestAllFeaturesAreOffByDefault(t *testing.T) {
	for _, f := range AllFeatures {
		assert.False(t, f.Default, f.Name)
		assert.NotEmpty(t, f.Description, f.Name)
	}
}
