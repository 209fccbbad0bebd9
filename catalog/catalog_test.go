package catalog_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeworks/authforge/catalog"
	"github.com/forgeworks/authforge/schema/field"
)

func TestResolve(t *testing.T) {
	t.Run("known key", func(t *testing.T) {
		fd, err := catalog.Resolve("user-email")
		require.NoError(t, err)
		assert.Equal(t, "email", fd.Name)
		assert.Equal(t, field.TypeEmail, fd.Type)
		assert.True(t, fd.Unique)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := catalog.Resolve("no-such-field")
		require.Error(t, err)
		assert.True(t, errors.Is(err, catalog.ErrUnknownKey))

		var uke *catalog.UnknownKeyError
		require.True(t, errors.As(err, &uke))
		assert.Equal(t, "no-such-field", uke.Key)
		assert.Contains(t, err.Error(), "no-such-field")
	})

	t.Run("tenant reference is optional and identifier-typed", func(t *testing.T) {
		fd, err := catalog.Resolve(catalog.KeyTenantRef)
		require.NoError(t, err)
		assert.Equal(t, "tenant_id", fd.Name)
		assert.Equal(t, field.TypeUUID, fd.Type)
		assert.True(t, fd.Optional)
	})
}

// Mutating a resolved descriptor must not leak into the catalog.
func TestResolveReturnsCopy(t *testing.T) {
	fd, err := catalog.Resolve("user-password")
	require.NoError(t, err)
	require.NotEmpty(t, fd.Rules)

	fd.Rules[0].Param = "tampered"
	fd.Comment = "tampered"

	again, err := catalog.Resolve("user-password")
	require.NoError(t, err)
	assert.NotEqual(t, "tampered", again.Rules[0].Param)
	assert.NotEqual(t, "tampered", again.Comment)
}

func TestAllDescriptorsValid(t *testing.T) {
	keys := catalog.Keys()
	require.NotEmpty(t, keys)
	for _, key := range keys {
		fd, err := catalog.Resolve(key)
		require.NoError(t, err, key)
		assert.NoError(t, fd.Err, key)
		assert.NotEmpty(t, fd.Name, key)
		assert.True(t, fd.Type.Valid(), key)
		assert.NotEmpty(t, fd.Comment, key)
	}
}

func TestKeysSorted(t *testing.T) {
	keys := catalog.Keys()
	for i := 1; i < len(keys); i++ {
		assert.Less(t, keys[i-1], keys[i])
	}
}
