package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeworks/authforge/schema/field"
)

func TestString(t *testing.T) {
	fd := field.String("name").
		MinLen(2).
		MaxLen(64).
		Comment("display name").
		Descriptor()
	assert.NoError(t, fd.Err)
	assert.Equal(t, "name", fd.Name)
	assert.Equal(t, field.TypeString, fd.Type)
	assert.Equal(t, "display name", fd.Comment)
	require.Len(t, fd.Rules, 2)
	assert.Equal(t, field.Rule{Name: field.RuleMinLen, Param: "2"}, fd.Rules[0])
	assert.Equal(t, field.Rule{Name: field.RuleMaxLen, Param: "64"}, fd.Rules[1])

	fd = field.String("slug").Match(`^[a-z0-9-]+$`).Unique().Descriptor()
	assert.NoError(t, fd.Err)
	assert.True(t, fd.Unique)
	require.Len(t, fd.Rules, 1)
	assert.Equal(t, field.RulePattern, fd.Rules[0].Name)

	fd = field.String("bad").Match(`([`).Descriptor()
	assert.Error(t, fd.Err)

	fd = field.String("bad").MaxLen(0).Descriptor()
	assert.Error(t, fd.Err)
}

func TestEmail(t *testing.T) {
	fd := field.Email("email").MaxLen(254).Descriptor()
	assert.NoError(t, fd.Err)
	assert.Equal(t, field.TypeEmail, fd.Type)
	require.Len(t, fd.Rules, 2)
	// The email format rule is intrinsic and declared first.
	assert.Equal(t, field.RuleEmail, fd.Rules[0].Name)
	assert.Equal(t, field.RuleMaxLen, fd.Rules[1].Name)
}

func TestPassword(t *testing.T) {
	fd := field.Password("password").MinLen(8).MaxLen(72).Descriptor()
	assert.NoError(t, fd.Err)
	assert.Equal(t, field.TypePassword, fd.Type)
	assert.False(t, fd.Optional)
	assert.Len(t, fd.Rules, 2)
}

func TestUUID(t *testing.T) {
	fd := field.UUID("tenant_id").Optional().Comment("owning tenant").Descriptor()
	assert.Equal(t, field.TypeUUID, fd.Type)
	assert.True(t, fd.Optional)
	assert.Empty(t, fd.Rules)
}

func TestUUIDs(t *testing.T) {
	fd := field.UUIDs("role_ids").MinItems(1).Descriptor()
	assert.NoError(t, fd.Err)
	assert.Equal(t, field.TypeUUIDSlice, fd.Type)
	require.Len(t, fd.Rules, 1)
	assert.Equal(t, field.Rule{Name: field.RuleMinItems, Param: "1"}, fd.Rules[0])

	fd = field.UUIDs("role_ids").MinItems(0).Descriptor()
	assert.Error(t, fd.Err)
}

func TestEnum(t *testing.T) {
	fd := field.Enum("action").Values("create", "read", "update", "delete").Descriptor()
	assert.NoError(t, fd.Err)
	assert.Equal(t, field.TypeEnum, fd.Type)
	assert.Equal(t, []string{"create", "read", "update", "delete"}, fd.Enums)
	require.Len(t, fd.Rules, 1)
	assert.Equal(t, field.RuleOneOf, fd.Rules[0].Name)
	assert.Equal(t, "create,read,update,delete", fd.Rules[0].Param)

	fd = field.Enum("empty").Descriptor()
	assert.Error(t, fd.Err)
}

func TestBoolAndTime(t *testing.T) {
	fd := field.Bool("active").Optional().Descriptor()
	assert.Equal(t, field.TypeBool, fd.Type)
	assert.True(t, fd.Optional)

	fd = field.Time("created_at").Comment("creation time").Descriptor()
	assert.Equal(t, field.TypeTime, fd.Type)
	assert.Equal(t, "creation time", fd.Comment)
}

func TestClone(t *testing.T) {
	fd := field.String("name").MinLen(2).Descriptor()
	clone := fd.Clone()
	clone.Rules[0].Param = "99"
	clone.Name = "other"

	assert.Equal(t, "2", fd.Rules[0].Param)
	assert.Equal(t, "name", fd.Name)
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "string", field.TypeString.String())
	assert.Equal(t, "uuid", field.TypeUUID.String())
	assert.Equal(t, "[]uuid", field.TypeUUIDSlice.String())
	assert.Equal(t, "invalid", field.Type(200).String())
	assert.True(t, field.TypeEmail.Valid())
	assert.False(t, field.TypeInvalid.Valid())
}

func TestRuleString(t *testing.T) {
	assert.Equal(t, "at least 8 characters", field.Rule{Name: field.RuleMinLen, Param: "8"}.String())
	assert.Equal(t, "valid email address", field.Rule{Name: field.RuleEmail}.String())
	assert.Equal(t, "one of: a,b", field.Rule{Name: field.RuleOneOf, Param: "a,b"}.String())
}
