package catalog

import "github.com/forgeworks/authforge/schema/field"

// Reference keys point at another relation's primary identifier. They share
// one naming scheme ("<entity>-ref", column "<entity>_id") so that every
// artifact that needs the reference resolves the exact same descriptor.
const (
	// KeyTenantRef is the tenant reference appended to authentication
	// DTOs, the user model and the root documentation whenever
	// multitenancy is enabled.
	KeyTenantRef = "tenant-ref"
)

var registry = map[string]field.Descriptor{
	// Users.
	"user-id": field.UUID("id").
		Comment("Primary identifier of the user.").
		Descriptor(),
	"user-email": field.Email("email").
		MaxLen(254).
		Unique().
		Comment("Email address the user signs in with.").
		Descriptor(),
	"user-password": field.Password("password").
		MinLen(8).
		MaxLen(72).
		Comment("Plaintext password supplied on login or registration.").
		Descriptor(),
	"user-password-hash": field.String("password_hash").
		MaxLen(255).
		Comment("Argon2id hash of the user password.").
		Descriptor(),
	"user-name": field.String("name").
		MinLen(2).
		MaxLen(64).
		Optional().
		Comment("Display name of the user.").
		Descriptor(),
	"user-ref": field.UUID("user_id").
		Comment("Identifier of the referenced user.").
		Descriptor(),

	// Tenancy.
	"tenant-id": field.UUID("id").
		Comment("Primary identifier of the tenant.").
		Descriptor(),
	KeyTenantRef: field.UUID("tenant_id").
		Optional().
		Comment("Tenant the record belongs to.").
		Descriptor(),
	"tenant-name": field.String("name").
		MinLen(2).
		MaxLen(64).
		Comment("Human-readable tenant name.").
		Descriptor(),
	"tenant-slug": field.String("slug").
		Match(`^[a-z0-9]+(-[a-z0-9]+)*$`).
		MaxLen(63).
		Unique().
		Comment("URL-safe unique tenant slug.").
		Descriptor(),

	// Whitelabel branding.
	"brand-name": field.String("brand_name").
		MaxLen(64).
		Optional().
		Comment("Name shown in place of the default product branding.").
		Descriptor(),
	"brand-logo-url": field.String("brand_logo_url").
		URL().
		MaxLen(2048).
		Optional().
		Comment("Location of the logo used for whitelabel branding.").
		Descriptor(),

	// Sessions and tokens.
	"refresh-token": field.String("refresh_token").
		MinLen(1).
		MaxLen(512).
		Comment("Opaque refresh token issued on login.").
		Descriptor(),
	"session-id": field.UUID("id").
		Comment("Primary identifier of the session.").
		Descriptor(),
	"session-token": field.String("token").
		MaxLen(512).
		Unique().
		Comment("Opaque session token presented by the client.").
		Descriptor(),
	"session-expires-at": field.Time("expires_at").
		Comment("Instant after which the session is no longer valid.").
		Descriptor(),

	// Roles and permissions.
	"role-id": field.UUID("id").
		Comment("Primary identifier of the role.").
		Descriptor(),
	"role-ref": field.UUID("role_id").
		Comment("Identifier of the referenced role.").
		Descriptor(),
	"role-name": field.String("name").
		MinLen(2).
		MaxLen(64).
		Match(`^[a-z][a-z0-9_]*$`).
		Unique().
		Comment("Machine-friendly role name.").
		Descriptor(),
	"role-description": field.String("description").
		MaxLen(255).
		Optional().
		Comment("Free-form description of the role.").
		Descriptor(),
	"role-ids": field.UUIDs("role_ids").
		MinItems(1).
		Comment("Roles to assign to the user.").
		Descriptor(),
	"permission-id": field.UUID("id").
		Comment("Primary identifier of the permission.").
		Descriptor(),
	"permission-ref": field.UUID("permission_id").
		Comment("Identifier of the referenced permission.").
		Descriptor(),
	"permission-name": field.String("name").
		Match(`^[a-z][a-z0-9:_-]*$`).
		MaxLen(128).
		Unique().
		Comment("Namespaced permission name, e.g. \"user:read\".").
		Descriptor(),
	"permission-action": field.Enum("action").
		Values("create", "read", "update", "delete").
		Comment("CRUD action the permission grants.").
		Descriptor(),

	// Shared timestamps.
	"created-at": field.Time("created_at").
		Comment("Instant the record was created.").
		Descriptor(),
	"updated-at": field.Time("updated_at").
		Comment("Instant the record was last updated.").
		Descriptor(),
}

func init() {
	// A descriptor with a build error means the registration itself is
	// broken. Fail at process start rather than mid-run.
	for key, fd := range registry {
		if fd.Err != nil {
			panic("catalog: invalid descriptor for key " + key + ": " + fd.Err.Error())
		}
	}
}
