package gen

import "github.com/forgeworks/authforge/catalog"

// Inclusion tables for the core schema models.
var (
	userModelFields = []fieldSpec{
		{key: "user-id"},
		{key: "user-email"},
		{key: "user-password-hash"},
		{key: "user-name"},
		{key: catalog.KeyTenantRef, when: whenMultitenant},
		{key: "brand-name", when: whenWhitelabel},
		{key: "brand-logo-url", when: whenWhitelabel},
		{key: "created-at"},
		{key: "updated-at"},
	}

	userModelForeignKeys = []fkSpec{
		{
			fk:   ForeignKey{Column: "tenant_id", RefTable: "tenant", RefColumn: "id", OnDelete: "CASCADE"},
			when: whenMultitenant,
		},
	}

	sessionModelFields = []fieldSpec{
		{key: "session-id"},
		{key: "user-ref"},
		{key: "session-token"},
		{key: "session-expires-at"},
		{key: "created-at"},
	}
)

// buildCoreModels yields the user and session schema models. The family is
// always active; only its field set varies with the configuration.
func buildCoreModels(bc BuildContext) ([]Definition, error) {
	userFields, err := resolveFields(bc.Config, userModelFields)
	if err != nil {
		return nil, err
	}
	sessionFields, err := resolveFields(bc.Config, sessionModelFields)
	if err != nil {
		return nil, err
	}

	return []Definition{
		{
			Name:   "user",
			Kind:   KindModel,
			Fields: userFields,
			Model: &ModelMeta{
				Table:       "user",
				Group:       "core",
				PrimaryKey:  []string{"id"},
				ForeignKeys: resolveForeignKeys(bc.Config, userModelForeignKeys),
			},
		},
		{
			Name:   "session",
			Kind:   KindModel,
			Fields: sessionFields,
			Model: &ModelMeta{
				Table:      "session",
				Group:      "core",
				PrimaryKey: []string{"id"},
				ForeignKeys: []ForeignKey{
					{Column: "user_id", RefTable: "user", RefColumn: "id", OnDelete: "CASCADE"},
				},
			},
		},
	}, nil
}
