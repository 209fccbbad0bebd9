package gen

// Inclusion tables for the RBAC family. The whole family is gated on the
// RBAC flag, so the tables themselves carry no predicates.
var (
	createRoleRequestFields = []fieldSpec{
		{key: "role-name"},
		{key: "role-description"},
	}

	assignRolesRequestFields = []fieldSpec{
		{key: "user-ref"},
		{key: "role-ids"},
	}

	roleModelFields = []fieldSpec{
		{key: "role-id"},
		{key: "role-name"},
		{key: "role-description"},
		{key: "created-at"},
	}

	permissionModelFields = []fieldSpec{
		{key: "permission-id"},
		{key: "permission-name"},
		{key: "permission-action"},
		{key: "created-at"},
	}

	userRoleModelFields = []fieldSpec{
		{key: "user-ref"},
		{key: "role-ref"},
		{key: "created-at"},
	}

	rolePermissionModelFields = []fieldSpec{
		{key: "role-ref"},
		{key: "permission-ref"},
		{key: "created-at"},
	}
)

// buildRBAC yields the role management DTOs and the four RBAC relations.
// Active only when the RBAC flag is set; the orchestrator never calls it
// otherwise, so an RBAC-disabled run contains zero RBAC artifacts.
func buildRBAC(bc BuildContext) ([]Definition, error) {
	createFields, err := resolveFields(bc.Config, createRoleRequestFields)
	if err != nil {
		return nil, err
	}
	assignFields, err := resolveFields(bc.Config, assignRolesRequestFields)
	if err != nil {
		return nil, err
	}

	defs := []Definition{
		{
			Name:   "create_role",
			Kind:   KindDTO,
			Fields: createFields,
			DTO:    &DTOMeta{Package: "rbac", TypeName: "CreateRoleRequest"},
		},
		{
			Name:   "assign_roles",
			Kind:   KindDTO,
			Fields: assignFields,
			DTO:    &DTOMeta{Package: "rbac", TypeName: "AssignRolesRequest"},
		},
	}

	models := []struct {
		table string
		specs []fieldSpec
		meta  ModelMeta
	}{
		{
			table: "role",
			specs: roleModelFields,
			meta:  ModelMeta{Table: "role", Group: "rbac", PrimaryKey: []string{"id"}},
		},
		{
			table: "permission",
			specs: permissionModelFields,
			meta:  ModelMeta{Table: "permission", Group: "rbac", PrimaryKey: []string{"id"}},
		},
		{
			table: "user_role",
			specs: userRoleModelFields,
			meta: ModelMeta{
				Table:      "user_role",
				Group:      "rbac",
				PrimaryKey: []string{"user_id", "role_id"},
				ForeignKeys: []ForeignKey{
					{Column: "user_id", RefTable: "user", RefColumn: "id", OnDelete: "CASCADE"},
					{Column: "role_id", RefTable: "role", RefColumn: "id", OnDelete: "CASCADE"},
				},
			},
		},
		{
			table: "role_permission",
			specs: rolePermissionModelFields,
			meta: ModelMeta{
				Table:      "role_permission",
				Group:      "rbac",
				PrimaryKey: []string{"role_id", "permission_id"},
				ForeignKeys: []ForeignKey{
					{Column: "role_id", RefTable: "role", RefColumn: "id", OnDelete: "CASCADE"},
					{Column: "permission_id", RefTable: "permission", RefColumn: "id", OnDelete: "CASCADE"},
				},
			},
		},
	}

	for _, m := range models {
		fields, err := resolveFields(bc.Config, m.specs)
		if err != nil {
			return nil, err
		}
		meta := m.meta
		defs = append(defs, Definition{
			Name:   m.table,
			Kind:   KindModel,
			Fields: fields,
			Model:  &meta,
		})
	}
	return defs, nil
}
