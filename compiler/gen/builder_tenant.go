package gen

// Inclusion tables for the tenant family. The family itself is gated on
// the multitenancy flag; branding fields additionally depend on
// whitelabel.
var (
	createTenantRequestFields = []fieldSpec{
		{key: "tenant-name"},
		{key: "tenant-slug"},
		{key: "brand-name", when: whenWhitelabel},
		{key: "brand-logo-url", when: whenWhitelabel},
	}

	updateTenantRequestFields = []fieldSpec{
		{key: "tenant-name"},
		{key: "brand-name", when: whenWhitelabel},
		{key: "brand-logo-url", when: whenWhitelabel},
	}

	tenantModelFields = []fieldSpec{
		{key: "tenant-id"},
		{key: "tenant-name"},
		{key: "tenant-slug"},
		{key: "brand-name", when: whenWhitelabel},
		{key: "brand-logo-url", when: whenWhitelabel},
		{key: "created-at"},
		{key: "updated-at"},
	}
)

// buildTenant yields the tenant management DTOs and the tenant relation.
func buildTenant(bc BuildContext) ([]Definition, error) {
	createFields, err := resolveFields(bc.Config, createTenantRequestFields)
	if err != nil {
		return nil, err
	}
	updateFields, err := resolveFields(bc.Config, updateTenantRequestFields)
	if err != nil {
		return nil, err
	}
	modelFields, err := resolveFields(bc.Config, tenantModelFields)
	if err != nil {
		return nil, err
	}

	return []Definition{
		{
			Name:   "create_tenant",
			Kind:   KindDTO,
			Fields: createFields,
			DTO:    &DTOMeta{Package: "tenant", TypeName: "CreateTenantRequest"},
		},
		{
			Name:   "update_tenant",
			Kind:   KindDTO,
			Fields: updateFields,
			DTO:    &DTOMeta{Package: "tenant", TypeName: "UpdateTenantRequest"},
		},
		{
			Name:   "tenant",
			Kind:   KindModel,
			Fields: modelFields,
			Model: &ModelMeta{
				Table:      "tenant",
				Group:      "tenant",
				PrimaryKey: []string{"id"},
			},
		},
	}, nil
}
