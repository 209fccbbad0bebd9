package gen

import "strings"

// buildDocs yields the documentation pages. It runs last in the family
// order and reads the same inclusion tables as the DTO and schema
// builders, so every page describes exactly what the other artifacts
// contain under the current configuration.
func buildDocs(bc BuildContext) ([]Definition, error) {
	cfg := bc.Config

	root, err := buildRootDoc(bc)
	if err != nil {
		return nil, err
	}
	defs := []Definition{root}

	auth, err := buildAuthDoc(bc)
	if err != nil {
		return nil, err
	}
	defs = append(defs, auth)

	if cfg.RBAC {
		page, err := buildRBACDoc(bc)
		if err != nil {
			return nil, err
		}
		defs = append(defs, page)
	}
	if cfg.Multitenant {
		page, err := buildTenancyDoc(bc)
		if err != nil {
			return nil, err
		}
		defs = append(defs, page)
	}
	return defs, nil
}

func buildRootDoc(bc BuildContext) (Definition, error) {
	cfg := bc.Config

	var features strings.Builder
	features.WriteString("- Database backend: `" + string(cfg.Database) + "`\n")
	for _, f := range cfg.EnabledFeatures() {
		features.WriteString("- " + f.Name + ": " + f.Description + "\n")
	}
	if len(cfg.EnabledFeatures()) == 0 {
		features.WriteString("- No optional features enabled.\n")
	}

	userFields, err := resolveFields(cfg, userModelFields)
	if err != nil {
		return Definition{}, err
	}

	links := []DocLink{
		{Title: "Authentication", Path: "authentication.md"},
	}
	if cfg.RBAC {
		links = append(links, DocLink{Title: "Role-based access control", Path: "rbac.md"})
	}
	if cfg.Multitenant {
		links = append(links, DocLink{Title: "Multi-tenancy", Path: "tenancy.md"})
	}

	return Definition{
		Name: "root",
		Kind: KindDoc,
		Doc: &DocMeta{
			Title: "Authentication service scaffold",
			Slug:  "",
			Intro: "This directory was produced by authforge from a single configuration. " +
				"Every artifact below is derived from the same field catalog, so the DTOs, " +
				"the relational schema and these pages always agree.",
			Sections: []DocSection{
				{Heading: "Enabled features", Body: features.String()},
				{Heading: "User model", Fields: userFields},
				{
					Heading: "Layout",
					Body: "- `dto/` request payload types with validation\n" +
						"- `db/schema/` relational schema, one file per relation\n" +
						"- `.env.example` environment template with placeholder values\n" +
						"- `docs/` these pages\n",
				},
			},
			Links:       links,
			GeneratedAt: bc.GeneratedAt,
			Version:     bc.Version,
		},
	}, nil
}

func buildAuthDoc(bc BuildContext) (Definition, error) {
	cfg := bc.Config

	login, err := resolveFields(cfg, loginRequestFields)
	if err != nil {
		return Definition{}, err
	}
	register, err := resolveFields(cfg, registerRequestFields)
	if err != nil {
		return Definition{}, err
	}
	refresh, err := resolveFields(cfg, refreshRequestFields)
	if err != nil {
		return Definition{}, err
	}
	session, err := resolveFields(cfg, sessionModelFields)
	if err != nil {
		return Definition{}, err
	}

	return Definition{
		Name: "authentication",
		Kind: KindDoc,
		Doc: &DocMeta{
			Title: "Authentication",
			Slug:  "authentication",
			Intro: "Request payloads and session storage for the authentication flows.",
			Sections: []DocSection{
				{Heading: "Login request", Fields: login},
				{Heading: "Registration request", Fields: register},
				{Heading: "Token refresh request", Fields: refresh},
				{Heading: "Session model", Fields: session},
			},
			Links:       []DocLink{{Title: "Overview", Path: "README.md"}},
			GeneratedAt: bc.GeneratedAt,
			Version:     bc.Version,
		},
	}, nil
}

func buildRBACDoc(bc BuildContext) (Definition, error) {
	cfg := bc.Config

	createRole, err := resolveFields(cfg, createRoleRequestFields)
	if err != nil {
		return Definition{}, err
	}
	assignRoles, err := resolveFields(cfg, assignRolesRequestFields)
	if err != nil {
		return Definition{}, err
	}
	role, err := resolveFields(cfg, roleModelFields)
	if err != nil {
		return Definition{}, err
	}
	permission, err := resolveFields(cfg, permissionModelFields)
	if err != nil {
		return Definition{}, err
	}

	return Definition{
		Name: "rbac",
		Kind: KindDoc,
		Doc: &DocMeta{
			Title: "Role-based access control",
			Slug:  "rbac",
			Intro: "Roles group permissions; users receive roles through assignments. " +
				"The `user_role` and `role_permission` relations carry the many-to-many links.",
			Sections: []DocSection{
				{Heading: "Create role request", Fields: createRole},
				{Heading: "Assign roles request", Fields: assignRoles},
				{Heading: "Role model", Fields: role},
				{Heading: "Permission model", Fields: permission},
			},
			Links:       []DocLink{{Title: "Overview", Path: "README.md"}},
			GeneratedAt: bc.GeneratedAt,
			Version:     bc.Version,
		},
	}, nil
}

func buildTenancyDoc(bc BuildContext) (Definition, error) {
	cfg := bc.Config

	create, err := resolveFields(cfg, createTenantRequestFields)
	if err != nil {
		return Definition{}, err
	}
	update, err := resolveFields(cfg, updateTenantRequestFields)
	if err != nil {
		return Definition{}, err
	}
	model, err := resolveFields(cfg, tenantModelFields)
	if err != nil {
		return Definition{}, err
	}

	return Definition{
		Name: "tenancy",
		Kind: KindDoc,
		Doc: &DocMeta{
			Title: "Multi-tenancy",
			Slug:  "tenancy",
			Intro: "Tenants partition user data. Every user-scoped relation and request " +
				"payload carries an optional `tenant_id` reference.",
			Sections: []DocSection{
				{Heading: "Create tenant request", Fields: create},
				{Heading: "Update tenant request", Fields: update},
				{Heading: "Tenant model", Fields: model},
			},
			Links:       []DocLink{{Title: "Overview", Path: "README.md"}},
			GeneratedAt: bc.GeneratedAt,
			Version:     bc.Version,
		},
	}, nil
}
