package gen

import "github.com/forgeworks/authforge/catalog"

// Inclusion tables for the authentication DTOs. The documentation builder
// reads the same tables, so a flag flip changes the DTO, the schema and
// the docs in lockstep.
var (
	loginRequestFields = []fieldSpec{
		{key: "user-email"},
		{key: "user-password"},
		{key: catalog.KeyTenantRef, when: whenMultitenant},
	}

	registerRequestFields = []fieldSpec{
		{key: "user-email"},
		{key: "user-password"},
		{key: "user-name"},
		{key: catalog.KeyTenantRef, when: whenMultitenant},
		{key: "brand-name", when: whenWhitelabel},
		{key: "brand-logo-url", when: whenWhitelabel},
	}

	refreshRequestFields = []fieldSpec{
		{key: "refresh-token"},
	}
)

// buildAuthDTOs yields the login, registration and token-refresh DTO
// definitions. The family is always active.
func buildAuthDTOs(bc BuildContext) ([]Definition, error) {
	dtos := []struct {
		name     string
		typeName string
		specs    []fieldSpec
	}{
		{name: "login", typeName: "LoginRequest", specs: loginRequestFields},
		{name: "register", typeName: "RegisterRequest", specs: registerRequestFields},
		{name: "refresh", typeName: "RefreshRequest", specs: refreshRequestFields},
	}

	defs := make([]Definition, 0, len(dtos))
	for _, d := range dtos {
		fields, err := resolveFields(bc.Config, d.specs)
		if err != nil {
			return nil, err
		}
		defs = append(defs, Definition{
			Name:   d.name,
			Kind:   KindDTO,
			Fields: fields,
			DTO:    &DTOMeta{Package: "auth", TypeName: d.typeName},
		})
	}
	return defs, nil
}
