package gen

// FeatureStage describes the maturity of a generator feature.
type FeatureStage int

const (
	_ FeatureStage = iota

	// Experimental features are in development and may change shape.
	Experimental

	// Beta features are documented and no breaking changes are expected.
	Beta

	// Stable features have been exercised in production scaffolds.
	Stable
)

// A Feature describes one optional capability of the generator. Feature
// values are metadata only: the documentation builder renders them, but
// conditional logic always tests the Config flags directly.
type Feature struct {
	// Name of the feature.
	Name string

	// Stage of the feature.
	Stage FeatureStage

	// Default indicates if the feature is enabled by default.
	Default bool

	// Description of what enabling the feature changes in the output.
	Description string
}

var (
	// FeatureRBAC describes the role-based access control family.
	FeatureRBAC = Feature{
		Name:        "rbac",
		Stage:       Stable,
		Default:     false,
		Description: "Role-based access control: role and permission relations plus role management DTOs",
	}

	// FeatureMultitenancy describes the tenant family and the tenant
	// identifier threaded through user-facing artifacts.
	FeatureMultitenancy = Feature{
		Name:        "multitenancy",
		Stage:       Stable,
		Default:     false,
		Description: "Multi-tenancy: tenant relation, tenant management DTOs, and a tenant identifier on every user-scoped artifact",
	}

	// FeatureWhitelabel describes per-account branding fields.
	FeatureWhitelabel = Feature{
		Name:        "whitelabel",
		Stage:       Beta,
		Default:     false,
		Description: "Whitelabel branding: brand name and logo fields on user-scoped artifacts",
	}

	// AllFeatures holds all optional generator features in the order they
	// are documented.
	AllFeatures = []Feature{FeatureRBAC, FeatureMultitenancy, FeatureWhitelabel}
)

// EnabledFeatures returns the features enabled by the configuration, in
// documentation order.
func (c Config) EnabledFeatures() []Feature {
	var features []Feature
	if c.RBAC {
		features = append(features, FeatureRBAC)
	}
	if c.Multitenant {
		features = append(features, FeatureMultitenancy)
	}
	if c.Whitelabel {
		features = append(features, FeatureWhitelabel)
	}
	return features
}
