package gen

import (
	"time"

	"github.com/forgeworks/authforge/catalog"
	"github.com/forgeworks/authforge/schema/field"
)

// BuildContext is the full input of a generation run. Builders are pure
// functions of it: no clock, environment or randomness is consulted, so
// identical contexts produce structurally identical definitions.
type BuildContext struct {
	Config Config
	// GeneratedAt stamps the documentation footer. Injected explicitly so
	// output stays reproducible.
	GeneratedAt time.Time
	// Version is the generator version recorded in documentation.
	Version string
}

// A predicate decides field or family inclusion from the configuration.
// The same predicate value is shared by every builder that depends on the
// flag, which is what keeps artifacts from drifting apart.
type predicate func(Config) bool

var (
	whenMultitenant predicate = func(c Config) bool { return c.Multitenant }
	whenWhitelabel  predicate = func(c Config) bool { return c.Whitelabel }
	whenRBAC        predicate = func(c Config) bool { return c.RBAC }
)

// fieldSpec is one row of a declarative inclusion table: the catalog key
// to resolve and the predicate under which it applies. A nil predicate
// means the field is always included.
type fieldSpec struct {
	key  string
	when predicate
}

// resolveFields materializes an inclusion table against the configuration,
// preserving declaration order.
func resolveFields(cfg Config, specs []fieldSpec) ([]field.Descriptor, error) {
	fields := make([]field.Descriptor, 0, len(specs))
	for _, s := range specs {
		if s.when != nil && !s.when(cfg) {
			continue
		}
		fd, err := catalog.Resolve(s.key)
		if err != nil {
			return nil, err
		}
		fields = append(fields, fd)
	}
	return fields, nil
}

// fkSpec is the foreign-key analogue of fieldSpec.
type fkSpec struct {
	fk   ForeignKey
	when predicate
}

func resolveForeignKeys(cfg Config, specs []fkSpec) []ForeignKey {
	fks := make([]ForeignKey, 0, len(specs))
	for _, s := range specs {
		if s.when != nil && !s.when(cfg) {
			continue
		}
		fks = append(fks, s.fk)
	}
	return fks
}

// BuilderFunc builds the definitions of one artifact family. A family may
// yield zero, one or several definitions.
type BuilderFunc func(BuildContext) ([]Definition, error)

// family pairs a named artifact family with its activation predicate and
// builder. Families run in the fixed order returned by families().
type family struct {
	name   string
	active predicate // nil means always active
	build  BuilderFunc
}

// families returns the artifact families in their fixed production order.
// Documentation runs last so it can assume all structural artifacts
// already have their final shape.
func families() []family {
	return []family{
		{name: "authentication", build: buildAuthDTOs},
		{name: "schema", build: buildCoreModels},
		{name: "rbac", active: whenRBAC, build: buildRBAC},
		{name: "tenant", active: whenMultitenant, build: buildTenant},
		{name: "environment", build: buildEnv},
		{name: "documentation", build: buildDocs},
	}
}
