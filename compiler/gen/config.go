package gen

// Database enumerates the supported relational backends.
type Database string

const (
	// Postgres targets PostgreSQL DDL and connection strings.
	Postgres Database = "postgres"
	// MySQL targets MySQL DDL and connection strings.
	MySQL Database = "mysql"
)

// Databases lists all supported backends.
var Databases = []Database{Postgres, MySQL}

// Valid reports whether d is a supported backend.
func (d Database) Valid() bool {
	switch d {
	case Postgres, MySQL:
		return true
	}
	return false
}

// String returns the backend name.
func (d Database) String() string { return string(d) }

// ParseDatabase converts a user-supplied backend name to a Database.
// Unsupported values fail with a ConfigError; they are never defaulted.
func ParseDatabase(s string) (Database, error) {
	d := Database(s)
	if !d.Valid() {
		return "", NewConfigError("Database", s, "unsupported database; use postgres or mysql")
	}
	return d, nil
}

// Config is the closed set of feature flags controlling which artifacts
// and fields are generated. It is a value object: constructed once per run
// and passed by value to every builder and renderer. Builders never read
// configuration from ambient state.
type Config struct {
	// Database selects the relational backend DDL and connection
	// placeholders target.
	Database Database
	// Whitelabel adds per-account branding fields to the generated
	// artifacts.
	Whitelabel bool
	// RBAC emits the role/permission artifact family.
	RBAC bool
	// Multitenant threads a tenant identifier through every artifact
	// that carries user data and emits the tenant artifact family.
	Multitenant bool
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{Database: Postgres}
}

// Validate checks the configuration at the run boundary.
func (c Config) Validate() error {
	if !c.Database.Valid() {
		return NewConfigError("Database", string(c.Database), "unsupported database; use postgres or mysql")
	}
	return nil
}
