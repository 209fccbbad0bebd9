package gen

import "errors"

// Option configures a generation run.
type Option func(*Config) error

// WithDatabase sets the relational backend.
func WithDatabase(d Database) Option {
	return func(c *Config) error {
		if !d.Valid() {
			return NewConfigError("Database", string(d), "unsupported database; use postgres or mysql")
		}
		c.Database = d
		return nil
	}
}

// WithDatabaseName sets the relational backend from its string name.
func WithDatabaseName(name string) Option {
	return func(c *Config) error {
		d, err := ParseDatabase(name)
		if err != nil {
			return err
		}
		c.Database = d
		return nil
	}
}

// WithWhitelabel toggles whitelabel branding fields.
func WithWhitelabel(enabled bool) Option {
	return func(c *Config) error {
		c.Whitelabel = enabled
		return nil
	}
}

// WithRBAC toggles the role/permission artifact family.
func WithRBAC(enabled bool) Option {
	return func(c *Config) error {
		c.RBAC = enabled
		return nil
	}
}

// WithMultitenant toggles multi-tenancy support.
func WithMultitenant(enabled bool) Option {
	return func(c *Config) error {
		c.Multitenant = enabled
		return nil
	}
}

// Apply applies options to the config. It returns the first error
// encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors. Returns a joined error
// if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig builds a validated configuration from DefaultConfig plus the
// given options.
func NewConfig(opts ...Option) (Config, error) {
	c := DefaultConfig()
	if err := c.Apply(opts...); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
