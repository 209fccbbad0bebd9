// Package authforge generates the artifacts of an authentication
// subsystem from a single configuration: request DTOs with validation,
// the relational schema, an environment template and documentation. All
// artifacts are derived from one field catalog, so enabling a feature
// flag changes every artifact that depends on it in lockstep.
package authforge

import (
	"context"
	"time"

	"github.com/forgeworks/authforge/compiler/gen"
	"github.com/forgeworks/authforge/compiler/gen/render"
)

// Version is the generator version stamped into documentation footers
// and the run manifest.
const Version = "0.1.0"

// NewGenerator returns a generator for the configuration with the
// default renderer set registered. Callers add a sink and optionally a
// timestamp before Run.
func NewGenerator(cfg gen.Config) *gen.Generator {
	return gen.NewGenerator(cfg).
		WithVersion(Version).
		WithRenderers(render.All(cfg.Database)...)
}

// Generate runs one full generation into the sink, stamping the
// documentation with the given time.
func Generate(ctx context.Context, cfg gen.Config, sink gen.Sink, now time.Time) error {
	return NewGenerator(cfg).
		WithGeneratedAt(now).
		WithSink(sink).
		Run(ctx)
}

// Files renders the full artifact set in memory without materializing
// it. Useful for dry runs and diffing against an existing tree.
func Files(ctx context.Context, cfg gen.Config) ([]gen.File, error) {
	return NewGenerator(cfg).Files(ctx)
}
