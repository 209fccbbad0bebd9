// Package load persists and restores the generation manifest: the
// configuration and provenance of a completed run. A manifest committed
// next to the generated tree lets a later run reproduce the same plan
// without re-asking for flags.
package load

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/forgeworks/authforge/compiler/gen"
)

// ManifestVersion is the current manifest format version. Readers reject
// versions they do not understand instead of guessing.
const ManifestVersion = 1

// DefaultFilename is where a manifest lives inside a generated tree.
const DefaultFilename = "authforge.yaml"

// Backend is the configuration block of the manifest. It mirrors
// gen.Config field for field so that a round trip loses nothing.
type Backend struct {
	Database    string `yaml:"database"`
	Whitelabel  bool   `yaml:"whitelabel"`
	RBAC        bool   `yaml:"rbac"`
	Multitenant bool   `yaml:"multitenant"`
}

// Manifest records one generation run.
type Manifest struct {
	Version   int       `yaml:"version"`
	Timestamp time.Time `yaml:"timestamp"`
	Backend   Backend   `yaml:"backend"`
}

// FromConfig builds the manifest describing a run with the given
// configuration at the given time.
func FromConfig(cfg gen.Config, now time.Time) Manifest {
	return Manifest{
		Version:   ManifestVersion,
		Timestamp: now.UTC(),
		Backend: Backend{
			Database:    cfg.Database.String(),
			Whitelabel:  cfg.Whitelabel,
			RBAC:        cfg.RBAC,
			Multitenant: cfg.Multitenant,
		},
	}
}

// Config reconstructs the generation configuration recorded in the
// manifest, validating the backend name.
func (m Manifest) Config() (gen.Config, error) {
	if m.Version != ManifestVersion {
		return gen.Config{}, fmt.Errorf("load: unsupported manifest version %d (want %d)", m.Version, ManifestVersion)
	}
	db, err := gen.ParseDatabase(m.Backend.Database)
	if err != nil {
		return gen.Config{}, err
	}
	return gen.Config{
		Database:    db,
		Whitelabel:  m.Backend.Whitelabel,
		RBAC:        m.Backend.RBAC,
		Multitenant: m.Backend.Multitenant,
	}, nil
}

// Read decodes a manifest from r.
func Read(r io.Reader) (Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return Manifest{}, fmt.Errorf("load: decoding manifest: %w", err)
	}
	return m, nil
}

// Write encodes the manifest to w.
func (m Manifest) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("load: encoding manifest: %w", err)
	}
	return enc.Close()
}

// ReadFile reads the manifest at path.
func ReadFile(path string) (Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("load: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// WriteFile writes the manifest to path, creating parent directories as
// needed.
func (m Manifest) WriteFile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("load: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	if err := m.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
