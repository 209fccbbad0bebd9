package gen

import (
	"time"

	"github.com/forgeworks/authforge/schema/field"
)

// ArtifactKind identifies the textual target format of a definition and
// selects the renderer for it.
type ArtifactKind uint8

const (
	KindInvalid ArtifactKind = iota
	// KindDTO is a class-style source artifact (a Go struct with a
	// rule-applying Validate method).
	KindDTO
	// KindModel is one relational schema model rendered as DDL.
	KindModel
	// KindEnv is the environment-variable template.
	KindEnv
	// KindDoc is one narrative documentation page.
	KindDoc

	endKinds
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindDTO:     "dto",
	KindModel:   "model",
	KindEnv:     "env",
	KindDoc:     "doc",
}

// String returns the kind name.
func (k ArtifactKind) String() string {
	if k < endKinds {
		return kindNames[k]
	}
	return kindNames[KindInvalid]
}

// A Definition is the abstract shape of one generated unit: a name, the
// ordered field descriptors that apply under the current configuration,
// and kind-specific metadata. Definitions are built fresh per run and
// hold no reference to their renderer.
type Definition struct {
	// Name identifies the artifact within its family.
	Name string
	// Kind selects the renderer.
	Kind ArtifactKind
	// Fields are the descriptors that apply, in render order.
	Fields []field.Descriptor

	// Exactly one of the following is set, matching Kind.
	DTO   *DTOMeta
	Model *ModelMeta
	Env   *EnvMeta
	Doc   *DocMeta
}

// DTOMeta carries class-style artifact metadata.
type DTOMeta struct {
	// Package is the output package (and directory) the DTO belongs to.
	Package string
	// TypeName is the exported name of the generated struct.
	TypeName string
}

// ForeignKey describes one reference from a model column to another
// relation.
type ForeignKey struct {
	Column    string
	RefTable  string
	RefColumn string
	// OnDelete is the referential action, e.g. "CASCADE".
	OnDelete string
}

// ModelMeta carries relational schema metadata.
type ModelMeta struct {
	// Table is the relation name.
	Table string
	// Group is the relation group the model belongs to (core, rbac,
	// tenant).
	Group string
	// PrimaryKey lists the key columns in order.
	PrimaryKey []string
	// ForeignKeys lists outgoing references in declaration order.
	ForeignKeys []ForeignKey
}

// EnvVar is one environment variable with its placeholder value.
type EnvVar struct {
	Key     string
	Value   string
	Comment string
}

// EnvGroup is a concern-grouped block of environment variables.
type EnvGroup struct {
	Name string
	Vars []EnvVar
}

// EnvMeta carries environment template metadata.
type EnvMeta struct {
	Groups []EnvGroup
}

// DocSection is one heading of a documentation page, optionally carrying
// a field table resolved from the catalog.
type DocSection struct {
	Heading string
	Body    string
	Fields  []field.Descriptor
}

// DocLink is a cross-reference to another artifact in the same plan.
type DocLink struct {
	Title string
	Path  string
}

// DocMeta carries narrative documentation metadata.
type DocMeta struct {
	Title string
	// Slug names the page file; the empty slug is the root README.
	Slug     string
	Intro    string
	Sections []DocSection
	Links    []DocLink
	// GeneratedAt is injected by the orchestrator so that builders never
	// read a clock. A zero value omits the footer timestamp.
	GeneratedAt time.Time
	Version     string
}
