package gen

import (
	"path"

	"github.com/go-openapi/inflect"
)

// State is the orchestrator's position in the run lifecycle.
type State uint8

const (
	StateIdle State = iota
	StatePlanning
	StateBuilding
	StateRendering
	StateDone
	StateFailed
)

var stateNames = [...]string{
	StateIdle:      "idle",
	StatePlanning:  "planning",
	StateBuilding:  "building",
	StateRendering: "rendering",
	StateDone:      "done",
	StateFailed:    "failed",
}

// String returns the state name.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// A PlanEntry is one artifact the run must produce.
type PlanEntry struct {
	Path string
	Kind ArtifactKind
	Def  Definition
}

// A Plan is the ordered, configuration-determined list of artifacts of one
// run. Paths are unique within a plan, and the same BuildContext always
// yields an identical plan.
type Plan struct {
	Entries []PlanEntry
}

// Paths returns the relative output paths in plan order.
func (p *Plan) Paths() []string {
	paths := make([]string, len(p.Entries))
	for i, e := range p.Entries {
		paths[i] = e.Path
	}
	return paths
}

// BuildPlan validates the configuration, runs the active family builders
// in their fixed order and assembles the plan. Any failure aborts the
// whole plan; no partial plan is ever returned.
func BuildPlan(bc BuildContext) (*Plan, error) {
	if err := bc.Config.Validate(); err != nil {
		return nil, err
	}

	plan := &Plan{}
	seen := make(map[string]string) // path -> family
	for _, fam := range families() {
		if fam.active != nil && !fam.active(bc.Config) {
			continue
		}
		defs, err := fam.build(bc)
		if err != nil {
			return nil, NewGenerationError(fam.name, "", "building definitions", err)
		}
		for _, def := range defs {
			p, err := pathFor(def)
			if err != nil {
				return nil, NewGenerationError(fam.name, "", "resolving artifact path", err)
			}
			if prev, ok := seen[p]; ok {
				return nil, NewGenerationError(fam.name, p, "duplicate artifact path (first produced by family "+prev+")", nil)
			}
			seen[p] = fam.name
			plan.Entries = append(plan.Entries, PlanEntry{Path: p, Kind: def.Kind, Def: def})
		}
	}
	return plan, nil
}

// pathFor derives the deterministic output path of a definition.
func pathFor(def Definition) (string, error) {
	switch def.Kind {
	case KindDTO:
		if def.DTO == nil {
			return "", NewMalformedDefinitionError(def.Name, def.Kind, "missing DTO metadata")
		}
		return path.Join("dto", def.DTO.Package, inflect.Underscore(def.DTO.TypeName)+".go"), nil
	case KindModel:
		if def.Model == nil {
			return "", NewMalformedDefinitionError(def.Name, def.Kind, "missing model metadata")
		}
		return path.Join("db", "schema", def.Model.Table+".sql"), nil
	case KindEnv:
		return ".env.example", nil
	case KindDoc:
		if def.Doc == nil {
			return "", NewMalformedDefinitionError(def.Name, def.Kind, "missing doc metadata")
		}
		if def.Doc.Slug == "" {
			return path.Join("docs", "README.md"), nil
		}
		return path.Join("docs", def.Doc.Slug+".md"), nil
	default:
		return "", NewMalformedDefinitionError(def.Name, def.Kind, "unknown artifact kind")
	}
}
