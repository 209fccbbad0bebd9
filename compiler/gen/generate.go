package gen

import (
	"context"
	"time"
)

// A Renderer turns definitions of one artifact kind into text. Renderers
// must be deterministic, order-preserving total functions over any
// well-formed definition of their kind.
type Renderer interface {
	// Kind reports the artifact kind the renderer handles.
	Kind() ArtifactKind
	// Render produces the textual representation of the definition.
	Render(def Definition) ([]byte, error)
}

// A File is one rendered artifact ready for materialization.
type File struct {
	Path    string
	Content []byte
}

// A Sink persists rendered files. Implementations must create parent
// directories before writing and overwrite existing files idempotently.
// The sink is the only side-effecting collaborator of a run.
type Sink interface {
	WriteFile(path string, content []byte) error
}

// Generator drives one generation run: Idle -> Planning -> Building ->
// Rendering -> Done, with Failed reachable from every step. A failure in
// any builder or renderer aborts the run before anything reaches the
// sink; generation is all-or-nothing.
type Generator struct {
	bc        BuildContext
	renderers map[ArtifactKind]Renderer
	sink      Sink
	state     State
}

// NewGenerator creates a generator for the given configuration. Renderers
// and a sink must be set before Run.
func NewGenerator(cfg Config) *Generator {
	return &Generator{
		bc:        BuildContext{Config: cfg},
		renderers: make(map[ArtifactKind]Renderer),
		state:     StateIdle,
	}
}

// WithGeneratedAt injects the documentation timestamp. Runs with equal
// configurations and timestamps produce byte-identical output.
func (g *Generator) WithGeneratedAt(t time.Time) *Generator {
	g.bc.GeneratedAt = t
	return g
}

// WithVersion records the generator version in documentation footers.
func (g *Generator) WithVersion(v string) *Generator {
	g.bc.Version = v
	return g
}

// WithRenderers registers renderers by their artifact kind. Registering a
// second renderer for a kind replaces the first.
func (g *Generator) WithRenderers(renderers ...Renderer) *Generator {
	for _, r := range renderers {
		if r != nil {
			g.renderers[r.Kind()] = r
		}
	}
	return g
}

// WithSink sets the materialization boundary.
func (g *Generator) WithSink(s Sink) *Generator {
	g.sink = s
	return g
}

// State returns the current lifecycle state.
func (g *Generator) State() State {
	return g.state
}

// Run executes one generation run and hands the ordered file list to the
// sink. The context is only consulted between phases; the core performs
// no blocking work of its own.
func (g *Generator) Run(ctx context.Context) error {
	files, err := g.Files(ctx)
	if err != nil {
		return err
	}
	if g.sink == nil {
		g.state = StateFailed
		return NewConfigError("Sink", nil, "no sink set: call WithSink() before Run()")
	}
	for _, f := range files {
		if err := g.sink.WriteFile(f.Path, f.Content); err != nil {
			g.state = StateFailed
			return NewGenerationError("", f.Path, "writing artifact", err)
		}
	}
	g.state = StateDone
	return nil
}

// Files builds and renders the full artifact set in memory without
// touching the sink. Callers wanting a dry run use this directly.
func (g *Generator) Files(ctx context.Context) ([]File, error) {
	plan, err := g.Plan(ctx)
	if err != nil {
		return nil, err
	}

	g.state = StateRendering
	if err := ctx.Err(); err != nil {
		g.state = StateFailed
		return nil, err
	}
	files := make([]File, 0, len(plan.Entries))
	for _, e := range plan.Entries {
		r, ok := g.renderers[e.Kind]
		if !ok {
			g.state = StateFailed
			return nil, NewConfigError("Renderers", e.Kind.String(), "no renderer registered for artifact kind")
		}
		content, err := r.Render(e.Def)
		if err != nil {
			g.state = StateFailed
			return nil, NewGenerationError("", e.Path, "rendering artifact "+e.Def.Name, err)
		}
		files = append(files, File{Path: e.Path, Content: content})
	}
	return files, nil
}

// Plan runs the planning and building phases only.
func (g *Generator) Plan(ctx context.Context) (*Plan, error) {
	g.state = StatePlanning
	if err := ctx.Err(); err != nil {
		g.state = StateFailed
		return nil, err
	}
	if err := g.bc.Config.Validate(); err != nil {
		g.state = StateFailed
		return nil, err
	}

	g.state = StateBuilding
	plan, err := BuildPlan(g.bc)
	if err != nil {
		g.state = StateFailed
		return nil, err
	}
	return plan, nil
}
