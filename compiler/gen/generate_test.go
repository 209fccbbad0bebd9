package gen

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRenderer renders every definition of one kind to a fixed marker.
type stubRenderer struct {
	kind ArtifactKind
	err  error
}

func (r *stubRenderer) Kind() ArtifactKind { return r.kind }

func (r *stubRenderer) Render(def Definition) ([]byte, error) {
	if r.err != nil {
		return nil, r.err
	}
	return []byte(r.kind.String() + ":" + def.Name), nil
}

func stubRenderers() []Renderer {
	return []Renderer{
		&stubRenderer{kind: KindDTO},
		&stubRenderer{kind: KindModel},
		&stubRenderer{kind: KindEnv},
		&stubRenderer{kind: KindDoc},
	}
}

// recordingSink records every write in order.
type recordingSink struct {
	paths []string
	err   error
}

func (s *recordingSink) WriteFile(path string, content []byte) error {
	if s.err != nil {
		return s.err
	}
	s.paths = append(s.paths, path)
	return nil
}

func TestGeneratorRun(t *testing.T) {
	sink := &recordingSink{}
	g := NewGenerator(Config{Database: Postgres, RBAC: true}).
		WithRenderers(stubRenderers()...).
		WithSink(sink)

	require.Equal(t, StateIdle, g.State())
	require.NoError(t, g.Run(context.Background()))
	assert.Equal(t, StateDone, g.State())

	plan, err := BuildPlan(BuildContext{Config: Config{Database: Postgres, RBAC: true}})
	require.NoError(t, err)
	assert.Equal(t, plan.Paths(), sink.paths, "sink receives files in plan order")
}

func TestGeneratorFilesWithoutSink(t *testing.T) {
	g := NewGenerator(DefaultConfig()).WithRenderers(stubRenderers()...)

	files, err := g.Files(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, files)
	assert.Equal(t, StateRendering, g.State())
}

func TestGeneratorRunRequiresSink(t *testing.T) {
	g := NewGenerator(DefaultConfig()).WithRenderers(stubRenderers()...)

	err := g.Run(context.Background())
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
	assert.Equal(t, StateFailed, g.State())
}

func TestGeneratorMissingRenderer(t *testing.T) {
	g := NewGenerator(DefaultConfig()).
		WithRenderers(&stubRenderer{kind: KindDTO}).
		WithSink(&recordingSink{})

	err := g.Run(context.Background())
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
	assert.Equal(t, StateFailed, g.State())
}

func TestGeneratorRenderFailureIsAllOrNothing(t *testing.T) {
	sink := &recordingSink{}
	g := NewGenerator(DefaultConfig()).
		WithRenderers(
			&stubRenderer{kind: KindDTO},
			&stubRenderer{kind: KindModel},
			&stubRenderer{kind: KindEnv},
			// Docs render last in the plan, so everything else has
			// already rendered when the failure hits.
			&stubRenderer{kind: KindDoc, err: errors.New("boom")},
		).
		WithSink(sink)

	err := g.Run(context.Background())
	require.Error(t, err)
	assert.True(t, IsGenerationError(err))
	assert.Equal(t, StateFailed, g.State())
	assert.Empty(t, sink.paths, "nothing reaches the sink on failure")
}

func TestGeneratorSinkFailure(t *testing.T) {
	g := NewGenerator(DefaultConfig()).
		WithRenderers(stubRenderers()...).
		WithSink(&recordingSink{err: errors.New("read-only filesystem")})

	err := g.Run(context.Background())
	require.Error(t, err)
	assert.True(t, IsGenerationError(err))
	assert.Equal(t, StateFailed, g.State())
}

func TestGeneratorInvalidConfig(t *testing.T) {
	g := NewGenerator(Config{Database: "sqlite"}).
		WithRenderers(stubRenderers()...).
		WithSink(&recordingSink{})

	err := g.Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	assert.Equal(t, StateFailed, g.State())
}

func TestGeneratorCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := NewGenerator(DefaultConfig()).
		WithRenderers(stubRenderers()...).
		WithSink(&recordingSink{})

	err := g.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StateFailed, g.State())
}
