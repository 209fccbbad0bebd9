package authforge

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeworks/authforge/compiler/gen"
)

// memorySink collects writes keyed by path, preserving write order.
type memorySink struct {
	order []string
	files map[string][]byte
}

func newMemorySink() *memorySink {
	return &memorySink{files: make(map[string][]byte)}
}

func (s *memorySink) WriteFile(path string, content []byte) error {
	if _, ok := s.files[path]; !ok {
		s.order = append(s.order, path)
	}
	s.files[path] = content
	return nil
}

func TestGenerateRBACScenario(t *testing.T) {
	cfg, err := gen.NewConfig(gen.WithDatabase(gen.Postgres), gen.WithRBAC(true))
	require.NoError(t, err)

	sink := newMemorySink()
	ts := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	require.NoError(t, Generate(context.Background(), cfg, sink, ts))

	assert.Equal(t, []string{
		"dto/auth/login_request.go",
		"dto/auth/register_request.go",
		"dto/auth/refresh_request.go",
		"db/schema/user.sql",
		"db/schema/session.sql",
		"dto/rbac/create_role_request.go",
		"dto/rbac/assign_roles_request.go",
		"db/schema/role.sql",
		"db/schema/permission.sql",
		"db/schema/user_role.sql",
		"db/schema/role_permission.sql",
		".env.example",
		"docs/README.md",
		"docs/authentication.md",
		"docs/rbac.md",
	}, sink.order)

	t.Run("dto content", func(t *testing.T) {
		login := string(sink.files["dto/auth/login_request.go"])
		assert.Contains(t, login, "package auth")
		assert.Contains(t, login, "type LoginRequest struct")
		assert.Contains(t, login, "func (r LoginRequest) Validate() error")
		assert.NotContains(t, login, "TenantID", "no tenant reference without multitenancy")
	})

	t.Run("schema content", func(t *testing.T) {
		user := string(sink.files["db/schema/user.sql"])
		assert.Contains(t, user, `CREATE TABLE "user"`)
		assert.NotContains(t, user, "tenant_id")
	})

	t.Run("env content", func(t *testing.T) {
		env := string(sink.files[".env.example"])
		assert.Contains(t, env, "DATABASE_URL=postgresql://")
		assert.Contains(t, env, "JWT_SECRET=change-me")
	})

	t.Run("docs content", func(t *testing.T) {
		readme := string(sink.files["docs/README.md"])
		assert.Contains(t, readme, "rbac: Role-based access control")
		assert.Contains(t, readme, "Generated by authforge v"+Version+" at 2026-03-14T09:26:53Z.")
		assert.Contains(t, string(sink.files["docs/rbac.md"]), "# Role-based access control")
	})
}

func TestGenerateDeterministic(t *testing.T) {
	cfg, err := gen.NewConfig(
		gen.WithDatabase(gen.MySQL),
		gen.WithRBAC(true),
		gen.WithMultitenant(true),
		gen.WithWhitelabel(true),
	)
	require.NoError(t, err)

	ts := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	first := newMemorySink()
	require.NoError(t, Generate(context.Background(), cfg, first, ts))

	second := newMemorySink()
	require.NoError(t, Generate(context.Background(), cfg, second, ts))

	require.Equal(t, first.order, second.order)
	for path, content := range first.files {
		assert.Equal(t, content, second.files[path], path)
	}
}

func TestGenerateMultitenantDelta(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	base, err := gen.NewConfig(gen.WithDatabase(gen.Postgres))
	require.NoError(t, err)
	baseSink := newMemorySink()
	require.NoError(t, Generate(context.Background(), base, baseSink, ts))

	multi, err := gen.NewConfig(gen.WithDatabase(gen.Postgres), gen.WithMultitenant(true))
	require.NoError(t, err)
	multiSink := newMemorySink()
	require.NoError(t, Generate(context.Background(), multi, multiSink, ts))

	t.Run("tenant family added", func(t *testing.T) {
		assert.NotContains(t, baseSink.files, "db/schema/tenant.sql")
		assert.Contains(t, multiSink.files, "db/schema/tenant.sql")
		assert.Contains(t, multiSink.files, "dto/tenant/create_tenant_request.go")
		assert.Contains(t, multiSink.files, "docs/tenancy.md")
	})

	t.Run("tenant reference threaded through user-scoped artifacts", func(t *testing.T) {
		assert.Contains(t, string(multiSink.files["dto/auth/login_request.go"]), "TenantID *uuid.UUID")
		assert.Contains(t, string(multiSink.files["db/schema/user.sql"]), `"tenant_id" UUID`)
		assert.Contains(t, string(multiSink.files["docs/README.md"]), "tenant_id")
	})

	t.Run("artifacts outside the flag stay byte-identical", func(t *testing.T) {
		for _, path := range []string{
			"dto/auth/refresh_request.go",
			"db/schema/session.sql",
			".env.example",
		} {
			assert.Equal(t, baseSink.files[path], multiSink.files[path], path)
		}
	})
}

func TestFilesDryRun(t *testing.T) {
	cfg, err := gen.NewConfig()
	require.NoError(t, err)

	files, err := Files(context.Background(), cfg)
	require.NoError(t, err)
	require.NotEmpty(t, files)

	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.Path
		assert.NotEmpty(t, f.Content, f.Path)
	}
	assert.Contains(t, paths, "docs/README.md")
}
