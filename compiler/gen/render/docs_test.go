package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeworks/authforge/compiler/gen"
	"github.com/forgeworks/authforge/schema/field"
)

func docDef(generatedAt time.Time) gen.Definition {
	return gen.Definition{
		Name: "authentication",
		Kind: gen.KindDoc,
		Doc: &gen.DocMeta{
			Title: "Authentication",
			Slug:  "authentication",
			Intro: "Login, registration, and session refresh flows.",
			Sections: []gen.DocSection{
				{
					Heading: "Login request",
					Body:    "Credentials accepted by the login endpoint.",
					Fields: []field.Descriptor{
						field.Email("email").MaxLen(254).Unique().Comment("Account email address.").Descriptor(),
						field.Password("password").MinLen(8).Descriptor(),
					},
				},
			},
			Links: []gen.DocLink{
				{Title: "Overview", Path: "README.md"},
			},
			GeneratedAt: generatedAt,
			Version:     "0.1.0",
		},
	}
}

func TestDocsRender(t *testing.T) {
	r := NewDocs()
	require.Equal(t, gen.KindDoc, r.Kind())

	ts := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	out, err := r.Render(docDef(ts))
	require.NoError(t, err)
	md := string(out)

	t.Run("header and title", func(t *testing.T) {
		assert.Contains(t, md, "<!-- Code generated by authforge. DO NOT EDIT. -->")
		assert.Contains(t, md, "# Authentication")
		assert.Contains(t, md, "Login, registration, and session refresh flows.")
	})

	t.Run("section with field table", func(t *testing.T) {
		assert.Contains(t, md, "## Login request")
		assert.Contains(t, md, "| Field | Type | Required | Constraints | Description |")
		assert.Contains(t, md, "| `email` | email | yes | unique; valid email address; at most 254 characters | Account email address. |")
		assert.Contains(t, md, "| `password` | password | yes | at least 8 characters |  |")
	})

	t.Run("links", func(t *testing.T) {
		assert.Contains(t, md, "## See also")
		assert.Contains(t, md, "- [Overview](README.md)")
	})

	t.Run("footer", func(t *testing.T) {
		assert.Contains(t, md, "Generated by authforge v0.1.0 at 2026-03-14T09:26:53Z.")
	})
}

func TestDocsRenderZeroTimestampOmitsFooter(t *testing.T) {
	out, err := NewDocs().Render(docDef(time.Time{}))
	require.NoError(t, err)
	assert.NotContains(t, string(out), "Generated by authforge")
}

func TestDocsRenderDeterministic(t *testing.T) {
	r := NewDocs()
	ts := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	first, err := r.Render(docDef(ts))
	require.NoError(t, err)
	second, err := r.Render(docDef(ts))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDocsRenderKindMismatch(t *testing.T) {
	r := NewDocs()

	_, err := r.Render(loginDef())
	require.Error(t, err)
	assert.True(t, gen.IsMalformedDefinitionError(err))

	_, err = r.Render(gen.Definition{Name: "authentication", Kind: gen.KindDoc})
	require.Error(t, err)
	assert.True(t, gen.IsMalformedDefinitionError(err))
}
