package render

import (
	"bytes"
	"strings"
	"text/template"
	"time"

	"github.com/forgeworks/authforge/compiler/gen"
	"github.com/forgeworks/authforge/schema/field"
)

const docsTemplate = `<!-- {{ .Header }} -->

# {{ .Title }}

{{ .Intro }}
{{- range .Sections }}

## {{ .Heading }}
{{- if .Body }}

{{ .Body }}
{{- end }}
{{- if .Fields }}

| Field | Type | Required | Constraints | Description |
|-------|------|----------|-------------|-------------|
{{- range .Fields }}
| ` + "`{{ .Name }}`" + ` | {{ .Type }} | {{ if .Optional }}no{{ else }}yes{{ end }} | {{ constraints . }} | {{ .Comment }} |
{{- end }}
{{- end }}
{{- end }}
{{- if .Links }}

## See also
{{ range .Links }}
- [{{ .Title }}]({{ .Path }})
{{- end }}
{{- end }}
{{- if .Footer }}

---
{{ .Footer }}
{{- end }}
`

// Docs renders narrative documentation pages as markdown. Field tables
// come straight from the resolved descriptors, so the docs always agree
// with the source and schema artifacts built from the same keys.
type Docs struct {
	tmpl *template.Template
}

// NewDocs returns the docs renderer.
func NewDocs() *Docs {
	return &Docs{
		tmpl: template.Must(template.New("docs").Funcs(template.FuncMap{
			"constraints": constraints,
		}).Parse(docsTemplate)),
	}
}

// Kind implements gen.Renderer.
func (*Docs) Kind() gen.ArtifactKind { return gen.KindDoc }

// Render implements gen.Renderer.
func (r *Docs) Render(def gen.Definition) ([]byte, error) {
	if def.Kind != gen.KindDoc || def.Doc == nil {
		return nil, gen.NewMalformedDefinitionError(def.Name, def.Kind, "docs renderer requires a doc definition")
	}
	doc := def.Doc

	data := struct {
		Header   string
		Title    string
		Intro    string
		Sections []gen.DocSection
		Links    []gen.DocLink
		Footer   string
	}{
		Header:   header,
		Title:    doc.Title,
		Intro:    doc.Intro,
		Sections: doc.Sections,
		Links:    doc.Links,
		Footer:   footer(doc),
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return nil, gen.NewMalformedDefinitionError(def.Name, def.Kind, "rendering docs: "+err.Error())
	}
	return buf.Bytes(), nil
}

// footer renders the provenance line. A zero timestamp omits it, which
// keeps ungoverned runs byte-stable.
func footer(doc *gen.DocMeta) string {
	if doc.GeneratedAt.IsZero() {
		return ""
	}
	var b strings.Builder
	b.WriteString("Generated by authforge")
	if doc.Version != "" {
		b.WriteString(" v" + doc.Version)
	}
	b.WriteString(" at " + doc.GeneratedAt.UTC().Format(time.RFC3339) + ".")
	return b.String()
}

// constraints summarizes a descriptor's rules for the field table.
func constraints(fd field.Descriptor) string {
	var parts []string
	if fd.Unique {
		parts = append(parts, "unique")
	}
	for _, rule := range fd.Rules {
		parts = append(parts, rule.String())
	}
	if len(parts) == 0 {
		return "—"
	}
	return strings.Join(parts, "; ")
}
