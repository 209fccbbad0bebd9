package render

import (
	"bytes"
	"text/template"

	"github.com/forgeworks/authforge/compiler/gen"
)

const envTemplate = `# {{ .Header }}
{{- range .Groups }}

# --- {{ .Name }} ---
{{- range .Vars }}
{{- if .Comment }}
# {{ .Comment }}
{{- end }}
{{ .Key }}={{ .Value }}
{{- end }}
{{- end }}
`

// Env renders environment template artifacts (.env.example). Groups and
// variables keep their definition order.
type Env struct {
	tmpl *template.Template
}

// NewEnv returns the env renderer.
func NewEnv() *Env {
	return &Env{tmpl: template.Must(template.New("env").Parse(envTemplate))}
}

// Kind implements gen.Renderer.
func (*Env) Kind() gen.ArtifactKind { return gen.KindEnv }

// Render implements gen.Renderer.
func (r *Env) Render(def gen.Definition) ([]byte, error) {
	if def.Kind != gen.KindEnv || def.Env == nil {
		return nil, gen.NewMalformedDefinitionError(def.Name, def.Kind, "env renderer requires an env definition")
	}

	data := struct {
		Header string
		Groups []gen.EnvGroup
	}{
		Header: header,
		Groups: def.Env.Groups,
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return nil, gen.NewMalformedDefinitionError(def.Name, def.Kind, "rendering env: "+err.Error())
	}
	return buf.Bytes(), nil
}
