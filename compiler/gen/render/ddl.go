package render

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/forgeworks/authforge/compiler/gen"
	"github.com/forgeworks/authforge/schema/field"
)

// ddlTemplate lays out one CREATE TABLE statement. Columns and
// constraints arrive pre-rendered so the template only handles
// structure and comma placement.
const ddlTemplate = `-- {{ .Header }}
-- Table: {{ .Table }} ({{ .Group }})

CREATE TABLE {{ .QuotedTable }} (
{{ join .Lines ",\n" }}
);
{{- range .Indexes }}

{{ . }}
{{- end }}
`

// DDL renders relational model artifacts as CREATE TABLE statements for
// one backend. Column types and identifier quoting differ per backend;
// everything else is shared.
type DDL struct {
	db   gen.Database
	tmpl *template.Template
}

// NewDDL returns the DDL renderer for the given backend.
func NewDDL(db gen.Database) *DDL {
	return &DDL{
		db: db,
		tmpl: template.Must(template.New("ddl").Funcs(template.FuncMap{
			"join": strings.Join,
		}).Parse(ddlTemplate)),
	}
}

// Kind implements gen.Renderer.
func (*DDL) Kind() gen.ArtifactKind { return gen.KindModel }

// Render implements gen.Renderer.
func (r *DDL) Render(def gen.Definition) ([]byte, error) {
	if def.Kind != gen.KindModel || def.Model == nil {
		return nil, gen.NewMalformedDefinitionError(def.Name, def.Kind, "DDL renderer requires a model definition")
	}
	model := def.Model

	var lines []string
	for _, fd := range def.Fields {
		col, err := r.column(fd)
		if err != nil {
			return nil, gen.NewMalformedDefinitionError(def.Name, def.Kind, err.Error())
		}
		lines = append(lines, "    "+col)
	}
	if len(model.PrimaryKey) > 0 {
		lines = append(lines, "    PRIMARY KEY ("+r.quoteAll(model.PrimaryKey)+")")
	}
	for _, fd := range def.Fields {
		if fd.Unique {
			lines = append(lines, fmt.Sprintf("    CONSTRAINT %s UNIQUE (%s)",
				r.quote("uq_"+model.Table+"_"+fd.Name), r.quote(fd.Name)))
		}
	}
	if r.db == gen.Postgres {
		for _, fd := range def.Fields {
			if fd.Type == field.TypeEnum {
				lines = append(lines, fmt.Sprintf("    CONSTRAINT %s CHECK (%s IN (%s))",
					r.quote("ck_"+model.Table+"_"+fd.Name), r.quote(fd.Name), enumList(fd.Enums)))
			}
		}
	}
	for _, fk := range model.ForeignKeys {
		line := fmt.Sprintf("    CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s (%s)",
			r.quote("fk_"+model.Table+"_"+fk.Column), r.quote(fk.Column), r.quote(fk.RefTable), r.quote(fk.RefColumn))
		if fk.OnDelete != "" {
			line += " ON DELETE " + fk.OnDelete
		}
		lines = append(lines, line)
	}

	data := struct {
		Header      string
		Table       string
		Group       string
		QuotedTable string
		Lines       []string
		Indexes     []string
	}{
		Header:      header,
		Table:       model.Table,
		Group:       model.Group,
		QuotedTable: r.quote(model.Table),
		Lines:       lines,
		Indexes:     r.indexes(def),
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return nil, gen.NewMalformedDefinitionError(def.Name, def.Kind, "rendering DDL: "+err.Error())
	}
	return buf.Bytes(), nil
}

// column renders one column clause.
func (r *DDL) column(fd field.Descriptor) (string, error) {
	typ, err := r.columnType(fd)
	if err != nil {
		return "", err
	}
	col := r.quote(fd.Name) + " " + typ
	if !fd.Optional {
		col += " NOT NULL"
	}
	return col, nil
}

// columnType maps a semantic field type to the backend's column type.
func (r *DDL) columnType(fd field.Descriptor) (string, error) {
	switch fd.Type {
	case field.TypeUUID:
		if r.db == gen.MySQL {
			return "CHAR(36)", nil
		}
		return "UUID", nil
	case field.TypeString, field.TypeEmail, field.TypePassword:
		if n := maxLen(fd); n > 0 {
			return fmt.Sprintf("VARCHAR(%d)", n), nil
		}
		return "TEXT", nil
	case field.TypeBool:
		if r.db == gen.MySQL {
			return "TINYINT(1)", nil
		}
		return "BOOLEAN", nil
	case field.TypeTime:
		if r.db == gen.MySQL {
			return "DATETIME(6)", nil
		}
		return "TIMESTAMPTZ", nil
	case field.TypeEnum:
		if r.db == gen.MySQL {
			return "ENUM(" + enumList(fd.Enums) + ")", nil
		}
		// Postgres models enums as TEXT plus a CHECK constraint.
		return "TEXT", nil
	default:
		return "", fmt.Errorf("field %q: type %s has no column mapping", fd.Name, fd.Type)
	}
}

// indexes renders non-unique secondary indexes: one per foreign key
// column, since lookups join through them.
func (r *DDL) indexes(def gen.Definition) []string {
	var out []string
	for _, fk := range def.Model.ForeignKeys {
		out = append(out, fmt.Sprintf("CREATE INDEX %s ON %s (%s);",
			r.quote("ix_"+def.Model.Table+"_"+fk.Column), r.quote(def.Model.Table), r.quote(fk.Column)))
	}
	return out
}

// quote wraps an identifier in the backend's quoting style. Table names
// like user are reserved words in Postgres, so everything is quoted.
func (r *DDL) quote(ident string) string {
	if r.db == gen.MySQL {
		return "`" + ident + "`"
	}
	return `"` + ident + `"`
}

func (r *DDL) quoteAll(idents []string) string {
	quoted := make([]string, len(idents))
	for i, id := range idents {
		quoted[i] = r.quote(id)
	}
	return strings.Join(quoted, ", ")
}

// maxLen returns the max_len rule parameter, or 0 when absent.
func maxLen(fd field.Descriptor) int {
	for _, rule := range fd.Rules {
		if rule.Name == field.RuleMaxLen {
			var n int
			fmt.Sscanf(rule.Param, "%d", &n)
			return n
		}
	}
	return 0
}

// enumList renders enum values as a quoted SQL list.
func enumList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + strings.ReplaceAll(v, "'", "''") + "'"
	}
	return strings.Join(quoted, ", ")
}
