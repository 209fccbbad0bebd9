package render

import (
	"bytes"
	"strings"

	"github.com/dave/jennifer/jen"
	"golang.org/x/tools/imports"

	"github.com/forgeworks/authforge/compiler/gen"
	"github.com/forgeworks/authforge/schema/field"
)

const uuidPkg = "github.com/google/uuid"

// Canonical format patterns emitted as auxiliary declarations when the
// matching rule is referenced.
const (
	emailPatternExpr = `^[^@\s]+@[^@\s]+\.[^@\s]+$`
	urlPatternExpr   = `^https?://\S+$`
)

// DTO renders class-style source artifacts: a Go struct with json tags
// and a Validate method applying the descriptor rules in declaration
// order. Jennifer tracks the imports, so only referenced declarations are
// emitted.
type DTO struct{}

// NewDTO returns the DTO renderer.
func NewDTO() *DTO { return &DTO{} }

// Kind implements gen.Renderer.
func (*DTO) Kind() gen.ArtifactKind { return gen.KindDTO }

// Render implements gen.Renderer.
func (r *DTO) Render(def gen.Definition) ([]byte, error) {
	if def.Kind != gen.KindDTO || def.DTO == nil {
		return nil, gen.NewMalformedDefinitionError(def.Name, def.Kind, "DTO renderer requires a DTO definition")
	}

	f := jen.NewFile(def.DTO.Package)
	f.HeaderComment(header)

	typeName := def.DTO.TypeName
	r.auxDecls(f, typeName, def.Fields)
	r.structDecl(f, typeName, def.Name, def.Fields)
	r.validateMethod(f, typeName, def.Fields)

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, gen.NewMalformedDefinitionError(def.Name, def.Kind, "rendering source: "+err.Error())
	}
	// Same finishing pass the template writer applies: canonical gofmt
	// and import grouping.
	out, err := imports.Process(strings.ToLower(typeName)+".go", buf.Bytes(), nil)
	if err != nil {
		return nil, gen.NewMalformedDefinitionError(def.Name, def.Kind, "formatting source: "+err.Error())
	}
	return out, nil
}

// auxDecls emits the minimal set of auxiliary declarations: one pattern
// variable per referenced format rule and one allowed-value slice per
// enumerated field. Nothing is emitted for rules the definition does not
// use.
func (*DTO) auxDecls(f *jen.File, typeName string, fields []field.Descriptor) {
	prefix := lowerCamel(typeName)
	for _, fd := range fields {
		fieldPart := goName(fd.Name)
		for _, rule := range fd.Rules {
			switch rule.Name {
			case field.RuleEmail:
				f.Var().Id(prefix+fieldPart+"Pattern").Op("=").
					Qual("regexp", "MustCompile").Call(jen.Lit(emailPatternExpr))
			case field.RuleURL:
				f.Var().Id(prefix+fieldPart+"Pattern").Op("=").
					Qual("regexp", "MustCompile").Call(jen.Lit(urlPatternExpr))
			case field.RulePattern:
				f.Var().Id(prefix+fieldPart+"Pattern").Op("=").
					Qual("regexp", "MustCompile").Call(jen.Lit(rule.Param))
			case field.RuleOneOf:
				values := strings.Split(rule.Param, ",")
				lits := make([]jen.Code, len(values))
				for i, v := range values {
					lits[i] = jen.Lit(v)
				}
				f.Var().Id(prefix + fieldPart + "Allowed").Op("=").
					Index().String().Values(lits...)
			}
		}
	}
}

func (r *DTO) structDecl(f *jen.File, typeName, name string, fields []field.Descriptor) {
	var members []jen.Code
	for _, fd := range fields {
		if fd.Comment != "" {
			members = append(members, jen.Comment(fd.Comment))
		}
		tag := fd.Name
		if fd.Optional {
			tag += ",omitempty"
		}
		members = append(members, jen.Id(goName(fd.Name)).Add(fieldType(fd)).Tag(map[string]string{"json": tag}))
	}
	f.Commentf("%s is the %s payload.", typeName, strings.ReplaceAll(name, "_", " "))
	f.Type().Id(typeName).Struct(members...)
}

func (r *DTO) validateMethod(f *jen.File, typeName string, fields []field.Descriptor) {
	var stmts []jen.Code
	for _, fd := range fields {
		stmts = append(stmts, fieldChecks(typeName, fd)...)
	}
	stmts = append(stmts, jen.Return(jen.Nil()))

	f.Comment("Validate checks the payload against its declared constraints,")
	f.Comment("in declaration order.")
	f.Func().Params(jen.Id("r").Id(typeName)).Id("Validate").Params().Error().Block(stmts...)
}

// fieldType maps a semantic type to its Go representation. Optional
// scalar fields become pointers; optional slices stay slices.
func fieldType(fd field.Descriptor) jen.Code {
	base := func() jen.Code {
		switch fd.Type {
		case field.TypeUUID:
			return jen.Qual(uuidPkg, "UUID")
		case field.TypeBool:
			return jen.Bool()
		case field.TypeTime:
			return jen.Qual("time", "Time")
		case field.TypeUUIDSlice:
			return jen.Index().Qual(uuidPkg, "UUID")
		default:
			// string, email, password, enum
			return jen.String()
		}
	}()
	if fd.Optional && fd.Type != field.TypeUUIDSlice {
		return jen.Op("*").Add(base)
	}
	return base
}

// fieldChecks emits the validation statements for one field: the
// required check first (for non-optional fields), then each declared
// rule in order. Checks on optional fields are guarded by a nil check.
func fieldChecks(typeName string, fd field.Descriptor) []jen.Code {
	sel := func() *jen.Statement { return jen.Id("r").Dot(goName(fd.Name)) }
	prefix := lowerCamel(typeName) + goName(fd.Name)

	// val yields the expression holding the field value, dereferenced
	// for optional scalars.
	val := func() *jen.Statement {
		if fd.Optional && fd.Type != field.TypeUUIDSlice {
			return jen.Op("*").Add(sel())
		}
		return sel()
	}

	fail := func(msg string) jen.Code {
		return jen.Return(jen.Qual("errors", "New").Call(jen.Lit(fd.Name + ": " + msg)))
	}

	var checks []jen.Code
	for _, rule := range fd.Rules {
		switch rule.Name {
		case field.RuleMinLen:
			checks = append(checks, jen.If(jen.Len(val()).Op("<").Add(litInt(rule.Param))).Block(
				fail("must be at least "+rule.Param+" characters"),
			))
		case field.RuleMaxLen:
			checks = append(checks, jen.If(jen.Len(val()).Op(">").Add(litInt(rule.Param))).Block(
				fail("must be at most "+rule.Param+" characters"),
			))
		case field.RuleEmail:
			checks = append(checks, jen.If(jen.Op("!").Id(prefix+"Pattern").Dot("MatchString").Call(val())).Block(
				fail("must be a valid email address"),
			))
		case field.RuleURL:
			checks = append(checks, jen.If(jen.Op("!").Id(prefix+"Pattern").Dot("MatchString").Call(val())).Block(
				fail("must be a valid URL"),
			))
		case field.RulePattern:
			checks = append(checks, jen.If(jen.Op("!").Id(prefix+"Pattern").Dot("MatchString").Call(val())).Block(
				fail("invalid format"),
			))
		case field.RuleOneOf:
			checks = append(checks, jen.If(jen.Op("!").Qual("slices", "Contains").Call(jen.Id(prefix+"Allowed"), val())).Block(
				fail("must be one of "+rule.Param),
			))
		case field.RuleMinItems:
			checks = append(checks, jen.If(jen.Len(sel()).Op("<").Add(litInt(rule.Param))).Block(
				fail("must contain at least "+rule.Param+" items"),
			))
		}
	}

	if fd.Optional {
		if len(checks) == 0 {
			return nil
		}
		return []jen.Code{jen.If(sel().Op("!=").Nil()).Block(checks...)}
	}

	// Required check precedes the declared rules.
	var required jen.Code
	switch fd.Type {
	case field.TypeUUID:
		required = jen.If(sel().Op("==").Qual(uuidPkg, "Nil")).Block(fail("must be set"))
	case field.TypeTime:
		required = jen.If(sel().Dot("IsZero").Call()).Block(fail("must be set"))
	case field.TypeUUIDSlice:
		required = jen.If(jen.Len(sel()).Op("==").Lit(0)).Block(fail("must not be empty"))
	case field.TypeBool:
		required = nil
	default:
		required = jen.If(sel().Op("==").Lit("")).Block(fail("must not be empty"))
	}
	if required != nil {
		return append([]jen.Code{required}, checks...)
	}
	return checks
}
