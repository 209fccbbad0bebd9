// Package render provides one renderer per artifact kind. Renderers are
// stateless: they turn an abstract definition into text and never look at
// another artifact's output.
package render

import (
	"strconv"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/go-openapi/inflect"

	"github.com/forgeworks/authforge/compiler/gen"
)

// header is the first line of every generated artifact.
const header = "Code generated by authforge. DO NOT EDIT."

// All returns the default renderer set for the given backend.
func All(db gen.Database) []gen.Renderer {
	return []gen.Renderer{
		NewDTO(),
		NewDDL(db),
		NewEnv(),
		NewDocs(),
	}
}

// acronyms maps lowercase name tokens to their conventional Go spelling.
var acronyms = map[string]string{
	"id":   "ID",
	"ids":  "IDs",
	"url":  "URL",
	"uuid": "UUID",
	"ttl":  "TTL",
}

// goName converts a snake_case field name to an exported Go identifier,
// honoring common initialisms.
func goName(name string) string {
	parts := strings.Split(name, "_")
	for i, p := range parts {
		if a, ok := acronyms[p]; ok {
			parts[i] = a
			continue
		}
		parts[i] = inflect.Capitalize(p)
	}
	return strings.Join(parts, "")
}

// lowerCamel returns the identifier with its first rune lowered, used to
// prefix per-type auxiliary declarations.
func lowerCamel(name string) string {
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

// litInt renders a numeric rule parameter as an integer literal. Rule
// parameters are validated when the descriptor is built.
func litInt(param string) jen.Code {
	n, _ := strconv.Atoi(param)
	return jen.Lit(n)
}
