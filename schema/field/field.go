// Package field provides the descriptor vocabulary shared by every
// generated artifact. A Descriptor is pure data: a semantic type, an
// optionality flag and an ordered list of named validation rules. Builders
// in compiler/gen reference descriptors; they never mutate them.
package field

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// A Type describes the semantic type of a field. It is deliberately
// narrower than a programming-language type system: every artifact kind
// (DTO source, DDL, documentation) maps these to its own representation.
type Type uint8

const (
	TypeInvalid Type = iota
	// TypeString is short human-readable text.
	TypeString
	// TypeEmail is an email address.
	TypeEmail
	// TypePassword is a secret string. Renderers must treat it as sensitive.
	TypePassword
	// TypeUUID is an opaque identifier.
	TypeUUID
	// TypeBool is a boolean flag.
	TypeBool
	// TypeTime is a point in time.
	TypeTime
	// TypeEnum is a string constrained to a fixed value set.
	TypeEnum
	// TypeUUIDSlice is an ordered collection of identifiers.
	TypeUUIDSlice

	endTypes
)

var typeNames = [...]string{
	TypeInvalid:   "invalid",
	TypeString:    "string",
	TypeEmail:     "email",
	TypePassword:  "password",
	TypeUUID:      "uuid",
	TypeBool:      "bool",
	TypeTime:      "time",
	TypeEnum:      "enum",
	TypeUUIDSlice: "[]uuid",
}

// String returns the name of the type.
func (t Type) String() string {
	if t < endTypes {
		return typeNames[t]
	}
	return typeNames[TypeInvalid]
}

// Valid reports if the given type is a valid type.
func (t Type) Valid() bool {
	return t > TypeInvalid && t < endTypes
}

// Rule names understood by the renderers.
const (
	RuleEmail    = "email"
	RuleMinLen   = "min_len"
	RuleMaxLen   = "max_len"
	RulePattern  = "pattern"
	RuleOneOf    = "one_of"
	RuleURL      = "url"
	RuleMinItems = "min_items"
)

// A Rule is one named validation constraint. Rules are applied in the
// order they were declared on the descriptor.
type Rule struct {
	Name  string
	Param string
}

// String returns a human-readable form of the rule, used by the
// documentation renderer.
func (r Rule) String() string {
	switch r.Name {
	case RuleEmail:
		return "valid email address"
	case RuleMinLen:
		return "at least " + r.Param + " characters"
	case RuleMaxLen:
		return "at most " + r.Param + " characters"
	case RulePattern:
		return "matches `" + r.Param + "`"
	case RuleOneOf:
		return "one of: " + r.Param
	case RuleURL:
		return "valid URL"
	case RuleMinItems:
		return "at least " + r.Param + " items"
	default:
		return r.Name
	}
}

// A Descriptor describes one named, typed, optionally-validated piece of
// data. Descriptors are value objects; Clone returns an independent copy.
type Descriptor struct {
	Name     string // snake_case field/column name
	Type     Type
	Optional bool
	Unique   bool
	Enums    []string // allowed values for TypeEnum
	Rules    []Rule   // ordered validation rules
	Comment  string   // human-readable description

	// Err holds the first error encountered while building the
	// descriptor. Catalog registration fails fast on it.
	Err error
}

// Clone returns a deep copy of the descriptor.
func (d Descriptor) Clone() Descriptor {
	c := d
	if d.Rules != nil {
		c.Rules = make([]Rule, len(d.Rules))
		copy(c.Rules, d.Rules)
	}
	if d.Enums != nil {
		c.Enums = make([]string, len(d.Enums))
		copy(c.Enums, d.Enums)
	}
	return c
}

// stringBuilder builds string-kind descriptors (string, email, password).
type stringBuilder struct {
	desc Descriptor
}

// String returns a new short-text field builder.
func String(name string) *stringBuilder {
	return &stringBuilder{desc: Descriptor{Name: name, Type: TypeString}}
}

// Email returns a new email field builder. The email format rule is
// intrinsic and always declared first.
func Email(name string) *stringBuilder {
	b := &stringBuilder{desc: Descriptor{Name: name, Type: TypeEmail}}
	b.desc.Rules = append(b.desc.Rules, Rule{Name: RuleEmail})
	return b
}

// Password returns a new secret-string field builder.
func Password(name string) *stringBuilder {
	return &stringBuilder{desc: Descriptor{Name: name, Type: TypePassword}}
}

// MinLen adds a minimum-length rule.
func (b *stringBuilder) MinLen(n int) *stringBuilder {
	if n < 0 {
		b.err(fmt.Errorf("field %s: min length must be non-negative, got %d", b.desc.Name, n))
		return b
	}
	b.desc.Rules = append(b.desc.Rules, Rule{Name: RuleMinLen, Param: strconv.Itoa(n)})
	return b
}

// MaxLen adds a maximum-length rule.
func (b *stringBuilder) MaxLen(n int) *stringBuilder {
	if n <= 0 {
		b.err(fmt.Errorf("field %s: max length must be positive, got %d", b.desc.Name, n))
		return b
	}
	b.desc.Rules = append(b.desc.Rules, Rule{Name: RuleMaxLen, Param: strconv.Itoa(n)})
	return b
}

// Match adds a regular-expression rule. The pattern must compile.
func (b *stringBuilder) Match(pattern string) *stringBuilder {
	if _, err := regexp.Compile(pattern); err != nil {
		b.err(fmt.Errorf("field %s: invalid pattern: %w", b.desc.Name, err))
		return b
	}
	b.desc.Rules = append(b.desc.Rules, Rule{Name: RulePattern, Param: pattern})
	return b
}

// URL adds a URL format rule.
func (b *stringBuilder) URL() *stringBuilder {
	b.desc.Rules = append(b.desc.Rules, Rule{Name: RuleURL})
	return b
}

// Optional marks the field as optional.
func (b *stringBuilder) Optional() *stringBuilder {
	b.desc.Optional = true
	return b
}

// Unique marks the field as unique within its relation.
func (b *stringBuilder) Unique() *stringBuilder {
	b.desc.Unique = true
	return b
}

// Comment sets the field documentation.
func (b *stringBuilder) Comment(c string) *stringBuilder {
	b.desc.Comment = c
	return b
}

// Descriptor returns the built descriptor.
func (b *stringBuilder) Descriptor() Descriptor {
	return b.desc.Clone()
}

func (b *stringBuilder) err(err error) {
	if b.desc.Err == nil {
		b.desc.Err = err
	}
}

// uuidBuilder builds identifier descriptors.
type uuidBuilder struct {
	desc Descriptor
}

// UUID returns a new identifier field builder.
func UUID(name string) *uuidBuilder {
	return &uuidBuilder{desc: Descriptor{Name: name, Type: TypeUUID}}
}

// Optional marks the field as optional.
func (b *uuidBuilder) Optional() *uuidBuilder {
	b.desc.Optional = true
	return b
}

// Unique marks the field as unique within its relation.
func (b *uuidBuilder) Unique() *uuidBuilder {
	b.desc.Unique = true
	return b
}

// Comment sets the field documentation.
func (b *uuidBuilder) Comment(c string) *uuidBuilder {
	b.desc.Comment = c
	return b
}

// Descriptor returns the built descriptor.
func (b *uuidBuilder) Descriptor() Descriptor {
	return b.desc.Clone()
}

// uuidsBuilder builds identifier-collection descriptors.
type uuidsBuilder struct {
	desc Descriptor
}

// UUIDs returns a new identifier-collection field builder.
func UUIDs(name string) *uuidsBuilder {
	return &uuidsBuilder{desc: Descriptor{Name: name, Type: TypeUUIDSlice}}
}

// MinItems adds a minimum-size rule.
func (b *uuidsBuilder) MinItems(n int) *uuidsBuilder {
	if n < 1 {
		if b.desc.Err == nil {
			b.desc.Err = fmt.Errorf("field %s: min items must be positive, got %d", b.desc.Name, n)
		}
		return b
	}
	b.desc.Rules = append(b.desc.Rules, Rule{Name: RuleMinItems, Param: strconv.Itoa(n)})
	return b
}

// Optional marks the field as optional.
func (b *uuidsBuilder) Optional() *uuidsBuilder {
	b.desc.Optional = true
	return b
}

// Comment sets the field documentation.
func (b *uuidsBuilder) Comment(c string) *uuidsBuilder {
	b.desc.Comment = c
	return b
}

// Descriptor returns the built descriptor.
func (b *uuidsBuilder) Descriptor() Descriptor {
	return b.desc.Clone()
}

// boolBuilder builds boolean descriptors.
type boolBuilder struct {
	desc Descriptor
}

// Bool returns a new boolean field builder.
func Bool(name string) *boolBuilder {
	return &boolBuilder{desc: Descriptor{Name: name, Type: TypeBool}}
}

// Optional marks the field as optional.
func (b *boolBuilder) Optional() *boolBuilder {
	b.desc.Optional = true
	return b
}

// Comment sets the field documentation.
func (b *boolBuilder) Comment(c string) *boolBuilder {
	b.desc.Comment = c
	return b
}

// Descriptor returns the built descriptor.
func (b *boolBuilder) Descriptor() Descriptor {
	return b.desc.Clone()
}

// timeBuilder builds timestamp descriptors.
type timeBuilder struct {
	desc Descriptor
}

// Time returns a new timestamp field builder.
func Time(name string) *timeBuilder {
	return &timeBuilder{desc: Descriptor{Name: name, Type: TypeTime}}
}

// Optional marks the field as optional.
func (b *timeBuilder) Optional() *timeBuilder {
	b.desc.Optional = true
	return b
}

// Comment sets the field documentation.
func (b *timeBuilder) Comment(c string) *timeBuilder {
	b.desc.Comment = c
	return b
}

// Descriptor returns the built descriptor.
func (b *timeBuilder) Descriptor() Descriptor {
	return b.desc.Clone()
}

// enumBuilder builds enumerated-string descriptors.
type enumBuilder struct {
	desc Descriptor
}

// Enum returns a new enumerated-string field builder.
func Enum(name string) *enumBuilder {
	return &enumBuilder{desc: Descriptor{Name: name, Type: TypeEnum}}
}

// Values sets the allowed values and declares the matching one-of rule.
func (b *enumBuilder) Values(values ...string) *enumBuilder {
	if len(values) == 0 {
		if b.desc.Err == nil {
			b.desc.Err = fmt.Errorf("field %s: enum requires at least one value", b.desc.Name)
		}
		return b
	}
	b.desc.Enums = append(b.desc.Enums, values...)
	b.desc.Rules = append(b.desc.Rules, Rule{Name: RuleOneOf, Param: strings.Join(values, ",")})
	return b
}

// Optional marks the field as optional.
func (b *enumBuilder) Optional() *enumBuilder {
	b.desc.Optional = true
	return b
}

// Unique marks the field as unique within its relation.
func (b *enumBuilder) Unique() *enumBuilder {
	b.desc.Unique = true
	return b
}

// Comment sets the field documentation.
func (b *enumBuilder) Comment(c string) *enumBuilder {
	b.desc.Comment = c
	return b
}

// Descriptor returns the built descriptor.
func (b *enumBuilder) Descriptor() Descriptor {
	if b.desc.Err == nil && len(b.desc.Enums) == 0 {
		b.desc.Err = fmt.Errorf("field %s: enum requires at least one value", b.desc.Name)
	}
	return b.desc.Clone()
}
