// Package gen is the composition engine: it turns one configuration value
// into an ordered, mutually-consistent plan of rendered artifacts.
package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrInvalidConfig indicates an unsupported configuration value.
	ErrInvalidConfig = errors.New("authforge: invalid configuration")
	// ErrMalformedDefinition indicates a renderer received a definition
	// shape it cannot represent.
	ErrMalformedDefinition = errors.New("authforge: malformed artifact definition")
	// ErrGenerationFailed indicates a failure while building or rendering
	// the plan.
	ErrGenerationFailed = errors.New("authforge: generation failed")
)

// ConfigError represents an unsupported configuration value. Configuration
// errors are detected once at the run boundary and are fatal; values are
// never defaulted silently.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("authforge: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("authforge: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// MalformedDefinitionError represents a contract violation between a
// builder and a renderer: the definition shape cannot be represented by
// the renderer it was dispatched to. Always fatal, never recovered.
type MalformedDefinitionError struct {
	Artifact string
	Kind     ArtifactKind
	Message  string
}

// Error implements the error interface.
func (e *MalformedDefinitionError) Error() string {
	var b strings.Builder
	b.WriteString("authforge: malformed definition")
	if e.Artifact != "" {
		b.WriteString(" for artifact ")
		b.WriteString(e.Artifact)
	}
	if e.Kind != KindInvalid {
		fmt.Fprintf(&b, " (kind: %s)", e.Kind)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error.
func (e *MalformedDefinitionError) Is(target error) bool {
	return target == ErrMalformedDefinition
}

// NewMalformedDefinitionError creates a new MalformedDefinitionError.
func NewMalformedDefinitionError(artifact string, kind ArtifactKind, message string) *MalformedDefinitionError {
	return &MalformedDefinitionError{
		Artifact: artifact,
		Kind:     kind,
		Message:  message,
	}
}

// GenerationError represents a failure while planning, building or
// rendering. It carries the artifact family and path for diagnosis; a
// single GenerationError aborts the whole run.
type GenerationError struct {
	Family  string
	Path    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("authforge: generation error")
	if e.Family != "" {
		b.WriteString(" in family ")
		b.WriteString(e.Family)
	}
	if e.Path != "" {
		b.WriteString(" (path: ")
		b.WriteString(e.Path)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(family, path, message string, cause error) *GenerationError {
	return &GenerationError{
		Family:  family,
		Path:    path,
		Message: message,
		Cause:   cause,
	}
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsMalformedDefinitionError reports whether the error is a
// MalformedDefinitionError.
func IsMalformedDefinitionError(err error) bool {
	var defErr *MalformedDefinitionError
	return errors.As(err, &defErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}
