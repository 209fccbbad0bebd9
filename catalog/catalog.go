// Package catalog is the single source of truth for every field that can
// appear in a generated artifact. Builders resolve fields by stable
// semantic key; a key missing from the catalog is a programming error and
// aborts the run.
package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/forgeworks/authforge/schema/field"
)

// ErrUnknownKey is the sentinel for lookups of unregistered field keys.
var ErrUnknownKey = errors.New("catalog: unknown field key")

// UnknownKeyError reports a lookup of a field key that is not registered.
type UnknownKeyError struct {
	Key string
}

// Error implements the error interface.
func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("catalog: unknown field key %q", e.Key)
}

// Is reports whether the target matches the sentinel error.
func (e *UnknownKeyError) Is(target error) bool {
	return target == ErrUnknownKey
}

// Resolve returns the descriptor registered under key. The returned value
// is an independent copy: mutating it cannot corrupt the catalog.
func Resolve(key string) (field.Descriptor, error) {
	fd, ok := registry[key]
	if !ok {
		return field.Descriptor{}, &UnknownKeyError{Key: key}
	}
	return fd.Clone(), nil
}

// Keys returns all registered field keys in lexical order.
func Keys() []string {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
