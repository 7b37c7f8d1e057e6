// Package types provides the core data structures shared by the dispatcher
// and the dataset loaders.
//
// This package defines the container Format, the SonarModel enumeration, the
// Dataset handle contract and the typed errors returned across the module.
package types

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// KeywordsAttribute is the global attribute naming the echosounder model.
const KeywordsAttribute = "keywords"

// Dataset is an open, read-only handle on a stored sonar dataset.
//
// Handles are short-lived: callers open one, read what they need and close
// it. Implementations must tolerate Close being called more than once.
type Dataset interface {
	// Attribute returns a global attribute value and whether it exists.
	Attribute(name string) (any, bool)

	// AttributeNames lists the global attribute names in file order.
	AttributeNames() []string

	// Close releases the handle.
	Close() error
}

// DatasetOpener opens a dataset stored at path.
type DatasetOpener interface {
	Open(path string) (Dataset, error)
}

// OpenerFunc adapts a function to the DatasetOpener interface.
type OpenerFunc func(path string) (Dataset, error)

// Open calls f(path).
func (f OpenerFunc) Open(path string) (Dataset, error) {
	return f(path)
}

// AttrState is the outcome of a typed attribute lookup.
type AttrState int

const (
	// AttrAbsent means the dataset has no attribute with that name.
	AttrAbsent AttrState = iota
	// AttrPresent means the attribute exists and holds a string.
	AttrPresent
	// AttrInvalid means the attribute exists but does not hold a string.
	AttrInvalid
)

// AttrLookup is the result of LookupString.
type AttrLookup struct {
	// Raw is the value as returned by the dataset (nil when absent).
	Raw any
	// Value is the string value when State is AttrPresent.
	Value string
	State AttrState
}

// Display renders the looked-up value for error messages.
func (l AttrLookup) Display() string {
	switch l.State {
	case AttrPresent:
		return l.Value
	case AttrInvalid:
		return fmt.Sprintf("%v", l.Raw)
	case AttrAbsent:
		return ""
	default:
		return ""
	}
}

// LookupString reads a string attribute from ds.
//
// NetCDF char attributes arrive as string or []byte; Zarr JSON attributes as
// string or a list of strings. A single-element list is accepted as its only
// element. Trailing NUL padding is stripped.
func LookupString(ds Dataset, name string) AttrLookup {
	raw, ok := ds.Attribute(name)
	if !ok {
		return AttrLookup{State: AttrAbsent}
	}

	switch v := raw.(type) {
	case string:
		return AttrLookup{Raw: raw, Value: strings.TrimRight(v, "\x00"), State: AttrPresent}
	case []byte:
		return AttrLookup{Raw: raw, Value: strings.TrimRight(string(v), "\x00"), State: AttrPresent}
	case []string:
		if len(v) == 1 {
			return AttrLookup{Raw: raw, Value: v[0], State: AttrPresent}
		}
	case []any:
		if len(v) == 1 {
			if s, ok := v[0].(string); ok {
				return AttrLookup{Raw: raw, Value: s, State: AttrPresent}
			}
		}
	}

	return AttrLookup{Raw: raw, State: AttrInvalid}
}

// Attributes copies every global attribute of ds into a map.
func Attributes(ds Dataset) map[string]any {
	names := ds.AttributeNames()
	attrs := make(map[string]any, len(names))
	for _, name := range names {
		if v, ok := ds.Attribute(name); ok {
			attrs[name] = v
		}
	}
	return attrs
}

// SortedNames returns the keys of attrs in lexical order.
func SortedNames(attrs map[string]any) []string {
	return slices.Sorted(maps.Keys(attrs))
}
