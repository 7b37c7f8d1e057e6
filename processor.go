package echoproc

import (
	"fmt"
	"maps"

	"github.com/simonhull/echoproc/internal/types"
)

// Processor is a processing object for one sonar dataset.
//
// The concrete type is one of *ProcessEK60, *ProcessEK80 or *ProcessAZFP;
// use a type switch to reach variant-specific behaviour:
//
//	switch p := p.(type) {
//	case *echoproc.ProcessEK80:
//		...
//	}
type Processor interface {
	// Path is the dataset path the object was built from.
	Path() string

	// Model is the echosounder this object processes.
	Model() SonarModel

	// Format is the container the dataset is stored in.
	Format() Format

	// Manufacturer is the instrument vendor.
	Manufacturer() string

	// Attributes returns a copy of the dataset's global attributes.
	Attributes() map[string]any

	// Warnings lists non-fatal issues found during construction.
	Warnings() []Warning
}

// processBase carries the state shared by every processing object.
type processBase struct {
	path     string
	model    SonarModel
	format   Format
	attrs    map[string]any
	warnings []Warning
}

func (b *processBase) Path() string         { return b.path }
func (b *processBase) Model() SonarModel    { return b.model }
func (b *processBase) Format() Format       { return b.format }
func (b *processBase) Manufacturer() string { return b.model.Manufacturer() }
func (b *processBase) Warnings() []Warning  { return b.warnings }

func (b *processBase) Attributes() map[string]any {
	return maps.Clone(b.attrs)
}

// Attribute returns a single global attribute.
func (b *processBase) Attribute(name string) (any, bool) {
	v, ok := b.attrs[name]
	return v, ok
}

// newProcessBase opens the dataset at path, copies its global attributes and
// checks its keywords against model. The handle is closed before returning.
func newProcessBase(model SonarModel, path string, opts []Option) (base processBase, err error) {
	options := applyOptions(opts)

	format, ext := FormatFromPath(path)
	if format == FormatUnknown {
		return base, &InvalidFormatError{Path: path, Ext: ext}
	}

	ds, err := openDataset(format, path, options)
	if err != nil {
		return base, err
	}
	defer func() {
		if cerr := ds.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s dataset: %w", format, cerr)
		}
	}()

	base = processBase{
		path:   path,
		model:  model,
		format: format,
		attrs:  types.Attributes(ds),
	}

	lookup := types.LookupString(ds, KeywordsAttribute)
	switch lookup.State {
	case types.AttrAbsent:
		if options.strict {
			return base, &IncompatibleFileError{Path: path, Attribute: KeywordsAttribute}
		}
		base.warn("keywords", fmt.Sprintf("dataset has no %s attribute", KeywordsAttribute))
	case types.AttrInvalid:
		if options.strict {
			return base, &UnsupportedTypeError{Path: path, Value: lookup.Display()}
		}
		base.warn("keywords", fmt.Sprintf("%s attribute is not a string: %v", KeywordsAttribute, lookup.Raw))
	case types.AttrPresent:
		if lookup.Value != model.String() {
			if options.strict {
				return base, &UnsupportedTypeError{Path: path, Value: lookup.Value}
			}
			base.warn("keywords", fmt.Sprintf("dataset declares %q, processing as %s", lookup.Value, model))
		}
	}

	return base, nil
}

func (b *processBase) warn(stage, message string) {
	b.warnings = append(b.warnings, Warning{Stage: stage, Message: message})
}
