package echoproc

import (
	"context"
	"fmt"

	_ "github.com/simonhull/echoproc/internal/netcdf" // Register NetCDF loader
	"github.com/simonhull/echoproc/internal/registry"
	"github.com/simonhull/echoproc/internal/types"
	_ "github.com/simonhull/echoproc/internal/zarr" // Register Zarr loader
)

// Process returns the processing object matching the echosounder that
// produced the dataset at path.
//
// The path must end in .nc (single-file NetCDF) or .zarr (Zarr store). The
// dataset is opened read-only, its keywords attribute is read, and the handle
// is closed before the processing object is built. The object is constructed
// from the path and opens the dataset again on its own.
//
// Errors are distinguishable with errors.Is:
//
//	p, err := echoproc.Process("D20190101-T000000.nc")
//	switch {
//	case errors.Is(err, echoproc.ErrInvalidFormat):    // not .nc or .zarr
//	case errors.Is(err, echoproc.ErrIncompatibleFile): // no keywords attribute
//	case errors.Is(err, echoproc.ErrUnsupportedType):  // keywords not EK60/EK80/AZFP
//	case err != nil:                                    // I/O or corrupted container
//	}
func Process(path string, opts ...Option) (Processor, error) {
	options := applyOptions(opts)

	model, format, err := detect(path, options)
	if err != nil {
		return nil, err
	}

	p, err := construct(model, path, opts)
	if err != nil {
		return nil, err
	}

	options.logger.Debug("dispatched dataset",
		"path", path,
		"format", format.String(),
		"model", model.String(),
	)
	return p, nil
}

// ProcessContext is Process with a context check before any I/O.
func ProcessContext(ctx context.Context, path string, opts ...Option) (Processor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Process(path, opts...)
}

// Detect reports the echosounder recorded in the dataset at path without
// building a processing object. It fails exactly like Process.
func Detect(path string, opts ...Option) (SonarModel, error) {
	model, _, err := detect(path, applyOptions(opts))
	return model, err
}

func detect(path string, options *processOptions) (model SonarModel, format Format, err error) {
	format, ext := FormatFromPath(path)
	if format == FormatUnknown {
		return SonarUnknown, format, &InvalidFormatError{Path: path, Ext: ext}
	}

	ds, err := openDataset(format, path, options)
	if err != nil {
		return SonarUnknown, format, err
	}
	defer func() {
		if cerr := ds.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s dataset: %w", format, cerr)
		}
	}()

	lookup := types.LookupString(ds, KeywordsAttribute)
	switch lookup.State {
	case types.AttrAbsent:
		return SonarUnknown, format, &IncompatibleFileError{Path: path, Attribute: KeywordsAttribute}
	case types.AttrInvalid:
		return SonarUnknown, format, &UnsupportedTypeError{Path: path, Value: lookup.Display()}
	case types.AttrPresent:
	}

	model, ok := ParseSonarModel(lookup.Value)
	if !ok {
		return SonarUnknown, format, &UnsupportedTypeError{Path: path, Value: lookup.Value}
	}
	return model, format, nil
}

// construct builds the processing object for model from path.
func construct(model SonarModel, path string, opts []Option) (Processor, error) {
	//exhaustive:enforce
	switch model {
	case SonarEK60:
		p, err := NewProcessEK60(path, opts...)
		if err != nil {
			return nil, err
		}
		return p, nil
	case SonarEK80:
		p, err := NewProcessEK80(path, opts...)
		if err != nil {
			return nil, err
		}
		return p, nil
	case SonarAZFP:
		p, err := NewProcessAZFP(path, opts...)
		if err != nil {
			return nil, err
		}
		return p, nil
	case SonarUnknown:
	}
	return nil, &UnsupportedTypeError{Path: path, Value: model.String()}
}

// openDataset opens path with the loader for format.
func openDataset(format Format, path string, options *processOptions) (Dataset, error) {
	opener := options.openers[format]
	if opener == nil {
		opener = registry.Get(format)
	}
	if opener == nil {
		return nil, fmt.Errorf("%s: no loader registered for %s", path, format)
	}

	ds, err := opener.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s dataset: %w", format, err)
	}
	return ds, nil
}
