package types

import (
	"errors"
	"fmt"
)

// Sentinels for the dispatch failure kinds. Each typed error below matches
// exactly one of them under errors.Is.
var (
	ErrInvalidFormat    = errors.New("invalid file format")
	ErrIncompatibleFile = errors.New("incompatible file")
	ErrUnsupportedType  = errors.New("unsupported echosounder type")
)

// InvalidFormatError is returned when a path does not end in a recognised
// container suffix. It is raised before any I/O takes place.
type InvalidFormatError struct {
	Path string
	Ext  string
}

func (e *InvalidFormatError) Error() string {
	ext := e.Ext
	if ext == "" {
		ext = "(no extension)"
	}
	if e.Path == "" {
		return fmt.Sprintf("empty path: %s is not a valid file format", ext)
	}
	return fmt.Sprintf("%s: %s is not a valid file format", e.Path, ext)
}

// Is reports whether target is ErrInvalidFormat.
func (e *InvalidFormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}

// IncompatibleFileError is returned when a dataset opens but carries no
// keywords attribute.
type IncompatibleFileError struct {
	Path      string
	Attribute string
}

func (e *IncompatibleFileError) Error() string {
	return fmt.Sprintf("%s: file is incompatible: missing %q attribute", e.Path, e.Attribute)
}

// Is reports whether target is ErrIncompatibleFile.
func (e *IncompatibleFileError) Is(target error) bool {
	return target == ErrIncompatibleFile
}

// UnsupportedTypeError is returned when the keywords attribute is present but
// does not name a supported echosounder.
type UnsupportedTypeError struct {
	Path  string
	Value string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("%s: unsupported file type %q", e.Path, e.Value)
}

// Is reports whether target is ErrUnsupportedType.
func (e *UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedType
}

// OutOfBoundsError is returned when attempting to read beyond file bounds.
type OutOfBoundsError struct {
	Path   string
	What   string
	Offset int64
	Length int
	Size   int64
}

func (e *OutOfBoundsError) Error() string {
	if e.Offset >= e.Size {
		return fmt.Sprintf("%s: offset %d out of bounds (file size: %d) while reading %s",
			e.Path, e.Offset, e.Size, e.What)
	}
	return fmt.Sprintf("%s: read of %d bytes at offset %d would exceed file size %d while reading %s",
		e.Path, e.Length, e.Offset, e.Size, e.What)
}

// CorruptedFileError is returned when a container's structure is invalid:
// a .nc file without a NetCDF signature, or a .zarr store without metadata.
type CorruptedFileError struct {
	Path   string
	Reason string
	Offset int64
}

func (e *CorruptedFileError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("%s: corrupted file at offset %d: %s", e.Path, e.Offset, e.Reason)
	}
	return fmt.Sprintf("%s: corrupted file: %s", e.Path, e.Reason)
}

// Warning represents a non-fatal issue found while building a processing object.
type Warning struct {
	// Stage where the warning occurred ("open", "attributes", "keywords")
	Stage string

	// Warning message
	Message string
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
