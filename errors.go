package echoproc

import (
	"context"
	"errors"

	"github.com/simonhull/echoproc/internal/types"
)

// InvalidFormatError is returned when a path does not end in .nc or .zarr.
type InvalidFormatError = types.InvalidFormatError

// IncompatibleFileError is returned when a dataset has no keywords attribute.
type IncompatibleFileError = types.IncompatibleFileError

// UnsupportedTypeError is returned when the keywords attribute names no
// supported echosounder.
type UnsupportedTypeError = types.UnsupportedTypeError

// CorruptedFileError is returned when a container's structure is invalid.
type CorruptedFileError = types.CorruptedFileError

// OutOfBoundsError is returned when a header read runs past the end of a file.
type OutOfBoundsError = types.OutOfBoundsError

// Warning is a non-fatal issue recorded by a processing object constructor.
type Warning = types.Warning

// Sentinels matched by the typed errors under errors.Is.
var (
	ErrInvalidFormat    = types.ErrInvalidFormat
	ErrIncompatibleFile = types.ErrIncompatibleFile
	ErrUnsupportedType  = types.ErrUnsupportedType
)

// ErrorKind classifies a dispatch error.
type ErrorKind int

const (
	// KindNone is the kind of a nil error.
	KindNone ErrorKind = iota
	// KindInvalidFormat: the path suffix is not .nc or .zarr.
	KindInvalidFormat
	// KindIncompatibleFile: the dataset has no keywords attribute.
	KindIncompatibleFile
	// KindUnsupportedType: the keywords attribute names no supported model.
	KindUnsupportedType
	// KindCorrupted: the container could not be recognised.
	KindCorrupted
	// KindCanceled: the context was cancelled or timed out.
	KindCanceled
	// KindIO: any other failure, typically from the file system.
	KindIO
)

// String returns a stable identifier suitable for reports and storage.
func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return ""
	case KindInvalidFormat:
		return "invalid-format"
	case KindIncompatibleFile:
		return "incompatible-file"
	case KindUnsupportedType:
		return "unsupported-type"
	case KindCorrupted:
		return "corrupted"
	case KindCanceled:
		return "canceled"
	case KindIO:
		return "io"
	default:
		return "io"
	}
}

// Classify maps err to its ErrorKind.
func Classify(err error) ErrorKind {
	var corrupted *CorruptedFileError
	var outOfBounds *OutOfBoundsError

	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrInvalidFormat):
		return KindInvalidFormat
	case errors.Is(err, ErrIncompatibleFile):
		return KindIncompatibleFile
	case errors.Is(err, ErrUnsupportedType):
		return KindUnsupportedType
	case errors.As(err, &corrupted), errors.As(err, &outOfBounds):
		return KindCorrupted
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCanceled
	default:
		return KindIO
	}
}
