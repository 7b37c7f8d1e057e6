package echoproc

import (
	"github.com/simonhull/echoproc/internal/types"
)

// Format is the container a dataset is stored in.
type Format = types.Format

// Container formats.
const (
	FormatUnknown = types.FormatUnknown
	FormatNetCDF  = types.FormatNetCDF
	FormatZarr    = types.FormatZarr
)

// FormatFromPath selects a Format from the suffix of the path's base name and
// returns the extension for error reporting.
func FormatFromPath(path string) (Format, string) {
	return types.FormatFromPath(path)
}

// Dataset is an open, read-only dataset handle.
type Dataset = types.Dataset

// DatasetOpener opens a dataset by path.
type DatasetOpener = types.DatasetOpener

// OpenerFunc adapts a function to DatasetOpener.
type OpenerFunc = types.OpenerFunc
