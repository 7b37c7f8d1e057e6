package types

import (
	"path/filepath"
	"strings"
)

// Format represents the container a sonar dataset is stored in.
type Format int

const (
	// FormatUnknown represents an unknown or unsupported container.
	FormatUnknown Format = iota
	// FormatNetCDF represents a single-file NetCDF dataset (classic or NetCDF4/HDF5).
	FormatNetCDF
	// FormatZarr represents a chunked Zarr directory store.
	FormatZarr
)

// String returns the display name of the format.
func (f Format) String() string {
	switch f {
	case FormatNetCDF:
		return "NetCDF"
	case FormatZarr:
		return "Zarr"
	case FormatUnknown:
		return "Unknown"
	default:
		return "Unknown"
	}
}

// Extensions returns the path suffixes recognised for this format.
func (f Format) Extensions() []string {
	switch f {
	case FormatNetCDF:
		return []string{".nc"}
	case FormatZarr:
		return []string{".zarr"}
	case FormatUnknown:
		return nil
	default:
		return nil
	}
}

// FormatFromPath selects a format from the suffix of the path's base name.
//
// Matching is case-sensitive. A trailing separator is ignored so that
// "survey.zarr/" resolves like "survey.zarr". The returned extension is the
// one reported by filepath.Ext and is meant for error messages.
//
// An empty path has no extension.
func FormatFromPath(path string) (Format, string) {
	if path == "" {
		return FormatUnknown, ""
	}

	name := filepath.Base(path)
	ext := filepath.Ext(name)

	switch {
	case strings.HasSuffix(name, ".nc"):
		return FormatNetCDF, ext
	case strings.HasSuffix(name, ".zarr"):
		return FormatZarr, ext
	default:
		return FormatUnknown, ext
	}
}
