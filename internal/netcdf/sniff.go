package netcdf

import (
	"fmt"
	"os"

	"github.com/simonhull/echoproc/internal/binary"
	"github.com/simonhull/echoproc/internal/types"
)

// Variant identifies the on-disk flavour of a NetCDF file.
type Variant int

const (
	// VariantUnknown is returned alongside an error.
	VariantUnknown Variant = iota
	// VariantClassic is CDF-1, the original classic format.
	VariantClassic
	// VariantOffset64 is CDF-2, classic with 64-bit offsets.
	VariantOffset64
	// VariantData64 is CDF-5, classic with 64-bit data.
	VariantData64
	// VariantNetCDF4 is NetCDF4, stored as HDF5.
	VariantNetCDF4
)

// String returns the conventional name of the variant.
func (v Variant) String() string {
	switch v {
	case VariantClassic:
		return "NetCDF3 classic"
	case VariantOffset64:
		return "NetCDF3 64-bit offset"
	case VariantData64:
		return "NetCDF3 64-bit data"
	case VariantNetCDF4:
		return "NetCDF4/HDF5"
	case VariantUnknown:
		return "unknown"
	default:
		return "unknown"
	}
}

// IsHDF5 reports whether the variant is read through the HDF5 reader.
func (v Variant) IsHDF5() bool {
	return v == VariantNetCDF4
}

var hdf5Signature = []byte("\x89HDF\r\n\x1a\n")

// Sniff opens path and identifies its NetCDF variant from the signature.
//
// The file is closed before Sniff returns.
func Sniff(path string) (Variant, error) {
	f, err := os.Open(path)
	if err != nil {
		return VariantUnknown, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return VariantUnknown, fmt.Errorf("stat file: %w", err)
	}
	if stat.IsDir() {
		return VariantUnknown, &types.CorruptedFileError{Path: path, Reason: "is a directory, not a NetCDF file"}
	}

	return SniffReader(binary.NewSafeReader(f, stat.Size(), path))
}

// SniffReader identifies the NetCDF variant of the data behind sr.
//
// Classic files start with "CDF" and a version byte. NetCDF4 files start
// with the HDF5 signature. HDF5 files with a user block are not accepted.
func SniffReader(sr *binary.SafeReader) (Variant, error) {
	if sr.Size() < 4 {
		return VariantUnknown, &types.CorruptedFileError{Path: sr.Path(), Reason: "file too small"}
	}

	if sr.Match(0, []byte("CDF")) {
		r := binary.NewReader(sr, 0)
		r.Skip(3)
		version, err := binary.ReadValue[uint8](r, "CDF version byte")
		if err != nil {
			return VariantUnknown, err
		}
		switch version {
		case 1:
			return VariantClassic, nil
		case 2:
			return VariantOffset64, nil
		case 5:
			return VariantData64, nil
		default:
			return VariantUnknown, &types.CorruptedFileError{
				Path:   sr.Path(),
				Offset: r.Offset() - 1,
				Reason: fmt.Sprintf("unknown CDF version %d", version),
			}
		}
	}

	if sr.Match(0, hdf5Signature) {
		return VariantNetCDF4, nil
	}

	return VariantUnknown, &types.CorruptedFileError{Path: sr.Path(), Reason: "no NetCDF or HDF5 signature"}
}
