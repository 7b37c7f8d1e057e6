// Package netcdf opens single-file NetCDF datasets, classic or NetCDF4.
package netcdf

import (
	"fmt"
	"sync"

	"github.com/batchatco/go-native-netcdf/netcdf/api"
	"github.com/batchatco/go-native-netcdf/netcdf/cdf"
	"github.com/batchatco/go-native-netcdf/netcdf/hdf5"

	"github.com/simonhull/echoproc/internal/registry"
	"github.com/simonhull/echoproc/internal/types"
)

func init() {
	registry.Register(types.FormatNetCDF, Opener{})
}

// Opener opens .nc files. It is registered for types.FormatNetCDF.
type Opener struct{}

// Open sniffs the file's variant and opens it with the matching reader.
func (Opener) Open(path string) (types.Dataset, error) {
	variant, err := Sniff(path)
	if err != nil {
		return nil, err
	}

	var group api.Group
	if variant.IsHDF5() {
		group, err = hdf5.Open(path)
	} else {
		group, err = cdf.Open(path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s dataset %s: %w", variant, path, err)
	}

	return &Dataset{group: group, variant: variant}, nil
}

// Dataset is an open NetCDF file.
type Dataset struct {
	group   api.Group
	variant Variant
	once    sync.Once
}

// Variant returns the on-disk flavour of the file.
func (d *Dataset) Variant() Variant {
	return d.variant
}

// Attribute returns a global attribute.
func (d *Dataset) Attribute(name string) (any, bool) {
	return d.group.Attributes().Get(name)
}

// AttributeNames lists the global attributes in file order.
func (d *Dataset) AttributeNames() []string {
	return d.group.Attributes().Keys()
}

// Close releases the file. Subsequent calls are no-ops.
func (d *Dataset) Close() error {
	d.once.Do(d.group.Close)
	return nil
}
