package main

import (
	"fmt"
	"os"

	"github.com/simonhull/echoproc/internal/netcdf"
	"github.com/simonhull/echoproc/internal/registry"
	"github.com/simonhull/echoproc/internal/types"
	"github.com/simonhull/echoproc/internal/zarr"
)

// Useful test tool to confirm which global attributes the loaders actually see.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: attr-dump <dataset.nc|dataset.zarr>")
		os.Exit(1)
	}

	if err := dump(os.Args[1]); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func dump(path string) error {
	format, ext := types.FormatFromPath(path)
	if format == types.FormatUnknown {
		return &types.InvalidFormatError{Path: path, Ext: ext}
	}

	ds, err := registry.Get(format).Open(path)
	if err != nil {
		return err
	}
	defer ds.Close()

	switch d := ds.(type) {
	case *netcdf.Dataset:
		fmt.Printf("%s (%s, %s)\n", path, format, d.Variant())
	case *zarr.Dataset:
		fmt.Printf("%s (%s, %s)\n", path, format, d.Layout())
	default:
		fmt.Printf("%s (%s)\n", path, format)
	}

	attrs := types.Attributes(ds)
	for _, name := range types.SortedNames(attrs) {
		fmt.Printf("  %s: %s\n", name, formatValue(attrs[name]))
	}

	lookup := types.LookupString(ds, types.KeywordsAttribute)
	switch lookup.State {
	case types.AttrPresent:
		if model, ok := types.ParseSonarModel(lookup.Value); ok {
			fmt.Printf("model: %s (%s)\n", model, model.Manufacturer())
		} else {
			fmt.Printf("model: unsupported %q\n", lookup.Value)
		}
	case types.AttrInvalid:
		fmt.Printf("model: %s is not a string (%T)\n", types.KeywordsAttribute, lookup.Raw)
	case types.AttrAbsent:
		fmt.Printf("model: no %s attribute\n", types.KeywordsAttribute)
	}

	return nil
}

func formatValue(v any) string {
	switch v := v.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	case []byte:
		return fmt.Sprintf("%q", string(v))
	default:
		return fmt.Sprintf("%v (%T)", v, v)
	}
}
