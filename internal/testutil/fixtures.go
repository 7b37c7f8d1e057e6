// Package testutil builds small on-disk sonar datasets for tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/simonhull/echoproc/internal/binary"
)

// NetCDF classic header tags and type codes.
const (
	ncAttribute = 0x0C
	ncChar      = 2
	ncInt       = 4
)

// Attr is a global attribute written into a fixture. Value must be a string
// or an int32.
type Attr struct {
	Name  string
	Value any
}

// Keywords is shorthand for the keywords attribute.
func Keywords(value string) Attr {
	return Attr{Name: "keywords", Value: value}
}

// NetCDFClassic encodes a CDF-1 file with the given global attributes and no
// dimensions or variables.
func NetCDFClassic(attrs ...Attr) ([]byte, error) {
	buf := &bytes.Buffer{}
	sw := binary.NewSafeWriter(buf)

	_ = sw.WriteString("CDF")
	_ = binary.Write[uint8](sw, 1)
	_ = binary.Write[uint32](sw, 0) // numrecs

	// dim_list ABSENT
	_ = binary.Write[uint32](sw, 0)
	_ = binary.Write[uint32](sw, 0)

	if len(attrs) == 0 {
		_ = binary.Write[uint32](sw, 0)
		_ = binary.Write[uint32](sw, 0)
	} else {
		_ = binary.Write[uint32](sw, ncAttribute)
		_ = binary.Write[uint32](sw, uint32(len(attrs)))
		for _, a := range attrs {
			if err := writeAttr(sw, a); err != nil {
				return nil, err
			}
		}
	}

	// var_list ABSENT
	_ = binary.Write[uint32](sw, 0)
	if err := binary.Write[uint32](sw, 0); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func writeAttr(sw *binary.SafeWriter, a Attr) error {
	_ = binary.Write[uint32](sw, uint32(len(a.Name)))
	_ = sw.WriteString(a.Name)
	_ = sw.Pad(4)

	switch v := a.Value.(type) {
	case string:
		_ = binary.Write[uint32](sw, ncChar)
		_ = binary.Write[uint32](sw, uint32(len(v)))
		_ = sw.WriteString(v)
		return sw.Pad(4)
	case int32:
		_ = binary.Write[uint32](sw, ncInt)
		_ = binary.Write[uint32](sw, 1)
		return binary.Write[uint32](sw, uint32(v))
	default:
		return fmt.Errorf("unsupported fixture attribute type %T", a.Value)
	}
}

// WriteNetCDF writes a CDF-1 fixture to dir/name and returns its path.
func WriteNetCDF(t testing.TB, dir, name string, attrs ...Attr) string {
	t.Helper()

	data, err := NetCDFClassic(attrs...)
	require.NoError(t, err)

	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

// ZarrLayout selects how root attributes are stored in a Zarr fixture.
type ZarrLayout int

const (
	// ZarrV2 writes .zgroup and .zattrs.
	ZarrV2 ZarrLayout = iota
	// ZarrConsolidated writes .zgroup and a consolidated .zmetadata only.
	ZarrConsolidated
	// ZarrV3 writes a zarr.json group document.
	ZarrV3
)

// WriteZarr writes a Zarr group store to dir/name and returns its path.
// A nil attrs map writes the group without any attribute document.
func WriteZarr(t testing.TB, dir, name string, layout ZarrLayout, attrs map[string]any) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(path, 0o755))

	group := map[string]any{"zarr_format": 2}

	switch layout {
	case ZarrV2:
		writeJSON(t, filepath.Join(path, ".zgroup"), group)
		if attrs != nil {
			writeJSON(t, filepath.Join(path, ".zattrs"), attrs)
		}
	case ZarrConsolidated:
		writeJSON(t, filepath.Join(path, ".zgroup"), group)
		metadata := map[string]any{".zgroup": group}
		if attrs != nil {
			metadata[".zattrs"] = attrs
		}
		writeJSON(t, filepath.Join(path, ".zmetadata"), map[string]any{
			"metadata":                 metadata,
			"zarr_consolidated_format": 1,
		})
	case ZarrV3:
		doc := map[string]any{"zarr_format": 3, "node_type": "group"}
		if attrs != nil {
			doc["attributes"] = attrs
		}
		writeJSON(t, filepath.Join(path, "zarr.json"), doc)
	}

	return path
}

func writeJSON(t testing.TB, path string, v any) {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

// WriteFile writes raw bytes to path, creating parent directories.
func WriteFile(t testing.TB, path string, data []byte) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}
