// Package zarr opens Zarr directory stores and exposes their root attributes.
//
// Three layouts are understood, tried in order:
//   - consolidated metadata (.zmetadata, key ".zattrs")
//   - Zarr v2 group attributes (.zattrs)
//   - Zarr v3 group document (zarr.json, key "attributes")
package zarr

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/simonhull/echoproc/internal/registry"
	"github.com/simonhull/echoproc/internal/types"
)

// Metadata document names inside a store.
const (
	ConsolidatedKey = ".zmetadata"
	AttrsKey        = ".zattrs"
	GroupKey        = ".zgroup"
	V3Key           = "zarr.json"
)

func init() {
	registry.Register(types.FormatZarr, Opener{})
}

// Opener opens .zarr directory stores. It is registered for types.FormatZarr.
type Opener struct{}

// Open reads the root attributes of the store at path.
func (Opener) Open(path string) (types.Dataset, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if !stat.IsDir() {
		return nil, &types.CorruptedFileError{Path: path, Reason: "zarr store is not a directory"}
	}

	return OpenFS(os.DirFS(path), path)
}

// OpenFS reads the root attributes of a store rooted at fsys. path is used in
// error messages only.
func OpenFS(fsys fs.FS, path string) (*Dataset, error) {
	attrs, layout, err := readAttributes(fsys, path)
	if err != nil {
		return nil, err
	}

	return &Dataset{
		attrs:  attrs,
		names:  types.SortedNames(attrs),
		layout: layout,
	}, nil
}

// Layout records which metadata document supplied the attributes.
type Layout string

const (
	LayoutConsolidated Layout = ConsolidatedKey
	LayoutV2           Layout = AttrsKey
	LayoutV3           Layout = V3Key
)

type consolidated struct {
	Metadata map[string]json.RawMessage `json:"metadata"`
}

type groupV3 struct {
	ZarrFormat int            `json:"zarr_format"`
	Attributes map[string]any `json:"attributes"`
}

func readAttributes(fsys fs.FS, path string) (map[string]any, Layout, error) {
	if data, ok, err := readOptional(fsys, ConsolidatedKey); err != nil {
		return nil, "", err
	} else if ok {
		var doc consolidated
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, "", &types.CorruptedFileError{Path: path, Reason: fmt.Sprintf("parse %s: %v", ConsolidatedKey, err)}
		}
		attrs := map[string]any{}
		if raw, ok := doc.Metadata[AttrsKey]; ok {
			if err := json.Unmarshal(raw, &attrs); err != nil {
				return nil, "", &types.CorruptedFileError{Path: path, Reason: fmt.Sprintf("parse %s in %s: %v", AttrsKey, ConsolidatedKey, err)}
			}
		}
		return attrs, LayoutConsolidated, nil
	}

	if data, ok, err := readOptional(fsys, AttrsKey); err != nil {
		return nil, "", err
	} else if ok {
		attrs := map[string]any{}
		if err := json.Unmarshal(data, &attrs); err != nil {
			return nil, "", &types.CorruptedFileError{Path: path, Reason: fmt.Sprintf("parse %s: %v", AttrsKey, err)}
		}
		return attrs, LayoutV2, nil
	}

	if data, ok, err := readOptional(fsys, V3Key); err != nil {
		return nil, "", err
	} else if ok {
		var doc groupV3
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, "", &types.CorruptedFileError{Path: path, Reason: fmt.Sprintf("parse %s: %v", V3Key, err)}
		}
		if doc.ZarrFormat != 3 {
			return nil, "", &types.CorruptedFileError{Path: path, Reason: fmt.Sprintf("%s declares zarr_format %d", V3Key, doc.ZarrFormat)}
		}
		if doc.Attributes == nil {
			doc.Attributes = map[string]any{}
		}
		return doc.Attributes, LayoutV3, nil
	}

	// A bare v2 group without .zattrs is a valid store with no attributes.
	if _, ok, err := readOptional(fsys, GroupKey); err != nil {
		return nil, "", err
	} else if ok {
		return map[string]any{}, LayoutV2, nil
	}

	return nil, "", &types.CorruptedFileError{Path: path, Reason: "no zarr metadata found"}
}

func readOptional(fsys fs.FS, name string) ([]byte, bool, error) {
	data, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", name, err)
	}
	return data, true, nil
}

// Dataset holds the root attributes of a Zarr store.
//
// Stores are directories of small JSON documents, so the attributes are read
// eagerly and no file stays open after OpenFS returns.
type Dataset struct {
	attrs  map[string]any
	names  []string
	layout Layout

	mu     sync.Mutex
	closed bool
}

// Layout reports which metadata document supplied the attributes.
func (d *Dataset) Layout() Layout {
	return d.layout
}

// Attribute returns a root attribute.
func (d *Dataset) Attribute(name string) (any, bool) {
	v, ok := d.attrs[name]
	return v, ok
}

// AttributeNames lists the root attributes in lexical order; JSON objects
// carry no order of their own.
func (d *Dataset) AttributeNames() []string {
	return d.names
}

// Close marks the dataset closed. Subsequent calls are no-ops.
func (d *Dataset) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (d *Dataset) Closed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}
