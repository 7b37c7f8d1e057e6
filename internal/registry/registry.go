// Package registry maps container formats to the loaders that open them.
package registry

import (
	"github.com/simonhull/echoproc/internal/types"
)

// openers maps formats to their dataset openers.
var openers = make(map[types.Format]types.DatasetOpener)

// Register registers an opener for a format.
// This is called by loader packages during initialization (init functions).
func Register(format types.Format, opener types.DatasetOpener) {
	openers[format] = opener
}

// Get returns the opener for a given format.
// Returns nil if no opener is registered for the format.
func Get(format types.Format) types.DatasetOpener {
	return openers[format]
}

// Formats returns every format with a registered opener.
func Formats() []types.Format {
	formats := make([]types.Format, 0, len(openers))
	for f := range openers {
		formats = append(formats, f)
	}
	return formats
}
