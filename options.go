package echoproc

import (
	"log/slog"
	"runtime"
)

// Option configures dispatch and processing object construction.
//
// Options use the functional options pattern:
//
//	p, err := echoproc.Process("D20190101-T000000.nc",
//	    echoproc.WithLogger(logger),
//	    echoproc.WithStrict(),
//	)
type Option func(*processOptions)

// processOptions holds configuration for a dispatch.
type processOptions struct {
	logger      *slog.Logger
	openers     map[Format]DatasetOpener
	strict      bool // Fail construction on any warning
	concurrency int  // Parallel dispatches in ProcessMany/ProcessAll
}

// defaultOptions returns the default configuration.
func defaultOptions() *processOptions {
	return &processOptions{
		logger:      slog.New(slog.DiscardHandler),
		strict:      false,
		concurrency: runtime.NumCPU(),
	}
}

func applyOptions(opts []Option) *processOptions {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithLogger sets the logger used for debug records about dispatches.
//
// Errors are returned, never logged. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(o *processOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithStrict turns constructor warnings into errors.
//
// By default a processing object built for a file whose keywords name a
// different model (or no model) is returned with a Warning. In strict mode
// construction fails with an IncompatibleFileError or UnsupportedTypeError.
func WithStrict() Option {
	return func(o *processOptions) {
		o.strict = true
	}
}

// WithConcurrency bounds the number of parallel dispatches performed by
// ProcessMany and ProcessAll. Values below 1 select runtime.NumCPU().
func WithConcurrency(n int) Option {
	return func(o *processOptions) {
		if n < 1 {
			n = runtime.NumCPU()
		}
		o.concurrency = n
	}
}

// WithDatasetOpener replaces the loader used for format.
//
// The built-in loaders read local .nc files and .zarr directories. A custom
// opener can serve datasets from elsewhere or instrument handle usage.
func WithDatasetOpener(format Format, opener DatasetOpener) Option {
	return func(o *processOptions) {
		if o.openers == nil {
			o.openers = make(map[Format]DatasetOpener)
		}
		o.openers[format] = opener
	}
}
