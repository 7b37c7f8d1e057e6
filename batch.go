package echoproc

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// ProcessMany dispatches multiple datasets concurrently.
//
// Datasets are processed in parallel using up to WithConcurrency goroutines
// (runtime.NumCPU() by default). Results are returned in the same order as the
// input paths. The first failure cancels the remaining work and is returned.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	procs, err := echoproc.ProcessMany(ctx, paths)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, p := range procs {
//		fmt.Printf("%s: %s\n", p.Path(), p.Model())
//	}
func ProcessMany(ctx context.Context, paths []string, opts ...Option) ([]Processor, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	options := applyOptions(opts)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(options.concurrency)

	results := make([]Processor, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			p, err := Process(path, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Result is the outcome of dispatching one path in ProcessAll.
type Result struct {
	Path      string
	Processor Processor
	Err       error
}

// Kind classifies the result's error.
func (r Result) Kind() ErrorKind {
	return Classify(r.Err)
}

// ProcessAll dispatches every path concurrently and reports each outcome.
//
// Unlike ProcessMany, a failure does not stop the batch: every path gets a
// Result, in input order. Once ctx is done, paths not yet started get
// ctx.Err() as their error.
func ProcessAll(ctx context.Context, paths []string, opts ...Option) []Result {
	options := applyOptions(opts)

	var g errgroup.Group
	g.SetLimit(options.concurrency)

	results := make([]Result, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			results[i] = Result{Path: path}
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}

			p, err := Process(path, opts...)
			results[i].Processor = p
			results[i].Err = err
			return nil
		})
	}

	_ = g.Wait()
	return results
}

// Discover walks root and returns the paths of every .nc file and .zarr store
// beneath it, in lexical order. Zarr stores are not descended into.
//
// If root is itself a .zarr store, Discover returns just root. Symbolic links
// are followed to decide whether they name a file or a store, but linked
// directories are not descended into. Dangling links are skipped.
func Discover(root string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		format, _ := FormatFromPath(path)
		switch {
		case d.IsDir() && format == FormatZarr:
			paths = append(paths, path)
			return filepath.SkipDir
		case d.Type().IsRegular() && format == FormatNetCDF:
			paths = append(paths, path)
		case d.Type()&fs.ModeSymlink != 0 && format != FormatUnknown:
			info, err := os.Stat(path)
			if err != nil {
				return nil
			}
			if (format == FormatNetCDF && info.Mode().IsRegular()) || (format == FormatZarr && info.IsDir()) {
				paths = append(paths, path)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discover datasets in %s: %w", root, err)
	}

	return paths, nil
}
