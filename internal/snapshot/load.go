package snapshot

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// LoadAll decodes the given snapshot files concurrently and merges them
// into a single build in argument order, so the result is deterministic
// regardless of decode completion order. Resolution itself stays
// single-threaded; only the file decoding fans out.
func LoadAll(ctx context.Context, paths []string, jobs int) (*Build, error) {
	if len(paths) == 0 {
		return nil, errors.New("no snapshot files given")
	}
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	files := make([]*File, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := Load(path)
			if err != nil {
				return err
			}
			files[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Materialize(Merge(files[0], files[1:]...)), nil
}
