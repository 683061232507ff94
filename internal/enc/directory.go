package enc

import (
	"context"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentPacks bounds how many files pack/unpack concurrently within
// one directory-level operation.
const maxConcurrentPacks = 4

// PackFiles packs each of paths independently and concurrently using an
// errgroup. progress is not called: each file is packed with a nil
// progress callback.
func PackFiles(ctx context.Context, paths []string, password []byte, splitSize int64, progress ProgressFunc) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentPacks)
	for _, p := range paths {
		p := p
		g.Go(func() error {
			_, err := PackFile(ctx, p, password, splitSize, nil)
			return err
		})
	}
	return g.Wait()
}

// UnpackAllGroups discovers every chunk group in dir and unpacks each one
// concurrently.
func UnpackAllGroups(ctx context.Context, dir string, password []byte, progress ProgressFunc) ([]string, error) {
	groups, err := GroupEncFiles(dir)
	if err != nil {
		return nil, err
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentPacks)
	results := make([]string, len(groups))
	ids := make([]string, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			path, err := UnpackGroup(ctx, dir, id, password, nil)
			if err != nil {
				return err
			}
			results[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// groupDir returns the containing directory a chunk file's group lives in.
func groupDir(chunkPath string) string {
	return filepath.Dir(chunkPath)
}
