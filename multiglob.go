package dirglob

import (
	"context"
	"errors"
	"io/fs"

	"github.com/zoumo/goset"
	"golang.org/x/sync/errgroup"
)

// MultiGlob is like [Pattern.Glob], but globs multiple patterns concurrently.
// Each pattern is globbed by its own worker (at most GoroutineLimit at once),
// into its own buffer, and the results are concatenated in the order the
// patterns were given. The output is therefore the same as globbing each
// pattern in turn. With Unique, duplicates are removed across all patterns.
// Cancelling ctx stops the workers, and MultiGlob returns the context's error.
func MultiGlob(ctx context.Context, base string, patterns []*Pattern, opts ...GlobOption) ([]string, error) {
	cfg := newGlobConfig(opts)
	if cfg.err != nil {
		return nil, cfg.err
	}

	// Workers must not dedupe independently; that happens when merging.
	wcfg := *cfg
	wcfg.unique = false

	g, gctx := errgroup.WithContext(ctx)
	limit := cfg.goroutines
	if limit <= 0 || limit > len(patterns) {
		limit = len(patterns)
	}
	if limit > 0 {
		g.SetLimit(limit)
	}

	results := make([][]string, len(patterns))
	for i, p := range patterns {
		g.Go(func() error {
			var out []string
			err := p.walk(gctx, base, &wcfg, func(path string) error {
				out = append(out, path)
				return nil
			})
			if err != nil && !errors.Is(err, fs.SkipAll) {
				return err
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// errgroup cancels gctx when Wait returns, so check the parent.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	merged := make([]string, 0)
	var seen goset.Set
	if cfg.unique {
		seen = goset.NewSet()
	}
	for _, r := range results {
		for _, path := range r {
			if seen != nil {
				if seen.Contains(path) {
					continue
				}
				if err := seen.Add(path); err != nil {
					return nil, err
				}
			}
			merged = append(merged, path)
		}
	}
	return merged, nil
}
