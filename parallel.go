package octree

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// parallelFor runs fn(i) for every i in [0, n) and waits for completion.
// When the tree was built with Workers <= 1, or the range is too small
// to be worth handing off, it runs sequentially in index order. fn must
// be safe to call concurrently and must touch only index i's own output
// slots (spec §5: derived-data passes write disjoint, pre-sized output
// positions, so a bounded worker pool needs no further synchronization).
func (t *Tree) parallelFor(n int, fn func(i int)) {
	if n == 0 {
		return
	}
	if t.workers <= 1 || n < 2*t.workers {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	tasks := make(chan int, n)
	for i := 0; i < n; i++ {
		tasks <- i
	}
	close(tasks)

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(t.workers)
	for w := 0; w < t.workers; w++ {
		g.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case i, ok := <-tasks:
					if !ok {
						return nil
					}
					fn(i)
				}
			}
		})
	}
	_ = g.Wait()
}
