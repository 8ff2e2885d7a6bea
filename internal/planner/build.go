package planner

import (
	"context"
	"fmt"
	"sync"

	"github.com/vk/cubeplan/internal/config"
	"github.com/vk/cubeplan/internal/ctxlog"
)

// buildLayer marks every layout of every view in the layer as built, on a
// bounded pool of workers. The first failure wins; remaining jobs drain
// without doing work once the context is canceled.
func (p *Planner) buildLayer(ctx context.Context, views []*config.View) error {
	logger := ctxlog.FromContext(ctx)

	workers := p.numWorkers
	if workers > len(views) {
		workers = len(views)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan *config.View)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
		cancel()
	}

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(workerID int) {
			defer wg.Done()
			for v := range jobs {
				if runCtx.Err() != nil {
					continue
				}
				if err := p.buildView(runCtx, v); err != nil {
					logger.Error("Layer build failed.", "workerID", workerID, "view_id", v.ID, "error", err)
					fail(err)
				}
			}
		}(i)
	}

	for _, v := range views {
		jobs <- v
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}

// buildView records the simulated materialization of one view: every
// layout it owns becomes built at the catalog's estimated row count.
func (p *Planner) buildView(ctx context.Context, v *config.View) error {
	ctxlog.FromContext(ctx).Debug("Simulating view build.", "view_id", v.ID, "rows", v.RowEstimate)
	for _, layout := range v.Layouts {
		if err := p.seg.MarkBuilt(layout.ID, v.RowEstimate); err != nil {
			return fmt.Errorf("failed to mark layout %d built: %w", layout.ID, err)
		}
	}
	return nil
}
