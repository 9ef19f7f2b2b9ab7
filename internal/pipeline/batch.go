package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-analyzer/internal/types"
)

// defaultBatchConcurrency bounds how many documents are analyzed at once.
const defaultBatchConcurrency = 4

// BatchItem is the outcome of analyzing one document in a batch. Exactly one
// of Result and Err is set.
type BatchItem struct {
	Path   string
	Result *types.AnalysisResult
	Err    error
}

// AnalyzeBatch analyzes each document concurrently and returns one item per
// input path, in input order. A failing document records its error in the
// corresponding item without aborting its siblings; only context
// cancellation stops the batch early.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, paths []string, jobDescription string) []BatchItem {
	items := make([]BatchItem, len(paths))

	limit := a.BatchConcurrency
	if limit <= 0 {
		limit = defaultBatchConcurrency
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			result, err := a.Analyze(gctx, path, jobDescription)
			items[i] = BatchItem{Path: path, Result: result, Err: err}
			// Per-document failures are reported per item, not as a
			// group error, so siblings keep running.
			return gctx.Err()
		})
	}

	_ = g.Wait()

	// Mark any slots skipped by early cancellation.
	for i := range items {
		if items[i].Result == nil && items[i].Err == nil {
			items[i] = BatchItem{Path: paths[i], Err: ctx.Err()}
		}
	}

	return items
}
