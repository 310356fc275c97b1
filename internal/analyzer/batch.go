package analyzer

import (
	"context"
	"sync"
	"time"

	"github.com/jonesrussell/opportunity-radar/internal/domain"
	"github.com/jonesrussell/opportunity-radar/internal/logger"
)

// defaultBatchConcurrency bounds the worker pool for batch analysis.
const defaultBatchConcurrency = 10

// AnalyzeBatch analyzes multiple posts using a worker pool. Posts are
// independent; results keep input order.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, posts []string) []*domain.Verdict {
	a.telemetry.RecordBatch(len(posts))
	if len(posts) == 0 {
		return []*domain.Verdict{}
	}

	startTime := time.Now()

	concurrency := defaultBatchConcurrency
	if len(posts) < concurrency {
		concurrency = len(posts)
	}

	verdicts := make([]*domain.Verdict, len(posts))
	jobs := make(chan int, len(posts))

	var wg sync.WaitGroup
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				verdicts[i] = a.Analyze(ctx, posts[i])
			}
		}()
	}

	for i := range posts {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	opportunities := 0
	for _, v := range verdicts {
		if v.IsOpportunity() {
			opportunities++
		}
	}

	a.logger.Debug("batch analysis complete",
		logger.Int("total", len(posts)),
		logger.Int("opportunities", opportunities),
		logger.Int("concurrency", concurrency),
		logger.Duration("duration", time.Since(startTime)),
	)

	return verdicts
}
