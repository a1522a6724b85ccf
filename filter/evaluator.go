package filter

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// EvaluatorOption configures ApplyConcurrent
type EvaluatorOption func(*evaluatorOptions)

type evaluatorOptions struct {
	workerCount int
	batchSize   int
}

// WithWorkers sets the number of worker goroutines
func WithWorkers(workers int) EvaluatorOption {
	return func(o *evaluatorOptions) {
		if workers > 0 {
			o.workerCount = workers
		}
	}
}

// WithBatchSize sets the chunk size below which evaluation stays sequential
func WithBatchSize(size int) EvaluatorOption {
	return func(o *evaluatorOptions) {
		if size > 0 {
			o.batchSize = size
		}
	}
}

// ApplyConcurrent is Apply split across worker goroutines. Results keep
// the order of items. It returns ctx.Err() if ctx ends first.
func ApplyConcurrent[T any](ctx context.Context, f *Filter, items []T, opts ...EvaluatorOption) ([]T, error) {
	o := evaluatorOptions{
		workerCount: runtime.GOMAXPROCS(0),
		batchSize:   100,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if len(items) < o.batchSize {
		return Apply(f, items), nil
	}

	chunkSize := max(len(items)/o.workerCount, o.batchSize)
	chunks := make([][]T, (len(items)+chunkSize-1)/chunkSize)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workerCount)

	for i := range chunks {
		i := i
		start := i * chunkSize
		end := min(start+chunkSize, len(items))

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			chunks[i] = Apply(f, items[start:end])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	total := 0
	for _, chunk := range chunks {
		total += len(chunk)
	}
	matched := make([]T, 0, total)
	for _, chunk := range chunks {
		matched = append(matched, chunk...)
	}
	return matched, nil
}
