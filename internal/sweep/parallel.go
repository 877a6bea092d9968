package sweep

import (
	"context"
	"sync"

	"github.com/san-kum/ferrosim/internal/ferro"
)

// Ensemble runs one material per coupling-strength value, each confined to
// its own goroutine. Materials are not thread-safe, so every run gets a
// fresh one from the build function.
type Ensemble struct {
	build     func(coupling float64) (*ferro.Material, error)
	couplings []float64
	factories []func() ferro.Metric
}

func NewEnsemble(build func(coupling float64) (*ferro.Material, error), couplings []float64) *Ensemble {
	return &Ensemble{build: build, couplings: couplings}
}

// AddMetric registers a factory; each run observes through its own metric
// instance.
func (e *Ensemble) AddMetric(factory func() ferro.Metric) {
	e.factories = append(e.factories, factory)
}

func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, len(e.couplings))
	errs := make([]error, len(e.couplings))

	var wg sync.WaitGroup
	for i, k := range e.couplings {
		wg.Add(1)
		go func(idx int, coupling float64) {
			defer wg.Done()

			mat, err := e.build(coupling)
			if err != nil {
				errs[idx] = err
				return
			}

			r := New(mat)
			for _, factory := range e.factories {
				r.AddMetric(factory())
			}

			results[idx], errs[idx] = r.Run(ctx, cfg)
		}(i, k)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
