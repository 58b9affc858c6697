package sim

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Ensemble runs independent simulations over consecutive seeds. Each run
// gets its own canvas, population and generator, so runs share nothing.
type Ensemble struct {
	cfg       Config
	numRuns   int
	seedStart int64
	workers   int
	setup     func(run int, s *Simulator)
}

func NewEnsemble(cfg Config, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{
		cfg:       cfg,
		numRuns:   numRuns,
		seedStart: seedStart,
		workers:   runtime.GOMAXPROCS(0),
	}
}

// SetWorkers bounds how many runs execute at once.
func (e *Ensemble) SetWorkers(n int) {
	if n > 0 {
		e.workers = n
	}
}

// OnSetup registers a hook to attach metrics or observers to each run
// before it starts. The hook may be called from several goroutines.
func (e *Ensemble) OnSetup(fn func(run int, s *Simulator)) { e.setup = fn }

// Run returns the results in seed order. The first failing run cancels
// the ones that have not finished.
func (e *Ensemble) Run(ctx context.Context) ([]*Result, error) {
	if err := e.cfg.Validate(); err != nil {
		return nil, err
	}

	results := make([]*Result, e.numRuns)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i := 0; i < e.numRuns; i++ {
		idx := i
		g.Go(func() error {
			cfgCopy := e.cfg
			cfgCopy.Seed = e.seedStart + int64(idx)

			s, err := New(cfgCopy)
			if err != nil {
				return err
			}
			if e.setup != nil {
				e.setup(idx, s)
			}

			res, err := s.Run(ctx)
			results[idx] = res
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
