package sim

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/san-kum/turtlesim/internal/palette"
	"github.com/san-kum/turtlesim/internal/raster"
)

type Simulator struct {
	cfg       Config
	canvas    raster.Canvas
	recorder  *raster.Recorder
	pop       *Population
	metrics   []Metric
	observers []Observer
}

// New validates cfg, allocates the canvas and places the seed turtles. All
// randomness of the run comes from one generator seeded with cfg.Seed.
func New(cfg Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	policy, err := NewPolicy(cfg)
	if err != nil {
		return nil, err
	}
	colors, err := palette.Sequential(cfg.Palette, cfg.Seeds)
	if err != nil {
		return nil, err
	}

	s := &Simulator{
		cfg:       cfg,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
	s.canvas = raster.New(cfg.Width, cfg.Height, cfg.Background)
	if cfg.RecordStrokes {
		s.recorder = raster.NewRecorder(s.canvas)
		s.canvas = s.recorder
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	seeds, err := SeedTurtles(s.canvas, rng, cfg, colors)
	if err != nil {
		return nil, err
	}
	s.pop = NewPopulation(policy, rng, seeds...)
	return s, nil
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) Config() Config          { return s.cfg }
func (s *Simulator) Canvas() raster.Canvas   { return s.canvas }
func (s *Simulator) Population() *Population { return s.pop }

// Run ticks the population until it is empty. A cancelled context or the
// MaxTicks guard stops it early; the partial result is returned together
// with a *RunError.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	result := &Result{
		Seed:    s.cfg.Seed,
		History: make([]TickStats, 0, 1024),
		Metrics: make(map[string]float64),
	}
	for _, m := range s.metrics {
		m.Reset()
	}

	log := logger().With("variant", s.cfg.Variant, "seed", s.cfg.Seed)
	log.Info("run started", "seeds", s.pop.Len(), "canvas", fmt.Sprintf("%dx%d", s.cfg.Width, s.cfg.Height))

	var runErr error
	for !s.pop.Empty() {
		select {
		case <-ctx.Done():
			runErr = &RunError{Tick: s.pop.Ticks(), Live: s.pop.Len(), Wrapped: ctx.Err()}
		default:
		}
		if runErr == nil && s.cfg.MaxTicks > 0 && s.pop.Ticks() >= s.cfg.MaxTicks {
			runErr = &RunError{Tick: s.pop.Ticks(), Live: s.pop.Len(), Wrapped: ErrTickLimit}
		}
		if runErr != nil {
			log.Warn("run stopped", "tick", s.pop.Ticks(), "live", s.pop.Len(), "err", runErr)
			break
		}

		stats := s.pop.Tick()
		result.History = append(result.History, stats)
		for _, m := range s.metrics {
			m.Observe(stats)
		}
		if s.cfg.FrameEvery > 0 && stats.Tick%s.cfg.FrameEvery == 0 {
			s.emit(Frame{Tick: stats.Tick, Live: stats.Live, Stats: stats})
		}
	}

	s.finish(result)
	log.Info("run finished", "ticks", result.Ticks, "coverage", result.Coverage)
	return result, runErr
}

func (s *Simulator) finish(result *Result) {
	result.Ticks = s.pop.Ticks()
	result.Image = s.canvas.Snapshot()
	result.Coverage = s.cfg.Probe.Coverage(s.canvas)
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	if s.recorder != nil {
		result.Strokes = s.recorder.Segments()
	}
	final := Frame{Tick: result.Ticks, Live: s.pop.Len(), Image: result.Image, Final: true}
	if n := len(result.History); n > 0 {
		final.Stats = result.History[n-1]
	}
	for _, o := range s.observers {
		o.OnFrame(final)
	}
}

// emit hands every observer its own snapshot.
func (s *Simulator) emit(f Frame) {
	for _, o := range s.observers {
		f.Image = s.canvas.Snapshot()
		o.OnFrame(f)
	}
}
