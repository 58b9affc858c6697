package metrics

import (
	"context"
	"math"
	"testing"

	"github.com/san-kum/turtlesim/internal/sim"
)

func feed(m sim.Metric, stats ...sim.TickStats) {
	for _, s := range stats {
		m.Observe(s)
	}
}

func TestPeakPopulation(t *testing.T) {
	m := NewPeakPopulation()
	feed(m, sim.TickStats{Live: 3}, sim.TickStats{Live: 7}, sim.TickStats{Live: 2})

	if m.Value() != 7 {
		t.Errorf("expected peak 7, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero peak after reset")
	}
}

func TestMeanPopulation(t *testing.T) {
	m := NewMeanPopulation()
	if m.Value() != 0 {
		t.Error("expected zero mean before any tick")
	}

	feed(m, sim.TickStats{Live: 2}, sim.TickStats{Live: 4}, sim.TickStats{Live: 0})
	if math.Abs(m.Value()-2) > 1e-9 {
		t.Errorf("expected mean 2, got %f", m.Value())
	}
}

func TestSpawnRate(t *testing.T) {
	m := NewSpawnRate()
	feed(m, sim.TickStats{Moves: 4, Spawns: 1}, sim.TickStats{Moves: 6, Spawns: 1})

	if math.Abs(m.Value()-0.2) > 1e-9 {
		t.Errorf("expected rate 0.2, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero rate after reset")
	}
}

func TestBypassRatio(t *testing.T) {
	m := NewBypassRatio()
	feed(m, sim.TickStats{Moves: 10, Bypasses: 5}, sim.TickStats{Moves: 10})

	if math.Abs(m.Value()-0.25) > 1e-9 {
		t.Errorf("expected ratio 0.25, got %f", m.Value())
	}
}

func TestDefaultsOnRun(t *testing.T) {
	cfg := sim.DefaultConfig("snake")
	cfg.Width, cfg.Height = 120, 120
	cfg.Seeds = 3

	s, err := sim.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range Defaults() {
		s.AddMetric(m)
	}

	result, err := s.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"peak_population", "mean_population", "spawn_rate", "bypass_ratio"} {
		if _, ok := result.Metrics[name]; !ok {
			t.Errorf("missing metric %s", name)
		}
	}
	if result.Metrics["peak_population"] < result.Metrics["mean_population"] {
		t.Errorf("peak %f below mean %f", result.Metrics["peak_population"], result.Metrics["mean_population"])
	}
	if result.Metrics["bypass_ratio"] != 0 {
		t.Errorf("snake run reported bypasses: %f", result.Metrics["bypass_ratio"])
	}
}
