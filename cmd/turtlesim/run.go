package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/turtlesim/internal/export"
	"github.com/san-kum/turtlesim/internal/metrics"
	"github.com/san-kum/turtlesim/internal/sim"
	"github.com/san-kum/turtlesim/internal/storage"
	"github.com/san-kum/turtlesim/internal/viz"
)

func buildSim(cmd *cobra.Command, args []string) (sim.Config, int, error) {
	cfg, err := resolveConfig(cmd, variantArg(args))
	if err != nil {
		return sim.Config{}, 0, err
	}
	sc, err := cfg.ToSim()
	if err != nil {
		return sim.Config{}, 0, err
	}
	return sc, cfg.Preview.FPS, nil
}

// finishRun decides whether a run that returned err is still worth
// keeping. Stopped runs are kept and reported; anything else aborts.
func finishRun(err error) (complete bool, _ error) {
	if err == nil {
		return true, nil
	}
	var runErr *sim.RunError
	if errors.As(err, &runErr) {
		slog.Warn("run stopped early", "tick", runErr.Tick, "live", runErr.Live, "reason", runErr.Wrapped)
		return false, nil
	}
	return false, err
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, _, err := buildSim(cmd, args)
	if err != nil {
		return err
	}

	s, err := sim.New(cfg)
	if err != nil {
		return err
	}
	for _, m := range metrics.Defaults() {
		s.AddMetric(m)
	}
	s.AddObserver(viz.NewProgress(os.Stderr, cfg.Variant, cfg.Probe))

	var rec *export.GIFRecorder
	if gifOut != "" {
		rec = export.NewGIFRecorder(480, 4)
		s.AddObserver(rec)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("running %s simulation (seed %d)...\n", cfg.Variant, cfg.Seed)
	start := time.Now()

	result, runErr := s.Run(ctx)
	complete, err := finishRun(runErr)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if pngOut != "" {
		if err := export.SavePNG(pngOut, result.Image); err != nil {
			return err
		}
	}
	if rec != nil {
		if err := rec.Save(gifOut); err != nil {
			return err
		}
	}

	fmt.Printf("completed in %v\n", elapsed)
	if !noSave {
		runID, err := saveRun(cfg, result, complete)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}
	printSummary(result)
	return nil
}

func saveRun(cfg sim.Config, result *sim.Result, complete bool) (string, error) {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return "", err
	}
	return st.Save(cfg, result, complete)
}

func printSummary(result *sim.Result) {
	fmt.Printf("ticks: %d\n", result.Ticks)
	fmt.Printf("coverage: %.2f%%\n", result.Coverage*100)
	fmt.Println("\nmetrics:")

	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %.6f\n", name, result.Metrics[name])
	}
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, _, err := buildSim(cmd, args)
	if err != nil {
		return err
	}
	if numRuns < 1 {
		return fmt.Errorf("%w: runs must be positive, got %d", sim.ErrInvalidConfig, numRuns)
	}

	e := sim.NewEnsemble(cfg, numRuns, cfg.Seed)
	e.SetWorkers(workers)
	e.OnSetup(func(run int, s *sim.Simulator) {
		for _, m := range metrics.Defaults() {
			s.AddMetric(m)
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("running %d %s simulations from seed %d...\n", numRuns, cfg.Variant, cfg.Seed)
	start := time.Now()
	results, runErr := e.Run(ctx)
	if _, err := finishRun(runErr); err != nil {
		return err
	}
	fmt.Printf("completed in %v\n\n", time.Since(start))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tTICKS\tCOVERAGE\tPEAK\tSPAWN RATE\tRUN ID")
	for i, r := range results {
		if r == nil {
			fmt.Fprintf(w, "%d\t-\t-\t-\t-\tnot started\n", cfg.Seed+int64(i))
			continue
		}
		runID := "-"
		if !noSave {
			cfgCopy := cfg
			cfgCopy.Seed = r.Seed
			id, err := saveRun(cfgCopy, r, exhausted(r))
			if err != nil {
				return err
			}
			runID = id
		}
		fmt.Fprintf(w, "%d\t%d\t%.2f%%\t%.0f\t%.4f\t%s\n",
			r.Seed, r.Ticks, r.Coverage*100,
			r.Metrics["peak_population"], r.Metrics["spawn_rate"], runID)
	}
	return w.Flush()
}

// exhausted reports whether a run ended with no live turtles.
func exhausted(r *sim.Result) bool {
	return len(r.History) > 0 && r.History[len(r.History)-1].Live == 0
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, cfgFPS, err := buildSim(cmd, args)
	if err != nil {
		return err
	}
	if fps <= 0 {
		fps = cfgFPS
	}
	if !slices.Contains(viz.ThemeNames(), liveTheme) {
		return fmt.Errorf("unknown theme: %s (available: %v)", liveTheme, viz.ThemeNames())
	}
	viz.SetTheme(liveTheme)

	s, err := sim.New(cfg)
	if err != nil {
		return err
	}
	for _, m := range metrics.Defaults() {
		s.AddMetric(m)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, runErr := viz.RunLive(ctx, s, fps, liveGIF)
	if result == nil {
		return runErr
	}
	complete, err := finishRun(runErr)
	if err != nil {
		return err
	}

	if !noSave {
		runID, err := saveRun(cfg, result, complete)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}
	printSummary(result)
	return nil
}
