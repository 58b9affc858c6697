package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/turtlesim/internal/config"
	"github.com/san-kum/turtlesim/internal/sim"
	"github.com/san-kum/turtlesim/internal/viz"
)

var (
	dataDir  string
	logLevel string

	configFile string
	preset     string
	seed       int64
	seeds      int
	width      int
	height     int
	background string
	paletteArg string
	stroke     float64
	stepSize   float64
	turnBias   float64
	spawnProb  float64
	prefTurn   float64
	phaser     bool
	spacing    float64
	maxPhase   int
	maxTicks   int
	frameEvery int
	strokes    bool

	pngOut    string
	gifOut    string
	liveGIF   string
	liveTheme string
	noSave    bool
	numRuns   int
	workers   int
	fps       int

	exportFormat string
	exportOut    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "turtlesim",
		Short:         "space-filling turtle drawings",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(logLevel)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".turtlesim", "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	runCmd := &cobra.Command{
		Use:   "run [variant]",
		Short: "run a simulation until every turtle is stuck",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSimulation,
	}
	addRunFlags(runCmd)
	runCmd.Flags().StringVar(&pngOut, "png", "", "also write the final image here")
	runCmd.Flags().StringVar(&gifOut, "gif", "", "record an animation here")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")

	batchCmd := &cobra.Command{
		Use:   "batch [variant]",
		Short: "run several seeds in parallel",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBatch,
	}
	addRunFlags(batchCmd)
	batchCmd.Flags().IntVar(&numRuns, "runs", 4, "number of runs")
	batchCmd.Flags().IntVar(&workers, "workers", 0, "parallel runs (0 = all cores)")

	liveCmd := &cobra.Command{
		Use:   "live [variant]",
		Short: "run a simulation with a live terminal preview",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addRunFlags(liveCmd)
	liveCmd.Flags().IntVar(&fps, "fps", 0, "preview refresh rate (0 = config value)")
	liveCmd.Flags().StringVar(&liveGIF, "gif", "turtlesim.gif", "where G saves a recording")
	liveCmd.Flags().StringVar(&liveTheme, "theme", viz.ThemeInk.Name, fmt.Sprintf("color theme %v", viz.ThemeNames()))
	liveCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "json, csv, png or svg")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (json and csv default to stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets [variant]",
		Short: "list presets",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			variants := sim.Variants()
			if len(args) == 1 {
				variants = args
			}
			for _, v := range variants {
				presets := config.ListPresets(v)
				if len(presets) == 0 {
					fmt.Printf("no presets for variant: %s\n", v)
					continue
				}
				fmt.Printf("presets for %s:\n", v)
				for _, p := range presets {
					fmt.Printf("  %s\n", p)
				}
			}
			return nil
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a config file to start from",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, variantArg(nil))
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}
	addRunFlags(initCmd)

	rootCmd.AddCommand(runCmd, batchCmd, liveCmd, listCmd, showCmd, exportCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	def := sim.DefaultConfig(config.DefaultVariant)
	f := cmd.Flags()
	f.StringVar(&configFile, "config", "", "config file path (yaml)")
	f.StringVar(&preset, "preset", "", "use preset configuration")
	f.Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	f.IntVar(&seeds, "seeds", def.Seeds, "number of seed turtles")
	f.IntVar(&width, "width", def.Width, "canvas width")
	f.IntVar(&height, "height", def.Height, "canvas height")
	f.StringVar(&background, "background", config.DefaultBackground, "background color (#RRGGBB)")
	f.StringVar(&paletteArg, "palette", def.Palette, "turtle palette")
	f.Float64Var(&stroke, "stroke", def.StrokeWidth, "stroke width")
	f.Float64Var(&stepSize, "step", 0, "move distance (0 = variant default)")
	f.Float64Var(&turnBias, "turn-bias", def.TurnBias, "chance window for turning first (snake)")
	f.Float64Var(&spawnProb, "spawn-prob", def.SpawnProb, "spawn window per move")
	f.Float64Var(&prefTurn, "pref-turn", sim.DefaultPrefTurn, "preferred turn in degrees (spiral)")
	f.BoolVar(&phaser, "phaser", false, "lift the pen over obstacles")
	f.Float64Var(&spacing, "spacing", def.SpiralSpacing, "spiral arm spacing in stroke widths")
	f.IntVar(&maxPhase, "max-phase", def.MaxPhase, "longest run of bypassed moves")
	f.IntVar(&maxTicks, "max-ticks", 0, "stop after this many ticks (0 = never)")
	f.IntVar(&frameEvery, "frame-every", def.FrameEvery, "ticks between preview frames")
	f.BoolVar(&strokes, "strokes", false, "record strokes for SVG export")
}

func setupLogging(level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	sim.SetLogger(logger)
	return nil
}
