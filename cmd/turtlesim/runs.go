package main

import (
	"encoding/csv"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/turtlesim/internal/storage"
	"github.com/san-kum/turtlesim/internal/turtle"
	"github.com/san-kum/turtlesim/internal/viz"
)

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tVARIANT\tTIME\tSEED\tSIZE\tTICKS\tCOVERAGE\tSTATUS")

	for _, run := range runs {
		status := "done"
		if !run.Complete {
			status = "stopped"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%dx%d\t%d\t%.1f%%\t%s\n",
			run.ID,
			run.Variant,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Seed,
			run.Width, run.Height,
			run.Ticks,
			run.Coverage*100,
			status,
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	ticks, err := st.LoadTicks(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("variant: %s  seed: %d  seeds: %d\n", meta.Variant, meta.Seed, meta.Seeds)
	fmt.Printf("canvas: %dx%d  stroke: %.1f  palette: %s\n", meta.Width, meta.Height, meta.StrokeWidth, meta.Palette)
	fmt.Printf("ticks: %d  coverage: %.2f%%\n\n", meta.Ticks, meta.Coverage*100)

	if img, err := loadImage(st.Path(runID, storage.ImageFile)); err == nil {
		cols, rows := viz.FitCells(img.Bounds().Dx(), img.Bounds().Dy(), 80, 32)
		fmt.Println(viz.FromImage(img, cols, rows, turtle.DefaultProbe()).String())
	}

	if len(ticks) > 1 {
		live := make([]float64, len(ticks))
		for i, t := range ticks {
			live[i] = float64(t.Live)
		}
		graph := asciigraph.Plot(live,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("live turtles per tick"),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func loadImage(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba, nil
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba, nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := storage.New(dataDir)

	switch exportFormat {
	case "json":
		return withOutput(exportOut, func(w io.Writer) error {
			return st.ExportJSON(w, runID)
		})
	case "csv":
		ticks, err := st.LoadTicks(runID)
		if err != nil {
			return err
		}
		return withOutput(exportOut, func(w io.Writer) error {
			cw := csv.NewWriter(w)
			cw.Write([]string{"tick", "live", "moves", "bypasses", "spawns", "removals"})
			for _, t := range ticks {
				cw.Write([]string{
					strconv.Itoa(t.Tick), strconv.Itoa(t.Live), strconv.Itoa(t.Moves),
					strconv.Itoa(t.Bypasses), strconv.Itoa(t.Spawns), strconv.Itoa(t.Removals),
				})
			}
			cw.Flush()
			return cw.Error()
		})
	case "png":
		return copyRunFile(st, runID, storage.ImageFile)
	case "svg":
		return copyRunFile(st, runID, storage.StrokesFile)
	default:
		return fmt.Errorf("unknown format: %s (available: json, csv, png, svg)", exportFormat)
	}
}

func withOutput(path string, fn func(io.Writer) error) error {
	if path == "" {
		return fn(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", path)
	return nil
}

func copyRunFile(st *storage.Store, runID, name string) error {
	if _, err := st.Load(runID); err != nil {
		return err
	}
	if exportOut == "" {
		return fmt.Errorf("--out is required for %s", exportFormat)
	}
	src, err := os.Open(st.Path(runID, name))
	if err != nil {
		if os.IsNotExist(err) && name == storage.StrokesFile {
			return fmt.Errorf("run %s has no recorded strokes (run with --strokes)", runID)
		}
		return err
	}
	defer src.Close()

	return withOutput(exportOut, func(w io.Writer) error {
		_, err := io.Copy(w, src)
		return err
	})
}
