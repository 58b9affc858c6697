package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/turtlesim/internal/export"
	"github.com/san-kum/turtlesim/internal/sim"
)

const (
	metadataFile = "metadata.json"
	ticksFile    = "ticks.csv"
	ImageFile    = "final.png"
	StrokesFile  = "strokes.svg"
)

// ErrRunNotFound indicates a run id with no metadata on disk.
var ErrRunNotFound = errors.New("storage: run not found")

var ticksHeader = []string{"tick", "live", "moves", "bypasses", "spawns", "removals"}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string             `json:"id"`
	Variant     string             `json:"variant"`
	Timestamp   time.Time          `json:"timestamp"`
	Seed        int64              `json:"seed"`
	Seeds       int                `json:"seeds"`
	Width       int                `json:"width"`
	Height      int                `json:"height"`
	StrokeWidth float64            `json:"stroke_width"`
	Palette     string             `json:"palette"`
	Ticks       int                `json:"ticks"`
	Coverage    float64            `json:"coverage"`
	Complete    bool               `json:"complete"`
	Metrics     map[string]float64 `json:"metrics"`
}

// Save writes a run directory holding the metadata, the per-tick history,
// the final image and, when strokes were recorded, their vector form.
// complete is false for runs stopped before the population emptied.
func (s *Store) Save(cfg sim.Config, result *sim.Result, complete bool) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d_%d", cfg.Variant, now.Unix(), result.Seed)
	runDir := filepath.Join(s.baseDir, runID)
	if _, err := os.Stat(runDir); err == nil {
		runID = fmt.Sprintf("%s_%d", runID, now.UnixNano())
		runDir = filepath.Join(s.baseDir, runID)
	}

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:          runID,
		Variant:     cfg.Variant,
		Timestamp:   now,
		Seed:        result.Seed,
		Seeds:       cfg.Seeds,
		Width:       cfg.Width,
		Height:      cfg.Height,
		StrokeWidth: cfg.StrokeWidth,
		Palette:     cfg.Palette,
		Ticks:       result.Ticks,
		Coverage:    result.Coverage,
		Complete:    complete,
		Metrics:     result.Metrics,
	}
	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writeTicks(filepath.Join(runDir, ticksFile), result.History); err != nil {
		return "", err
	}
	if result.Image != nil {
		if err := export.SavePNG(filepath.Join(runDir, ImageFile), result.Image); err != nil {
			return "", err
		}
	}
	if len(result.Strokes) > 0 {
		err := export.SaveSVG(filepath.Join(runDir, StrokesFile), cfg.Width, cfg.Height, cfg.Background, result.Strokes)
		if err != nil {
			return "", err
		}
	}
	return runID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTicks(path string, history []sim.TickStats) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(ticksHeader); err != nil {
		return err
	}
	for _, st := range history {
		row := []string{
			strconv.Itoa(st.Tick),
			strconv.Itoa(st.Live),
			strconv.Itoa(st.Moves),
			strconv.Itoa(st.Bypasses),
			strconv.Itoa(st.Spawns),
			strconv.Itoa(st.Removals),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns every readable run, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	return &meta, nil
}

// LoadTicks reads the per-tick history back. Malformed rows are skipped.
func (s *Store) LoadTicks(runID string) ([]sim.TickStats, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, ticksFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []sim.TickStats{}, nil
	}

	ticks := make([]sim.TickStats, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < len(ticksHeader) {
			continue
		}
		vals := make([]int, len(ticksHeader))
		ok := true
		for j := range vals {
			v, err := strconv.Atoi(record[j])
			if err != nil {
				ok = false
				break
			}
			vals[j] = v
		}
		if !ok {
			continue
		}
		ticks = append(ticks, sim.TickStats{
			Tick:     vals[0],
			Live:     vals[1],
			Moves:    vals[2],
			Bypasses: vals[3],
			Spawns:   vals[4],
			Removals: vals[5],
		})
	}
	return ticks, nil
}

// Path returns the location of a file inside a run directory.
func (s *Store) Path(runID, name string) string {
	return filepath.Join(s.baseDir, runID, name)
}

type ExportData struct {
	RunMetadata
	History []sim.TickStats `json:"history"`
}

// ExportJSON writes a run's metadata and history as a single document.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	ticks, err := s.LoadTicks(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{RunMetadata: *meta, History: ticks})
}
