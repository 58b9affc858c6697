package viz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/turtlesim/internal/export"
	"github.com/san-kum/turtlesim/internal/raster"
	"github.com/san-kum/turtlesim/internal/sim"
	"github.com/san-kum/turtlesim/internal/turtle"
)

const (
	defaultCols     = 64
	defaultRows     = 24
	historyCapacity = 600
	gifWidth        = 320
	gifDelay        = 4
	sparkWidth      = 24
)

// FrameMsg carries a snapshot from the running simulation.
type FrameMsg struct {
	Frame    sim.Frame
	Coverage float64
}

// DoneMsg reports that the simulation returned.
type DoneMsg struct {
	Result *sim.Result
	Err    error
}

// Model shows a running simulation. It never touches the simulation
// itself: frames arrive as messages and are only rendered.
type Model struct {
	title      string
	probe      turtle.Probe
	cols, rows int
	canvas     *Canvas

	tick     int
	live     int
	coverage float64
	history  []float64
	spawns   []float64
	last     *sim.Frame

	paused    bool
	done      bool
	err       error
	result    *sim.Result
	recorder  *export.GIFRecorder
	gifPath   string
	savedGIF  string
	showHelp  bool
	spinFrame int
}

func NewModel(title string, imgW, imgH int, probe turtle.Probe) Model {
	cols, rows := FitCells(imgW, imgH, defaultCols, defaultRows)
	return Model{
		title:   title,
		probe:   probe,
		cols:    cols,
		rows:    rows,
		canvas:  NewCanvas(cols, rows),
		history: make([]float64, 0, historyCapacity),
		spawns:  make([]float64, 0, historyCapacity),
		gifPath: "turtlesim.gif",
	}
}

// WithGIFPath sets where a recording is written when it stops.
func (m Model) WithGIFPath(path string) Model {
	m.gifPath = path
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
			if !m.paused && m.last != nil {
				m.canvas.Rasterize(m.last.Image, m.probe)
			}
		case "g":
			m.toggleRecording()
		case "t":
			SetTheme(nextTheme(CurrentTheme.Name).Name)
		case "?":
			m.showHelp = !m.showHelp
		}
	case FrameMsg:
		m.observe(msg)
	case DoneMsg:
		m.done = true
		m.err = msg.Err
		m.result = msg.Result
		if m.recorder != nil {
			m.toggleRecording()
		}
	}
	return m, nil
}

func (m *Model) observe(msg FrameMsg) {
	f := msg.Frame
	m.tick, m.live, m.coverage = f.Tick, f.Live, msg.Coverage
	m.last = &f
	m.spinFrame++

	m.history = appendCapped(m.history, float64(f.Live))
	m.spawns = appendCapped(m.spawns, float64(f.Stats.Spawns))
	if m.recorder != nil {
		m.recorder.OnFrame(f)
	}
	if !m.paused || f.Final {
		m.canvas.Rasterize(f.Image, m.probe)
	}
}

func appendCapped(values []float64, v float64) []float64 {
	values = append(values, v)
	if len(values) > historyCapacity {
		values = values[1:]
	}
	return values
}

func (m *Model) toggleRecording() {
	if m.recorder == nil {
		m.recorder = export.NewGIFRecorder(gifWidth, gifDelay)
		m.savedGIF = ""
		return
	}
	if err := m.recorder.Save(m.gifPath); err == nil {
		m.savedGIF = m.gifPath
	}
	m.recorder = nil
}

func (m Model) View() string {
	theme := CurrentTheme
	ink := lipgloss.NewStyle().Foreground(theme.Ink)
	canvasView := canvasStyle.Render(ink.Render(m.canvas.String()))

	var s strings.Builder
	s.WriteString(headerStyle.Foreground(theme.Accent).Render(strings.ToUpper(m.title)) + "\n")
	s.WriteString(m.status() + "\n\n")

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history, asciigraph.Height(4), asciigraph.Width(28), asciigraph.Caption("Live turtles"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}
	if len(m.spawns) > 1 {
		s.WriteString(labelStyle.Render("Spawns") + SparklineChart(m.spawns, sparkWidth) + "\n")
	}
	s.WriteString(labelStyle.Render("Tick") + valueStyle.Render(fmt.Sprintf("%d", m.tick)) + "\n")
	s.WriteString(labelStyle.Render("Live") + valueStyle.Render(fmt.Sprintf("%d", m.live)) + "\n")
	s.WriteString(labelStyle.Render("Coverage") + valueStyle.Render(fmt.Sprintf("%.1f%%", m.coverage*100)) + "\n")
	s.WriteString(ProgressBar(m.coverage, 24) + "\n")
	if m.savedGIF != "" {
		s.WriteString(labelStyle.Render("Saved") + valueStyle.Render(m.savedGIF) + "\n")
	}
	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause Q:Quit T:Theme\nG:Record ?:Help"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Freeze/unfreeze display  ║
║  Q        - Quit                     ║
║  G        - Toggle GIF recording     ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

func (m Model) status() string {
	switch {
	case m.done && m.err != nil:
		return lipgloss.NewStyle().Foreground(CurrentTheme.Error).Render("STOPPED: " + m.err.Error())
	case m.done:
		return StatusRunning.Render("DONE")
	case m.recorder != nil:
		return StatusRecording.Render("● REC")
	case m.paused:
		return StatusPaused.Render("FROZEN")
	default:
		return StatusRunning.Render(AnimatedSpinner(m.spinFrame) + " RUNNING")
	}
}

// Done reports whether the simulation has returned.
func (m Model) Done() bool { return m.done }

// Result is the finished run, or nil while it is still going.
func (m Model) Result() *sim.Result { return m.result }

// programObserver forwards frames to a running program, dropping any that
// arrive faster than the refresh interval. Final frames always go through.
type programObserver struct {
	p        *tea.Program
	probe    turtle.Probe
	interval time.Duration
	last     time.Time
}

func (o *programObserver) OnFrame(f sim.Frame) {
	now := time.Now()
	if !f.Final && o.interval > 0 && now.Sub(o.last) < o.interval {
		return
	}
	o.last = now

	cov := 0.0
	if f.Image != nil {
		cov = o.probe.Coverage(raster.FromRGBA(f.Image))
	}
	o.p.Send(FrameMsg{Frame: f, Coverage: cov})
}

// RunLive drives s on a background goroutine while a Bubble Tea program
// renders its frames. Quitting the program cancels the run. fps caps the
// refresh rate; zero shows every frame.
func RunLive(ctx context.Context, s *sim.Simulator, fps int, gifPath string) (*sim.Result, error) {
	cfg := s.Config()
	title := fmt.Sprintf("%s · seed %d", cfg.Variant, cfg.Seed)
	model := NewModel(title, cfg.Width, cfg.Height, cfg.Probe)
	if gifPath != "" {
		model = model.WithGIFPath(gifPath)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	obs := &programObserver{p: p, probe: cfg.Probe}
	if fps > 0 {
		obs.interval = time.Second / time.Duration(fps)
	}
	s.AddObserver(obs)

	type outcome struct {
		result *sim.Result
		err    error
	}
	finished := make(chan outcome, 1)
	go func() {
		result, err := s.Run(ctx)
		finished <- outcome{result, err}
		p.Send(DoneMsg{Result: result, Err: err})
	}()

	_, progErr := p.Run()
	cancel()
	out := <-finished

	if progErr != nil && !errors.Is(progErr, tea.ErrProgramKilled) {
		return out.result, progErr
	}
	return out.result, out.err
}
