package viz

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/san-kum/turtlesim/internal/raster"
	"github.com/san-kum/turtlesim/internal/sim"
	"github.com/san-kum/turtlesim/internal/turtle"
)

// Progress rewrites a single status line as frames arrive. It stays quiet
// when the output is not a terminal so logs and pipes are left clean.
type Progress struct {
	w       io.Writer
	probe   turtle.Probe
	label   string
	enabled bool
	frames  int
}

func NewProgress(f *os.File, label string, probe turtle.Probe) *Progress {
	return &Progress{
		w:       f,
		probe:   probe,
		label:   label,
		enabled: term.IsTerminal(int(f.Fd())),
	}
}

func (p *Progress) Enabled() bool { return p.enabled }

func (p *Progress) OnFrame(f sim.Frame) {
	if !p.enabled {
		return
	}
	p.frames++

	cov := 0.0
	if f.Image != nil {
		cov = p.probe.Coverage(raster.FromRGBA(f.Image))
	}
	mark := AnimatedSpinner(p.frames)
	if f.Final {
		mark = "✓"
	}
	fmt.Fprintf(p.w, "\r\033[K%s %s  tick %-7d live %-5d coverage %5.1f%%", mark, p.label, f.Tick, f.Live, cov*100)
	if f.Final {
		fmt.Fprintln(p.w)
	}
}
