package engine

import (
	"time"

	"github.com/lixenwraith/fixcast/camera"
	"github.com/lixenwraith/fixcast/input"
	"github.com/lixenwraith/fixcast/raycast"
	"github.com/lixenwraith/fixcast/vmath"
)

// ColumnSample describes one rendered column
type ColumnSample struct {
	Column     int
	CameraX    vmath.Q16
	Hit        raycast.Hit
	LineHeight int
	Elapsed    time.Duration
}

// FrameSample is emitted when the column index wraps
type FrameSample struct {
	Frame   uint64
	Columns int
	Steps   int // DDA steps summed over the frame
	Elapsed time.Duration
}

// MoveSample is emitted for every movement tick that carried input
type MoveSample struct {
	Actions input.Actions
	Move    camera.Move
	Pos     vmath.Vec2
	Dir     vmath.Vec2
}

// Probe observes the loop; implementations must not block
type Probe interface {
	Column(ColumnSample)
	Frame(FrameSample)
	Move(MoveSample)
}

// NopProbe discards everything
type NopProbe struct{}

func (NopProbe) Column(ColumnSample) {}
func (NopProbe) Frame(FrameSample)   {}
func (NopProbe) Move(MoveSample)     {}

// MultiProbe fans samples out to several probes in order
type MultiProbe []Probe

func (m MultiProbe) Column(s ColumnSample) {
	for _, p := range m {
		p.Column(s)
	}
}

func (m MultiProbe) Frame(s FrameSample) {
	for _, p := range m {
		p.Frame(s)
	}
}

func (m MultiProbe) Move(s MoveSample) {
	for _, p := range m {
		p.Move(s)
	}
}

// Probes combines non-nil probes; none yields NopProbe, one is returned as is
func Probes(ps ...Probe) Probe {
	var out MultiProbe
	for _, p := range ps {
		if p != nil {
			out = append(out, p)
		}
	}
	switch len(out) {
	case 0:
		return NopProbe{}
	case 1:
		return out[0]
	}
	return out
}
