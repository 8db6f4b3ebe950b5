package telemetry

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/fixcast/engine"
)

// Stats keys
const (
	StatFrames   = "frames"
	StatColumns  = "columns"
	StatSteps    = "dda_steps"
	StatEscaped  = "escaped"
	StatBlocked  = "blocked"
	StatFPS      = "fps"
	StatFrameMS  = "frame_ms"
	StatCenterD  = "center_dist"
	StatPosition = "pos"
)

// Stats is a probe that keeps running counters for the status line
// The loop writes, the display goroutine reads; pointers are cached at construction
type Stats struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]

	frames, columns, steps, escaped, blocked *atomic.Int64
	fps, frameMS, centerDist, x, y          *AtomicFloat

	center atomic.Int64
}

// NewStats creates an empty registry
func NewStats() *Stats {
	s := &Stats{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
	s.frames = s.Ints.Get(StatFrames)
	s.columns = s.Ints.Get(StatColumns)
	s.steps = s.Ints.Get(StatSteps)
	s.escaped = s.Ints.Get(StatEscaped)
	s.blocked = s.Ints.Get(StatBlocked)
	s.fps = s.Floats.Get(StatFPS)
	s.frameMS = s.Floats.Get(StatFrameMS)
	s.centerDist = s.Floats.Get(StatCenterD)
	s.x = s.Floats.Get(StatPosition + ".x")
	s.y = s.Floats.Get(StatPosition + ".y")
	return s
}

// SetCenter selects the column whose distance is reported
func (s *Stats) SetCenter(col int) { s.center.Store(int64(col)) }

func (s *Stats) Column(c engine.ColumnSample) {
	s.columns.Add(1)
	s.steps.Add(int64(c.Hit.Steps))
	if !c.Hit.InBounds {
		s.escaped.Add(1)
	}
	if int64(c.Column) == s.center.Load() {
		s.centerDist.Set(c.Hit.Distance.Float())
	}
}

func (s *Stats) Frame(f engine.FrameSample) {
	s.frames.Add(1)
	ms := float64(f.Elapsed) / float64(time.Millisecond)
	s.frameMS.Set(ms)
	if ms > 0 {
		s.fps.Set(1000 / ms)
	}
}

func (s *Stats) Move(m engine.MoveSample) {
	if m.Move.BlockedX {
		s.blocked.Add(1)
	}
	if m.Move.BlockedY {
		s.blocked.Add(1)
	}
	s.x.Set(m.Pos.X.Float())
	s.y.Set(m.Pos.Y.Float())
}

// Line renders every metric as "key=value" in key order
func (s *Stats) Line() string {
	var b strings.Builder
	s.Ints.Range(func(key string, v *atomic.Int64) {
		fmt.Fprintf(&b, "%s=%d ", key, v.Load())
	})
	s.Floats.Range(func(key string, v *AtomicFloat) {
		fmt.Fprintf(&b, "%s=%.2f ", key, v.Get())
	})
	return strings.TrimSpace(b.String())
}
