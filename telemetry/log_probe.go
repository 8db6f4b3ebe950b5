package telemetry

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/fixcast/engine"
)

// LogProbe writes loop samples to a zerolog logger
// Columns log at Trace through a burst sampler, frames and moves at Debug
type LogProbe struct {
	columns zerolog.Logger
	logger  zerolog.Logger
}

// NewLogProbe wraps logger
func NewLogProbe(logger zerolog.Logger) *LogProbe {
	return &LogProbe{
		columns: logger.Sample(&zerolog.BurstSampler{
			Burst:       256,
			Period:      time.Second,
			NextSampler: &zerolog.BasicSampler{N: 64},
		}),
		logger: logger,
	}
}

func (p *LogProbe) Column(s engine.ColumnSample) {
	p.columns.Trace().
		Int("col", s.Column).
		Float64("camera_x", s.CameraX.Float()).
		Int("cell_x", s.Hit.CellX).
		Int("cell_y", s.Hit.CellY).
		Stringer("side", s.Hit.Side).
		Float64("dist", s.Hit.Distance.Float()).
		Bool("in_bounds", s.Hit.InBounds).
		Int("steps", s.Hit.Steps).
		Int("height", s.LineHeight).
		Dur("elapsed", s.Elapsed).
		Msg("column")
}

func (p *LogProbe) Frame(s engine.FrameSample) {
	p.logger.Debug().
		Uint64("frame", s.Frame).
		Int("columns", s.Columns).
		Int("steps", s.Steps).
		Dur("elapsed", s.Elapsed).
		Msg("frame")
}

func (p *LogProbe) Move(s engine.MoveSample) {
	e := p.logger.Debug()
	if s.Move.Blocked() {
		e = p.logger.Info()
	}
	e.Stringer("actions", s.Actions).
		Bool("blocked_x", s.Move.BlockedX).
		Bool("blocked_y", s.Move.BlockedY).
		Float64("x", s.Pos.X.Float()).
		Float64("y", s.Pos.Y.Float()).
		Float64("dir_x", s.Dir.X.Float()).
		Float64("dir_y", s.Dir.Y.Float()).
		Msg("move")
}
