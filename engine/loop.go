// Package engine drives the column-at-a-time render loop
package engine

import (
	"time"

	"github.com/lixenwraith/fixcast/camera"
	"github.com/lixenwraith/fixcast/input"
	"github.com/lixenwraith/fixcast/raycast"
	"github.com/lixenwraith/fixcast/render"
	"github.com/lixenwraith/fixcast/vmath"
)

// Cue is feedback for a movement step rejected by a wall
type Cue interface {
	PlayBump() bool
}

type nopCue struct{}

func (nopCue) PlayBump() bool { return false }

// Config holds the loop tunables in their runtime formats
type Config struct {
	Height        int
	MoveStep      vmath.Q16
	RotateDegrees int
	MoveInterval  time.Duration
	Palette       render.Palette
}

// Loop owns every piece of mutable frame state
// Single goroutine only: Tick, RenderFrame and Resize must not run concurrently
type Loop struct {
	cfg     Config
	cam     *camera.Camera
	caster  *raycast.Caster
	surface render.Surface
	source  input.Source

	clock Clock
	probe Probe
	cue   Cue

	col        int
	frame      uint64
	frameStart time.Time
	frameSteps int
	lastMove   time.Time
	quit       bool
}

// Option configures optional loop collaborators
type Option func(*Loop)

// WithClock replaces the system clock
func WithClock(c Clock) Option { return func(l *Loop) { l.clock = c } }

// WithProbe installs instrumentation
func WithProbe(p Probe) Option { return func(l *Loop) { l.probe = p } }

// WithCue installs collision feedback
func WithCue(c Cue) Option { return func(l *Loop) { l.cue = c } }

// NewLoop wires the camera, caster, surface and input source
func NewLoop(cfg Config, cam *camera.Camera, caster *raycast.Caster, surface render.Surface, source input.Source, opts ...Option) *Loop {
	l := &Loop{
		cfg:     cfg,
		cam:     cam,
		caster:  caster,
		surface: surface,
		source:  source,
		clock:   NewTimeProvider(),
		probe:   NopProbe{},
		cue:     nopCue{},
	}
	for _, opt := range opts {
		opt(l)
	}
	l.frameStart = l.clock.Now()
	return l
}

// Tick renders exactly one column, advances the column index and, at most
// once per MoveInterval, applies input to the camera
// Returns false once Quit has been requested
func (l *Loop) Tick() bool {
	l.renderColumn()

	l.col++
	if l.col >= l.caster.Width() {
		l.endFrame()
	}

	now := l.clock.Now()
	if now.Sub(l.lastMove) > l.cfg.MoveInterval {
		l.lastMove = now
		l.applyInput(l.source.Poll(now))
	}

	return !l.quit
}

// RenderFrame ticks until the column index wraps back to zero
// Returns false once Quit has been requested
func (l *Loop) RenderFrame() bool {
	start := l.frame
	for l.frame == start {
		if !l.Tick() {
			return false
		}
	}
	return true
}

// Resize adopts new surface dimensions and restarts the frame at column 0
func (l *Loop) Resize(width, height int) {
	l.caster.Resize(width)
	l.cfg.Height = max(height, 0)
	l.col = 0
	l.frameSteps = 0
	l.frameStart = l.clock.Now()
}

// Camera returns the live camera
func (l *Loop) Camera() *camera.Camera { return l.cam }

// Column returns the next column to be rendered
func (l *Loop) Column() int { return l.col }

// Frame returns the number of completed frames
func (l *Loop) Frame() uint64 { return l.frame }

// Size returns the current render dimensions
func (l *Loop) Size() (int, int) { return l.caster.Width(), l.cfg.Height }

// Quit reports whether a quit was requested
func (l *Loop) Quit() bool { return l.quit }

func (l *Loop) renderColumn() {
	start := l.clock.Now()

	hit := l.caster.Column(l.cam, l.col)
	c := render.Project(hit, l.cfg.Height, l.cfg.Palette)
	render.DrawColumn(l.surface, l.col, c, l.cfg.Palette)

	l.frameSteps += hit.Steps
	l.probe.Column(ColumnSample{
		Column:     l.col,
		CameraX:    l.caster.CameraX(l.col),
		Hit:        hit,
		LineHeight: c.Wall.Length,
		Elapsed:    l.clock.Now().Sub(start),
	})
}

func (l *Loop) endFrame() {
	now := l.clock.Now()
	l.frame++
	l.probe.Frame(FrameSample{
		Frame:   l.frame,
		Columns: l.caster.Width(),
		Steps:   l.frameSteps,
		Elapsed: now.Sub(l.frameStart),
	})
	l.col = 0
	l.frameSteps = 0
	l.frameStart = now
}

// applyInput moves before it turns; forward wins over backward, left over right
func (l *Loop) applyInput(a input.Actions) {
	if a.Has(input.Quit) {
		l.quit = true
	}
	if a.Movement() == input.None {
		return
	}

	var m camera.Move
	switch {
	case a.Has(input.Forward):
		m = l.cam.MoveForward(l.cfg.MoveStep, l.caster.Grid())
	case a.Has(input.Backward):
		m = l.cam.MoveBackward(l.cfg.MoveStep, l.caster.Grid())
	}

	switch {
	case a.Has(input.Left):
		l.cam.Rotate(l.cfg.RotateDegrees, camera.TurnLeft)
	case a.Has(input.Right):
		l.cam.Rotate(l.cfg.RotateDegrees, camera.TurnRight)
	}

	if m.Blocked() {
		l.cue.PlayBump()
	}

	l.probe.Move(MoveSample{
		Actions: a,
		Move:    m,
		Pos:     l.cam.Pos,
		Dir:     l.cam.Dir,
	})
}
