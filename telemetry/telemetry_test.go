package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/fixcast/camera"
	"github.com/lixenwraith/fixcast/engine"
	"github.com/lixenwraith/fixcast/input"
	"github.com/lixenwraith/fixcast/parameter"
	"github.com/lixenwraith/fixcast/raycast"
	"github.com/lixenwraith/fixcast/vmath"
)

// --- Logger ---

func TestNewLogger_DisabledByDefault(t *testing.T) {
	logger, closer, err := NewLogger(LogConfig{})
	require.NoError(t, err)
	assert.Nil(t, closer)
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestNewLogger_WritesToFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, closer, err := NewLogger(LogConfig{Enabled: true, Level: "debug", Dir: dir})
	require.NoError(t, err)
	require.NotNil(t, closer)
	defer closer.Close()

	logger.Debug().Str("k", "v").Msg("hello")

	data, err := os.ReadFile(filepath.Join(dir, parameter.LogFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
	assert.Contains(t, string(data), `"k":"v"`)

	// Never the terminal
	assert.NotEqual(t, os.Stdout, closer)
	assert.NotEqual(t, os.Stderr, closer)
}

func TestNewLogger_Level(t *testing.T) {
	dir := t.TempDir()
	logger, closer, err := NewLogger(LogConfig{Enabled: true, Level: "WARN", Dir: dir})
	require.NoError(t, err)
	defer closer.Close()
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())

	_, _, err = NewLogger(LogConfig{Enabled: true, Level: "loud", Dir: dir})
	assert.Error(t, err)
}

func TestNewLogger_Rotation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, parameter.LogFileName)
	require.NoError(t, os.WriteFile(path, make([]byte, parameter.MaxLogSize+1), 0644))

	_, closer, err := NewLogger(LogConfig{Enabled: true, Dir: dir})
	require.NoError(t, err)
	defer closer.Close()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	rotated := false
	for _, e := range entries {
		if e.Name() != parameter.LogFileName && filepath.Ext(e.Name()) == ".log" {
			rotated = true
		}
	}
	assert.True(t, rotated, "expected rotated log file")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(parameter.MaxLogSize))
}

// --- Probes ---

func sampleHit(inBounds bool) raycast.Hit {
	d := vmath.Q16FromFloat(4.5)
	if !inBounds {
		d = vmath.Q16Max
	}
	return raycast.Hit{CellX: 9, CellY: 4, Side: raycast.SideX, Distance: d, InBounds: inBounds, Steps: 5}
}

func TestLogProbe(t *testing.T) {
	var buf bytes.Buffer
	p := NewLogProbe(zerolog.New(&buf).Level(zerolog.TraceLevel))

	p.Column(engine.ColumnSample{Column: 3, Hit: sampleHit(true), LineHeight: 28})
	p.Frame(engine.FrameSample{Frame: 7, Columns: 160, Steps: 900, Elapsed: 12 * time.Millisecond})
	p.Move(engine.MoveSample{Actions: input.Forward, Move: camera.Move{BlockedX: true}})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	var col map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &col))
	assert.Equal(t, "trace", col["level"])
	assert.Equal(t, "column", col["message"])
	assert.Equal(t, 4.5, col["dist"])
	assert.Equal(t, "x", col["side"])
	assert.Equal(t, float64(28), col["height"])

	var frame map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &frame))
	assert.Equal(t, "debug", frame["level"])
	assert.Equal(t, float64(7), frame["frame"])

	var move map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &move))
	assert.Equal(t, "info", move["level"])
	assert.Equal(t, "forward", move["actions"])
	assert.Equal(t, true, move["blocked_x"])
}

func TestLogProbe_DebugLevelDropsColumns(t *testing.T) {
	var buf bytes.Buffer
	p := NewLogProbe(zerolog.New(&buf).Level(zerolog.DebugLevel))
	p.Column(engine.ColumnSample{Hit: sampleHit(true)})
	assert.Empty(t, buf.String())
}

func TestMetricProbe(t *testing.T) {
	mp := NewMeterProvider()
	p, err := NewMetricProbe(mp)
	require.NoError(t, err)

	p.Column(engine.ColumnSample{Hit: sampleHit(true), Elapsed: time.Microsecond})
	p.Column(engine.ColumnSample{Hit: sampleHit(false), Elapsed: time.Microsecond})
	p.Frame(engine.FrameSample{Frame: 1, Elapsed: 16 * time.Millisecond})
	p.Move(engine.MoveSample{Move: camera.Move{BlockedX: true, BlockedY: true}})

	snap, err := mp.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 10.0, snap["fixcast.dda.steps"])
	assert.Equal(t, 1.0, snap["fixcast.rays.escaped"])
	assert.Equal(t, 1.0, snap["fixcast.frames"])
	assert.Equal(t, 2.0, snap["fixcast.moves.blocked"])
	assert.Equal(t, 2.0, snap["fixcast.column.duration.count"])
	assert.InDelta(t, 2.0, snap["fixcast.column.duration.sum"], 1e-9)
	assert.Equal(t, 1.0, snap["fixcast.frame.duration.count"])
	assert.InDelta(t, 16.0, snap["fixcast.frame.duration.sum"], 1e-9)
}

func TestMeterProvider_LogSnapshot(t *testing.T) {
	mp := NewMeterProvider()
	p, err := NewMetricProbe(mp)
	require.NoError(t, err)
	p.Frame(engine.FrameSample{Elapsed: 10 * time.Millisecond})

	var buf bytes.Buffer
	require.NoError(t, mp.LogSnapshot(context.Background(), zerolog.New(&buf)))

	var ev map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &ev))
	assert.Equal(t, "metrics", ev["message"])
	assert.Equal(t, 1.0, ev["fixcast.frames"])
}

func TestMetricProbe_GlobalNoop(t *testing.T) {
	p, err := NewMetricProbe(nil)
	require.NoError(t, err)
	assert.NotPanics(t, func() {
		p.Column(engine.ColumnSample{Hit: sampleHit(false)})
		p.Frame(engine.FrameSample{})
		p.Move(engine.MoveSample{})
	})
}

// --- Stats ---

func TestStats(t *testing.T) {
	s := NewStats()
	s.SetCenter(2)

	for col := 0; col < 4; col++ {
		s.Column(engine.ColumnSample{Column: col, Hit: sampleHit(col != 3)})
	}
	s.Frame(engine.FrameSample{Elapsed: 20 * time.Millisecond})
	s.Move(engine.MoveSample{
		Move: camera.Move{BlockedY: true},
		Pos:  vmath.V2(vmath.Q16FromFloat(2.5), vmath.Q16FromFloat(7.25)),
	})

	assert.Equal(t, int64(4), s.Ints.Get(StatColumns).Load())
	assert.Equal(t, int64(20), s.Ints.Get(StatSteps).Load())
	assert.Equal(t, int64(1), s.Ints.Get(StatEscaped).Load())
	assert.Equal(t, int64(1), s.Ints.Get(StatBlocked).Load())
	assert.Equal(t, int64(1), s.Ints.Get(StatFrames).Load())
	assert.InDelta(t, 50.0, s.Floats.Get(StatFPS).Get(), 1e-9)
	assert.InDelta(t, 4.5, s.Floats.Get(StatCenterD).Get(), 1e-9)

	line := s.Line()
	assert.True(t, strings.HasPrefix(line, "blocked=1 columns=4"), line)
	assert.Contains(t, line, "pos.x=2.50")
	assert.Contains(t, line, "pos.y=7.25")
}

func TestMetricMap_Concurrent(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			m.Get("a").Set(float64(i))
		}
	}()
	for i := 0; i < 1000; i++ {
		m.Get("b")
		m.Range(func(string, *AtomicFloat) {})
	}
	<-done
	assert.Equal(t, 2, m.Count())
	assert.Equal(t, 999.0, m.Get("a").Get())
}
