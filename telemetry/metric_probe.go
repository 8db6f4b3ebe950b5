package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/lixenwraith/fixcast/engine"
)

const instrumentationName = "github.com/lixenwraith/fixcast/telemetry"

var (
	axisX = metric.WithAttributes(attribute.String("axis", "x"))
	axisY = metric.WithAttributes(attribute.String("axis", "y"))
)

// MetricProbe records loop samples as OpenTelemetry instruments
// Without an installed provider the global no-op meter makes every call free
type MetricProbe struct {
	columnTime metric.Float64Histogram
	frameTime  metric.Float64Histogram
	frames     metric.Int64Counter
	steps      metric.Int64Counter
	escaped    metric.Int64Counter
	blocked    metric.Int64Counter
}

// NewMetricProbe creates the instruments on mp, or on the global provider when mp is nil
func NewMetricProbe(mp metric.MeterProvider) (*MetricProbe, error) {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	m := mp.Meter(instrumentationName)

	p := &MetricProbe{}
	var err error

	p.columnTime, err = m.Float64Histogram(
		"fixcast.column.duration",
		metric.WithDescription("Time to cast, project and draw one column"),
		metric.WithUnit("us"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating column duration histogram: %w", err)
	}

	p.frameTime, err = m.Float64Histogram(
		"fixcast.frame.duration",
		metric.WithDescription("Wall time between column index wraps"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating frame duration histogram: %w", err)
	}

	p.frames, err = m.Int64Counter(
		"fixcast.frames",
		metric.WithDescription("Completed frames"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating frame counter: %w", err)
	}

	p.steps, err = m.Int64Counter(
		"fixcast.dda.steps",
		metric.WithDescription("Grid cells visited by ray traversal"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating step counter: %w", err)
	}

	p.escaped, err = m.Int64Counter(
		"fixcast.rays.escaped",
		metric.WithDescription("Rays that left the grid without a hit"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating escaped counter: %w", err)
	}

	p.blocked, err = m.Int64Counter(
		"fixcast.moves.blocked",
		metric.WithDescription("Movement axes rejected by collision"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating blocked counter: %w", err)
	}

	return p, nil
}

func (p *MetricProbe) Column(s engine.ColumnSample) {
	ctx := context.Background()
	p.columnTime.Record(ctx, float64(s.Elapsed.Nanoseconds())/1e3)
	p.steps.Add(ctx, int64(s.Hit.Steps))
	if !s.Hit.InBounds {
		p.escaped.Add(ctx, 1)
	}
}

func (p *MetricProbe) Frame(s engine.FrameSample) {
	ctx := context.Background()
	p.frameTime.Record(ctx, float64(s.Elapsed.Nanoseconds())/1e6)
	p.frames.Add(ctx, 1)
}

func (p *MetricProbe) Move(s engine.MoveSample) {
	ctx := context.Background()
	if s.Move.BlockedX {
		p.blocked.Add(ctx, 1, axisX)
	}
	if s.Move.BlockedY {
		p.blocked.Add(ctx, 1, axisY)
	}
}
