package telemetry

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// MeterProvider is an SDK provider read on demand
// Nothing is exported on a timer; Snapshot collects when asked
type MeterProvider struct {
	*sdkmetric.MeterProvider
	reader *sdkmetric.ManualReader
}

// NewMeterProvider creates a provider backed by a manual reader
func NewMeterProvider() *MeterProvider {
	reader := sdkmetric.NewManualReader()
	return &MeterProvider{
		MeterProvider: sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)),
		reader:        reader,
	}
}

// Snapshot flattens current instrument values
// Counters report their total under the instrument name, histograms report
// "<name>.count" and "<name>.sum"
func (p *MeterProvider) Snapshot(ctx context.Context) (map[string]float64, error) {
	var rm metricdata.ResourceMetrics
	if err := p.reader.Collect(ctx, &rm); err != nil {
		return nil, fmt.Errorf("collect metrics: %w", err)
	}

	out := make(map[string]float64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			switch data := m.Data.(type) {
			case metricdata.Sum[int64]:
				for _, dp := range data.DataPoints {
					out[m.Name] += float64(dp.Value)
				}
			case metricdata.Sum[float64]:
				for _, dp := range data.DataPoints {
					out[m.Name] += dp.Value
				}
			case metricdata.Histogram[float64]:
				for _, dp := range data.DataPoints {
					out[m.Name+".count"] += float64(dp.Count)
					out[m.Name+".sum"] += dp.Sum
				}
			}
		}
	}
	return out, nil
}

// LogSnapshot writes one Info event carrying every snapshot value
func (p *MeterProvider) LogSnapshot(ctx context.Context, logger zerolog.Logger) error {
	snap, err := p.Snapshot(ctx)
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(snap))
	for k := range snap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	e := logger.Info()
	for _, k := range keys {
		e = e.Float64(k, snap[k])
	}
	e.Msg("metrics")
	return nil
}
