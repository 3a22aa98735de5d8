package metricbundle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

type recordedMetric struct {
	name  string
	value float64
	attrs []attribute.KeyValue
}

type fakeMetricsClient struct {
	counters   []recordedMetric
	histograms []recordedMetric
}

func (f *fakeMetricsClient) RecordCounter(ctx context.Context, name string, value int64, attrs ...attribute.KeyValue) {
	f.counters = append(f.counters, recordedMetric{name: name, value: float64(value), attrs: attrs})
}

func (f *fakeMetricsClient) RecordHistogram(ctx context.Context, name string, value float64, attrs ...attribute.KeyValue) {
	f.histograms = append(f.histograms, recordedMetric{name: name, value: value, attrs: attrs})
}

func attrValue(attrs []attribute.KeyValue, key string) (string, bool) {
	for _, a := range attrs {
		if string(a.Key) == key {
			return a.Value.Emit(), true
		}
	}
	return "", false
}

func TestMetricName(t *testing.T) {
	require.Equal(t, "gridpool.order.result", MetricName("gridpool", "order", "result"))
}

func TestRecordResultAddsStatus(t *testing.T) {
	fake := &fakeMetricsClient{}
	base := NewBaseMetrics(fake, "gridpool", "order")

	base.RecordResult(context.Background(), true)
	base.RecordResult(context.Background(), false)

	require.Len(t, fake.counters, 2)
	require.Equal(t, "gridpool.order.result", fake.counters[0].name)

	status, ok := attrValue(fake.counters[0].attrs, "status")
	require.True(t, ok)
	require.Equal(t, "ok", status)

	status, ok = attrValue(fake.counters[1].attrs, "status")
	require.True(t, ok)
	require.Equal(t, "error", status)
}

func TestStartDurationTimer(t *testing.T) {
	fake := &fakeMetricsClient{}
	base := NewBaseMetrics(fake, "gridpool", "order")

	done := base.StartDurationTimer(context.Background())
	require.Empty(t, fake.histograms)
	done()

	require.Len(t, fake.histograms, 1)
	require.Equal(t, "gridpool.order.duration", fake.histograms[0].name)
	require.GreaterOrEqual(t, fake.histograms[0].value, 0.0)
}

func TestOrderMetricsRecordOperation(t *testing.T) {
	fake := &fakeMetricsClient{}
	orders := NewOrderMetrics(fake)

	orders.RecordOperation(context.Background(), "create", 42, true)

	require.Len(t, fake.counters, 1)
	require.Equal(t, "gridpool.order.result", fake.counters[0].name)

	action, ok := attrValue(fake.counters[0].attrs, "action")
	require.True(t, ok)
	require.Equal(t, "create", action)

	gridpoolID, ok := attrValue(fake.counters[0].attrs, "gridpool_id")
	require.True(t, ok)
	require.Equal(t, "42", gridpoolID)
}

func TestStreamMetrics(t *testing.T) {
	fake := &fakeMetricsClient{}
	streams := NewStreamMetrics(fake)
	ctx := context.Background()

	streams.RecordOpened(ctx, "public-trades")
	streams.RecordEvents(ctx, "public-trades", 3)
	streams.RecordTerminated(ctx, "public-trades", false)

	require.Len(t, fake.counters, 3)
	require.Equal(t, "gridpool.stream.opened", fake.counters[0].name)
	require.Equal(t, "gridpool.stream.events", fake.counters[1].name)
	require.Equal(t, float64(3), fake.counters[1].value)
	require.Equal(t, "gridpool.stream.terminated", fake.counters[2].name)

	status, ok := attrValue(fake.counters[2].attrs, "status")
	require.True(t, ok)
	require.Equal(t, "error", status)
}
