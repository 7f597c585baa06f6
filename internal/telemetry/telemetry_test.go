package telemetry

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

// syncBuffer guards a buffer written by exporter goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSetupProviders_ExportsOnShutdown(t *testing.T) {
	// ARRANGE
	var traces, metrics syncBuffer
	shutdown, err := setupProviders(context.Background(), &traces, &metrics, time.Hour)
	require.NoError(t, err)

	// ACT
	_, span := otel.Tracer("test").Start(context.Background(), "tunnel.standard")
	span.End()
	counter, err := otel.Meter("test").Int64Counter("tunnel.strategy.attempts")
	require.NoError(t, err)
	counter.Add(context.Background(), 1)
	shutdown()

	// ASSERT
	assert.Contains(t, traces.String(), "tunnel.standard")
	assert.Contains(t, traces.String(), serviceName)
	assert.Contains(t, metrics.String(), "tunnel.strategy.attempts")
}

func TestSetup_CreatesFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "telemetry")

	shutdown, err := Setup(context.Background(), Options{Dir: dir, MetricInterval: time.Hour})
	require.NoError(t, err)

	_, span := otel.Tracer("test").Start(context.Background(), "probe")
	span.End()
	shutdown()

	_, err = os.Stat(filepath.Join(dir, traceFileName))
	assert.NoError(t, err)
}
