package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/amoylab/toolshop-datagen/internal/common/config"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New(config.MetricsConfig{Namespace: "ts"})

	m.RowsGenerated("users", 10)
	m.RowsGenerated("users", 5)
	m.RowsGenerated("products", 3)
	assert.Equal(t, 15.0, testutil.ToFloat64(m.rowsGenerated.WithLabelValues("users")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.rowsGenerated.WithLabelValues("products")))

	m.PhaseStart("generate")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.phaseInfl.WithLabelValues("generate")))
	m.PhaseDone("generate", time.Now(), nil)
	m.PhaseStart("export")
	m.PhaseDone("export", time.Now(), errors.New("disk full"))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.phaseInfl.WithLabelValues("generate")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.phaseDur))

	m.RunFailed("io")
	m.IntegrityViolations(2)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.runErrors.WithLabelValues("io")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.violations))
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.PhaseStart("x")
		m.PhaseDone("x", time.Now(), nil)
		m.RowsGenerated("users", 1)
		m.RunFailed("io")
		m.IntegrityViolations(1)
		m.RunCompleted(time.Now())
	})
	assert.Nil(t, m.Registry())
	assert.NoError(t, m.WriteTextfile(filepath.Join(t.TempDir(), "m.prom")))
}

func TestMetrics_WriteTextfile(t *testing.T) {
	m := New(config.MetricsConfig{Namespace: "toolshop_datagen"})
	m.RowsGenerated("favorites", 15)
	m.RunCompleted(time.Unix(1700000000, 0))

	path := filepath.Join(t.TempDir(), "nested", "metrics.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `toolshop_datagen_rows_generated_total{table="favorites"} 15`)
	assert.Contains(t, string(data), "toolshop_datagen_last_run_timestamp_seconds ")
}
