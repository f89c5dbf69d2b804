package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.ObserveRenderDuration(150 * time.Millisecond)
	pr.IncPageWritten(PageIndex)
	pr.IncPageWritten(PageNamespace)
	pr.IncPageWritten(PageNamespace)
	pr.AddBytesWritten(1024)
	pr.IncAssetCopied()
	pr.IncRenderOutcome(OutcomeSuccess)

	mfs, err := reg.Gather()
	require.NoError(t, err)

	byName := map[string]float64{}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			if c := m.GetCounter(); c != nil {
				byName[mf.GetName()] += c.GetValue()
			}
		}
	}
	assert.Equal(t, 3.0, byName["nsdoc_pages_written_total"])
	assert.Equal(t, 1024.0, byName["nsdoc_page_bytes_written_total"])
	assert.Equal(t, 1.0, byName["nsdoc_assets_copied_total"])
	assert.Equal(t, 1.0, byName["nsdoc_render_outcomes_total"])
}

func TestWriteTextfile(t *testing.T) {
	reg := prom.NewRegistry()
	NewPrometheusRecorder(reg).IncRenderOutcome(OutcomeFailed)

	path := filepath.Join(t.TempDir(), "nsdoc.prom")
	require.NoError(t, WriteTextfile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `nsdoc_render_outcomes_total{outcome="failed"} 1`)
}

func TestNilAndNoopRecordersAreSafe(t *testing.T) {
	var pr *PrometheusRecorder
	pr.IncAssetCopied()
	pr.ObserveRenderDuration(time.Second)

	var r Recorder = NoopRecorder{}
	r.IncPageWritten(PageIndex)
	r.IncRenderOutcome(OutcomeSuccess)
}
