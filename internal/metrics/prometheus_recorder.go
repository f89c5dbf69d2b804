package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	renderDuration prom.Histogram
	pagesWritten   *prom.CounterVec
	bytesWritten   prom.Counter
	assetsCopied   prom.Counter
	renderOutcome  *prom.CounterVec
}

// NewPrometheusRecorder constructs the metrics and registers them on reg
// (a fresh registry when reg is nil).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		renderDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "nsdoc",
			Name:      "render_duration_seconds",
			Help:      "Duration of a complete site render",
			Buckets:   prom.DefBuckets,
		}),
		pagesWritten: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "nsdoc",
			Name:      "pages_written_total",
			Help:      "Pages written by kind",
		}, []string{"kind"}),
		bytesWritten: prom.NewCounter(prom.CounterOpts{
			Namespace: "nsdoc",
			Name:      "page_bytes_written_total",
			Help:      "Bytes of HTML written",
		}),
		assetsCopied: prom.NewCounter(prom.CounterOpts{
			Namespace: "nsdoc",
			Name:      "assets_copied_total",
			Help:      "Static assets copied into the output directory",
		}),
		renderOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "nsdoc",
			Name:      "render_outcomes_total",
			Help:      "Renders by final status",
		}, []string{"outcome"}),
	}
	reg.MustRegister(pr.renderDuration, pr.pagesWritten, pr.bytesWritten, pr.assetsCopied, pr.renderOutcome)
	return pr
}

func (p *PrometheusRecorder) ObserveRenderDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.renderDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncPageWritten(kind PageKind) {
	if p == nil {
		return
	}
	p.pagesWritten.WithLabelValues(string(kind)).Inc()
}

func (p *PrometheusRecorder) AddBytesWritten(n int) {
	if p == nil {
		return
	}
	p.bytesWritten.Add(float64(n))
}

func (p *PrometheusRecorder) IncAssetCopied() {
	if p == nil {
		return
	}
	p.assetsCopied.Inc()
}

func (p *PrometheusRecorder) IncRenderOutcome(outcome OutcomeLabel) {
	if p == nil {
		return
	}
	p.renderOutcome.WithLabelValues(string(outcome)).Inc()
}

// WriteTextfile writes everything registered on g in the text exposition
// format, atomically replacing path.
func WriteTextfile(path string, g prom.Gatherer) error {
	return prom.WriteToTextfile(path, g)
}
