package metrics

import "time"

// PageKind labels written pages.
type PageKind string

const (
	PageIndex     PageKind = "index"
	PageNamespace PageKind = "namespace"
)

// OutcomeLabel is the final status of a render.
type OutcomeLabel string

const (
	OutcomeSuccess OutcomeLabel = "success"
	OutcomeFailed  OutcomeLabel = "failed"
)

// Recorder receives render observations. Implementations must tolerate nil
// receivers.
type Recorder interface {
	ObserveRenderDuration(d time.Duration)
	IncPageWritten(kind PageKind)
	AddBytesWritten(n int)
	IncAssetCopied()
	IncRenderOutcome(outcome OutcomeLabel)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are
// not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveRenderDuration(time.Duration) {}
func (NoopRecorder) IncPageWritten(PageKind)             {}
func (NoopRecorder) AddBytesWritten(int)                 {}
func (NoopRecorder) IncAssetCopied()                     {}
func (NoopRecorder) IncRenderOutcome(OutcomeLabel)       {}
