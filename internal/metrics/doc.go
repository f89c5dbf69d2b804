// Package metrics records render metrics.
//
// Components receive a Recorder and default to NoopRecorder, so metrics cost
// nothing unless a real implementation is injected:
//
//	reg := prometheus.NewRegistry()
//	recorder := metrics.NewPrometheusRecorder(reg)
//	writer := site.NewWriter(site.WithRecorder(recorder))
//	...
//	err := metrics.WriteTextfile(path, reg)
//
// There is no HTTP endpoint. Renders are one-shot, so metrics are exported
// as a node-exporter textfile once the render finishes.
package metrics
