// Package metric provides Prometheus metrics for the activity service.
//
//   - prometheus.go: the Registry, its instruments and the /metrics handler
//   - collector.go: ActivityCollector, which reads roster sizes at scrape time
//
// Registry uses its own prometheus.Registry rather than the global default,
// so tests can build as many as they like.
package metric
