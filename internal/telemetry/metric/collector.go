package metric

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/yndnr/mergington-go/internal/core/domain"
)

// ActivitySource lists the current activities.
type ActivitySource interface {
	List(ctx context.Context) (map[string]*domain.Activity, error)
}

// ActivityCollector exports roster size and capacity per activity.
type ActivityCollector struct {
	source       ActivitySource
	participants *prometheus.Desc
	capacity     *prometheus.Desc
}

// NewActivityCollector creates a collector reading from source.
func NewActivityCollector(source ActivitySource) *ActivityCollector {
	return &ActivityCollector{
		source: source,
		participants: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "activity", "participants"),
			"Students currently enrolled in the activity.",
			[]string{"activity"}, nil,
		),
		capacity: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "activity", "capacity"),
			"Configured max_participants of the activity.",
			[]string{"activity"}, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *ActivityCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.participants
	ch <- c.capacity
}

// Collect implements prometheus.Collector.
func (c *ActivityCollector) Collect(ch chan<- prometheus.Metric) {
	activities, err := c.source.List(context.Background())
	if err != nil {
		slog.Error("activity metrics collection failed", "error", err)
		return
	}
	for name, a := range activities {
		ch <- prometheus.MustNewConstMetric(c.participants, prometheus.GaugeValue, float64(len(a.Participants)), name)
		ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(a.MaxParticipants), name)
	}
}
