// Package metrics defines the Prometheus instrumentation for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains all Prometheus metrics for the transcription service
type Metrics struct {
	// Upload pipeline metrics
	UploadsReceived prometheus.Counter
	UploadsRejected prometheus.Counter
	NotesProduced   prometheus.Counter
	StageDuration   *prometheus.HistogramVec
	StageFailures   *prometheus.CounterVec

	// HTTP API metrics
	HTTPRequests *prometheus.CounterVec
}

// New creates and registers all metrics against the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		UploadsReceived: factory.NewCounter(prometheus.CounterOpts{
			Name: "voicenote_uploads_received_total",
			Help: "Total number of audio uploads received",
		}),
		UploadsRejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "voicenote_uploads_rejected_total",
			Help: "Total number of uploads rejected by extension validation",
		}),
		NotesProduced: factory.NewCounter(prometheus.CounterOpts{
			Name: "voicenote_notes_produced_total",
			Help: "Total number of structured notes produced",
		}),
		StageDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "voicenote_stage_duration_seconds",
			Help:    "Time spent in each pipeline stage",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 12), // 100ms to ~3.5 minutes
		}, []string{"stage"}),
		StageFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "voicenote_stage_failures_total",
			Help: "Total number of pipeline stage failures",
		}, []string{"stage"}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "voicenote_http_requests_total",
			Help: "Total number of HTTP requests by path and status",
		}, []string{"path", "status"}),
	}
}
