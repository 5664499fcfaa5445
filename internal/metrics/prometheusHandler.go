package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "http_requests_total",
	Help: "Total number of requests labelled by path and status",
}, []string{"path", "status"})

var documentsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "documents_processed_total",
	Help: "Documents run through the pipeline, labelled by outcome status",
}, []string{"status"})

var issuesCreated = promauto.NewCounter(prometheus.CounterOpts{
	Name: "tracker_issues_created_total",
	Help: "Issues successfully created in the tracker",
})

var issuesFailed = promauto.NewCounter(prometheus.CounterOpts{
	Name: "tracker_issues_failed_total",
	Help: "Issue creations that failed",
})

var transcriptionChunks = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "transcription_chunks_total",
	Help: "Audio chunks sent to recognition, labelled by outcome",
}, []string{"outcome"})

type HttpStatusRecorder struct {
	http.ResponseWriter
	Status int
}

func (r *HttpStatusRecorder) WriteHeader(code int) {
	r.Status = code
	r.ResponseWriter.WriteHeader(code)
}

func CountDocumentProcessed(status string) {
	documentsProcessed.WithLabelValues(status).Inc()
}

func IncrementIssuesCreated() {
	issuesCreated.Inc()
}

func IncrementIssuesFailed() {
	issuesFailed.Inc()
}

func CountTranscriptionChunk(outcome string) {
	transcriptionChunks.WithLabelValues(outcome).Inc()
}

var dependencyLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "dependency_latency_seconds",
	Help:    "Latency of external service calls.",
	Buckets: []float64{.05, .1, .25, .5, 1, 2, 5, 10, 30, 60, 120},
}, []string{"service"})

var pipelineDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "pipeline_duration_seconds",
	Help:    "Total time spent processing one document.",
	Buckets: []float64{.1, .5, 1, 2, 5, 10, 30, 60, 120},
}, []string{"status"})

func CaptureDependencyLatency(service string, timeElapsed time.Duration) {
	dependencyLatency.WithLabelValues(service).Observe(timeElapsed.Seconds())
}

func CapturePipelineDuration(status string, timeElapsed time.Duration) {
	pipelineDuration.WithLabelValues(status).Observe(timeElapsed.Seconds())
}
