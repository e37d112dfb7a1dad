package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce       sync.Once
	quizRequestsTotal  *prometheus.CounterVec
	quizLatencySeconds *prometheus.HistogramVec
	quizErrorsTotal    *prometheus.CounterVec
	gradedAccuracyRate prometheus.Histogram
)

// RegisterMetrics initialises the Prometheus collectors for the quiz API.
func RegisterMetrics() {
	registerOnce.Do(func() {
		quizRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "quiz_requests_total",
			Help: "Total number of quiz API requests served.",
		}, []string{"method", "route", "status"})

		quizLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "quiz_latency_seconds",
			Help:    "Latency distribution for quiz API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		quizErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "quiz_errors_total",
			Help: "Total number of error responses returned by quiz endpoints.",
		}, []string{"method", "route", "status"})

		gradedAccuracyRate = prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "quiz_graded_accuracy_rate",
			Help:    "Distribution of accuracy rates across graded attempts.",
			Buckets: []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
		})

		prometheus.MustRegister(quizRequestsTotal, quizLatencySeconds, quizErrorsTotal, gradedAccuracyRate)
	})
}

// QuizRequests exposes the counter for quiz API requests.
func QuizRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return quizRequestsTotal
}

// QuizLatency exposes the latency histogram for quiz API requests.
func QuizLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return quizLatencySeconds
}

// QuizErrors exposes the counter for quiz error responses.
func QuizErrors() *prometheus.CounterVec {
	RegisterMetrics()
	return quizErrorsTotal
}

// GradedAccuracy exposes the accuracy-rate histogram for graded attempts.
func GradedAccuracy() prometheus.Histogram {
	RegisterMetrics()
	return gradedAccuracyRate
}
