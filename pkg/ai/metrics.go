package ai

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Статусы запроса к классификатору.
const (
	statusSuccess  = "success"
	statusError    = "error"
	statusEmpty    = "error_empty_response"
	statusUnparsed = "unparsed"
	statusPanic    = "panic"
)

var (
	classifierRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "game_forge_classifier_requests_total",
			Help: "Total number of requests to the external classifier.",
		},
		[]string{"backend", "status"},
	)
	classifierRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "game_forge_classifier_request_duration_seconds",
			Help:    "Histogram of external classifier request durations.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"backend"},
	)
	classifierPromptTokens = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "game_forge_classifier_prompt_tokens",
			Help:    "Histogram of user prompt token counts sent to the classifier.",
			Buckets: prometheus.LinearBuckets(32, 32, 16), // 32, 64, ..., 512
		},
	)
)
