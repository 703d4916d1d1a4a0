package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	generationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "game_forge_generations_total",
			Help: "Total number of generated game definitions.",
		},
		[]string{"archetype"},
	)
	generationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "game_forge_generation_duration_seconds",
			Help:    "Histogram of game generation durations, artificial delay included.",
			Buckets: prometheus.DefBuckets,
		},
	)
)
