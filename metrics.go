package sanipath

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sanitizedTotalMetric = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sanipath_sanitized_total",
		Help: "The total number of paths sanitized",
	})
	changedTotalMetric = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sanipath_changed_total",
		Help: "The total number of inputs the sanitizer had to rewrite",
	})
	errorsTotalMetric = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sanipath_errors_total",
		Help: "The total number of requests rejected with an error",
	})
)
