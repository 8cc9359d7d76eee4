package config

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// loadTimestamp records the Unix time of the last successful Load.
	loadTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "textstats_config_load_timestamp",
		Help: "Unix timestamp of last configuration load",
	})

	// validationErrorsTotal counts rejected configuration values by field.
	validationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "textstats_config_validation_errors_total",
		Help: "Total number of configuration validation errors",
	}, []string{"field"})
)

func recordLoad() {
	loadTimestamp.SetToCurrentTime()
}

func recordValidationError(field string) {
	validationErrorsTotal.WithLabelValues(field).Inc()
}
