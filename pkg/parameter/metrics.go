package parameter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusValid   = "valid"
	statusInvalid = "invalid"
)

var (
	// Parameter validation metrics
	inputValidationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tosca_input_validation_total",
			Help: "Total number of input value validations",
		},
		[]string{"status"}, // valid or invalid
	)

	outputValidationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tosca_output_validation_total",
			Help: "Total number of output attribute validations",
		},
		[]string{"status"}, // valid or invalid
	)
)
