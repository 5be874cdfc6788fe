package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Transports label the surface a request arrived on.
const (
	TransportHTTP = "http"
	TransportGRPC = "grpc"
)

// Validation results.
const (
	ResultValid   = "valid"
	ResultInvalid = "invalid"
)

// Metrics provides observability for IMEI generation and validation.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	Generated *prometheus.CounterVec

	// Validation outcomes by transport and result
	Validations *prometheus.CounterVec

	ParseFailures *prometheus.CounterVec

	RequestDuration *prometheus.HistogramVec
}

// New creates a new Metrics instance registered on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Generated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "imei_generated_total",
			Help: "Total IMEIs generated by transport",
		}, []string{"transport"}),

		Validations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "imei_validations_total",
			Help: "Total IMEI validations by transport and result",
		}, []string{"transport", "result"}),

		ParseFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "imei_parse_failures_total",
			Help: "Total parse requests rejected as invalid IMEIs",
		}, []string{"transport"}),

		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "imei_request_duration_seconds",
			Help:    "Duration of IMEI operations by transport and operation",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}, []string{"transport", "op"}),
	}
}

// AddGenerated records n newly generated IMEIs.
func (m *Metrics) AddGenerated(transport string, n int) {
	if m != nil {
		m.Generated.WithLabelValues(transport).Add(float64(n))
	}
}

// IncrementValidation records a validation outcome.
func (m *Metrics) IncrementValidation(transport string, valid bool) {
	if m != nil {
		result := ResultInvalid
		if valid {
			result = ResultValid
		}
		m.Validations.WithLabelValues(transport, result).Inc()
	}
}

func (m *Metrics) IncrementParseFailure(transport string) {
	if m != nil {
		m.ParseFailures.WithLabelValues(transport).Inc()
	}
}

// ObserveDuration records how long op took.
func (m *Metrics) ObserveDuration(transport, op string, d time.Duration) {
	if m != nil {
		m.RequestDuration.WithLabelValues(transport, op).Observe(d.Seconds())
	}
}
