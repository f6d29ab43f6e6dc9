// Package metrics expone métricas Prometheus del API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/ports"
)

var _ ports.Metrics = (*Collector)(nil)

// Collector agrupa los contadores del servicio.
type Collector struct {
	httpRequests  *prometheus.CounterVec
	httpLatency   *prometheus.HistogramVec
	transitions   *prometheus.CounterVec
	uploads       *prometheus.CounterVec
	emailFailures prometheus.Counter
}

// NewCollector registra las métricas en reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "docflow_http_requests_total",
			Help: "Requests HTTP por método, ruta y status",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "docflow_http_request_duration_seconds",
			Help:    "Latencia de requests HTTP (segundos)",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "docflow_document_transitions_total",
			Help: "Documentos aprobados o reprobados",
		}, []string{"status"}),
		uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "docflow_uploads_total",
			Help: "Subidas de archivos por modo",
		}, []string{"mode"}),
		emailFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "docflow_email_failures_total",
			Help: "Emails de acceso que no pudieron enviarse",
		}),
	}

	reg.MustRegister(c.httpRequests, c.httpLatency, c.transitions, c.uploads, c.emailFailures)
	return c
}

// RecordHTTP registra un request terminado.
func (c *Collector) RecordHTTP(method, route string, status int, elapsed time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpLatency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RecordTransition registra un cambio de estado de documento.
func (c *Collector) RecordTransition(status string) {
	c.transitions.WithLabelValues(status).Inc()
}

// RecordUpload registra una subida (direto | assinado).
func (c *Collector) RecordUpload(mode string) {
	c.uploads.WithLabelValues(mode).Inc()
}

// RecordEmailFailure registra un email no enviado.
func (c *Collector) RecordEmailFailure() {
	c.emailFailures.Inc()
}

// Handler handler de scrape.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
