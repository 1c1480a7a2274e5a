package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics gom các collector của API vào một registry riêng.
// Mọi method an toàn với receiver nil (handler test không cần metrics).
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	logins       *prometheus.CounterVec
	demos        prometheus.Counter
	uploads      *prometheus.CounterVec
}

// Kết quả login dùng làm label
const (
	LoginSuccess = "success"
	LoginFailed  = "failed"
	LoginLocked  = "locked"
)

func New(prefix string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		logins: factory.NewCounterVec(prometheus.CounterOpts{
			Name: prefix + "_admin_logins_total",
			Help: "Admin sign-in attempts by result",
		}, []string{"result"}),
		demos: factory.NewCounter(prometheus.CounterOpts{
			Name: prefix + "_demo_submissions_total",
			Help: "Accepted demo submissions",
		}),
		uploads: factory.NewCounterVec(prometheus.CounterOpts{
			Name: prefix + "_media_uploads_total",
			Help: "Uploaded media files by result",
		}, []string{"result"}),
	}
}

// ObserveRequest ghi một request; route là pattern của gin (":id" chưa thay) để tránh label nổ
func (m *Metrics) ObserveRequest(method, route, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, status).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) RecordLogin(result string) {
	if m == nil {
		return
	}
	m.logins.WithLabelValues(result).Inc()
}

func (m *Metrics) RecordDemoSubmission() {
	if m == nil {
		return
	}
	m.demos.Inc()
}

func (m *Metrics) RecordUploads(succeeded, failed int) {
	if m == nil {
		return
	}
	m.uploads.WithLabelValues("succeeded").Add(float64(succeeded))
	m.uploads.WithLabelValues("failed").Add(float64(failed))
}

// Handler expose registry theo format Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Gatherer dùng trong test để đọc giá trị đã ghi
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}
