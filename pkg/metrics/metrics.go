package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Business metrics
	MessagesSent      prometheus.Counter
	MessagesFailed    prometheus.Counter
	MessagesSkipped   *prometheus.CounterVec
	RepliesReceived   prometheus.Counter
	ContactsAdmitted  prometheus.Counter
	ContactsRestarted prometheus.Counter
	CreditsConsumed   prometheus.Counter

	// Dispatch metrics
	DispatchDuration prometheus.Histogram
	DueBatchSize     prometheus.Histogram
}

// New creates a new Metrics instance with all metrics registered
func New() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),

		MessagesSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "sms_messages_sent_total",
			Help: "Total number of outbound SMS messages sent",
		}),
		MessagesFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "sms_messages_failed_total",
			Help: "Total number of outbound SMS messages that failed",
		}),
		MessagesSkipped: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sms_messages_skipped_total",
				Help: "Total number of due messages skipped at a gate",
			},
			[]string{"reason"}, // requires_a2p, insufficient_credits, campaign_paused, ...
		),
		RepliesReceived: promauto.NewCounter(prometheus.CounterOpts{
			Name: "sms_replies_received_total",
			Help: "Total number of inbound replies received",
		}),
		ContactsAdmitted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "drip_contacts_admitted_total",
			Help: "Total number of contacts admitted into drip sequences",
		}),
		ContactsRestarted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "drip_contacts_restarted_total",
			Help: "Total number of dormant contacts restarted at step 1",
		}),
		CreditsConsumed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "billing_credits_consumed_total",
			Help: "Total number of message credits consumed",
		}),

		DispatchDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "dispatch_cycle_duration_seconds",
			Help:    "Duration of one dispatch cycle",
			Buckets: prometheus.DefBuckets,
		}),
		DueBatchSize: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "dispatch_due_batch_size",
			Help:    "Number of due messages selected per dispatch cycle",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
		}),
	}
}

// Middleware returns an Echo middleware that records HTTP metrics
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			method := c.Request().Method
			path := c.Path()
			statusStr := strconv.Itoa(status)

			m.HTTPRequestsTotal.WithLabelValues(method, path, statusStr).Inc()
			m.HTTPRequestDuration.WithLabelValues(method, path, statusStr).Observe(time.Since(start).Seconds())

			return err
		}
	}
}
