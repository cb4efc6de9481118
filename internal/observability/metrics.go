package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bridgectl",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total admin HTTP requests.",
		},
		[]string{"node", "method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "bridgectl",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Admin HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"node", "method", "path", "status"},
	)
	commandsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bridgectl",
			Subsystem: "console",
			Name:      "commands_total",
			Help:      "Validated bridge requests by interface, operation and execution outcome.",
		},
		[]string{"node", "interface", "operation", "outcome"},
	)
	rejectionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bridgectl",
			Subsystem: "console",
			Name:      "rejections_total",
			Help:      "Command lines rejected before validation, by reason.",
		},
		[]string{"node", "reason"},
	)
	menuTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bridgectl",
			Subsystem: "console",
			Name:      "menu_total",
			Help:      "Menu alias lines handled.",
		},
		[]string{"node"},
	)
	executeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "bridgectl",
			Subsystem: "bridge",
			Name:      "execute_duration_seconds",
			Help:      "Bridge request execution duration in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		},
		[]string{"node", "interface", "operation"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, commandsTotal, rejectionsTotal, menuTotal, executeDuration)
	})
}

func RecordHTTPRequest(node, method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(node, method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(node, method, path, statusLabel).Observe(duration.Seconds())
}

func RecordCommand(node, iface, operation string, success bool, duration time.Duration) {
	RegisterMetrics()
	outcome := "success"
	if !success {
		outcome = "error"
	}
	commandsTotal.WithLabelValues(node, iface, operation, outcome).Inc()
	executeDuration.WithLabelValues(node, iface, operation).Observe(duration.Seconds())
}

func RecordRejection(node, reason string) {
	RegisterMetrics()
	rejectionsTotal.WithLabelValues(node, reason).Inc()
}

func RecordMenu(node string) {
	RegisterMetrics()
	menuTotal.WithLabelValues(node).Inc()
}
