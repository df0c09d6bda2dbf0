// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var SetupStatusRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "console",
	Subsystem: "setup",
	Name:      "status_requests_total",
	Help:      "Setup status requests by reported result.",
}, []string{"needs_setup"})

var SetupAdminCreated = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "console",
	Subsystem: "setup",
	Name:      "admin_created_total",
	Help:      "Initial admin accounts created.",
})

var Logins = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "console",
	Subsystem: "session",
	Name:      "logins_total",
	Help:      "Login attempts by result.",
}, []string{"result"})

// PostLoginRedirects counts resolved post-login routes.
var PostLoginRedirects = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "console",
	Subsystem: "session",
	Name:      "post_login_redirects_total",
	Help:      "Post-login redirect targets handed to clients.",
}, []string{"route"})

var CatalogRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "console",
	Subsystem: "tts",
	Name:      "catalog_requests_total",
	Help:      "TTS catalog lookups by endpoint.",
}, []string{"endpoint"})

var HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "console",
	Subsystem: "http",
	Name:      "request_seconds",
	Help:      "HTTP request latency.",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "route", "status"})
