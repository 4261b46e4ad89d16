package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Session Metrics
var (
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameActiveSessions,
			Help: HelpTextActiveSessions,
		},
	)

	AdmissionsRejected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAdmissionsRejected,
			Help: HelpTextAdmissionsRejected,
		},
	)

	SessionsEvicted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSessionsEvicted,
			Help: HelpTextSessionsEvicted,
		},
	)
)

// Game Metrics
var (
	CombatOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCombatOutcomes,
			Help: HelpTextCombatOutcomes,
		},
		[]string{LabelResult},
	)

	ExploreEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameExploreEvents,
			Help: HelpTextExploreEvents,
		},
		[]string{LabelResult},
	)

	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
	)

	ItemsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsSold,
			Help: HelpTextItemsSold,
		},
		[]string{LabelItem},
	)

	GoldEarned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGoldEarned,
			Help: HelpTextGoldEarned,
		},
		[]string{LabelSource},
	)

	GoldLost = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGoldLost,
			Help: HelpTextGoldLost,
		},
	)
)

// Persistence Metrics
var (
	PersistRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePersistRetries,
			Help: HelpTextPersistRetries,
		},
		[]string{LabelOperation},
	)

	PersistFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePersistFailures,
			Help: HelpTextPersistFailures,
		},
		[]string{LabelOperation},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCacheLookups,
			Help: HelpTextCacheLookups,
		},
		[]string{LabelResult},
	)
)
