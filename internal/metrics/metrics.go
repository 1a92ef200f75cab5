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

// Leveling Metrics
var (
	MessagesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMessagesProcessed,
			Help: HelpTextMessagesProcessed,
		},
		[]string{LabelGranted},
	)

	XPGranted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameXPGranted,
			Help: HelpTextXPGranted,
		},
	)

	LevelUps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
		[]string{LabelEngine},
	)
)

// Adventure Metrics
var (
	Hunts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHunts,
			Help: HelpTextHunts,
		},
		[]string{LabelOutcome},
	)

	TrainingSessions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTrainingSessions,
			Help: HelpTextTrainingSessions,
		},
	)

	DailyClaims = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDailyClaims,
			Help: HelpTextDailyClaims,
		},
	)

	ItemsBought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsBought,
			Help: HelpTextItemsBought,
		},
		[]string{LabelItem},
	)

	ItemsEquipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsEquipped,
			Help: HelpTextItemsEquipped,
		},
		[]string{LabelItem},
	)

	QuestsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameQuestsCompleted,
			Help: HelpTextQuestsCompleted,
		},
	)
)
