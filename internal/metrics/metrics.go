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

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Farm Metrics
var (
	GamesStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGamesStarted,
			Help: HelpTextGamesStarted,
		},
		[]string{LabelAnimal},
	)

	Feeds = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFeeds,
			Help: HelpTextFeeds,
		},
		[]string{LabelAnimal},
	)

	OrdersPlaced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameOrdersPlaced,
			Help: HelpTextOrdersPlaced,
		},
		[]string{LabelAnimal},
	)

	ReadyToHarvest = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameReadyToHarvest,
			Help: HelpTextReadyToHarvest,
		},
		[]string{LabelAnimal},
	)

	AnimalsAbandoned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAnimalsAbandoned,
			Help: HelpTextAnimalsAbandoned,
		},
		[]string{LabelAnimal},
	)

	Harvests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHarvests,
			Help: HelpTextHarvests,
		},
		[]string{LabelAnimal},
	)

	ExperienceAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameExperienceAwarded,
			Help: HelpTextExperienceAwarded,
		},
	)

	GrowthProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameGrowthProgress,
			Help: HelpTextGrowthProgress,
		},
	)

	HungerPercent = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHungerPercent,
			Help: HelpTextHungerPercent,
		},
	)

	PollTicks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePollTicks,
			Help: HelpTextPollTicks,
		},
		[]string{LabelOutcome},
	)

	TimeScale = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameTimeScale,
			Help: HelpTextTimeScale,
		},
	)

	PollsSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePollsSkipped,
			Help: HelpTextPollsSkipped,
		},
	)
)
