package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Farm metric names
const (
	MetricNameGamesStarted      = "farm_games_started_total"
	MetricNameFeeds             = "farm_feeds_total"
	MetricNameOrdersPlaced      = "farm_orders_placed_total"
	MetricNameReadyToHarvest    = "farm_ready_to_harvest_total"
	MetricNameAnimalsAbandoned  = "farm_animals_abandoned_total"
	MetricNameHarvests          = "farm_harvests_total"
	MetricNameExperienceAwarded = "farm_experience_awarded_total"
	MetricNameGrowthProgress    = "farm_growth_progress_percent"
	MetricNameHungerPercent     = "farm_hunger_percent"
	MetricNamePollTicks         = "farm_poll_ticks_total"
	MetricNameTimeScale         = "farm_time_scale"
	MetricNamePollsSkipped      = "farm_polls_skipped_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Farm metric help text
const (
	HelpTextGamesStarted      = "Total number of games started"
	HelpTextFeeds             = "Total number of feed actions"
	HelpTextOrdersPlaced      = "Total number of speed-up orders placed"
	HelpTextReadyToHarvest    = "Total number of animals that finished growing"
	HelpTextAnimalsAbandoned  = "Total number of animals that ran away from hunger"
	HelpTextHarvests          = "Total number of harvests collected"
	HelpTextExperienceAwarded = "Total farm experience awarded"
	HelpTextGrowthProgress    = "Growth progress of the current animal at the last poll"
	HelpTextHungerPercent     = "Hunger bar of the current animal at the last poll"
	HelpTextPollTicks         = "Total number of driver polls, by outcome"
	HelpTextTimeScale         = "Current time scale (effective seconds per real second)"
	HelpTextPollsSkipped      = "Total number of driver polls skipped because the previous poll was still running"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelAnimal  = "animal"
	LabelOutcome = "outcome"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadUnexpected = "Event payload has unexpected shape"
	LogMsgMetricsRecorded        = "Metrics recorded for event"
)

// unmatchedRoute labels requests that matched no chi route
const unmatchedRoute = "unmatched"
