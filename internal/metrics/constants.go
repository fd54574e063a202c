package metrics

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

// Game metric names
const (
	MetricNameQuestsCompleted     = "quests_completed_total"
	MetricNameQuestsFailed        = "quests_failed_total"
	MetricNameItemsBought         = "items_bought_total"
	MetricNameItemsUsed           = "items_used_total"
	MetricNameLevelUps            = "character_level_ups_total"
	MetricNameDeaths              = "character_deaths_total"
	MetricNameMaintenanceRuns     = "maintenance_runs_total"
	MetricNameMaintenancePenalty  = "maintenance_penalties_total"
)

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

// Game metric help text
const (
	HelpTextQuestsCompleted    = "Total number of quests completed"
	HelpTextQuestsFailed       = "Total number of quests failed"
	HelpTextItemsBought        = "Total number of shop purchases"
	HelpTextItemsUsed          = "Total number of consumables used"
	HelpTextLevelUps           = "Total number of character level-ups"
	HelpTextDeaths             = "Total number of character deaths"
	HelpTextMaintenanceRuns    = "Total number of daily maintenance sweeps"
	HelpTextMaintenancePenalty = "Total number of penalties applied by maintenance"
)

// Common label names used across metrics
const (
	LabelMethod     = "method"
	LabelPath       = "path"
	LabelStatus     = "status"
	LabelType       = "type"
	LabelDifficulty = "difficulty"
	LabelItem       = "item"
)

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, ranging from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Event payload has unexpected shape"
)
