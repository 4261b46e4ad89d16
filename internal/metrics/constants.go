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

// Session metric names
const (
	MetricNameActiveSessions     = "questbot_active_sessions"
	MetricNameAdmissionsRejected = "questbot_admissions_rejected_total"
	MetricNameSessionsEvicted    = "questbot_sessions_evicted_total"
)

// Game metric names
const (
	MetricNameCombatOutcomes = "questbot_combat_outcomes_total"
	MetricNameExploreEvents  = "questbot_explore_events_total"
	MetricNameLevelUps       = "questbot_level_ups_total"
	MetricNameItemsSold      = "questbot_items_sold_total"
	MetricNameGoldEarned     = "questbot_gold_earned_total"
	MetricNameGoldLost       = "questbot_gold_lost_total"
)

// Persistence metric names
const (
	MetricNamePersistRetries  = "questbot_persist_retries_total"
	MetricNamePersistFailures = "questbot_persist_failures_total"
	MetricNameCacheLookups    = "questbot_player_cache_lookups_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextActiveSessions     = "Number of players currently holding a session"
	HelpTextAdmissionsRejected = "Registrations rejected because the session limit was reached"
	HelpTextSessionsEvicted    = "Sessions closed by the idle reaper"

	HelpTextCombatOutcomes = "Combat rounds resolved, by result"
	HelpTextExploreEvents  = "Explore actions, by result"
	HelpTextLevelUps       = "Total number of levels gained"
	HelpTextItemsSold      = "Total number of items sold"
	HelpTextGoldEarned     = "Gold credited to players, by source"
	HelpTextGoldLost       = "Gold lost to defeat penalties"

	HelpTextPersistRetries  = "Player store operations retried after a backend error"
	HelpTextPersistFailures = "Player store operations that failed after all retries"
	HelpTextCacheLookups    = "Player record cache lookups, by result"
)

// ============================================================================
// Metric Label Names and Values
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelResult    = "result"
	LabelItem      = "item"
	LabelSource    = "source"
	LabelOperation = "operation"
)

// Gold sources
const (
	GoldSourceVictory = "victory"
	GoldSourceExplore = "explore"
	GoldSourceSell    = "sell"
)

// Cache lookup results
const (
	CacheHit  = "hit"
	CacheMiss = "miss"
)

// PathUnmatched labels requests that matched no route
const PathUnmatched = "unmatched"

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
