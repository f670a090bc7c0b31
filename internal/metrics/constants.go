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
	MetricNameEventsPublished = "events_published_total"
)

// Business metric names
const (
	MetricNameUsersCreated      = "users_created_total"
	MetricNameCasesOpened       = "cases_opened_total"
	MetricNameSignalsSpent      = "signals_spent_on_cases_total"
	MetricNameListingsCreated   = "listings_created_total"
	MetricNameListingsSold      = "listings_sold_total"
	MetricNameListingsCancelled = "listings_cancelled_total"
	MetricNameMarketVolume      = "market_volume_signals_total"
	MetricNameSignalsGranted    = "signals_granted_total"
)

// Store gauge names
const (
	MetricNameStoreUsers          = "store_users"
	MetricNameStoreActiveListings = "store_active_listings"
	MetricNameStoreItems          = "store_items"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextEventsPublished      = "Total number of events delivered to the metrics collector"
	HelpTextUsersCreated         = "Total number of lazily created accounts"
	HelpTextCasesOpened          = "Total number of cases opened"
	HelpTextSignalsSpent         = "Total signals spent opening cases"
	HelpTextListingsCreated      = "Total number of market listings created"
	HelpTextListingsSold         = "Total number of market listings sold"
	HelpTextListingsCancelled    = "Total number of market listings cancelled"
	HelpTextMarketVolume         = "Total signals transferred between players on the market"
	HelpTextSignalsGranted       = "Total signals credited by administrators"
	HelpTextStoreUsers           = "Number of accounts in the store"
	HelpTextStoreActiveListings  = "Number of active market listings"
	HelpTextStoreItems           = "Number of items held in inventories"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelCase   = "case"
	LabelRarity = "rarity"
)

// UnmatchedRoute labels requests that did not match any route
const UnmatchedRoute = "unmatched"

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// Debug log messages
const (
	LogMsgUnknownPayload  = "Event payload could not be decoded for metrics"
	LogMsgMetricsRecorded = "Metrics recorded for event"
	LogMsgStoreStatsError = "Failed to read store stats"
)
