package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal    = "barodex_http_requests_total"
	MetricNameHTTPRequestDuration  = "barodex_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "barodex_http_requests_in_flight"

	MetricNameSearchesPerformed = "barodex_searches_performed_total"
	MetricNameSearchDuration    = "barodex_search_duration_seconds"
	MetricNameItemLookups       = "barodex_item_lookups_total"
	MetricNameDatabaseItems     = "barodex_database_items"
)

// Help texts
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests processed"
	HelpTextHTTPRequestDuration  = "HTTP request latency distribution"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"

	HelpTextSearchesPerformed = "Total number of item searches performed"
	HelpTextSearchDuration    = "Search latency distribution"
	HelpTextItemLookups       = "Total number of item page lookups by outcome"
	HelpTextDatabaseItems     = "Number of items in the loaded database"
)

// Label names
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelOutcome = "outcome"
)

// Label values
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
)

// HTTPLatencyBuckets covers the expected interactive range.
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}
