package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal    = "realmbot_http_requests_total"
	MetricNameHTTPRequestDuration  = "realmbot_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "realmbot_http_requests_in_flight"

	MetricNameMessagesProcessed = "realmbot_messages_processed_total"
	MetricNameXPGranted         = "realmbot_xp_granted_total"
	MetricNameLevelUps          = "realmbot_level_ups_total"
	MetricNameHunts             = "realmbot_hunts_total"
	MetricNameTrainingSessions  = "realmbot_training_sessions_total"
	MetricNameDailyClaims       = "realmbot_daily_claims_total"
	MetricNameItemsBought       = "realmbot_items_bought_total"
	MetricNameItemsEquipped     = "realmbot_items_equipped_total"
	MetricNameQuestsCompleted   = "realmbot_quests_completed_total"
)

// Help texts
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"

	HelpTextMessagesProcessed = "Chat messages processed by the leveling gate"
	HelpTextXPGranted         = "Message XP granted"
	HelpTextLevelUps          = "Level-ups by engine"
	HelpTextHunts             = "Hunts by outcome"
	HelpTextTrainingSessions  = "Completed training sessions"
	HelpTextDailyClaims       = "Claimed daily rewards"
	HelpTextItemsBought       = "Shop purchases by item"
	HelpTextItemsEquipped     = "Items equipped or used by item"
	HelpTextQuestsCompleted   = "Quests turned in"
)

// Label names
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelOutcome = "outcome"
	LabelEngine  = "engine"
	LabelItem    = "item"
	LabelGranted = "granted"
)

// Engine label values
const (
	EngineLeveling  = "leveling"
	EngineAdventure = "adventure"
)

// HTTPLatencyBuckets are tuned for local JSON-file-backed handlers.
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}
