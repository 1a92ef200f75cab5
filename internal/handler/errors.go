package handler

// Generic HTTP error messages for client responses. These intentionally do
// not expose internal error details. Handlers and tests both reference these
// constants so the two never drift.
const (
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidLimit      = "Invalid limit parameter"

	ErrMsgHandleMessageFailed = "Failed to handle message"
	ErrMsgGrantXPFailed       = "Failed to grant XP"
	ErrMsgGetRankFailed       = "Failed to retrieve rank"
	ErrMsgGetTopFailed        = "Failed to retrieve leaderboard"
	ErrMsgGetProgressFailed   = "Failed to retrieve progress"
	ErrMsgGetProfileFailed    = "Failed to retrieve profile"
	ErrMsgGetQuestsFailed     = "Failed to retrieve quests"
)
