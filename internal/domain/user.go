package domain

// User represents a registered chat user. Platform IDs are optional; at least
// one is set when the record is created from an incoming message.
type User struct {
	InternalID string `json:"internal_id"`
	TwitchID   string `json:"twitch_id,omitempty"`
	YoutubeID  string `json:"youtube_id,omitempty"`
	DiscordID  string `json:"discord_id,omitempty"`
	Username   string `json:"username"`
}

// UserRecord is one storage row: identity plus the two engine namespaces.
// The leveling and adventure engines own their sub-objects exclusively and
// must never overwrite the sibling half on write.
type UserRecord struct {
	User      User            `json:"user"`
	Leveling  LevelingState   `json:"leveling"`
	Adventure *AdventureState `json:"adventure,omitempty"`
}
