package domain

// LevelingState holds the message-XP progression half of a user record.
// Level is a cached convenience field; the source of truth is TotalXP.
type LevelingState struct {
	TotalXP      int      `json:"total_xp"`
	Level        int      `json:"level"`
	MessageCount int      `json:"message_count"`
	LastActiveAt int64    `json:"last_active_at"` // unix ms
	JoinedAt     int64    `json:"joined_at"`      // unix ms, immutable after creation
	Groups       []string `json:"groups,omitempty"`
}

// InGroup reports whether the user has been seen in the given group.
func (s *LevelingState) InGroup(groupID string) bool {
	for _, g := range s.Groups {
		if g == groupID {
			return true
		}
	}
	return false
}

// LevelUpResult describes the outcome of an XP grant.
type LevelUpResult struct {
	UserID        string `json:"user_id"`
	Username      string `json:"username"`
	LeveledUp     bool   `json:"leveled_up"`
	OldLevel      int    `json:"old_level"`
	NewLevel      int    `json:"new_level"`
	XPGained      int    `json:"xp_gained"`
	CurrentXP     int    `json:"current_xp"`
	TotalMessages int    `json:"total_messages"`
}

// LevelProgress describes position within the current level.
type LevelProgress struct {
	CurrentXP  int  `json:"current_xp"`
	NeededXP   int  `json:"needed_xp"`
	Percentage int  `json:"percentage"`
	IsMaxLevel bool `json:"is_max_level"`
}

// RankedUser is one leaderboard row.
type RankedUser struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	TotalXP  int    `json:"total_xp"`
	Level    int    `json:"level"`
	Rank     int    `json:"rank"`
}
