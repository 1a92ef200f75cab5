package leveling

import "time"

// MaxLevel caps the computed level. XP keeps accumulating past the cap.
const MaxLevel = 248

// XP drawn per qualifying message, inclusive bounds.
const (
	MinMessageXP = 10
	MaxMessageXP = 25
)

// DefaultMessageCooldown throttles passive XP per user. Held only in memory;
// a restart resets the throttle, which is acceptable drift.
const DefaultMessageCooldown = 5 * time.Second

// DefaultMinMessageLength is the shortest message that earns XP.
const DefaultMinMessageLength = 5

// DefaultCommandPrefix marks messages that are bot commands, not chat.
const DefaultCommandPrefix = "!"
