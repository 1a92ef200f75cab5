package leveling

import (
	"math"

	"github.com/deremos/RealmBot_Go/internal/domain"
)

// LevelForXP maps cumulative XP to a level on the inverse-square-root curve:
// min(MaxLevel, floor(1 + sqrt(totalXP/100))).
func LevelForXP(totalXP int) int {
	if totalXP < 0 {
		totalXP = 0
	}
	level := int(1 + math.Sqrt(float64(totalXP)/100))
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

// XPThreshold returns the cumulative XP at which the given level begins:
// 100 * level^2.
func XPThreshold(level int) int {
	return 100 * level * level
}

// Progress reports position within the current level. Percentage is clamped
// to [0,100] and floored, so one XP short of the next level reads 99.
func Progress(level, totalXP int) domain.LevelProgress {
	prev := XPThreshold(level - 1)
	next := XPThreshold(level)
	current := totalXP - prev
	needed := next - prev

	pct := 0
	if needed > 0 {
		pct = 100 * current / needed
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	return domain.LevelProgress{
		CurrentXP:  current,
		NeededXP:   needed,
		Percentage: pct,
		IsMaxLevel: level >= MaxLevel,
	}
}
