package leveling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		name    string
		totalXP int
		want    int
	}{
		{"zero", 0, 1},
		{"negative clamps to one", -50, 1},
		{"just below level two", 99, 1},
		{"level two boundary", 100, 2},
		{"mid level two", 250, 2},
		{"level three boundary", 400, 3},
		{"level four boundary", 900, 4},
		{"level ten", 100 * 9 * 9, 10},
		{"cap", 100 * 250 * 250, MaxLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LevelForXP(tt.totalXP))
		})
	}
}

func TestLevelForXPMonotonic(t *testing.T) {
	prev := LevelForXP(0)
	for xp := 0; xp <= 100_000; xp += 37 {
		level := LevelForXP(xp)
		assert.GreaterOrEqual(t, level, prev, "xp %d", xp)
		prev = level
	}
}

func TestXPThreshold(t *testing.T) {
	assert.Equal(t, 100, XPThreshold(1))
	assert.Equal(t, 400, XPThreshold(2))
	assert.Equal(t, 2500, XPThreshold(5))

	// Every threshold is exactly where the next level begins.
	for level := 1; level < 50; level++ {
		xp := XPThreshold(level)
		assert.Equal(t, level+1, LevelForXP(xp), "threshold of level %d", level)
		assert.Equal(t, level, LevelForXP(xp-1), "one short of the threshold")
	}
}

func TestProgress(t *testing.T) {
	// Fresh at level 2: 100 cumulative XP, nothing into the level yet.
	p := Progress(2, XPThreshold(1))
	assert.Equal(t, 0, p.CurrentXP)
	assert.Equal(t, 300, p.NeededXP)
	assert.Equal(t, 0, p.Percentage)
	assert.False(t, p.IsMaxLevel)

	// One XP short of level 2 reads 99, never 100.
	p = Progress(1, XPThreshold(1)-1)
	assert.Equal(t, 99, p.CurrentXP)
	assert.Equal(t, 100, p.NeededXP)
	assert.Equal(t, 99, p.Percentage)

	// Halfway through level 2.
	p = Progress(2, 250)
	assert.Equal(t, 150, p.CurrentXP)
	assert.Equal(t, 50, p.Percentage)

	p = Progress(MaxLevel, XPThreshold(MaxLevel-1))
	assert.True(t, p.IsMaxLevel)
}
