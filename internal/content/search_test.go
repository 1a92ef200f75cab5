package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newFixtureIndex() *NameIndex {
	return NewNameIndex(map[string]string{
		"iron_sword":    "Iron Sword",
		"iron_shield":   "Iron Shield",
		"health_potion": "Health Potion",
		"lucky_charm":   "Lucky Charm",
	})
}

func TestResolve(t *testing.T) {
	idx := newFixtureIndex()

	tests := []struct {
		name   string
		input  string
		wantID string
		wantOK bool
	}{
		{"exact id", "iron_sword", "iron_sword", true},
		{"exact display name", "Iron Sword", "iron_sword", true},
		{"case and whitespace folded", "  HEALTH potion ", "health_potion", true},
		{"unique prefix", "luck", "lucky_charm", true},
		{"ambiguous prefix", "iron", "", false},
		{"close typo", "health potoin", "health_potion", true},
		{"too far off", "mana crystal", "", false},
		{"empty input", "   ", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := idx.Resolve(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestResolvePrefersExactOverFuzzy(t *testing.T) {
	// "Bat" is itself a name and also a prefix of "Baton"; exact wins.
	idx := NewNameIndex(map[string]string{
		"bat":   "Bat",
		"baton": "Baton",
	})
	id, ok := idx.Resolve("bat")
	assert.True(t, ok)
	assert.Equal(t, "bat", id)
}
