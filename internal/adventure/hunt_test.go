package adventure

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deremos/RealmBot_Go/internal/domain"
)

func TestHuntBlockedInSafeZone(t *testing.T) {
	s := newTestService(t, newTestCatalog(t))

	result := s.Hunt(context.Background(), "alice")
	assert.False(t, result.Success)
	assert.Equal(t, MsgSafeZone, result.Message)

	// First contact: the gate miss still registers the starting profile.
	adv := loadProfile(t, s, "alice")
	assert.Zero(t, adv.Cooldowns.Hunt, "failed gate must not burn the cooldown")
	assert.Equal(t, StartingGold, adv.Inventory.Gold)
	assert.Equal(t, "safehaven", adv.Location)
}

func TestHuntBlockedByCooldown(t *testing.T) {
	s := newTestService(t, newTestCatalog(t))

	adv := newLevelOneProfile()
	adv.Location = "dummy_den"
	adv.Cooldowns.Hunt = testClock.Add(90 * time.Second).UnixMilli()
	seedProfile(t, s, "bob", adv)

	result := s.Hunt(context.Background(), "bob")
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "cannot hunt yet")
	assert.Contains(t, result.Message, "1m 30s")
}

func TestHuntOutcomes(t *testing.T) {
	s := newTestService(t, newTestCatalog(t))
	ctx := context.Background()

	adv := newLevelOneProfile()
	adv.Location = "dummy_den"
	seedProfile(t, s, "carol", adv)

	seen := map[domain.HuntOutcomeKind]int{}
	for i := 0; i < 300; i++ {
		result := s.Hunt(ctx, "carol")
		require.True(t, result.Success, result.Message)
		seen[result.Outcome]++

		switch result.Outcome {
		case domain.HuntOutcomeVictory:
			require.NotNil(t, result.Encounter)
			assert.Equal(t, "training_dummy", result.Encounter.MonsterID)
			assert.Equal(t, 5, result.Encounter.GoldAwarded)
			assert.Equal(t, "slime_goo", result.Encounter.ItemDropped, "dummy always drops")
		case domain.HuntOutcomeDefeat:
			t.Fatal("training dummy cannot win")
		case domain.HuntOutcomeTreasure:
			require.NotNil(t, result.Treasure)
			assert.Equal(t, 1, result.Treasure.Quality, "profile is pinned at level 1")
			assert.GreaterOrEqual(t, result.Treasure.Gold, TreasureGoldBasePerQuality)
			assert.Less(t, result.Treasure.Gold, 2*TreasureGoldBasePerQuality)
		case domain.HuntOutcomeNothing:
			assert.Equal(t, MsgNothingFound, result.Message)
		}

		// Frozen clock: clear the cooldown and shed earned XP so the
		// profile stays level 1, keeping the dummy an eligible spawn and
		// the treasure quality fixed for every roll.
		next := loadProfile(t, s, "carol")
		next.XP = 0
		next.Cooldowns.Hunt = 0
		seedProfile(t, s, "carol", next)
	}

	assert.Positive(t, seen[domain.HuntOutcomeVictory])
	assert.Positive(t, seen[domain.HuntOutcomeTreasure])
	assert.Positive(t, seen[domain.HuntOutcomeNothing])

	final := loadProfile(t, s, "carol")
	assert.Equal(t, seen[domain.HuntOutcomeVictory], final.MonstersDefeated)
	assert.Equal(t, seen[domain.HuntOutcomeVictory], final.Inventory.Quantity("slime_goo"))
}

func TestResolveEncounterVictory(t *testing.T) {
	catalog := newTestCatalog(t)
	s := newTestService(t, catalog)

	adv := newLevelOneProfile()
	adv.Location = "dummy_den"
	loc, _ := catalog.Location("dummy_den")

	result := &domain.HuntResult{}
	require.NoError(t, s.resolveEncounter(adv, loc, result))

	assert.Equal(t, domain.HuntOutcomeVictory, result.Outcome)
	require.NotNil(t, result.Encounter)
	assert.True(t, result.Encounter.Victory)
	assert.Equal(t, 1, result.Encounter.TurnsToWin, "10 health against 10 damage per turn")
	assert.Equal(t, 30, result.Encounter.XPAwarded)
	assert.Equal(t, 5, adv.Inventory.Gold)
	assert.Equal(t, 30, adv.XP)
	assert.Equal(t, 1, adv.MonstersDefeated)
	assert.Equal(t, 1, adv.Inventory.Quantity("slime_goo"))
	assert.Equal(t, testClock.Add(HuntCooldown).UnixMilli(), adv.Cooldowns.Hunt)
}

func TestResolveEncounterDefeat(t *testing.T) {
	catalog := newTestCatalog(t)
	s := newTestService(t, catalog)

	adv := newLevelOneProfile()
	adv.Location = "ogre_camp"
	loc, _ := catalog.Location("ogre_camp")

	result := &domain.HuntResult{}
	require.NoError(t, s.resolveEncounter(adv, loc, result))

	assert.Equal(t, domain.HuntOutcomeDefeat, result.Outcome)
	require.NotNil(t, result.Encounter)
	assert.False(t, result.Encounter.Victory)
	assert.Equal(t, 25, adv.Stats.Health, "defeat leaves a quarter of max health")
	assert.Equal(t, 0, adv.Inventory.Gold)
	assert.Equal(t, 0, adv.MonstersDefeated)
	assert.Equal(t, testClock.Add(HuntCooldown).UnixMilli(), adv.Cooldowns.Hunt)
}

func TestResolveEncounterDefeatClampsHealth(t *testing.T) {
	catalog := newTestCatalog(t)
	s := newTestService(t, catalog)

	adv := newLevelOneProfile()
	adv.Location = "ogre_camp"
	adv.Stats.MaxHealth = 2
	adv.Stats.Health = 2
	loc, _ := catalog.Location("ogre_camp")

	result := &domain.HuntResult{}
	require.NoError(t, s.resolveEncounter(adv, loc, result))

	assert.Equal(t, domain.HuntOutcomeDefeat, result.Outcome)
	assert.Equal(t, 1, adv.Stats.Health, "a quarter of 2 floors to the minimum of 1")
}

func TestResolveTreasureQualityScalesWithLevel(t *testing.T) {
	s := newTestService(t, newTestCatalog(t))

	tests := []struct {
		level   int
		quality int
	}{
		{1, 1},
		{5, 2},
		{12, 3},
		{40, 5},
	}
	for _, tt := range tests {
		adv := newLevelOneProfile()
		adv.Level = tt.level

		result := &domain.HuntResult{}
		s.resolveTreasure(adv, result)

		require.NotNil(t, result.Treasure)
		assert.Equal(t, tt.quality, result.Treasure.Quality, "level %d", tt.level)
		base := TreasureGoldBasePerQuality * tt.quality
		assert.GreaterOrEqual(t, result.Treasure.Gold, base)
		assert.Less(t, result.Treasure.Gold, 2*base)
	}
}

func TestResolveEncounterNoEligibleMonster(t *testing.T) {
	catalog := newTestCatalog(t)
	s := newTestService(t, catalog)

	adv := newLevelOneProfile()
	adv.Level = 20 // far above the dummy window
	loc, _ := catalog.Location("dummy_den")

	result := &domain.HuntResult{}
	err := s.resolveEncounter(adv, loc, result)

	assert.ErrorIs(t, err, errSkipWrite)
	assert.Equal(t, MsgNoMonsters, result.Message)
	assert.Zero(t, adv.Cooldowns.Hunt)
}

func TestPickMonsterLevelWindows(t *testing.T) {
	s := newTestService(t, newTestCatalog(t))
	loc := domain.Location{
		CommonMonsters: []string{"training_dummy"}, // window [1, 5+3]
		RareMonsters:   []string{"ogre_chief"},     // window [1, 5+2]
	}

	tests := []struct {
		name  string
		level int
		found bool
	}{
		{"at minimum", 1, true},
		{"common slack edge", 8, true},
		{"past both windows", 9, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := s.pickMonster(tt.level, loc)
			assert.Equal(t, tt.found, ok)
		})
	}

	// At level 8 only the common qualifies, rare slack ends at 7.
	for i := 0; i < 20; i++ {
		m, ok := s.pickMonster(8, loc)
		require.True(t, ok)
		assert.Equal(t, "training_dummy", m.ID)
	}
}

func TestResolveTreasureQualityScaling(t *testing.T) {
	s := newTestService(t, newTestCatalog(t))

	tests := []struct {
		name        string
		level       int
		wantQuality int
	}{
		{"level one", 1, 1},
		{"level twelve", 12, 3},
		{"quality cap", 60, TreasureMaxQuality},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adv := newLevelOneProfile()
			adv.Level = tt.level

			result := &domain.HuntResult{}
			s.resolveTreasure(adv, result)

			require.NotNil(t, result.Treasure)
			assert.Equal(t, tt.wantQuality, result.Treasure.Quality)
			base := TreasureGoldBasePerQuality * tt.wantQuality
			assert.GreaterOrEqual(t, result.Treasure.Gold, base)
			assert.Less(t, result.Treasure.Gold, 2*base)
			assert.Equal(t, result.Treasure.Gold, adv.Inventory.Gold)
		})
	}
}
