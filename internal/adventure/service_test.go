package adventure

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deremos/RealmBot_Go/internal/content"
	"github.com/deremos/RealmBot_Go/internal/domain"
	"github.com/deremos/RealmBot_Go/internal/store"
	"github.com/deremos/RealmBot_Go/internal/user"
)

// testClock is the frozen "now" every service under test starts with.
var testClock = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// newTestCatalog builds a small fixture catalog. training_dummy always loses
// and always drops; ogre_chief always wins; gold ranges are single-valued so
// rewards are deterministic under any RNG.
func newTestCatalog(t *testing.T) *content.Catalog {
	t.Helper()

	items := []domain.Item{
		{ID: "iron_sword", Name: "Iron Sword", Type: domain.ItemTypeWeapon, Rarity: domain.RarityCommon, Attack: 8, Value: 50, RequiredLevel: 1},
		{ID: "flame_blade", Name: "Flame Blade", Type: domain.ItemTypeWeapon, Rarity: domain.RarityEpic, Attack: 20, Value: 500, RequiredLevel: 5},
		{ID: "leather_vest", Name: "Leather Vest", Type: domain.ItemTypeArmor, Rarity: domain.RarityCommon, Defense: 6, Value: 40, RequiredLevel: 1},
		{ID: "lucky_charm", Name: "Lucky Charm", Type: domain.ItemTypeAccessory, Rarity: domain.RarityUncommon, Attack: 1, Defense: 1, Value: 30, RequiredLevel: 1},
		{ID: "health_potion", Name: "Health Potion", Type: domain.ItemTypeConsumable, Rarity: domain.RarityCommon, Restore: 50, Value: 20, RequiredLevel: 1},
		{ID: "attack_elixir", Name: "Attack Elixir", Type: domain.ItemTypeConsumable, Rarity: domain.RarityUncommon, Boost: "strength", Value: 25, RequiredLevel: 1},
		{ID: "slime_goo", Name: "Slime Goo", Type: domain.ItemTypeMaterial, Rarity: domain.RarityCommon, Value: 2, RequiredLevel: 1},
	}
	monsters := []domain.Monster{
		{
			ID: "training_dummy", Name: "Training Dummy",
			MinLevel: 1, MaxLevel: 5,
			Health: 10, Attack: 1, Defense: 0,
			XPReward:      30,
			GoldReward:    domain.GoldRange{Min: 5, Max: 5},
			DropChance:    1.0,
			PossibleDrops: []string{"slime_goo"},
		},
		{
			ID: "ogre_chief", Name: "Ogre Chief",
			MinLevel: 1, MaxLevel: 5,
			Health: 9999, Attack: 500, Defense: 100,
			XPReward:   100,
			GoldReward: domain.GoldRange{Min: 10, Max: 10},
		},
	}
	locations := []domain.Location{
		{ID: "safehaven", Name: "Safehaven", SafeZone: true, ShopAvailable: true, TrainAvailable: true},
		{ID: "dummy_den", Name: "Dummy Den", MinLevel: 1, CommonMonsters: []string{"training_dummy"}},
		{ID: "ogre_camp", Name: "Ogre Camp", MinLevel: 1, CommonMonsters: []string{"ogre_chief"}},
		{ID: "high_pass", Name: "High Pass", MinLevel: 10, CommonMonsters: []string{"training_dummy"}},
		{ID: "empty_moor", Name: "Empty Moor", MinLevel: 1},
	}
	quests := []domain.Quest{
		{
			ID: "first_blood", Name: "First Blood", MinLevel: 1,
			Requirement: domain.QuestRequirement{Type: domain.QuestRequirementKill, Count: 1},
			Reward:      domain.QuestReward{Gold: 50, XP: 30, Items: []string{"health_potion"}},
		},
		{
			ID: "cull_the_horde", Name: "Cull the Horde", MinLevel: 1,
			Requirement: domain.QuestRequirement{Type: domain.QuestRequirementKill, Count: 10},
			Reward:      domain.QuestReward{Gold: 200, XP: 150},
		},
		{
			ID: "veteran_call", Name: "Veteran's Call", MinLevel: 5,
			Requirement: domain.QuestRequirement{Type: domain.QuestRequirementKill, Count: 3},
			Reward:      domain.QuestReward{Gold: 100, XP: 80},
		},
	}

	catalog, err := content.NewCatalog(items, monsters, locations, quests, "safehaven")
	require.NoError(t, err)
	return catalog
}

func newTestService(t *testing.T, catalog *content.Catalog) *service {
	t.Helper()
	return newTestServiceWithStore(t, catalog, store.NewMemoryStore())
}

func newTestServiceWithStore(t *testing.T, catalog *content.Catalog, st store.Store) *service {
	t.Helper()
	svc := NewService(user.NewRepository(st), catalog, 1).(*service)
	svc.now = func() time.Time { return testClock }
	return svc
}

// seedProfile overwrites the adventure state for userID.
func seedProfile(t *testing.T, s *service, userID string, adv *domain.AdventureState) {
	t.Helper()
	_, err := s.repo.Update(context.Background(), userID, func(rec *domain.UserRecord) error {
		rec.Adventure = adv
		return nil
	})
	require.NoError(t, err)
}

func loadProfile(t *testing.T, s *service, userID string) *domain.AdventureState {
	t.Helper()
	rec, ok, err := s.repo.Get(context.Background(), userID)
	require.NoError(t, err)
	require.True(t, ok)
	require.NotNil(t, rec.Adventure)
	return rec.Adventure
}

func TestGetProfileCreatesStartingState(t *testing.T) {
	s := newTestService(t, newTestCatalog(t))
	ctx := context.Background()

	adv, err := s.GetProfile(ctx, "alice@discord", "alice")
	require.NoError(t, err)

	assert.Equal(t, "Alice", adv.CharacterName)
	assert.Equal(t, StartingLevel, adv.Level)
	assert.Equal(t, 0, adv.XP)
	assert.Equal(t, StartingXPNeeded, adv.XPNeeded)
	assert.Equal(t, StartingGold, adv.Inventory.Gold)
	assert.Equal(t, "safehaven", adv.Location)
	assert.Equal(t, StartingMaxHealth, adv.Stats.Health)

	// Reading again returns the same profile, not a fresh one.
	adv.Inventory.Gold = 0 // mutate the returned copy
	again, err := s.GetProfile(ctx, "alice@discord", "alice")
	require.NoError(t, err)
	assert.Equal(t, StartingGold, again.Inventory.Gold)
}

func TestGetProfilePreservesLevelingState(t *testing.T) {
	s := newTestService(t, newTestCatalog(t))
	ctx := context.Background()

	_, err := s.repo.Update(ctx, "bob", func(rec *domain.UserRecord) error {
		rec.Leveling.TotalXP = 4200
		rec.Leveling.Level = 7
		return nil
	})
	require.NoError(t, err)

	_, err = s.GetProfile(ctx, "bob", "bob")
	require.NoError(t, err)

	rec, ok, err := s.repo.Get(ctx, "bob")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 4200, rec.Leveling.TotalXP, "sibling namespace untouched")
	assert.NotNil(t, rec.Adventure)
}

func TestTrainGrantsXPAndSetsCooldown(t *testing.T) {
	s := newTestService(t, newTestCatalog(t))
	ctx := context.Background()

	result := s.Train(ctx, "carol")
	require.True(t, result.Success)
	assert.GreaterOrEqual(t, result.XPGained, TrainMinXP)
	assert.LessOrEqual(t, result.XPGained, TrainMaxXP)

	adv := loadProfile(t, s, "carol")
	assert.Equal(t, testClock.Add(TrainCooldown).UnixMilli(), adv.Cooldowns.Train)

	second := s.Train(ctx, "carol")
	assert.False(t, second.Success)
	assert.Contains(t, second.Message, "cannot train yet")
}

func TestTrainStatBoostApplied(t *testing.T) {
	s := newTestService(t, newTestCatalog(t))
	ctx := context.Background()

	// Drive enough sessions to see both boosted and plain outcomes. The clock
	// is frozen, so reset the cooldown between runs.
	var boosted, plain int
	for i := 0; i < 200; i++ {
		userID := "dave"
		result := s.Train(ctx, userID)
		require.True(t, result.Success)
		if result.StatBoost != "" {
			boosted++
			assert.Contains(t, trainBoosts, result.StatBoost)
		} else {
			plain++
		}
		seedAdv := loadProfile(t, s, userID)
		seedAdv.Cooldowns.Train = 0
		seedProfile(t, s, userID, seedAdv)
	}
	assert.Positive(t, boosted)
	assert.Positive(t, plain)
}

func TestClaimDailyScalesWithLevel(t *testing.T) {
	s := newTestService(t, newTestCatalog(t))
	ctx := context.Background()

	adv := newLevelOneProfile()
	adv.Level = 4
	adv.XPNeeded = xpNeededFor(4)
	adv.Location = "safehaven"
	seedProfile(t, s, "erin", adv)

	result := s.ClaimDaily(ctx, "erin")
	require.True(t, result.Success)
	assert.Equal(t, DailyBaseGold+4*DailyGoldPerLevel, result.Gold)
	assert.Equal(t, DailyBaseXP+4*DailyXPPerLevel, result.XP)

	stored := loadProfile(t, s, "erin")
	assert.Equal(t, result.Gold, stored.Inventory.Gold)
	assert.Equal(t, testClock.Add(DailyCooldown).UnixMilli(), stored.Cooldowns.Daily)

	second := s.ClaimDaily(ctx, "erin")
	assert.False(t, second.Success)
	assert.Contains(t, second.Message, "24h 0m")
}

func TestStorageFailureSurfacesGenericError(t *testing.T) {
	st := store.NewMemoryStore()
	s := newTestServiceWithStore(t, newTestCatalog(t), st)
	st.FailWrites = true

	result := s.ClaimDaily(context.Background(), "frank")
	assert.False(t, result.Success)
	assert.Equal(t, MsgInternalError, result.Message)
}
