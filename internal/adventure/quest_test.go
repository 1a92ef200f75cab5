package adventure

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailableQuests(t *testing.T) {
	s := newTestService(t, newTestCatalog(t))
	ctx := context.Background()

	quests, err := s.AvailableQuests(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, quests, 2, "level-5 quest hidden from a fresh profile")
	assert.Equal(t, "cull_the_horde", quests[0].ID)
	assert.Equal(t, "first_blood", quests[1].ID)

	_, ok, err := s.repo.Get(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, ok, "listing quests leaves no record behind")
}

func TestAvailableQuestsHidesCompleted(t *testing.T) {
	s := newTestService(t, newTestCatalog(t))
	ctx := context.Background()

	adv := newLevelOneProfile()
	adv.Level = 5
	adv.QuestsCompleted = []string{"first_blood"}
	seedProfile(t, s, "bob", adv)

	quests, err := s.AvailableQuests(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, quests, 2)
	assert.Equal(t, "cull_the_horde", quests[0].ID)
	assert.Equal(t, "veteran_call", quests[1].ID)
}

func TestCompleteQuest(t *testing.T) {
	s := newTestService(t, newTestCatalog(t))
	ctx := context.Background()

	adv := newLevelOneProfile()
	adv.MonstersDefeated = 1
	seedProfile(t, s, "carol", adv)

	result := s.CompleteQuest(ctx, "carol", "first_blood")
	require.True(t, result.Success, result.Message)
	assert.Equal(t, 50, result.Gold)
	assert.Equal(t, 30, result.XP)
	assert.Equal(t, []string{"health_potion"}, result.Items)

	stored := loadProfile(t, s, "carol")
	assert.Equal(t, 50, stored.Inventory.Gold)
	assert.Equal(t, 30, stored.XP)
	assert.Equal(t, 1, stored.Inventory.Quantity("health_potion"))
	assert.True(t, stored.QuestCompleted("first_blood"))
	assert.Equal(t, testClock.Add(QuestCooldown).UnixMilli(), stored.Cooldowns.Quest)
}

func TestCompleteQuestFailures(t *testing.T) {
	s := newTestService(t, newTestCatalog(t))
	ctx := context.Background()

	t.Run("unknown quest", func(t *testing.T) {
		result := s.CompleteQuest(ctx, "dave", "slay_the_moon")
		assert.False(t, result.Success)
		assert.Equal(t, MsgUnknownQuest, result.Message)
	})

	t.Run("requirement unmet", func(t *testing.T) {
		adv := newLevelOneProfile()
		seedProfile(t, s, "dave", adv)

		result := s.CompleteQuest(ctx, "dave", "first_blood")
		assert.False(t, result.Success)
		assert.Equal(t, MsgQuestUnmet, result.Message)

		stored := loadProfile(t, s, "dave")
		assert.Equal(t, 0, stored.Inventory.Gold, "no partial reward")
	})

	t.Run("level gate", func(t *testing.T) {
		adv := newLevelOneProfile()
		adv.MonstersDefeated = 3
		seedProfile(t, s, "dave", adv)

		result := s.CompleteQuest(ctx, "dave", "veteran_call")
		assert.False(t, result.Success)
		assert.Equal(t, MsgLevelTooLow, result.Message)
	})

	t.Run("already completed", func(t *testing.T) {
		adv := newLevelOneProfile()
		adv.MonstersDefeated = 5
		adv.QuestsCompleted = []string{"first_blood"}
		seedProfile(t, s, "dave", adv)

		result := s.CompleteQuest(ctx, "dave", "first_blood")
		assert.False(t, result.Success)
		assert.Equal(t, MsgQuestDone, result.Message)
	})

	t.Run("quest cooldown", func(t *testing.T) {
		adv := newLevelOneProfile()
		adv.MonstersDefeated = 20
		adv.Cooldowns.Quest = testClock.Add(QuestCooldown).UnixMilli()
		seedProfile(t, s, "dave", adv)

		result := s.CompleteQuest(ctx, "dave", "cull_the_horde")
		assert.False(t, result.Success)
		assert.Contains(t, result.Message, "cannot turn in another quest yet")
	})
}
