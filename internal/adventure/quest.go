package adventure

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/deremos/RealmBot_Go/internal/domain"
	"github.com/deremos/RealmBot_Go/internal/metrics"
)

// AvailableQuests lists quests the adventurer qualifies for and has not yet
// completed, sorted by minimum level then id. Pure read: an unknown user is
// listed at starting level without creating a record.
func (s *service) AvailableQuests(ctx context.Context, userID string) ([]domain.Quest, error) {
	rec, ok, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	level := StartingLevel
	completed := func(string) bool { return false }
	if ok && rec.Adventure != nil {
		level = rec.Adventure.Level
		completed = rec.Adventure.QuestCompleted
	}

	var quests []domain.Quest
	for id, q := range s.catalog.Quests {
		if q.MinLevel > level || completed(id) {
			continue
		}
		quests = append(quests, q)
	}
	sort.Slice(quests, func(i, j int) bool {
		if quests[i].MinLevel != quests[j].MinLevel {
			return quests[i].MinLevel < quests[j].MinLevel
		}
		return quests[i].ID < quests[j].ID
	})
	return quests, nil
}

// CompleteQuest turns in a quest, granting its reward once. Requirements are
// checked against the running monsters-defeated tally.
func (s *service) CompleteQuest(ctx context.Context, userID, questID string) *domain.QuestTurnIn {
	result := &domain.QuestTurnIn{}

	quest, ok := s.catalog.Quest(questID)
	if !ok {
		result.Message = MsgUnknownQuest
		return result
	}

	err := s.update(ctx, userID, func(adv *domain.AdventureState) error {
		if adv.QuestCompleted(quest.ID) {
			result.Message = MsgQuestDone
			return errSkipWrite
		}
		if adv.Level < quest.MinLevel {
			result.Message = MsgLevelTooLow
			return errSkipWrite
		}
		if !s.cooldownReady(adv.Cooldowns.Quest) {
			result.Message = s.cooldownMessage("turn in another quest", adv.Cooldowns.Quest)
			return errSkipWrite
		}
		if quest.Requirement.Type == domain.QuestRequirementKill && adv.MonstersDefeated < quest.Requirement.Count {
			result.Message = MsgQuestUnmet
			return errSkipWrite
		}

		result.QuestID = quest.ID
		result.Gold = quest.Reward.Gold
		result.XP = quest.Reward.XP
		result.Items = quest.Reward.Items

		adv.Inventory.Gold += quest.Reward.Gold
		for _, itemID := range quest.Reward.Items {
			adv.Inventory.Add(itemID, 1)
		}
		result.LevelUp = applyXP(adv, quest.Reward.XP)
		adv.QuestsCompleted = append(adv.QuestsCompleted, quest.ID)
		adv.Cooldowns.Quest = s.cooldownUntil(QuestCooldown)

		result.Success = true
		result.Message = fmt.Sprintf("Quest complete: %s. Reward: %d gold, %d XP%s.",
			quest.Name, quest.Reward.Gold, quest.Reward.XP, itemListSuffix(quest.Reward.Items))
		return nil
	})
	if err != nil {
		result.ActionResult = failLog(ctx, "quest", err)
		return result
	}

	if result.Success {
		metrics.QuestsCompleted.Inc()
		if result.LevelUp != nil {
			metrics.LevelUps.WithLabelValues(metrics.EngineAdventure).Inc()
		}
	}
	return result
}

func itemListSuffix(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return " and " + strings.Join(items, ", ")
}
