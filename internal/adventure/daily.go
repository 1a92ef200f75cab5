package adventure

import (
	"context"
	"fmt"

	"github.com/deremos/RealmBot_Go/internal/domain"
	"github.com/deremos/RealmBot_Go/internal/metrics"
)

// ClaimDaily grants the level-scaled daily stipend once per 24 hours.
func (s *service) ClaimDaily(ctx context.Context, userID string) *domain.DailyResult {
	result := &domain.DailyResult{}

	err := s.update(ctx, userID, func(adv *domain.AdventureState) error {
		if !s.cooldownReady(adv.Cooldowns.Daily) {
			result.Message = s.cooldownMessage("claim your daily reward", adv.Cooldowns.Daily)
			return errSkipWrite
		}

		result.Gold = DailyBaseGold + DailyGoldPerLevel*adv.Level
		result.XP = DailyBaseXP + DailyXPPerLevel*adv.Level

		adv.Inventory.Gold += result.Gold
		result.LevelUp = applyXP(adv, result.XP)
		adv.Cooldowns.Daily = s.cooldownUntil(DailyCooldown)

		result.Success = true
		result.Message = fmt.Sprintf("Daily reward claimed: %d gold and %d XP.", result.Gold, result.XP)
		return nil
	})
	if err != nil {
		result.ActionResult = failLog(ctx, "daily", err)
		return result
	}

	if result.Success {
		metrics.DailyClaims.Inc()
		if result.LevelUp != nil {
			metrics.LevelUps.WithLabelValues(metrics.EngineAdventure).Inc()
		}
	}
	return result
}
