package adventure

import (
	"context"
	"fmt"

	"github.com/deremos/RealmBot_Go/internal/domain"
	"github.com/deremos/RealmBot_Go/internal/metrics"
)

// trainable stats, drawn uniformly when a boost procs.
var trainBoosts = []string{"attack", "defense", "speed", "max_health"}

// Train grants a modest XP roll and occasionally a permanent stat point.
func (s *service) Train(ctx context.Context, userID string) *domain.TrainResult {
	result := &domain.TrainResult{}

	err := s.update(ctx, userID, func(adv *domain.AdventureState) error {
		if !s.cooldownReady(adv.Cooldowns.Train) {
			result.Message = s.cooldownMessage("train", adv.Cooldowns.Train)
			return errSkipWrite
		}

		xp := TrainMinXP + s.rollInt(TrainMaxXP-TrainMinXP+1)
		result.XPGained = xp

		if s.rollFloat() < TrainBoostChance {
			boost := trainBoosts[s.rollInt(len(trainBoosts))]
			switch boost {
			case "attack":
				adv.Stats.Attack += TrainStatBoost
			case "defense":
				adv.Stats.Defense += TrainStatBoost
			case "speed":
				adv.Stats.Speed += TrainStatBoost
			case "max_health":
				adv.Stats.MaxHealth += TrainHealthBoost
				adv.Stats.Health += TrainHealthBoost
			}
			result.StatBoost = boost
		}

		result.LevelUp = applyXP(adv, xp)
		adv.Cooldowns.Train = s.cooldownUntil(TrainCooldown)

		result.Success = true
		if result.StatBoost != "" {
			result.Message = fmt.Sprintf("A hard session pays off: +%d XP and your %s improved!", xp, result.StatBoost)
		} else {
			result.Message = fmt.Sprintf("You train until sundown: +%d XP.", xp)
		}
		return nil
	})
	if err != nil {
		result.ActionResult = failLog(ctx, "train", err)
		return result
	}

	if result.Success {
		metrics.TrainingSessions.Inc()
		if result.LevelUp != nil {
			metrics.LevelUps.WithLabelValues(metrics.EngineAdventure).Inc()
		}
	}
	return result
}
