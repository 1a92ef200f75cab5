package adventure

import (
	"context"
	"fmt"
	"sort"

	"github.com/deremos/RealmBot_Go/internal/domain"
	"github.com/deremos/RealmBot_Go/internal/metrics"
)

// Hunt rolls one of three outcomes: a monster encounter, a treasure find, or
// nothing. Encounters and treasure set the full hunt cooldown; a dead roll
// sets the short one.
func (s *service) Hunt(ctx context.Context, userID string) *domain.HuntResult {
	result := &domain.HuntResult{}

	err := s.update(ctx, userID, func(adv *domain.AdventureState) error {
		if !s.cooldownReady(adv.Cooldowns.Hunt) {
			result.Message = s.cooldownMessage("hunt", adv.Cooldowns.Hunt)
			return errSkipWrite
		}

		loc, ok := s.catalog.Location(adv.Location)
		if !ok {
			return fmt.Errorf("%w: %s", domain.ErrLocationNotFound, adv.Location)
		}
		if loc.SafeZone {
			result.Message = MsgSafeZone
			return errSkipWrite
		}

		switch r := s.rollFloat(); {
		case r < HuntEncounterChance:
			return s.resolveEncounter(adv, loc, result)
		case r < HuntEncounterChance+HuntTreasureChance:
			s.resolveTreasure(adv, result)
			return nil
		default:
			result.Success = true
			result.Outcome = domain.HuntOutcomeNothing
			result.Message = MsgNothingFound
			adv.Cooldowns.Hunt = s.cooldownUntil(HuntNothingCooldown)
			return nil
		}
	})
	if err != nil {
		result.ActionResult = failLog(ctx, "hunt", err)
		return result
	}

	if result.Outcome != "" {
		metrics.Hunts.WithLabelValues(string(result.Outcome)).Inc()
	}
	return result
}

// resolveEncounter picks a monster from the location pool and resolves the
// fight in closed form.
func (s *service) resolveEncounter(adv *domain.AdventureState, loc domain.Location, result *domain.HuntResult) error {
	monster, ok := s.pickMonster(adv.Level, loc)
	if !ok {
		// No eligible monster: treated as a miss, cooldown untouched.
		result.Message = MsgNoMonsters
		return errSkipWrite
	}

	outcome := ResolveCombat(CombatInput{
		UserHealth:     adv.Stats.Health,
		UserAttack:     s.effectiveAttack(adv),
		UserDefense:    s.effectiveDefense(adv),
		MonsterHealth:  monster.Health,
		MonsterAttack:  monster.Attack,
		MonsterDefense: monster.Defense,
	})

	report := &domain.EncounterReport{
		MonsterID:   monster.ID,
		MonsterName: monster.Name,
		Victory:     outcome.Victory,
		TurnsToWin:  outcome.TurnsToWin,
		TurnsToLose: outcome.TurnsToLose,
	}

	if outcome.Victory {
		goldSpan := monster.GoldReward.Max - monster.GoldReward.Min + 1
		report.GoldAwarded = monster.GoldReward.Min + s.rollInt(goldSpan)
		adv.Inventory.Gold += report.GoldAwarded

		report.XPAwarded = monster.XPReward
		report.LevelUp = applyXP(adv, monster.XPReward)
		adv.MonstersDefeated++

		if len(monster.PossibleDrops) > 0 && s.rollFloat() < monster.DropChance {
			report.ItemDropped = monster.PossibleDrops[s.rollInt(len(monster.PossibleDrops))]
			adv.Inventory.Add(report.ItemDropped, 1)
		}

		result.Message = fmt.Sprintf("You defeated the %s!", monster.Name)
		result.Outcome = domain.HuntOutcomeVictory
	} else {
		// Defeat leaves a quarter of max health, never less than 1.
		health := int(float64(adv.Stats.MaxHealth) * DefeatHealthFraction)
		if health < 1 {
			health = 1
		}
		adv.Stats.Health = health

		result.Message = fmt.Sprintf("The %s bested you. You limp away.", monster.Name)
		result.Outcome = domain.HuntOutcomeDefeat
	}

	report.HealthAfter = adv.Stats.Health
	result.Success = true
	result.Encounter = report
	adv.Cooldowns.Hunt = s.cooldownUntil(HuntCooldown)
	return nil
}

// pickMonster builds the weighted candidate pool: common monsters carry
// double weight and a wider level window than rares.
func (s *service) pickMonster(level int, loc domain.Location) (domain.Monster, bool) {
	var pool []domain.Monster
	for _, id := range loc.CommonMonsters {
		m, ok := s.catalog.Monster(id)
		if !ok {
			continue
		}
		if level >= m.MinLevel && level <= m.MaxLevel+CommonLevelSlack {
			for i := 0; i < CommonMonsterWeight; i++ {
				pool = append(pool, m)
			}
		}
	}
	for _, id := range loc.RareMonsters {
		m, ok := s.catalog.Monster(id)
		if !ok {
			continue
		}
		if level >= m.MinLevel && level <= m.MaxLevel+RareLevelSlack {
			pool = append(pool, m)
		}
	}
	if len(pool) == 0 {
		return domain.Monster{}, false
	}
	return pool[s.rollInt(len(pool))], true
}

// resolveTreasure awards quality-scaled gold and sometimes an item.
func (s *service) resolveTreasure(adv *domain.AdventureState, result *domain.HuntResult) {
	quality := adv.Level/5 + 1
	if quality > TreasureMaxQuality {
		quality = TreasureMaxQuality
	}
	base := TreasureGoldBasePerQuality * quality
	gold := base + s.rollInt(base)
	adv.Inventory.Gold += gold

	treasure := &domain.TreasureReport{Gold: gold, Quality: quality}

	if s.rollFloat() < TreasureItemChance {
		if id, ok := s.pickTreasureItem(adv.Level, base); ok {
			treasure.ItemFound = id
			adv.Inventory.Add(id, 1)
		}
	}

	result.Success = true
	result.Outcome = domain.HuntOutcomeTreasure
	if treasure.ItemFound != "" {
		result.Message = fmt.Sprintf("You found a stash: %d gold and something extra!", gold)
	} else {
		result.Message = fmt.Sprintf("You found a stash of %d gold!", gold)
	}
	result.Treasure = treasure
	adv.Cooldowns.Hunt = s.cooldownUntil(HuntCooldown)
}

// pickTreasureItem chooses uniformly among items the user could use and the
// stash could plausibly hold. Iteration is over sorted ids so the draw is
// reproducible under a seeded RNG.
func (s *service) pickTreasureItem(level, goldBase int) (string, bool) {
	ids := make([]string, 0, len(s.catalog.Items))
	for id, it := range s.catalog.Items {
		if it.RequiredLevel <= level && it.Value <= TreasureItemValueFactor*goldBase {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return "", false
	}
	sort.Strings(ids)
	return ids[s.rollInt(len(ids))], true
}
