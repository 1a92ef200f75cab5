package adventure

import (
	"math"

	"github.com/deremos/RealmBot_Go/internal/domain"
)

// xpNeededFor returns the threshold for leaving the given level:
// floor(100 * 1.2^(level-1)).
func xpNeededFor(level int) int {
	return int(math.Floor(100 * math.Pow(XPGrowthFactor, float64(level-1))))
}

// applyXP adds XP to the profile and resolves any level-ups in one pass. XP
// is per-level and carries the remainder over; a large grant can jump several
// levels. Each level adds the fixed stat deltas and fully heals.
// Returns nil when no level was gained.
func applyXP(adv *domain.AdventureState, amount int) *domain.AdventureLevelUp {
	if amount <= 0 {
		return nil
	}

	oldLevel := adv.Level
	adv.XP += amount
	for adv.XP >= adv.XPNeeded {
		adv.XP -= adv.XPNeeded
		adv.Level++
		adv.Stats.MaxHealth += LevelUpMaxHealthGain
		adv.Stats.Health = adv.Stats.MaxHealth
		adv.Stats.Attack += LevelUpAttackGain
		adv.Stats.Defense += LevelUpDefenseGain
		adv.Stats.Speed += LevelUpSpeedGain
		adv.XPNeeded = xpNeededFor(adv.Level)
	}

	if adv.Level == oldLevel {
		return nil
	}
	return &domain.AdventureLevelUp{
		OldLevel: oldLevel,
		NewLevel: adv.Level,
		XPNeeded: adv.XPNeeded,
	}
}

// effectiveAttack is base attack plus equipped weapon bonus.
func (s *service) effectiveAttack(adv *domain.AdventureState) int {
	attack := adv.Stats.Attack
	if it, ok := s.catalog.Item(adv.Equipment.Weapon); ok {
		attack += it.Attack
	}
	if it, ok := s.catalog.Item(adv.Equipment.Accessory); ok {
		attack += it.Attack
	}
	return attack
}

// effectiveDefense is base defense plus equipped armor bonus.
func (s *service) effectiveDefense(adv *domain.AdventureState) int {
	defense := adv.Stats.Defense
	if it, ok := s.catalog.Item(adv.Equipment.Armor); ok {
		defense += it.Defense
	}
	if it, ok := s.catalog.Item(adv.Equipment.Accessory); ok {
		defense += it.Defense
	}
	return defense
}
