package adventure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deremos/RealmBot_Go/internal/domain"
)

func TestXPNeededFor(t *testing.T) {
	assert.Equal(t, 100, xpNeededFor(1))
	assert.Equal(t, 120, xpNeededFor(2))
	assert.Equal(t, 144, xpNeededFor(3))
	assert.Equal(t, 172, xpNeededFor(4))

	// Strictly increasing over a reasonable level range.
	for level := 1; level < 50; level++ {
		assert.Greater(t, xpNeededFor(level+1), xpNeededFor(level), "level %d", level)
	}
}

func newLevelOneProfile() *domain.AdventureState {
	return &domain.AdventureState{
		Level:    StartingLevel,
		XPNeeded: StartingXPNeeded,
		Stats: domain.Stats{
			Health:    StartingHealth,
			MaxHealth: StartingMaxHealth,
			Attack:    StartingAttack,
			Defense:   StartingDefense,
			Speed:     StartingSpeed,
		},
	}
}

func TestApplyXPSingleLevelUp(t *testing.T) {
	adv := newLevelOneProfile()
	adv.XP = 95
	adv.Stats.Health = 40 // wounded going in

	up := applyXP(adv, 10)

	require.NotNil(t, up)
	assert.Equal(t, 1, up.OldLevel)
	assert.Equal(t, 2, up.NewLevel)
	assert.Equal(t, 120, up.XPNeeded)

	assert.Equal(t, 2, adv.Level)
	assert.Equal(t, 5, adv.XP, "remainder carries over")
	assert.Equal(t, 120, adv.XPNeeded)
	assert.Equal(t, StartingMaxHealth+LevelUpMaxHealthGain, adv.Stats.MaxHealth)
	assert.Equal(t, adv.Stats.MaxHealth, adv.Stats.Health, "level-up fully heals")
	assert.Equal(t, StartingAttack+LevelUpAttackGain, adv.Stats.Attack)
	assert.Equal(t, StartingDefense+LevelUpDefenseGain, adv.Stats.Defense)
	assert.Equal(t, StartingSpeed+LevelUpSpeedGain, adv.Stats.Speed)
}

func TestApplyXPMultiLevelJump(t *testing.T) {
	adv := newLevelOneProfile()

	// 100 + 120 = 220 clears two thresholds with 30 left over.
	up := applyXP(adv, 250)

	require.NotNil(t, up)
	assert.Equal(t, 1, up.OldLevel)
	assert.Equal(t, 3, up.NewLevel)
	assert.Equal(t, 3, adv.Level)
	assert.Equal(t, 30, adv.XP)
	assert.Equal(t, 144, adv.XPNeeded)
	assert.Equal(t, StartingAttack+2*LevelUpAttackGain, adv.Stats.Attack)
}

func TestApplyXPNoLevelUp(t *testing.T) {
	adv := newLevelOneProfile()
	adv.Stats.Health = 40

	up := applyXP(adv, 50)

	assert.Nil(t, up)
	assert.Equal(t, 1, adv.Level)
	assert.Equal(t, 50, adv.XP)
	assert.Equal(t, 40, adv.Stats.Health, "no heal without a level")
}

func TestApplyXPNonPositive(t *testing.T) {
	adv := newLevelOneProfile()
	adv.XP = 99

	assert.Nil(t, applyXP(adv, 0))
	assert.Nil(t, applyXP(adv, -5))
	assert.Equal(t, 99, adv.XP)
}

func TestEffectiveStatsIncludeEquipment(t *testing.T) {
	catalog := newTestCatalog(t)
	s := newTestService(t, catalog)

	adv := newLevelOneProfile()
	assert.Equal(t, StartingAttack, s.effectiveAttack(adv))
	assert.Equal(t, StartingDefense, s.effectiveDefense(adv))

	adv.Equipment.Weapon = "iron_sword"
	adv.Equipment.Armor = "leather_vest"
	adv.Equipment.Accessory = "lucky_charm"

	assert.Equal(t, StartingAttack+8+1, s.effectiveAttack(adv))
	assert.Equal(t, StartingDefense+6+1, s.effectiveDefense(adv))
}
