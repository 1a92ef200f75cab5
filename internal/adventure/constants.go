package adventure

import "time"

// Starting profile values.
const (
	StartingLevel     = 1
	StartingXPNeeded  = 100
	StartingGold      = 100
	StartingHealth    = 100
	StartingMaxHealth = 100
	StartingAttack    = 10
	StartingDefense   = 5
	StartingSpeed     = 5
)

// Stat growth per level.
const (
	LevelUpMaxHealthGain = 10
	LevelUpAttackGain    = 2
	LevelUpDefenseGain   = 1
	LevelUpSpeedGain     = 1
)

// XPGrowthFactor drives the escalating threshold:
// xpNeeded = floor(100 * 1.2^(level-1)).
const XPGrowthFactor = 1.2

// Cooldown durations per activity. A dead hunt roll gets the short cooldown
// as a softer penalty; the asymmetry with real encounters is deliberate.
const (
	HuntCooldown        = 2 * time.Minute
	HuntNothingCooldown = 30 * time.Second
	TrainCooldown       = 30 * time.Minute
	DailyCooldown       = 24 * time.Hour
	QuestCooldown       = 1 * time.Hour
)

// Hunt roll bands over a uniform [0,1) draw.
const (
	HuntEncounterChance = 0.70 // [0, 0.70)
	HuntTreasureChance  = 0.20 // [0.70, 0.90)
)

// Monster pool weighting and level windows.
const (
	CommonMonsterWeight  = 2
	CommonLevelSlack     = 3 // eligible up to maxLevel+3
	RareLevelSlack       = 2 // eligible up to maxLevel+2
)

// Treasure tuning.
const (
	TreasureGoldBasePerQuality = 20
	TreasureMaxQuality         = 5
	TreasureItemChance         = 0.40
	TreasureItemValueFactor    = 2 // eligible items cost at most 2x the gold base
)

// Training tuning.
const (
	TrainMinXP          = 15
	TrainMaxXP          = 24
	TrainBoostChance    = 0.20
	TrainHealthBoost    = 5
	TrainStatBoost      = 1
)

// Daily reward scaling.
const (
	DailyBaseGold     = 100
	DailyGoldPerLevel = 10
	DailyBaseXP       = 20
	DailyXPPerLevel   = 5
)

// DefeatHealthFraction of max health remains after losing a fight (minimum 1).
const DefeatHealthFraction = 0.25

// User-facing messages.
const (
	MsgSafeZone        = "You are in a safe zone. Travel somewhere wilder to hunt."
	MsgNoMonsters      = "No suitable monster prowls here for someone of your level."
	MsgNothingFound    = "You search the area but find nothing of interest."
	MsgUnknownItem     = "That item does not exist."
	MsgUnknownLocation = "That place is not on any map."
	MsgUnknownQuest    = "No such quest is posted."
	MsgNotInInventory  = "You do not have that item."
	MsgCannotEquip     = "That item cannot be equipped or used."
	MsgLevelTooLow     = "Your level is too low for that."
	MsgNotEnoughGold   = "You cannot afford that."
	MsgQuestDone       = "You have already completed that quest."
	MsgQuestUnmet      = "You have not met that quest's requirement yet."
	MsgInternalError   = "Something went wrong. Please try again."
)
