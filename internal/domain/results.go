package domain

// HuntOutcomeKind tags what a hunt roll produced.
type HuntOutcomeKind string

const (
	HuntOutcomeVictory  HuntOutcomeKind = "victory"
	HuntOutcomeDefeat   HuntOutcomeKind = "defeat"
	HuntOutcomeTreasure HuntOutcomeKind = "treasure"
	HuntOutcomeNothing  HuntOutcomeKind = "nothing"
)

// ActionResult is the shared envelope for user-facing action outcomes.
// Failures (cooldown, bad target, insufficient funds) are results, not errors.
type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// EncounterReport describes a resolved monster encounter.
type EncounterReport struct {
	MonsterID   string            `json:"monster_id"`
	MonsterName string            `json:"monster_name"`
	Victory     bool              `json:"victory"`
	GoldAwarded int               `json:"gold_awarded,omitempty"`
	XPAwarded   int               `json:"xp_awarded,omitempty"`
	ItemDropped string            `json:"item_dropped,omitempty"`
	HealthAfter int               `json:"health_after"`
	TurnsToWin  int               `json:"turns_to_win"`
	TurnsToLose int               `json:"turns_to_lose"`
	LevelUp     *AdventureLevelUp `json:"level_up,omitempty"`
}

// TreasureReport describes a treasure find.
type TreasureReport struct {
	Gold      int    `json:"gold"`
	ItemFound string `json:"item_found,omitempty"`
	Quality   int    `json:"quality"`
}

// HuntResult is the tagged union returned by a hunt. Exactly one of the
// payload pointers matching Outcome is set on success.
type HuntResult struct {
	ActionResult
	Outcome   HuntOutcomeKind  `json:"outcome,omitempty"`
	Encounter *EncounterReport `json:"encounter,omitempty"`
	Treasure  *TreasureReport  `json:"treasure,omitempty"`
}

// AdventureLevelUp summarizes levels gained from one XP grant.
type AdventureLevelUp struct {
	OldLevel int `json:"old_level"`
	NewLevel int `json:"new_level"`
	XPNeeded int `json:"xp_needed"`
}

// TrainResult describes a completed training session.
type TrainResult struct {
	ActionResult
	XPGained  int               `json:"xp_gained,omitempty"`
	StatBoost string            `json:"stat_boost,omitempty"` // stat name, empty when no boost rolled
	LevelUp   *AdventureLevelUp `json:"level_up,omitempty"`
}

// DailyResult describes a claimed daily reward.
type DailyResult struct {
	ActionResult
	Gold    int               `json:"gold,omitempty"`
	XP      int               `json:"xp,omitempty"`
	LevelUp *AdventureLevelUp `json:"level_up,omitempty"`
}

// PurchaseResult describes a shop purchase.
type PurchaseResult struct {
	ActionResult
	ItemID        string `json:"item_id,omitempty"`
	GoldRemaining int    `json:"gold_remaining,omitempty"`
}

// EquipResult describes equipping or using an item.
type EquipResult struct {
	ActionResult
	ItemID   string `json:"item_id,omitempty"`
	Slot     string `json:"slot,omitempty"`
	Replaced string `json:"replaced,omitempty"` // item returned to inventory
	Restored int    `json:"restored,omitempty"` // health restored by a consumable
}

// TravelResult describes a location change.
type TravelResult struct {
	ActionResult
	LocationID string `json:"location_id,omitempty"`
}

// QuestTurnIn describes a completed quest reward grant.
type QuestTurnIn struct {
	ActionResult
	QuestID string            `json:"quest_id,omitempty"`
	Gold    int               `json:"gold,omitempty"`
	XP      int               `json:"xp,omitempty"`
	Items   []string          `json:"items,omitempty"`
	LevelUp *AdventureLevelUp `json:"level_up,omitempty"`
}
