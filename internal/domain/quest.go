package domain

// QuestRequirementKill is currently the only supported requirement type.
const QuestRequirementKill = "kill"

// QuestRequirement describes what must be done to complete a quest.
type QuestRequirement struct {
	Type      string `json:"type"`
	MonsterID string `json:"monster_id,omitempty"`
	Count     int    `json:"count"`
}

// QuestReward is granted once on completion.
type QuestReward struct {
	Gold  int      `json:"gold"`
	XP    int      `json:"xp"`
	Items []string `json:"items,omitempty"`
}

// Quest is a static catalog entry.
type Quest struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Requirement QuestRequirement `json:"requirement"`
	Reward      QuestReward      `json:"reward"`
	MinLevel    int              `json:"min_level"`
}
