package domain

// GoldRange is an inclusive gold reward range.
type GoldRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Monster is a static catalog entry. DropChance gates one aggregate roll;
// on success a single item is drawn uniformly from PossibleDrops.
type Monster struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	MinLevel      int       `json:"min_level"`
	MaxLevel      int       `json:"max_level"`
	Health        int       `json:"health"`
	Attack        int       `json:"attack"`
	Defense       int       `json:"defense"`
	Speed         int       `json:"speed"`
	XPReward      int       `json:"xp_reward"`
	GoldReward    GoldRange `json:"gold_reward"`
	DropChance    float64   `json:"drop_chance"`
	PossibleDrops []string  `json:"possible_drops,omitempty"`
	Boss          bool      `json:"boss,omitempty"`
}
