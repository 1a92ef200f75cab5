package domain

// Location is a static catalog entry. SafeZone locations never spawn
// encounters.
type Location struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`
	SafeZone       bool     `json:"safe_zone"`
	ShopAvailable  bool     `json:"shop_available"`
	TrainAvailable bool     `json:"train_available"`
	MinLevel       int      `json:"min_level"`
	CommonMonsters []string `json:"common_monsters,omitempty"`
	RareMonsters   []string `json:"rare_monsters,omitempty"`
}
