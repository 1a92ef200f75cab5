package domain

// Stats are the combat attributes of an adventurer. Health never exceeds
// MaxHealth.
type Stats struct {
	Health    int `json:"health"`
	MaxHealth int `json:"max_health"`
	Attack    int `json:"attack"`
	Defense   int `json:"defense"`
	Speed     int `json:"speed"`
}

// InventorySlot represents a single stack of one item.
type InventorySlot struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// AdventureInventory holds gold and item stacks.
type AdventureInventory struct {
	Gold  int             `json:"gold"`
	Slots []InventorySlot `json:"slots,omitempty"`
}

// Quantity returns how many of the item the inventory holds.
func (inv *AdventureInventory) Quantity(itemID string) int {
	for _, s := range inv.Slots {
		if s.ItemID == itemID {
			return s.Quantity
		}
	}
	return 0
}

// Add appends quantity to the item's stack, creating the stack if needed.
func (inv *AdventureInventory) Add(itemID string, quantity int) {
	for i := range inv.Slots {
		if inv.Slots[i].ItemID == itemID {
			inv.Slots[i].Quantity += quantity
			return
		}
	}
	inv.Slots = append(inv.Slots, InventorySlot{ItemID: itemID, Quantity: quantity})
}

// Remove takes quantity from the item's stack, dropping the stack when it
// reaches zero. Returns false if the inventory holds fewer than quantity.
func (inv *AdventureInventory) Remove(itemID string, quantity int) bool {
	for i := range inv.Slots {
		if inv.Slots[i].ItemID != itemID {
			continue
		}
		if inv.Slots[i].Quantity < quantity {
			return false
		}
		inv.Slots[i].Quantity -= quantity
		if inv.Slots[i].Quantity == 0 {
			inv.Slots = append(inv.Slots[:i], inv.Slots[i+1:]...)
		}
		return true
	}
	return false
}

// Equipment holds the three gear slots. Each entry is an item ID or empty.
type Equipment struct {
	Weapon    string `json:"weapon,omitempty"`
	Armor     string `json:"armor,omitempty"`
	Accessory string `json:"accessory,omitempty"`
}

// Cooldowns tracks per-activity gate timestamps in unix ms. Zero or a past
// value means the activity is ready.
type Cooldowns struct {
	Hunt  int64 `json:"hunt,omitempty"`
	Train int64 `json:"train,omitempty"`
	Daily int64 `json:"daily,omitempty"`
	Quest int64 `json:"quest,omitempty"`
}

// AdventureState holds the RPG progression half of a user record. XP is
// current-level XP and resets on level-up; it is not cumulative.
type AdventureState struct {
	CharacterName    string             `json:"character_name"`
	Level            int                `json:"level"`
	XP               int                `json:"xp"`
	XPNeeded         int                `json:"xp_needed"`
	Stats            Stats              `json:"stats"`
	Inventory        AdventureInventory `json:"inventory"`
	Equipment        Equipment          `json:"equipment"`
	Location         string             `json:"location"`
	QuestsCompleted  []string           `json:"quests_completed,omitempty"`
	MonstersDefeated int                `json:"monsters_defeated"`
	Cooldowns        Cooldowns          `json:"cooldowns"`
}

// QuestCompleted reports whether the quest has already been turned in.
func (a *AdventureState) QuestCompleted(questID string) bool {
	for _, q := range a.QuestsCompleted {
		if q == questID {
			return true
		}
	}
	return false
}
