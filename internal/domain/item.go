package domain

// ItemType categorizes what an item can be used for.
type ItemType string

const (
	ItemTypeWeapon     ItemType = "weapon"
	ItemTypeArmor      ItemType = "armor"
	ItemTypeAccessory  ItemType = "accessory"
	ItemTypeConsumable ItemType = "consumable"
	ItemTypeMaterial   ItemType = "material"
)

// Equipable reports whether the item type occupies a gear slot.
func (t ItemType) Equipable() bool {
	return t == ItemTypeWeapon || t == ItemTypeArmor || t == ItemTypeAccessory
}

// Rarity is the visual quality tier of an item.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Item is a static catalog entry. Attack/Defense apply while equipped;
// Restore and Boost apply when a consumable is used.
type Item struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	Type          ItemType `json:"type"`
	Rarity        Rarity   `json:"rarity"`
	Attack        int      `json:"attack,omitempty"`
	Defense       int      `json:"defense,omitempty"`
	Restore       int      `json:"restore,omitempty"`
	Boost         string   `json:"boost,omitempty"` // flavor effect name for boost consumables
	Value         int      `json:"value"`
	RequiredLevel int      `json:"required_level"`
	Image         string   `json:"image,omitempty"`
}
