package domain

// Platform identifiers for incoming chat events.
const (
	PlatformTwitch  = "twitch"
	PlatformYoutube = "youtube"
	PlatformDiscord = "discord"
)

// Gear slot names used by equip results and the equipment accessor.
const (
	SlotWeapon    = "weapon"
	SlotArmor     = "armor"
	SlotAccessory = "accessory"
)

// SlotFor maps an equipable item type to its gear slot name.
func SlotFor(t ItemType) string {
	switch t {
	case ItemTypeWeapon:
		return SlotWeapon
	case ItemTypeArmor:
		return SlotArmor
	case ItemTypeAccessory:
		return SlotAccessory
	default:
		return ""
	}
}

// Slot returns a pointer to the equipment field for the given slot name.
func (e *Equipment) Slot(name string) *string {
	switch name {
	case SlotWeapon:
		return &e.Weapon
	case SlotArmor:
		return &e.Armor
	case SlotAccessory:
		return &e.Accessory
	default:
		return nil
	}
}
