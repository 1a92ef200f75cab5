package adventure

import (
	"context"
	"fmt"

	"github.com/deremos/RealmBot_Go/internal/domain"
	"github.com/deremos/RealmBot_Go/internal/metrics"
)

// EquipItem equips gear or consumes a usable item from the inventory.
// Equipping into an occupied slot returns the previous item to the
// inventory; a slot's occupant is never lost.
func (s *service) EquipItem(ctx context.Context, userID, itemID string) *domain.EquipResult {
	result := &domain.EquipResult{}

	item, ok := s.catalog.Item(itemID)
	if !ok {
		result.Message = MsgUnknownItem
		return result
	}

	err := s.update(ctx, userID, func(adv *domain.AdventureState) error {
		if adv.Inventory.Quantity(item.ID) < 1 {
			result.Message = MsgNotInInventory
			return errSkipWrite
		}

		switch {
		case item.Type == domain.ItemTypeConsumable:
			s.consume(adv, item, result)
			return nil
		case item.Type.Equipable():
			s.equip(adv, item, result)
			return nil
		default:
			result.Message = MsgCannotEquip
			return errSkipWrite
		}
	})
	if err != nil {
		result.ActionResult = failLog(ctx, "equip", err)
		return result
	}

	if result.Success {
		metrics.ItemsEquipped.WithLabelValues(item.ID).Inc()
	}
	return result
}

// consume applies a consumable's effect and removes one unit. Stat-boost
// consumables only produce a flavor message; no timed buff exists.
func (s *service) consume(adv *domain.AdventureState, item domain.Item, result *domain.EquipResult) {
	adv.Inventory.Remove(item.ID, 1)
	result.Success = true
	result.ItemID = item.ID

	switch {
	case item.Restore > 0:
		before := adv.Stats.Health
		adv.Stats.Health += item.Restore
		if adv.Stats.Health > adv.Stats.MaxHealth {
			adv.Stats.Health = adv.Stats.MaxHealth
		}
		result.Restored = adv.Stats.Health - before
		result.Message = fmt.Sprintf("You drink the %s and recover %d health.", item.Name, result.Restored)
	case item.Boost != "":
		result.Message = fmt.Sprintf("You feel a surge of %s. Surely it will last.", item.Boost)
	default:
		result.Message = fmt.Sprintf("You use the %s. Nothing obvious happens.", item.Name)
	}
}

// equip swaps the item into its gear slot.
func (s *service) equip(adv *domain.AdventureState, item domain.Item, result *domain.EquipResult) {
	slotName := domain.SlotFor(item.Type)
	slot := adv.Equipment.Slot(slotName)

	adv.Inventory.Remove(item.ID, 1)
	// Whatever occupied the slot goes back to the inventory, never lost.
	if prev := *slot; prev != "" {
		adv.Inventory.Add(prev, 1)
		if prev != item.ID {
			result.Replaced = prev
		}
	}
	*slot = item.ID

	result.Success = true
	result.ItemID = item.ID
	result.Slot = slotName
	if result.Replaced != "" {
		if prevItem, ok := s.catalog.Item(result.Replaced); ok {
			result.Message = fmt.Sprintf("You equip the %s, stowing the %s.", item.Name, prevItem.Name)
			return
		}
	}
	result.Message = fmt.Sprintf("You equip the %s.", item.Name)
}
