package adventure

import (
	"context"
	"fmt"

	"github.com/deremos/RealmBot_Go/internal/domain"
	"github.com/deremos/RealmBot_Go/internal/metrics"
)

// BuyItem deducts the catalog price and adds one unit to the inventory.
func (s *service) BuyItem(ctx context.Context, userID, itemID string) *domain.PurchaseResult {
	result := &domain.PurchaseResult{}

	item, ok := s.catalog.Item(itemID)
	if !ok {
		result.Message = MsgUnknownItem
		return result
	}

	err := s.update(ctx, userID, func(adv *domain.AdventureState) error {
		if adv.Level < item.RequiredLevel {
			result.Message = fmt.Sprintf("%s (requires level %d)", MsgLevelTooLow, item.RequiredLevel)
			return errSkipWrite
		}
		if adv.Inventory.Gold < item.Value {
			result.Message = fmt.Sprintf("%s %s costs %d gold.", MsgNotEnoughGold, item.Name, item.Value)
			return errSkipWrite
		}

		adv.Inventory.Gold -= item.Value
		adv.Inventory.Add(item.ID, 1)

		result.Success = true
		result.ItemID = item.ID
		result.GoldRemaining = adv.Inventory.Gold
		result.Message = fmt.Sprintf("You bought %s for %d gold.", item.Name, item.Value)
		return nil
	})
	if err != nil {
		result.ActionResult = failLog(ctx, "buy", err)
		return result
	}

	if result.Success {
		metrics.ItemsBought.WithLabelValues(item.ID).Inc()
	}
	return result
}
