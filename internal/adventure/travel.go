package adventure

import (
	"context"
	"fmt"

	"github.com/deremos/RealmBot_Go/internal/domain"
)

// Travel moves the adventurer to another location, gated by the destination's
// minimum level.
func (s *service) Travel(ctx context.Context, userID, locationID string) *domain.TravelResult {
	result := &domain.TravelResult{}

	loc, ok := s.catalog.Location(locationID)
	if !ok {
		result.Message = MsgUnknownLocation
		return result
	}

	err := s.update(ctx, userID, func(adv *domain.AdventureState) error {
		if adv.Level < loc.MinLevel {
			result.Message = MsgLevelTooLow
			return errSkipWrite
		}
		if adv.Location == loc.ID {
			// Staying put is a success with nothing to write.
			result.LocationID = loc.ID
			result.Success = true
			result.Message = fmt.Sprintf("You are already in %s.", loc.Name)
			return errSkipWrite
		}

		adv.Location = loc.ID
		result.LocationID = loc.ID
		result.Success = true
		result.Message = fmt.Sprintf("You travel to %s. %s", loc.Name, loc.Description)
		return nil
	})
	if err != nil {
		result.ActionResult = failLog(ctx, "travel", err)
	}
	return result
}
