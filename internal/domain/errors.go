package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound = "user not found"

	// Item errors
	ErrMsgItemNotFound = "item not found"

	// Inventory errors
	ErrMsgNotInInventory       = "item not in inventory"
	ErrMsgInsufficientQuantity = "insufficient quantity"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgLevelTooLow       = "level too low"

	// Adventure errors
	ErrMsgLocationNotFound = "location not found"
	ErrMsgMonsterNotFound  = "monster not found"
	ErrMsgQuestNotFound    = "quest not found"
	ErrMsgSafeZone         = "no monsters in a safe zone"
	ErrMsgNotEquipable     = "item cannot be equipped"

	// Cooldown errors
	ErrMsgOnCooldown = "action on cooldown"

	// Storage errors
	ErrMsgStoreFailure = "storage failure"

	// Platform errors
	ErrMsgInvalidPlatform = "invalid platform"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)

	ErrItemNotFound         = errors.New(ErrMsgItemNotFound)
	ErrNotInInventory       = errors.New(ErrMsgNotInInventory)
	ErrInsufficientQuantity = errors.New(ErrMsgInsufficientQuantity)

	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrLevelTooLow       = errors.New(ErrMsgLevelTooLow)

	ErrLocationNotFound = errors.New(ErrMsgLocationNotFound)
	ErrMonsterNotFound  = errors.New(ErrMsgMonsterNotFound)
	ErrQuestNotFound    = errors.New(ErrMsgQuestNotFound)
	ErrSafeZone         = errors.New(ErrMsgSafeZone)
	ErrNotEquipable     = errors.New(ErrMsgNotEquipable)

	ErrOnCooldown = errors.New(ErrMsgOnCooldown)

	ErrStoreFailure = errors.New(ErrMsgStoreFailure)

	ErrInvalidPlatform = errors.New(ErrMsgInvalidPlatform)
	ErrInvalidInput    = errors.New(ErrMsgInvalidInput)
)
