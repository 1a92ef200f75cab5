package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/deremos/RealmBot_Go/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent, all we can do is log.
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors. Derived from domain errors;
// they never expose internal details.
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgUserNotFoundError   = "User not found"
	ErrMsgItemNotFoundError   = "Item not found"
	ErrMsgNotInInventoryError = "You don't have that item"
	ErrMsgNotEnoughGoldError  = "Not enough gold"
	ErrMsgLevelTooLowError    = "Your level is too low for that"
	ErrMsgLocationUnknownErr  = "Unknown location"
	ErrMsgQuestUnknownError   = "Unknown quest"
	ErrMsgSafeZoneError       = "Nothing to fight in a safe zone"
	ErrMsgNotEquipableError   = "That item cannot be equipped"
	ErrMsgOnCooldownError     = "Action is on cooldown. Try again later"
	ErrMsgInvalidPlatformErr  = "Invalid platform"
)

// mapServiceErrorToUserMessage converts domain errors into HTTP status codes
// and messages a caller can act on.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusBadRequest, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrNotInInventory):
		return http.StatusBadRequest, ErrMsgNotInInventoryError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughGoldError
	case errors.Is(err, domain.ErrLevelTooLow):
		return http.StatusBadRequest, ErrMsgLevelTooLowError
	case errors.Is(err, domain.ErrLocationNotFound):
		return http.StatusBadRequest, ErrMsgLocationUnknownErr
	case errors.Is(err, domain.ErrQuestNotFound):
		return http.StatusBadRequest, ErrMsgQuestUnknownError
	case errors.Is(err, domain.ErrSafeZone):
		return http.StatusBadRequest, ErrMsgSafeZoneError
	case errors.Is(err, domain.ErrNotEquipable):
		return http.StatusBadRequest, ErrMsgNotEquipableError
	case errors.Is(err, domain.ErrOnCooldown):
		return http.StatusTooManyRequests, ErrMsgOnCooldownError
	case errors.Is(err, domain.ErrInvalidPlatform):
		return http.StatusBadRequest, ErrMsgInvalidPlatformErr
	case errors.Is(err, domain.ErrStoreFailure):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	if unwrapped := errors.Unwrap(err); unwrapped != nil && unwrapped != err {
		return mapServiceErrorToUserMessage(unwrapped)
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError logs the failure and writes the mapped user message.
func respondServiceError(w http.ResponseWriter, opName string, err error) {
	slog.Error("Service call failed", "op", opName, "error", err)
	status, msg := mapServiceErrorToUserMessage(err)
	respondError(w, status, msg)
}
