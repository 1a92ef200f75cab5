package handler

import (
	"net/http"
	"strconv"

	"github.com/deremos/RealmBot_Go/internal/domain"
	"github.com/deremos/RealmBot_Go/internal/leveling"
	"github.com/deremos/RealmBot_Go/internal/logger"
	"github.com/deremos/RealmBot_Go/internal/metrics"
)

// HandleMessageRequest represents one incoming chat message event.
type HandleMessageRequest struct {
	Platform   string `json:"platform" validate:"required,platform"`
	PlatformID string `json:"platform_id" validate:"required"`
	Username   string `json:"username" validate:"required,max=100,excludesall=\x00\n\r\t"`
	GroupID    string `json:"group_id"`
	Body       string `json:"body"`
	IsAdmin    bool   `json:"is_admin"`
}

// HandleMessageResponse reports whether the message earned XP.
type HandleMessageResponse struct {
	Granted bool                  `json:"granted"`
	Result  *domain.LevelUpResult `json:"result,omitempty"`
}

// HandleMessage feeds a chat message into the leveling engine. Messages that
// fail a gate check (too short, command, cooldown) return granted=false with
// status 200; only real faults are errors.
func HandleMessage(levelingService leveling.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req HandleMessageRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Handle message"); err != nil {
			return
		}

		result, err := levelingService.GrantMessageXP(r.Context(), leveling.MessageContext{
			UserID:   req.PlatformID + "@" + req.Platform,
			Username: req.Username,
			GroupID:  req.GroupID,
			Body:     req.Body,
			IsAdmin:  req.IsAdmin,
		})
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to handle message",
				"error", err,
				"platform", req.Platform,
				"username", req.Username)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		granted := result != nil
		metrics.MessagesProcessed.WithLabelValues(strconv.FormatBool(granted)).Inc()

		respondJSON(w, http.StatusOK, HandleMessageResponse{Granted: granted, Result: result})
	}
}
