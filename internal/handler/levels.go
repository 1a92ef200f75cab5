package handler

import (
	"net/http"
	"strconv"

	"github.com/deremos/RealmBot_Go/internal/leveling"
	"github.com/deremos/RealmBot_Go/internal/logger"
)

// LevelsHandler serves the leveling engine's read and admin endpoints.
type LevelsHandler struct {
	service leveling.Service
}

func NewLevelsHandler(service leveling.Service) *LevelsHandler {
	return &LevelsHandler{service: service}
}

// RankResponse reports a single user's leaderboard position.
type RankResponse struct {
	UserID string `json:"user_id"`
	Rank   int    `json:"rank"` // 0 when the user has never earned XP
}

// HandleGetRank returns the caller's position on the XP leaderboard.
func (h *LevelsHandler) HandleGetRank(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	rank, err := h.service.Rank(r.Context(), userID)
	if err != nil {
		respondServiceError(w, "get rank", err)
		return
	}
	respondJSON(w, http.StatusOK, RankResponse{UserID: userID, Rank: rank})
}

// HandleGetLeaderboard returns the top users by total XP. The limit query
// parameter defaults to 10 and caps at 100.
func (h *LevelsHandler) HandleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	limitStr := GetOptionalQueryParam(r, "limit", "10")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		http.Error(w, ErrMsgInvalidLimit, http.StatusBadRequest)
		return
	}
	if limit > 100 {
		limit = 100
	}

	top, err := h.service.TopN(r.Context(), limit)
	if err != nil {
		respondServiceError(w, "get leaderboard", err)
		return
	}
	respondJSON(w, http.StatusOK, top)
}

// HandleGetProgress returns the user's position within their current level.
func (h *LevelsHandler) HandleGetProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	progress, err := h.service.Progress(r.Context(), userID)
	if err != nil {
		respondServiceError(w, "get progress", err)
		return
	}
	respondJSON(w, http.StatusOK, progress)
}

// GrantXPRequest is the administrative XP grant.
type GrantXPRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Amount int    `json:"amount" validate:"min=0,max=10000"`
}

// HandleGrantXP grants XP directly, bypassing the passive message throttle.
// Amount 0 draws the usual random message amount.
func (h *LevelsHandler) HandleGrantXP(w http.ResponseWriter, r *http.Request) {
	var req GrantXPRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Grant XP"); err != nil {
		return
	}

	result, err := h.service.GrantXP(r.Context(), req.UserID, req.Amount, true)
	if err != nil {
		respondServiceError(w, "grant xp", err)
		return
	}

	logger.FromContext(r.Context()).Info("XP granted by admin",
		"user", req.UserID, "amount", result.XPGained, "leveled_up", result.LeveledUp)
	respondJSON(w, http.StatusOK, result)
}
