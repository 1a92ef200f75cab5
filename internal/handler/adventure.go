package handler

import (
	"net/http"

	"github.com/deremos/RealmBot_Go/internal/adventure"
	"github.com/deremos/RealmBot_Go/internal/content"
)

// AdventureHandler serves the RPG engine endpoints. User-typed item and
// location names are resolved through the catalog's fuzzy index before they
// reach the service, so "helth potion" buys a Health Potion.
type AdventureHandler struct {
	service adventure.Service
	catalog *content.Catalog
}

func NewAdventureHandler(service adventure.Service, catalog *content.Catalog) *AdventureHandler {
	return &AdventureHandler{service: service, catalog: catalog}
}

// ActorRequest identifies the acting user. Every adventure action shares it.
type ActorRequest struct {
	Platform   string `json:"platform" validate:"required,platform"`
	PlatformID string `json:"platform_id" validate:"required"`
	Username   string `json:"username" validate:"max=100,excludesall=\x00\n\r\t"`
}

func (a ActorRequest) userID() string {
	return a.PlatformID + "@" + a.Platform
}

// HandleGetProfile returns the adventure profile, creating it on first call.
func (h *AdventureHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	platform, ok := GetQueryParam(r, w, "platform")
	if !ok {
		return
	}
	platformID, ok := GetQueryParam(r, w, "platform_id")
	if !ok {
		return
	}
	if err := ValidatePlatform(platform); err != nil {
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}
	username := GetOptionalQueryParam(r, "username", "")

	profile, err := h.service.GetProfile(r.Context(), platformID+"@"+platform, username)
	if err != nil {
		respondServiceError(w, "get profile", err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

// HandleHunt rolls one hunt attempt.
func (h *AdventureHandler) HandleHunt(w http.ResponseWriter, r *http.Request) {
	var req ActorRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Hunt"); err != nil {
		return
	}
	respondJSON(w, http.StatusOK, h.service.Hunt(r.Context(), req.userID()))
}

// HandleTrain runs one training session.
func (h *AdventureHandler) HandleTrain(w http.ResponseWriter, r *http.Request) {
	var req ActorRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Train"); err != nil {
		return
	}
	respondJSON(w, http.StatusOK, h.service.Train(r.Context(), req.userID()))
}

// HandleDaily claims the daily reward.
func (h *AdventureHandler) HandleDaily(w http.ResponseWriter, r *http.Request) {
	var req ActorRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Claim daily"); err != nil {
		return
	}
	respondJSON(w, http.StatusOK, h.service.ClaimDaily(r.Context(), req.userID()))
}

// ItemActionRequest names an item by id or display name.
type ItemActionRequest struct {
	ActorRequest
	Item string `json:"item" validate:"required,max=100"`
}

// HandleBuy purchases one unit of the named item.
func (h *AdventureHandler) HandleBuy(w http.ResponseWriter, r *http.Request) {
	var req ItemActionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Buy item"); err != nil {
		return
	}
	itemID, ok := h.catalog.ResolveItem(req.Item)
	if !ok {
		respondError(w, http.StatusBadRequest, ErrMsgItemNotFoundError)
		return
	}
	respondJSON(w, http.StatusOK, h.service.BuyItem(r.Context(), req.userID(), itemID))
}

// HandleEquip equips gear or uses a consumable.
func (h *AdventureHandler) HandleEquip(w http.ResponseWriter, r *http.Request) {
	var req ItemActionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Equip item"); err != nil {
		return
	}
	itemID, ok := h.catalog.ResolveItem(req.Item)
	if !ok {
		respondError(w, http.StatusBadRequest, ErrMsgItemNotFoundError)
		return
	}
	respondJSON(w, http.StatusOK, h.service.EquipItem(r.Context(), req.userID(), itemID))
}

// TravelRequest names a destination by id or display name.
type TravelRequest struct {
	ActorRequest
	Location string `json:"location" validate:"required,max=100"`
}

// HandleTravel moves the adventurer to another location.
func (h *AdventureHandler) HandleTravel(w http.ResponseWriter, r *http.Request) {
	var req TravelRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Travel"); err != nil {
		return
	}
	locationID, ok := h.catalog.ResolveLocation(req.Location)
	if !ok {
		respondError(w, http.StatusBadRequest, ErrMsgLocationUnknownErr)
		return
	}
	respondJSON(w, http.StatusOK, h.service.Travel(r.Context(), req.userID(), locationID))
}

// HandleGetQuests lists quests available to the user.
func (h *AdventureHandler) HandleGetQuests(w http.ResponseWriter, r *http.Request) {
	platform, ok := GetQueryParam(r, w, "platform")
	if !ok {
		return
	}
	platformID, ok := GetQueryParam(r, w, "platform_id")
	if !ok {
		return
	}

	quests, err := h.service.AvailableQuests(r.Context(), platformID+"@"+platform)
	if err != nil {
		respondServiceError(w, "get quests", err)
		return
	}
	respondJSON(w, http.StatusOK, quests)
}

// QuestRequest names a quest by id.
type QuestRequest struct {
	ActorRequest
	QuestID string `json:"quest_id" validate:"required,max=100"`
}

// HandleCompleteQuest turns in a quest.
func (h *AdventureHandler) HandleCompleteQuest(w http.ResponseWriter, r *http.Request) {
	var req QuestRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Complete quest"); err != nil {
		return
	}
	respondJSON(w, http.StatusOK, h.service.CompleteQuest(r.Context(), req.userID(), req.QuestID))
}

// HandleGetLocations lists all known locations, for travel menus.
func (h *AdventureHandler) HandleGetLocations(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.LocationList())
}

// HandleGetShop lists items purchasable at or below the given level.
func (h *AdventureHandler) HandleGetShop(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.ItemList())
}
