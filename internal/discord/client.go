package discord

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/deremos/RealmBot_Go/internal/domain"
)

// APIClient handles communication with the RealmBot Core API
type APIClient struct {
	BaseURL string
	Client  *http.Client
	APIKey  string
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
		APIKey: apiKey,
	}
}

// doRequest performs an HTTP request with retry logic on server errors.
func (c *APIClient) doRequest(method, path string, body interface{}) (*http.Response, error) {
	var reqBody []byte
	var err error

	if body != nil {
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	endpoint := fmt.Sprintf("%s%s", c.BaseURL, path)

	maxRetries := 3
	retryDelay := 500 * time.Millisecond

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			jitter := time.Duration(time.Now().UnixNano()%100) * time.Millisecond
			delay := retryDelay*time.Duration(1<<uint(attempt-1)) + jitter
			time.Sleep(delay)
			slog.Info("Retrying API request", "attempt", attempt, "path", path, "delay", delay)
		}

		req, err := http.NewRequest(method, endpoint, bytes.NewBuffer(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set("X-API-Key", c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			lastErr = err
			slog.Warn("API request failed", "error", err, "attempt", attempt)
			continue
		}

		// Success or non-retryable error
		if resp.StatusCode < 500 {
			return resp, nil
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
		slog.Warn("Server error, will retry", "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// decodeInto reads the response, returning the API's error message verbatim
// on non-200 statuses so the command layer can render it for the user.
func decodeInto(resp *http.Response, out interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("API error: %s", apiErr.Error)
		}
		return fmt.Errorf("API returned status: %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// actorBody is the request envelope every adventure action shares.
type actorBody struct {
	Platform   string `json:"platform"`
	PlatformID string `json:"platform_id"`
	Username   string `json:"username"`
}

func discordActor(discordID, username string) actorBody {
	return actorBody{
		Platform:   domain.PlatformDiscord,
		PlatformID: discordID,
		Username:   username,
	}
}

// HandleMessage reports a chat message for XP consideration.
func (c *APIClient) HandleMessage(discordID, username, guildID, body string) (bool, *domain.LevelUpResult, error) {
	req := struct {
		actorBody
		GroupID string `json:"group_id,omitempty"`
		Body    string `json:"body"`
	}{
		actorBody: discordActor(discordID, username),
		GroupID:   guildID,
		Body:      body,
	}

	resp, err := c.doRequest(http.MethodPost, "/api/v1/message/handle", req)
	if err != nil {
		return false, nil, err
	}

	var out struct {
		Granted bool                  `json:"granted"`
		Result  *domain.LevelUpResult `json:"result"`
	}
	if err := decodeInto(resp, &out); err != nil {
		return false, nil, err
	}
	return out.Granted, out.Result, nil
}

// GetProfile fetches the adventure profile, creating it on first call.
func (c *APIClient) GetProfile(discordID, username string) (*domain.AdventureState, error) {
	q := url.Values{}
	q.Set("platform", domain.PlatformDiscord)
	q.Set("platform_id", discordID)
	q.Set("username", username)

	resp, err := c.doRequest(http.MethodGet, "/api/v1/adventure/profile?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var profile domain.AdventureState
	if err := decodeInto(resp, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Hunt rolls one hunt attempt at the user's current location.
func (c *APIClient) Hunt(discordID, username string) (*domain.HuntResult, error) {
	resp, err := c.doRequest(http.MethodPost, "/api/v1/adventure/hunt", discordActor(discordID, username))
	if err != nil {
		return nil, err
	}
	var result domain.HuntResult
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Train runs one training session.
func (c *APIClient) Train(discordID, username string) (*domain.TrainResult, error) {
	resp, err := c.doRequest(http.MethodPost, "/api/v1/adventure/train", discordActor(discordID, username))
	if err != nil {
		return nil, err
	}
	var result domain.TrainResult
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ClaimDaily claims the daily reward.
func (c *APIClient) ClaimDaily(discordID, username string) (*domain.DailyResult, error) {
	resp, err := c.doRequest(http.MethodPost, "/api/v1/adventure/daily", discordActor(discordID, username))
	if err != nil {
		return nil, err
	}
	var result domain.DailyResult
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// BuyItem purchases a shop item by name or id.
func (c *APIClient) BuyItem(discordID, username, item string) (*domain.PurchaseResult, error) {
	req := struct {
		actorBody
		Item string `json:"item"`
	}{discordActor(discordID, username), item}

	resp, err := c.doRequest(http.MethodPost, "/api/v1/adventure/buy", req)
	if err != nil {
		return nil, err
	}
	var result domain.PurchaseResult
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// EquipItem equips or consumes an inventory item by name or id.
func (c *APIClient) EquipItem(discordID, username, item string) (*domain.EquipResult, error) {
	req := struct {
		actorBody
		Item string `json:"item"`
	}{discordActor(discordID, username), item}

	resp, err := c.doRequest(http.MethodPost, "/api/v1/adventure/equip", req)
	if err != nil {
		return nil, err
	}
	var result domain.EquipResult
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Travel moves the user to another location by name or id.
func (c *APIClient) Travel(discordID, username, location string) (*domain.TravelResult, error) {
	req := struct {
		actorBody
		Location string `json:"location"`
	}{discordActor(discordID, username), location}

	resp, err := c.doRequest(http.MethodPost, "/api/v1/adventure/travel", req)
	if err != nil {
		return nil, err
	}
	var result domain.TravelResult
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetQuests lists quests the user can currently see.
func (c *APIClient) GetQuests(discordID string) ([]domain.Quest, error) {
	q := url.Values{}
	q.Set("platform", domain.PlatformDiscord)
	q.Set("platform_id", discordID)

	resp, err := c.doRequest(http.MethodGet, "/api/v1/adventure/quests?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	var quests []domain.Quest
	if err := decodeInto(resp, &quests); err != nil {
		return nil, err
	}
	return quests, nil
}

// CompleteQuest turns in a quest by id.
func (c *APIClient) CompleteQuest(discordID, username, questID string) (*domain.QuestTurnIn, error) {
	req := struct {
		actorBody
		QuestID string `json:"quest_id"`
	}{discordActor(discordID, username), questID}

	resp, err := c.doRequest(http.MethodPost, "/api/v1/adventure/quests/complete", req)
	if err != nil {
		return nil, err
	}
	var result domain.QuestTurnIn
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetShop lists purchasable items.
func (c *APIClient) GetShop() ([]domain.Item, error) {
	resp, err := c.doRequest(http.MethodGet, "/api/v1/adventure/shop", nil)
	if err != nil {
		return nil, err
	}
	var items []domain.Item
	if err := decodeInto(resp, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetLocations lists the world map.
func (c *APIClient) GetLocations() ([]domain.Location, error) {
	resp, err := c.doRequest(http.MethodGet, "/api/v1/adventure/locations", nil)
	if err != nil {
		return nil, err
	}
	var locations []domain.Location
	if err := decodeInto(resp, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

// RankInfo is the leaderboard position of one user.
type RankInfo struct {
	UserID string `json:"user_id"`
	Rank   int    `json:"rank"`
}

// GetRank returns the user's leaderboard position. Rank 0 means unranked.
func (c *APIClient) GetRank(discordID string) (*RankInfo, error) {
	q := url.Values{}
	q.Set("user_id", discordID+"@"+domain.PlatformDiscord)

	resp, err := c.doRequest(http.MethodGet, "/api/v1/levels/rank?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	var rank RankInfo
	if err := decodeInto(resp, &rank); err != nil {
		return nil, err
	}
	return &rank, nil
}

// GetLeaderboard returns the top users by total XP.
func (c *APIClient) GetLeaderboard(limit int) ([]domain.RankedUser, error) {
	resp, err := c.doRequest(http.MethodGet, fmt.Sprintf("/api/v1/levels/leaderboard?limit=%d", limit), nil)
	if err != nil {
		return nil, err
	}
	var rows []domain.RankedUser
	if err := decodeInto(resp, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// GetProgress returns the user's position within their current level.
func (c *APIClient) GetProgress(discordID string) (*domain.LevelProgress, error) {
	q := url.Values{}
	q.Set("user_id", discordID+"@"+domain.PlatformDiscord)

	resp, err := c.doRequest(http.MethodGet, "/api/v1/levels/progress?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	var progress domain.LevelProgress
	if err := decodeInto(resp, &progress); err != nil {
		return nil, err
	}
	return &progress, nil
}
