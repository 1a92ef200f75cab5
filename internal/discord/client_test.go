package discord

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deremos/RealmBot_Go/internal/domain"
)

func TestClientSendsAPIKey(t *testing.T) {
	ctx := SetupTestContext(t)

	var gotKey string
	ctx.Mux.HandleFunc("/api/v1/adventure/shop", func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-Key")
		WriteJSON(w, []domain.Item{})
	})

	_, err := ctx.APIClient.GetShop()
	require.NoError(t, err)
	assert.Equal(t, "test-api-key", gotKey)
}

func TestClientRetriesServerErrors(t *testing.T) {
	ctx := SetupTestContext(t)

	var calls int32
	ctx.Mux.HandleFunc("/api/v1/adventure/hunt", func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		WriteJSON(w, domain.HuntResult{
			ActionResult: domain.ActionResult{Success: true, Message: "You won."},
		})
	})

	result, err := ctx.APIClient.Hunt("123", "Tester")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestClientSurfacesAPIErrorMessage(t *testing.T) {
	ctx := SetupTestContext(t)

	ctx.Mux.HandleFunc("/api/v1/levels/rank", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		WriteJSON(w, map[string]string{"error": "User not found"})
	})

	_, err := ctx.APIClient.GetRank("123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "User not found")
}

func TestHandleMessagePassesActorAndBody(t *testing.T) {
	ctx := SetupTestContext(t)

	var got map[string]interface{}
	ctx.Mux.HandleFunc("/api/v1/message/handle", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		WriteJSON(w, map[string]interface{}{
			"granted": true,
			"result": domain.LevelUpResult{
				LeveledUp: true,
				NewLevel:  3,
			},
		})
	})

	granted, result, err := ctx.APIClient.HandleMessage("123", "Tester", "guild-1", "hello adventurers")
	require.NoError(t, err)
	assert.True(t, granted)
	require.NotNil(t, result)
	assert.Equal(t, 3, result.NewLevel)

	assert.Equal(t, domain.PlatformDiscord, got["platform"])
	assert.Equal(t, "123", got["platform_id"])
	assert.Equal(t, "guild-1", got["group_id"])
	assert.Equal(t, "hello adventurers", got["body"])
}

func TestGetProfileBuildsQuery(t *testing.T) {
	ctx := SetupTestContext(t)

	ctx.Mux.HandleFunc("/api/v1/adventure/profile", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, domain.PlatformDiscord, r.URL.Query().Get("platform"))
		assert.Equal(t, "123", r.URL.Query().Get("platform_id"))
		assert.Equal(t, "Tester", r.URL.Query().Get("username"))
		WriteJSON(w, domain.AdventureState{CharacterName: "Tester", Level: 1})
	})

	profile, err := ctx.APIClient.GetProfile("123", "Tester")
	require.NoError(t, err)
	assert.Equal(t, "Tester", profile.CharacterName)
}
