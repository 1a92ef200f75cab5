package discord

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deremos/RealmBot_Go/internal/domain"
)

func TestProfileCommandRendersEmbed(t *testing.T) {
	ctx := SetupTestContext(t)
	cmd, handler := ProfileCommand()

	ctx.Mux.HandleFunc("/api/v1/adventure/profile", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, domain.AdventureState{
			CharacterName: "Tester",
			Level:         3,
			XP:            40,
			XPNeeded:      144,
			Stats:         domain.Stats{Health: 90, MaxHealth: 120, Attack: 14, Defense: 7, Speed: 7},
			Inventory: domain.AdventureInventory{
				Gold: 250,
				Slots: []domain.InventorySlot{
					{ItemID: "health_potion", Quantity: 2},
				},
			},
			Equipment:        domain.Equipment{Weapon: "iron_sword"},
			Location:         "safehaven",
			MonstersDefeated: 12,
		})
	})

	embeds := ctx.CaptureEmbeds()
	handler(ctx.Session, CommandInteraction(cmd.Name), ctx.APIClient)

	require.Len(t, *embeds, 1)
	embed := (*embeds)[0]
	assert.Contains(t, embed.Title, "Tester's Profile")

	fields := map[string]string{}
	for _, f := range embed.Fields {
		fields[f.Name] = f.Value
	}
	assert.Contains(t, fields["Level"], "3 (40/144 XP)")
	assert.Contains(t, fields["Health"], "90/120")
	assert.Contains(t, fields["Gold"], "250")
	assert.Contains(t, fields["Equipment"], "iron_sword")
	assert.Contains(t, fields["Equipment"], "*empty*")
	assert.Contains(t, fields["Inventory"], "health_potion x2")
	assert.Equal(t, "12", fields["Monsters Defeated"])
}

func TestProfileCommandBackendDown(t *testing.T) {
	ctx := SetupTestContext(t)
	cmd, handler := ProfileCommand()

	ctx.Mux.HandleFunc("/api/v1/adventure/profile", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		WriteJSON(w, map[string]string{"error": "User not found"})
	})

	embeds := ctx.CaptureEmbeds()
	handler(ctx.Session, CommandInteraction(cmd.Name), ctx.APIClient)

	// Error path responds with plain content, never an embed.
	assert.Empty(t, *embeds)
}
