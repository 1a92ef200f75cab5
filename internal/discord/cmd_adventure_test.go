package discord

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deremos/RealmBot_Go/internal/domain"
)

func TestHuntCommandVictoryEmbed(t *testing.T) {
	ctx := SetupTestContext(t)
	cmd, handler := HuntCommand()

	ctx.Mux.HandleFunc("/api/v1/adventure/hunt", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, domain.HuntResult{
			ActionResult: domain.ActionResult{Success: true, Message: "You defeated the Giant Rat!"},
			Outcome:      domain.HuntOutcomeVictory,
			Encounter: &domain.EncounterReport{
				MonsterName: "Giant Rat",
				Victory:     true,
				GoldAwarded: 12,
				XPAwarded:   30,
				ItemDropped: "rat_tail",
			},
		})
	})

	embeds := ctx.CaptureEmbeds()
	handler(ctx.Session, CommandInteraction(cmd.Name), ctx.APIClient)

	require.Len(t, *embeds, 1)
	embed := (*embeds)[0]
	assert.Equal(t, ColorGreen, embed.Color)
	assert.Contains(t, embed.Description, "You defeated the Giant Rat!")
	assert.Contains(t, embed.Description, "+12 gold")
	assert.Contains(t, embed.Description, "+30 XP")
	assert.Contains(t, embed.Description, "rat_tail")
}

func TestHuntCommandGatedShowsMutedEmbed(t *testing.T) {
	ctx := SetupTestContext(t)
	cmd, handler := HuntCommand()

	ctx.Mux.HandleFunc("/api/v1/adventure/hunt", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, domain.HuntResult{
			ActionResult: domain.ActionResult{Success: false, Message: "Nothing to fight in a safe zone"},
		})
	})

	embeds := ctx.CaptureEmbeds()
	handler(ctx.Session, CommandInteraction(cmd.Name), ctx.APIClient)

	require.Len(t, *embeds, 1)
	embed := (*embeds)[0]
	assert.Equal(t, ColorMuted, embed.Color)
	assert.Contains(t, embed.Description, "safe zone")
}

func TestDailyCommandShowsRewards(t *testing.T) {
	ctx := SetupTestContext(t)
	cmd, handler := DailyCommand()

	ctx.Mux.HandleFunc("/api/v1/adventure/daily", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, domain.DailyResult{
			ActionResult: domain.ActionResult{Success: true, Message: "You claim your daily reward."},
			Gold:         110,
			XP:           25,
			LevelUp:      &domain.AdventureLevelUp{OldLevel: 1, NewLevel: 2},
		})
	})

	embeds := ctx.CaptureEmbeds()
	handler(ctx.Session, CommandInteraction(cmd.Name), ctx.APIClient)

	require.Len(t, *embeds, 1)
	embed := (*embeds)[0]
	assert.Contains(t, embed.Description, "+110 gold")
	assert.Contains(t, embed.Description, "+25 XP")
	assert.Contains(t, embed.Description, "Level up!")
}

func TestBuyCommandSendsItemOption(t *testing.T) {
	ctx := SetupTestContext(t)
	cmd, handler := BuyCommand()

	var gotItem string
	ctx.Mux.HandleFunc("/api/v1/adventure/buy", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Item string `json:"item"`
		}
		require.NoError(t, decodeBody(r, &body))
		gotItem = body.Item
		WriteJSON(w, domain.PurchaseResult{
			ActionResult:  domain.ActionResult{Success: true, Message: "You bought Health Potion."},
			ItemID:        "health_potion",
			GoldRemaining: 150,
		})
	})

	embeds := ctx.CaptureEmbeds()
	handler(ctx.Session, CommandInteraction(cmd.Name, StringOption("item", "health potion")), ctx.APIClient)

	assert.Equal(t, "health potion", gotItem)
	require.Len(t, *embeds, 1)
	assert.Contains(t, (*embeds)[0].Description, "150 gold remaining")
}
