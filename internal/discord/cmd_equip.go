package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// EquipCommand returns the equip command definition and handler. Consumables
// are used rather than worn; the API decides which applies.
func EquipCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "equip",
		Description: "Equip or use an item from your inventory",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "item",
				Description:  "Item name to equip or use",
				Required:     true,
				Autocomplete: true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleActionResponse(s, i, func() (bool, string, error) {
			user := getInteractionUser(i)
			options := getOptions(i)
			if len(options) == 0 {
				return false, "", fmt.Errorf("missing required item argument")
			}

			result, err := client.EquipItem(user.ID, user.Username, options[0].StringValue())
			if err != nil {
				return false, "", err
			}

			msg := result.Message
			if result.Success && result.Replaced != "" {
				msg += fmt.Sprintf("\n🎒 **%s** returned to your inventory.", result.Replaced)
			}
			return result.Success, msg, nil
		}, ResponseConfig{
			Title: "🛡️ Equip",
			Color: ColorPurple,
		})
	}

	return cmd, handler
}
