package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// ShopCommand returns the shop command definition and handler
func ShopCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "shop",
		Description: "Browse items for sale",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func() (string, error) {
			items, err := client.GetShop()
			if err != nil {
				return "", err
			}
			if len(items) == 0 {
				return "The shelves are bare.", nil
			}

			lines := make([]string, 0, len(items))
			for _, item := range items {
				line := fmt.Sprintf("**%s** · 🪙 %d", item.Name, item.Value)
				if item.RequiredLevel > 1 {
					line += fmt.Sprintf(" · requires level %d", item.RequiredLevel)
				}
				if item.Description != "" {
					line += "\n*" + item.Description + "*"
				}
				lines = append(lines, line)
			}
			return strings.Join(lines, "\n"), nil
		}, ResponseConfig{
			Title: "🏪 Shop",
			Color: ColorBlue,
		})
	}

	return cmd, handler
}

// BuyCommand returns the buy command definition and handler
func BuyCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "buy",
		Description: "Purchase an item from the shop",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "item",
				Description:  "Item name to buy",
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

			result, err := client.BuyItem(user.ID, user.Username, options[0].StringValue())
			if err != nil {
				return false, "", err
			}

			msg := result.Message
			if result.Success {
				msg += fmt.Sprintf("\n🪙 %d gold remaining", result.GoldRemaining)
			}
			return result.Success, msg, nil
		}, ResponseConfig{
			Title: "💰 Purchase",
			Color: ColorGreen,
		})
	}

	return cmd, handler
}
