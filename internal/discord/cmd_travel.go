package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// TravelCommand returns the travel command definition and handler
func TravelCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "travel",
		Description: "Travel to another location",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "location",
				Description:  "Where to go",
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
				return false, "", fmt.Errorf("missing required location argument")
			}

			result, err := client.Travel(user.ID, user.Username, options[0].StringValue())
			if err != nil {
				return false, "", err
			}
			return result.Success, result.Message, nil
		}, ResponseConfig{
			Title: "🗺️ Travel",
			Color: ColorBlue,
		})
	}

	return cmd, handler
}

// LocationsCommand returns the locations command definition and handler
func LocationsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "locations",
		Description: "View the world map",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func() (string, error) {
			locations, err := client.GetLocations()
			if err != nil {
				return "", err
			}

			lines := make([]string, 0, len(locations))
			for _, loc := range locations {
				line := "**" + loc.Name + "**"
				var tags []string
				if loc.SafeZone {
					tags = append(tags, "🕊️ safe")
				}
				if loc.ShopAvailable {
					tags = append(tags, "🏪 shop")
				}
				if loc.MinLevel > 1 {
					tags = append(tags, fmt.Sprintf("level %d+", loc.MinLevel))
				}
				if len(tags) > 0 {
					line += " · " + strings.Join(tags, " · ")
				}
				if loc.Description != "" {
					line += "\n*" + loc.Description + "*"
				}
				lines = append(lines, line)
			}
			return strings.Join(lines, "\n"), nil
		}, ResponseConfig{
			Title: "🗺️ World Map",
			Color: ColorBlue,
		})
	}

	return cmd, handler
}
