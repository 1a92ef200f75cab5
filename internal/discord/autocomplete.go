package discord

import (
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
)

const maxAutocompleteChoices = 25

// HandleAutocomplete routes autocomplete interactions to the appropriate handler
func HandleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	data := i.ApplicationCommandData()

	switch data.Name {
	case "buy":
		handleShopAutocomplete(s, i, client)
	case "equip":
		handleInventoryAutocomplete(s, i, client)
	case "travel":
		handleLocationAutocomplete(s, i, client)
	case "quest-complete":
		handleQuestAutocomplete(s, i, client)
	default:
		slog.Warn("Unhandled autocomplete command", "command", data.Name)
	}
}

// focusedValue returns the lowercased text of the option being typed.
func focusedValue(i *discordgo.InteractionCreate) string {
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Focused {
			return strings.ToLower(opt.StringValue())
		}
	}
	return ""
}

func sendChoices(s *discordgo.Session, i *discordgo.InteractionCreate, choices []*discordgo.ApplicationCommandOptionChoice) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: choices,
		},
	})
	if err != nil {
		slog.Error("Failed to send autocomplete choices", "error", err)
	}
}

func handleShopAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	items, err := client.GetShop()
	if err != nil {
		slog.Error("Failed to get shop for autocomplete", "error", err)
		sendChoices(s, i, nil)
		return
	}

	typed := focusedValue(i)
	var choices []*discordgo.ApplicationCommandOptionChoice
	for _, item := range items {
		if typed != "" && !strings.Contains(strings.ToLower(item.Name), typed) {
			continue
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  item.Name,
			Value: item.ID,
		})
		if len(choices) >= maxAutocompleteChoices {
			break
		}
	}
	sendChoices(s, i, choices)
}

func handleInventoryAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	user := getInteractionUser(i)
	if user == nil {
		return
	}

	profile, err := client.GetProfile(user.ID, user.Username)
	if err != nil {
		slog.Error("Failed to get profile for autocomplete", "error", err)
		sendChoices(s, i, nil)
		return
	}

	typed := focusedValue(i)
	var choices []*discordgo.ApplicationCommandOptionChoice
	for _, slot := range profile.Inventory.Slots {
		if typed != "" && !strings.Contains(strings.ToLower(slot.ItemID), typed) {
			continue
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  slot.ItemID,
			Value: slot.ItemID,
		})
		if len(choices) >= maxAutocompleteChoices {
			break
		}
	}
	sendChoices(s, i, choices)
}

func handleLocationAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	locations, err := client.GetLocations()
	if err != nil {
		slog.Error("Failed to get locations for autocomplete", "error", err)
		sendChoices(s, i, nil)
		return
	}

	typed := focusedValue(i)
	var choices []*discordgo.ApplicationCommandOptionChoice
	for _, loc := range locations {
		if typed != "" && !strings.Contains(strings.ToLower(loc.Name), typed) {
			continue
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  loc.Name,
			Value: loc.ID,
		})
		if len(choices) >= maxAutocompleteChoices {
			break
		}
	}
	sendChoices(s, i, choices)
}

func handleQuestAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	user := getInteractionUser(i)
	if user == nil {
		return
	}

	quests, err := client.GetQuests(user.ID)
	if err != nil {
		slog.Error("Failed to get quests for autocomplete", "error", err)
		sendChoices(s, i, nil)
		return
	}

	typed := focusedValue(i)
	var choices []*discordgo.ApplicationCommandOptionChoice
	for _, q := range quests {
		if typed != "" && !strings.Contains(strings.ToLower(q.Name), typed) {
			continue
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  q.Name,
			Value: q.ID,
		})
		if len(choices) >= maxAutocompleteChoices {
			break
		}
	}
	sendChoices(s, i, choices)
}
