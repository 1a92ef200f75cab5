package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// QuestsCommand returns the quests command definition and handler
func QuestsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "quests",
		Description: "View quests available to you",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func() (string, error) {
			user := getInteractionUser(i)
			quests, err := client.GetQuests(user.ID)
			if err != nil {
				return "", err
			}
			if len(quests) == 0 {
				return "No quests available right now. Go make a name for yourself.", nil
			}

			lines := make([]string, 0, len(quests))
			for _, q := range quests {
				line := fmt.Sprintf("**%s** · defeat %d monsters · reward 🪙 %d, ✨ %d XP",
					q.Name, q.Requirement.Count, q.Reward.Gold, q.Reward.XP)
				if len(q.Reward.Items) > 0 {
					line += ", " + strings.Join(q.Reward.Items, ", ")
				}
				if q.Description != "" {
					line += "\n*" + q.Description + "*"
				}
				lines = append(lines, line)
			}
			return strings.Join(lines, "\n"), nil
		}, ResponseConfig{
			Title: "📜 Quests",
			Color: ColorPurple,
		})
	}

	return cmd, handler
}

// QuestCompleteCommand returns the quest turn-in command definition and handler
func QuestCompleteCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "quest-complete",
		Description: "Turn in a completed quest",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "quest",
				Description:  "Quest to turn in",
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
				return false, "", fmt.Errorf("missing required quest argument")
			}

			result, err := client.CompleteQuest(user.ID, user.Username, options[0].StringValue())
			if err != nil {
				return false, "", err
			}

			lines := []string{result.Message}
			if result.Success {
				lines = append(lines, fmt.Sprintf("🪙 +%d gold · ✨ +%d XP", result.Gold, result.XP))
				if len(result.Items) > 0 {
					lines = append(lines, "🎁 "+strings.Join(result.Items, ", "))
				}
				if result.LevelUp != nil {
					lines = append(lines, formatLevelUp(result.LevelUp))
				}
			}
			return result.Success, strings.Join(lines, "\n"), nil
		}, ResponseConfig{
			Title: "📜 Quest Complete",
			Color: ColorGold,
		})
	}

	return cmd, handler
}
