package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// RankCommand returns the rank command definition and handler
func RankCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "rank",
		Description: "View your position on the chat XP leaderboard",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func() (string, error) {
			user := getInteractionUser(i)
			rank, err := client.GetRank(user.ID)
			if err != nil {
				return "", err
			}
			if rank.Rank == 0 {
				return "You are not on the leaderboard yet. Keep chatting!", nil
			}
			return fmt.Sprintf("**%s**, you are rank **#%d**.", user.Username, rank.Rank), nil
		}, ResponseConfig{
			Title: "🏆 Rank",
			Color: ColorGold,
		})
	}

	return cmd, handler
}

// LeaderboardCommand returns the leaderboard command definition and handler
func LeaderboardCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "leaderboard",
		Description: "View the top chatters by XP",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "count",
				Description: "How many rows to show (default: 10)",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func() (string, error) {
			limit := 10
			if options := getOptions(i); len(options) > 0 {
				limit = int(options[0].IntValue())
			}

			rows, err := client.GetLeaderboard(limit)
			if err != nil {
				return "", err
			}
			if len(rows) == 0 {
				return "Nobody has earned XP yet.", nil
			}

			medals := []string{"🥇", "🥈", "🥉"}
			lines := make([]string, 0, len(rows))
			for _, row := range rows {
				prefix := fmt.Sprintf("`#%d`", row.Rank)
				if row.Rank <= len(medals) {
					prefix = medals[row.Rank-1]
				}
				lines = append(lines, fmt.Sprintf("%s **%s** · level %d · %d XP",
					prefix, row.Username, row.Level, row.TotalXP))
			}
			return strings.Join(lines, "\n"), nil
		}, ResponseConfig{
			Title: "🏆 Leaderboard",
			Color: ColorGold,
		})
	}

	return cmd, handler
}

// LevelCommand returns the level progress command definition and handler
func LevelCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "level",
		Description: "View your progress toward the next chat level",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func() (string, error) {
			user := getInteractionUser(i)
			progress, err := client.GetProgress(user.ID)
			if err != nil {
				return "", err
			}
			if progress.IsMaxLevel {
				return "You have reached the maximum level. Legendary.", nil
			}
			return fmt.Sprintf("%s\n%d/%d XP (%d%%)",
				progressBar(progress.Percentage),
				progress.CurrentXP, progress.NeededXP, progress.Percentage), nil
		}, ResponseConfig{
			Title: "✨ Level Progress",
			Color: ColorPurple,
		})
	}

	return cmd, handler
}

// progressBar renders a 10-segment text bar for a 0-100 percentage.
func progressBar(pct int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := pct / 10
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}
