package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/deremos/RealmBot_Go/internal/domain"
)

// HuntCommand returns the hunt command definition and handler
func HuntCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "hunt",
		Description: "Hunt for monsters and treasure at your current location",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleActionResponse(s, i, func() (bool, string, error) {
			user := getInteractionUser(i)
			result, err := client.Hunt(user.ID, user.Username)
			if err != nil {
				return false, "", err
			}
			return result.Success, formatHuntResult(result), nil
		}, ResponseConfig{
			Title: "🏹 Hunt",
			Color: ColorGreen,
		})
	}

	return cmd, handler
}

func formatHuntResult(r *domain.HuntResult) string {
	lines := []string{r.Message}

	if e := r.Encounter; e != nil {
		if e.Victory {
			lines = append(lines, fmt.Sprintf("🪙 +%d gold · ✨ +%d XP", e.GoldAwarded, e.XPAwarded))
			if e.ItemDropped != "" {
				lines = append(lines, fmt.Sprintf("🎁 The %s dropped **%s**!", e.MonsterName, e.ItemDropped))
			}
		} else {
			lines = append(lines, fmt.Sprintf("❤️ You limp away with %d health.", e.HealthAfter))
		}
		if e.LevelUp != nil {
			lines = append(lines, formatLevelUp(e.LevelUp))
		}
	}

	if t := r.Treasure; t != nil {
		lines = append(lines, fmt.Sprintf("🪙 +%d gold (quality %d)", t.Gold, t.Quality))
		if t.ItemFound != "" {
			lines = append(lines, fmt.Sprintf("🎁 Inside you find **%s**!", t.ItemFound))
		}
	}

	return strings.Join(lines, "\n")
}

// TrainCommand returns the train command definition and handler
func TrainCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "train",
		Description: "Train to earn adventure XP",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleActionResponse(s, i, func() (bool, string, error) {
			user := getInteractionUser(i)
			result, err := client.Train(user.ID, user.Username)
			if err != nil {
				return false, "", err
			}

			lines := []string{result.Message}
			if result.Success {
				lines = append(lines, fmt.Sprintf("✨ +%d XP", result.XPGained))
				if result.StatBoost != "" {
					lines = append(lines, fmt.Sprintf("💪 Bonus focus on **%s**!", result.StatBoost))
				}
				if result.LevelUp != nil {
					lines = append(lines, formatLevelUp(result.LevelUp))
				}
			}
			return result.Success, strings.Join(lines, "\n"), nil
		}, ResponseConfig{
			Title: "🏋️ Training",
			Color: ColorOrange,
		})
	}

	return cmd, handler
}

// DailyCommand returns the daily command definition and handler
func DailyCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "daily",
		Description: "Claim your daily reward",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleActionResponse(s, i, func() (bool, string, error) {
			user := getInteractionUser(i)
			result, err := client.ClaimDaily(user.ID, user.Username)
			if err != nil {
				return false, "", err
			}

			lines := []string{result.Message}
			if result.Success {
				lines = append(lines, fmt.Sprintf("🪙 +%d gold · ✨ +%d XP", result.Gold, result.XP))
				if result.LevelUp != nil {
					lines = append(lines, formatLevelUp(result.LevelUp))
				}
			}
			return result.Success, strings.Join(lines, "\n"), nil
		}, ResponseConfig{
			Title: "📅 Daily Reward",
			Color: ColorGold,
		})
	}

	return cmd, handler
}

func formatLevelUp(lu *domain.AdventureLevelUp) string {
	return fmt.Sprintf("🎉 **Level up!** %d → %d", lu.OldLevel, lu.NewLevel)
}
