package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/deremos/RealmBot_Go/internal/domain"
)

// ProfileCommand returns the profile command definition and handler
func ProfileCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "profile",
		Description: "View your adventurer profile",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)

		profile, err := client.GetProfile(user.ID, user.Username)
		if err != nil {
			slog.Error("Failed to get profile", "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		embed := &discordgo.MessageEmbed{
			Title: fmt.Sprintf("%s's Profile", profile.CharacterName),
			Color: ColorBlue,
			Thumbnail: &discordgo.MessageEmbedThumbnail{
				URL: user.AvatarURL(""),
			},
			Fields: []*discordgo.MessageEmbedField{
				{
					Name:   "Level",
					Value:  fmt.Sprintf("%d (%d/%d XP)", profile.Level, profile.XP, profile.XPNeeded),
					Inline: true,
				},
				{
					Name:   "Health",
					Value:  fmt.Sprintf("❤️ %d/%d", profile.Stats.Health, profile.Stats.MaxHealth),
					Inline: true,
				},
				{
					Name:   "Gold",
					Value:  fmt.Sprintf("🪙 %d", profile.Inventory.Gold),
					Inline: true,
				},
				{
					Name:   "Stats",
					Value:  fmt.Sprintf("⚔️ %d · 🛡️ %d · 💨 %d", profile.Stats.Attack, profile.Stats.Defense, profile.Stats.Speed),
					Inline: true,
				},
				{
					Name:   "Location",
					Value:  profile.Location,
					Inline: true,
				},
				{
					Name:   "Monsters Defeated",
					Value:  fmt.Sprintf("%d", profile.MonstersDefeated),
					Inline: true,
				},
				{
					Name:  "Equipment",
					Value: formatEquipment(profile.Equipment),
				},
				{
					Name:  "Inventory",
					Value: formatInventory(profile.Inventory),
				},
			},
			Footer: &discordgo.MessageEmbedFooter{
				Text: FooterRealmBot,
			},
		}

		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

func formatEquipment(eq domain.Equipment) string {
	slot := func(id string) string {
		if id == "" {
			return "*empty*"
		}
		return id
	}
	return fmt.Sprintf("Weapon: %s\nArmor: %s\nAccessory: %s",
		slot(eq.Weapon), slot(eq.Armor), slot(eq.Accessory))
}

func formatInventory(inv domain.AdventureInventory) string {
	if len(inv.Slots) == 0 {
		return "*empty*"
	}
	lines := make([]string, 0, len(inv.Slots))
	for _, s := range inv.Slots {
		lines = append(lines, fmt.Sprintf("%s x%d", s.ItemID, s.Quantity))
	}
	return strings.Join(lines, "\n")
}
