package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestFormatFriendlyError(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "not enough gold",
			input:    "API error: Not enough gold",
			expected: MsgNotEnoughGold,
		},
		{
			name:     "item not found",
			input:    "API error: Item not found",
			expected: MsgItemNotFound,
		},
		{
			name:     "cooldown",
			input:    "API error: Action is on cooldown. Try again later",
			expected: MsgCooldownActive,
		},
		{
			name:     "user not found",
			input:    "API error: User not found",
			expected: MsgUserNotFound,
		},
		{
			name:     "backend down",
			input:    "max retries exceeded: server error: 502",
			expected: MsgServerUnreachable,
		},
		{
			name:     "generic error",
			input:    "some random error",
			expected: "❌ some random error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatFriendlyError(tt.input))
		})
	}
}

func TestRegistryRoutesToHandler(t *testing.T) {
	registry := NewCommandRegistry()

	called := false
	registry.Register(&discordgo.ApplicationCommand{Name: "hunt", Description: "test"},
		func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
			called = true
		})

	registry.Handle(nil, CommandInteraction("hunt"), nil)
	assert.True(t, called)

	called = false
	registry.Handle(nil, CommandInteraction("unknown"), nil)
	assert.False(t, called)
}

func TestCommandsEqual(t *testing.T) {
	base := &discordgo.ApplicationCommand{
		Name:        "buy",
		Description: "Purchase an item from the shop",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionString, Name: "item", Description: "Item name to buy", Required: true},
		},
	}
	same := &discordgo.ApplicationCommand{
		Name:        "buy",
		Description: "Purchase an item from the shop",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionString, Name: "item", Description: "Item name to buy", Required: true},
		},
	}

	assert.True(t, commandsEqual([]*discordgo.ApplicationCommand{base}, []*discordgo.ApplicationCommand{same}))

	changed := *same
	changed.Description = "different"
	assert.False(t, commandsEqual([]*discordgo.ApplicationCommand{base}, []*discordgo.ApplicationCommand{&changed}))

	assert.False(t, commandsEqual([]*discordgo.ApplicationCommand{base}, nil))
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "░░░░░░░░░░", progressBar(0))
	assert.Equal(t, "█████░░░░░", progressBar(50))
	assert.Equal(t, "██████████", progressBar(100))
	assert.Equal(t, "░░░░░░░░░░", progressBar(-5))
	assert.Equal(t, "██████████", progressBar(140))
}
