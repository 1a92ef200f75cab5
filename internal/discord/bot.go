package discord

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
)

// Bot wraps the Discord session and routes interactions to the command
// registry. All game state lives behind the HTTP API; the bot is a client.
type Bot struct {
	Session  *discordgo.Session
	Client   *APIClient
	AppID    string
	Registry *CommandRegistry
}

// Config holds the bot configuration
type Config struct {
	Token  string
	AppID  string
	APIURL string
	APIKey string
}

// New creates a new Discord bot
func New(cfg Config) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	s.Identify.Intents |= discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages | discordgo.IntentMessageContent

	b := &Bot{
		Session:  s,
		Client:   NewAPIClient(cfg.APIURL, cfg.APIKey),
		AppID:    cfg.AppID,
		Registry: NewCommandRegistry(),
	}
	b.registerDefaultCommands()
	return b, nil
}

// registerDefaultCommands wires every slash command into the registry.
func (b *Bot) registerDefaultCommands() {
	b.Registry.Register(ProfileCommand())
	b.Registry.Register(HuntCommand())
	b.Registry.Register(TrainCommand())
	b.Registry.Register(DailyCommand())
	b.Registry.Register(ShopCommand())
	b.Registry.Register(BuyCommand())
	b.Registry.Register(EquipCommand())
	b.Registry.Register(TravelCommand())
	b.Registry.Register(LocationsCommand())
	b.Registry.Register(QuestsCommand())
	b.Registry.Register(QuestCompleteCommand())
	b.Registry.Register(RankCommand())
	b.Registry.Register(LeaderboardCommand())
	b.Registry.Register(LevelCommand())
}

// Start starts the bot
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)
	b.Session.AddHandler(b.messageCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	slog.Info("Discord bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop stops the bot
func (b *Bot) Stop() {
	b.Session.Close()
}

// Run runs the bot until a signal is received
func (b *Bot) Run() error {
	if err := b.Start(); err != nil {
		return err
	}
	defer b.Stop()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	return nil
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info("Bot is ready", "user", s.State.User.Username)
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if b.Registry != nil {
			b.Registry.Handle(s, i, b.Client)
		}
	case discordgo.InteractionApplicationCommandAutocomplete:
		HandleAutocomplete(s, i, b.Client)
	}
}

// messageCreate feeds ordinary chat messages into the leveling engine.
// Gate misses (commands, short messages, cooldowns) come back granted=false
// and are silently ignored; only level-ups produce a channel announcement.
func (b *Bot) messageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	granted, result, err := b.Client.HandleMessage(m.Author.ID, m.Author.Username, m.GuildID, m.Content)
	if err != nil {
		slog.Warn("Failed to report message", "error", err, "user", m.Author.ID)
		return
	}
	if !granted || result == nil || !result.LeveledUp {
		return
	}

	msg := fmt.Sprintf("🎉 **%s** reached level **%d**!", m.Author.Username, result.NewLevel)
	if _, err := s.ChannelMessageSend(m.ChannelID, msg); err != nil {
		slog.Error("Failed to announce level up", "error", err)
	}
}
