package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deremos/RealmBot_Go/internal/adventure"
	"github.com/deremos/RealmBot_Go/internal/config"
	"github.com/deremos/RealmBot_Go/internal/content"
	"github.com/deremos/RealmBot_Go/internal/discord"
	"github.com/deremos/RealmBot_Go/internal/leveling"
	"github.com/deremos/RealmBot_Go/internal/logger"
	"github.com/deremos/RealmBot_Go/internal/server"
	"github.com/deremos/RealmBot_Go/internal/store"
	"github.com/deremos/RealmBot_Go/internal/user"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment, false))

	fileStore, err := store.NewFileStore(cfg.StorePath, cfg.AutosaveInterval)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}

	catalog, err := content.Load(content.DefaultPaths(cfg.ContentDir))
	if err != nil {
		log.Fatalf("Failed to load content catalogs: %v", err)
	}

	repo := user.NewRepository(fileStore)
	seed := time.Now().UnixNano()

	levelingService := leveling.NewService(repo, leveling.Config{
		Enabled:          cfg.LevelingEnabled,
		MinMessageLength: cfg.MinMessageLength,
		CommandPrefix:    leveling.DefaultCommandPrefix,
		MessageCooldown:  cfg.MessageCooldown,
		PrivateMode:      cfg.PrivateMode,
		Owners:           cfg.Owners,
	}, seed)
	adventureService := adventure.NewService(repo, catalog, seed)

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies,
		levelingService, adventureService, catalog, fileStore)
	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	var bot *discord.Bot
	if cfg.DiscordToken != "" {
		bot, err = discord.New(discord.Config{
			Token:  cfg.DiscordToken,
			AppID:  cfg.DiscordAppID,
			APIURL: cfg.APIURL,
			APIKey: cfg.APIKey,
		})
		if err != nil {
			log.Fatalf("Failed to create Discord bot: %v", err)
		}
		if err := bot.Start(); err != nil {
			log.Fatalf("Failed to start Discord bot: %v", err)
		}
		if err := bot.RegisterCommands(false); err != nil {
			slog.Error("Failed to register Discord commands", "error", err)
		}
	} else {
		slog.Info("DISCORD_TOKEN not set, running API only")
	}

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sc:
		slog.Info("Shutting down")
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if bot != nil {
		bot.Stop()
	}
	if err := srv.Stop(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
	if err := fileStore.Close(ctx); err != nil {
		slog.Error("Store close failed", "error", err)
	}
}
