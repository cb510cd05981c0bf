package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/harryl99/nyt-rankbot/internal/app"
	"github.com/harryl99/nyt-rankbot/internal/config"
	"github.com/harryl99/nyt-rankbot/internal/handler"
	"github.com/harryl99/nyt-rankbot/internal/repository"
)

var (
	verbose bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "rankbot",
	Short: "Telegram bot that ranks New York Times puzzle scores",
	Long: `rankbot watches a group chat for shared Connections, Mini crossword and
Wordle results, keeps a per-day score table and answers /scoreboard with
podium-style daily and monthly rankings.

Run without arguments to start polling for updates.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Poll Telegram for updates and handle them",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the score table and exit",
	RunE:  runMigrate,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := app.OpenDB(cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := repository.NewScoreRepository(db)
	if err := repo.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return fmt.Errorf("failed to connect to Telegram: %w", err)
	}
	bot.Debug = cfg.Debug
	logger.Info("authorized", zap.String("account", bot.Self.UserName))

	h := handler.NewTelegramHandler(repo, bot, logger)

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal")
		cancel()
		bot.StopReceivingUpdates()
	}()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	// Main loop
	for update := range bot.GetUpdatesChan(u) {
		h.HandleUpdate(ctx, update)
	}
	logger.Info("stopped")
	return nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	dbCfg, err := config.LoadDatabase()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := app.OpenDB(dbCfg)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := repository.NewScoreRepository(db).Migrate(context.Background()); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	logger.Info("schema up to date")
	return nil
}
