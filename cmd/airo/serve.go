package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-co-op/gocron/v2"
	tgbot "github.com/go-telegram/bot"
	"github.com/spf13/cobra"

	"github.com/youngmea/airo/internal/bot"
	"github.com/youngmea/airo/internal/bot/handlers"
	"github.com/youngmea/airo/internal/bot/tasks"
	"github.com/youngmea/airo/internal/canned"
	"github.com/youngmea/airo/internal/database"
	"github.com/youngmea/airo/internal/dialogue"
	"github.com/youngmea/airo/internal/llm"
	"github.com/youngmea/airo/internal/logger"
	"github.com/youngmea/airo/internal/telegram"
)

// pollGrace keeps the HTTP client timeout above the long-poll timeout.
const pollGrace = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the bot with long polling until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, log, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			db, err := database.NewDB(cfg.Database.Path)
			if err != nil {
				log.Error("Failed to connect to database", "path", cfg.Database.Path, "error", err)
				return err
			}
			defer database.CloseDB(db)
			store := database.NewStore(db, log)

			tDeps := tasks.TaskDeps{Logger: log, Store: store, Config: cfg}
			if err := tasks.NewRetentionSweepTask(tDeps)(ctx); err != nil {
				log.Warn("Startup retention sweep failed", "error", err)
			}

			backend, err := llm.New(ctx, cfg.LLM, log)
			if err != nil {
				log.Error("Failed to initialize LLM client", "provider", cfg.LLM.Provider, "error", err)
				return err
			}
			generator := llm.Guard(backend, cfg.LLM, log)

			conversation := dialogue.New(log, store, generator, canned.New(), dialogue.Options{
				HistoryMaxAge:     cfg.History.MaxAge,
				HistoryMaxRows:    cfg.History.MaxRows,
				GenerationTimeout: cfg.LLM.Timeout,
				Temperature:       cfg.LLM.Temperature,
			})

			hDeps := handlers.HandlerDeps{Logger: log, Config: cfg, Conversation: conversation}
			tg, err := telegram.NewTelegramBot(cfg.Telegram.Token, log,
				tgbot.WithMiddlewares(logger.Middleware(log)),
				tgbot.WithDefaultHandler(handlers.NewMessageHandler(hDeps)),
				tgbot.WithHTTPClient(cfg.Telegram.RequestTimeout, &http.Client{Timeout: cfg.Telegram.RequestTimeout + pollGrace}),
			)
			if err != nil {
				log.Error("Failed to create Telegram bot", "error", err)
				return err
			}

			cmdHandlers := handlers.RegisterAllCommands(hDeps)
			if err := telegram.RegisterHandlers(tg, log, cmdHandlers); err != nil {
				log.Error("Failed to register Telegram handlers", "error", err)
				return err
			}

			sched, err := bot.NewScheduler(log, &cfg.Scheduler, tasks.RegisterAllTasks(tDeps),
				gocron.WithLogger(logger.NewGocronLogger(log)))
			if err != nil {
				log.Error("Failed to create scheduler", "error", err)
				return err
			}

			app := bot.NewBot(log, cfg, store, tg, sched, handlers.CommandMenus(cmdHandlers))

			log.Info("Starting bot...")
			if err := app.Run(ctx); err != nil {
				log.Error("Bot stopped due to error", "error", err)
				time.Sleep(time.Second)
				return fmt.Errorf("bot stopped: %w", err)
			}

			log.Info("Bot stopped gracefully.")
			return nil
		},
	}
}
