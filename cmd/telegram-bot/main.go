package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"nutriverse/internal/appointment"
	"nutriverse/internal/catalog"
	"nutriverse/internal/config"
	"nutriverse/internal/database"
	"nutriverse/internal/logger"
	"nutriverse/internal/metrics"
	"nutriverse/internal/planner"
	"nutriverse/internal/telegram"
	"nutriverse/internal/user"
)

// Standalone webhook server for deployments that run the bot separately
// from the API.
func main() {
	_ = godotenv.Load()

	logger.Init()
	defer logger.Close()

	cfg, err := config.NewFromEnv()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}
	if cfg.TelegramBotToken == "" {
		logger.Fatal("TELEGRAM_BOT_TOKEN is required for the bot server")
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	users := user.NewRepository(db.SQL)
	generator := planner.New(catalog.NewStaticProvider(), nil)
	generator.IncludeEveningSnack = true
	plans := planner.NewPlanRepository(db.SQL)
	appointments := appointment.NewService(appointment.NewRepository(db.SQL))
	metricsStore := metrics.NewStore(db.SQL)

	bot, err := telegram.NewBot(cfg, users, generator, plans, appointments, metricsStore)
	if err != nil {
		logger.Fatal("Failed to initialize Telegram bot", zap.Error(err))
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/webhook", bot.HandleWebhook)
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: mux,
	}

	go func() {
		logger.Info("Telegram bot server listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}
