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

	"nutriverse/internal/api"
	"nutriverse/internal/appointment"
	"nutriverse/internal/catalog"
	"nutriverse/internal/config"
	"nutriverse/internal/database"
	"nutriverse/internal/logger"
	"nutriverse/internal/metrics"
	"nutriverse/internal/planner"
	"nutriverse/internal/recipe"
	"nutriverse/internal/telegram"
	"nutriverse/internal/user"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger.Init()
	defer logger.Close()

	cfg, err := config.NewFromEnv()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	users := user.NewRepository(db.SQL)
	auth := user.NewAuthService(users, cfg.JWTSecret)
	provider := catalog.NewStaticProvider()
	if cfg.CatalogImportURL != "" {
		imported, err := catalog.NewImporter().ImportURL(cfg.CatalogImportURL)
		if err != nil {
			logger.Warn("Failed to import catalog export", zap.Error(err))
		} else {
			added := provider.AddMeals(imported)
			logger.Info("Merged imported catalog meals", zap.Int("added", added))
		}
	}
	generator := planner.New(provider, nil)
	generator.IncludeEveningSnack = true
	plans := planner.NewPlanRepository(db.SQL)
	appointments := appointment.NewService(appointment.NewRepository(db.SQL))
	recipes := recipe.NewService(recipe.NewRepository(db.SQL))
	metricsStore := metrics.NewStore(db.SQL)

	server := api.NewServer(cfg, auth, users, provider, generator, plans, appointments, recipes, metricsStore)
	router := server.Router()

	// The Telegram bot is optional and only started when a token is set.
	if cfg.TelegramBotToken != "" {
		bot, err := telegram.NewBot(cfg, users, generator, plans, appointments, metricsStore)
		if err != nil {
			logger.Fatal("Failed to initialize Telegram bot", zap.Error(err))
		}
		server.SetNotifier(bot)
		router.Post("/webhook", bot.HandleWebhook)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Nutriverse API listening", zap.String("port", cfg.Port))
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
