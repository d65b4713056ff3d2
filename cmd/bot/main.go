package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/mexc-tools/dust-bot/internal/config"
	"github.com/mexc-tools/dust-bot/internal/exchange/mexc"
	"github.com/mexc-tools/dust-bot/internal/logger"
	"github.com/mexc-tools/dust-bot/internal/monitoring"
	"github.com/mexc-tools/dust-bot/internal/notifications"
)

func main() {
	// Load .env if present, then configuration from the environment
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	appLog, err := logger.NewLogger(cfg.LogDir, "dust_converter")
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer appLog.Close()

	appLog.Info("Starting Dust Converter Bot in %s mode", cfg.Environment)

	// Initialize components
	healthChecker := monitoring.NewHealthChecker()
	notifier := notifications.NewTelegramNotifier(
		cfg.Notifications.TelegramHost,
		cfg.Notifications.TelegramToken,
		cfg.Notifications.TelegramChatID,
	)

	client := mexc.NewClient(cfg.Exchange.APIKey, cfg.Exchange.SecretKey, cfg.Exchange.BaseURL, cfg.Exchange.HTTPTimeout)
	retryConfig := mexc.DefaultRetryConfig()
	retryConfig.MaxRetries = cfg.Exchange.MaxRetries
	client.SetRetryConfig(retryConfig)

	bot := NewDustBot(cfg, client, notifier, appLog, healthChecker)

	// Setup HTTP servers
	go setupMonitoringServers(cfg, healthChecker)

	// Start the bot
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := bot.Start(ctx); err != nil {
		appLog.LogError("bot failed to start", err)
		os.Exit(1)
	}

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	appLog.Info("Shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := bot.Shutdown(shutdownCtx); err != nil {
		appLog.LogError("error during shutdown", err)
	}

	appLog.Info("Bot stopped successfully")
}

func setupMonitoringServers(cfg *config.Config, healthChecker *monitoring.HealthChecker) {
	// Create separate mux for health server
	healthMux := http.NewServeMux()
	healthMux.Handle("/health", healthChecker)

	// Start health server
	go func() {
		log.Printf("Starting health server on port %d", cfg.Monitoring.HealthPort)
		if err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.Monitoring.HealthPort), healthMux); err != nil {
			log.Printf("Health server error: %v", err)
		}
	}()

	// Start Prometheus metrics server
	go func() {
		log.Printf("Starting Prometheus server on port %d", cfg.Monitoring.PrometheusPort)
		if err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.Monitoring.PrometheusPort), monitoring.NewMetricsHandler()); err != nil {
			log.Printf("Prometheus server error: %v", err)
		}
	}()
}
