package main

import (
	"context"
	"time"

	"github.com/mexc-tools/dust-bot/internal/config"
	"github.com/mexc-tools/dust-bot/internal/exchange/mexc"
	"github.com/mexc-tools/dust-bot/internal/logger"
	"github.com/mexc-tools/dust-bot/internal/monitoring"
	"github.com/mexc-tools/dust-bot/internal/notifications"
	"github.com/mexc-tools/dust-bot/internal/workflow"
)

// DustBot schedules and runs conversion cycles. A fresh workflow
// instance is built per tick; the bot itself only carries the
// long-lived collaborators.
type DustBot struct {
	config        *config.Config
	exchange      *mexc.Client
	notifier      notifications.Notifier
	log           *logger.Logger
	healthChecker *monitoring.HealthChecker
	stopChan      chan struct{}
}

// NewDustBot creates a new dust converter bot instance
func NewDustBot(
	cfg *config.Config,
	exchange *mexc.Client,
	notifier notifications.Notifier,
	log *logger.Logger,
	health *monitoring.HealthChecker,
) *DustBot {
	return &DustBot{
		config:        cfg,
		exchange:      exchange,
		notifier:      notifier,
		log:           log,
		healthChecker: health,
		stopChan:      make(chan struct{}),
	}
}

// Start launches the schedule loop.
func (b *DustBot) Start(ctx context.Context) error {
	b.log.Info("Starting Dust Converter Bot...")

	// Send startup notification (optional)
	if b.config.Notifications.TelegramToken != "" {
		if err := b.notifier.SendAlert("info", "Dust converter started"); err != nil {
			b.log.LogError("failed to send startup notification", err)
		}
	} else {
		b.log.Info("Telegram notifications disabled (no token configured)")
	}

	go b.scheduleLoop(ctx)

	b.log.Info("Dust Converter Bot started, running every hour at +%s", b.config.Convert.RunOffset)
	return nil
}

// scheduleLoop fires a cycle at a fixed offset past every wall-clock
// hour. A failed cycle is contained to its tick; the loop never stops
// on cycle errors.
func (b *DustBot) scheduleLoop(ctx context.Context) {
	for {
		next := nextRun(time.Now(), b.config.Convert.RunOffset)
		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			b.log.Info("Schedule loop stopped")
			return
		case <-b.stopChan:
			timer.Stop()
			b.log.Info("Schedule loop stopped")
			return
		case <-timer.C:
			b.runCycle(ctx)
		}
	}
}

// runCycle executes one conversion cycle with a fresh workflow.
func (b *DustBot) runCycle(ctx context.Context) {
	b.log.Cycle("scheduled cycle started")

	converter := workflow.NewConverter(b.exchange, b.notifier, b.log, b.config.Convert.IgnoreAssets)
	outcome := "success"
	if err := converter.Run(ctx); err != nil {
		outcome = "error"
		b.log.LogError("conversion cycle failed", err)
		b.healthChecker.AddError(err.Error())
	}
	b.healthChecker.SetLastRun(time.Now(), outcome)

	b.log.Cycle("scheduled cycle finished in state %s", converter.State())
}

// nextRun returns the first instant strictly after now that sits at
// offset past a wall-clock hour.
func nextRun(now time.Time, offset time.Duration) time.Time {
	next := now.Truncate(time.Hour).Add(offset)
	if !next.After(now) {
		next = next.Add(time.Hour)
	}
	return next
}

// Shutdown gracefully shuts down the bot
func (b *DustBot) Shutdown(ctx context.Context) error {
	b.log.Info("Shutting down Dust Converter Bot...")

	close(b.stopChan)

	if b.config.Notifications.TelegramToken != "" {
		if err := b.notifier.SendAlert("info", "Dust converter stopped"); err != nil {
			b.log.LogError("failed to send shutdown notification", err)
		}
	}

	b.log.Info("Dust Converter Bot shutdown complete")
	return nil
}
