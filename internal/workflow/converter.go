package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/mexc-tools/dust-bot/internal/exchange/mexc"
	"github.com/mexc-tools/dust-bot/internal/logger"
	"github.com/mexc-tools/dust-bot/internal/monitoring"
	"github.com/mexc-tools/dust-bot/internal/notifications"
)

// State identifies the workflow's position in a conversion cycle.
type State int

const (
	StateIdle State = iota
	StateFetchingDust
	StateFiltering
	StateConverting
	StateNotifying
	StateDone
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateFetchingDust:
		return "FetchingDust"
	case StateFiltering:
		return "Filtering"
	case StateConverting:
		return "Converting"
	case StateNotifying:
		return "Notifying"
	case StateDone:
		return "Done"
	case StateErrored:
		return "Errored"
	default:
		return "Unknown"
	}
}

// Exchange is the slice of the MEXC client the workflow needs.
type Exchange interface {
	ListDustAssets(ctx context.Context) ([]mexc.DustAsset, error)
	ConvertDust(ctx context.Context, assets []string) (mexc.ConvertResult, error)
}

// Converter runs one fetch → filter → convert → notify cycle. An
// instance is discarded after a single cycle; no state crosses cycles.
type Converter struct {
	exchange Exchange
	notifier notifications.Notifier
	log      *logger.Logger
	ignore   map[string]struct{}
	state    State
}

// NewConverter creates a converter for one cycle. The ignore set is a
// case-sensitive exact-match exclusion list.
func NewConverter(exchange Exchange, notifier notifications.Notifier, log *logger.Logger, ignoreAssets []string) *Converter {
	ignore := make(map[string]struct{}, len(ignoreAssets))
	for _, asset := range ignoreAssets {
		ignore[asset] = struct{}{}
	}
	return &Converter{
		exchange: exchange,
		notifier: notifier,
		log:      log,
		ignore:   ignore,
		state:    StateIdle,
	}
}

// State returns the workflow's current state.
func (c *Converter) State() State {
	return c.state
}

// Run executes the conversion cycle. A failure is logged, reported to
// the operator where the cycle got far enough to have something to
// report, and returned; the caller contains it to this cycle.
func (c *Converter) Run(ctx context.Context) error {
	c.state = StateFetchingDust
	dustAssets, err := c.exchange.ListDustAssets(ctx)
	if err != nil {
		c.state = StateErrored
		c.log.LogError("failed to fetch dust assets", err)
		monitoring.RecordError("fetch")
		return fmt.Errorf("fetch dust assets: %w", err)
	}

	fetched := symbols(dustAssets)
	c.log.Info("fetched %d dust asset(s): %v", len(fetched), fetched)

	if len(dustAssets) == 0 {
		c.log.Info("nothing to convert")
		c.finish("empty")
		return nil
	}

	c.state = StateFiltering
	var converted, ignored []string
	for _, asset := range dustAssets {
		if _, skip := c.ignore[asset.Asset]; skip {
			ignored = append(ignored, asset.Asset)
			continue
		}
		converted = append(converted, asset.Asset)
	}

	if len(converted) == 0 {
		// Never issue a convert call with an empty asset list.
		c.log.Info("all %d dust asset(s) are in the ignore set %v, skipping conversion", len(ignored), ignored)
		c.finish("ignored")
		return nil
	}

	c.log.Info("converting asset(s): %v", converted)

	c.state = StateConverting
	result, err := c.exchange.ConvertDust(ctx, converted)
	if err != nil {
		c.log.LogError("dust conversion failed", err)
		monitoring.RecordError("convert")
		c.notify("error", notifications.CycleReport{
			Fetched:   fetched,
			Ignored:   ignored,
			Converted: converted,
			Outcome:   "failed",
			Result:    err.Error(),
		})
		c.state = StateErrored
		monitoring.RecordCycle("error", float64(time.Now().Unix()))
		return fmt.Errorf("convert dust: %w", err)
	}

	c.log.Info("conversion result: %s", string(result))
	monitoring.RecordConversion(len(fetched), len(converted))

	c.state = StateNotifying
	c.notify("success", notifications.CycleReport{
		Fetched:   fetched,
		Ignored:   ignored,
		Converted: converted,
		Outcome:   "converted",
		Result:    string(result),
	})

	c.finish("success")
	return nil
}

// finish marks the cycle Done with the given outcome label.
func (c *Converter) finish(outcome string) {
	c.state = StateDone
	monitoring.RecordCycle(outcome, float64(time.Now().Unix()))
}

// notify delivers the cycle report best-effort. Delivery failure is
// logged and never escalated; it cannot flip the cycle's result.
func (c *Converter) notify(level string, report notifications.CycleReport) {
	if c.notifier == nil {
		return
	}
	if err := c.notifier.SendAlert(level, notifications.RenderReport(report)); err != nil {
		c.log.LogError("failed to send notification", err)
		monitoring.RecordError("notification")
		return
	}
	c.log.Info("notification delivered")
}

func symbols(assets []mexc.DustAsset) []string {
	out := make([]string, 0, len(assets))
	for _, asset := range assets {
		out = append(out, asset.Asset)
	}
	return out
}
