package worker

// sweep_cron.go
// Background goroutine that periodically re-scans the part catalog and
// enqueues low-stock alerts for parts already below the threshold — covers
// parts created low and alerts dropped while Redis or SMTP were down.
// A short-lived Redis dedupe key keeps the sweep from re-alerting the same
// part on every tick.

import (
	"context"
	"time"

	"github.com/asbuyukgungor-bot/bus-erp/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const sweepDedupePrefix = "lowstock:alerted:"

// SweepCronConfig holds all dependencies for the sweep goroutine.
type SweepCronConfig struct {
	Parts      repository.PartRepository
	Dispatcher *Dispatcher
	RDB        *redis.Client
	Threshold  int
	Interval   time.Duration
}

// StartSweepCron launches a background goroutine that ticks on the configured
// interval and enqueues an alert for every part below the threshold.
// It respects the context for graceful shutdown.
func StartSweepCron(ctx context.Context, cfg SweepCronConfig) {
	go func() {
		ticker := time.NewTicker(cfg.Interval)
		defer ticker.Stop()

		log.Info().Dur("interval", cfg.Interval).Msg("sweep_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("sweep_cron: shutting down")
				return
			case <-ticker.C:
				sweep(ctx, cfg)
			}
		}
	}()
}

func sweep(ctx context.Context, cfg SweepCronConfig) {
	parts, err := cfg.Parts.ListBelow(ctx, cfg.Threshold)
	if err != nil {
		log.Error().Err(err).Msg("sweep_cron: failed to list low-stock parts")
		return
	}
	if len(parts) == 0 {
		return
	}

	enqueued := 0
	for i := range parts {
		p := &parts[i]

		// Dedupe: only alert once per part per sweep interval window.
		key := sweepDedupePrefix + p.PartNumber
		ok, err := cfg.RDB.SetNX(ctx, key, "1", cfg.Interval).Result()
		if err != nil || !ok {
			continue
		}

		payload := map[string]interface{}{
			"part_number": p.PartNumber,
			"name":        p.Name,
			"quantity":    p.Quantity,
			"threshold":   cfg.Threshold,
		}
		if err := cfg.Dispatcher.EnqueueLowStockAlert(ctx, payload); err != nil {
			log.Error().Err(err).Str("part_number", p.PartNumber).Msg("sweep_cron: enqueue failed")
			continue
		}
		enqueued++
	}

	if enqueued > 0 {
		log.Info().Int("count", enqueued).Msg("sweep_cron: low-stock alerts enqueued")
	}
}
