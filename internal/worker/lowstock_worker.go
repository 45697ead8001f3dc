package worker

// lowstock_worker.go
// Processes low-stock alert jobs from QueueLowStock.
// Emails the configured alert address via SMTP, behind the mailer circuit
// breaker so a dead SMTP server fails fast instead of blocking the pool.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/asbuyukgungor-bot/bus-erp/internal/infra"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// LowStockJobPayload is the job envelope sent to QueueLowStock.
type LowStockJobPayload struct {
	PartNumber string `json:"part_number"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	Threshold  int    `json:"threshold"`
}

// LowStockWorker sends low-stock alert emails.
type LowStockWorker struct {
	mailer  *infra.Mailer
	cb      *infra.CircuitBreaker
	alertTo string
}

func NewLowStockWorker(mailer *infra.Mailer, cb *infra.CircuitBreaker, alertTo string) *LowStockWorker {
	return &LowStockWorker{mailer: mailer, cb: cb, alertTo: alertTo}
}

// Process sends the alert mail; undeliverable jobs go to the DLQ.
func (w *LowStockWorker) Process(ctx context.Context, rdb *redis.Client, raw json.RawMessage) {
	var payload LowStockJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("lowstock_worker: invalid payload")
		return
	}
	if w.alertTo == "" {
		log.Warn().Msg("lowstock_worker: no alert email configured — skipping")
		return
	}

	subject := fmt.Sprintf("Low stock: %s (%s)", payload.Name, payload.PartNumber)
	body := fmt.Sprintf(
		"Part %s (%s) is down to %d units, below the threshold of %d.\nPlease reorder.",
		payload.Name, payload.PartNumber, payload.Quantity, payload.Threshold,
	)

	err := w.cb.Execute(func() error {
		return w.mailer.SendAlert(w.alertTo, subject, body)
	})
	if err != nil {
		log.Error().Err(err).Str("part_number", payload.PartNumber).Msg("lowstock_worker: failed to send alert")
		SendToDLQ(ctx, rdb, QueueLowStock, "lowstock", raw, err.Error(), 1)
		return
	}
	log.Info().Str("part_number", payload.PartNumber).Msg("lowstock_worker: alert sent")
}
