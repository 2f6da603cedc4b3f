package jobs

import (
	"context"
	"log/slog"
	"time"

	"rentwheels/internal/pkg/config"
	"rentwheels/internal/usecase/commands"
)

// PaymentExpiryJob fails payment attempts stuck pending past the TTL.
// Cash attempts are exempt: they settle at the counter, not on a clock.
type PaymentExpiryJob struct {
	payments commands.PaymentCommands
	cfg      config.PaymentConfig
}

func NewPaymentExpiryJob(payments commands.PaymentCommands, cfg config.Config) *PaymentExpiryJob {
	return &PaymentExpiryJob{
		payments: payments,
		cfg:      cfg.Payment,
	}
}

func (j *PaymentExpiryJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	expired, err := j.payments.ExpireStale(ctx, j.cfg.PendingTTL, j.cfg.ExpireBatch)
	if err != nil {
		slog.Error("payment expiry run failed", "error", err)
		return
	}
	if expired > 0 {
		slog.Info("stale payment attempts expired", "count", expired)
	}
}
