package jobs

import (
	"context"
	"errors"
	"log/slog"

	"github.com/robfig/cron/v3"

	"marketplace/internal/core/application/usecases/commands"
)

// PaymentConfirmationJob sweeps recorded payment confirmations and applies
// them to their orders. Runs every second so a webhook arriving between
// sweeps confirms the order within a second.
type PaymentConfirmationJob struct {
	handler commands.ApplyPaymentConfirmationsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPaymentConfirmationJob creates a new job for applying payment confirmations.
func NewPaymentConfirmationJob(
	handler commands.ApplyPaymentConfirmationsCommandHandler,
	logger *slog.Logger,
) *PaymentConfirmationJob {
	return &PaymentConfirmationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "payment_confirmation_job"),
	}
}

// Start begins the payment confirmation job to run every second.
func (j *PaymentConfirmationJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewApplyPaymentConfirmationsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty queue is the normal idle state.
			if !errors.Is(err, commands.ErrNoConfirmationFound) {
				j.logger.ErrorContext(ctx, "Payment confirmation job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment confirmation job started (running every second)")
	return nil
}

// Stop stops the payment confirmation job.
func (j *PaymentConfirmationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Payment confirmation job stopped")
}
