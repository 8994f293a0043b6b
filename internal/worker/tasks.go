package worker

import (
	"coin-purchase/internal/service"
	"context"
	"time"

	"github.com/rs/zerolog"
)

// NewReconciliationWorker periodically reports and retries captured but uncredited payments
func NewReconciliationWorker(svc service.ReconciliationService, interval time.Duration, logger zerolog.Logger) *PeriodicWorker {
	return NewPeriodicWorker("reconciliation", interval, svc.ProcessUnreconciled, logger)
}

// NewDialogueSweeper periodically closes purchase dialogues abandoned by their buyer
func NewDialogueSweeper(svc service.PurchaseService, interval, maxIdle time.Duration, logger zerolog.Logger) *PeriodicWorker {
	return NewPeriodicWorker("dialogue-sweeper", interval, func(ctx context.Context) error {
		closed, err := svc.CloseIdle(ctx, maxIdle)
		if err != nil {
			return err
		}
		if closed > 0 {
			logger.Info().Int("closed", closed).Dur("max_idle", maxIdle).Msg("idle purchase dialogues closed")
		}
		return nil
	}, logger)
}
