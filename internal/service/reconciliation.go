package service

import (
	"coin-purchase/internal/model"
	"coin-purchase/internal/purchase"
	"coin-purchase/internal/repository"
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const reconcileBatchSize = 10

type ReconciliationServiceImpl struct {
	creditRepo    repository.CreditRepository
	dbManager     repository.DBManager
	recorder      purchase.PurchaseRecorder
	autoRetry     bool
	capturedGrace time.Duration
	logger        zerolog.Logger
	now           func() time.Time
}

// NewReconciliationService builds the reconciler. Rows still at captured are
// only picked up once capturedGrace has passed since their last update, which
// leaves live dialogues time to finish crediting.
func NewReconciliationService(
	creditRepo repository.CreditRepository,
	dbManager repository.DBManager,
	recorder purchase.PurchaseRecorder,
	autoRetry bool,
	capturedGrace time.Duration,
	logger zerolog.Logger,
) ReconciliationService {
	return &ReconciliationServiceImpl{
		creditRepo:    creditRepo,
		dbManager:     dbManager,
		recorder:      recorder,
		autoRetry:     autoRetry,
		capturedGrace: capturedGrace,
		logger:        logger,
		now:           time.Now,
	}
}

// ProcessUnreconciled reports payments captured at the gateway but not credited.
// With auto retry enabled it re-sends only the crediting call, keyed by the
// gateway transaction id; the gateway is never contacted again.
func (s *ReconciliationServiceImpl) ProcessUnreconciled(ctx context.Context) error {
	capturedBefore := s.now().Add(-s.capturedGrace)
	records, err := s.creditRepo.ListUnreconciled(ctx, capturedBefore, reconcileBatchSize)
	if err != nil {
		return fmt.Errorf("list unreconciled credits: %w", err)
	}

	if len(records) == 0 {
		s.logger.Debug().Msg("no unreconciled credits")
		return nil
	}

	var credited int
	for _, rec := range records {
		// Stop quickly on shutdown
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		s.logUnreconciled(rec)
		if !s.autoRetry {
			continue
		}

		ok, err := s.retry(ctx, rec, capturedBefore)
		if err != nil {
			s.logger.Error().Err(err).Str("transaction_id", rec.TransactionID).Msg("failed to retry crediting")
			continue
		}
		if ok {
			credited++
		}
	}

	s.logger.Info().Int("unreconciled", len(records)).Int("credited", credited).Bool("auto_retry", s.autoRetry).
		Msg("reconciliation pass finished")
	return nil
}

func (s *ReconciliationServiceImpl) retry(ctx context.Context, rec *model.CreditRecord, capturedBefore time.Time) (bool, error) {
	var credited bool
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		// Lock row to avoid crediting twice from concurrent workers
		locked, err := s.creditRepo.LockForRetry(ctx, rec.ID, tx)
		if err != nil {
			return fmt.Errorf("lock credit: %w", err)
		}
		if !locked {
			s.logger.Debug().Str("transaction_id", rec.TransactionID).Msg("credit locked by another worker, skipping")
			return nil
		}

		// A live dialogue may have settled the row since it was listed
		current, err := s.creditRepo.GetCredit(ctx, rec.TransactionID, tx)
		if err != nil {
			return fmt.Errorf("reload credit: %w", err)
		}
		if !current.Unreconciled(capturedBefore) {
			s.logger.Debug().Str("transaction_id", rec.TransactionID).Str("status", current.Status.String()).
				Msg("credit already handled, skipping")
			return nil
		}

		credit := model.PurchaseCredit{
			TransactionID: current.TransactionID,
			PackageID:     current.PackageID,
			CoinsCredited: current.CoinsCredited,
			AmountUSD:     current.AmountUSD,
			Buyer:         model.BuyerIdentity{DisplayName: current.BuyerName, Email: current.BuyerEmail},
		}
		if err := s.recorder.RecordPurchase(ctx, credit); err != nil {
			s.logger.Warn().Err(err).Str("transaction_id", current.TransactionID).Int("attempts", current.Attempts+1).
				Msg("crediting retry failed")
			return s.creditRepo.FailRetry(ctx, current.ID, err.Error(), tx)
		}

		if err := s.creditRepo.CompleteRetry(ctx, current.ID, tx); err != nil {
			return fmt.Errorf("complete retry: %w", err)
		}
		credited = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if credited {
		s.logger.Info().Str("transaction_id", rec.TransactionID).Int("coins", rec.CoinsCredited).
			Msg("captured payment credited on retry")
	}
	return credited, nil
}

func (s *ReconciliationServiceImpl) logUnreconciled(rec *model.CreditRecord) {
	ev := s.logger.Warn().
		Str("transaction_id", rec.TransactionID).
		Str("package_id", rec.PackageID).
		Int("coins", rec.CoinsCredited).
		Str("amount_usd", rec.AmountUSD.StringFixed(2)).
		Str("buyer_email", rec.BuyerEmail).
		Str("status", rec.Status.String()).
		Int("attempts", rec.Attempts)
	if rec.LastError != nil {
		ev = ev.Str("last_error", *rec.LastError)
	}
	ev.Msg("payment captured but not credited")
}
