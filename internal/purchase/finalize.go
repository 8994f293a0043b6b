package purchase

import (
	"coin-purchase/internal/model"
	"context"
	"fmt"
)

const creditFailedMessage = "Your payment was captured but your coin balance could not be updated. " +
	"Please retry or contact support; you will not be charged again."

// Finalize asks the backend to credit the coins for the succeeded payment.
// It never touches the gateway, so it is safe to call again after a
// CREDIT_FAILED outcome. Once the backend has acknowledged, the dialogue is
// completed and further calls are no-ops.
func (d *Dialogue) Finalize(ctx context.Context) (model.Snapshot, error) {
	d.mu.Lock()
	switch {
	case d.state == model.StateCompleted:
		snap := d.snapshotLocked()
		d.mu.Unlock()
		return snap, nil
	case d.state == model.StateClosed:
		snap := d.snapshotLocked()
		d.mu.Unlock()
		return snap, model.ErrDialogueClosed
	case d.state != model.StateSucceeded || d.auth == nil:
		snap := d.snapshotLocked()
		d.mu.Unlock()
		return snap, model.ErrNothingToFinalize
	case d.finalizing:
		snap := d.snapshotLocked()
		d.mu.Unlock()
		return snap, model.ErrFinalizeInFlight
	}

	d.finalizing = true
	credit := d.creditLocked()
	d.mu.Unlock()

	return d.credit(ctx, credit)
}

// creditLocked builds the crediting request for the succeeded payment.
func (d *Dialogue) creditLocked() model.PurchaseCredit {
	return model.PurchaseCredit{
		TransactionID: d.txID,
		PackageID:     d.auth.PackageID,
		CoinsCredited: d.auth.CoinsPurchased,
		AmountUSD:     d.auth.AmountUSD,
		Buyer:         d.buyer,
	}
}

// credit runs the crediting call. The caller must have set finalizing.
func (d *Dialogue) credit(ctx context.Context, credit model.PurchaseCredit) (model.Snapshot, error) {
	callCtx, cancel := d.detach(ctx)
	defer cancel()

	err := d.deps.Recorder.RecordPurchase(callCtx, credit)
	d.journalCreditOutcome(callCtx, credit.TransactionID, err)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.finalizing = false

	if err != nil {
		d.logger.Error().Err(err).
			Str("transaction_id", credit.TransactionID).
			Str("package_id", credit.PackageID).
			Int("coins", credit.CoinsCredited).
			Str("buyer_email", credit.Buyer.Email).
			Msg("payment captured but crediting failed")
		if d.state == model.StateSucceeded {
			d.errCode = model.CodeCreditFailed
			d.errMsg = creditFailedMessage
		}
		return d.snapshotLocked(), fmt.Errorf("%w: %v", model.ErrFinalizeFailed, err)
	}

	d.logger.Info().
		Str("transaction_id", credit.TransactionID).
		Int("coins", credit.CoinsCredited).
		Msg("purchase credited")

	// Closed while the call was in flight: the credit happened, the dialogue stays closed.
	if d.state != model.StateSucceeded {
		return d.snapshotLocked(), nil
	}

	d.state = model.StateCompleted
	d.notice = fmt.Sprintf("%d coins added to your balance", credit.CoinsCredited)
	d.selected = nil
	d.auth = nil
	d.clearErrorLocked()
	return d.snapshotLocked(), nil
}

// detach bounds post-capture work by CreditTimeout rather than by the
// caller's context, which ends when the buyer disconnects.
func (d *Dialogue) detach(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), d.deps.CreditTimeout)
}

func (d *Dialogue) journalCreditOutcome(ctx context.Context, transactionID string, creditErr error) {
	if d.deps.Journal == nil {
		return
	}
	var err error
	if creditErr != nil {
		err = d.deps.Journal.MarkCreditFailed(ctx, transactionID, creditErr.Error())
	} else {
		err = d.deps.Journal.MarkCredited(ctx, transactionID)
	}
	if err != nil {
		d.logger.Error().Err(err).Str("transaction_id", transactionID).Msg("failed to update credit journal")
	}
}
