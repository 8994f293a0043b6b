package purchase

import (
	"coin-purchase/internal/model"
	"context"
	"fmt"
)

const gatewayUnreachableMessage = "could not reach the payment gateway, please try again"

// Submit confirms the card payment against the held authorization. On a
// "succeeded" intent the purchase is credited right away; every other outcome
// leaves the dialogue in StateFailed with submission re-enabled.
func (d *Dialogue) Submit(ctx context.Context, card model.CardInput) (model.Snapshot, error) {
	d.mu.Lock()
	if err := d.checkSubmitLocked(card); err != nil {
		snap := d.snapshotLocked()
		d.mu.Unlock()
		return snap, err
	}

	attempt := d.attempt
	auth := *d.auth
	d.state = model.StateSubmitting
	d.clearErrorLocked()
	d.mu.Unlock()

	intent, gwErr, err := d.deps.Gateway.ConfirmCardPayment(ctx, auth.ClientSecret, card, d.buyer)

	d.mu.Lock()
	if attempt != d.attempt || d.state.Terminal() {
		snap := d.snapshotLocked()
		d.mu.Unlock()
		if err == nil && gwErr == nil && intent != nil && intent.Status == model.PaymentStatusSucceeded {
			journalCtx, cancel := d.detach(ctx)
			d.journalAbandoned(journalCtx, intent.ID, auth)
			cancel()
		}
		return snap, model.ErrAttemptAbandoned
	}

	var result error
	switch {
	case err != nil:
		d.failLocked(model.StateFailed, model.CodeGatewayUnreachable, gatewayUnreachableMessage)
		result = fmt.Errorf("%w: %v", model.ErrGatewayUnreachable, err)
	case gwErr != nil:
		d.failLocked(model.StateFailed, model.CodeGatewayDeclined, gwErr.Message)
		result = fmt.Errorf("%w: %s", model.ErrGatewayDeclined, gwErr.Message)
	case intent == nil || intent.Status != model.PaymentStatusSucceeded:
		status := ""
		if intent != nil {
			status = intent.Status
		}
		d.failLocked(model.StateFailed, model.CodeGatewayAmbiguousStatus,
			fmt.Sprintf("payment was not completed (status %q), please try again or contact support", status))
		result = fmt.Errorf("%w: status %q", model.ErrGatewayAmbiguousStatus, status)
	default:
		d.state = model.StateSucceeded
		d.txID = intent.ID
		d.finalizing = true
	}

	if result != nil {
		snap := d.snapshotLocked()
		d.mu.Unlock()
		d.logger.Warn().Err(result).Str("package_id", auth.PackageID).Msg("payment confirmation failed")
		return snap, result
	}
	credit := d.creditLocked()
	d.mu.Unlock()

	d.logger.Info().Str("transaction_id", intent.ID).Str("package_id", auth.PackageID).Msg("payment captured")

	// The journal row must exist before crediting can mark it.
	journalCtx, cancel := d.detach(ctx)
	d.journalCaptured(journalCtx, intent.ID, auth)
	cancel()

	return d.credit(ctx, credit)
}

func (d *Dialogue) checkSubmitLocked(card model.CardInput) error {
	switch {
	case d.state.Terminal():
		return model.ErrDialogueClosed
	case d.state == model.StateSubmitting:
		return model.ErrSubmitInFlight
	case d.state == model.StateSucceeded:
		return model.ErrAlreadySucceeded
	case d.deps.Gateway == nil:
		return model.ErrGatewayUnavailable
	case d.auth == nil:
		return model.ErrNotReady
	case !card.Complete():
		return model.ErrCardIncomplete
	}
	return nil
}

func (d *Dialogue) creditRecord(transactionID string, auth model.PaymentAuthorization, status model.CreditStatus) *model.CreditRecord {
	return &model.CreditRecord{
		TransactionID: transactionID,
		DialogueID:    d.id,
		BuyerEmail:    d.buyer.Email,
		BuyerName:     d.buyer.DisplayName,
		PackageID:     auth.PackageID,
		CoinsCredited: auth.CoinsPurchased,
		AmountUSD:     auth.AmountUSD,
		Status:        status,
	}
}

func (d *Dialogue) journalCaptured(ctx context.Context, transactionID string, auth model.PaymentAuthorization) {
	if d.deps.Journal == nil {
		return
	}
	if err := d.deps.Journal.RecordCaptured(ctx, d.creditRecord(transactionID, auth, model.CreditCaptured)); err != nil {
		d.logger.Error().Err(err).Str("transaction_id", transactionID).Msg("failed to journal captured payment")
	}
}

func (d *Dialogue) journalAbandoned(ctx context.Context, transactionID string, auth model.PaymentAuthorization) {
	d.logger.Error().
		Str("transaction_id", transactionID).
		Str("package_id", auth.PackageID).
		Str("buyer_email", d.buyer.Email).
		Msg("payment captured for abandoned purchase, not crediting")

	if d.deps.Journal == nil {
		return
	}
	rec := d.creditRecord(transactionID, auth, model.CreditAbandoned)
	if err := d.deps.Journal.RecordCaptured(ctx, rec); err != nil {
		d.logger.Error().Err(err).Str("transaction_id", transactionID).Msg("failed to journal abandoned payment")
	}
}
