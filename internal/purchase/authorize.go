package purchase

import (
	"coin-purchase/internal/model"
	"context"
	"errors"
	"fmt"
)

// authCall is the single slot for an authorization request in flight.
type authCall struct {
	attempt uint64
	done    chan struct{}
	auth    model.PaymentAuthorization
	err     error
}

// RequestAuthorization obtains the payment authorization for the current
// selection. An authorization already held is returned as is, and callers
// arriving while a request is in flight share its result, so the backend is
// called at most once per selection.
func (d *Dialogue) RequestAuthorization(ctx context.Context) (model.PaymentAuthorization, error) {
	d.mu.Lock()
	if d.state.Terminal() {
		d.mu.Unlock()
		return model.PaymentAuthorization{}, model.ErrDialogueClosed
	}
	if d.selected == nil {
		d.mu.Unlock()
		return model.PaymentAuthorization{}, model.ErrNoSelection
	}
	if d.auth != nil {
		auth := *d.auth
		d.mu.Unlock()
		return auth, nil
	}
	if call := d.pending; call != nil {
		d.mu.Unlock()
		return waitAuthorization(ctx, call)
	}

	call := &authCall{attempt: d.attempt, done: make(chan struct{})}
	d.pending = call
	pkg := *d.selected
	d.state = model.StateAuthorizing
	d.clearErrorLocked()
	d.mu.Unlock()

	authCtx, cancel := context.WithTimeout(ctx, d.deps.AuthorizationTimeout)
	secret, err := d.deps.Backend.CreatePaymentIntent(authCtx, pkg)
	cancel()

	d.mu.Lock()
	defer d.mu.Unlock()
	defer close(call.done)

	if d.pending == call {
		d.pending = nil
	}
	current := call.attempt == d.attempt && !d.state.Terminal()

	if err != nil {
		msg := authorizationFailureMessage(err)
		call.err = fmt.Errorf("%w: %s", model.ErrAuthorizationFailed, msg)
		if current {
			d.failLocked(model.StateIdle, model.CodeAuthorizationFailed, msg)
		}
		d.logger.Warn().Err(err).Str("package_id", pkg.ID).Msg("payment authorization failed")
		return model.PaymentAuthorization{}, call.err
	}

	if !current {
		call.err = model.ErrAttemptAbandoned
		d.logger.Debug().Str("package_id", pkg.ID).Msg("discarding authorization for abandoned attempt")
		return model.PaymentAuthorization{}, call.err
	}

	call.auth = model.PaymentAuthorization{
		ClientSecret:   secret,
		PackageID:      pkg.ID,
		CoinsPurchased: pkg.TotalCoins(),
		AmountUSD:      pkg.PriceUSD,
	}
	d.auth = &call.auth
	d.state = model.StateReady

	d.logger.Info().Str("package_id", pkg.ID).Int("coins", pkg.TotalCoins()).Msg("payment authorized")
	return call.auth, nil
}

func waitAuthorization(ctx context.Context, call *authCall) (model.PaymentAuthorization, error) {
	select {
	case <-call.done:
		return call.auth, call.err
	case <-ctx.Done():
		return model.PaymentAuthorization{}, ctx.Err()
	}
}

func authorizationFailureMessage(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "authorization request timed out"
	}
	return err.Error()
}
