package purchase

import (
	"coin-purchase/internal/model"
	"context"
	"sync"
)

type fakeBackend struct {
	mu      sync.Mutex
	calls   []model.CoinPackage
	err     error
	entered chan struct{}
	release chan struct{}
}

func (f *fakeBackend) CreatePaymentIntent(ctx context.Context, pkg model.CoinPackage) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, pkg)
	err := f.err
	f.mu.Unlock()

	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.release != nil {
		select {
		case <-f.release:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if err != nil {
		return "", err
	}
	return "pi_" + pkg.ID + "_secret_test", nil
}

func (f *fakeBackend) Calls() []model.CoinPackage {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.CoinPackage, len(f.calls))
	copy(out, f.calls)
	return out
}

type gatewayCall struct {
	clientSecret string
	card         model.CardInput
	buyer        model.BuyerIdentity
}

type fakeGateway struct {
	mu      sync.Mutex
	calls   []gatewayCall
	intent  *model.PaymentIntent
	gwErr   *model.GatewayError
	err     error
	entered chan struct{}
	release chan struct{}
	// onReturn runs after the call is released and before the result is returned
	onReturn func()
}

func (f *fakeGateway) ConfirmCardPayment(ctx context.Context, clientSecret string, card model.CardInput, buyer model.BuyerIdentity) (*model.PaymentIntent, *model.GatewayError, error) {
	f.mu.Lock()
	f.calls = append(f.calls, gatewayCall{clientSecret: clientSecret, card: card, buyer: buyer})
	intent, gwErr, err := f.intent, f.gwErr, f.err
	f.mu.Unlock()

	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	if f.onReturn != nil {
		f.onReturn()
	}
	return intent, gwErr, err
}

func (f *fakeGateway) respond(intent *model.PaymentIntent, gwErr *model.GatewayError, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.intent, f.gwErr, f.err = intent, gwErr, err
}

func (f *fakeGateway) Calls() []gatewayCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]gatewayCall, len(f.calls))
	copy(out, f.calls)
	return out
}

type fakeRecorder struct {
	mu      sync.Mutex
	credits []model.PurchaseCredit
	err     error
	onCall  func(model.PurchaseCredit)
	entered chan struct{}
	release chan struct{}
}

func (f *fakeRecorder) RecordPurchase(ctx context.Context, credit model.PurchaseCredit) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if f.onCall != nil {
		f.onCall(credit)
	}
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.credits = append(f.credits, credit)
	return f.err
}

func (f *fakeRecorder) fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func (f *fakeRecorder) Credits() []model.PurchaseCredit {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.PurchaseCredit, len(f.credits))
	copy(out, f.credits)
	return out
}

type fakeJournal struct {
	mu      sync.Mutex
	records map[string]*model.CreditRecord
}

func newFakeJournal() *fakeJournal {
	return &fakeJournal{records: make(map[string]*model.CreditRecord)}
}

func (f *fakeJournal) RecordCaptured(ctx context.Context, rec *model.CreditRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.records[rec.TransactionID]; ok {
		return nil
	}
	cp := *rec
	f.records[rec.TransactionID] = &cp
	return nil
}

func (f *fakeJournal) MarkCredited(ctx context.Context, transactionID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return f.set(transactionID, model.CreditCredited, "")
}

func (f *fakeJournal) MarkCreditFailed(ctx context.Context, transactionID, reason string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return f.set(transactionID, model.CreditFailed, reason)
}

func (f *fakeJournal) set(transactionID string, status model.CreditStatus, reason string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[transactionID]
	if !ok {
		return model.ErrCreditNotFound
	}
	rec.Status = status
	if reason != "" {
		rec.LastError = &reason
	}
	return nil
}

func (f *fakeJournal) Status(transactionID string) model.CreditStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	if rec, ok := f.records[transactionID]; ok {
		return rec.Status
	}
	return ""
}
