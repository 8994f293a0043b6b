package purchase

import (
	"coin-purchase/internal/model"
	"context"
)

// AuthorizationRequester asks the marketplace backend for a payment client secret.
type AuthorizationRequester interface {
	CreatePaymentIntent(ctx context.Context, pkg model.CoinPackage) (string, error)
}

// PaymentConfirmer confirms a card payment against a client secret.
// A rejected payment is reported as a non-nil *model.GatewayError; the error
// return is reserved for transport failures.
type PaymentConfirmer interface {
	ConfirmCardPayment(ctx context.Context, clientSecret string, card model.CardInput, buyer model.BuyerIdentity) (*model.PaymentIntent, *model.GatewayError, error)
}

// PurchaseRecorder tells the marketplace backend to credit coins for a captured payment.
type PurchaseRecorder interface {
	RecordPurchase(ctx context.Context, credit model.PurchaseCredit) error
}

// CreditJournal durably tracks captured payments until they are credited.
type CreditJournal interface {
	RecordCaptured(ctx context.Context, rec *model.CreditRecord) error
	MarkCredited(ctx context.Context, transactionID string) error
	MarkCreditFailed(ctx context.Context, transactionID, reason string) error
}
