package service

import (
	"coin-purchase/internal/model"
	"context"
	"time"
)

// PurchaseService is the call surface of open purchase dialogues
type PurchaseService interface {
	ListPackages(ctx context.Context) []model.CoinPackage
	Open(ctx context.Context, buyer model.BuyerIdentity) (model.Snapshot, error)
	Get(ctx context.Context, id string) (model.Snapshot, error)
	// Select changes the selection and requests its payment authorization
	Select(ctx context.Context, id, packageID string) (model.Snapshot, error)
	// Clear drops the selection and any authorization held for it
	Clear(ctx context.Context, id string) (model.Snapshot, error)
	Authorize(ctx context.Context, id string) (model.Snapshot, error)
	Submit(ctx context.Context, id string, card model.CardInput) (model.Snapshot, error)
	Finalize(ctx context.Context, id string) (model.Snapshot, error)
	Close(ctx context.Context, id string) (model.Snapshot, error)
	// CloseIdle closes dialogues untouched for longer than maxIdle and returns how many
	CloseIdle(ctx context.Context, maxIdle time.Duration) (int, error)
}

// ReconciliationService handles payments that were captured but never credited
type ReconciliationService interface {
	// ProcessUnreconciled reports credit_failed journal rows and, when enabled, retries crediting them
	ProcessUnreconciled(ctx context.Context) error
}
