package repository

import (
	"coin-purchase/internal/model"
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

// DBManager provides database transaction management
type DBManager interface {
	// WithTransaction executes a function within a database transaction
	WithTransaction(ctx context.Context, fn func(pgx.Tx) error) error
}

// CreditRepository journals captured payments and their crediting outcome
type CreditRepository interface {
	// RecordCaptured inserts a journal row; a row for the same transaction id is left as is
	RecordCaptured(ctx context.Context, rec *model.CreditRecord) error

	// MarkCredited records that the backend acknowledged the credit
	MarkCredited(ctx context.Context, transactionID string) error

	// MarkCreditFailed records a failed crediting call and its reason
	MarkCreditFailed(ctx context.Context, transactionID, reason string) error

	// GetCredit retrieves a journal row by transaction id, reading through tx when given
	GetCredit(ctx context.Context, transactionID string, tx ...pgx.Tx) (*model.CreditRecord, error)

	// ListUnreconciled retrieves the oldest rows whose crediting failed, plus
	// captured rows not updated since capturedBefore
	ListUnreconciled(ctx context.Context, capturedBefore time.Time, limit int) ([]*model.CreditRecord, error)

	// LockForRetry locks a row for a crediting retry, skipping rows another worker holds (must be in transaction)
	LockForRetry(ctx context.Context, id int64, tx pgx.Tx) (bool, error)

	// CompleteRetry marks a locked row credited
	CompleteRetry(ctx context.Context, id int64, tx pgx.Tx) error

	// FailRetry moves a locked row to credit_failed, bumps its attempt counter and stores the reason
	FailRetry(ctx context.Context, id int64, reason string, tx pgx.Tx) error
}
