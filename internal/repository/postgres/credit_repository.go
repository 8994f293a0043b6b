package postgres

import (
	"coin-purchase/internal/model"
	"coin-purchase/internal/repository"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.CreditRepository = (*CreditRepositoryImpl)(nil)

const creditColumns = `id, transaction_id, dialogue_id, buyer_email, buyer_name, package_id,
        coins_credited, amount_usd, status, last_error, attempts, created_at, updated_at`

// CreditRepositoryImpl is the PostgreSQL implementation of CreditRepository
type CreditRepositoryImpl struct {
	*TransactionManager
}

func NewCreditRepository(pool *pgxpool.Pool) repository.CreditRepository {
	return &CreditRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

// RecordCaptured inserts a journal row; a duplicate transaction id is not an error
func (r *CreditRepositoryImpl) RecordCaptured(ctx context.Context, rec *model.CreditRecord) error {
	query := `
        INSERT INTO credit_journal (transaction_id, dialogue_id, buyer_email, buyer_name, package_id, coins_credited, amount_usd, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		rec.TransactionID, rec.DialogueID, rec.BuyerEmail, rec.BuyerName, rec.PackageID,
		rec.CoinsCredited, rec.AmountUSD, rec.Status.String(),
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil
		}
		return fmt.Errorf("failed to insert credit record: %w", err)
	}
	return nil
}

// MarkCredited moves a captured or failed row to credited
func (r *CreditRepositoryImpl) MarkCredited(ctx context.Context, transactionID string) error {
	query := `
        UPDATE credit_journal
        SET status = $1,
            last_error = NULL,
            attempts = attempts + 1,
            updated_at = NOW()
        WHERE transaction_id = $2
          AND status IN ($3, $4)`

	tag, err := r.pool.Exec(ctx, query,
		model.CreditCredited.String(), transactionID, model.CreditCaptured.String(), model.CreditFailed.String())
	if err != nil {
		return fmt.Errorf("failed to mark credit credited: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCreditNotFound
	}
	return nil
}

// MarkCreditFailed moves a captured or failed row to credit_failed
func (r *CreditRepositoryImpl) MarkCreditFailed(ctx context.Context, transactionID, reason string) error {
	query := `
        UPDATE credit_journal
        SET status = $1,
            last_error = $2,
            attempts = attempts + 1,
            updated_at = NOW()
        WHERE transaction_id = $3
          AND status IN ($4, $1)`

	tag, err := r.pool.Exec(ctx, query,
		model.CreditFailed.String(), reason, transactionID, model.CreditCaptured.String())
	if err != nil {
		return fmt.Errorf("failed to mark credit failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCreditNotFound
	}
	return nil
}

// GetCredit retrieves a journal row by transaction id
func (r *CreditRepositoryImpl) GetCredit(ctx context.Context, transactionID string, tx ...pgx.Tx) (*model.CreditRecord, error) {
	query := `SELECT ` + creditColumns + ` FROM credit_journal WHERE transaction_id = $1`

	rec, err := scanCredit(r.executor(tx...).QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCreditNotFound
		}
		return nil, fmt.Errorf("failed to get credit record: %w", err)
	}
	return rec, nil
}

// ListUnreconciled retrieves credit_failed rows and stale captured rows, oldest first
func (r *CreditRepositoryImpl) ListUnreconciled(ctx context.Context, capturedBefore time.Time, limit int) ([]*model.CreditRecord, error) {
	query := `SELECT ` + creditColumns + `
        FROM credit_journal
        WHERE status = $1
           OR (status = $2 AND updated_at < $3)
        ORDER BY updated_at ASC
        LIMIT $4`

	rows, err := r.pool.Query(ctx, query,
		model.CreditFailed.String(), model.CreditCaptured.String(), capturedBefore, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query unreconciled credits: %w", err)
	}
	defer rows.Close()

	var records []*model.CreditRecord
	for rows.Next() {
		rec, err := scanCredit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan credit record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate credit records: %w", err)
	}
	return records, nil
}

// LockForRetry locks a row, skipping it if another worker holds it
func (r *CreditRepositoryImpl) LockForRetry(ctx context.Context, id int64, tx pgx.Tx) (bool, error) {
	query := `SELECT id FROM credit_journal WHERE id = $1 FOR UPDATE SKIP LOCKED`

	var lockedID int64
	err := tx.QueryRow(ctx, query, id).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to lock credit record for retry: %w", err)
	}
	return true, nil
}

// CompleteRetry marks a locked row credited
func (r *CreditRepositoryImpl) CompleteRetry(ctx context.Context, id int64, tx pgx.Tx) error {
	query := `
        UPDATE credit_journal
        SET status = $1,
            last_error = NULL,
            attempts = attempts + 1,
            updated_at = NOW()
        WHERE id = $2`

	if _, err := tx.Exec(ctx, query, model.CreditCredited.String(), id); err != nil {
		return fmt.Errorf("failed to complete credit retry: %w", err)
	}
	return nil
}

// FailRetry records another failed attempt on a locked row
func (r *CreditRepositoryImpl) FailRetry(ctx context.Context, id int64, reason string, tx pgx.Tx) error {
	query := `
        UPDATE credit_journal
        SET status = $1,
            last_error = $2,
            attempts = attempts + 1,
            updated_at = NOW()
        WHERE id = $3`

	if _, err := tx.Exec(ctx, query, model.CreditFailed.String(), reason, id); err != nil {
		return fmt.Errorf("failed to record credit retry failure: %w", err)
	}
	return nil
}

func scanCredit(row pgx.Row) (*model.CreditRecord, error) {
	rec := &model.CreditRecord{}
	err := row.Scan(&rec.ID, &rec.TransactionID, &rec.DialogueID, &rec.BuyerEmail, &rec.BuyerName, &rec.PackageID,
		&rec.CoinsCredited, &rec.AmountUSD, &rec.Status, &rec.LastError, &rec.Attempts, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return rec, nil
}
