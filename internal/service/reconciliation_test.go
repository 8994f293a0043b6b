package service

import (
	"coin-purchase/internal/model"
	mockpurchase "coin-purchase/mocks/purchase"
	mockrepo "coin-purchase/mocks/repository"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testCapturedGrace = 5 * time.Minute

var reconcileNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

var capturedBefore = reconcileNow.Add(-testCapturedGrace)

func runInTx(ctx context.Context, fn func(pgx.Tx) error) error {
	return fn(nil)
}

type reconcileMocks struct {
	creditRepo *mockrepo.CreditRepository
	dbManager  *mockrepo.DBManager
	recorder   *mockpurchase.PurchaseRecorder
}

func newReconciliationService(t *testing.T, autoRetry bool) (*ReconciliationServiceImpl, reconcileMocks) {
	t.Helper()
	m := reconcileMocks{
		creditRepo: mockrepo.NewCreditRepository(t),
		dbManager:  mockrepo.NewDBManager(t),
		recorder:   mockpurchase.NewPurchaseRecorder(t),
	}
	svc := NewReconciliationService(m.creditRepo, m.dbManager, m.recorder, autoRetry, testCapturedGrace, zerolog.Nop())
	impl := svc.(*ReconciliationServiceImpl)
	impl.now = func() time.Time { return reconcileNow }
	return impl, m
}

func failedCredit(id int64, txID string) *model.CreditRecord {
	reason := "backend returned 503"
	return &model.CreditRecord{
		ID:            id,
		TransactionID: txID,
		DialogueID:    "dlg-1",
		BuyerEmail:    "ada@example.com",
		BuyerName:     "Ada Lovelace",
		PackageID:     "pro",
		CoinsCredited: 550,
		AmountUSD:     decimal.NewFromInt(20),
		Status:        model.CreditFailed,
		LastError:     &reason,
		Attempts:      1,
		UpdatedAt:     reconcileNow.Add(-time.Minute),
	}
}

func staleCaptured(id int64, txID string) *model.CreditRecord {
	rec := failedCredit(id, txID)
	rec.Status = model.CreditCaptured
	rec.LastError = nil
	rec.Attempts = 0
	rec.UpdatedAt = reconcileNow.Add(-time.Hour)
	return rec
}

func TestReconciliationService_ReportOnly(t *testing.T) {
	svc, m := newReconciliationService(t, false)

	ctx := context.Background()
	m.creditRepo.On("ListUnreconciled", ctx, capturedBefore, reconcileBatchSize).
		Return([]*model.CreditRecord{failedCredit(1, "pi_1"), staleCaptured(2, "pi_2")}, nil)

	err := svc.ProcessUnreconciled(ctx)

	assert.NoError(t, err)
	m.dbManager.AssertNotCalled(t, "WithTransaction", mock.Anything, mock.Anything)
	m.recorder.AssertNotCalled(t, "RecordPurchase", mock.Anything, mock.Anything)
}

func TestReconciliationService_NothingToDo(t *testing.T) {
	svc, m := newReconciliationService(t, true)

	ctx := context.Background()
	m.creditRepo.On("ListUnreconciled", ctx, capturedBefore, reconcileBatchSize).Return(nil, nil)

	assert.NoError(t, svc.ProcessUnreconciled(ctx))
}

func TestReconciliationService_AutoRetryCredits(t *testing.T) {
	svc, m := newReconciliationService(t, true)

	ctx := context.Background()
	rec := failedCredit(7, "pi_7")
	m.creditRepo.On("ListUnreconciled", ctx, capturedBefore, reconcileBatchSize).Return([]*model.CreditRecord{rec}, nil)
	m.dbManager.On("WithTransaction", ctx, mock.Anything).Return(runInTx)
	m.creditRepo.On("LockForRetry", ctx, int64(7), mock.Anything).Return(true, nil)
	m.creditRepo.On("GetCredit", ctx, "pi_7", mock.Anything).Return(failedCredit(7, "pi_7"), nil)
	m.recorder.On("RecordPurchase", ctx, model.PurchaseCredit{
		TransactionID: "pi_7",
		PackageID:     "pro",
		CoinsCredited: 550,
		AmountUSD:     decimal.NewFromInt(20),
		Buyer:         model.BuyerIdentity{DisplayName: "Ada Lovelace", Email: "ada@example.com"},
	}).Return(nil)
	m.creditRepo.On("CompleteRetry", ctx, int64(7), mock.Anything).Return(nil)

	err := svc.ProcessUnreconciled(ctx)

	assert.NoError(t, err)
	m.creditRepo.AssertNotCalled(t, "FailRetry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReconciliationService_AutoRetryCreditsStaleCapturedRow(t *testing.T) {
	svc, m := newReconciliationService(t, true)

	ctx := context.Background()
	m.creditRepo.On("ListUnreconciled", ctx, capturedBefore, reconcileBatchSize).
		Return([]*model.CreditRecord{staleCaptured(8, "pi_8")}, nil)
	m.dbManager.On("WithTransaction", ctx, mock.Anything).Return(runInTx)
	m.creditRepo.On("LockForRetry", ctx, int64(8), mock.Anything).Return(true, nil)
	m.creditRepo.On("GetCredit", ctx, "pi_8", mock.Anything).Return(staleCaptured(8, "pi_8"), nil)
	m.recorder.On("RecordPurchase", ctx, mock.AnythingOfType("model.PurchaseCredit")).Return(nil)
	m.creditRepo.On("CompleteRetry", ctx, int64(8), mock.Anything).Return(nil)

	err := svc.ProcessUnreconciled(ctx)

	assert.NoError(t, err)
}

func TestReconciliationService_SkipsRowSettledSinceListing(t *testing.T) {
	svc, m := newReconciliationService(t, true)

	ctx := context.Background()
	settled := staleCaptured(9, "pi_9")
	settled.Status = model.CreditCredited
	m.creditRepo.On("ListUnreconciled", ctx, capturedBefore, reconcileBatchSize).
		Return([]*model.CreditRecord{staleCaptured(9, "pi_9")}, nil)
	m.dbManager.On("WithTransaction", ctx, mock.Anything).Return(runInTx)
	m.creditRepo.On("LockForRetry", ctx, int64(9), mock.Anything).Return(true, nil)
	m.creditRepo.On("GetCredit", ctx, "pi_9", mock.Anything).Return(settled, nil)

	err := svc.ProcessUnreconciled(ctx)

	assert.NoError(t, err)
	m.recorder.AssertNotCalled(t, "RecordPurchase", mock.Anything, mock.Anything)
	m.creditRepo.AssertNotCalled(t, "CompleteRetry", mock.Anything, mock.Anything, mock.Anything)
}

func TestReconciliationService_SkipsCapturedRowTouchedRecently(t *testing.T) {
	svc, m := newReconciliationService(t, true)

	ctx := context.Background()
	fresh := staleCaptured(10, "pi_10")
	fresh.UpdatedAt = reconcileNow.Add(-time.Minute)
	m.creditRepo.On("ListUnreconciled", ctx, capturedBefore, reconcileBatchSize).
		Return([]*model.CreditRecord{staleCaptured(10, "pi_10")}, nil)
	m.dbManager.On("WithTransaction", ctx, mock.Anything).Return(runInTx)
	m.creditRepo.On("LockForRetry", ctx, int64(10), mock.Anything).Return(true, nil)
	m.creditRepo.On("GetCredit", ctx, "pi_10", mock.Anything).Return(fresh, nil)

	err := svc.ProcessUnreconciled(ctx)

	assert.NoError(t, err)
	m.recorder.AssertNotCalled(t, "RecordPurchase", mock.Anything, mock.Anything)
}

func TestReconciliationService_AutoRetryFailureIsRecorded(t *testing.T) {
	svc, m := newReconciliationService(t, true)

	ctx := context.Background()
	m.creditRepo.On("ListUnreconciled", ctx, capturedBefore, reconcileBatchSize).
		Return([]*model.CreditRecord{failedCredit(3, "pi_3")}, nil)
	m.dbManager.On("WithTransaction", ctx, mock.Anything).Return(runInTx)
	m.creditRepo.On("LockForRetry", ctx, int64(3), mock.Anything).Return(true, nil)
	m.creditRepo.On("GetCredit", ctx, "pi_3", mock.Anything).Return(failedCredit(3, "pi_3"), nil)
	m.recorder.On("RecordPurchase", ctx, mock.AnythingOfType("model.PurchaseCredit")).Return(errors.New("backend down"))
	m.creditRepo.On("FailRetry", ctx, int64(3), "backend down", mock.Anything).Return(nil)

	err := svc.ProcessUnreconciled(ctx)

	assert.NoError(t, err)
	m.creditRepo.AssertNotCalled(t, "CompleteRetry", mock.Anything, mock.Anything, mock.Anything)
}

func TestReconciliationService_SkipsRowsLockedElsewhere(t *testing.T) {
	svc, m := newReconciliationService(t, true)

	ctx := context.Background()
	m.creditRepo.On("ListUnreconciled", ctx, capturedBefore, reconcileBatchSize).
		Return([]*model.CreditRecord{failedCredit(4, "pi_4")}, nil)
	m.dbManager.On("WithTransaction", ctx, mock.Anything).Return(runInTx)
	m.creditRepo.On("LockForRetry", ctx, int64(4), mock.Anything).Return(false, nil)

	err := svc.ProcessUnreconciled(ctx)

	assert.NoError(t, err)
	m.creditRepo.AssertNotCalled(t, "GetCredit", mock.Anything, mock.Anything, mock.Anything)
	m.recorder.AssertNotCalled(t, "RecordPurchase", mock.Anything, mock.Anything)
}

func TestReconciliationService_ListError(t *testing.T) {
	svc, m := newReconciliationService(t, true)

	ctx := context.Background()
	m.creditRepo.On("ListUnreconciled", ctx, capturedBefore, reconcileBatchSize).Return(nil, errors.New("connection refused"))

	err := svc.ProcessUnreconciled(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestReconciliationService_StopsOnCancelledContext(t *testing.T) {
	svc, m := newReconciliationService(t, true)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m.creditRepo.On("ListUnreconciled", ctx, capturedBefore, reconcileBatchSize).
		Return([]*model.CreditRecord{failedCredit(5, "pi_5")}, nil)

	err := svc.ProcessUnreconciled(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestCreditRecord_Unreconciled(t *testing.T) {
	tests := []struct {
		name string
		rec  *model.CreditRecord
		want bool
	}{
		{"credit failed", failedCredit(1, "pi_1"), true},
		{"captured past grace", staleCaptured(2, "pi_2"), true},
		{"captured within grace", &model.CreditRecord{Status: model.CreditCaptured, UpdatedAt: reconcileNow}, false},
		{"credited", &model.CreditRecord{Status: model.CreditCredited}, false},
		{"abandoned", &model.CreditRecord{Status: model.CreditAbandoned}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rec.Unreconciled(capturedBefore))
		})
	}
}
