package backend

import (
	"coin-purchase/internal/config"
	"coin-purchase/internal/model"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var proBundle = model.CoinPackage{
	ID:         "pro",
	Name:       "Pro Bundle",
	BaseCoins:  500,
	BonusCoins: 50,
	PriceUSD:   decimal.NewFromInt(20),
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(config.BackendConfig{URL: srv.URL, APIToken: "svc-token", Timeout: 2 * time.Second}, zerolog.Nop())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestCreatePaymentIntent_SendsTotalCoinsAndPrice(t *testing.T) {
	var got map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/create-payment-intent", r.URL.Path)
		assert.Equal(t, "Bearer svc-token", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(w, http.StatusOK, map[string]string{"clientSecret": "pi_1_secret_abc"})
	})

	secret, err := client.CreatePaymentIntent(context.Background(), proBundle)

	require.NoError(t, err)
	assert.Equal(t, "pi_1_secret_abc", secret)
	assert.Equal(t, map[string]any{
		"coinsPurchased": float64(550),
		"packageId":      "pro",
		"price":          float64(20),
	}, got)
}

func TestCreatePaymentIntent_NonSuccessStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "unauthorized access"})
	})

	_, err := client.CreatePaymentIntent(context.Background(), proBundle)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "unauthorized access")
}

func TestCreatePaymentIntent_EmptySecret(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{})
	})

	_, err := client.CreatePaymentIntent(context.Background(), proBundle)

	assert.ErrorIs(t, err, errEmptyClientSecret)
}

func TestCreatePaymentIntent_ContextDeadline(t *testing.T) {
	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.CreatePaymentIntent(ctx, proBundle)

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestRecordPurchase_SendsCreditWithIdempotencyKey(t *testing.T) {
	var got map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payments", r.URL.Path)
		assert.Equal(t, "pi_123", r.Header.Get("Idempotency-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(w, http.StatusCreated, map[string]bool{"acknowledged": true})
	})

	err := client.RecordPurchase(context.Background(), model.PurchaseCredit{
		TransactionID: "pi_123",
		PackageID:     "pro",
		CoinsCredited: 550,
		AmountUSD:     decimal.NewFromInt(20),
		Buyer:         model.BuyerIdentity{DisplayName: "Ada Lovelace", Email: "ada@example.com"},
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"transactionId": "pi_123",
		"packageId":     "pro",
		"coinsCredited": float64(550),
		"amountUsd":     float64(20),
		"buyerEmail":    "ada@example.com",
		"buyerName":     "Ada Lovelace",
	}, got)
}

func TestRecordPurchase_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	err := client.RecordPurchase(context.Background(), model.PurchaseCredit{TransactionID: "pi_123"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
