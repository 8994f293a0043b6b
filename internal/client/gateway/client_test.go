package gateway

import (
	"coin-purchase/internal/config"
	"coin-purchase/internal/model"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var buyer = model.BuyerIdentity{DisplayName: "Ada Lovelace", Email: "ada@example.com"}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(config.GatewayConfig{URL: srv.URL, PublishableKey: "pk_test_1", Timeout: 2 * time.Second}, zerolog.Nop())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestConfirmCardPayment_Succeeded(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payment_intents/pi_123/confirm", r.URL.Path)
		assert.Equal(t, "Bearer pk_test_1", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "pi_123_secret_abc", r.PostForm.Get("client_secret"))
		assert.Equal(t, "card", r.PostForm.Get("payment_method_data[type]"))
		assert.Equal(t, "tok_visa", r.PostForm.Get("payment_method_data[card][token]"))
		assert.Equal(t, "Ada Lovelace", r.PostForm.Get("payment_method_data[billing_details][name]"))
		assert.Equal(t, "ada@example.com", r.PostForm.Get("payment_method_data[billing_details][email]"))
		writeJSON(w, http.StatusOK, map[string]string{"id": "pi_123", "status": "succeeded"})
	})

	intent, gwErr, err := client.ConfirmCardPayment(context.Background(), "pi_123_secret_abc", model.CardInput{Token: "tok_visa"}, buyer)

	require.NoError(t, err)
	assert.Nil(t, gwErr)
	require.NotNil(t, intent)
	assert.Equal(t, "pi_123", intent.ID)
	assert.Equal(t, "succeeded", intent.Status)
}

func TestConfirmCardPayment_OtherStatusIsPassedThrough(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"id": "pi_123", "status": "requires_action"})
	})

	intent, gwErr, err := client.ConfirmCardPayment(context.Background(), "pi_123_secret_abc", model.CardInput{Token: "tok_visa"}, buyer)

	require.NoError(t, err)
	assert.Nil(t, gwErr)
	assert.Equal(t, "requires_action", intent.Status)
}

func TestConfirmCardPayment_Declined(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusPaymentRequired, map[string]any{
			"error": map[string]string{
				"type":    "card_error",
				"code":    "card_declined",
				"message": "Your card was declined.",
			},
		})
	})

	intent, gwErr, err := client.ConfirmCardPayment(context.Background(), "pi_123_secret_abc", model.CardInput{Token: "tok_chargeDeclined"}, buyer)

	require.NoError(t, err)
	assert.Nil(t, intent)
	require.NotNil(t, gwErr)
	assert.Equal(t, "Your card was declined.", gwErr.Message)
	assert.Equal(t, "card_declined", gwErr.Code)
}

func TestConfirmCardPayment_ServerErrorIsTransportFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error": map[string]string{"message": "internal"},
		})
	})

	intent, gwErr, err := client.ConfirmCardPayment(context.Background(), "pi_123_secret_abc", model.CardInput{Token: "tok_visa"}, buyer)

	require.Error(t, err)
	assert.Nil(t, intent)
	assert.Nil(t, gwErr)
	assert.Contains(t, err.Error(), "500")
}

func TestConfirmCardPayment_MalformedSecret(t *testing.T) {
	client := New(config.GatewayConfig{URL: "http://127.0.0.1:1"}, zerolog.Nop())

	_, _, err := client.ConfirmCardPayment(context.Background(), "not-a-secret", model.CardInput{Token: "tok_visa"}, buyer)

	assert.ErrorIs(t, err, ErrMalformedClientSecret)
}

func TestIntentID(t *testing.T) {
	tests := []struct {
		secret  string
		want    string
		wantErr bool
	}{
		{secret: "pi_3Mtw_secret_YrKJ", want: "pi_3Mtw"},
		{secret: "pi_pro_secret_test", want: "pi_pro"},
		{secret: "_secret_x", wantErr: true},
		{secret: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := IntentID(tt.secret)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrMalformedClientSecret, tt.secret)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
