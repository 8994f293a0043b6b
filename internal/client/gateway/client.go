package gateway

import (
	"coin-purchase/internal/config"
	"coin-purchase/internal/model"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

const confirmPath = "/v1/payment_intents/{id}/confirm"

var ErrMalformedClientSecret = errors.New("malformed client secret")

// Client confirms card payments against a Stripe-compatible gateway using
// only a publishable key and the per-payment client secret.
type Client struct {
	http   *resty.Client
	logger zerolog.Logger
}

func New(cfg config.GatewayConfig, logger zerolog.Logger) *Client {
	c := resty.New().
		SetBaseURL(strings.TrimRight(cfg.URL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")
	if cfg.PublishableKey != "" {
		c.SetAuthToken(cfg.PublishableKey)
	}
	return &Client{
		http:   c,
		logger: logger.With().Str("component", "gateway_client").Logger(),
	}
}

type errorEnvelope struct {
	Error model.GatewayError `json:"error"`
}

// ConfirmCardPayment confirms the payment intent behind clientSecret with
// the tokenized card and billing details. A 4xx answer carrying an error
// object is returned as *model.GatewayError; anything else that is not a
// 2xx is a transport-level error.
func (c *Client) ConfirmCardPayment(ctx context.Context, clientSecret string, card model.CardInput, buyer model.BuyerIdentity) (*model.PaymentIntent, *model.GatewayError, error) {
	intentID, err := IntentID(clientSecret)
	if err != nil {
		return nil, nil, err
	}

	var (
		intent  model.PaymentIntent
		failure errorEnvelope
	)
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", intentID).
		SetFormData(map[string]string{
			"client_secret":                               clientSecret,
			"payment_method_data[type]":                   "card",
			"payment_method_data[card][token]":            card.Token,
			"payment_method_data[billing_details][name]":  buyer.DisplayName,
			"payment_method_data[billing_details][email]": buyer.Email,
		}).
		SetResult(&intent).
		SetError(&failure).
		Post(confirmPath)
	if err != nil {
		return nil, nil, fmt.Errorf("confirm payment: %w", err)
	}

	if resp.IsSuccess() {
		c.logger.Debug().Str("intent_id", intent.ID).Str("status", intent.Status).Msg("payment intent confirmed")
		return &intent, nil, nil
	}

	status := resp.StatusCode()
	if status >= http.StatusBadRequest && status < http.StatusInternalServerError && failure.Error.Message != "" {
		c.logger.Debug().Str("intent_id", intentID).Str("code", failure.Error.Code).Msg("payment rejected by gateway")
		return nil, &failure.Error, nil
	}

	return nil, nil, fmt.Errorf("confirm payment: gateway returned %d", status)
}

// IntentID extracts the payment intent id from a client secret of the form
// "<intent id>_secret_<random>".
func IntentID(clientSecret string) (string, error) {
	i := strings.Index(clientSecret, "_secret_")
	if i <= 0 {
		return "", ErrMalformedClientSecret
	}
	return clientSecret[:i], nil
}
