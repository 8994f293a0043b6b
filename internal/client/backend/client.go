package backend

import (
	"coin-purchase/internal/config"
	"coin-purchase/internal/model"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

const (
	createPaymentIntentPath = "/create-payment-intent"
	recordPurchasePath      = "/payments"
)

var errEmptyClientSecret = errors.New("backend returned an empty client secret")

// Client talks to the marketplace backend: it mints payment client secrets
// and credits coins once a payment is captured.
type Client struct {
	http   *resty.Client
	logger zerolog.Logger
}

func New(cfg config.BackendConfig, logger zerolog.Logger) *Client {
	http := resty.New().
		SetBaseURL(strings.TrimRight(cfg.URL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")
	if cfg.APIToken != "" {
		http.SetAuthToken(cfg.APIToken)
	}
	return &Client{
		http:   http,
		logger: logger.With().Str("component", "backend_client").Logger(),
	}
}

type createPaymentIntentRequest struct {
	CoinsPurchased int     `json:"coinsPurchased"`
	PackageID      string  `json:"packageId"`
	Price          float64 `json:"price"`
}

type createPaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// CreatePaymentIntent requests a client secret for pkg. Any non-2xx response is an error.
func (c *Client) CreatePaymentIntent(ctx context.Context, pkg model.CoinPackage) (string, error) {
	var out createPaymentIntentResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(createPaymentIntentRequest{
			CoinsPurchased: pkg.TotalCoins(),
			PackageID:      pkg.ID,
			Price:          pkg.PriceUSD.InexactFloat64(),
		}).
		SetResult(&out).
		Post(createPaymentIntentPath)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("create payment intent: %w", statusError(resp))
	}
	if out.ClientSecret == "" {
		return "", errEmptyClientSecret
	}

	c.logger.Debug().Str("package_id", pkg.ID).Msg("payment intent created")
	return out.ClientSecret, nil
}

type recordPurchaseRequest struct {
	TransactionID string  `json:"transactionId"`
	PackageID     string  `json:"packageId"`
	CoinsCredited int     `json:"coinsCredited"`
	AmountUSD     float64 `json:"amountUsd"`
	BuyerEmail    string  `json:"buyerEmail"`
	BuyerName     string  `json:"buyerName"`
}

// RecordPurchase asks the backend to credit the buyer and record the
// transaction. The transaction id is sent as idempotency key so a retried
// call can be deduplicated by a backend that honours it.
func (c *Client) RecordPurchase(ctx context.Context, credit model.PurchaseCredit) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Idempotency-Key", credit.TransactionID).
		SetBody(recordPurchaseRequest{
			TransactionID: credit.TransactionID,
			PackageID:     credit.PackageID,
			CoinsCredited: credit.CoinsCredited,
			AmountUSD:     credit.AmountUSD.InexactFloat64(),
			BuyerEmail:    credit.Buyer.Email,
			BuyerName:     credit.Buyer.DisplayName,
		}).
		Post(recordPurchasePath)
	if err != nil {
		return fmt.Errorf("record purchase: %w", err)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("record purchase: %w", statusError(resp))
	}

	c.logger.Debug().Str("transaction_id", credit.TransactionID).Msg("purchase recorded")
	return nil
}

func statusError(resp *resty.Response) error {
	body := strings.TrimSpace(resp.String())
	if len(body) > 200 {
		body = body[:200]
	}
	if body == "" {
		return fmt.Errorf("backend returned %d", resp.StatusCode())
	}
	return fmt.Errorf("backend returned %d: %s", resp.StatusCode(), body)
}
