package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type CoinPackage struct {
	ID         string          `json:"id" example:"pro"`
	Name       string          `json:"name" example:"Pro Bundle"`
	BaseCoins  int             `json:"base_coins" example:"500"`
	BonusCoins int             `json:"bonus_coins" example:"50"`
	PriceUSD   decimal.Decimal `json:"price_usd" swaggertype:"string" example:"20"`
}

// TotalCoins is the amount advertised to the buyer and credited on success.
func (p CoinPackage) TotalCoins() int {
	return p.BaseCoins + p.BonusCoins
}

type BuyerIdentity struct {
	DisplayName string `json:"display_name" binding:"required" example:"Ada Lovelace"`
	Email       string `json:"email" binding:"required,email" example:"ada@example.com"`
}

// PaymentAuthorization is one pending payment attempt issued by the backend.
type PaymentAuthorization struct {
	ClientSecret   string          `json:"-"`
	PackageID      string          `json:"package_id"`
	CoinsPurchased int             `json:"coins_purchased"`
	AmountUSD      decimal.Decimal `json:"amount_usd"`
}

// CardInput is the tokenized card collected by the browser-side gateway SDK.
type CardInput struct {
	Token string `json:"card_token" example:"tok_visa"`
}

// Complete reports whether the gateway SDK considered the card input usable.
func (c CardInput) Complete() bool {
	return c.Token != ""
}

// PaymentIntent is the gateway's view of a confirmed payment.
type PaymentIntent struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// GatewayError is the error object returned by the gateway for a rejected confirmation.
type GatewayError struct {
	Type    string `json:"type,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// Snapshot is the read-only view of a purchase dialogue rendered by the host.
type Snapshot struct {
	ID            string       `json:"id" example:"1f0c6a2e-8d1b-4c57-9a43-6c1b2a7e5d90"`
	State         State        `json:"state" example:"ready"`
	Package       *CoinPackage `json:"package,omitempty"`
	TransactionID string       `json:"transaction_id,omitempty" example:"pi_123"`
	ErrorCode     ErrorCode    `json:"error_code,omitempty"`
	Error         string       `json:"error,omitempty"`
	CanSubmit     bool         `json:"can_submit"`
	Notice        string       `json:"notice,omitempty"`
}

// CreditRecord journals a captured payment until the backend has credited it.
type CreditRecord struct {
	ID            int64           `json:"id"`
	TransactionID string          `json:"transaction_id"`
	DialogueID    string          `json:"dialogue_id"`
	BuyerEmail    string          `json:"buyer_email"`
	BuyerName     string          `json:"buyer_name"`
	PackageID     string          `json:"package_id"`
	CoinsCredited int             `json:"coins_credited"`
	AmountUSD     decimal.Decimal `json:"amount_usd"`
	Status        CreditStatus    `json:"status"`
	LastError     *string         `json:"last_error,omitempty"`
	Attempts      int             `json:"attempts"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Unreconciled reports whether the row still awaits crediting: its crediting
// failed, or it was captured and left untouched since capturedBefore.
func (r *CreditRecord) Unreconciled(capturedBefore time.Time) bool {
	switch r.Status {
	case CreditFailed:
		return true
	case CreditCaptured:
		return r.UpdatedAt.Before(capturedBefore)
	}
	return false
}

// PurchaseCredit is what the backend needs to credit coins for a captured payment.
type PurchaseCredit struct {
	TransactionID string
	PackageID     string
	CoinsCredited int
	AmountUSD     decimal.Decimal
	Buyer         BuyerIdentity
}

type SelectPackageRequest struct {
	PackageID string `json:"package_id" binding:"required" example:"pro"`
}

type PackageListResponse struct {
	Packages []CoinPackage `json:"packages"`
}

type ErrorResponse struct {
	Error    string    `json:"error" example:"payment authorization not ready"`
	Code     string    `json:"code,omitempty" example:"NOT_READY"`
	Details  string    `json:"details,omitempty"`
	Purchase *Snapshot `json:"purchase,omitempty"`
}
