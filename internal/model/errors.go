package model

import "errors"

var (
	ErrPackageNotFound    = errors.New("coin package not found")
	ErrNoSelection        = errors.New("no coin package selected")
	ErrDialogueNotFound   = errors.New("purchase dialogue not found")
	ErrDialogueClosed     = errors.New("purchase dialogue closed")
	ErrAttemptAbandoned   = errors.New("purchase attempt abandoned")
	ErrNotReady           = errors.New("payment authorization not ready")
	ErrSubmitInFlight     = errors.New("payment confirmation already in progress")
	ErrFinalizeInFlight   = errors.New("purchase finalization already in progress")
	ErrAlreadySucceeded   = errors.New("payment already succeeded")
	ErrCardIncomplete     = errors.New("card details incomplete")
	ErrGatewayUnavailable = errors.New("payment gateway not configured")
	ErrNothingToFinalize  = errors.New("no successful payment to finalize")
	ErrCreditNotFound     = errors.New("credit record not found")
	ErrInvalidBuyer       = errors.New("invalid buyer identity")

	ErrAuthorizationFailed    = errors.New("payment authorization failed")
	ErrGatewayDeclined        = errors.New("payment declined by gateway")
	ErrGatewayAmbiguousStatus = errors.New("payment not completed by gateway")
	ErrGatewayUnreachable     = errors.New("payment gateway unreachable")
	ErrFinalizeFailed         = errors.New("payment captured but balance update failed")
)
