package model

// State is the phase of a purchase dialogue.
type State string

const (
	StateIdle        State = "idle"
	StateAuthorizing State = "authorizing"
	StateReady       State = "ready"
	StateSubmitting  State = "submitting"
	StateSucceeded   State = "succeeded"
	StateFailed      State = "failed"
	StateCompleted   State = "completed"
	StateClosed      State = "closed"
)

func (s State) String() string {
	return string(s)
}

// Terminal reports whether no further operation is accepted in this state.
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateClosed
}

// ErrorCode classifies the last failure shown to the buyer.
type ErrorCode string

const (
	CodeNone                   ErrorCode = ""
	CodeAuthorizationFailed    ErrorCode = "AUTHORIZATION_FAILED"
	CodeGatewayDeclined        ErrorCode = "GATEWAY_DECLINED"
	CodeGatewayAmbiguousStatus ErrorCode = "GATEWAY_AMBIGUOUS_STATUS"
	CodeGatewayUnreachable     ErrorCode = "GATEWAY_UNREACHABLE"
	CodeCreditFailed           ErrorCode = "CREDIT_FAILED"
)

// CreditStatus tracks a captured payment through crediting.
type CreditStatus string

const (
	CreditCaptured  CreditStatus = "captured"
	CreditCredited  CreditStatus = "credited"
	CreditFailed    CreditStatus = "credit_failed"
	CreditAbandoned CreditStatus = "abandoned"
)

func (s CreditStatus) String() string {
	return string(s)
}

// PaymentStatusSucceeded is the only gateway status that authorizes crediting.
const PaymentStatusSucceeded = "succeeded"
