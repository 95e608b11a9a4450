package interfaces

import (
	"context"
	"encoding/json"
)

// CheckoutOrder is what the coordinator asks the gateway to charge.
type CheckoutOrder struct {
	Reference   string
	Title       string
	Amount      int64
	Currency    string
	ChallengeID string
	ProposalID  string
}

// CheckoutSession is the gateway's answer to CreateOrder.
type CheckoutSession struct {
	ProviderRef string
	CheckoutURL string
	Raw         json.RawMessage
}

// GatewayCallback is the raw notification as received over HTTP.
type GatewayCallback struct {
	Headers map[string]string
	Query   map[string]string
	Body    json.RawMessage
}

// VerifiedPayment is only produced after the callback's authenticity proof
// was checked against the gateway.
type VerifiedPayment struct {
	OrderReference    string
	Success           bool
	Amount            int64
	Currency          string
	ProviderPaymentID string
	ProviderStatus    string
	Raw               json.RawMessage
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
type IPaymentGateway interface {
	CreateOrder(ctx context.Context, order CheckoutOrder) (CheckoutSession, error)
	VerifyCallback(ctx context.Context, cb GatewayCallback) (VerifiedPayment, error)
}
