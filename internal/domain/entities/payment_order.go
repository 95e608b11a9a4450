package entities

import (
	"encoding/json"
	"time"
)

// PaymentOrderStatus tracks one escrow payment attempt.
//
//   - created: checkout requested, selection lock held
//   - confirmed: verified callback, room created
//   - cancelled: payer abandoned checkout
//   - failed: gateway call or verification failed
//   - expired: reverted by the payment_pending sweep
//   - refund_required: money arrived after the selection was reverted

type PaymentOrderStatus string

const (
	PaymentOrderStatusCreated        PaymentOrderStatus = "created"
	PaymentOrderStatusConfirmed      PaymentOrderStatus = "confirmed"
	PaymentOrderStatusCancelled      PaymentOrderStatus = "cancelled"
	PaymentOrderStatusFailed         PaymentOrderStatus = "failed"
	PaymentOrderStatusExpired        PaymentOrderStatus = "expired"
	PaymentOrderStatusRefundRequired PaymentOrderStatus = "refund_required"
)

// PaymentOrder is the idempotency record of an escrow payment. Its ID is the
// order reference handed to the gateway and echoed back in callbacks.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (proposal_id-index): proposal_id
type PaymentOrder struct {
	ID             string             `json:"id"`
	ChallengeID    string             `json:"challenge_id"`
	ProposalID     string             `json:"proposal_id"`
	SelectionToken string             `json:"selection_token"`
	Amount         int64              `json:"amount"`
	Currency       string             `json:"currency"`
	Status         PaymentOrderStatus `json:"status"`
	ProviderRef    string             `json:"provider_ref,omitempty"`
	CheckoutURL    string             `json:"checkout_url,omitempty"`
	RoomID         string             `json:"room_id,omitempty"`
	FailureReason  string             `json:"failure_reason,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`

	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
}
