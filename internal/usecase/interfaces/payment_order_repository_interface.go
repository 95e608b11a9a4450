package interfaces

import (
	"context"
	"encoding/json"
	"time"

	"fellowship_escrow/internal/domain/entities"
)

// PaymentOrderPatch lists the optional fields written along with a status
// change. Empty values are left untouched.
type PaymentOrderPatch struct {
	ProviderRef        string
	CheckoutURL        string
	RoomID             string
	FailureReason      string
	ProviderPayloadRaw json.RawMessage
}

type IPaymentOrderRepository interface {
	Create(ctx context.Context, o entities.PaymentOrder) (entities.PaymentOrder, error)
	GetByID(ctx context.Context, id string) (entities.PaymentOrder, error)
	ListByProposalID(ctx context.Context, proposalID string) ([]entities.PaymentOrder, error)
	// Transition moves the order to `to` if its current status is one of
	// `from`. ok=false means the order was in another status.
	Transition(ctx context.Context, id string, from []entities.PaymentOrderStatus, to entities.PaymentOrderStatus, patch PaymentOrderPatch, at time.Time) (entities.PaymentOrder, bool, error)
}
