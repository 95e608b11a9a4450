package interfaces

import (
	"context"
	"time"

	"fellowship_escrow/internal/domain/entities"
)

// IProposalRepository abstracts persistence for Proposal. Creation goes
// through IMarketplaceTransactor.SubmitProposal because it must be checked
// against the challenge state.

type IProposalRepository interface {
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	ListByChallengeID(ctx context.Context, challengeID string) ([]entities.Proposal, error)
	// MarkPaymentPending moves pending -> payment_pending and stamps token.
	MarkPaymentPending(ctx context.Context, id, token string, at time.Time) (ok bool, err error)
	// RevertPaymentPending moves payment_pending -> pending when token matches.
	RevertPaymentPending(ctx context.Context, id, token string, at time.Time) (ok bool, err error)
	ListPaymentPendingBefore(ctx context.Context, cutoff time.Time) ([]entities.Proposal, error)
}
