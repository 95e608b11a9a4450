package interfaces

import (
	"context"
	"time"

	"fellowship_escrow/internal/domain/entities"
)

// AwardCommit is the all-or-nothing write that awards a challenge: create
// the room, select the winner, reject the siblings, start the challenge and
// drop the selection lock.
type AwardCommit struct {
	Room                entities.ProjectRoom
	ChallengeID         string
	ProposalID          string
	SelectionToken      string
	RejectedProposalIDs []string
	At                  time.Time
}

// EscrowSettlement is the terminal release/dispute write on a room and, for a
// release, its challenge.
type EscrowSettlement struct {
	RoomID      string
	ChallengeID string
	Decision    entities.EscrowDecision
	At          time.Time
}

// IMarketplaceTransactor groups the writes that touch more than one document.
// Each method either applies every write or none; a precondition that no
// longer holds yields ErrConditionFailed.
type IMarketplaceTransactor interface {
	// SubmitProposal stores p and bumps the challenge proposal count, only
	// while the challenge is open and not locked by a selection.
	// Returns ErrAlreadyExists for a duplicate proposal id.
	SubmitProposal(ctx context.Context, p entities.Proposal) error
	CommitAward(ctx context.Context, award AwardCommit) error
	CommitEscrowDecision(ctx context.Context, s EscrowSettlement) error
}
