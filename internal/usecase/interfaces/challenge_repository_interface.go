package interfaces

import (
	"context"
	"time"

	"fellowship_escrow/internal/domain/entities"
)

// IChallengeRepository abstracts persistence for Challenge.
//
// Lookups return a zero value (empty ID) when the item does not exist.
// Conditional writes report a lost condition with ok=false, not an error.

type IChallengeRepository interface {
	Create(ctx context.Context, c entities.Challenge) (entities.Challenge, error)
	GetByID(ctx context.Context, id string) (entities.Challenge, error)
	// AcquireSelection sets the selection lock if the challenge is open and
	// unlocked.
	AcquireSelection(ctx context.Context, id string, lock entities.SelectionLock) (ok bool, err error)
	// ReleaseSelection removes the lock only if it still carries token.
	ReleaseSelection(ctx context.Context, id, token string) (ok bool, err error)
	// Cancel moves an open, unlocked challenge to cancelled.
	Cancel(ctx context.Context, id string, at time.Time) (entities.Challenge, bool, error)
	ListWithSelectionBefore(ctx context.Context, cutoff time.Time) ([]entities.Challenge, error)
}
