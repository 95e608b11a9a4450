package entities

import "time"

// ChallengeStatus represents the lifecycle of a funded challenge.
//
// Allowed transitions:
//   - open -> in_progress (a proposal was awarded and funds are held)
//   - in_progress -> completed (escrow released)
//   - open -> cancelled (only while no selection is in flight)

type ChallengeStatus string

const (
	ChallengeStatusOpen       ChallengeStatus = "open"
	ChallengeStatusInProgress ChallengeStatus = "in_progress"
	ChallengeStatusCompleted  ChallengeStatus = "completed"
	ChallengeStatusCancelled  ChallengeStatus = "cancelled"
)

func (s ChallengeStatus) CanTransitionTo(next ChallengeStatus) bool {
	switch s {
	case ChallengeStatusOpen:
		return next == ChallengeStatusInProgress || next == ChallengeStatusCancelled
	case ChallengeStatusInProgress:
		return next == ChallengeStatusCompleted
	default:
		return false
	}
}

func (s ChallengeStatus) IsTerminal() bool {
	return s == ChallengeStatusCompleted || s == ChallengeStatusCancelled
}

// SelectionLock marks a challenge whose award is in flight. At most one lock
// exists per challenge; it is written with a conditional update and removed
// either by the award commit or by a revert.
type SelectionLock struct {
	Token      string    `json:"token"`
	ProposalID string    `json:"proposal_id"`
	AcquiredAt time.Time `json:"acquired_at"`
}

// Challenge is a funded task posted by a company.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - Price is an integer amount of minor currency units (cents).
type Challenge struct {
	ID            string          `json:"id"`
	CorporateID   string          `json:"corporate_id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Price         int64           `json:"price"`
	Currency      string          `json:"currency"`
	Status        ChallengeStatus `json:"status"`
	Deadline      time.Time       `json:"deadline"`
	ProposalCount int             `json:"proposal_count"`
	Selection     *SelectionLock  `json:"selection,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
