package entities

import (
	"time"

	"github.com/google/uuid"
)

type ProposalStatus string

const (
	ProposalStatusPending        ProposalStatus = "pending"
	ProposalStatusPaymentPending ProposalStatus = "payment_pending"
	ProposalStatusSelected       ProposalStatus = "selected"
	ProposalStatusRejected       ProposalStatus = "rejected"
)

// IsFinal reports whether the proposal can no longer change.
func (s ProposalStatus) IsFinal() bool {
	return s == ProposalStatusSelected || s == ProposalStatusRejected
}

// IsOpen reports whether the proposal is still competing for the award.
func (s ProposalStatus) IsOpen() bool {
	return s == ProposalStatusPending || s == ProposalStatusPaymentPending
}

// Proposal is a student's bid on a Challenge.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (challenge_id-index): challenge_id, created_at
//   - GSI2 (status-index): status, payment_started_at
//
// SelectionToken and PaymentStartedAt are only set while the proposal is
// payment_pending.
type Proposal struct {
	ID               string         `json:"id"`
	ChallengeID      string         `json:"challenge_id"`
	StudentID        string         `json:"student_id"`
	CoverLetter      string         `json:"cover_letter"`
	Status           ProposalStatus `json:"status"`
	SelectionToken   string         `json:"-"`
	PaymentStartedAt *time.Time     `json:"payment_started_at,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

var proposalNamespace = uuid.MustParse("0b6e4d2a-5f7c-4c1e-8a51-3e2f9d7b6c44")

// ProposalIDFor derives the proposal id from (challenge, student) so that a
// conditional put rejects a second bid by the same student.
func ProposalIDFor(challengeID, studentID string) string {
	return uuid.NewSHA1(proposalNamespace, []byte(challengeID+"/"+studentID)).String()
}
