package entities

import (
	"time"

	"github.com/google/uuid"
)

type EscrowStatus string

const (
	EscrowStatusHeld     EscrowStatus = "held"
	EscrowStatusReleased EscrowStatus = "released"
	EscrowStatusDisputed EscrowStatus = "disputed"
)

type RoomStatus string

const (
	RoomStatusActive    RoomStatus = "active"
	RoomStatusCompleted RoomStatus = "completed"
)

// EscrowDecision is the company's terminal action on held funds.
type EscrowDecision string

const (
	EscrowDecisionRelease EscrowDecision = "release"
	EscrowDecisionDispute EscrowDecision = "dispute"
)

func (d EscrowDecision) Valid() bool {
	return d == EscrowDecisionRelease || d == EscrowDecisionDispute
}

// ResultingEscrowStatus maps a decision to the escrow status it produces.
func (d EscrowDecision) ResultingEscrowStatus() EscrowStatus {
	if d == EscrowDecisionRelease {
		return EscrowStatusReleased
	}
	return EscrowStatusDisputed
}

// ProjectRoom is the private workspace of an awarded challenge.
//
// Storage model (DynamoDB):
//   - PK: id, derived from challenge_id (see RoomIDForChallenge)
//
// The room id is a name-based UUID of the challenge id, so a conditional put
// on the PK is enough to guarantee one room per challenge.
type ProjectRoom struct {
	ID           string       `json:"id"`
	ChallengeID  string       `json:"challenge_id"`
	ProposalID   string       `json:"proposal_id"`
	StudentID    string       `json:"student_id"`
	CorporateID  string       `json:"corporate_id"`
	EscrowAmount int64        `json:"escrow_amount"`
	Currency     string       `json:"currency"`
	EscrowStatus EscrowStatus `json:"escrow_status"`
	Status       RoomStatus   `json:"status"`
	OrderID      string       `json:"order_id"`
	CreatedAt    time.Time    `json:"created_at"`
	CompletedAt  *time.Time   `json:"completed_at,omitempty"`
}

var roomNamespace = uuid.MustParse("6f1c6f1e-3b0b-4f55-9a53-9d1f8f4c2a10")

func RoomIDForChallenge(challengeID string) string {
	return uuid.NewSHA1(roomNamespace, []byte(challengeID)).String()
}

// RoleOf returns the participant role of userID, or "" when the user is not
// part of the room.
func (r ProjectRoom) RoleOf(userID string) ParticipantRole {
	switch userID {
	case "":
		return ""
	case r.StudentID:
		return ParticipantRoleStudent
	case r.CorporateID:
		return ParticipantRoleCorporate
	default:
		return ""
	}
}
