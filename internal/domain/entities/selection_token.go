package entities

import (
	"encoding/base64"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrMalformedSelectionToken = errors.New("malformed selection token")

// SelectionToken correlates an in-flight selection with its later payment
// confirmation or cancellation. Callers treat the encoded form as opaque.
type SelectionToken struct {
	ChallengeID string
	ProposalID  string
	Nonce       string
}

func NewSelectionToken(challengeID, proposalID string) SelectionToken {
	return SelectionToken{ChallengeID: challengeID, ProposalID: proposalID, Nonce: uuid.NewString()}
}

func (t SelectionToken) String() string {
	raw := t.ChallengeID + "\x00" + t.ProposalID + "\x00" + t.Nonce
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func (t SelectionToken) IsZero() bool {
	return t.Nonce == ""
}

func ParseSelectionToken(s string) (SelectionToken, error) {
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return SelectionToken{}, ErrMalformedSelectionToken
	}
	parts := strings.Split(string(raw), "\x00")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return SelectionToken{}, ErrMalformedSelectionToken
	}
	return SelectionToken{ChallengeID: parts[0], ProposalID: parts[1], Nonce: parts[2]}, nil
}
