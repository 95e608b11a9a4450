package request

import (
	"strings"
	"time"

	"fellowship_escrow/internal/domain/entities"
	"fellowship_escrow/internal/usecase"
)

// PostChallengeRequest is the body of POST /v1/challenges. Price is in the
// currency's minor unit (cents).
type PostChallengeRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Price       int64     `json:"price" binding:"required"`
	Currency    string    `json:"currency"`
	Deadline    time.Time `json:"deadline" binding:"required"`
}

func (r PostChallengeRequest) ToCommand(corporateID string) usecase.PostChallengeCommand {
	return usecase.PostChallengeCommand{
		CorporateID: corporateID,
		Title:       strings.TrimSpace(r.Title),
		Description: strings.TrimSpace(r.Description),
		Price:       r.Price,
		Currency:    strings.ToUpper(strings.TrimSpace(r.Currency)),
		Deadline:    r.Deadline.UTC(),
	}
}

type SubmitProposalRequest struct {
	CoverLetter string `json:"cover_letter" binding:"required"`
}

// SelectProposalRequest carries the amount the company agrees to hold in
// escrow; it must equal the challenge price.
type SelectProposalRequest struct {
	Amount int64 `json:"amount" binding:"required"`
}

func (r SelectProposalRequest) ToCommand(challengeID, proposalID, actorID string) usecase.InitiateEscrowCommand {
	return usecase.InitiateEscrowCommand{
		ChallengeID: challengeID,
		ProposalID:  proposalID,
		Amount:      r.Amount,
		ActorID:     actorID,
	}
}

type AttachmentRequest struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}

// SendMessageRequest is shared by POST /messages and the websocket "message"
// event. ID is optional (a UUID or a numeric id); resending the same id is a
// no-op.
type SendMessageRequest struct {
	ID         string             `json:"id" binding:"omitempty,max=36"`
	Type       string             `json:"type"`
	Content    string             `json:"content"`
	Attachment *AttachmentRequest `json:"attachment,omitempty"`
}

func (r SendMessageRequest) ToCommand(roomID, senderID string) usecase.SendMessageCommand {
	cmd := usecase.SendMessageCommand{
		RoomID:    roomID,
		SenderID:  senderID,
		MessageID: strings.TrimSpace(r.ID),
		Type:      entities.MessageType(strings.ToLower(strings.TrimSpace(r.Type))),
		Content:   r.Content,
	}
	if r.Attachment != nil {
		cmd.Attachment = &entities.Attachment{
			URL:  strings.TrimSpace(r.Attachment.URL),
			Name: strings.TrimSpace(r.Attachment.Name),
		}
	}
	return cmd
}

// TypingRequest is the payload of the websocket "typing" event.
type TypingRequest struct {
	IsTyping bool `json:"is_typing"`
}
