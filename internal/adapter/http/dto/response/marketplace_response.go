package response

import (
	"time"

	"fellowship_escrow/internal/domain/entities"
	"fellowship_escrow/internal/usecase"
)

type ChallengeResponse struct {
	ID             string    `json:"id"`
	CorporateID    string    `json:"corporate_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Price          int64     `json:"price"`
	Currency       string    `json:"currency"`
	Status         string    `json:"status"`
	Deadline       time.Time `json:"deadline"`
	ProposalCount  int       `json:"proposal_count"`
	SelectionState string    `json:"selection_state"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// FromChallenge hides the lock token; clients only learn whether a
// selection is in flight.
func FromChallenge(c entities.Challenge) ChallengeResponse {
	state := "none"
	if c.Selection != nil {
		state = "in_flight"
	}
	return ChallengeResponse{
		ID:             c.ID,
		CorporateID:    c.CorporateID,
		Title:          c.Title,
		Description:    c.Description,
		Price:          c.Price,
		Currency:       c.Currency,
		Status:         string(c.Status),
		Deadline:       c.Deadline,
		ProposalCount:  c.ProposalCount,
		SelectionState: state,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

type ProposalResponse struct {
	ID          string    `json:"id"`
	ChallengeID string    `json:"challenge_id"`
	StudentID   string    `json:"student_id"`
	CoverLetter string    `json:"cover_letter"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromProposal(p entities.Proposal) ProposalResponse {
	return ProposalResponse{
		ID:          p.ID,
		ChallengeID: p.ChallengeID,
		StudentID:   p.StudentID,
		CoverLetter: p.CoverLetter,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func FromProposals(ps []entities.Proposal) []ProposalResponse {
	out := make([]ProposalResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProposal(p))
	}
	return out
}

type PaymentOrderResponse struct {
	OrderRef      string    `json:"order_ref"`
	ChallengeID   string    `json:"challenge_id"`
	ProposalID    string    `json:"proposal_id"`
	Amount        int64     `json:"amount"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	CheckoutURL   string    `json:"checkout_url,omitempty"`
	RoomID        string    `json:"room_id,omitempty"`
	FailureReason string    `json:"failure_reason,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromPaymentOrder(o entities.PaymentOrder) PaymentOrderResponse {
	return PaymentOrderResponse{
		OrderRef:      o.ID,
		ChallengeID:   o.ChallengeID,
		ProposalID:    o.ProposalID,
		Amount:        o.Amount,
		Currency:      o.Currency,
		Status:        string(o.Status),
		CheckoutURL:   o.CheckoutURL,
		RoomID:        o.RoomID,
		FailureReason: o.FailureReason,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

type RoomResponse struct {
	ID           string     `json:"id"`
	ChallengeID  string     `json:"challenge_id"`
	ProposalID   string     `json:"proposal_id"`
	StudentID    string     `json:"student_id"`
	CorporateID  string     `json:"corporate_id"`
	EscrowAmount int64      `json:"escrow_amount"`
	Currency     string     `json:"currency"`
	EscrowStatus string     `json:"escrow_status"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

func FromRoom(r entities.ProjectRoom) RoomResponse {
	return RoomResponse{
		ID:           r.ID,
		ChallengeID:  r.ChallengeID,
		ProposalID:   r.ProposalID,
		StudentID:    r.StudentID,
		CorporateID:  r.CorporateID,
		EscrowAmount: r.EscrowAmount,
		Currency:     r.Currency,
		EscrowStatus: string(r.EscrowStatus),
		Status:       string(r.Status),
		CreatedAt:    r.CreatedAt,
		CompletedAt:  r.CompletedAt,
	}
}

type RoomViewResponse struct {
	Room        RoomResponse `json:"room"`
	Role        string       `json:"role"`
	OnlineUsers []string     `json:"online_users"`
	TypingUsers []string     `json:"typing_users"`
}

func FromRoomView(v usecase.RoomView) RoomViewResponse {
	return RoomViewResponse{
		Room:        FromRoom(v.Room),
		Role:        string(v.Role),
		OnlineUsers: nonNil(v.OnlineUsers),
		TypingUsers: nonNil(v.TypingUsers),
	}
}

type AttachmentResponse struct {
	URL  string `json:"url"`
	Name string `json:"name,omitempty"`
}

type MessageResponse struct {
	ID         string              `json:"id"`
	RoomID     string              `json:"room_id"`
	SenderID   string              `json:"sender_id"`
	SenderRole string              `json:"sender_role"`
	Type       string              `json:"type"`
	Content    string              `json:"content"`
	Attachment *AttachmentResponse `json:"attachment,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
}

func FromMessage(m entities.RoomMessage) MessageResponse {
	res := MessageResponse{
		ID:         m.ID,
		RoomID:     m.RoomID,
		SenderID:   m.SenderID,
		SenderRole: string(m.SenderRole),
		Type:       string(m.Type),
		Content:    m.Content,
		CreatedAt:  m.CreatedAt,
	}
	if m.Attachment != nil {
		res.Attachment = &AttachmentResponse{URL: m.Attachment.URL, Name: m.Attachment.Name}
	}
	return res
}

func FromMessages(ms []entities.RoomMessage) []MessageResponse {
	out := make([]MessageResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromMessage(m))
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
