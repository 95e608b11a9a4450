package request

import (
	"testing"
	"time"

	"fellowship_escrow/internal/domain/entities"
)

func TestPostChallengeRequest_ToCommand(t *testing.T) {
	deadline := time.Date(2027, 1, 2, 3, 4, 5, 0, time.FixedZone("BRT", -3*3600))
	r := PostChallengeRequest{Title: "  Build a parser ", Description: " d ", Price: 5000, Currency: " brl ", Deadline: deadline}

	cmd := r.ToCommand("corp-1")
	if cmd.CorporateID != "corp-1" || cmd.Title != "Build a parser" || cmd.Description != "d" {
		t.Fatalf("unexpected command: %+v", cmd)
	}
	if cmd.Currency != "BRL" {
		t.Fatalf("expected BRL, got %q", cmd.Currency)
	}
	if cmd.Deadline.Location() != time.UTC || !cmd.Deadline.Equal(deadline) {
		t.Fatalf("expected deadline in UTC, got %v", cmd.Deadline)
	}
}

func TestSendMessageRequest_ToCommand(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		cmd := SendMessageRequest{ID: " m-1 ", Type: "TEXT", Content: "hi"}.ToCommand("room-1", "stu-1")
		if cmd.MessageID != "m-1" || cmd.Type != entities.MessageTypeText || cmd.Attachment != nil {
			t.Fatalf("unexpected command: %+v", cmd)
		}
	})

	t.Run("file", func(t *testing.T) {
		cmd := SendMessageRequest{Type: "file", Attachment: &AttachmentRequest{URL: " https://x/y.pdf ", Name: "y.pdf"}}.ToCommand("room-1", "stu-1")
		if cmd.Type != entities.MessageTypeFile || cmd.Attachment == nil || cmd.Attachment.URL != "https://x/y.pdf" {
			t.Fatalf("unexpected command: %+v", cmd)
		}
	})

	t.Run("empty type is left to the usecase", func(t *testing.T) {
		cmd := SendMessageRequest{Content: "hi"}.ToCommand("room-1", "stu-1")
		if cmd.Type != "" {
			t.Fatalf("expected empty type, got %q", cmd.Type)
		}
	})
}

func TestSelectProposalRequest_ToCommand(t *testing.T) {
	cmd := SelectProposalRequest{Amount: 5000}.ToCommand("ch-1", "p-1", "corp-1")
	if cmd.ChallengeID != "ch-1" || cmd.ProposalID != "p-1" || cmd.Amount != 5000 || cmd.ActorID != "corp-1" {
		t.Fatalf("unexpected command: %+v", cmd)
	}
}
