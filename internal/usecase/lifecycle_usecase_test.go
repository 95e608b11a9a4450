package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"fellowship_escrow/internal/domain/entities"
	"fellowship_escrow/internal/domain/errs"
	"fellowship_escrow/internal/usecase/interfaces"
	mock_interfaces "fellowship_escrow/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type lifecycleMocks struct {
	challenges *mock_interfaces.MockIChallengeRepository
	proposals  *mock_interfaces.MockIProposalRepository
	rooms      *mock_interfaces.MockIProjectRoomRepository
	tx         *mock_interfaces.MockIMarketplaceTransactor
}

func newLifecycleWithMocks(ctrl *gomock.Controller) (*LifecycleUseCase, lifecycleMocks) {
	m := lifecycleMocks{
		challenges: mock_interfaces.NewMockIChallengeRepository(ctrl),
		proposals:  mock_interfaces.NewMockIProposalRepository(ctrl),
		rooms:      mock_interfaces.NewMockIProjectRoomRepository(ctrl),
		tx:         mock_interfaces.NewMockIMarketplaceTransactor(ctrl),
	}
	uc := NewLifecycleUseCase(m.challenges, m.proposals, m.rooms, m.tx, "brl")
	uc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return uc, m
}

func openChallenge() entities.Challenge {
	return entities.Challenge{
		ID:          "ch-1",
		CorporateID: "corp-1",
		Title:       "Build a parser",
		Price:       5000,
		Currency:    "BRL",
		Status:      entities.ChallengeStatusOpen,
		Deadline:    time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestLifecycleUseCase_PostChallenge(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		uc := NewLifecycleUseCase(nil, nil, nil, nil, "")
		future := time.Now().Add(time.Hour)
		cases := []struct {
			name string
			cmd  PostChallengeCommand
			want error
		}{
			{"missing corporate", PostChallengeCommand{Title: "x", Price: 10, Deadline: future}, ErrInvalidCorporateID},
			{"missing title", PostChallengeCommand{CorporateID: "c", Title: "  ", Price: 10, Deadline: future}, ErrInvalidChallengeTitle},
			{"zero price", PostChallengeCommand{CorporateID: "c", Title: "x", Price: 0, Deadline: future}, ErrInvalidPrice},
			{"past deadline", PostChallengeCommand{CorporateID: "c", Title: "x", Price: 10, Deadline: time.Now().Add(-time.Hour)}, ErrInvalidDeadline},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := uc.PostChallenge(context.Background(), tc.cmd)
				if !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})

	t.Run("create success uses default currency", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleWithMocks(ctrl)

		m.challenges.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.Challenge) (entities.Challenge, error) {
			if c.Status != entities.ChallengeStatusOpen || c.Currency != "BRL" || c.ID == "" {
				t.Fatalf("unexpected challenge: %+v", c)
			}
			return c, nil
		})

		got, err := uc.PostChallenge(context.Background(), PostChallengeCommand{
			CorporateID: " corp-1 ",
			Title:       " Build a parser ",
			Price:       5000,
			Deadline:    time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.CorporateID != "corp-1" || got.Title != "Build a parser" {
			t.Fatalf("expected trimmed fields, got %+v", got)
		}
	})
}

func TestLifecycleUseCase_SubmitProposal(t *testing.T) {
	t.Run("duplicate bid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleWithMocks(ctrl)

		m.challenges.EXPECT().GetByID(gomock.Any(), "ch-1").Return(openChallenge(), nil)
		m.tx.EXPECT().SubmitProposal(gomock.Any(), gomock.Any()).Return(interfaces.ErrAlreadyExists)

		_, err := uc.SubmitProposal(context.Background(), "ch-1", "stu-1", "hello")
		if !errors.Is(err, ErrProposalAlreadyExists) {
			t.Fatalf("expected ErrProposalAlreadyExists, got %v", err)
		}
	})

	t.Run("deadline passed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleWithMocks(ctrl)

		c := openChallenge()
		c.Deadline = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		m.challenges.EXPECT().GetByID(gomock.Any(), "ch-1").Return(c, nil)

		_, err := uc.SubmitProposal(context.Background(), "ch-1", "stu-1", "hello")
		if !errors.Is(err, ErrChallengeDeadlinePassed) {
			t.Fatalf("expected ErrChallengeDeadlinePassed, got %v", err)
		}
	})

	t.Run("challenge awarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleWithMocks(ctrl)

		c := openChallenge()
		c.Status = entities.ChallengeStatusInProgress
		m.challenges.EXPECT().GetByID(gomock.Any(), "ch-1").Return(c, nil)

		_, err := uc.SubmitProposal(context.Background(), "ch-1", "stu-1", "hello")
		if !errors.Is(err, ErrChallengeAlreadyAwarded) {
			t.Fatalf("expected ErrChallengeAlreadyAwarded, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleWithMocks(ctrl)

		m.challenges.EXPECT().GetByID(gomock.Any(), "ch-1").Return(openChallenge(), nil)
		m.tx.EXPECT().SubmitProposal(gomock.Any(), gomock.Any()).Return(nil)

		p, err := uc.SubmitProposal(context.Background(), "ch-1", "stu-1", " hello ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != entities.ProposalIDFor("ch-1", "stu-1") || p.Status != entities.ProposalStatusPending || p.CoverLetter != "hello" {
			t.Fatalf("unexpected proposal: %+v", p)
		}
	})
}

func TestLifecycleUseCase_SelectProposal(t *testing.T) {
	pending := entities.Proposal{ID: "p-1", ChallengeID: "ch-1", StudentID: "stu-1", Status: entities.ProposalStatusPending}

	t.Run("lost race is a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleWithMocks(ctrl)

		locked := openChallenge()
		locked.Selection = &entities.SelectionLock{Token: "other", ProposalID: "p-2"}
		gomock.InOrder(
			m.challenges.EXPECT().GetByID(gomock.Any(), "ch-1").Return(openChallenge(), nil),
			m.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(pending, nil),
			m.challenges.EXPECT().AcquireSelection(gomock.Any(), "ch-1", gomock.Any()).Return(false, nil),
			m.challenges.EXPECT().GetByID(gomock.Any(), "ch-1").Return(locked, nil),
		)

		_, err := uc.SelectProposal(context.Background(), "ch-1", "p-1")
		if !errors.Is(err, ErrSelectionInFlight) {
			t.Fatalf("expected ErrSelectionInFlight, got %v", err)
		}
		if !errs.Is(err, errs.KindConflict) {
			t.Fatalf("expected conflict kind, got %v", errs.KindOf(err))
		}
	})

	t.Run("proposal from another challenge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleWithMocks(ctrl)

		m.challenges.EXPECT().GetByID(gomock.Any(), "ch-1").Return(openChallenge(), nil)
		m.proposals.EXPECT().GetByID(gomock.Any(), "p-9").Return(entities.Proposal{ID: "p-9", ChallengeID: "ch-2", Status: entities.ProposalStatusPending}, nil)

		_, err := uc.SelectProposal(context.Background(), "ch-1", "p-9")
		if !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})

	t.Run("mark failure releases the lock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleWithMocks(ctrl)

		var nonce string
		m.challenges.EXPECT().GetByID(gomock.Any(), "ch-1").Return(openChallenge(), nil)
		m.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(pending, nil)
		m.challenges.EXPECT().AcquireSelection(gomock.Any(), "ch-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, lock entities.SelectionLock) (bool, error) {
				nonce = lock.Token
				return true, nil
			})
		m.proposals.EXPECT().MarkPaymentPending(gomock.Any(), "p-1", gomock.Any(), gomock.Any()).Return(false, nil)
		m.challenges.EXPECT().ReleaseSelection(gomock.Any(), "ch-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, token string) (bool, error) {
				if token != nonce {
					t.Fatalf("expected release with %q, got %q", nonce, token)
				}
				return true, nil
			})

		_, err := uc.SelectProposal(context.Background(), "ch-1", "p-1")
		if !errors.Is(err, ErrProposalNotPending) {
			t.Fatalf("expected ErrProposalNotPending, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleWithMocks(ctrl)

		m.challenges.EXPECT().GetByID(gomock.Any(), "ch-1").Return(openChallenge(), nil)
		m.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(pending, nil)
		m.challenges.EXPECT().AcquireSelection(gomock.Any(), "ch-1", gomock.Any()).Return(true, nil)
		m.proposals.EXPECT().MarkPaymentPending(gomock.Any(), "p-1", gomock.Any(), gomock.Any()).Return(true, nil)

		tok, err := uc.SelectProposal(context.Background(), "ch-1", "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok.ChallengeID != "ch-1" || tok.ProposalID != "p-1" || tok.Nonce == "" {
			t.Fatalf("unexpected token: %+v", tok)
		}
	})
}

func TestLifecycleUseCase_ConfirmSelection(t *testing.T) {
	token := entities.SelectionToken{ChallengeID: "ch-1", ProposalID: "p-1", Nonce: "n-1"}

	t.Run("replay returns existing room", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleWithMocks(ctrl)

		roomID := entities.RoomIDForChallenge("ch-1")
		m.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Proposal{ID: "p-1", ChallengeID: "ch-1", Status: entities.ProposalStatusSelected}, nil)
		m.rooms.EXPECT().GetByID(gomock.Any(), roomID).Return(entities.ProjectRoom{ID: roomID, ProposalID: "p-1"}, nil)

		room, err := uc.ConfirmSelection(context.Background(), token, 5000, "o-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if room.ID != roomID {
			t.Fatalf("expected %s, got %s", roomID, room.ID)
		}
	})

	t.Run("amount mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleWithMocks(ctrl)

		c := openChallenge()
		c.Selection = &entities.SelectionLock{Token: "n-1", ProposalID: "p-1"}
		p := entities.Proposal{ID: "p-1", ChallengeID: "ch-1", Status: entities.ProposalStatusPaymentPending, SelectionToken: "n-1"}
		m.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(p, nil).Times(2)
		m.challenges.EXPECT().GetByID(gomock.Any(), "ch-1").Return(c, nil)

		_, err := uc.ConfirmSelection(context.Background(), token, 4999, "o-1")
		if !errors.Is(err, ErrEscrowAmountMismatch) {
			t.Fatalf("expected ErrEscrowAmountMismatch, got %v", err)
		}
	})

	t.Run("reverted selection is not active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleWithMocks(ctrl)

		p := entities.Proposal{ID: "p-1", ChallengeID: "ch-1", Status: entities.ProposalStatusPending}
		m.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(p, nil).Times(3)
		m.challenges.EXPECT().GetByID(gomock.Any(), "ch-1").Return(openChallenge(), nil)

		_, err := uc.ConfirmSelection(context.Background(), token, 5000, "o-1")
		if !errors.Is(err, ErrSelectionNotActive) {
			t.Fatalf("expected ErrSelectionNotActive, got %v", err)
		}
	})

	t.Run("commits room and rejects open siblings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleWithMocks(ctrl)

		c := openChallenge()
		c.Selection = &entities.SelectionLock{Token: "n-1", ProposalID: "p-1"}
		p := entities.Proposal{ID: "p-1", ChallengeID: "ch-1", StudentID: "stu-1", Status: entities.ProposalStatusPaymentPending, SelectionToken: "n-1"}
		m.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(p, nil).Times(2)
		m.challenges.EXPECT().GetByID(gomock.Any(), "ch-1").Return(c, nil)
		m.proposals.EXPECT().ListByChallengeID(gomock.Any(), "ch-1").Return([]entities.Proposal{
			p,
			{ID: "p-2", ChallengeID: "ch-1", Status: entities.ProposalStatusPending},
			{ID: "p-3", ChallengeID: "ch-1", Status: entities.ProposalStatusRejected},
		}, nil)
		m.tx.EXPECT().CommitAward(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a interfaces.AwardCommit) error {
			if len(a.RejectedProposalIDs) != 1 || a.RejectedProposalIDs[0] != "p-2" {
				t.Fatalf("unexpected rejected set: %v", a.RejectedProposalIDs)
			}
			if a.Room.EscrowStatus != entities.EscrowStatusHeld || a.Room.EscrowAmount != 5000 || a.Room.StudentID != "stu-1" {
				t.Fatalf("unexpected room: %+v", a.Room)
			}
			return nil
		})

		room, err := uc.ConfirmSelection(context.Background(), token, 5000, "o-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if room.ID != entities.RoomIDForChallenge("ch-1") || room.Status != entities.RoomStatusActive {
			t.Fatalf("unexpected room: %+v", room)
		}
	})
}

func TestLifecycleUseCase_RevertSelection(t *testing.T) {
	token := entities.SelectionToken{ChallengeID: "ch-1", ProposalID: "p-1", Nonce: "n-1"}

	t.Run("no-op once selected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleWithMocks(ctrl)

		m.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Proposal{ID: "p-1", Status: entities.ProposalStatusSelected}, nil)

		reverted, err := uc.RevertSelection(context.Background(), token)
		if err != nil || reverted {
			t.Fatalf("expected silent no-op, got reverted=%v err=%v", reverted, err)
		}
	})

	t.Run("reverts and releases lock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleWithMocks(ctrl)

		m.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Proposal{ID: "p-1", Status: entities.ProposalStatusPaymentPending, SelectionToken: "n-1"}, nil)
		m.proposals.EXPECT().RevertPaymentPending(gomock.Any(), "p-1", "n-1", gomock.Any()).Return(true, nil)
		m.challenges.EXPECT().ReleaseSelection(gomock.Any(), "ch-1", "n-1").Return(true, nil)

		reverted, err := uc.RevertSelection(context.Background(), token)
		if err != nil || !reverted {
			t.Fatalf("expected revert, got reverted=%v err=%v", reverted, err)
		}
	})
}

func TestLifecycleUseCase_CompleteOrDispute(t *testing.T) {
	roomID := entities.RoomIDForChallenge("ch-1")

	t.Run("invalid decision", func(t *testing.T) {
		uc := NewLifecycleUseCase(nil, nil, nil, nil, "")
		_, err := uc.CompleteOrDispute(context.Background(), roomID, "refund")
		if !errors.Is(err, ErrInvalidDecision) {
			t.Fatalf("expected ErrInvalidDecision, got %v", err)
		}
	})

	t.Run("already settled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleWithMocks(ctrl)

		m.rooms.EXPECT().GetByID(gomock.Any(), roomID).Return(entities.ProjectRoom{ID: roomID, EscrowStatus: entities.EscrowStatusDisputed}, nil)

		_, err := uc.CompleteOrDispute(context.Background(), roomID, entities.EscrowDecisionRelease)
		if !errors.Is(err, ErrEscrowSettled) {
			t.Fatalf("expected ErrEscrowSettled, got %v", err)
		}
	})

	t.Run("lost settlement race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleWithMocks(ctrl)

		m.rooms.EXPECT().GetByID(gomock.Any(), roomID).Return(entities.ProjectRoom{ID: roomID, ChallengeID: "ch-1", EscrowStatus: entities.EscrowStatusHeld}, nil)
		m.tx.EXPECT().CommitEscrowDecision(gomock.Any(), gomock.Any()).Return(interfaces.ErrConditionFailed)

		_, err := uc.CompleteOrDispute(context.Background(), roomID, entities.EscrowDecisionDispute)
		if !errs.Is(err, errs.KindInvalidState) {
			t.Fatalf("expected invalid state, got %v", err)
		}
	})

	t.Run("dispute keeps room active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleWithMocks(ctrl)

		m.rooms.EXPECT().GetByID(gomock.Any(), roomID).Return(entities.ProjectRoom{ID: roomID, ChallengeID: "ch-1", EscrowStatus: entities.EscrowStatusHeld, Status: entities.RoomStatusActive}, nil)
		m.tx.EXPECT().CommitEscrowDecision(gomock.Any(), gomock.Any()).Return(nil)

		room, err := uc.CompleteOrDispute(context.Background(), roomID, entities.EscrowDecisionDispute)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if room.EscrowStatus != entities.EscrowStatusDisputed || room.Status != entities.RoomStatusActive || room.CompletedAt != nil {
			t.Fatalf("unexpected room: %+v", room)
		}
	})
}

func TestLifecycleUseCase_ReleaseStaleLocks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newLifecycleWithMocks(ctrl)

	orphan := openChallenge()
	orphan.Selection = &entities.SelectionLock{Token: "n-1", ProposalID: "p-1"}
	live := openChallenge()
	live.ID = "ch-2"
	live.Selection = &entities.SelectionLock{Token: "n-2", ProposalID: "p-2"}

	m.challenges.EXPECT().ListWithSelectionBefore(gomock.Any(), gomock.Any()).Return([]entities.Challenge{orphan, live}, nil)
	m.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Proposal{ID: "p-1", Status: entities.ProposalStatusPending}, nil)
	m.proposals.EXPECT().GetByID(gomock.Any(), "p-2").Return(entities.Proposal{ID: "p-2", Status: entities.ProposalStatusPaymentPending, SelectionToken: "n-2"}, nil)
	m.challenges.EXPECT().ReleaseSelection(gomock.Any(), "ch-1", "n-1").Return(true, nil)

	n, err := uc.ReleaseStaleLocks(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 released lock, got %d", n)
	}
}
