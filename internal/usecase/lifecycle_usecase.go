package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"fellowship_escrow/internal/domain/entities"
	"fellowship_escrow/internal/domain/errs"
	"fellowship_escrow/internal/infrastructure/logger"
	"fellowship_escrow/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidChallengeID    = errs.Invalid("invalid challenge_id")
	ErrInvalidProposalID     = errs.Invalid("invalid proposal_id")
	ErrInvalidRoomID         = errs.Invalid("invalid room_id")
	ErrInvalidCorporateID    = errs.Invalid("invalid corporate_id")
	ErrInvalidStudentID      = errs.Invalid("invalid student_id")
	ErrInvalidChallengeTitle = errs.Invalid("invalid challenge title")
	ErrInvalidPrice          = errs.Invalid("invalid challenge price")
	ErrInvalidDeadline       = errs.Invalid("deadline must be in the future")
	ErrInvalidCoverLetter    = errs.Invalid("invalid cover letter")
	ErrInvalidSelectionToken = errs.Invalid("invalid selection token")
	ErrInvalidDecision       = errs.Invalid("invalid escrow decision")

	ErrChallengeNotFound = errs.NotFound("challenge not found")
	ErrProposalNotFound  = errs.NotFound("proposal not found")
	ErrRoomNotFound      = errs.NotFound("room not found")

	ErrSelectionInFlight       = errs.Conflict("challenge is already being processed")
	ErrChallengeAlreadyAwarded = errs.Conflict("challenge was already awarded")
	ErrProposalAlreadyExists   = errs.Conflict("student already submitted a proposal")

	ErrChallengeNotOpen        = errs.InvalidState("challenge is not open")
	ErrChallengeDeadlinePassed = errs.InvalidState("challenge deadline has passed")
	ErrProposalNotPending      = errs.InvalidState("proposal is not pending")
	ErrSelectionNotActive      = errs.InvalidState("selection is no longer active")
	ErrEscrowSettled           = errs.InvalidState("escrow already settled")

	ErrEscrowAmountMismatch = errs.Verification("escrow amount does not match challenge price")

	ErrNotChallengeOwner = errs.Forbidden("challenge belongs to another company")
)

// PostChallengeCommand carries the fields a company provides when posting.
type PostChallengeCommand struct {
	CorporateID string
	Title       string
	Description string
	Price       int64
	Currency    string
	Deadline    time.Time
}

// ILifecycleUseCase owns the Challenge, Proposal and ProjectRoom state
// machines and the at-most-one-selected-proposal invariant.
//
// Selection path:
//   - SelectProposal  => challenge lock + proposal pending -> payment_pending
//   - ConfirmSelection => room + winner + rejected siblings + in_progress, atomically
//   - RevertSelection  => proposal back to pending, lock released

type ILifecycleUseCase interface {
	PostChallenge(ctx context.Context, cmd PostChallengeCommand) (entities.Challenge, error)
	GetChallenge(ctx context.Context, id string) (entities.Challenge, error)
	CancelChallenge(ctx context.Context, id, corporateID string) (entities.Challenge, error)
	SubmitProposal(ctx context.Context, challengeID, studentID, coverLetter string) (entities.Proposal, error)
	GetProposal(ctx context.Context, id string) (entities.Proposal, error)
	ListProposals(ctx context.Context, challengeID string) ([]entities.Proposal, error)
	SelectProposal(ctx context.Context, challengeID, proposalID string) (entities.SelectionToken, error)
	ConfirmSelection(ctx context.Context, token entities.SelectionToken, escrowAmount int64, orderID string) (entities.ProjectRoom, error)
	RevertSelection(ctx context.Context, token entities.SelectionToken) (bool, error)
	CompleteOrDispute(ctx context.Context, roomID string, decision entities.EscrowDecision) (entities.ProjectRoom, error)
	GetRoom(ctx context.Context, roomID string) (entities.ProjectRoom, error)
	ListStaleSelections(ctx context.Context, cutoff time.Time) ([]entities.Proposal, error)
	ReleaseStaleLocks(ctx context.Context, cutoff time.Time) (int, error)
}

type LifecycleUseCase struct {
	challenges      interfaces.IChallengeRepository
	proposals       interfaces.IProposalRepository
	rooms           interfaces.IProjectRoomRepository
	tx              interfaces.IMarketplaceTransactor
	defaultCurrency string
	now             func() time.Time
}

var _ ILifecycleUseCase = (*LifecycleUseCase)(nil)

func NewLifecycleUseCase(
	challenges interfaces.IChallengeRepository,
	proposals interfaces.IProposalRepository,
	rooms interfaces.IProjectRoomRepository,
	tx interfaces.IMarketplaceTransactor,
	defaultCurrency string,
) *LifecycleUseCase {
	if strings.TrimSpace(defaultCurrency) == "" {
		defaultCurrency = "BRL"
	}
	return &LifecycleUseCase{
		challenges:      challenges,
		proposals:       proposals,
		rooms:           rooms,
		tx:              tx,
		defaultCurrency: strings.ToUpper(strings.TrimSpace(defaultCurrency)),
		now:             func() time.Time { return time.Now().UTC() },
	}
}

func (u *LifecycleUseCase) PostChallenge(ctx context.Context, cmd PostChallengeCommand) (entities.Challenge, error) {
	corporateID := strings.TrimSpace(cmd.CorporateID)
	if corporateID == "" {
		return entities.Challenge{}, ErrInvalidCorporateID
	}
	title := strings.TrimSpace(cmd.Title)
	if title == "" {
		return entities.Challenge{}, ErrInvalidChallengeTitle
	}
	if cmd.Price <= 0 {
		return entities.Challenge{}, ErrInvalidPrice
	}
	now := u.now()
	if !cmd.Deadline.After(now) {
		return entities.Challenge{}, ErrInvalidDeadline
	}
	currency := strings.ToUpper(strings.TrimSpace(cmd.Currency))
	if currency == "" {
		currency = u.defaultCurrency
	}

	c := entities.Challenge{
		ID:          uuid.NewString(),
		CorporateID: corporateID,
		Title:       title,
		Description: strings.TrimSpace(cmd.Description),
		Price:       cmd.Price,
		Currency:    currency,
		Status:      entities.ChallengeStatusOpen,
		Deadline:    cmd.Deadline.UTC(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := u.challenges.Create(ctx, c)
	if err != nil {
		logger.Error("[lifecycle][usecase] post challenge failed", zap.String("corporate_id", corporateID), zap.Error(err))
		return entities.Challenge{}, err
	}
	logger.Info("[lifecycle][usecase] challenge posted", zap.String("challenge_id", created.ID), zap.Int64("price", created.Price))
	return created, nil
}

func (u *LifecycleUseCase) GetChallenge(ctx context.Context, id string) (entities.Challenge, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Challenge{}, ErrInvalidChallengeID
	}
	c, err := u.challenges.GetByID(ctx, id)
	if err != nil {
		return entities.Challenge{}, err
	}
	if c.ID == "" {
		return entities.Challenge{}, ErrChallengeNotFound
	}
	return c, nil
}

func (u *LifecycleUseCase) CancelChallenge(ctx context.Context, id, corporateID string) (entities.Challenge, error) {
	c, err := u.GetChallenge(ctx, id)
	if err != nil {
		return entities.Challenge{}, err
	}
	if strings.TrimSpace(corporateID) != c.CorporateID {
		return entities.Challenge{}, ErrNotChallengeOwner
	}
	if err := openForChanges(c); err != nil {
		return entities.Challenge{}, err
	}

	cancelled, ok, err := u.challenges.Cancel(ctx, c.ID, u.now())
	if err != nil {
		return entities.Challenge{}, err
	}
	if !ok {
		current, err := u.GetChallenge(ctx, c.ID)
		if err != nil {
			return entities.Challenge{}, err
		}
		if err := openForChanges(current); err != nil {
			return entities.Challenge{}, err
		}
		return entities.Challenge{}, ErrSelectionInFlight
	}
	logger.Info("[lifecycle][usecase] challenge cancelled", zap.String("challenge_id", c.ID))
	return cancelled, nil
}

func (u *LifecycleUseCase) SubmitProposal(ctx context.Context, challengeID, studentID, coverLetter string) (entities.Proposal, error) {
	challengeID = strings.TrimSpace(challengeID)
	if challengeID == "" {
		return entities.Proposal{}, ErrInvalidChallengeID
	}
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return entities.Proposal{}, ErrInvalidStudentID
	}
	coverLetter = strings.TrimSpace(coverLetter)
	if coverLetter == "" {
		return entities.Proposal{}, ErrInvalidCoverLetter
	}

	c, err := u.GetChallenge(ctx, challengeID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if err := openForChanges(c); err != nil {
		return entities.Proposal{}, err
	}
	now := u.now()
	if !c.Deadline.IsZero() && now.After(c.Deadline) {
		return entities.Proposal{}, ErrChallengeDeadlinePassed
	}

	p := entities.Proposal{
		ID:          entities.ProposalIDFor(challengeID, studentID),
		ChallengeID: challengeID,
		StudentID:   studentID,
		CoverLetter: coverLetter,
		Status:      entities.ProposalStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.tx.SubmitProposal(ctx, p); err != nil {
		switch {
		case errors.Is(err, interfaces.ErrAlreadyExists):
			return entities.Proposal{}, ErrProposalAlreadyExists
		case errors.Is(err, interfaces.ErrConditionFailed):
			current, gErr := u.GetChallenge(ctx, challengeID)
			if gErr != nil {
				return entities.Proposal{}, gErr
			}
			if oErr := openForChanges(current); oErr != nil {
				return entities.Proposal{}, oErr
			}
			return entities.Proposal{}, ErrSelectionInFlight
		default:
			logger.Error("[lifecycle][usecase] submit proposal failed", zap.String("challenge_id", challengeID), zap.Error(err))
			return entities.Proposal{}, err
		}
	}
	logger.Info("[lifecycle][usecase] proposal submitted", zap.String("challenge_id", challengeID), zap.String("proposal_id", p.ID))
	return p, nil
}

func (u *LifecycleUseCase) GetProposal(ctx context.Context, id string) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}
	p, err := u.proposals.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return p, nil
}

func (u *LifecycleUseCase) ListProposals(ctx context.Context, challengeID string) ([]entities.Proposal, error) {
	c, err := u.GetChallenge(ctx, challengeID)
	if err != nil {
		return nil, err
	}
	return u.proposals.ListByChallengeID(ctx, c.ID)
}

// SelectProposal is first-writer-wins per challenge: the conditional write on
// the challenge selection lock serializes concurrent callers, the loser gets
// ErrSelectionInFlight.
func (u *LifecycleUseCase) SelectProposal(ctx context.Context, challengeID, proposalID string) (entities.SelectionToken, error) {
	challengeID = strings.TrimSpace(challengeID)
	if challengeID == "" {
		return entities.SelectionToken{}, ErrInvalidChallengeID
	}
	proposalID = strings.TrimSpace(proposalID)
	if proposalID == "" {
		return entities.SelectionToken{}, ErrInvalidProposalID
	}
	logger.Info("[lifecycle][usecase] select start", zap.String("challenge_id", challengeID), zap.String("proposal_id", proposalID))

	c, err := u.GetChallenge(ctx, challengeID)
	if err != nil {
		return entities.SelectionToken{}, err
	}
	if err := openForChanges(c); err != nil {
		return entities.SelectionToken{}, err
	}
	p, err := u.GetProposal(ctx, proposalID)
	if err != nil {
		return entities.SelectionToken{}, err
	}
	if p.ChallengeID != challengeID {
		return entities.SelectionToken{}, ErrProposalNotFound
	}
	if p.Status != entities.ProposalStatusPending {
		return entities.SelectionToken{}, ErrProposalNotPending
	}

	token := entities.NewSelectionToken(challengeID, proposalID)
	now := u.now()
	acquired, err := u.challenges.AcquireSelection(ctx, challengeID, entities.SelectionLock{
		Token:      token.Nonce,
		ProposalID: proposalID,
		AcquiredAt: now,
	})
	if err != nil {
		return entities.SelectionToken{}, err
	}
	if !acquired {
		current, gErr := u.GetChallenge(ctx, challengeID)
		if gErr != nil {
			return entities.SelectionToken{}, gErr
		}
		if oErr := openForChanges(current); oErr != nil {
			return entities.SelectionToken{}, oErr
		}
		logger.Info("[lifecycle][usecase] select lost race", zap.String("challenge_id", challengeID), zap.String("proposal_id", proposalID))
		return entities.SelectionToken{}, ErrSelectionInFlight
	}

	marked, err := u.proposals.MarkPaymentPending(ctx, proposalID, token.Nonce, now)
	if err != nil || !marked {
		if _, rErr := u.challenges.ReleaseSelection(ctx, challengeID, token.Nonce); rErr != nil {
			logger.Warn("[lifecycle][usecase] release lock after failed mark", zap.String("challenge_id", challengeID), zap.Error(rErr))
		}
		if err != nil {
			return entities.SelectionToken{}, err
		}
		return entities.SelectionToken{}, ErrProposalNotPending
	}

	logger.Info("[lifecycle][usecase] select success", zap.String("challenge_id", challengeID), zap.String("proposal_id", proposalID))
	return token, nil
}

// ConfirmSelection is idempotent: a selection that already produced a room
// returns that room.
func (u *LifecycleUseCase) ConfirmSelection(ctx context.Context, token entities.SelectionToken, escrowAmount int64, orderID string) (entities.ProjectRoom, error) {
	if token.IsZero() || token.ChallengeID == "" || token.ProposalID == "" {
		return entities.ProjectRoom{}, ErrInvalidSelectionToken
	}
	if room, ok, err := u.existingAward(ctx, token); err != nil {
		return entities.ProjectRoom{}, err
	} else if ok {
		logger.Info("[lifecycle][usecase] confirm replay", zap.String("challenge_id", token.ChallengeID), zap.String("room_id", room.ID))
		return room, nil
	}

	c, err := u.GetChallenge(ctx, token.ChallengeID)
	if err != nil {
		return entities.ProjectRoom{}, err
	}
	p, err := u.GetProposal(ctx, token.ProposalID)
	if err != nil {
		return entities.ProjectRoom{}, err
	}
	if p.ChallengeID != c.ID {
		return entities.ProjectRoom{}, ErrProposalNotFound
	}
	if p.Status != entities.ProposalStatusPaymentPending || p.SelectionToken != token.Nonce ||
		c.Status != entities.ChallengeStatusOpen || c.Selection == nil || c.Selection.Token != token.Nonce {
		return u.awardedOrInactive(ctx, token)
	}
	if escrowAmount != c.Price {
		logger.Warn("[lifecycle][usecase] escrow amount mismatch", zap.String("challenge_id", c.ID), zap.Int64("price", c.Price), zap.Int64("amount", escrowAmount))
		return entities.ProjectRoom{}, ErrEscrowAmountMismatch
	}

	siblings, err := u.proposals.ListByChallengeID(ctx, c.ID)
	if err != nil {
		return entities.ProjectRoom{}, err
	}
	rejected := make([]string, 0, len(siblings))
	for _, s := range siblings {
		if s.ID != p.ID && s.Status.IsOpen() {
			rejected = append(rejected, s.ID)
		}
	}

	now := u.now()
	room := entities.ProjectRoom{
		ID:           entities.RoomIDForChallenge(c.ID),
		ChallengeID:  c.ID,
		ProposalID:   p.ID,
		StudentID:    p.StudentID,
		CorporateID:  c.CorporateID,
		EscrowAmount: escrowAmount,
		Currency:     c.Currency,
		EscrowStatus: entities.EscrowStatusHeld,
		Status:       entities.RoomStatusActive,
		OrderID:      orderID,
		CreatedAt:    now,
	}
	err = u.tx.CommitAward(ctx, interfaces.AwardCommit{
		Room:                room,
		ChallengeID:         c.ID,
		ProposalID:          p.ID,
		SelectionToken:      token.Nonce,
		RejectedProposalIDs: rejected,
		At:                  now,
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return u.awardedOrInactive(ctx, token)
		}
		logger.Error("[lifecycle][usecase] commit award failed", zap.String("challenge_id", c.ID), zap.Error(err))
		return entities.ProjectRoom{}, err
	}

	logger.Info("[lifecycle][usecase] award committed",
		zap.String("challenge_id", c.ID),
		zap.String("proposal_id", p.ID),
		zap.String("room_id", room.ID),
		zap.Int("rejected", len(rejected)),
	)
	return room, nil
}

// RevertSelection returns the proposal to pending. It is a no-op once the
// selection was confirmed or already reverted.
func (u *LifecycleUseCase) RevertSelection(ctx context.Context, token entities.SelectionToken) (bool, error) {
	if token.IsZero() || token.ChallengeID == "" || token.ProposalID == "" {
		return false, ErrInvalidSelectionToken
	}
	p, err := u.GetProposal(ctx, token.ProposalID)
	if err != nil {
		return false, err
	}
	if p.Status == entities.ProposalStatusSelected {
		logger.Info("[lifecycle][usecase] revert skipped; already selected", zap.String("proposal_id", p.ID))
		return false, nil
	}

	reverted := false
	if p.Status == entities.ProposalStatusPaymentPending && p.SelectionToken == token.Nonce {
		reverted, err = u.proposals.RevertPaymentPending(ctx, p.ID, token.Nonce, u.now())
		if err != nil {
			return false, err
		}
		if !reverted {
			current, gErr := u.GetProposal(ctx, p.ID)
			if gErr != nil {
				return false, gErr
			}
			if current.Status == entities.ProposalStatusSelected {
				return false, nil
			}
		}
	}

	// The lock may outlive the proposal flag if a previous attempt crashed
	// between the two writes, so release it unconditionally on token.
	if _, err := u.challenges.ReleaseSelection(ctx, token.ChallengeID, token.Nonce); err != nil {
		return reverted, err
	}
	logger.Info("[lifecycle][usecase] selection reverted",
		zap.String("challenge_id", token.ChallengeID),
		zap.String("proposal_id", token.ProposalID),
		zap.Bool("proposal_reverted", reverted),
	)
	return reverted, nil
}

func (u *LifecycleUseCase) CompleteOrDispute(ctx context.Context, roomID string, decision entities.EscrowDecision) (entities.ProjectRoom, error) {
	if !decision.Valid() {
		return entities.ProjectRoom{}, ErrInvalidDecision
	}
	room, err := u.GetRoom(ctx, roomID)
	if err != nil {
		return entities.ProjectRoom{}, err
	}
	if room.EscrowStatus != entities.EscrowStatusHeld {
		return entities.ProjectRoom{}, ErrEscrowSettled
	}

	now := u.now()
	err = u.tx.CommitEscrowDecision(ctx, interfaces.EscrowSettlement{
		RoomID:      room.ID,
		ChallengeID: room.ChallengeID,
		Decision:    decision,
		At:          now,
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.ProjectRoom{}, ErrEscrowSettled
		}
		logger.Error("[lifecycle][usecase] escrow decision failed", zap.String("room_id", room.ID), zap.Error(err))
		return entities.ProjectRoom{}, err
	}

	room.EscrowStatus = decision.ResultingEscrowStatus()
	if decision == entities.EscrowDecisionRelease {
		room.Status = entities.RoomStatusCompleted
		room.CompletedAt = &now
	}
	logger.Info("[lifecycle][usecase] escrow settled", zap.String("room_id", room.ID), zap.String("decision", string(decision)))
	return room, nil
}

func (u *LifecycleUseCase) GetRoom(ctx context.Context, roomID string) (entities.ProjectRoom, error) {
	roomID = strings.TrimSpace(roomID)
	if roomID == "" {
		return entities.ProjectRoom{}, ErrInvalidRoomID
	}
	room, err := u.rooms.GetByID(ctx, roomID)
	if err != nil {
		return entities.ProjectRoom{}, err
	}
	if room.ID == "" {
		return entities.ProjectRoom{}, ErrRoomNotFound
	}
	return room, nil
}

func (u *LifecycleUseCase) ListStaleSelections(ctx context.Context, cutoff time.Time) ([]entities.Proposal, error) {
	return u.proposals.ListPaymentPendingBefore(ctx, cutoff)
}

// ReleaseStaleLocks drops selection locks older than cutoff whose proposal
// never reached payment_pending. Locks backed by a payment_pending proposal
// are left to the payment sweep.
func (u *LifecycleUseCase) ReleaseStaleLocks(ctx context.Context, cutoff time.Time) (int, error) {
	locked, err := u.challenges.ListWithSelectionBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	released := 0
	for _, c := range locked {
		if c.Selection == nil {
			continue
		}
		p, err := u.proposals.GetByID(ctx, c.Selection.ProposalID)
		if err != nil {
			logger.Warn("[lifecycle][usecase] stale lock proposal lookup failed", zap.String("challenge_id", c.ID), zap.Error(err))
			continue
		}
		if p.Status == entities.ProposalStatusPaymentPending && p.SelectionToken == c.Selection.Token {
			continue
		}
		ok, err := u.challenges.ReleaseSelection(ctx, c.ID, c.Selection.Token)
		if err != nil {
			logger.Warn("[lifecycle][usecase] stale lock release failed", zap.String("challenge_id", c.ID), zap.Error(err))
			continue
		}
		if ok {
			released++
			logger.Info("[lifecycle][usecase] stale lock released", zap.String("challenge_id", c.ID))
		}
	}
	return released, nil
}

func (u *LifecycleUseCase) existingAward(ctx context.Context, token entities.SelectionToken) (entities.ProjectRoom, bool, error) {
	p, err := u.proposals.GetByID(ctx, token.ProposalID)
	if err != nil {
		return entities.ProjectRoom{}, false, err
	}
	if p.ID == "" || p.Status != entities.ProposalStatusSelected {
		return entities.ProjectRoom{}, false, nil
	}
	room, err := u.rooms.GetByID(ctx, entities.RoomIDForChallenge(token.ChallengeID))
	if err != nil {
		return entities.ProjectRoom{}, false, err
	}
	if room.ID == "" || room.ProposalID != p.ID {
		return entities.ProjectRoom{}, false, nil
	}
	return room, true, nil
}

// awardedOrInactive resolves a failed confirmation precondition: a
// concurrent confirmation may have committed the same award first.
func (u *LifecycleUseCase) awardedOrInactive(ctx context.Context, token entities.SelectionToken) (entities.ProjectRoom, error) {
	room, ok, err := u.existingAward(ctx, token)
	if err != nil {
		return entities.ProjectRoom{}, err
	}
	if ok {
		return room, nil
	}
	return entities.ProjectRoom{}, ErrSelectionNotActive
}

// openForChanges maps a non-open challenge to the error a bidder should see.
func openForChanges(c entities.Challenge) error {
	switch c.Status {
	case entities.ChallengeStatusOpen:
		if c.Selection != nil {
			return ErrSelectionInFlight
		}
		return nil
	case entities.ChallengeStatusInProgress, entities.ChallengeStatusCompleted:
		return ErrChallengeAlreadyAwarded
	default:
		return ErrChallengeNotOpen
	}
}
