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
	ErrInvalidOrderRef      = errs.Invalid("invalid order reference")
	ErrInvalidAmount        = errs.Invalid("invalid escrow amount")
	ErrPaymentOrderNotFound = errs.NotFound("payment order not found")

	ErrPaymentPending  = errs.InvalidState("payment is still being processed")
	ErrPaymentDeclined = errs.InvalidState("payment was declined")
	ErrLatePayment     = errs.InvalidState("payment arrived after the selection was released")

	ErrPaymentVerification = errs.Verification("payment callback could not be verified")
	// ErrNotificationIgnored marks a callback that carried no signed payment.
	// Nothing was changed and the gateway should get a success answer.
	ErrNotificationIgnored = errs.Invalid("notification ignored")

	ErrPaymentGatewayBadRequest       = errs.New(errs.KindUnavailable, "payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errs.New(errs.KindUnavailable, "payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errs.New(errs.KindUnavailable, "payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errs.New(errs.KindUnavailable, "payment gateway customer not found")
	ErrPaymentGatewayUnavailable      = errs.New(errs.KindUnavailable, "payment gateway unavailable")
)

// InitiateEscrowCommand asks to select ProposalID and charge Amount for it.
// ActorID, when set, must be the company that owns the challenge.
type InitiateEscrowCommand struct {
	ChallengeID string
	ProposalID  string
	Amount      int64
	ActorID     string
}

// IEscrowUseCase drives one proposal through
// "payment initiated -> confirmed -> room created", or back to pending.
//
// Requested behavior:
//   - An order is only created after the selection lock was won.
//   - Only a verified gateway callback confirms a payment.
//   - Callbacks may be replayed; the second one returns the same room.

type IEscrowUseCase interface {
	InitiateEscrow(ctx context.Context, cmd InitiateEscrowCommand) (entities.PaymentOrder, error)
	ConfirmPayment(ctx context.Context, orderRef string, cb interfaces.GatewayCallback) (entities.ProjectRoom, error)
	CancelPayment(ctx context.Context, orderRef string) (entities.PaymentOrder, error)
	GetOrder(ctx context.Context, orderRef string) (entities.PaymentOrder, error)
	ExpiredSelections(ctx context.Context) ([]entities.Proposal, error)
	ExpireSelection(ctx context.Context, p entities.Proposal) error
	ReleaseStaleLocks(ctx context.Context) (int, error)
}

type EscrowUseCase struct {
	lifecycle        ILifecycleUseCase
	orders           interfaces.IPaymentOrderRepository
	gateway          interfaces.IPaymentGateway
	selectionTimeout time.Duration
	now              func() time.Time
}

var _ IEscrowUseCase = (*EscrowUseCase)(nil)

// DefaultSelectionTimeout bounds how long a proposal may stay payment_pending.
const DefaultSelectionTimeout = 15 * time.Minute

func NewEscrowUseCase(lifecycle ILifecycleUseCase, orders interfaces.IPaymentOrderRepository, gateway interfaces.IPaymentGateway, selectionTimeout time.Duration) *EscrowUseCase {
	if selectionTimeout <= 0 {
		selectionTimeout = DefaultSelectionTimeout
	}
	return &EscrowUseCase{
		lifecycle:        lifecycle,
		orders:           orders,
		gateway:          gateway,
		selectionTimeout: selectionTimeout,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (u *EscrowUseCase) InitiateEscrow(ctx context.Context, cmd InitiateEscrowCommand) (entities.PaymentOrder, error) {
	challengeID := strings.TrimSpace(cmd.ChallengeID)
	proposalID := strings.TrimSpace(cmd.ProposalID)
	logger.Info("[escrow][usecase] initiate start", zap.String("challenge_id", challengeID), zap.String("proposal_id", proposalID), zap.Int64("amount", cmd.Amount))
	if challengeID == "" {
		return entities.PaymentOrder{}, ErrInvalidChallengeID
	}
	if proposalID == "" {
		return entities.PaymentOrder{}, ErrInvalidProposalID
	}
	if cmd.Amount <= 0 {
		return entities.PaymentOrder{}, ErrInvalidAmount
	}
	if u.gateway == nil {
		return entities.PaymentOrder{}, errs.With(ErrPaymentGatewayUnavailable, errors.New("payment gateway not configured"))
	}

	c, err := u.lifecycle.GetChallenge(ctx, challengeID)
	if err != nil {
		return entities.PaymentOrder{}, err
	}
	if actor := strings.TrimSpace(cmd.ActorID); actor != "" && actor != c.CorporateID {
		return entities.PaymentOrder{}, ErrNotChallengeOwner
	}
	if cmd.Amount != c.Price {
		logger.Warn("[escrow][usecase] amount does not match price", zap.String("challenge_id", c.ID), zap.Int64("price", c.Price), zap.Int64("amount", cmd.Amount))
		return entities.PaymentOrder{}, ErrEscrowAmountMismatch
	}

	// Wins or loses the per-challenge race; nothing below runs for a loser.
	token, err := u.lifecycle.SelectProposal(ctx, challengeID, proposalID)
	if err != nil {
		return entities.PaymentOrder{}, err
	}

	now := u.now()
	order := entities.PaymentOrder{
		ID:             uuid.NewString(),
		ChallengeID:    challengeID,
		ProposalID:     proposalID,
		SelectionToken: token.String(),
		Amount:         cmd.Amount,
		Currency:       c.Currency,
		Status:         entities.PaymentOrderStatusCreated,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	created, err := u.orders.Create(ctx, order)
	if err != nil {
		logger.Error("[escrow][usecase] order create failed", zap.String("challenge_id", challengeID), zap.Error(err))
		u.revertQuietly(ctx, token)
		return entities.PaymentOrder{}, err
	}

	session, err := u.gateway.CreateOrder(ctx, interfaces.CheckoutOrder{
		Reference:   created.ID,
		Title:       c.Title,
		Amount:      created.Amount,
		Currency:    created.Currency,
		ChallengeID: challengeID,
		ProposalID:  proposalID,
	})
	if err != nil {
		logger.Warn("[escrow][usecase] payment gateway failed", zap.String("order_ref", created.ID), zap.Error(err))
		u.revertQuietly(ctx, token)
		if _, _, tErr := u.orders.Transition(ctx, created.ID,
			[]entities.PaymentOrderStatus{entities.PaymentOrderStatusCreated},
			entities.PaymentOrderStatusFailed,
			interfaces.PaymentOrderPatch{FailureReason: "gateway: " + err.Error()},
			u.now(),
		); tErr != nil {
			logger.Warn("[escrow][usecase] mark order failed", zap.String("order_ref", created.ID), zap.Error(tErr))
		}
		return entities.PaymentOrder{}, classifyGatewayError(err)
	}

	updated, ok, err := u.orders.Transition(ctx, created.ID,
		[]entities.PaymentOrderStatus{entities.PaymentOrderStatusCreated},
		entities.PaymentOrderStatusCreated,
		interfaces.PaymentOrderPatch{ProviderRef: session.ProviderRef, CheckoutURL: session.CheckoutURL, ProviderPayloadRaw: session.Raw},
		u.now(),
	)
	if err != nil {
		return entities.PaymentOrder{}, err
	}
	if !ok {
		// Cancelled or expired while the gateway call was in flight.
		return u.GetOrder(ctx, created.ID)
	}

	logger.Info("[escrow][usecase] initiate success", zap.String("order_ref", updated.ID), zap.String("provider_ref", updated.ProviderRef))
	return updated, nil
}

func (u *EscrowUseCase) ConfirmPayment(ctx context.Context, orderRef string, cb interfaces.GatewayCallback) (entities.ProjectRoom, error) {
	order, err := u.GetOrder(ctx, orderRef)
	if err != nil {
		return entities.ProjectRoom{}, err
	}
	logger.Info("[escrow][usecase] confirm start", zap.String("order_ref", order.ID), zap.String("status", string(order.Status)))
	if u.gateway == nil {
		return entities.ProjectRoom{}, errs.With(ErrPaymentGatewayUnavailable, errors.New("payment gateway not configured"))
	}

	verified, err := u.gateway.VerifyCallback(ctx, cb)
	if err != nil {
		if errors.Is(err, interfaces.ErrCallbackIgnored) {
			logger.Info("[escrow][usecase] callback ignored", zap.String("order_ref", order.ID), zap.String("reason", err.Error()))
			return entities.ProjectRoom{}, errs.With(ErrNotificationIgnored, err)
		}
		if errs.Is(err, errs.KindVerification) {
			logger.Warn("[escrow][usecase] callback verification failed", zap.String("order_ref", order.ID), zap.Error(err))
			u.failOrder(ctx, order, "verification: "+err.Error())
			return entities.ProjectRoom{}, err
		}
		return entities.ProjectRoom{}, err
	}
	if verified.OrderReference != order.ID {
		logger.Warn("[escrow][usecase] callback reference mismatch", zap.String("order_ref", order.ID), zap.String("verified_ref", verified.OrderReference))
		u.failOrder(ctx, order, "verification: order reference mismatch")
		return entities.ProjectRoom{}, ErrPaymentVerification
	}

	if !verified.Success {
		if isPendingProviderStatus(verified.ProviderStatus) {
			return entities.ProjectRoom{}, ErrPaymentPending
		}
		logger.Info("[escrow][usecase] payment declined", zap.String("order_ref", order.ID), zap.String("provider_status", verified.ProviderStatus))
		u.failOrder(ctx, order, "declined: "+verified.ProviderStatus)
		return entities.ProjectRoom{}, ErrPaymentDeclined
	}

	switch order.Status {
	case entities.PaymentOrderStatusConfirmed:
		logger.Info("[escrow][usecase] confirm replay", zap.String("order_ref", order.ID), zap.String("room_id", order.RoomID))
		return u.lifecycle.GetRoom(ctx, order.RoomID)
	case entities.PaymentOrderStatusCreated:
	default:
		u.markRefundRequired(ctx, order, verified)
		return entities.ProjectRoom{}, ErrLatePayment
	}

	if verified.Amount != order.Amount {
		logger.Warn("[escrow][usecase] verified amount mismatch", zap.String("order_ref", order.ID), zap.Int64("expected", order.Amount), zap.Int64("got", verified.Amount))
		u.failOrder(ctx, order, "verification: amount mismatch")
		return entities.ProjectRoom{}, ErrEscrowAmountMismatch
	}

	token, err := entities.ParseSelectionToken(order.SelectionToken)
	if err != nil {
		return entities.ProjectRoom{}, errs.With(ErrInvalidSelectionToken, err)
	}
	room, err := u.lifecycle.ConfirmSelection(ctx, token, verified.Amount, order.ID)
	if err != nil {
		switch {
		case errors.Is(err, ErrSelectionNotActive):
			u.markRefundRequired(ctx, order, verified)
			return entities.ProjectRoom{}, ErrLatePayment
		case errors.Is(err, ErrEscrowAmountMismatch):
			u.failOrder(ctx, order, "verification: amount mismatch")
		}
		return entities.ProjectRoom{}, err
	}

	_, ok, err := u.orders.Transition(ctx, order.ID,
		[]entities.PaymentOrderStatus{entities.PaymentOrderStatusCreated},
		entities.PaymentOrderStatusConfirmed,
		interfaces.PaymentOrderPatch{RoomID: room.ID, ProviderPayloadRaw: verified.Raw},
		u.now(),
	)
	if err != nil {
		// The award is committed; the order catches up on the next callback.
		logger.Warn("[escrow][usecase] order confirm write failed", zap.String("order_ref", order.ID), zap.Error(err))
	} else if !ok {
		logger.Info("[escrow][usecase] order already moved", zap.String("order_ref", order.ID))
	}

	logger.Info("[escrow][usecase] confirm success", zap.String("order_ref", order.ID), zap.String("room_id", room.ID))
	return room, nil
}

func (u *EscrowUseCase) CancelPayment(ctx context.Context, orderRef string) (entities.PaymentOrder, error) {
	order, err := u.GetOrder(ctx, orderRef)
	if err != nil {
		return entities.PaymentOrder{}, err
	}
	switch order.Status {
	case entities.PaymentOrderStatusCreated:
	case entities.PaymentOrderStatusConfirmed:
		logger.Info("[escrow][usecase] cancel ignored; already confirmed", zap.String("order_ref", order.ID))
		return order, nil
	default:
		return order, nil
	}

	token, err := entities.ParseSelectionToken(order.SelectionToken)
	if err != nil {
		return entities.PaymentOrder{}, errs.With(ErrInvalidSelectionToken, err)
	}
	if _, err := u.lifecycle.RevertSelection(ctx, token); err != nil {
		return entities.PaymentOrder{}, err
	}

	updated, ok, err := u.orders.Transition(ctx, order.ID,
		[]entities.PaymentOrderStatus{entities.PaymentOrderStatusCreated},
		entities.PaymentOrderStatusCancelled,
		interfaces.PaymentOrderPatch{},
		u.now(),
	)
	if err != nil {
		return entities.PaymentOrder{}, err
	}
	if !ok {
		return u.GetOrder(ctx, order.ID)
	}
	logger.Info("[escrow][usecase] payment cancelled", zap.String("order_ref", order.ID))
	return updated, nil
}

func (u *EscrowUseCase) GetOrder(ctx context.Context, orderRef string) (entities.PaymentOrder, error) {
	orderRef = strings.TrimSpace(orderRef)
	if orderRef == "" {
		return entities.PaymentOrder{}, ErrInvalidOrderRef
	}
	o, err := u.orders.GetByID(ctx, orderRef)
	if err != nil {
		return entities.PaymentOrder{}, err
	}
	if o.ID == "" {
		return entities.PaymentOrder{}, ErrPaymentOrderNotFound
	}
	return o, nil
}

// ExpiredSelections lists payment_pending proposals older than the selection
// timeout.
func (u *EscrowUseCase) ExpiredSelections(ctx context.Context) ([]entities.Proposal, error) {
	return u.lifecycle.ListStaleSelections(ctx, u.now().Add(-u.selectionTimeout))
}

// ExpireSelection reverts one stale payment_pending proposal and expires the
// order that was waiting on it.
func (u *EscrowUseCase) ExpireSelection(ctx context.Context, p entities.Proposal) error {
	if p.Status != entities.ProposalStatusPaymentPending || p.SelectionToken == "" {
		return nil
	}
	orders, err := u.orders.ListByProposalID(ctx, p.ID)
	if err != nil {
		return err
	}

	token := entities.SelectionToken{ChallengeID: p.ChallengeID, ProposalID: p.ID, Nonce: p.SelectionToken}
	if _, err := u.lifecycle.RevertSelection(ctx, token); err != nil {
		return err
	}

	for _, o := range orders {
		if o.Status != entities.PaymentOrderStatusCreated {
			continue
		}
		ot, err := entities.ParseSelectionToken(o.SelectionToken)
		if err != nil || ot.Nonce != p.SelectionToken {
			continue
		}
		if _, _, err := u.orders.Transition(ctx, o.ID,
			[]entities.PaymentOrderStatus{entities.PaymentOrderStatusCreated},
			entities.PaymentOrderStatusExpired,
			interfaces.PaymentOrderPatch{FailureReason: "selection timeout"},
			u.now(),
		); err != nil {
			logger.Warn("[escrow][usecase] expire order failed", zap.String("order_ref", o.ID), zap.Error(err))
		}
	}
	logger.Info("[escrow][usecase] selection expired", zap.String("challenge_id", p.ChallengeID), zap.String("proposal_id", p.ID))
	return nil
}

func (u *EscrowUseCase) ReleaseStaleLocks(ctx context.Context) (int, error) {
	return u.lifecycle.ReleaseStaleLocks(ctx, u.now().Add(-u.selectionTimeout))
}

func (u *EscrowUseCase) revertQuietly(ctx context.Context, token entities.SelectionToken) {
	if _, err := u.lifecycle.RevertSelection(ctx, token); err != nil {
		logger.Error("[escrow][usecase] revert selection failed", zap.String("challenge_id", token.ChallengeID), zap.String("proposal_id", token.ProposalID), zap.Error(err))
	}
}

// failOrder puts the proposal back to pending and marks a created order failed.
func (u *EscrowUseCase) failOrder(ctx context.Context, order entities.PaymentOrder, reason string) {
	if order.Status != entities.PaymentOrderStatusCreated {
		return
	}
	if token, err := entities.ParseSelectionToken(order.SelectionToken); err == nil {
		u.revertQuietly(ctx, token)
	}
	if _, _, err := u.orders.Transition(ctx, order.ID,
		[]entities.PaymentOrderStatus{entities.PaymentOrderStatusCreated},
		entities.PaymentOrderStatusFailed,
		interfaces.PaymentOrderPatch{FailureReason: reason},
		u.now(),
	); err != nil {
		logger.Warn("[escrow][usecase] mark order failed", zap.String("order_ref", order.ID), zap.Error(err))
	}
}

func (u *EscrowUseCase) markRefundRequired(ctx context.Context, order entities.PaymentOrder, verified interfaces.VerifiedPayment) {
	logger.Warn("[escrow][usecase] late payment; refund required",
		zap.String("order_ref", order.ID),
		zap.String("status", string(order.Status)),
		zap.String("provider_payment_id", verified.ProviderPaymentID),
	)
	if order.Status == entities.PaymentOrderStatusRefundRequired {
		return
	}
	if _, _, err := u.orders.Transition(ctx, order.ID,
		[]entities.PaymentOrderStatus{
			entities.PaymentOrderStatusCreated,
			entities.PaymentOrderStatusCancelled,
			entities.PaymentOrderStatusExpired,
			entities.PaymentOrderStatusFailed,
		},
		entities.PaymentOrderStatusRefundRequired,
		interfaces.PaymentOrderPatch{FailureReason: "paid after selection was released", ProviderPayloadRaw: verified.Raw},
		u.now(),
	); err != nil {
		logger.Error("[escrow][usecase] mark refund required failed", zap.String("order_ref", order.ID), zap.Error(err))
	}
}

func isPendingProviderStatus(status string) bool {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "pending", "in_process", "in_mediation", "authorized":
		return true
	}
	return false
}

func classifyGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return errs.With(ErrPaymentGatewayCustomerNotFound, err)
	case isGatewayInvalidUsers(err):
		return errs.With(ErrPaymentGatewayInvalidUsers, err)
	case isGatewayUnauthorized(err):
		return errs.With(ErrPaymentGatewayUnauthorized, err)
	case isGatewayBadRequest(err):
		return errs.With(ErrPaymentGatewayBadRequest, err)
	}
	return errs.With(ErrPaymentGatewayUnavailable, err)
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
