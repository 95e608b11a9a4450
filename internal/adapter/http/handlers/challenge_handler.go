package handlers

import (
	"net/http"

	request "fellowship_escrow/internal/adapter/http/dto/request"
	response "fellowship_escrow/internal/adapter/http/dto/response"
	"fellowship_escrow/internal/adapter/http/middleware"
	"fellowship_escrow/internal/domain/entities"
	"fellowship_escrow/internal/infrastructure/logger"
	"fellowship_escrow/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChallengeHandler serves challenges, proposals and the selection entry
// point. Selecting a proposal starts escrow, so it needs both usecases.
type ChallengeHandler struct {
	lifecycle usecase.ILifecycleUseCase
	escrow    usecase.IEscrowUseCase
}

func NewChallengeHandler(lifecycle usecase.ILifecycleUseCase, escrow usecase.IEscrowUseCase) *ChallengeHandler {
	return &ChallengeHandler{lifecycle: lifecycle, escrow: escrow}
}

func (h *ChallengeHandler) PostChallenge(c *gin.Context) {
	if !requireRole(c, string(entities.ParticipantRoleCorporate)) {
		return
	}
	var payload request.PostChallengeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	userID := middleware.UserID(c)
	created, err := h.lifecycle.PostChallenge(c.Request.Context(), payload.ToCommand(userID))
	if err != nil {
		writeError(c, "challenge", err)
		return
	}
	logger.Info("[challenge][handler] posted", zap.String("challenge_id", created.ID), zap.String("corporate_id", userID))
	c.JSON(http.StatusCreated, response.FromChallenge(created))
}

func (h *ChallengeHandler) GetChallenge(c *gin.Context) {
	ch, err := h.lifecycle.GetChallenge(c.Request.Context(), c.Param("challenge_id"))
	if err != nil {
		writeError(c, "challenge", err)
		return
	}
	c.JSON(http.StatusOK, response.FromChallenge(ch))
}

func (h *ChallengeHandler) CancelChallenge(c *gin.Context) {
	ch, err := h.lifecycle.CancelChallenge(c.Request.Context(), c.Param("challenge_id"), middleware.UserID(c))
	if err != nil {
		writeError(c, "challenge", err)
		return
	}
	c.JSON(http.StatusOK, response.FromChallenge(ch))
}

func (h *ChallengeHandler) SubmitProposal(c *gin.Context) {
	if !requireRole(c, string(entities.ParticipantRoleStudent)) {
		return
	}
	var payload request.SubmitProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	challengeID := c.Param("challenge_id")
	p, err := h.lifecycle.SubmitProposal(c.Request.Context(), challengeID, middleware.UserID(c), payload.CoverLetter)
	if err != nil {
		writeError(c, "proposal", err)
		return
	}
	logger.Info("[proposal][handler] submitted", zap.String("challenge_id", challengeID), zap.String("proposal_id", p.ID))
	c.JSON(http.StatusCreated, response.FromProposal(p))
}

func (h *ChallengeHandler) ListProposals(c *gin.Context) {
	ps, err := h.lifecycle.ListProposals(c.Request.Context(), c.Param("challenge_id"))
	if err != nil {
		writeError(c, "proposal", err)
		return
	}
	c.JSON(http.StatusOK, response.FromProposals(ps))
}

// SelectProposal locks the challenge for one proposal and opens a checkout.
// The losing side of a race gets 409.
func (h *ChallengeHandler) SelectProposal(c *gin.Context) {
	if !requireRole(c, string(entities.ParticipantRoleCorporate)) {
		return
	}
	var payload request.SelectProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	challengeID, proposalID := c.Param("challenge_id"), c.Param("proposal_id")
	order, err := h.escrow.InitiateEscrow(c.Request.Context(), payload.ToCommand(challengeID, proposalID, middleware.UserID(c)))
	if err != nil {
		writeError(c, "escrow", err)
		return
	}
	logger.Info("[escrow][handler] checkout opened",
		zap.String("challenge_id", challengeID),
		zap.String("proposal_id", proposalID),
		zap.String("order_ref", order.ID),
	)
	c.JSON(http.StatusCreated, response.FromPaymentOrder(order))
}
