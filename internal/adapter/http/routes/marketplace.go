package routes

import (
	"fellowship_escrow/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathChallenges = "/challenges"
	PathPayments   = "/payments"
	PathRooms      = "/rooms"
)

func addChallengeRoutes(rg *gin.RouterGroup, h *handlers.ChallengeHandler) {
	challenges := rg.Group(PathChallenges)
	{
		challenges.POST("", h.PostChallenge)
		challenges.GET("/:challenge_id", h.GetChallenge)
		challenges.POST("/:challenge_id/cancel", h.CancelChallenge)
		challenges.POST("/:challenge_id/proposals", h.SubmitProposal)
		challenges.GET("/:challenge_id/proposals", h.ListProposals)
		challenges.POST("/:challenge_id/proposals/:proposal_id/select", h.SelectProposal)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.GET("/:order_ref", h.GetPayment)
		payments.POST("/:order_ref/cancel", h.CancelPayment)
	}
}

// addWebhookRoutes is mounted outside the JWT group; the gateway signs its
// notifications instead.
func addWebhookRoutes(rg *gin.RouterGroup, h *handlers.PaymentHandler) {
	rg.POST(PathPayments+"/:order_ref/webhook", h.Webhook)
}

func addRoomRoutes(rg *gin.RouterGroup, h *handlers.RoomHandler, ws *handlers.RealtimeHandler) {
	rooms := rg.Group(PathRooms)
	{
		rooms.GET("/:room_id", h.GetRoom)
		rooms.GET("/:room_id/messages", h.ListMessages)
		rooms.POST("/:room_id/messages", h.SendMessage)
		rooms.POST("/:room_id/release", h.ReleaseFunds)
		rooms.POST("/:room_id/dispute", h.DisputeFunds)
		rooms.GET("/:room_id/ws", ws.Connect)
	}
}
