package routes

import (
	"net/http"

	_ "fellowship_escrow/docs"
	"fellowship_escrow/internal/adapter/http/handlers"
	"fellowship_escrow/internal/adapter/http/middleware"
	"fellowship_escrow/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Challenges *handlers.ChallengeHandler
	Payments   *handlers.PaymentHandler
	Rooms      *handlers.RoomHandler
	Realtime   *handlers.RealtimeHandler
}

// Setup builds the engine. Everything under /v1 needs a JWT except ping and
// the gateway webhook.
func Setup(h Handlers, jwtSecret string) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWebhookRoutes(v1, h.Payments)

	private := v1.Group("", middleware.JWT(jwtSecret))
	addChallengeRoutes(private, h.Challenges)
	addPaymentRoutes(private, h.Payments)
	addRoomRoutes(private, h.Rooms, h.Realtime)

	return router
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func setMiddlewares(router *gin.Engine) {
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("[http][router] recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
