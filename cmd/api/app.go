package main

import (
	"context"
	"fmt"

	"fellowship_escrow/internal/adapter/http/handlers"
	"fellowship_escrow/internal/adapter/http/routes"
	"fellowship_escrow/internal/adapter/persistence/memory"
	"fellowship_escrow/internal/adapter/persistence/repository"
	"fellowship_escrow/internal/infrastructure/cache"
	"fellowship_escrow/internal/infrastructure/config"
	"fellowship_escrow/internal/infrastructure/database"
	"fellowship_escrow/internal/infrastructure/idgen"
	"fellowship_escrow/internal/infrastructure/logger"
	"fellowship_escrow/internal/infrastructure/payments"
	"fellowship_escrow/internal/infrastructure/realtime"
	"fellowship_escrow/internal/task"
	"fellowship_escrow/internal/usecase"
	"fellowship_escrow/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type stores struct {
	challenges interfaces.IChallengeRepository
	proposals  interfaces.IProposalRepository
	rooms      interfaces.IProjectRoomRepository
	messages   interfaces.IRoomMessageRepository
	orders     interfaces.IPaymentOrderRepository
	tx         interfaces.IMarketplaceTransactor
}

type app struct {
	router *gin.Engine
	tasks  *task.Manager
	sweep  *task.PaymentSweepJob
	redis  *redis.Client
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	s, err := openStores(ctx, cfg)
	if err != nil {
		return nil, err
	}

	ids, err := idgen.NewSnowflake(cfg.Server.NodeID)
	if err != nil {
		return nil, fmt.Errorf("message id generator: %w", err)
	}

	a := &app{}
	hub := realtime.NewHub()
	var limiter interfaces.IRateLimiter
	if cfg.Redis.Enabled() {
		a.redis, err = cache.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, err
		}
		limiter = cache.NewRedisLimiter(a.redis, cfg.Message.RateLimit, cfg.Message.RateWindow, "ratelimit")
		relay := realtime.NewRedisRelay(a.redis)
		hub.UsePublisher(relay)
		go func() {
			if err := relay.Run(ctx, hub); err != nil {
				logger.Error("[app][wire] room relay stopped", zap.Error(err))
			}
		}()
	} else {
		logger.Info("[app][wire] redis not configured; rate limit and fan-out stay in process")
		limiter = cache.NewMemoryLimiter(cfg.Message.RateLimit, cfg.Message.RateWindow)
	}
	presence := realtime.NewPresence(hub, cfg.Realtime.TypingTTL)

	gateway, err := payments.NewMercadoPagoGateway(payments.GatewayOptions{
		AccessToken:         cfg.MercadoPago.AccessToken,
		WebhookSecret:       cfg.Payment.WebhookSecret,
		NotificationBaseURL: cfg.Payment.NotificationBaseURL,
		Mock:                cfg.Payment.GatewayMock,
	})
	if err != nil {
		return nil, err
	}

	lifecycle := usecase.NewLifecycleUseCase(s.challenges, s.proposals, s.rooms, s.tx, cfg.Payment.Currency)
	escrow := usecase.NewEscrowUseCase(lifecycle, s.orders, gateway, cfg.Payment.SelectionTimeout)
	messaging := usecase.NewMessagingUseCase(lifecycle, s.messages, hub, presence, limiter, ids)

	a.router = routes.Setup(routes.Handlers{
		Challenges: handlers.NewChallengeHandler(lifecycle, escrow),
		Payments:   handlers.NewPaymentHandler(escrow, lifecycle),
		Rooms:      handlers.NewRoomHandler(messaging),
		Realtime: handlers.NewRealtimeHandler(messaging, hub, presence, realtime.ClientOptions{
			PongWait:   cfg.Realtime.PongWait,
			PingPeriod: cfg.Realtime.PingPeriod(),
			SendBuffer: cfg.Realtime.SendBuffer,
		}),
	}, cfg.JWT.Secret)

	if a.tasks, err = task.NewManager(); err != nil {
		return nil, err
	}
	if a.sweep, err = task.NewPaymentSweepJob(escrow, cfg.Payment.SweepInterval, cfg.Payment.SweepWorkers); err != nil {
		return nil, err
	}
	if err := a.tasks.Register(a.sweep); err != nil {
		return nil, err
	}
	a.tasks.Start()

	return a, nil
}

func openStores(ctx context.Context, cfg *config.Config) (stores, error) {
	if cfg.Store.Driver == "memory" {
		logger.Warn("[app][wire] using in-memory store; data is lost on restart")
		m := memory.NewStore()
		return stores{
			challenges: m.Challenges(),
			proposals:  m.Proposals(),
			rooms:      m.Rooms(),
			messages:   m.Messages(),
			orders:     m.Orders(),
			tx:         m.Transactor(),
		}, nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBOptions{Region: cfg.AWS.Region, Endpoint: cfg.DynamoDB.Endpoint})
	if err != nil {
		return stores{}, fmt.Errorf("connect dynamodb: %w", err)
	}
	tables := repository.Tables{
		Challenges:    cfg.Tables.Challenges,
		Proposals:     cfg.Tables.Proposals,
		Rooms:         cfg.Tables.Rooms,
		Messages:      cfg.Tables.Messages,
		PaymentOrders: cfg.Tables.PaymentOrder,
	}
	return stores{
		challenges: repository.NewChallengeDynamoRepository(ddb, tables.Challenges),
		proposals:  repository.NewProposalDynamoRepository(ddb, tables.Proposals),
		rooms:      repository.NewProjectRoomDynamoRepository(ddb, tables.Rooms),
		messages:   repository.NewRoomMessageDynamoRepository(ddb, tables.Messages),
		orders:     repository.NewPaymentOrderDynamoRepository(ddb, tables.PaymentOrders),
		tx:         repository.NewMarketplaceDynamoTransactor(ddb, tables),
	}, nil
}

func (a *app) close() {
	if a.tasks != nil {
		a.tasks.Stop()
	}
	if a.sweep != nil {
		a.sweep.Close()
	}
	if a.redis != nil {
		_ = a.redis.Close()
	}
}
