package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"fellowship_escrow/internal/infrastructure/config"
	"fellowship_escrow/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Fellowship Escrow API
// @version         1.0
// @description     Challenge marketplace with escrow-backed selection and project rooms.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("[app][main] invalid configuration", zap.Error(err))
	}
	if err := logger.Init(logger.Options{Level: cfg.Log.Level, Output: cfg.Log.Output, File: cfg.Log.File}); err != nil {
		logger.Fatal("[app][main] logger init failed", zap.Error(err))
	}
	defer logger.Sync()

	if cfg.Server.Mode == gin.ReleaseMode || cfg.Server.Mode == gin.DebugMode || cfg.Server.Mode == gin.TestMode {
		gin.SetMode(cfg.Server.Mode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg)
	if err != nil {
		logger.Fatal("[app][main] startup failed", zap.Error(err))
	}
	defer a.close()

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("[app][main] listening", zap.String("addr", srv.Addr), zap.String("store", cfg.Store.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("[app][main] server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("[app][main] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("[app][main] graceful shutdown failed", zap.Error(err))
	}
}
