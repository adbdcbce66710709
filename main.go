package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Kiaaa-Bai/CourierVerse/internal/config"
	"github.com/Kiaaa-Bai/CourierVerse/internal/game"
	"github.com/Kiaaa-Bai/CourierVerse/internal/server"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := newLogger(cfg.Debug)
	if err != nil {
		log.Fatal(err)
	}
	defer zl.Sync()
	logger := zl.Sugar()

	logger.Info("=== STARTING COURIERVERSE ===")

	rules, err := config.LoadRules(cfg.RulesFile)
	if err != nil {
		logger.Fatalf("rules: %v", err)
	}

	g, err := game.New(rules, game.NewDice(cfg.Seed))
	if err != nil {
		logger.Fatalf("game: %v", err)
	}
	g.Start()
	logger.Infof("Game created (seed %d, %d terrains, %d couriers per player)", g.Seed(), len(rules.Terrains), rules.DeckSize)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	broadcaster := server.NewBroadcaster(g, logger)
	go broadcaster.Run(ctx)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: server.SetupRouter(broadcaster, logger),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warnf("shutdown: %v", err)
		}
	}()

	logger.Infof("Server starting at port %s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalf("server failed: %v", err)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
