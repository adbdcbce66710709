package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/Kiaaa-Bai/CourierVerse/internal/game"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func SetupRouter(b *Broadcaster, log *zap.SugaredLogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.GET("/state", stateHandler(b))
	api.POST("/game/start", commandHandler(b, game.CommandStart))
	api.POST("/game/reset", commandHandler(b, game.CommandReset))
	api.POST("/rounds/deal", commandHandler(b, game.CommandDeal))
	api.GET("/evaluate", commandHandler(b, game.CommandEvaluate))
	api.POST("/couriers/:id/assign", assignHandler(b))
	api.POST("/couriers/:id/bench", benchHandler(b))

	r.GET("/ws", HandleWebsocket(b, log))

	return r
}

type assignRequest struct {
	TerrainID string `json:"terrain_id" binding:"required"`
	Player    string `json:"player" binding:"required,oneof=A B"`
}

type benchRequest struct {
	Player string `json:"player" binding:"required,oneof=A B"`
}

func stateHandler(b *Broadcaster) gin.HandlerFunc {
	return func(c *gin.Context) {
		reply, err := b.Submit(c.Request.Context(), game.Command{Kind: game.CommandState})
		if err != nil {
			abort(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"state": reply.Snapshot})
	}
}

func commandHandler(b *Broadcaster, kind game.CommandKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		submit(c, b, game.Command{Kind: kind})
	}
}

func assignHandler(b *Broadcaster) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req assignRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "kind": "bad_request"})
			return
		}

		submit(c, b, game.Command{
			Kind:      game.CommandDrop,
			CourierID: c.Param("id"),
			TerrainID: req.TerrainID,
			Player:    game.Player(req.Player),
		})
	}
}

func benchHandler(b *Broadcaster) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req benchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "kind": "bad_request"})
			return
		}

		submit(c, b, game.Command{
			Kind:      game.CommandDrop,
			CourierID: c.Param("id"),
			Player:    game.Player(req.Player),
		})
	}
}

func submit(c *gin.Context, b *Broadcaster, cmd game.Command) {
	reply, err := b.Submit(c.Request.Context(), cmd)
	if err != nil {
		abort(c, err)
		return
	}
	if reply.Err != nil {
		abort(c, reply.Err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": reply.Result, "state": reply.Snapshot})
}

func abort(c *gin.Context, err error) {
	c.AbortWithStatusJSON(errorStatus(err), gin.H{"error": err.Error(), "kind": errorKind(err)})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, game.ErrUnknownEntity):
		return http.StatusNotFound
	case errors.Is(err, game.ErrInvalidAssignment), errors.Is(err, game.ErrUnknownCommand):
		return http.StatusUnprocessableEntity
	case errors.Is(err, game.ErrRoundsExhausted), errors.Is(err, game.ErrNotStarted):
		return http.StatusConflict
	default:
		return http.StatusServiceUnavailable
	}
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, game.ErrUnknownEntity):
		return "unknown_entity"
	case errors.Is(err, game.ErrInvalidAssignment):
		return "invalid_assignment"
	case errors.Is(err, game.ErrRoundsExhausted):
		return "rounds_exhausted"
	case errors.Is(err, game.ErrNotStarted):
		return "not_started"
	case errors.Is(err, game.ErrUnknownCommand):
		return "unknown_command"
	default:
		return "unavailable"
	}
}

func requestLogger(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Infow("request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"took", time.Since(start),
		)
	}
}
