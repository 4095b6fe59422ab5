package handler

import (
	"context"
	"time"

	"interview-prep/internal/domain"
	"interview-prep/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DBPinger is satisfied by *sqlx.DB.
type DBPinger interface {
	PingContext(ctx context.Context) error
}

type HealthResponse struct {
	Status     string `json:"status"`
	Production bool   `json:"production"`
	Database   string `json:"database"`
	Cache      string `json:"cache"`
}

type HealthHandler struct {
	db         DBPinger
	cache      domain.Cache
	production bool
}

func NewHealthHandler(db DBPinger, cache domain.Cache, production bool) *HealthHandler {
	return &HealthHandler{db: db, cache: cache, production: production}
}

// Health godoc
// @Summary Health check
// @Description Always 200 while the process serves requests; dependency state is reported in the body
// @Tags health
// @Produce json
// @Success 200 {object} handler.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	resp := HealthResponse{Status: "ok", Production: h.production, Database: "up", Cache: "up"}
	if err := h.db.PingContext(ctx); err != nil {
		logger.Get().Warn("Health check: database ping failed", zap.Error(err))
		resp.Database = "down"
	}
	if err := h.cache.Ping(ctx); err != nil {
		logger.Get().Warn("Health check: cache ping failed", zap.Error(err))
		resp.Cache = "down"
	}
	return c.JSON(resp)
}
