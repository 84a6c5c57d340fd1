package handler

import (
	"context"
	"time"

	"talent-hub/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports storage and cache reachability. The cache is
// optional, so a failed cache ping degrades the report without failing it.
type HealthHandler struct {
	store Pinger
	cache Pinger
}

func NewHealthHandler(store, cache Pinger) *HealthHandler {
	return &HealthHandler{store: store, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	report := fiber.Map{
		"status":  "ok",
		"storage": "ok",
		"cache":   "ok",
	}
	status := fiber.StatusOK

	if h.store == nil || h.store.Ping(ctx) != nil {
		report["status"] = "degraded"
		report["storage"] = "unreachable"
		status = fiber.StatusServiceUnavailable
	}
	if h.cache == nil || h.cache.Ping(ctx) != nil {
		report["cache"] = "unavailable"
	}

	return response.Success(c, status, "", report)
}
