package validate

import (
	"errors"
	"strings"
	"time"

	"brick-manager/core/logger"
	"brick-manager/core/middleware/auth"
	"brick-manager/core/ratelimit"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for part-ID validation.
type Handler struct {
	service *Service
	limiter *ratelimit.Limiter
	limits  ratelimit.Config
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, limiter *ratelimit.Limiter, limits ratelimit.Config) *Handler {
	return &Handler{service: service, limiter: limiter, limits: limits}
}

// RegisterRoutes registers the validation routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/parts")
	group.Post("/validate", h.HandleValidate)
}

// HandleValidate validates a stored BrickLink part ID and self-heals it.
// @Summary Validate Part ID
// @Description Check a stored BrickLink part ID against the live catalog, correcting it when stale.
// @Tags validate
// @Accept json
// @Produce json
// @Param request body validate.Request true "Validation request"
// @Success 200 {object} validate.Response "Validation outcome"
// @Failure 400 {object} map[string]string "Missing part ID"
// @Failure 429 {object} map[string]any "Rate limit exceeded"
// @Router /parts/validate [post]
func (h *Handler) HandleValidate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	// Reject malformed input before touching the window counters: a
	// request that can never reach the catalog must not burn budget.
	if strings.TrimSpace(req.BLPartID) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": ErrEmptyPartID.Error(),
		})
	}

	window := time.Duration(h.limits.WindowSeconds) * time.Second

	// Caller-scoped ceiling first, then the global one. Both counters are
	// consumed before any external catalog call.
	caller := h.limiter.Consume(c.Context(), "validate:caller:"+callerKey(c), ratelimit.Options{
		Window:  window,
		MaxHits: h.limits.MaxHits,
	})
	if !caller.Allowed {
		return rateLimited(c, caller)
	}

	global := h.limiter.Consume(c.Context(), "validate:global", ratelimit.Options{
		Window:  window,
		MaxHits: h.limits.GlobalMaxHits,
	})
	if !global.Allowed {
		return rateLimited(c, global)
	}

	resp, err := h.service.Validate(c.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmptyPartID) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		l.Error("Validation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(resp)
}

// callerKey scopes the rate limit to the API key when present, falling
// back to the client IP.
func callerKey(c *fiber.Ctx) string {
	if key := c.Get(auth.HeaderName); key != "" {
		return key
	}
	return c.IP()
}

func rateLimited(c *fiber.Ctx, d ratelimit.Decision) error {
	return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
		"error":               "rate limit exceeded",
		"retry_after_seconds": d.RetryAfterSeconds,
	})
}
