package minifig

import (
	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for minifig mapping.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the minifig routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/minifigs")
	group.Post("/map", h.HandleMap)
}

// mapRequest is the bulk mapping request body.
type mapRequest struct {
	RBFigIDs []string `json:"rb_fig_ids"`
}

// HandleMap resolves a batch of Rebrickable minifig IDs to BrickLink IDs.
// @Summary Map Minifig IDs
// @Description Bulk-resolve Rebrickable minifig IDs to their BrickLink counterparts.
// @Tags minifig
// @Accept json
// @Produce json
// @Param request body minifig.mapRequest true "Minifig IDs to map"
// @Success 200 {object} map[string]minifig.Result "Mapping results keyed by RB fig ID"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /minifigs/map [post]
func (h *Handler) HandleMap(c *fiber.Ctx) error {
	var req mapRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	results := h.service.MapAll(c.Context(), req.RBFigIDs)
	return c.JSON(fiber.Map{"results": results})
}
