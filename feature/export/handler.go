package export

import (
	"errors"

	"brick-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for manifest exports.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the export routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/export")
	group.Post("/:format", h.HandleExport)
}

// exportRequest is the export request body.
type exportRequest struct {
	SetNumber string       `json:"set_number"`
	Rows      []MissingRow `json:"rows"`
	Options   Options      `json:"options"`
}

// HandleExport renders a marketplace-import manifest.
// @Summary Generate Export Manifest
// @Description Render a CSV manifest for the given format, partitioned into mapped rows and an unmapped remainder.
// @Tags export
// @Accept json
// @Produce json
// @Param format path string true "Export format (rebrickable, bricklink, element)"
// @Param request body export.exportRequest true "Shortage rows and options"
// @Success 200 {object} export.Result "Manifest and unmapped rows"
// @Failure 400 {object} map[string]string "Unknown format or invalid body"
// @Router /export/{format} [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req exportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	result, err := h.service.Generate(c.Context(), c.Params("format"), req.SetNumber, req.Rows, req.Options)
	if err != nil {
		if errors.Is(err, ErrUnknownFormat) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		l.Error("Export generation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(result)
}
