package export

import (
	"github.com/gofiber/fiber/v2"
)

// Feature wires the export generators into the application loader.
type Feature struct {
	handler *Handler
}

// NewFeature creates the export feature.
func NewFeature(service *Service) *Feature {
	return &Feature{handler: NewHandler(service)}
}

// Name identifies the feature.
func (f *Feature) Name() string { return "export" }

// IsEnabled reports whether the feature should be loaded.
func (f *Feature) IsEnabled() bool { return true }

// Load registers the feature routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
