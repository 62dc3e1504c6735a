package validate

import (
	"brick-manager/core/ratelimit"

	"github.com/gofiber/fiber/v2"
)

// Feature wires the validator into the application loader.
type Feature struct {
	handler *Handler
}

// NewFeature creates the validate feature.
func NewFeature(service *Service, limiter *ratelimit.Limiter, limits ratelimit.Config) *Feature {
	return &Feature{handler: NewHandler(service, limiter, limits)}
}

// Name identifies the feature.
func (f *Feature) Name() string { return "validate" }

// IsEnabled reports whether the feature should be loaded.
func (f *Feature) IsEnabled() bool { return true }

// Load registers the feature routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
