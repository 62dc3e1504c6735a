package validate_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"brick-manager/core/cache"
	"brick-manager/core/catalogapi/mocks"
	"brick-manager/core/ratelimit"
	"brick-manager/feature/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type noopStore struct{}

func (noopStore) UpdatePartMapping(_ context.Context, _, _ string) error { return nil }

func setupApp(checker *mocks.Client, limits ratelimit.Config) *fiber.App {
	svc := validate.NewService(checker, noopStore{}, nil, cache.New[string, bool](16), zap.NewNop())
	limiter := ratelimit.New(nil, zap.NewNop())

	app := fiber.New()
	handler := validate.NewHandler(svc, limiter, limits)
	handler.RegisterRoutes(app.Group("/api"))
	return app
}

func postValidate(t *testing.T, app *fiber.App, body string) (int, map[string]any) {
	req := httptest.NewRequest("POST", "/api/parts/validate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)

	var payload map[string]any
	assert.NoError(t, json.Unmarshal(raw, &payload))
	return resp.StatusCode, payload
}

func TestHandleValidate_OK(t *testing.T) {
	checker := new(mocks.Client)
	checker.On("PartExists", mock.Anything, "3001").Return(true, nil)

	app := setupApp(checker, ratelimit.Config{WindowSeconds: 60, MaxHits: 10, GlobalMaxHits: 100})

	status, payload := postValidate(t, app, `{"bl_part_id": "3001"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "3001", payload["valid_id"])
	assert.Equal(t, false, payload["corrected"])
}

func TestHandleValidate_EmptyID(t *testing.T) {
	checker := new(mocks.Client)
	app := setupApp(checker, ratelimit.Config{WindowSeconds: 60, MaxHits: 10, GlobalMaxHits: 100})

	status, payload := postValidate(t, app, `{"bl_part_id": ""}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.NotEmpty(t, payload["error"])
	checker.AssertNotCalled(t, "PartExists", mock.Anything, mock.Anything)
}

func TestHandleValidate_EmptyIDDoesNotConsumeBudget(t *testing.T) {
	checker := new(mocks.Client)
	checker.On("PartExists", mock.Anything, "3001").Return(true, nil)

	app := setupApp(checker, ratelimit.Config{WindowSeconds: 60, MaxHits: 1, GlobalMaxHits: 1})

	// Malformed requests are rejected before the window counters are
	// touched, so the one-hit budget stays available.
	status, _ := postValidate(t, app, `{"bl_part_id": ""}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = postValidate(t, app, `{"bl_part_id": "   "}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, payload := postValidate(t, app, `{"bl_part_id": "3001"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "3001", payload["valid_id"])
}

func TestHandleValidate_RateLimited(t *testing.T) {
	checker := new(mocks.Client)
	checker.On("PartExists", mock.Anything, "3001").Return(true, nil)

	app := setupApp(checker, ratelimit.Config{WindowSeconds: 60, MaxHits: 1, GlobalMaxHits: 100})

	status, _ := postValidate(t, app, `{"bl_part_id": "3001"}`)
	assert.Equal(t, fiber.StatusOK, status)

	status, payload := postValidate(t, app, `{"bl_part_id": "3001"}`)
	assert.Equal(t, fiber.StatusTooManyRequests, status)
	assert.GreaterOrEqual(t, payload["retry_after_seconds"].(float64), float64(1))
}

func TestHandleValidate_GlobalCeiling(t *testing.T) {
	checker := new(mocks.Client)
	checker.On("PartExists", mock.Anything, "3001").Return(true, nil)

	// Per-caller limit is generous; the global ceiling trips first.
	app := setupApp(checker, ratelimit.Config{WindowSeconds: 60, MaxHits: 100, GlobalMaxHits: 1})

	status, _ := postValidate(t, app, `{"bl_part_id": "3001"}`)
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = postValidate(t, app, `{"bl_part_id": "3001"}`)
	assert.Equal(t, fiber.StatusTooManyRequests, status)
}
