package export_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"brick-manager/core/storage"
	"brick-manager/feature/export"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func setupApp() *fiber.App {
	svc := export.NewService(nil, nil, storage.Config{}, zap.NewNop())

	app := fiber.New()
	feature := export.NewFeature(svc)
	_ = feature.Load(app.Group("/api"))
	return app
}

func postExport(t *testing.T, app *fiber.App, format, body string) (int, map[string]any) {
	req := httptest.NewRequest("POST", "/api/export/"+format, bytes.NewBufferString(body))
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

func TestHandleExport_Bricklink(t *testing.T) {
	app := setupApp()

	body := `{
		"set_number": "75192-1",
		"rows": [
			{"part_id": "3001", "quantity_missing": 3, "identity": {"row_type": "catalog_part", "bl_part_id": "3001", "bl_color_id": 5}},
			{"part_id": "9999", "quantity_missing": 2}
		]
	}`

	status, payload := postExport(t, app, "bricklink", body)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Item Type,Item No,Color,Quantity,Condition,Description\nP,3001,5,3,N,", payload["csv"])

	unmapped, ok := payload["unmapped"].([]any)
	assert.True(t, ok)
	assert.Len(t, unmapped, 1)
}

func TestHandleExport_UnknownFormat(t *testing.T) {
	app := setupApp()

	status, payload := postExport(t, app, "ldraw", `{"rows": []}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, payload["error"], "unknown export format")
}

func TestHandleExport_InvalidBody(t *testing.T) {
	app := setupApp()

	status, _ := postExport(t, app, "element", `{"rows": `)
	assert.Equal(t, fiber.StatusBadRequest, status)
}
