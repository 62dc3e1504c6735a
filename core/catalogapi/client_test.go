package catalogapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartExists(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/items/part/3001":
			w.WriteHeader(http.StatusOK)
		case "/items/part/gone":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusBadGateway)
		}
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})

	exists, err := client.PartExists(context.Background(), "3001")
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = client.PartExists(context.Background(), "gone")
	assert.NoError(t, err)
	assert.False(t, exists)

	// Anything but 200/404 is a transient error for the caller to absorb.
	_, err = client.PartExists(context.Background(), "flaky")
	assert.Error(t, err)
}

func TestLookupMinifig(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/minifigs/fig-001234/bricklink":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"bricklink_id": "sw0001"}`))
		case "/minifigs/fig-999999/bricklink":
			w.WriteHeader(http.StatusNotFound)
		case "/minifigs/fig-broken/bricklink":
			_, _ = w.Write([]byte(`{not json`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})

	id, err := client.LookupMinifig(context.Background(), "fig-001234")
	assert.NoError(t, err)
	assert.Equal(t, "sw0001", id)

	id, err = client.LookupMinifig(context.Background(), "fig-999999")
	assert.NoError(t, err)
	assert.Empty(t, id)

	_, err = client.LookupMinifig(context.Background(), "fig-broken")
	assert.Error(t, err)
}
