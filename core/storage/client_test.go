package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClient(t *testing.T) {
	t.Run("Strips scheme from endpoint", func(t *testing.T) {
		client, err := NewClient(Config{Endpoint: "http://localhost:9000"})
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("Invalid endpoint", func(t *testing.T) {
		client, err := NewClient(Config{Endpoint: "not a url"})
		assert.Error(t, err)
		assert.Nil(t, client)
	})
}
