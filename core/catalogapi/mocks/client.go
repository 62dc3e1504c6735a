package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of catalogapi.Client
type Client struct {
	mock.Mock
}

func (m *Client) PartExists(ctx context.Context, partID string) (bool, error) {
	args := m.Called(ctx, partID)
	return args.Bool(0), args.Error(1)
}

func (m *Client) LookupMinifig(ctx context.Context, rbFigID string) (string, error) {
	args := m.Called(ctx, rbFigID)
	return args.String(0), args.Error(1)
}
