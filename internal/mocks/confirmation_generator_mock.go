// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/schoolform/order-service/internal/domain/model"
)

type MockConfirmationGenerator struct {
	mock.Mock
}

func (m *MockConfirmationGenerator) Generate(ctx context.Context, order *model.Order) (string, error) {
	args := m.Called(ctx, order)
	return args.String(0), args.Error(1)
}
