// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/schoolform/order-service/internal/client"
	"github.com/schoolform/order-service/internal/domain/model"
)

type MockSheetWriter struct {
	mock.Mock
}

func (m *MockSheetWriter) Append(ctx context.Context, order *model.Order) (client.SheetResult, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(client.SheetResult), args.Error(1)
}
