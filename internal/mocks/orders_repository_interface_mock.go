// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/schoolform/order-service/internal/domain/model"
	"github.com/schoolform/order-service/internal/repository"
)

type MockOrdersRepositoryInterface struct {
	mock.Mock
}

func (m *MockOrdersRepositoryInterface) Create(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrdersRepositoryInterface) GetByOrderID(ctx context.Context, orderID string) (*repository.OrderDocument, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.OrderDocument), args.Error(1)
}

func (m *MockOrdersRepositoryInterface) List(ctx context.Context, limit int) ([]repository.OrderDocument, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.OrderDocument), args.Error(1)
}
