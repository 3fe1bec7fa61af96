// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/schoolform/order-service/internal/service"
)

type MockOrderFormService struct {
	mock.Mock
}

func (m *MockOrderFormService) Create() service.FormView {
	args := m.Called()
	return args.Get(0).(service.FormView)
}

func (m *MockOrderFormService) Get(id string) (service.FormView, error) {
	args := m.Called(id)
	return args.Get(0).(service.FormView), args.Error(1)
}

func (m *MockOrderFormService) ApplySelection(id, lineID string, selected bool, option string) (service.FormView, error) {
	args := m.Called(id, lineID, selected, option)
	return args.Get(0).(service.FormView), args.Error(1)
}

func (m *MockOrderFormService) SetGuardian(id, field, value string) (service.FormView, error) {
	args := m.Called(id, field, value)
	return args.Get(0).(service.FormView), args.Error(1)
}

func (m *MockOrderFormService) Submit(ctx context.Context, id, locale string) (service.FormView, error) {
	args := m.Called(ctx, id, locale)
	return args.Get(0).(service.FormView), args.Error(1)
}

func (m *MockOrderFormService) Reset(id string) (service.FormView, error) {
	args := m.Called(id)
	return args.Get(0).(service.FormView), args.Error(1)
}

func (m *MockOrderFormService) Return(id string) (service.FormView, error) {
	args := m.Called(id)
	return args.Get(0).(service.FormView), args.Error(1)
}
