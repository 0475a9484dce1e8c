package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pix-checkout/internal/domain"
	"pix-checkout/internal/infra"
)

type MockPixGateway struct {
	mock.Mock
}

type MockOrderRepository struct {
	mock.Mock
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPixGateway) CreateOrder(ctx context.Context, req *domain.OrderRequest) (*domain.Order, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockPixGateway) FetchStatus(ctx context.Context, orderID string) (*infra.StatusUpdate, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*infra.StatusUpdate), args.Error(1)
}

func (m *MockOrderRepository) Save(rec *domain.OrderRecord) error {
	args := m.Called(rec)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatus(orderID string, status domain.OrderStatus) error {
	args := m.Called(orderID, status)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByOrderID(orderID string) (*domain.OrderRecord, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderRecord), args.Error(1)
}

func (m *MockPublisher) Publish(ctx context.Context, pattern string, data interface{}) error {
	args := m.Called(ctx, pattern, data)
	return args.Error(0)
}
