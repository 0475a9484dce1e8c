package infra

import (
	"context"

	"pix-checkout/internal/domain"
)

type PixGatewayInterface interface {
	CreateOrder(ctx context.Context, req *domain.OrderRequest) (*domain.Order, error)
	FetchStatus(ctx context.Context, orderID string) (*StatusUpdate, error)
}

var _ PixGatewayInterface = (*PixClient)(nil)
