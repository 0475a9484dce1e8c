package repository

import (
	"pix-checkout/internal/domain"
)

type OrderRepository interface {
	Save(rec *domain.OrderRecord) error
	UpdateStatus(orderID string, status domain.OrderStatus) error
	FindByOrderID(orderID string) (*domain.OrderRecord, error)
}
