package http

import "pix-checkout/internal/domain"

// OrderStatusResponse mirrors the backend's status wire format, with
// the uppercase vocabulary the web client already understands.
type OrderStatusResponse struct {
	OrderID   string `json:"orderId"`
	Status    string `json:"status"`
	ExpiresAt string `json:"expiresAt,omitempty"`
}

func wireStatus(status domain.OrderStatus) string {
	switch status {
	case domain.StatusPaid:
		return "PAID"
	case domain.StatusCanceled:
		return "CANCELED"
	default:
		return "PENDING"
	}
}
