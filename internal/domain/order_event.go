package domain

import "time"

// OrderPaidEvent announces a confirmed payment. Phone is in the
// 55<ddd><number> form so the consumer can open a WhatsApp conversation
// without reparsing.
type OrderPaidEvent struct {
	OrderID      string    `json:"orderId"`
	CustomerName string    `json:"customerName"`
	Phone        string    `json:"phone"`
	ProductName  string    `json:"productName"`
	Amount       int64     `json:"amount"`
	PaidAt       time.Time `json:"paidAt"`
}
