package domain

import "time"

type OrderStatus string

const (
	StatusPending  OrderStatus = "pending"
	StatusPaid     OrderStatus = "paid"
	StatusCanceled OrderStatus = "canceled"
)

// Terminal reports whether the status admits no further transitions.
func (s OrderStatus) Terminal() bool {
	return s == StatusPaid || s == StatusCanceled
}

// Pix carries the charge payload returned by the payment backend. The
// copy-paste key doubles as the QR code content.
type Pix struct {
	TxID         string `json:"txid,omitempty"`
	CopyPasteKey string `json:"copyPasteKey"`
	ExpiresAt    string `json:"expiresAt"`
}

// Order is the client-side view of one PIX charge. It lives only for the
// duration of a checkout session and is never restored after a restart.
type Order struct {
	OrderID string      `json:"orderId"`
	Status  OrderStatus `json:"status"`
	Pix     *Pix        `json:"pix,omitempty"`
}

// OrderRequest is the canonical payload sent to the payment backend.
// Phone is already normalized to 55<ddd><number> and Amount is in
// centavos, capped at R$100,00 upstream by validation.
type OrderRequest struct {
	CustomerName string `json:"customerName"`
	Email        string `json:"email"`
	CPF          string `json:"cpf"`
	Phone        string `json:"phone"`
	ProductName  string `json:"productName"`
	Amount       int64  `json:"amount"`
	Address      string `json:"address"`
}

// OrderRecord is the audit row kept for every submitted charge. It is
// bookkeeping only: sessions are never rebuilt from it.
type OrderRecord struct {
	ID           uint64      `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID      string      `json:"orderId" gorm:"uniqueIndex;size:64;not null"`
	CustomerName string      `json:"customerName" gorm:"size:100;not null"`
	CPF          string      `json:"cpf" gorm:"size:14;not null"`
	Phone        string      `json:"phone" gorm:"size:16;not null"`
	ProductName  string      `json:"productName" gorm:"size:100;not null"`
	Amount       int64       `json:"amount" gorm:"not null"`
	Status       OrderStatus `json:"status" gorm:"type:enum('pending','paid','canceled');default:'pending'"`
	CreatedAt    time.Time   `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time   `json:"updatedAt" gorm:"autoUpdateTime"`
}
