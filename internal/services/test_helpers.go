package services

import (
	"pix-checkout/internal/domain"
	"pix-checkout/internal/validation"
)

func CreateTestForm() *validation.CreateOrderForm {
	return &validation.CreateOrderForm{
		CustomerName: TestCustomerName,
		Email:        TestEmail,
		CPF:          TestCPF,
		Phone:        TestPhone,
		ProductName:  TestProductName,
		ProductValue: TestProductValue,
		Address:      TestAddress,
	}
}

func CreateTestOrder(id string, status domain.OrderStatus) *domain.Order {
	return &domain.Order{
		OrderID: id,
		Status:  status,
		Pix: &domain.Pix{
			TxID:         "tx-" + id,
			CopyPasteKey: TestCopyPasteKey,
			ExpiresAt:    TestExpiresAt,
		},
	}
}

const (
	TestOrderID      = "ord-123"
	TestCustomerName = "João da Silva"
	TestEmail        = "joao@exemplo.com"
	TestCPF          = "529.982.247-25"
	TestPhone        = "(21) 99999-8888"
	TestProductName  = "Café especial"
	TestProductValue = "10,00"
	TestAddress      = "Rua das Flores, 123 - Rio de Janeiro"
	TestCopyPasteKey = "00020126580014BR.GOV.BCB.PIX0136test-key-520400005303986540510.00"
	TestExpiresAt    = "2026-01-01T12:00:00Z"
)
