package validation

import "strings"

// CreateOrderForm is the payload for POST /orders, exactly as the web
// form submits it: CPF and phone still masked, product value still a
// localized decimal string ("12,50").
type CreateOrderForm struct {
	CustomerName string `json:"customerName" validate:"required,max=100"`
	Email        string `json:"email" validate:"required,email,max=255"`
	CPF          string `json:"cpf" validate:"required,cpf"`
	Phone        string `json:"phone" validate:"required,br_phone"`
	ProductName  string `json:"productName" validate:"required,max=100"`
	ProductValue string `json:"productValue" validate:"required,brl_amount"`
	Address      string `json:"address" validate:"required,max=500"`
}

// Trim strips surrounding whitespace from every field before the
// validators run, so "   " fails required just like "".
func (f *CreateOrderForm) Trim() {
	f.CustomerName = strings.TrimSpace(f.CustomerName)
	f.Email = strings.TrimSpace(f.Email)
	f.CPF = strings.TrimSpace(f.CPF)
	f.Phone = strings.TrimSpace(f.Phone)
	f.ProductName = strings.TrimSpace(f.ProductName)
	f.ProductValue = strings.TrimSpace(f.ProductValue)
	f.Address = strings.TrimSpace(f.Address)
}
