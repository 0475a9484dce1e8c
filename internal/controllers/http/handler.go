package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
	qrcode "github.com/skip2/go-qrcode"

	"pix-checkout/internal/format"
	"pix-checkout/internal/services"
	"pix-checkout/internal/validation"
)

type Handler struct {
	service  *services.CheckoutService
	validate *validatorv10.Validate
}

func NewHandler(s *services.CheckoutService) *Handler {
	return &Handler{service: s, validate: validation.New()}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/orders", h.CreateOrder)
	r.GET("/orders/:id", h.GetOrderStatus)
	r.GET("/orders/:id/qrcode", h.GetOrderQRCode)
	r.DELETE("/orders/:id", h.ClearOrder)
	r.GET("/format", h.FormatField)
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var form validation.CreateOrderForm
	if err := validation.BindForm(c, &form, h.validate); err != nil {
		return
	}

	order, err := h.service.CreateOrder(c.Request.Context(), &form)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (h *Handler) GetOrderStatus(c *gin.Context) {
	order, err := h.service.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := OrderStatusResponse{
		OrderID: order.OrderID,
		Status:  wireStatus(order.Status),
	}
	if order.Pix != nil {
		resp.ExpiresAt = order.Pix.ExpiresAt
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetOrderQRCode(c *gin.Context) {
	order, err := h.service.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if order.Pix == nil || order.Pix.CopyPasteKey == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "order has no pix payload"})
		return
	}

	png, err := qrcode.Encode(order.Pix.CopyPasteKey, qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func (h *Handler) ClearOrder(c *gin.Context) {
	h.service.ClearOrder(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}

// FormatField serves the live input masks so the thin web client does
// not duplicate the masking rules.
func (h *Handler) FormatField(c *gin.Context) {
	value := c.Query("value")

	var masked string
	switch c.Query("field") {
	case "cpf":
		masked = format.CPF(value)
	case "phone":
		masked = format.Phone(value)
	case "currency":
		masked = format.Currency(value)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "field must be cpf, phone or currency"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"value": masked})
}
