package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"golang.org/x/sync/singleflight"

	"pix-checkout/internal/domain"
	"pix-checkout/internal/infra"
	rabbit "pix-checkout/internal/infra/rabbitmq"
	"pix-checkout/internal/phone"
	"pix-checkout/internal/repository"
	"pix-checkout/internal/session"
	"pix-checkout/internal/validation"
)

var ErrOrderNotFound = errors.New("order not found")

// Status reads are cached for less than the poll interval so a burst of
// clients never sees a stale terminal state for long.
const statusCacheTTL = 2 * time.Second

// CheckoutService wires validation output through the PIX gateway into
// a tracked session, keeps the audit trail and announces paid orders.
type CheckoutService struct {
	gateway     infra.PixGatewayInterface
	sessions    *session.Store
	repo        repository.OrderRepository
	publisher   rabbit.PublisherInterface
	redisClient *redis.Client
	group       singleflight.Group
}

func NewCheckoutService(gateway infra.PixGatewayInterface, repo repository.OrderRepository, pub rabbit.PublisherInterface, pollInterval time.Duration) *CheckoutService {
	s := &CheckoutService{
		gateway:   gateway,
		repo:      repo,
		publisher: pub,
	}
	s.sessions = session.NewStore(gateway, pollInterval)
	s.sessions.SetOnChange(s.onStatusChange)
	return s
}

func (s *CheckoutService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

// Close halts every active poller.
func (s *CheckoutService) Close() {
	s.sessions.Close()
}

// CreateOrder turns a validated form into the canonical backend payload
// (normalized phone, amount in centavos) and submits it once. On
// failure the session never leaves empty and the error goes back to
// the caller untouched.
func (s *CheckoutService) CreateOrder(ctx context.Context, form *validation.CreateOrderForm) (*domain.Order, error) {
	amount, err := validation.ParseAmount(form.ProductValue)
	if err != nil {
		return nil, err
	}

	req := &domain.OrderRequest{
		CustomerName: form.CustomerName,
		Email:        form.Email,
		CPF:          form.CPF,
		Phone:        phone.Normalize(form.Phone),
		ProductName:  form.ProductName,
		Amount:       amount,
		Address:      form.Address,
	}

	sess := s.sessions.Begin()
	order, err := s.gateway.CreateOrder(ctx, req)
	if err != nil {
		s.sessions.Abandon(sess)
		return nil, err
	}
	s.sessions.Activate(sess, order)

	if s.repo != nil {
		rec := &domain.OrderRecord{
			OrderID:      order.OrderID,
			CustomerName: req.CustomerName,
			CPF:          req.CPF,
			Phone:        req.Phone,
			ProductName:  req.ProductName,
			Amount:       req.Amount,
			Status:       order.Status,
		}
		if err := s.repo.Save(rec); err != nil {
			log.Printf("audit save for order %s failed: %v", order.OrderID, err)
		}
	}

	s.dropStatusCache(ctx, order.OrderID)
	return order, nil
}

// GetOrder returns the session's view of an order, read through the
// Redis cache. Concurrent cache misses for one order collapse into a
// single session read.
func (s *CheckoutService) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	cacheKey := "order:" + orderID

	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var o domain.Order
			if err := json.Unmarshal([]byte(cached), &o); err == nil {
				return &o, nil
			}
		}
	}

	v, err, _ := s.group.Do(orderID, func() (interface{}, error) {
		sess, ok := s.sessions.Get(orderID)
		if !ok {
			return nil, ErrOrderNotFound
		}
		order := sess.Order()
		if order == nil {
			return nil, ErrOrderNotFound
		}

		if s.redisClient != nil {
			if data, err := json.Marshal(order); err == nil {
				s.redisClient.Set(ctx, cacheKey, data, statusCacheTTL)
			}
		}
		return order, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Order), nil
}

// ClearOrder is the explicit user reset back to an empty session.
func (s *CheckoutService) ClearOrder(ctx context.Context, orderID string) {
	s.sessions.Clear(orderID)
	s.dropStatusCache(ctx, orderID)
}

// onStatusChange runs whenever a session leaves pending: the cache is
// invalidated, the audit row updated, and a paid order announced for
// the WhatsApp confirmation. None of this can fail the checkout.
func (s *CheckoutService) onStatusChange(order *domain.Order, from, to domain.OrderStatus) {
	ctx := context.Background()
	s.dropStatusCache(ctx, order.OrderID)

	var rec *domain.OrderRecord
	if s.repo != nil {
		if err := s.repo.UpdateStatus(order.OrderID, to); err != nil {
			log.Printf("audit update for order %s failed: %v", order.OrderID, err)
		}
		r, err := s.repo.FindByOrderID(order.OrderID)
		if err != nil {
			log.Printf("audit lookup for order %s failed: %v", order.OrderID, err)
		}
		rec = r
	}

	if to != domain.StatusPaid || s.publisher == nil {
		return
	}

	evt := domain.OrderPaidEvent{
		OrderID: order.OrderID,
		PaidAt:  time.Now(),
	}
	if rec != nil {
		evt.CustomerName = rec.CustomerName
		evt.Phone = rec.Phone
		evt.ProductName = rec.ProductName
		evt.Amount = rec.Amount
	}

	if err := s.publisher.Publish(ctx, "order.paid", evt); err != nil {
		log.Printf("failed to publish order.paid for %s: %v", order.OrderID, err)
	}
}

func (s *CheckoutService) dropStatusCache(ctx context.Context, orderID string) {
	if s.redisClient != nil {
		s.redisClient.Del(ctx, "order:"+orderID)
	}
}
