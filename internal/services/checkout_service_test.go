package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pix-checkout/internal/domain"
	"pix-checkout/internal/infra"
	"pix-checkout/internal/mocks"
	"pix-checkout/internal/validation"
)

const testPollInterval = 10 * time.Millisecond

func TestCheckoutService_CreateOrder(t *testing.T) {
	tests := []struct {
		name          string
		mutateForm    func(*validation.CreateOrderForm)
		setupMocks    func(*mocks.MockPixGateway, *mocks.MockOrderRepository, *mocks.MockPublisher)
		expectedError string
		wantGateway   bool
	}{
		{
			name: "successful order creation",
			setupMocks: func(gw *mocks.MockPixGateway, repo *mocks.MockOrderRepository, pub *mocks.MockPublisher) {
				gw.On("CreateOrder", mock.Anything, mock.MatchedBy(func(req *domain.OrderRequest) bool {
					// the form's phone and price arrive normalized
					return req.Phone == "5521999998888" && req.Amount == 1000
				})).Return(CreateTestOrder(TestOrderID, domain.StatusPending), nil)

				repo.On("Save", mock.MatchedBy(func(rec *domain.OrderRecord) bool {
					return rec.OrderID == TestOrderID && rec.Status == domain.StatusPending
				})).Return(nil)
			},
			wantGateway: true,
		},
		{
			name: "backend rejects submission",
			setupMocks: func(gw *mocks.MockPixGateway, repo *mocks.MockOrderRepository, pub *mocks.MockPublisher) {
				gw.On("CreateOrder", mock.Anything, mock.Anything).
					Return(nil, errors.New("pix backend returned status 500"))
			},
			expectedError: "pix backend returned status 500",
			wantGateway:   true,
		},
		{
			name: "audit failure does not fail the checkout",
			setupMocks: func(gw *mocks.MockPixGateway, repo *mocks.MockOrderRepository, pub *mocks.MockPublisher) {
				gw.On("CreateOrder", mock.Anything, mock.Anything).
					Return(CreateTestOrder(TestOrderID, domain.StatusPending), nil)
				repo.On("Save", mock.Anything).Return(errors.New("db down"))
			},
			wantGateway: true,
		},
		{
			name: "unparseable amount never reaches the gateway",
			mutateForm: func(f *validation.CreateOrderForm) {
				f.ProductValue = "abc"
			},
			setupMocks:    func(gw *mocks.MockPixGateway, repo *mocks.MockOrderRepository, pub *mocks.MockPublisher) {},
			expectedError: "amount out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := new(mocks.MockPixGateway)
			repo := new(mocks.MockOrderRepository)
			pub := new(mocks.MockPublisher)
			tt.setupMocks(gw, repo, pub)

			// long interval: polling is exercised separately
			s := NewCheckoutService(gw, repo, pub, time.Hour)
			defer s.Close()

			form := CreateTestForm()
			if tt.mutateForm != nil {
				tt.mutateForm(form)
			}

			order, err := s.CreateOrder(context.Background(), form)

			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				assert.Nil(t, order)

				// a failed submission leaves no session behind
				_, getErr := s.GetOrder(context.Background(), TestOrderID)
				assert.ErrorIs(t, getErr, ErrOrderNotFound)
			} else {
				require.NoError(t, err)
				assert.Equal(t, TestOrderID, order.OrderID)
				assert.Equal(t, domain.StatusPending, order.Status)

				got, getErr := s.GetOrder(context.Background(), TestOrderID)
				require.NoError(t, getErr)
				assert.Equal(t, domain.StatusPending, got.Status)
			}

			if !tt.wantGateway {
				gw.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
			}
			gw.AssertExpectations(t)
			repo.AssertExpectations(t)
		})
	}
}

func TestCheckoutService_PaidOrderIsAnnounced(t *testing.T) {
	gw := new(mocks.MockPixGateway)
	repo := new(mocks.MockOrderRepository)
	pub := new(mocks.MockPublisher)

	gw.On("CreateOrder", mock.Anything, mock.Anything).
		Return(CreateTestOrder(TestOrderID, domain.StatusPending), nil)
	gw.On("FetchStatus", mock.Anything, TestOrderID).
		Return(&infra.StatusUpdate{OrderID: TestOrderID, Status: "PAID"}, nil)

	repo.On("Save", mock.Anything).Return(nil)
	repo.On("UpdateStatus", TestOrderID, domain.StatusPaid).Return(nil)
	repo.On("FindByOrderID", TestOrderID).Return(&domain.OrderRecord{
		OrderID:      TestOrderID,
		CustomerName: TestCustomerName,
		Phone:        "5521999998888",
		ProductName:  TestProductName,
		Amount:       1000,
	}, nil)

	pub.On("Publish", mock.Anything, "order.paid", mock.MatchedBy(func(data any) bool {
		evt, ok := data.(domain.OrderPaidEvent)
		return ok && evt.OrderID == TestOrderID && evt.Phone == "5521999998888"
	})).Return(nil)

	s := NewCheckoutService(gw, repo, pub, testPollInterval)
	defer s.Close()

	_, err := s.CreateOrder(context.Background(), CreateTestForm())
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		order, err := s.GetOrder(context.Background(), TestOrderID)
		return err == nil && order.Status == domain.StatusPaid
	}, time.Second, testPollInterval)

	pub.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestCheckoutService_ClearOrder(t *testing.T) {
	gw := new(mocks.MockPixGateway)
	repo := new(mocks.MockOrderRepository)
	pub := new(mocks.MockPublisher)

	gw.On("CreateOrder", mock.Anything, mock.Anything).
		Return(CreateTestOrder(TestOrderID, domain.StatusPending), nil)
	repo.On("Save", mock.Anything).Return(nil)

	s := NewCheckoutService(gw, repo, pub, time.Hour)
	defer s.Close()

	_, err := s.CreateOrder(context.Background(), CreateTestForm())
	require.NoError(t, err)

	s.ClearOrder(context.Background(), TestOrderID)

	_, err = s.GetOrder(context.Background(), TestOrderID)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestCheckoutService_GetOrderUnknown(t *testing.T) {
	s := NewCheckoutService(new(mocks.MockPixGateway), new(mocks.MockOrderRepository), new(mocks.MockPublisher), time.Hour)
	defer s.Close()

	_, err := s.GetOrder(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
