package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"pix-checkout/internal/domain"
)

// StatusUpdate is the backend's answer to a status poll.
type StatusUpdate struct {
	OrderID   string `json:"orderId"`
	Status    string `json:"status"`
	ExpiresAt string `json:"expiresAt"`
}

// PixClient talks JSON over HTTP to the NestJS payment backend.
type PixClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewPixClient(baseURL string, timeout time.Duration) *PixClient {
	return &PixClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// CreateOrder submits the charge once. Any transport fault or non-2xx
// answer is returned as an error; there is no retry here.
func (c *PixClient) CreateOrder(ctx context.Context, req *domain.OrderRequest) (*domain.Order, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("pix backend returned status %d", resp.StatusCode)
	}

	var order domain.Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, err
	}
	order.Status = MapStatus(string(order.Status))
	return &order, nil
}

// FetchStatus polls the backend once. A non-2xx answer means "no
// update" and comes back as (nil, nil) so a blip never breaks the
// polling loop; only transport faults surface as errors.
func (c *PixClient) FetchStatus(ctx context.Context, orderID string) (*StatusUpdate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/orders/%s/status", c.baseURL, orderID), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, nil
	}

	var update StatusUpdate
	if err := json.NewDecoder(resp.Body).Decode(&update); err != nil {
		return nil, err
	}
	return &update, nil
}

// MapStatus folds backend status strings into the client-side enum.
// Unrecognized values stay pending so a legitimate wait is never cut
// short by a vocabulary mismatch.
func MapStatus(raw string) domain.OrderStatus {
	switch raw {
	case "PAID", string(domain.StatusPaid):
		return domain.StatusPaid
	case "CANCELED", string(domain.StatusCanceled):
		return domain.StatusCanceled
	default:
		return domain.StatusPending
	}
}
