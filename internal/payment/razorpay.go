package payment

import (
	"errors"
	"fmt"
	"time"

	razorpay "github.com/razorpay/razorpay-go"
	"go.uber.org/zap"
)

// ErrNotConfigured is returned when order creation is attempted without
// gateway credentials.
var ErrNotConfigured = errors.New("payment gateway is not configured")

// OrderRequest is one order-creation request. Amount is in currency units;
// the gateway is billed in minor units.
type OrderRequest struct {
	Amount   float64           `json:"amount"`
	Currency string            `json:"currency"`
	Notes    map[string]string `json:"notes"`
}

// Client wraps payment order creation against Razorpay. A client without
// credentials is valid but refuses to create orders.
type Client struct {
	api *razorpay.Client
	log *zap.SugaredLogger
}

func NewClient(keyID, keySecret string, log *zap.SugaredLogger) *Client {
	c := &Client{log: log}
	if keyID != "" && keySecret != "" {
		c.api = razorpay.NewClient(keyID, keySecret)
	}
	return c
}

// Configured reports whether gateway credentials were supplied.
func (c *Client) Configured() bool {
	return c.api != nil
}

// CreateOrder creates a payment order and returns the gateway's order object.
func (c *Client) CreateOrder(req *OrderRequest) (map[string]interface{}, error) {
	if c.api == nil {
		return nil, ErrNotConfigured
	}

	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}

	notes := map[string]interface{}{}
	for key, value := range req.Notes {
		notes[key] = value
	}

	data := map[string]interface{}{
		"amount":   int64(req.Amount * 100),
		"currency": currency,
		"receipt":  fmt.Sprintf("order_%d", time.Now().UnixMilli()),
		"notes":    notes,
	}

	order, err := c.api.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment order: %w", err)
	}

	c.log.Infow("payment order created", "currency", currency, "amount", req.Amount)
	return order, nil
}
