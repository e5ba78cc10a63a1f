package payment

import (
	"context"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
)

type RazorpayGateway struct {
	client *razorpay.Client
}

func NewRazorpayGateway(keyID, secret string) *RazorpayGateway {
	return &RazorpayGateway{client: razorpay.NewClient(keyID, secret)}
}

func (g *RazorpayGateway) CreateOrder(ctx context.Context, amount int64, currency string) (*Order, error) {
	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create razorpay order: %w", err)
	}

	id, ok := body["id"].(string)
	if !ok {
		return nil, fmt.Errorf("razorpay order response has no id")
	}

	return &Order{
		ID:       id,
		Amount:   amount,
		Currency: currency,
	}, nil
}
