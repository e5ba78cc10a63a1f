package payment

import "context"

// Order is the provider's order descriptor returned to the frontend so it
// can open the checkout widget.
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// Gateway creates provider orders. Signature verification of the payment
// callback lives in VerifySignature and needs no provider round trip.
type Gateway interface {
	CreateOrder(ctx context.Context, amount int64, currency string) (*Order, error)
}
