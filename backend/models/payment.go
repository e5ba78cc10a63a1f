package models

import "gorm.io/gorm"

// Payment is an append-only audit row written only after the provider
// signature has been verified. The unique order id rejects replays.
type Payment struct {
	gorm.Model
	RazorpayOrderID   string `gorm:"type:varchar(100);uniqueIndex" json:"razorpay_order_id"`
	RazorpayPaymentID string `gorm:"type:varchar(100)" json:"razorpay_payment_id"`
	RazorpaySignature string `gorm:"type:varchar(200)" json:"razorpay_signature"`
}
