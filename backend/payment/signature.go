package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// VerifySignature checks the provider callback signature: an HMAC-SHA256
// over "orderID|paymentID" keyed with the shared secret, hex encoded.
// hmac.Equal compares the whole signature in constant time, so a forged or
// truncated signature is never accepted.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
