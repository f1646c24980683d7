package gateway

import (
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/razorpay/razorpay-go/utils"
)

// Gateway abstracts the payment provider so the reconciliation service can be
// tested without network calls. Amounts are in paise.
type Gateway interface {
	CreateOrder(amountPaise int, currency, receipt string) (string, error)
	FetchOrderStatus(orderID string) (string, error)
	VerifySignature(orderID, paymentID, signature string) error
	FetchLatestPaymentID(orderID string) (string, error)
}

type RazorpayGateway struct {
	client *razorpay.Client
	secret string
}

func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	client := razorpay.NewClient(keyID, keySecret)
	client.SetTimeout(10)
	return &RazorpayGateway{client: client, secret: keySecret}
}

func (g *RazorpayGateway) CreateOrder(amountPaise int, currency, receipt string) (string, error) {
	data := map[string]interface{}{
		"amount":   amountPaise,
		"currency": currency,
		"receipt":  receipt,
	}
	order, err := g.client.Order.Create(data, nil)
	if err != nil {
		return "", fmt.Errorf("create order: %w", err)
	}
	orderID, ok := order["id"].(string)
	if !ok || orderID == "" {
		return "", fmt.Errorf("create order: response missing id")
	}
	return orderID, nil
}

func (g *RazorpayGateway) FetchOrderStatus(orderID string) (string, error) {
	order, err := g.client.Order.Fetch(orderID, nil, nil)
	if err != nil {
		return "", fmt.Errorf("fetch order %s: %w", orderID, err)
	}
	status, ok := order["status"].(string)
	if !ok {
		return "", fmt.Errorf("fetch order %s: response missing status", orderID)
	}
	return status, nil
}

func (g *RazorpayGateway) VerifySignature(orderID, paymentID, signature string) error {
	params := map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
	}
	if !utils.VerifyPaymentSignature(params, signature, g.secret) {
		return fmt.Errorf("signature mismatch for order %s", orderID)
	}
	return nil
}

// FetchLatestPaymentID returns the most recent payment attempt captured
// against the order, used by the polling fallback when the checkout callback
// never fired.
func (g *RazorpayGateway) FetchLatestPaymentID(orderID string) (string, error) {
	payments, err := g.client.Order.Payments(orderID, nil, nil)
	if err != nil {
		return "", fmt.Errorf("fetch payments for order %s: %w", orderID, err)
	}
	items, ok := payments["items"].([]interface{})
	if !ok || len(items) == 0 {
		return "", nil
	}
	latest, ok := items[0].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("fetch payments for order %s: malformed response", orderID)
	}
	paymentID, _ := latest["id"].(string)
	return paymentID, nil
}
