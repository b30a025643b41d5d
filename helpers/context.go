package helpers

import (
	"net/http"

	"github.com/companieshouse/wallet-payments.web.ch.gov.uk/models"
)

// ContextKey is a type for creating context keys
type ContextKey string

// ContextKeyPaymentSession identifies the browser's payment session on the request context
var ContextKeyPaymentSession = ContextKey("payment_session")

// GetPaymentSession returns the payment session put on the request context by
// the PaymentSessionInterceptor
func GetPaymentSession(r *http.Request) (*models.PaymentSession, bool) {
	paymentSession, ok := r.Context().Value(ContextKeyPaymentSession).(*models.PaymentSession)
	return paymentSession, ok && paymentSession != nil
}
