package fixtures

import (
	"github.com/companieshouse/wallet-payments.web.ch.gov.uk/models"
	"github.com/shopspring/decimal"
)

// Values returned by the canned coordinator responses
const (
	QuoteID             = "q1"
	ContinueURI         = "https://x/c"
	ContinueAccessToken = "tok"
	InteractRedirectURL = "https://x/r"
	SenderURL           = "https://sender/alice"
	ReceiverURL         = "https://receiver/bob"
)

func GetPaymentRequestDraft() models.PaymentRequestDraft {
	return models.PaymentRequestDraft{
		SenderURL:   SenderURL,
		ReceiverURL: ReceiverURL,
		Amount:      decimal.RequireFromString("10.50"),
	}
}

func GetCreatePaymentResponse() *models.CreatePaymentResponse {
	return &models.CreatePaymentResponse{
		Message: "Proceed with user interaction to finalize the payment",
		Response: models.PendingGrantResponse{
			QuoteID:             QuoteID,
			ContinueURI:         ContinueURI,
			ContinueAccessToken: ContinueAccessToken,
			InteractRedirectURL: InteractRedirectURL,
		},
	}
}

func GetPaymentGrant() models.PaymentGrant {
	return models.PaymentGrant{
		QuoteID:             QuoteID,
		ContinueURI:         ContinueURI,
		ContinueAccessToken: ContinueAccessToken,
	}
}

func GetFinishPaymentBody() string {
	return `{"outgoingPayments":[{"id":"https://sender/alice/outgoing-payments/1","quoteId":"q1"}]}`
}
