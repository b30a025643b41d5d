package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// PaymentRequestDraft is the data entered into the payment form
type PaymentRequestDraft struct {
	SenderURL   string          `json:"sender_url"   validate:"required"`
	ReceiverURL string          `json:"receiver_url" validate:"required"`
	Amount      decimal.Decimal `json:"amount"       validate:"gt=0"`
}

// CreatePaymentRequest is the body sent to the coordinator to start a payment
type CreatePaymentRequest struct {
	SenderURL   string      `json:"sender_url"`
	ReceiverURL string      `json:"receiver_url"`
	Amount      json.Number `json:"amount"`
}

// NewCreatePaymentRequest builds the coordinator request for a draft. The
// amount is sent as a JSON number.
func NewCreatePaymentRequest(draft PaymentRequestDraft) CreatePaymentRequest {
	return CreatePaymentRequest{
		SenderURL:   draft.SenderURL,
		ReceiverURL: draft.ReceiverURL,
		Amount:      json.Number(draft.Amount.String()),
	}
}

// CreatePaymentResponse is the body returned by the coordinator when a quote
// and pending outgoing payment grant have been created
type CreatePaymentResponse struct {
	Message  string               `json:"message"`
	Response PendingGrantResponse `json:"response"`
}

// PendingGrantResponse holds the values needed to continue the grant
type PendingGrantResponse struct {
	QuoteID             string `json:"QUOTE_ID"`
	ContinueURI         string `json:"CONTINUE_URI"`
	ContinueAccessToken string `json:"CONTINUE_ACCESS_TOKEN"`
	InteractRedirectURL string `json:"INTERACT_REDIRECT_URL"`
}

// CreatePaymentResult is what a successful create-payment makes available for
// display. InteractRedirectURL is shown to the user but never stored.
type CreatePaymentResult struct {
	Message             string
	Grant               PaymentGrant
	InteractRedirectURL string
}
