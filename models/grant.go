package models

import "encoding/json"

// PaymentGrant is the quote and continuation credentials captured from a
// successful create-payment call
type PaymentGrant struct {
	QuoteID             string `json:"quote_id"`
	ContinueURI         string `json:"continue_uri"`
	ContinueAccessToken string `json:"continue_access_token"`
}

// IsComplete reports whether every grant value has been captured
func (g PaymentGrant) IsComplete() bool {
	return g.QuoteID != "" && g.ContinueURI != "" && g.ContinueAccessToken != ""
}

// PaymentCompletionRequest is the body sent to the coordinator to finalize a
// payment. It is derived from a PaymentGrant and is never stored.
type PaymentCompletionRequest struct {
	QuoteID                 string `json:"quoteId"                 validate:"required"`
	ContinueURI             string `json:"continueUri"             validate:"required"`
	ContinueAccessToken     string `json:"continueAccessToken"     validate:"required"`
	SendingWalletAddressURL string `json:"sendingWalletAddressUrl" validate:"required"`
}

// NewPaymentCompletionRequest derives the completion request from a grant and
// the sender wallet address
func NewPaymentCompletionRequest(grant PaymentGrant, senderURL string) PaymentCompletionRequest {
	return PaymentCompletionRequest{
		QuoteID:                 grant.QuoteID,
		ContinueURI:             grant.ContinueURI,
		ContinueAccessToken:     grant.ContinueAccessToken,
		SendingWalletAddressURL: senderURL,
	}
}

// FinishPaymentResponse is the body returned by the coordinator once the
// payment has been finalized. Its content is not interpreted.
type FinishPaymentResponse struct {
	Body json.RawMessage
}
