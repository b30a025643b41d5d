package models

import "time"

// PaymentSessionDB is a payment session as stored in the DB
type PaymentSessionDB struct {
	ID        string                `bson:"_id"`
	Draft     PaymentRequestDraftDB `bson:"draft"`
	Grant     PaymentGrantDB        `bson:"grant"`
	State     string                `bson:"state"`
	CreatedAt time.Time             `bson:"created_at"`
	ExpiresAt time.Time             `bson:"expires_at"`
}

// PaymentRequestDraftDB is the last form input for the session. The amount
// is stored as its decimal string.
type PaymentRequestDraftDB struct {
	SenderURL   string `bson:"sender_url"`
	ReceiverURL string `bson:"receiver_url"`
	Amount      string `bson:"amount"`
}

// PaymentGrantDB holds the captured grant for the session
type PaymentGrantDB struct {
	QuoteID             string `bson:"quote_id"`
	ContinueURI         string `bson:"continue_uri"`
	ContinueAccessToken string `bson:"continue_access_token"`
}
