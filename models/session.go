package models

import "time"

// SessionState is the position of a payment session in the two step flow
type SessionState string

// Session states
const (
	SessionEmpty     SessionState = "empty"
	SessionGrantHeld SessionState = "grant-held"
	SessionCompleted SessionState = "completed"
)

// PaymentSession is the state held for a single browser session
type PaymentSession struct {
	ID        string
	Draft     PaymentRequestDraft
	Grant     PaymentGrant
	State     SessionState
	CreatedAt time.Time
	ExpiresAt time.Time
}

// NewPaymentSession returns an empty session expiring after the given lifetime
func NewPaymentSession(id string, now time.Time, lifetime time.Duration) *PaymentSession {
	// To match the format time is saved to mongo, truncate the time
	now = now.Truncate(time.Millisecond)
	return &PaymentSession{
		ID:        id,
		State:     SessionEmpty,
		CreatedAt: now,
		ExpiresAt: now.Add(lifetime),
	}
}

// IsExpired reports whether the session lifetime has passed
func (s *PaymentSession) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
