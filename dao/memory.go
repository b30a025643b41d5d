package dao

import (
	"context"
	"sync"
	"time"

	"github.com/companieshouse/wallet-payments.web.ch.gov.uk/models"
)

// sweepInterval is how often a save also removes every expired session
const sweepInterval = time.Minute

// MemoryStore keeps payment sessions in process. Sessions do not survive a
// restart.
type MemoryStore struct {
	mtx       sync.Mutex
	sessions  map[string]models.PaymentSessionDB
	now       func() time.Time
	lastSweep time.Time
}

// NewMemoryStore returns an empty in-memory session store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]models.PaymentSessionDB),
		now:      time.Now,
	}
}

// GetPaymentSession returns a copy of the stored session. Expired sessions
// are removed and reported as absent.
func (m *MemoryStore) GetPaymentSession(_ context.Context, id string) (*models.PaymentSessionDB, error) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	paymentSession, ok := m.sessions[id]
	if !ok {
		return nil, nil
	}

	if !m.now().Before(paymentSession.ExpiresAt) {
		delete(m.sessions, id)
		return nil, nil
	}

	return &paymentSession, nil
}

// SavePaymentSession inserts or replaces the session. Sessions that are never
// read again are removed by the periodic sweep.
func (m *MemoryStore) SavePaymentSession(_ context.Context, paymentSession *models.PaymentSessionDB) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	now := m.now()
	if now.Sub(m.lastSweep) >= sweepInterval {
		m.sweep(now)
	}

	m.sessions[paymentSession.ID] = *paymentSession
	return nil
}

// sweep removes expired sessions. The caller must hold mtx.
func (m *MemoryStore) sweep(now time.Time) {
	for id, paymentSession := range m.sessions {
		if !now.Before(paymentSession.ExpiresAt) {
			delete(m.sessions, id)
		}
	}
	m.lastSweep = now
}
