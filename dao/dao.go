package dao

import (
	"context"
	"fmt"

	"github.com/companieshouse/wallet-payments.web.ch.gov.uk/config"
	"github.com/companieshouse/wallet-payments.web.ch.gov.uk/models"
)

// DAO is an interface for accessing payment sessions from a backend store
type DAO interface {
	// GetPaymentSession returns nil when the session is absent or expired
	GetPaymentSession(ctx context.Context, id string) (*models.PaymentSessionDB, error)
	SavePaymentSession(ctx context.Context, paymentSession *models.PaymentSessionDB) error
}

// NewDAO returns the session store selected by the config
func NewDAO(cfg *config.Config) (DAO, error) {
	switch cfg.SessionStore {
	case config.MemorySessionStore, "":
		return NewMemoryStore(), nil
	case config.MongoSessionStore:
		mongoService, err := NewMongoService(cfg)
		if err != nil {
			return nil, err
		}
		return mongoService, nil
	default:
		return nil, fmt.Errorf("session store [%s] not recognised", cfg.SessionStore)
	}
}
