package transformers

import (
	"fmt"

	"github.com/companieshouse/wallet-payments.web.ch.gov.uk/models"
	"github.com/shopspring/decimal"
)

// PaymentSessionTransformer transforms payment sessions between the service
// and database models
type PaymentSessionTransformer struct{}

// TransformToDB transforms a payment session into its database model
func (pt PaymentSessionTransformer) TransformToDB(paymentSession models.PaymentSession) models.PaymentSessionDB {
	return models.PaymentSessionDB{
		ID: paymentSession.ID,
		Draft: models.PaymentRequestDraftDB{
			SenderURL:   paymentSession.Draft.SenderURL,
			ReceiverURL: paymentSession.Draft.ReceiverURL,
			Amount:      paymentSession.Draft.Amount.String(),
		},
		Grant:     models.PaymentGrantDB(paymentSession.Grant),
		State:     string(paymentSession.State),
		CreatedAt: paymentSession.CreatedAt,
		ExpiresAt: paymentSession.ExpiresAt,
	}
}

// TransformFromDB transforms a database payment session into the service model
func (pt PaymentSessionTransformer) TransformFromDB(dbSession models.PaymentSessionDB) (*models.PaymentSession, error) {
	amount := decimal.Zero
	if dbSession.Draft.Amount != "" {
		var err error
		amount, err = decimal.NewFromString(dbSession.Draft.Amount)
		if err != nil {
			return nil, fmt.Errorf("error parsing stored amount for session [%s]: [%v]", dbSession.ID, err)
		}
	}

	state := models.SessionState(dbSession.State)
	if state == "" {
		state = models.SessionEmpty
	}

	return &models.PaymentSession{
		ID: dbSession.ID,
		Draft: models.PaymentRequestDraft{
			SenderURL:   dbSession.Draft.SenderURL,
			ReceiverURL: dbSession.Draft.ReceiverURL,
			Amount:      amount,
		},
		Grant:     models.PaymentGrant(dbSession.Grant),
		State:     state,
		CreatedAt: dbSession.CreatedAt,
		ExpiresAt: dbSession.ExpiresAt,
	}, nil
}
