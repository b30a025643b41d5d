package service

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/wallet-payments.web.ch.gov.uk/config"
	"github.com/companieshouse/wallet-payments.web.ch.gov.uk/coordinator"
	"github.com/companieshouse/wallet-payments.web.ch.gov.uk/dao"
	"github.com/companieshouse/wallet-payments.web.ch.gov.uk/events"
	"github.com/companieshouse/wallet-payments.web.ch.gov.uk/models"
	"github.com/companieshouse/wallet-payments.web.ch.gov.uk/transformers"
	"github.com/google/uuid"
)

// PaymentFormService sequences the create and finish payment calls for a
// browser session
type PaymentFormService struct {
	DAO         dao.DAO
	Coordinator coordinator.Client
	Publisher   events.Publisher
	Config      config.Config

	transformer transformers.PaymentSessionTransformer
	validate    *validate
	now         func() time.Time
}

// NewPaymentFormService returns a service using the given collaborators
func NewPaymentFormService(d dao.DAO, c coordinator.Client, p events.Publisher, cfg config.Config) *PaymentFormService {
	return &PaymentFormService{
		DAO:         d,
		Coordinator: c,
		Publisher:   p,
		Config:      cfg,
		validate:    newValidator(),
		now:         time.Now,
	}
}

// CreatePaymentSession starts an empty payment session and stores it
func (service *PaymentFormService) CreatePaymentSession(req *http.Request) (*models.PaymentSession, ResponseType, error) {
	lifetime, err := service.Config.SessionExpiry()
	if err != nil {
		return nil, Error, err
	}

	paymentSession := models.NewPaymentSession(uuid.NewString(), service.currentTime(), lifetime)

	err = service.save(req, paymentSession)
	if err != nil {
		return nil, Error, err
	}

	log.InfoR(req, "created payment session", log.Data{"session_id": paymentSession.ID})
	return paymentSession, Success, nil
}

// GetPaymentSession retrieves a payment session. An absent or expired
// session gives a NotFound response.
func (service *PaymentFormService) GetPaymentSession(req *http.Request, id string) (*models.PaymentSession, ResponseType, error) {
	dbSession, err := service.DAO.GetPaymentSession(req.Context(), id)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting payment session from db: [%v]", err)
	}
	if dbSession == nil {
		return nil, NotFound, nil
	}

	paymentSession, err := service.transformer.TransformFromDB(*dbSession)
	if err != nil {
		return nil, Error, err
	}

	if paymentSession.IsExpired(service.currentTime()) {
		return nil, NotFound, nil
	}

	return paymentSession, Success, nil
}

// CreatePayment validates the draft and asks the coordinator for a quote and
// pending grant. Only a successful call replaces the session grant; the draft
// is kept whatever the outcome so the form can be shown again.
func (service *PaymentFormService) CreatePayment(req *http.Request, paymentSession *models.PaymentSession, draft models.PaymentRequestDraft) (*models.CreatePaymentResult, ResponseType, error) {
	updated := *paymentSession
	updated.Draft = draft

	err := service.validator().draft(draft)
	if err != nil {
		service.saveDraft(req, paymentSession, updated)
		return nil, InvalidData, err
	}

	response, err := service.Coordinator.CreatePayment(req.Context(), models.NewCreatePaymentRequest(draft))
	if err != nil {
		service.saveDraft(req, paymentSession, updated)
		return nil, coordinatorResponseType(err), err
	}

	grant := models.PaymentGrant{
		QuoteID:             response.Response.QuoteID,
		ContinueURI:         response.Response.ContinueURI,
		ContinueAccessToken: response.Response.ContinueAccessToken,
	}
	if !grant.IsComplete() {
		service.saveDraft(req, paymentSession, updated)
		return nil, UpstreamError, fmt.Errorf("%w for quote [%s]", ErrIncompleteGrant, grant.QuoteID)
	}

	updated.Grant = grant
	updated.State = models.SessionGrantHeld

	err = service.save(req, &updated)
	if err != nil {
		return nil, Error, err
	}
	*paymentSession = updated

	log.InfoR(req, "payment grant created", log.Data{"session_id": paymentSession.ID, "quote_id": grant.QuoteID})

	return &models.CreatePaymentResult{
		Message:             response.Message,
		Grant:               grant,
		InteractRedirectURL: response.Response.InteractRedirectURL,
	}, Success, nil
}

// FinalizePayment continues the stored grant, creating the outgoing payments.
// Nothing is sent unless a full grant is held and senderURL is set.
func (service *PaymentFormService) FinalizePayment(req *http.Request, paymentSession *models.PaymentSession, senderURL string) (*models.FinishPaymentResponse, ResponseType, error) {
	completion := models.NewPaymentCompletionRequest(paymentSession.Grant, senderURL)

	err := service.validator().completion(completion)
	if err != nil {
		return nil, InvalidData, err
	}

	response, err := service.Coordinator.FinishPayment(req.Context(), completion)
	if err != nil {
		return nil, coordinatorResponseType(err), err
	}

	updated := *paymentSession
	updated.State = models.SessionCompleted

	// the payments have been made, so a failure to record that is only logged
	err = service.save(req, &updated)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error recording completed payment session: [%v]", err), log.Data{"session_id": paymentSession.ID})
	} else {
		*paymentSession = updated
	}

	err = service.Publisher.PublishPaymentFinalised(completion.QuoteID, completion.SendingWalletAddressURL)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error publishing payment finalised event: [%v]", err), log.Data{"quote_id": completion.QuoteID})
	}

	log.InfoR(req, "payment finalized", log.Data{"session_id": paymentSession.ID, "quote_id": completion.QuoteID})
	return response, Success, nil
}

func (service *PaymentFormService) save(req *http.Request, paymentSession *models.PaymentSession) error {
	dbSession := service.transformer.TransformToDB(*paymentSession)

	err := service.DAO.SavePaymentSession(req.Context(), &dbSession)
	if err != nil {
		return fmt.Errorf("error saving payment session: [%v]", err)
	}
	return nil
}

// saveDraft stores the entered values after a failed create. The grant and
// state are left as they were.
func (service *PaymentFormService) saveDraft(req *http.Request, paymentSession *models.PaymentSession, updated models.PaymentSession) {
	err := service.save(req, &updated)
	if err != nil {
		log.ErrorR(req, err, log.Data{"session_id": paymentSession.ID})
		return
	}
	paymentSession.Draft = updated.Draft
}

func (service *PaymentFormService) validator() *validate {
	if service.validate == nil {
		service.validate = newValidator()
	}
	return service.validate
}

func (service *PaymentFormService) currentTime() time.Time {
	if service.now == nil {
		return time.Now()
	}
	return service.now()
}

// coordinatorResponseType classifies a failed coordinator call. Rejections,
// unreachable servers and unreadable responses are all upstream failures.
func coordinatorResponseType(err error) ResponseType {
	var statusErr *coordinator.StatusError
	var transportErr *coordinator.TransportError
	var responseErr *coordinator.ResponseError
	if errors.As(err, &statusErr) || errors.As(err, &transportErr) || errors.As(err, &responseErr) {
		return UpstreamError
	}
	return Error
}
