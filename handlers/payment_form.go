package handlers

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/wallet-payments.web.ch.gov.uk/helpers"
	"github.com/companieshouse/wallet-payments.web.ch.gov.uk/mappers"
	"github.com/companieshouse/wallet-payments.web.ch.gov.uk/models"
	"github.com/companieshouse/wallet-payments.web.ch.gov.uk/service"
	"github.com/companieshouse/wallet-payments.web.ch.gov.uk/utils"
)

const paymentFormTemplate = "payment_form.html"

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// HandleGetPaymentForm renders the payment form with the values last entered
// in this session
func HandleGetPaymentForm(w http.ResponseWriter, req *http.Request) {
	paymentSession, ok := helpers.GetPaymentSession(req)
	if !ok {
		log.ErrorR(req, fmt.Errorf("payment session not in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	page := models.PaymentFormPage{
		ReceiverURL: paymentSession.Draft.ReceiverURL,
		SenderURL:   paymentSession.Draft.SenderURL,
		State:       paymentSession.State,
		Grant:       paymentSession.Grant,
	}
	if !paymentSession.Draft.Amount.IsZero() {
		page.Amount = paymentSession.Draft.Amount.String()
	}

	utils.WriteHTMLWithStatus(w, req, templates, paymentFormTemplate, page, http.StatusOK)
}

// HandleCreatePaymentForm handles the Create Payment button
func HandleCreatePaymentForm(w http.ResponseWriter, req *http.Request) {
	paymentSession, ok := helpers.GetPaymentSession(req)
	if !ok {
		log.ErrorR(req, fmt.Errorf("payment session not in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := req.ParseForm(); err != nil {
		log.ErrorR(req, fmt.Errorf("error parsing payment form: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	page := formPage(req, paymentSession)
	outcome, status := createPayment(req, paymentSession, page.SenderURL, page.ReceiverURL, page.Amount)
	page.State = paymentSession.State
	page.Grant = paymentSession.Grant
	page.Outcome = &outcome

	utils.WriteHTMLWithStatus(w, req, templates, paymentFormTemplate, page, status)
}

// HandleFinishPaymentForm handles the Finalize and create all Payments button
func HandleFinishPaymentForm(w http.ResponseWriter, req *http.Request) {
	paymentSession, ok := helpers.GetPaymentSession(req)
	if !ok {
		log.ErrorR(req, fmt.Errorf("payment session not in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := req.ParseForm(); err != nil {
		log.ErrorR(req, fmt.Errorf("error parsing payment form: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	page := formPage(req, paymentSession)
	outcome, status := finishPayment(req, paymentSession, page.SenderURL)
	page.State = paymentSession.State
	page.Outcome = &outcome

	utils.WriteHTMLWithStatus(w, req, templates, paymentFormTemplate, page, status)
}

// formPage echoes the submitted values back to the form
func formPage(req *http.Request, paymentSession *models.PaymentSession) models.PaymentFormPage {
	return models.PaymentFormPage{
		ReceiverURL: req.PostFormValue("receiver_url"),
		SenderURL:   req.PostFormValue("sender_url"),
		Amount:      req.PostFormValue("amount"),
		State:       paymentSession.State,
		Grant:       paymentSession.Grant,
	}
}

func createPayment(req *http.Request, paymentSession *models.PaymentSession, senderURL, receiverURL, amount string) (models.PaymentOutcome, int) {
	draft, err := service.NewPaymentRequestDraft(senderURL, receiverURL, amount)
	if err != nil {
		log.InfoR(req, "invalid payment amount entered", log.Data{"session_id": paymentSession.ID})
		return mappers.MapErrorToOutcome(mappers.CreateFailedPrefix, err), http.StatusBadRequest
	}

	result, responseType, err := paymentFormService.CreatePayment(req, paymentSession, draft)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error creating payment: [%v]", err), log.Data{"service_response_type": responseType.String()})
		return mappers.MapErrorToOutcome(mappers.CreateFailedPrefix, err), statusFor(responseType)
	}

	return mappers.MapCreateResultToOutcome(result), http.StatusOK
}

func finishPayment(req *http.Request, paymentSession *models.PaymentSession, senderURL string) (models.PaymentOutcome, int) {
	response, responseType, err := paymentFormService.FinalizePayment(req, paymentSession, senderURL)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error finalizing payment: [%v]", err), log.Data{"service_response_type": responseType.String()})
		return mappers.MapErrorToOutcome(mappers.FinishFailedPrefix, err), statusFor(responseType)
	}

	return mappers.MapFinishResponseToOutcome(response), http.StatusOK
}

// statusFor maps a service response type to the status returned to the browser
func statusFor(responseType service.ResponseType) int {
	switch responseType {
	case service.Success:
		return http.StatusOK
	case service.InvalidData:
		return http.StatusBadRequest
	case service.UpstreamError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
