package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/wallet-payments.web.ch.gov.uk/helpers"
	"github.com/companieshouse/wallet-payments.web.ch.gov.uk/utils"
)

// maxAPIBodyBytes bounds the JSON body accepted by the API handlers
const maxAPIBodyBytes = 64 << 10

// APICreatePaymentRequest is the JSON body accepted by the create payment API
type APICreatePaymentRequest struct {
	SenderURL   string      `json:"sender_url"`
	ReceiverURL string      `json:"receiver_url"`
	Amount      json.Number `json:"amount"`
}

// APIFinishPaymentRequest is the JSON body accepted by the finish payment API
type APIFinishPaymentRequest struct {
	SenderURL string `json:"sender_url"`
}

// HandleAPICreatePayment creates a payment for the session and returns the outcome as JSON
func HandleAPICreatePayment(w http.ResponseWriter, req *http.Request) {
	paymentSession, ok := helpers.GetPaymentSession(req)
	if !ok {
		log.ErrorR(req, fmt.Errorf("payment session not in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	var incoming APICreatePaymentRequest
	if !decodeBody(w, req, &incoming) {
		return
	}

	outcome, status := createPayment(req, paymentSession, incoming.SenderURL, incoming.ReceiverURL, incoming.Amount.String())
	utils.WriteJSONWithStatus(w, req, outcome, status)
}

// HandleAPIFinishPayment finalizes the session's payment and returns the outcome as JSON
func HandleAPIFinishPayment(w http.ResponseWriter, req *http.Request) {
	paymentSession, ok := helpers.GetPaymentSession(req)
	if !ok {
		log.ErrorR(req, fmt.Errorf("payment session not in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	var incoming APIFinishPaymentRequest
	if !decodeBody(w, req, &incoming) {
		return
	}

	outcome, status := finishPayment(req, paymentSession, incoming.SenderURL)
	utils.WriteJSONWithStatus(w, req, outcome, status)
}

func decodeBody(w http.ResponseWriter, req *http.Request, v interface{}) bool {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("request body empty"), http.StatusBadRequest)
		return false
	}

	err := json.NewDecoder(http.MaxBytesReader(w, req.Body, maxAPIBodyBytes)).Decode(v)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("request body invalid"), http.StatusBadRequest)
		return false
	}
	return true
}
