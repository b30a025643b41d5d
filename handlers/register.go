package handlers

import (
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/wallet-payments.web.ch.gov.uk/config"
	"github.com/companieshouse/wallet-payments.web.ch.gov.uk/coordinator"
	"github.com/companieshouse/wallet-payments.web.ch.gov.uk/dao"
	"github.com/companieshouse/wallet-payments.web.ch.gov.uk/events"
	"github.com/companieshouse/wallet-payments.web.ch.gov.uk/interceptors"
	"github.com/companieshouse/wallet-payments.web.ch.gov.uk/service"
	"github.com/gorilla/mux"
)

var paymentFormService *service.PaymentFormService

// Register defines the route mappings for the main router and it's subrouters
func Register(mainRouter *mux.Router, cfg config.Config) error {
	d, err := dao.NewDAO(&cfg)
	if err != nil {
		return fmt.Errorf("error creating session store: [%v]", err)
	}

	client, err := coordinator.NewHTTPClient(&cfg)
	if err != nil {
		return fmt.Errorf("error creating coordinator client: [%v]", err)
	}

	paymentFormService = service.NewPaymentFormService(d, client, events.NewPublisher(&cfg), cfg)

	ps := &interceptors.PaymentSessionInterceptor{
		Service:      paymentFormService,
		CookieName:   cfg.SessionCookieName,
		CookieSecure: cfg.CookieSecure,
	}

	mainRouter.HandleFunc("/healthcheck", healthCheck).Methods("GET").Name("get-healthcheck")

	// every other route needs the browser's payment session
	sessionRouter := mainRouter.NewRoute().Subrouter()
	sessionRouter.HandleFunc("/", HandleGetPaymentForm).Methods("GET").Name("get-payment-form")
	sessionRouter.HandleFunc("/create-payment", HandleCreatePaymentForm).Methods("POST").Name("create-payment")
	sessionRouter.HandleFunc("/finish-payment", HandleFinishPaymentForm).Methods("POST").Name("finish-payment")

	apiRouter := sessionRouter.PathPrefix("/api").Subrouter()
	apiRouter.HandleFunc("/create-payment", HandleAPICreatePayment).Methods("POST").Name("api-create-payment")
	apiRouter.HandleFunc("/finish-payment", HandleAPIFinishPayment).Methods("POST").Name("api-finish-payment")

	// Set middleware for subrouters
	sessionRouter.Use(log.Handler, ps.PaymentSessionIntercept)

	return nil
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
