package interceptors

import (
	"context"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/wallet-payments.web.ch.gov.uk/helpers"
	"github.com/companieshouse/wallet-payments.web.ch.gov.uk/models"
	"github.com/companieshouse/wallet-payments.web.ch.gov.uk/service"
)

// PaymentSessionInterceptor contains the payment form service used in the
// interceptor and the settings for the session cookie
type PaymentSessionInterceptor struct {
	Service      *service.PaymentFormService
	CookieName   string
	CookieSecure bool
}

// PaymentSessionIntercept loads the browser's payment session, starting a new
// one when the cookie is missing or the session has expired, and puts it on
// the request context
func (interceptor PaymentSessionInterceptor) PaymentSessionIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var paymentSession *models.PaymentSession

		cookie, err := r.Cookie(interceptor.CookieName)
		if err == nil && cookie.Value != "" {
			existing, responseType, err := interceptor.Service.GetPaymentSession(r, cookie.Value)
			if err != nil {
				log.ErrorR(r, fmt.Errorf("PaymentSessionInterceptor error when retrieving payment session: [%v]", err), log.Data{"service_response_type": responseType.String()})
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if responseType == service.Success {
				paymentSession = existing
			}
		}

		if paymentSession == nil {
			created, responseType, err := interceptor.Service.CreatePaymentSession(r)
			if err != nil {
				log.ErrorR(r, fmt.Errorf("PaymentSessionInterceptor error when creating payment session: [%v]", err), log.Data{"service_response_type": responseType.String()})
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			paymentSession = created

			http.SetCookie(w, &http.Cookie{
				Name:     interceptor.CookieName,
				Value:    paymentSession.ID,
				Path:     "/",
				Expires:  paymentSession.ExpiresAt,
				HttpOnly: true,
				Secure:   interceptor.CookieSecure,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), helpers.ContextKeyPaymentSession, paymentSession)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
