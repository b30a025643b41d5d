package mappers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/companieshouse/wallet-payments.web.ch.gov.uk/coordinator"
	"github.com/companieshouse/wallet-payments.web.ch.gov.uk/models"
	"github.com/companieshouse/wallet-payments.web.ch.gov.uk/service"
)

// Prefixes for the message shown when the coordinator rejects a request
const (
	CreateFailedPrefix = "Payment request failed"
	FinishFailedPrefix = "Payment finalization failed"
)

const (
	createSuccessMessage   = "Payment request successful! Please check the redirect URL to proceed."
	finishSuccessMessage   = "Payment finalized successfully!"
	incompleteMessage      = "Payment details are missing or incomplete."
	invalidDraftMessage    = "Please correct the payment details."
	communicationErrPrefix = "Error communicating with the server: "
	incompleteResponse     = ": incomplete response from the server"
)

func MapCreateResultToOutcome(result *models.CreatePaymentResult) models.PaymentOutcome {
	outcome := models.PaymentOutcome{
		Success: true,
		Message: createSuccessMessage,
	}
	if result.Message != "" {
		outcome.Details = append(outcome.Details, models.OutcomeDetail{Name: "MESSAGE", Value: result.Message})
	}
	outcome.Details = append(outcome.Details,
		models.OutcomeDetail{Name: "QUOTE_ID", Value: result.Grant.QuoteID},
		models.OutcomeDetail{Name: "CONTINUE_URI", Value: result.Grant.ContinueURI},
		models.OutcomeDetail{Name: "CONTINUE_ACCESS_TOKEN", Value: result.Grant.ContinueAccessToken},
		models.OutcomeDetail{Name: "INTERACT_REDIRECT_URL", Value: result.InteractRedirectURL},
	)
	return outcome
}

func MapFinishResponseToOutcome(response *models.FinishPaymentResponse) models.PaymentOutcome {
	return models.PaymentOutcome{
		Success: true,
		Message: finishSuccessMessage,
		Body:    prettyBody(response.Body),
	}
}

// MapErrorToOutcome describes a failed action. failedPrefix starts the
// message shown when the coordinator rejected the request.
func MapErrorToOutcome(failedPrefix string, err error) models.PaymentOutcome {
	var validationErr *service.ValidationError
	var statusErr *coordinator.StatusError
	var transportErr *coordinator.TransportError
	var responseErr *coordinator.ResponseError

	switch {
	case errors.Is(err, service.ErrPaymentDetailsIncomplete):
		return models.PaymentOutcome{Message: incompleteMessage}
	case errors.As(err, &validationErr):
		return models.PaymentOutcome{Message: invalidDraftMessage, Problems: validationErr.Problems}
	case errors.As(err, &statusErr):
		return models.PaymentOutcome{
			Message:    fmt.Sprintf("%s with status code: %d", failedPrefix, statusErr.StatusCode),
			StatusCode: statusErr.StatusCode,
			Body:       statusErr.Body,
		}
	case errors.Is(err, service.ErrIncompleteGrant), errors.As(err, &responseErr):
		return models.PaymentOutcome{Message: failedPrefix + incompleteResponse}
	case errors.As(err, &transportErr):
		return models.PaymentOutcome{Message: communicationErrPrefix + transportErr.Err.Error()}
	default:
		return models.PaymentOutcome{Message: communicationErrPrefix + err.Error()}
	}
}

// prettyBody indents a JSON body, returning anything else verbatim
func prettyBody(body []byte) string {
	var out bytes.Buffer
	if err := json.Indent(&out, body, "", "  "); err != nil {
		return string(body)
	}
	return out.String()
}
