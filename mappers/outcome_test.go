package mappers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/companieshouse/wallet-payments.web.ch.gov.uk/coordinator"
	"github.com/companieshouse/wallet-payments.web.ch.gov.uk/fixtures"
	"github.com/companieshouse/wallet-payments.web.ch.gov.uk/models"
	"github.com/companieshouse/wallet-payments.web.ch.gov.uk/service"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitCreatePaymentOutcome(t *testing.T) {
	Convey("All grant values and the redirect URL are shown", t, func() {
		outcome := MapCreateResultToOutcome(&models.CreatePaymentResult{
			Message:             "Proceed",
			Grant:               fixtures.GetPaymentGrant(),
			InteractRedirectURL: fixtures.InteractRedirectURL,
		})

		So(outcome.Success, ShouldBeTrue)
		So(outcome.Message, ShouldEqual, createSuccessMessage)
		So(outcome.Details, ShouldResemble, []models.OutcomeDetail{
			{Name: "MESSAGE", Value: "Proceed"},
			{Name: "QUOTE_ID", Value: "q1"},
			{Name: "CONTINUE_URI", Value: "https://x/c"},
			{Name: "CONTINUE_ACCESS_TOKEN", Value: "tok"},
			{Name: "INTERACT_REDIRECT_URL", Value: "https://x/r"},
		})
	})

	Convey("Empty coordinator message is left out", t, func() {
		outcome := MapCreateResultToOutcome(&models.CreatePaymentResult{Grant: fixtures.GetPaymentGrant()})
		So(outcome.Details[0].Name, ShouldEqual, "QUOTE_ID")
	})
}

func TestUnitFinishPaymentOutcome(t *testing.T) {
	Convey("JSON body is indented", t, func() {
		outcome := MapFinishResponseToOutcome(&models.FinishPaymentResponse{Body: []byte(`{"a":1}`)})
		So(outcome.Success, ShouldBeTrue)
		So(outcome.Message, ShouldEqual, finishSuccessMessage)
		So(outcome.Body, ShouldEqual, "{\n  \"a\": 1\n}")
	})

	Convey("Non JSON body is shown verbatim", t, func() {
		outcome := MapFinishResponseToOutcome(&models.FinishPaymentResponse{Body: []byte("done")})
		So(outcome.Body, ShouldEqual, "done")
	})
}

func TestUnitFailureOutcome(t *testing.T) {
	Convey("Incomplete payment details", t, func() {
		outcome := MapErrorToOutcome(FinishFailedPrefix, service.ErrPaymentDetailsIncomplete)
		So(outcome.Success, ShouldBeFalse)
		So(outcome.Message, ShouldEqual, "Payment details are missing or incomplete.")
	})

	Convey("Validation problems are listed", t, func() {
		outcome := MapErrorToOutcome(CreateFailedPrefix, &service.ValidationError{Problems: []string{"a", "b"}})
		So(outcome.Message, ShouldEqual, invalidDraftMessage)
		So(outcome.Problems, ShouldResemble, []string{"a", "b"})
	})

	Convey("Status code and raw body are shown", t, func() {
		outcome := MapErrorToOutcome(CreateFailedPrefix, &coordinator.StatusError{Endpoint: "/create-payment", StatusCode: 500, Body: "oops"})
		So(outcome.Message, ShouldEqual, "Payment request failed with status code: 500")
		So(outcome.StatusCode, ShouldEqual, 500)
		So(outcome.Body, ShouldEqual, "oops")
	})

	Convey("Finalization failure message", t, func() {
		outcome := MapErrorToOutcome(FinishFailedPrefix, &coordinator.StatusError{Endpoint: "/finish-payment", StatusCode: 404, Body: ""})
		So(outcome.Message, ShouldEqual, "Payment finalization failed with status code: 404")
	})

	Convey("Transport error text is shown", t, func() {
		outcome := MapErrorToOutcome(CreateFailedPrefix, &coordinator.TransportError{Endpoint: "/create-payment", Err: errors.New("connection refused")})
		So(outcome.Message, ShouldEqual, "Error communicating with the server: connection refused")
	})

	Convey("Incomplete grant is reported as an incomplete response", t, func() {
		err := fmt.Errorf("%w for quote [q1]", service.ErrIncompleteGrant)
		outcome := MapErrorToOutcome(CreateFailedPrefix, err)
		So(outcome.Success, ShouldBeFalse)
		So(outcome.Message, ShouldEqual, "Payment request failed: incomplete response from the server")
	})

	Convey("Unreadable response is reported as an incomplete response", t, func() {
		err := &coordinator.ResponseError{Endpoint: "/create-payment", Err: errors.New("invalid character 'n'")}
		outcome := MapErrorToOutcome(CreateFailedPrefix, err)
		So(outcome.Message, ShouldEqual, "Payment request failed: incomplete response from the server")
	})
}
