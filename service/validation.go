package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/companieshouse/wallet-payments.web.ch.gov.uk/models"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ErrPaymentDetailsIncomplete is returned when a payment is finalized before
// a grant has been captured or without a sender wallet address
var ErrPaymentDetailsIncomplete = errors.New("payment details are missing or incomplete")

// ErrIncompleteGrant is returned when the coordinator accepts a payment but
// its response lacks part of the grant
var ErrIncompleteGrant = errors.New("incomplete grant returned from coordinator")

// ValidationError lists the form fields that failed validation
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "; ")
}

// Limits on an entered amount. They keep the value to whole cents and bound
// the work needed to expand it.
const (
	maxAmountLength        = 32
	maxAmountIntegerDigits = 18
	maxAmountDecimalPlaces = 2
)

// Problems reported for an amount that cannot be used
const (
	amountNotNumber       = "the amount must be a number"
	amountTooLarge        = "the amount is too large"
	amountTooManyDecimals = "the amount must have no more than 2 decimal places"
)

var fieldProblems = map[string]string{
	"sender_url":   "a sender wallet URL is required",
	"receiver_url": "a receiver wallet URL is required",
	"amount":       "the amount must be greater than 0",
}

func newValidator() *validate {
	v := validator.New()

	// report fields by their json names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// validate decimals by their sign so that gt=0 means a positive amount
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if amount, ok := field.Interface().(decimal.Decimal); ok {
			return amount.Sign()
		}
		return nil
	}, decimal.Decimal{})

	return &validate{v}
}

type validate struct {
	*validator.Validate
}

// draft returns a ValidationError naming every field that prevents the draft
// from being sent to the coordinator
func (v *validate) draft(draft models.PaymentRequestDraft) error {
	err := v.Struct(draft)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	validationError := &ValidationError{}
	for _, fieldError := range fieldErrors {
		problem, ok := fieldProblems[fieldError.Field()]
		if !ok {
			problem = fieldError.Error()
		}
		validationError.Problems = append(validationError.Problems, problem)
	}
	return validationError
}

// completion checks every value of the completion request is present
func (v *validate) completion(request models.PaymentCompletionRequest) error {
	if err := v.Struct(request); err != nil {
		return ErrPaymentDetailsIncomplete
	}
	return nil
}

// NewPaymentRequestDraft builds a draft from raw form values. The wallet
// addresses are taken as entered. An empty amount is treated as zero; an
// amount that is not a number, has more than 18 integer digits or is finer
// than a cent is rejected.
func NewPaymentRequestDraft(senderURL, receiverURL, amount string) (models.PaymentRequestDraft, error) {
	draft := models.PaymentRequestDraft{
		SenderURL:   senderURL,
		ReceiverURL: receiverURL,
		Amount:      decimal.Zero,
	}

	amount = strings.TrimSpace(amount)
	if amount == "" {
		return draft, nil
	}

	if len(amount) > maxAmountLength {
		return draft, &ValidationError{Problems: []string{amountTooLarge}}
	}

	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return draft, &ValidationError{Problems: []string{amountNotNumber}}
	}

	// a zero keeps its exponent, so 0e999999999 is replaced rather than stored
	if parsed.IsZero() {
		return draft, nil
	}

	if problem := checkAmountRange(parsed); problem != "" {
		return draft, &ValidationError{Problems: []string{problem}}
	}

	draft.Amount = parsed
	return draft, nil
}

// checkAmountRange works from the exponent and digit count only, so that an
// amount such as 1e999999999 is rejected without being expanded
func checkAmountRange(amount decimal.Decimal) string {
	exponent := int(amount.Exponent())

	if amount.NumDigits()+exponent > maxAmountIntegerDigits {
		return amountTooLarge
	}

	if exponent < -maxAmountDecimalPlaces {
		// no more digits than fit in the input, so 1e-999999999 is not rescaled
		if exponent < -maxAmountLength {
			return amountTooManyDecimals
		}
		// trailing zeros such as 10.500 are allowed
		if !amount.Equal(amount.Truncate(maxAmountDecimalPlaces)) {
			return amountTooManyDecimals
		}
	}

	return ""
}
