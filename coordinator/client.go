// Package coordinator is the HTTP client for the remote payment coordination
// server. The coordinator performs the grant negotiation with the wallets;
// this package only posts the two payment steps to it.
package coordinator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/companieshouse/wallet-payments.web.ch.gov.uk/config"
	"github.com/companieshouse/wallet-payments.web.ch.gov.uk/models"
)

// Coordinator endpoints, relative to the configured base URL
const (
	CreatePaymentPath = "/create-payment"
	FinishPaymentPath = "/finish-payment"
)

// Client is an interface for the requests made to the coordination server
type Client interface {
	CreatePayment(ctx context.Context, request models.CreatePaymentRequest) (*models.CreatePaymentResponse, error)
	FinishPayment(ctx context.Context, request models.PaymentCompletionRequest) (*models.FinishPaymentResponse, error)
}

// StatusError is returned when the coordinator answers with anything other
// than 200. Body is the raw response body.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("error status [%d] back from coordinator %s: [%s]", e.StatusCode, e.Endpoint, e.Body)
}

// TransportError is returned when the request to the coordinator could not
// be completed
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("error sending request to coordinator %s: [%v]", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ResponseError is returned when a 200 response from the coordinator cannot
// be read
type ResponseError struct {
	Endpoint string
	Err      error
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("error reading response from coordinator %s: [%v]", e.Endpoint, e.Err)
}

func (e *ResponseError) Unwrap() error {
	return e.Err
}

// HTTPClient posts JSON to the coordinator over HTTP
type HTTPClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewHTTPClient returns a client for the coordinator named in the config
func NewHTTPClient(cfg *config.Config) (*HTTPClient, error) {
	timeout, err := cfg.CoordinatorTimeout()
	if err != nil {
		return nil, err
	}

	return &HTTPClient{
		BaseURL:    strings.TrimRight(cfg.ServerBaseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
	}, nil
}

// CreatePayment asks the coordinator for a quote and a pending outgoing
// payment grant
func (c *HTTPClient) CreatePayment(ctx context.Context, request models.CreatePaymentRequest) (*models.CreatePaymentResponse, error) {
	body, err := c.post(ctx, CreatePaymentPath, request)
	if err != nil {
		return nil, err
	}

	createPaymentResponse := &models.CreatePaymentResponse{}
	err = json.Unmarshal(body, createPaymentResponse)
	if err != nil {
		return nil, &ResponseError{Endpoint: CreatePaymentPath, Err: err}
	}

	return createPaymentResponse, nil
}

// FinishPayment continues the grant and creates the outgoing payments
func (c *HTTPClient) FinishPayment(ctx context.Context, request models.PaymentCompletionRequest) (*models.FinishPaymentResponse, error) {
	body, err := c.post(ctx, FinishPaymentPath, request)
	if err != nil {
		return nil, err
	}

	return &models.FinishPaymentResponse{Body: body}, nil
}

// post sends the payload as JSON and returns the body of a 200 response
func (c *HTTPClient) post(ctx context.Context, endpoint string, payload interface{}) ([]byte, error) {
	requestBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error marshalling request for coordinator %s: [%v]", endpoint, err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+endpoint, bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, fmt.Errorf("error generating request for coordinator %s: [%v]", endpoint, err)
	}

	request.Header.Add("accept", "application/json")
	request.Header.Add("content-type", "application/json")

	resp, err := c.httpClient().Do(request)
	if err != nil {
		return nil, &TransportError{Endpoint: endpoint, Err: err}
	}

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Endpoint: endpoint, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Endpoint: endpoint, StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}

func (c *HTTPClient) httpClient() *http.Client {
	if c.HTTPClient == nil {
		return http.DefaultClient
	}
	return c.HTTPClient
}
