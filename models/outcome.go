package models

// PaymentOutcome is the result of a form action as shown to the user
type PaymentOutcome struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Problems   []string        `json:"problems,omitempty"`
	StatusCode int             `json:"status_code,omitempty"`
	Details    []OutcomeDetail `json:"details,omitempty"`
	Body       string          `json:"body,omitempty"`
}

// OutcomeDetail is a single named value returned by the coordinator
type OutcomeDetail struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// PaymentFormPage is the data used to render the payment form
type PaymentFormPage struct {
	ReceiverURL string
	SenderURL   string
	Amount      string
	State       SessionState
	Grant       PaymentGrant
	Outcome     *PaymentOutcome
}
