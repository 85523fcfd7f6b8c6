package bootstrap

import (
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
)

// Actor is a demo user created by the bootstrap flow.
type Actor struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Organization is a demo organization created by the bootstrap flow.
type Organization struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Property is the demo listing.
type Property struct {
	Title      string  `json:"title"`
	UnitNumber string  `json:"unitNumber"`
	Price      float64 `json:"price"`
}

// PaymentMethod is the demo payment plan.
type PaymentMethod struct {
	Name   string `json:"name"`
	Phases int    `json:"phases"`
}

// Step records one completed stage of the bootstrap flow.
type Step struct {
	Step   string `json:"step"`
	Detail string `json:"detail,omitempty"`
}

// Outcome is the demo-bootstrap response body.
type Outcome struct {
	Success       bool                    `json:"success"`
	TenantID      string                  `json:"tenantId"`
	Actors        map[string]Actor        `json:"actors"`
	Organizations map[string]Organization `json:"organizations"`
	Property      Property                `json:"property"`
	PaymentMethod PaymentMethod           `json:"paymentMethod"`
	Steps         []Step                  `json:"steps"`
}

// FormatError reports a response body that is not valid JSON. RawBody
// holds the undecodable text so the operator can see what came back.
type FormatError struct {
	RawBody string
	Err     error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("response body is not valid JSON: %v", e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// ParseResponse decodes the raw Lambda response file. The outer layer is
// the function's gateway-style response; its body field is itself JSON
// text and gets a second decode.
func ParseResponse(data []byte) (statusCode int, outcome Outcome, rawBody string, err error) {
	var resp events.APIGatewayV2HTTPResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return 0, Outcome{}, "", fmt.Errorf("decoding response file: %w", err)
	}

	body := resp.Body
	if body == "" {
		body = "{}"
	}

	if err := json.Unmarshal([]byte(body), &outcome); err != nil {
		return resp.StatusCode, Outcome{}, body, &FormatError{RawBody: body, Err: err}
	}

	return resp.StatusCode, outcome, body, nil
}

// InvokeMetadata is the JSON the AWS CLI prints on stdout after
// `aws lambda invoke`.
type InvokeMetadata struct {
	StatusCode      int    `json:"StatusCode"`
	FunctionError   string `json:"FunctionError"`
	ExecutedVersion string `json:"ExecutedVersion"`
}

// ParseInvokeMetadata decodes the CLI's invoke metadata. An empty input
// yields a zero value without error.
func ParseInvokeMetadata(stdout string) (InvokeMetadata, error) {
	var meta InvokeMetadata
	if stdout == "" {
		return meta, nil
	}
	if err := json.Unmarshal([]byte(stdout), &meta); err != nil {
		return meta, fmt.Errorf("decoding invoke metadata: %w", err)
	}
	return meta, nil
}
