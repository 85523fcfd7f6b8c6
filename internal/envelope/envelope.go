// Package envelope builds the synthetic API Gateway v2 HTTP event sent to
// the user-service Lambda. Invoking the function directly skips the real
// gateway, so the event the handler expects has to be reconstructed here.
package envelope

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/events"
)

// SecretHeader is the header name the user-service admin routes check.
const SecretHeader = "x-bootstrap-secret"

// gatewayTimeFormat matches the requestContext.time format produced by
// API Gateway, e.g. "12/Mar/2026:10:00:00 +0000".
const gatewayTimeFormat = "02/Jan/2006:15:04:05 +0000"

// Body is the demo-bootstrap request body: the downstream service URLs
// the bootstrap flow calls into.
type Body struct {
	PropertyServiceURL string `json:"propertyServiceUrl"`
	MortgageServiceURL string `json:"mortgageServiceUrl"`
	PaymentServiceURL  string `json:"paymentServiceUrl"`
}

// Params carries everything that varies between environments.
type Params struct {
	RouteKey string
	RawPath  string
	APIID    string
	Stage    string
	Secret   string
	Body     Body

	// Now defaults to time.Now. Injectable for deterministic tests.
	Now func() time.Time
}

// Build assembles the event. The body is serialized to a JSON string
// before being placed in the event, matching how API Gateway delivers
// request bodies (the handler double-decodes).
func Build(p Params) (events.APIGatewayV2HTTPRequest, error) {
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	t := now().UTC()

	bodyJSON, err := json.Marshal(p.Body)
	if err != nil {
		return events.APIGatewayV2HTTPRequest{}, fmt.Errorf("encoding body: %w", err)
	}

	return events.APIGatewayV2HTTPRequest{
		Version:        "2.0",
		RouteKey:       p.RouteKey,
		RawPath:        p.RawPath,
		RawQueryString: "",
		Headers: map[string]string{
			"content-type": "application/json",
			SecretHeader:   p.Secret,
		},
		RequestContext: events.APIGatewayV2HTTPRequestContext{
			AccountID:    "anonymous",
			APIID:        p.APIID,
			DomainName:   p.APIID + ".execute-api.us-east-1.amazonaws.com",
			DomainPrefix: p.APIID,
			HTTP: events.APIGatewayV2HTTPRequestContextHTTPDescription{
				Method:    "POST",
				Path:      p.RawPath,
				Protocol:  "HTTP/1.1",
				SourceIP:  "127.0.0.1",
				UserAgent: "qsops",
			},
			RequestID: fmt.Sprintf("test-%d", t.Unix()),
			RouteKey:  p.RouteKey,
			Stage:     p.Stage,
			Time:      t.Format(gatewayTimeFormat),
			TimeEpoch: t.UnixMilli(),
		},
		Body:            string(bodyJSON),
		IsBase64Encoded: false,
	}, nil
}

// Write serializes the event to path, replacing any previous payload.
func Write(event events.APIGatewayV2HTTPRequest, path string) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing payload: %w", err)
	}
	return nil
}
